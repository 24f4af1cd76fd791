package world

import (
	"errors"
	"fmt"
	"math"
)

// Interpolation selects how a Spline blends between neighboring keys.
type Interpolation uint8

const (
	InterpolationLinear Interpolation = iota
	// InterpolationSmooth eases in and out of every key with smoothstep.
	// Like linear, it never overshoots, so monotonic keys stay monotonic.
	InterpolationSmooth
)

// ParseInterpolation maps a config name to an Interpolation.
func ParseInterpolation(s string) (Interpolation, error) {
	switch s {
	case "", "linear":
		return InterpolationLinear, nil
	case "smooth":
		return InterpolationSmooth, nil
	}
	return 0, fmt.Errorf("unknown interpolation %q", s)
}

// SplinePoint is one (input, output) control point.
type SplinePoint struct {
	In  float64
	Out float64
}

// Spline is a 1-D piecewise curve over ordered control points. Inputs
// outside the key domain clamp to the nearest edge key's output.
type Spline struct {
	points []SplinePoint
	interp Interpolation
}

var ErrEmptySpline = errors.New("spline needs at least one control point")

// NewSpline validates and copies the control points. Inputs must be finite
// and strictly increasing.
func NewSpline(points []SplinePoint, interp Interpolation) (*Spline, error) {
	if len(points) == 0 {
		return nil, ErrEmptySpline
	}
	for i, p := range points {
		if math.IsNaN(p.In) || math.IsInf(p.In, 0) || math.IsNaN(p.Out) || math.IsInf(p.Out, 0) {
			return nil, fmt.Errorf("spline point %d is not finite", i)
		}
		if i > 0 && p.In <= points[i-1].In {
			return nil, fmt.Errorf("spline point %d: input %v not greater than %v", i, p.In, points[i-1].In)
		}
	}
	return &Spline{
		points: append([]SplinePoint(nil), points...),
		interp: interp,
	}, nil
}

// Points returns a copy of the control points.
func (s *Spline) Points() []SplinePoint {
	return append([]SplinePoint(nil), s.points...)
}

// Sample evaluates the curve at x. NaN evaluates to the first key's output.
func (s *Spline) Sample(x float64) float64 {
	first := s.points[0]
	last := s.points[len(s.points)-1]
	if math.IsNaN(x) || x <= first.In {
		return first.Out
	}
	if x >= last.In {
		return last.Out
	}

	// first.In < x < last.In, so a segment always exists
	hi := 1
	for s.points[hi].In < x {
		hi++
	}
	a, b := s.points[hi-1], s.points[hi]
	t := (x - a.In) / (b.In - a.In)
	if s.interp == InterpolationSmooth {
		t = t * t * (3 - 2*t)
	}
	return lerp(a.Out, b.Out, t)
}
