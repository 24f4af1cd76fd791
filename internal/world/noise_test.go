package world

import (
	"math"
	"math/rand"
	"testing"
)

// TestHash3Deterministic verifies hash3 produces identical results for same inputs
func TestHash3Deterministic(t *testing.T) {
	var results [100]uint64
	for i := range results {
		results[i] = hash3(10, 20, 30, 42)
	}

	first := results[0]
	for i := 1; i < len(results); i++ {
		if results[i] != first {
			t.Errorf("hash3 not deterministic: results[0]=%d, results[%d]=%d", first, i, results[i])
		}
	}
}

// TestHash3DifferentInputs verifies hash3 produces different values for different inputs
func TestHash3DifferentInputs(t *testing.T) {
	seed := int64(42)

	cases := []struct {
		name   string
		a, b   [3]int64
		sa, sb int64
	}{
		{"x", [3]int64{1, 0, 0}, [3]int64{2, 0, 0}, seed, seed},
		{"y", [3]int64{0, 1, 0}, [3]int64{0, 2, 0}, seed, seed},
		{"z", [3]int64{0, 0, 1}, [3]int64{0, 0, 2}, seed, seed},
		{"seed", [3]int64{1, 1, 1}, [3]int64{1, 1, 1}, 100, 200},
		{"axis swap", [3]int64{1, 2, 3}, [3]int64{3, 2, 1}, seed, seed},
	}
	for _, tc := range cases {
		h1 := hash3(tc.a[0], tc.a[1], tc.a[2], tc.sa)
		h2 := hash3(tc.b[0], tc.b[1], tc.b[2], tc.sb)
		if h1 == h2 {
			t.Errorf("%s: hash3%v=%d == hash3%v=%d", tc.name, tc.a, h1, tc.b, h2)
		}
	}
}

// TestValueNoiseRange verifies the lattice noise stays in [-1,1]
func TestValueNoiseRange(t *testing.T) {
	rng := rand.New(rand.NewSource(12345))
	seed := int64(42)

	for i := 0; i < 1000; i++ {
		x := rng.Float64()*200 - 100
		y := rng.Float64()*200 - 100
		z := rng.Float64()*200 - 100

		if v := valueNoise3D(x, y, z, seed); v < -1 || v > 1 {
			t.Fatalf("valueNoise3D(%f, %f, %f) = %f, expected in [-1,1]", x, y, z, v)
		}
		if v := valueNoise2D(x, z, seed); v < -1 || v > 1 {
			t.Fatalf("valueNoise2D(%f, %f) = %f, expected in [-1,1]", x, z, v)
		}
	}
}

// TestValueNoiseContinuity verifies smooth interpolation (no random jumps)
func TestValueNoiseContinuity(t *testing.T) {
	seed := int64(42)

	v1 := valueNoise3D(1.0, 1.0, 1.0, seed)
	v2 := valueNoise3D(1.01, 1.0, 1.0, seed)
	if diff := math.Abs(v1 - v2); diff >= 0.1 {
		t.Errorf("valueNoise3D not continuous: diff=%f over 0.01", diff)
	}

	v1 = valueNoise2D(7.5, 3.0, seed)
	v2 = valueNoise2D(7.5, 3.01, seed)
	if diff := math.Abs(v1 - v2); diff >= 0.1 {
		t.Errorf("valueNoise2D not continuous: diff=%f over 0.01", diff)
	}
}

// TestValueNoiseLatticeValues checks that integer points hit the hashed lattice value exactly.
func TestValueNoiseLatticeValues(t *testing.T) {
	if got, want := valueNoise2D(3, -4, 7), unit(hash2(3, -4, 7)); got != want {
		t.Errorf("valueNoise2D at lattice point = %f, want %f", got, want)
	}
	if got, want := valueNoise3D(-2, 5, 9, 7), unit(hash3(-2, 5, 9, 7)); got != want {
		t.Errorf("valueNoise3D at lattice point = %f, want %f", got, want)
	}
}

// TestFractalRangeAndDeterminism verifies fBm output is normalized and repeatable
func TestFractalRangeAndDeterminism(t *testing.T) {
	f := Fractal{Seed: 42, Octaves: 6, Lacunarity: 2, Persistence: 0.5}
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 500; i++ {
		x := rng.Float64()*50 - 25
		y := rng.Float64()*50 - 25
		z := rng.Float64()*50 - 25

		a := f.Sample3D(x, y, z)
		if a < -1 || a > 1 {
			t.Fatalf("Sample3D(%f,%f,%f) = %f, expected in [-1,1]", x, y, z, a)
		}
		if b := f.Sample3D(x, y, z); a != b {
			t.Fatalf("Sample3D not deterministic: %f != %f", a, b)
		}
		if s := f.Sample2D(x, z); s < -1 || s > 1 {
			t.Fatalf("Sample2D(%f,%f) = %f, expected in [-1,1]", x, z, s)
		}
	}
}

func TestFractalZeroOctaves(t *testing.T) {
	f := Fractal{Seed: 1}
	if v := f.Sample2D(3.3, 4.4); v != 0 {
		t.Errorf("zero-octave fractal = %f, want 0", v)
	}
}
