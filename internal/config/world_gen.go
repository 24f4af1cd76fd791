package config

import (
	"fmt"

	"aravoxel/internal/world"
)

// Terrain generator modes.
const (
	ModeHeightmap = "heightmap"
	ModeDensity   = "density"
	ModeFlat      = "flat"
)

// TerrainConfig holds world generation settings.
type TerrainConfig struct {
	Mode string `yaml:"mode"`

	Frequency   float64 `yaml:"frequency"`
	Octaves     int     `yaml:"octaves"`
	Lacunarity  float64 `yaml:"lacunarity"`
	Persistence float64 `yaml:"persistence"`

	VerticalityFrequency float64       `yaml:"verticality_frequency"`
	Interpolation        string        `yaml:"interpolation"`
	Spline               []SplinePoint `yaml:"spline"`

	BaseHeight    int     `yaml:"base_height"`
	VerticalScale float64 `yaml:"vertical_scale"`
	SeaLevel      int     `yaml:"sea_level"`
	GrassDepth    int     `yaml:"grass_depth"`
	RockLine      int     `yaml:"rock_line"`
	FlatHeight    int     `yaml:"flat_height"`
}

// SplinePoint is one spline control point.
type SplinePoint struct {
	In  float64 `yaml:"in"`
	Out float64 `yaml:"out"`
}

// DefaultTerrain mirrors world.DefaultTerrainParams.
func DefaultTerrain() TerrainConfig {
	p := world.DefaultTerrainParams()
	points := make([]SplinePoint, 0, len(world.DefaultSplinePoints))
	for _, sp := range world.DefaultSplinePoints {
		points = append(points, SplinePoint{In: sp.In, Out: sp.Out})
	}
	return TerrainConfig{
		Mode:                 ModeHeightmap,
		Frequency:            p.Frequency,
		Octaves:              p.Octaves,
		Lacunarity:           p.Lacunarity,
		Persistence:          p.Persistence,
		VerticalityFrequency: p.VerticalityFrequency,
		Interpolation:        "linear",
		Spline:               points,
		BaseHeight:           p.BaseHeight,
		VerticalScale:        p.VerticalScale,
		SeaLevel:             p.SeaLevel,
		GrassDepth:           p.GrassDepth,
		RockLine:             p.RockLine,
		FlatHeight:           16,
	}
}

func (t TerrainConfig) validate() []error {
	var errs []error
	switch t.Mode {
	case ModeHeightmap, ModeDensity, ModeFlat:
	default:
		errs = append(errs, fmt.Errorf("terrain.mode: unknown mode %q", t.Mode))
	}
	if t.Octaves < 1 {
		errs = append(errs, fmt.Errorf("terrain.octaves: %d, want at least 1", t.Octaves))
	}
	if t.Frequency <= 0 || t.VerticalityFrequency <= 0 {
		errs = append(errs, fmt.Errorf("terrain: frequencies must be positive"))
	}
	if t.Lacunarity <= 0 {
		errs = append(errs, fmt.Errorf("terrain.lacunarity: %v, want positive", t.Lacunarity))
	}
	if t.Persistence <= 0 {
		errs = append(errs, fmt.Errorf("terrain.persistence: %v, want positive", t.Persistence))
	}
	if t.VerticalScale <= 0 {
		errs = append(errs, fmt.Errorf("terrain.vertical_scale: %v, want positive", t.VerticalScale))
	}
	if t.GrassDepth < 0 {
		errs = append(errs, fmt.Errorf("terrain.grass_depth: %d is negative", t.GrassDepth))
	}
	if _, err := t.spline(); err != nil {
		errs = append(errs, fmt.Errorf("terrain.spline: %w", err))
	}
	return errs
}

func (t TerrainConfig) spline() (*world.Spline, error) {
	interp, err := world.ParseInterpolation(t.Interpolation)
	if err != nil {
		return nil, err
	}
	points := make([]world.SplinePoint, 0, len(t.Spline))
	for _, p := range t.Spline {
		points = append(points, world.SplinePoint{In: p.In, Out: p.Out})
	}
	return world.NewSpline(points, interp)
}

// TerrainParams converts the terrain section using the world seed.
func (c Config) TerrainParams() (world.TerrainParams, error) {
	t := c.Terrain
	spline, err := t.spline()
	if err != nil {
		return world.TerrainParams{}, fmt.Errorf("terrain.spline: %w", err)
	}
	return world.TerrainParams{
		Seed:                 c.World.Seed,
		Frequency:            t.Frequency,
		Octaves:              t.Octaves,
		Lacunarity:           t.Lacunarity,
		Persistence:          t.Persistence,
		VerticalityFrequency: t.VerticalityFrequency,
		Spline:               spline,
		BaseHeight:           t.BaseHeight,
		VerticalScale:        t.VerticalScale,
		SeaLevel:             t.SeaLevel,
		GrassDepth:           t.GrassDepth,
		RockLine:             t.RockLine,
	}, nil
}

// Generator builds the terrain generator selected by terrain.mode.
func (c Config) Generator() (world.TerrainGenerator, error) {
	params, err := c.TerrainParams()
	if err != nil {
		return nil, err
	}
	switch c.Terrain.Mode {
	case ModeHeightmap:
		return world.NewHeightmapGenerator(params), nil
	case ModeDensity:
		return world.NewDensityGenerator(params), nil
	case ModeFlat:
		return world.NewFlatGenerator(params, c.Terrain.FlatHeight), nil
	}
	return nil, fmt.Errorf("terrain.mode: unknown mode %q", c.Terrain.Mode)
}
