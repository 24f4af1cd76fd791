package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"aravoxel/internal/meshing"
	"aravoxel/internal/world"

	"gopkg.in/yaml.v3"
)

// Config is the full bootstrap configuration of a run.
type Config struct {
	World   WorldConfig   `yaml:"world"`
	Terrain TerrainConfig `yaml:"terrain"`
	Mesh    MeshConfig    `yaml:"mesh"`
	Output  OutputConfig  `yaml:"output"`
}

// WorldConfig selects which chunks are generated and how many workers run.
type WorldConfig struct {
	Seed    int64        `yaml:"seed"`
	Extent  ExtentConfig `yaml:"extent"`
	Workers int          `yaml:"workers"`
}

// ExtentConfig is a chunk coordinate range; Max is exclusive.
type ExtentConfig struct {
	Min [3]int32 `yaml:"min"`
	Max [3]int32 `yaml:"max"`
}

// MeshConfig controls vertex coloring.
type MeshConfig struct {
	ColorMode   string  `yaml:"color_mode"`
	RandomSeed  int64   `yaml:"random_seed"`
	OpaqueAlpha float32 `yaml:"opaque_alpha"`
	LiquidAlpha float32 `yaml:"liquid_alpha"`
}

// OutputConfig names the files a run writes. Empty paths are skipped.
type OutputConfig struct {
	Bundle       string `yaml:"bundle"`
	Preview      string `yaml:"preview"`
	PreviewScale int    `yaml:"preview_scale"`
}

// Default returns a complete configuration for a small world.
func Default() Config {
	return Config{
		World: WorldConfig{
			Seed: 42069,
			Extent: ExtentConfig{
				Min: [3]int32{0, -1, 0},
				Max: [3]int32{6, 3, 6},
			},
			Workers: max(runtime.NumCPU(), 1),
		},
		Terrain: DefaultTerrain(),
		Mesh: MeshConfig{
			ColorMode:   "ao",
			OpaqueAlpha: 1.0,
			LiquidAlpha: 0.3,
		},
		Output: OutputConfig{
			Bundle:       "world.mesh.zst",
			Preview:      "preview.png",
			PreviewScale: 2,
		},
	}
}

// Load reads a YAML file over the defaults and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error
	for i, axis := range []string{"x", "y", "z"} {
		if c.World.Extent.Min[i] >= c.World.Extent.Max[i] {
			errs = append(errs, fmt.Errorf("world.extent: min.%s %d must be below max.%s %d",
				axis, c.World.Extent.Min[i], axis, c.World.Extent.Max[i]))
		}
	}
	if c.World.Workers < 1 {
		errs = append(errs, fmt.Errorf("world.workers: %d, want at least 1", c.World.Workers))
	}
	if _, err := meshing.ParseColorMode(c.Mesh.ColorMode); err != nil {
		errs = append(errs, fmt.Errorf("mesh.color_mode: %w", err))
	}
	if c.Mesh.OpaqueAlpha < 0 || c.Mesh.OpaqueAlpha > 1 {
		errs = append(errs, fmt.Errorf("mesh.opaque_alpha: %v outside [0,1]", c.Mesh.OpaqueAlpha))
	}
	if c.Mesh.LiquidAlpha < 0 || c.Mesh.LiquidAlpha > 1 {
		errs = append(errs, fmt.Errorf("mesh.liquid_alpha: %v outside [0,1]", c.Mesh.LiquidAlpha))
	}
	if c.Output.PreviewScale < 1 {
		errs = append(errs, fmt.Errorf("output.preview_scale: %d, want at least 1", c.Output.PreviewScale))
	}
	errs = append(errs, c.Terrain.validate()...)
	return errors.Join(errs...)
}

// Extent converts the configured range into chunk coordinates.
func (c Config) Extent() world.Extent {
	e := c.World.Extent
	return world.Extent{
		Min: world.ChunkCoord{X: e.Min[0], Y: e.Min[1], Z: e.Min[2]},
		Max: world.ChunkCoord{X: e.Max[0], Y: e.Max[1], Z: e.Max[2]},
	}
}

// MeshOptions converts the mesh section. Call Validate first.
func (c Config) MeshOptions() meshing.Options {
	mode, _ := meshing.ParseColorMode(c.Mesh.ColorMode)
	return meshing.Options{
		ColorMode:   mode,
		RandomSeed:  c.Mesh.RandomSeed,
		OpaqueAlpha: c.Mesh.OpaqueAlpha,
		LiquidAlpha: c.Mesh.LiquidAlpha,
	}
}
