package world

import (
	"math"
)

// TerrainGenerator fills a freshly allocated chunk. Implementations are
// pure functions of the chunk position and their own fixed parameters, so
// different chunks may be populated concurrently.
type TerrainGenerator interface {
	PopulateChunk(c *Chunk)
}

// TerrainParams holds the fixed inputs shared by the noise generators.
type TerrainParams struct {
	Seed int64

	// Primary fBm field.
	Frequency   float64
	Octaves     int
	Lacunarity  float64
	Persistence float64

	// Single-octave verticality field remapped through Spline.
	VerticalityFrequency float64
	Spline               *Spline

	BaseHeight    int
	VerticalScale float64
	SeaLevel      int
	// GrassDepth is how many voxels below the surface stay grass.
	GrassDepth int
	// Solids above RockLine (world Y) turn to stone. Zero or less disables it.
	RockLine int
}

// DefaultSplinePoints is a monotonic curve that flattens low verticality
// and exaggerates high verticality.
var DefaultSplinePoints = []SplinePoint{
	{In: -1.0, Out: 0.25},
	{In: -0.4, Out: 0.4},
	{In: 0.0, Out: 0.8},
	{In: 0.3, Out: 1.4},
	{In: 0.6, Out: 2.0},
	{In: 1.0, Out: 2.4},
}

// DefaultTerrainParams returns the stock world parameters.
func DefaultTerrainParams() TerrainParams {
	spline, err := NewSpline(DefaultSplinePoints, InterpolationLinear)
	if err != nil {
		panic(err)
	}
	return TerrainParams{
		Seed:                 42069,
		Frequency:            0.01,
		Octaves:              6,
		Lacunarity:           2.0,
		Persistence:          0.5,
		VerticalityFrequency: 0.004,
		Spline:               spline,
		BaseHeight:           32,
		VerticalScale:        32,
		SeaLevel:             10,
		GrassDepth:           3,
		RockLine:             23,
	}
}

func (p TerrainParams) primary() Fractal {
	return Fractal{
		Seed:        p.Seed,
		Octaves:     p.Octaves,
		Lacunarity:  p.Lacunarity,
		Persistence: p.Persistence,
	}
}

func (p TerrainParams) verticality() Fractal {
	return Fractal{
		Seed:        p.Seed ^ 0x5DEECE66D,
		Octaves:     1,
		Lacunarity:  1,
		Persistence: 1,
	}
}

// amplitude remaps the verticality field at a column into the multiplier
// applied to the primary sample.
func (p TerrainParams) amplitude(vert Fractal, wx, wz int) float64 {
	v := vert.Sample2D(float64(wx)*p.VerticalityFrequency, float64(wz)*p.VerticalityFrequency)
	return p.VerticalScale * p.Spline.Sample(v)
}

// classify picks the type of one voxel. depth counts the solid voxels
// directly above a solid voxel (0 at the surface). The water check runs
// before any solid assignment so water can fill every non-solid cell
// below sea level.
func (p TerrainParams) classify(worldY int, solid bool, depth int) VoxelType {
	if !solid {
		if worldY < p.SeaLevel {
			return VoxelWater
		}
		return VoxelAir
	}
	if p.RockLine > 0 && worldY > p.RockLine {
		return VoxelStone
	}
	if depth < p.GrassDepth {
		return VoxelGrass
	}
	return VoxelStone
}

// HeightmapGenerator fills each column up to a surface height.
type HeightmapGenerator struct {
	params TerrainParams
	height func(worldX, worldZ int) int
}

// NewHeightmapGenerator creates the default noise-driven terrain: surface
// height = BaseHeight + primary * VerticalScale * spline(verticality).
func NewHeightmapGenerator(params TerrainParams) *HeightmapGenerator {
	g := &HeightmapGenerator{params: params}
	primary := params.primary()
	vert := params.verticality()
	g.height = func(wx, wz int) int {
		sample := primary.Sample2D(float64(wx)*params.Frequency, float64(wz)*params.Frequency)
		density := sample * params.amplitude(vert, wx, wz)
		return params.BaseHeight + int(math.Floor(density))
	}
	return g
}

// NewHeightFuncGenerator creates a heightmap generator with a caller supplied
// surface height; classification still follows params.
func NewHeightFuncGenerator(params TerrainParams, height func(worldX, worldZ int) int) *HeightmapGenerator {
	return &HeightmapGenerator{params: params, height: height}
}

// NewFlatGenerator creates terrain with the surface at a constant height.
func NewFlatGenerator(params TerrainParams, height int) *HeightmapGenerator {
	return NewHeightFuncGenerator(params, func(int, int) int { return height })
}

// HeightAt returns the surface height at a world column: voxels with world
// Y below it are solid.
func (g *HeightmapGenerator) HeightAt(worldX, worldZ int) int {
	return g.height(worldX, worldZ)
}

// PopulateChunk fills a chunk from the heightmap.
func (g *HeightmapGenerator) PopulateChunk(c *Chunk) {
	base := c.Position.Scale(ChunkSize)
	for x := 0; x < ChunkSize; x++ {
		wx := int(base.X) + x
		for z := 0; z < ChunkSize; z++ {
			wz := int(base.Z) + z
			surface := g.height(wx, wz)
			for y := 0; y < ChunkSize; y++ {
				wy := int(base.Y) + y
				solid := wy < surface
				c.Set(x, y, z, g.params.classify(wy, solid, surface-1-wy))
			}
		}
	}
}
