package world

// DensityGenerator generates 3-D terrain from a density field instead of a
// heightmap. Positive density is solid. This allows overhangs and enclosed
// voids; voids below sea level fill with water.
type DensityGenerator struct {
	params  TerrainParams
	density func(worldX, worldY, worldZ int) float64
}

// NewDensityGenerator creates the noise-driven density terrain:
// density = primary3D * VerticalScale * spline(verticality) + (BaseHeight - y).
func NewDensityGenerator(params TerrainParams) *DensityGenerator {
	primary := params.primary()
	vert := params.verticality()
	f := params.Frequency
	return &DensityGenerator{
		params: params,
		density: func(wx, wy, wz int) float64 {
			sample := primary.Sample3D(float64(wx)*f, float64(wy)*f, float64(wz)*f)
			return sample*params.amplitude(vert, wx, wz) + float64(params.BaseHeight-wy)
		},
	}
}

// NewDensityFuncGenerator uses a caller supplied density field.
func NewDensityFuncGenerator(params TerrainParams, density func(worldX, worldY, worldZ int) float64) *DensityGenerator {
	return &DensityGenerator{params: params, density: density}
}

// PopulateChunk evaluates the density for every voxel in the chunk plus
// GrassDepth voxels above it, so surface depth is known at the chunk top.
func (g *DensityGenerator) PopulateChunk(c *Chunk) {
	base := c.Position.Scale(ChunkSize)
	extra := max(g.params.GrassDepth, 0)
	height := ChunkSize + extra
	solid := make([]bool, height)
	depth := make([]int, height)

	for x := 0; x < ChunkSize; x++ {
		wx := int(base.X) + x
		for z := 0; z < ChunkSize; z++ {
			wz := int(base.Z) + z
			for y := 0; y < height; y++ {
				solid[y] = g.density(wx, int(base.Y)+y, wz) > 0
			}

			// Above the sampled column is unknown; treat it as deep.
			depth[height-1] = extra
			for y := height - 2; y >= 0; y-- {
				if solid[y+1] {
					depth[y] = min(depth[y+1]+1, extra)
				} else {
					depth[y] = 0
				}
			}

			for y := 0; y < ChunkSize; y++ {
				c.Set(x, y, z, g.params.classify(int(base.Y)+y, solid[y], depth[y]))
			}
		}
	}
}
