package world

import (
	"crypto/sha256"
	"testing"
)

func TestGeneratorsImplementInterface(t *testing.T) {
	p := DefaultTerrainParams()
	var _ TerrainGenerator = NewHeightmapGenerator(p)
	var _ TerrainGenerator = NewFlatGenerator(p, 10)
	var _ TerrainGenerator = NewDensityGenerator(p)
}

func TestFlatGeneratorHeight(t *testing.T) {
	g := NewFlatGenerator(DefaultTerrainParams(), 10)
	if h := g.HeightAt(0, 0); h != 10 {
		t.Errorf("Expected height 10, got %d", h)
	}
}

// TestFlatGeneratorPopulate checks the solid/air split of a flat world at 16
func TestFlatGeneratorPopulate(t *testing.T) {
	g := NewFlatGenerator(DefaultTerrainParams(), 16)
	c := NewChunk(ChunkCoord{})
	g.PopulateChunk(c)

	for y := 0; y < ChunkSize; y++ {
		for z := 0; z < ChunkSize; z++ {
			for x := 0; x < ChunkSize; x++ {
				got := c.TypeAt(x, y, z)
				var want VoxelType
				switch {
				case y >= 16:
					want = VoxelAir
				case y >= 13:
					want = VoxelGrass
				default:
					want = VoxelStone
				}
				if got != want {
					t.Fatalf("(%d,%d,%d) = %v, want %v", x, y, z, got, want)
				}
			}
		}
	}
}

// TestClassifyWaterAndRockLine checks water fill below sea level and the rock line cap
func TestClassifyWaterAndRockLine(t *testing.T) {
	p := DefaultTerrainParams() // sea 10, grass 3, rock line 23

	low := NewChunk(ChunkCoord{})
	NewFlatGenerator(p, 5).PopulateChunk(low)
	for y, want := range map[int]VoxelType{
		0: VoxelStone, 1: VoxelStone, 2: VoxelGrass, 4: VoxelGrass,
		5: VoxelWater, 9: VoxelWater, 10: VoxelAir,
	} {
		if got := low.TypeAt(7, y, 7); got != want {
			t.Errorf("surface 5, y=%d: %v, want %v", y, got, want)
		}
	}

	high := NewChunk(ChunkCoord{})
	NewFlatGenerator(p, 25).PopulateChunk(high)
	for y, want := range map[int]VoxelType{
		21: VoxelStone, 22: VoxelGrass, 23: VoxelGrass, 24: VoxelStone, 25: VoxelAir,
	} {
		if got := high.TypeAt(7, y, 7); got != want {
			t.Errorf("surface 25, y=%d: %v, want %v", y, got, want)
		}
	}
}

// TestDensityZeroBelowSeaIsWater: a density that is never solid fills the
// whole sub-sea chunk with water.
func TestDensityZeroBelowSeaIsWater(t *testing.T) {
	g := NewDensityFuncGenerator(DefaultTerrainParams(), func(int, int, int) float64 { return 0 })
	c := NewChunk(ChunkCoord{Y: -1})
	g.PopulateChunk(c)

	if n := c.Count(VoxelWater); n != ChunkVolume {
		t.Errorf("water voxels = %d, want %d", n, ChunkVolume)
	}
}

// TestDensityMatchesFlatHeightmap: a density of (h - y) produces the same
// voxels as a flat heightmap at h, including across the chunk top.
func TestDensityMatchesFlatHeightmap(t *testing.T) {
	p := DefaultTerrainParams()
	for _, h := range []int{5, 20, 32, 33} {
		dg := NewDensityFuncGenerator(p, func(_, wy, _ int) float64 { return float64(h - wy) })
		fg := NewFlatGenerator(p, h)
		for _, coord := range []ChunkCoord{{}, {Y: 1}} {
			a := NewChunk(coord)
			dg.PopulateChunk(a)
			b := NewChunk(coord)
			fg.PopulateChunk(b)
			if hashChunk(a) != hashChunk(b) {
				t.Errorf("surface %d chunk %v: density and heightmap differ", h, coord)
			}
		}
	}
}

func TestDensitySolidColumnIsStone(t *testing.T) {
	g := NewDensityFuncGenerator(DefaultTerrainParams(), func(int, int, int) float64 { return 1 })
	c := NewChunk(ChunkCoord{Y: -1})
	g.PopulateChunk(c)
	if n := c.Count(VoxelStone); n != ChunkVolume {
		t.Errorf("stone voxels = %d, want %d", n, ChunkVolume)
	}
}

func hashChunk(c *Chunk) [32]byte {
	h := sha256.New()
	for _, t := range c.Types() {
		h.Write([]byte{byte(t)})
	}
	var result [32]byte
	copy(result[:], h.Sum(nil))
	return result
}

// TestHeightmapDeterminism verifies same seed produces identical terrain
func TestHeightmapDeterminism(t *testing.T) {
	p := DefaultTerrainParams()
	for _, coord := range []ChunkCoord{{}, {X: 1}, {Z: 1}, {X: -1, Y: -1, Z: -1}} {
		a := NewChunk(coord)
		NewHeightmapGenerator(p).PopulateChunk(a)
		b := NewChunk(coord)
		NewHeightmapGenerator(p).PopulateChunk(b)
		if hashChunk(a) != hashChunk(b) {
			t.Errorf("chunk %v not deterministic", coord)
		}
	}
}

// TestHeightmapFollowsHeightAt checks every column is solid exactly below HeightAt
func TestHeightmapFollowsHeightAt(t *testing.T) {
	p := DefaultTerrainParams()
	g := NewHeightmapGenerator(p)
	maxAmp := p.VerticalScale * DefaultSplinePoints[len(DefaultSplinePoints)-1].Out

	for _, coord := range []ChunkCoord{{}, {Y: 1}} {
		c := NewChunk(coord)
		g.PopulateChunk(c)
		base := coord.Scale(ChunkSize)
		for x := 0; x < ChunkSize; x++ {
			for z := 0; z < ChunkSize; z++ {
				wx, wz := int(base.X)+x, int(base.Z)+z
				h := g.HeightAt(wx, wz)
				if float64(h) < float64(p.BaseHeight)-maxAmp-1 || float64(h) > float64(p.BaseHeight)+maxAmp {
					t.Fatalf("HeightAt(%d,%d) = %d outside amplitude", wx, wz, h)
				}
				for y := 0; y < ChunkSize; y++ {
					typ := c.TypeAt(x, y, z)
					solid := typ.IsVisible() && !typ.IsLiquid()
					if solid != (int(base.Y)+y < h) {
						t.Fatalf("(%d,%d,%d) = %v with surface %d", wx, int(base.Y)+y, wz, typ, h)
					}
				}
			}
		}
	}
}

// TestDensityTerrainBounds: the noise term can never outweigh the height
// gradient four chunks away from base height.
func TestDensityTerrainBounds(t *testing.T) {
	g := NewDensityGenerator(DefaultTerrainParams())

	above := NewChunk(ChunkCoord{Y: 4})
	g.PopulateChunk(above)
	if n := above.Count(VoxelAir); n != ChunkVolume {
		t.Errorf("chunk y=4: %d air voxels, want all", n)
	}

	below := NewChunk(ChunkCoord{Y: -4})
	g.PopulateChunk(below)
	if n := below.Count(VoxelStone); n != ChunkVolume {
		t.Errorf("chunk y=-4: %d stone voxels, want all", n)
	}
}

func BenchmarkHeightmapPopulateChunk(b *testing.B) {
	g := NewHeightmapGenerator(DefaultTerrainParams())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c := NewChunk(ChunkCoord{})
		g.PopulateChunk(c)
	}
}

func BenchmarkDensityPopulateChunk(b *testing.B) {
	g := NewDensityGenerator(DefaultTerrainParams())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c := NewChunk(ChunkCoord{})
		g.PopulateChunk(c)
	}
}
