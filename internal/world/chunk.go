package world

import "fmt"

const (
	// ChunkSize is the edge length of a chunk in voxels.
	ChunkSize = 32
	// ChunkArea is the number of voxels in one horizontal layer.
	ChunkArea = ChunkSize * ChunkSize
	// ChunkVolume is the number of voxels in a chunk.
	ChunkVolume = ChunkArea * ChunkSize
)

// Voxel is a single grid cell. Positions are cached at chunk creation and
// never change afterwards.
type Voxel struct {
	Local IVec3
	World IVec3
	Type  VoxelType
}

// Chunk is a fixed 32^3 cube of voxels addressed by its grid coordinate.
type Chunk struct {
	Position ChunkCoord
	voxels   [ChunkVolume]Voxel
}

// ChunkSource resolves chunk coordinates to chunks for cross-chunk neighbor
// queries. It is only ever read from.
type ChunkSource interface {
	Chunk(coord ChunkCoord) (*Chunk, bool)
}

// InBounds reports whether the local position lies inside a chunk.
func InBounds(x, y, z int) bool {
	return x >= 0 && x < ChunkSize && y >= 0 && y < ChunkSize && z >= 0 && z < ChunkSize
}

// Index converts a local position to the flat voxel index x + 32*z + 1024*y.
// It panics on positions outside the chunk.
func Index(x, y, z int) int {
	if !InBounds(x, y, z) {
		panic(fmt.Sprintf("world: local position (%d,%d,%d) outside chunk", x, y, z))
	}
	return x + ChunkSize*z + ChunkArea*y
}

// Decode is the inverse of Index.
func Decode(i int) (x, y, z int) {
	if i < 0 || i >= ChunkVolume {
		panic(fmt.Sprintf("world: voxel index %d outside chunk", i))
	}
	y = i / ChunkArea
	rem := i % ChunkArea
	z = rem / ChunkSize
	x = rem % ChunkSize
	return x, y, z
}

// NewChunk allocates an all-air chunk with cached local and world positions.
func NewChunk(coord ChunkCoord) *Chunk {
	c := &Chunk{Position: coord}
	base := coord.Scale(ChunkSize)
	for i := range c.voxels {
		x, y, z := Decode(i)
		local := IVec3{int32(x), int32(y), int32(z)}
		c.voxels[i] = Voxel{
			Local: local,
			World: base.Add(local),
			Type:  VoxelAir,
		}
	}
	return c
}

// At returns the voxel at the local position.
func (c *Chunk) At(x, y, z int) Voxel {
	return c.voxels[Index(x, y, z)]
}

// VoxelAt returns the voxel stored at flat index i.
func (c *Chunk) VoxelAt(i int) Voxel {
	return c.voxels[i]
}

// TypeAt returns the voxel type at the local position.
func (c *Chunk) TypeAt(x, y, z int) VoxelType {
	return c.voxels[Index(x, y, z)].Type
}

// Set changes the type of a voxel. Only generators call this, before the
// chunk is published to a ChunkStore.
func (c *Chunk) Set(x, y, z int, t VoxelType) {
	c.voxels[Index(x, y, z)].Type = t
}

// Types returns a copy of the voxel types in flat index order.
func (c *Chunk) Types() []VoxelType {
	out := make([]VoxelType, ChunkVolume)
	for i := range c.voxels {
		out[i] = c.voxels[i].Type
	}
	return out
}

// Count returns how many voxels of type t the chunk holds.
func (c *Chunk) Count(t VoxelType) int {
	n := 0
	for i := range c.voxels {
		if c.voxels[i].Type == t {
			n++
		}
	}
	return n
}

// IsVoid decides whether a voxel of type current at some position must draw
// the face that looks at pos. pos is local to c and may lie outside it by
// one voxel on any axis; such positions are resolved in the neighbor chunk
// taken from chunks.
//
// A liquid draws a face only against air, so water bodies have no internal
// faces. A solid draws against anything that ShouldRender. A neighbor chunk
// that is not present counts as void and the face is drawn.
func (c *Chunk) IsVoid(current VoxelType, pos IVec3, chunks ChunkSource) bool {
	x, y, z := int(pos.X), int(pos.Y), int(pos.Z)
	if InBounds(x, y, z) {
		return faceVisible(current, c.voxels[Index(x, y, z)].Type)
	}

	nc := c.Position
	x, nc.X = wrapAxis(x, nc.X)
	y, nc.Y = wrapAxis(y, nc.Y)
	z, nc.Z = wrapAxis(z, nc.Z)

	if chunks == nil {
		return true
	}
	neighbor, ok := chunks.Chunk(nc)
	if !ok || neighbor == nil {
		return true
	}
	return faceVisible(current, neighbor.voxels[Index(x, y, z)].Type)
}

// wrapAxis moves a local coordinate that overflowed by one into the
// adjacent chunk along that axis.
func wrapAxis(local int, chunk int32) (int, int32) {
	switch {
	case local >= ChunkSize:
		return 0, chunk + 1
	case local < 0:
		return ChunkSize - 1, chunk - 1
	}
	return local, chunk
}

func faceVisible(current, neighbor VoxelType) bool {
	if current.IsLiquid() {
		return !neighbor.IsVisible()
	}
	return neighbor.ShouldRender()
}
