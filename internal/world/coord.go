package world

import "fmt"

// IVec3 is an integer 3-vector used for voxel positions and chunk grid coordinates.
type IVec3 struct {
	X, Y, Z int32
}

// ChunkCoord addresses a chunk on the chunk grid (not world units).
type ChunkCoord = IVec3

// Add returns the component-wise sum.
func (v IVec3) Add(o IVec3) IVec3 {
	return IVec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Scale multiplies every component by s.
func (v IVec3) Scale(s int32) IVec3 {
	return IVec3{v.X * s, v.Y * s, v.Z * s}
}

func (v IVec3) String() string {
	return fmt.Sprintf("(%d,%d,%d)", v.X, v.Y, v.Z)
}

// Less orders coordinates by X, then Y, then Z.
func (v IVec3) Less(o IVec3) bool {
	if v.X != o.X {
		return v.X < o.X
	}
	if v.Y != o.Y {
		return v.Y < o.Y
	}
	return v.Z < o.Z
}

// Extent is a rectangular range of chunk coordinates. Max is exclusive.
type Extent struct {
	Min, Max ChunkCoord
}

// Size returns the number of chunks along each axis.
func (e Extent) Size() IVec3 {
	return IVec3{
		max(e.Max.X-e.Min.X, 0),
		max(e.Max.Y-e.Min.Y, 0),
		max(e.Max.Z-e.Min.Z, 0),
	}
}

// Count returns the total number of chunk coordinates in the extent.
func (e Extent) Count() int {
	s := e.Size()
	return int(s.X) * int(s.Y) * int(s.Z)
}

// Contains reports whether c lies inside the extent.
func (e Extent) Contains(c ChunkCoord) bool {
	return c.X >= e.Min.X && c.X < e.Max.X &&
		c.Y >= e.Min.Y && c.Y < e.Max.Y &&
		c.Z >= e.Min.Z && c.Z < e.Max.Z
}

// Coords lists every coordinate in the extent in X, Y, Z order.
func (e Extent) Coords() []ChunkCoord {
	out := make([]ChunkCoord, 0, e.Count())
	for x := e.Min.X; x < e.Max.X; x++ {
		for y := e.Min.Y; y < e.Max.Y; y++ {
			for z := e.Min.Z; z < e.Max.Z; z++ {
				out = append(out, ChunkCoord{X: x, Y: y, Z: z})
			}
		}
	}
	return out
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// mod returns the non-negative remainder of a / b.
func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

// ChunkOf returns the chunk containing the world-space voxel position and
// the voxel's local position inside that chunk.
func ChunkOf(wx, wy, wz int) (ChunkCoord, IVec3) {
	c := ChunkCoord{
		X: int32(floorDiv(wx, ChunkSize)),
		Y: int32(floorDiv(wy, ChunkSize)),
		Z: int32(floorDiv(wz, ChunkSize)),
	}
	l := IVec3{
		X: int32(mod(wx, ChunkSize)),
		Y: int32(mod(wy, ChunkSize)),
		Z: int32(mod(wz, ChunkSize)),
	}
	return c, l
}
