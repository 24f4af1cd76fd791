package meshing

import (
	"aravoxel/internal/world"
)

// AO levels run from 0 (fully occluded) to 3 (fully lit).
const (
	AOOccluded uint8 = 0
	AOLit      uint8 = 3
)

// aoRing lists the eight in-plane (u, v) sample offsets around a face in
// rotational order, edges at even slots and corners at odd slots.
var aoRing = [8][2]int32{
	{0, -1}, {-1, -1}, {-1, 0}, {-1, 1},
	{0, 1}, {1, 1}, {1, 0}, {1, -1},
}

// aoWindows picks (side1, corner, side2) ring slots for each quad corner.
var aoWindows = [4][3]int{
	{0, 1, 2},
	{6, 7, 0},
	{4, 5, 6},
	{2, 3, 4},
}

var aoBrightness = [4]float32{0.1, 0.3, 0.5, 1.0}

// AOLevel maps the occupancy of two edge neighbors and the corner between
// them to an occlusion level.
func AOLevel(side1, corner, side2 bool) uint8 {
	switch {
	case side1 && side2:
		return AOOccluded
	case !side1 && !corner && !side2:
		return AOLit
	case side1 != side2 && corner:
		return 1
	}
	return 2
}

// Brightness converts an AO level into a color multiplier.
func Brightness(level uint8) float32 {
	if int(level) >= len(aoBrightness) {
		return 1.0
	}
	return aoBrightness[level]
}

// FaceAO turns eight ring samples into the levels of the four corners.
func FaceAO(ring [8]bool) [4]uint8 {
	var out [4]uint8
	for i, w := range aoWindows {
		out[i] = AOLevel(ring[w[0]], ring[w[1]], ring[w[2]])
	}
	return out
}

// SampleRing reports which of the eight voxels around the face of the voxel
// at local position pos are occupied, i.e. would hide a face of current.
func SampleRing(c *world.Chunk, current world.VoxelType, pos world.IVec3, face Face, chunks world.ChunkSource) [8]bool {
	d := faceDefs[face]
	var ring [8]bool
	for i, o := range aoRing {
		ring[i] = !c.IsVoid(current, pos.Add(d.offset(o[0], o[1])), chunks)
	}
	return ring
}

// flipQuad reports whether the quad should be split along its 1-3 diagonal
// instead of 0-2 so the brighter pair of corners shares the diagonal.
func flipQuad(ao [4]uint8) bool {
	return int(ao[1])+int(ao[3]) > int(ao[0])+int(ao[2])
}
