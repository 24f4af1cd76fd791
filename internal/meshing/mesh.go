package meshing

import (
	"aravoxel/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// Index patterns for one quad: the default splits along corners 0-2, the
// flipped one along corners 1-3. Both keep counter-clockwise winding.
var (
	quadIndices        = [6]uint32{0, 1, 2, 0, 2, 3}
	flippedQuadIndices = [6]uint32{1, 2, 3, 1, 3, 0}
)

// Mesh holds the vertex attribute streams of one render surface. Every
// stream except Indices has one entry per vertex.
type Mesh struct {
	Vertices []mgl32.Vec3
	Normals  []mgl32.Vec3
	UVs      []mgl32.Vec2
	AO       []uint8
	Colors   []mgl32.Vec4
	Indices  []uint32

	// voxel type of every quad, for tinted shading
	types []world.VoxelType
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// FaceCount returns the number of quads.
func (m *Mesh) FaceCount() int {
	return len(m.Vertices) / 4
}

// Empty reports whether the mesh has no geometry.
func (m *Mesh) Empty() bool {
	return len(m.Vertices) == 0
}

// addQuad appends one face. Indices are offset by the current vertex count.
func (m *Mesh) addQuad(t world.VoxelType, corners [4]mgl32.Vec3, normal mgl32.Vec3, uvs [4]mgl32.Vec2, ao [4]uint8) {
	base := uint32(len(m.Vertices))
	pattern := quadIndices
	if flipQuad(ao) {
		pattern = flippedQuadIndices
	}
	for _, i := range pattern {
		m.Indices = append(m.Indices, base+i)
	}
	m.Vertices = append(m.Vertices, corners[:]...)
	m.Normals = append(m.Normals, normal, normal, normal, normal)
	m.UVs = append(m.UVs, uvs[:]...)
	m.AO = append(m.AO, ao[:]...)
	m.types = append(m.types, t)
}
