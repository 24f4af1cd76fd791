package meshing

import (
	"aravoxel/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// Face identifies one of the six axis-aligned faces of a voxel.
type Face uint8

const (
	FaceTop    Face = iota // +Y
	FaceBottom             // -Y
	FaceEast               // +X
	FaceWest               // -X
	FaceNorth              // +Z
	FaceSouth              // -Z
)

// Faces lists every face in emission order.
var Faces = [6]Face{FaceTop, FaceBottom, FaceEast, FaceWest, FaceNorth, FaceSouth}

// faceDef describes a face by its outward normal and two in-plane axes with
// u x v = normal, so corners listed (-u,-v), (+u,-v), (+u,+v), (-u,+v) wind
// counter-clockwise seen from outside.
type faceDef struct {
	normal world.IVec3
	u, v   world.IVec3
}

var faceDefs = [6]faceDef{
	FaceTop:    {normal: world.IVec3{Y: 1}, u: world.IVec3{Z: 1}, v: world.IVec3{X: 1}},
	FaceBottom: {normal: world.IVec3{Y: -1}, u: world.IVec3{X: 1}, v: world.IVec3{Z: 1}},
	FaceEast:   {normal: world.IVec3{X: 1}, u: world.IVec3{Y: 1}, v: world.IVec3{Z: 1}},
	FaceWest:   {normal: world.IVec3{X: -1}, u: world.IVec3{Z: 1}, v: world.IVec3{Y: 1}},
	FaceNorth:  {normal: world.IVec3{Z: 1}, u: world.IVec3{X: 1}, v: world.IVec3{Y: 1}},
	FaceSouth:  {normal: world.IVec3{Z: -1}, u: world.IVec3{Y: 1}, v: world.IVec3{X: 1}},
}

// cornerSigns are the (u, v) signs of the four quad corners.
var cornerSigns = [4][2]int32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}

func (f Face) String() string {
	switch f {
	case FaceTop:
		return "top"
	case FaceBottom:
		return "bottom"
	case FaceEast:
		return "east"
	case FaceWest:
		return "west"
	case FaceNorth:
		return "north"
	case FaceSouth:
		return "south"
	}
	return "unknown"
}

// Normal returns the outward unit normal of the face.
func (f Face) Normal() world.IVec3 {
	return faceDefs[f].normal
}

// Normal32 returns the outward unit normal as a float vector.
func (f Face) Normal32() mgl32.Vec3 {
	return vec3(faceDefs[f].normal)
}

// offset returns normal + a*u + b*v.
func (d faceDef) offset(a, b int32) world.IVec3 {
	return d.normal.Add(d.u.Scale(a)).Add(d.v.Scale(b))
}

// corners returns the four corner positions of the face of the unit cube
// centered on center.
func (f Face) corners(center mgl32.Vec3) [4]mgl32.Vec3 {
	d := faceDefs[f]
	n := vec3(d.normal).Mul(0.5)
	u := vec3(d.u).Mul(0.5)
	v := vec3(d.v).Mul(0.5)
	var out [4]mgl32.Vec3
	for i, s := range cornerSigns {
		out[i] = center.Add(n).Add(u.Mul(float32(s[0]))).Add(v.Mul(float32(s[1])))
	}
	return out
}

func vec3(v world.IVec3) mgl32.Vec3 {
	return mgl32.Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}
