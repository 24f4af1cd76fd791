package world

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// VoxelType is the closed set of voxel kinds.
type VoxelType uint8

const (
	VoxelAir VoxelType = iota
	VoxelGrass
	VoxelStone
	VoxelWater

	numVoxelTypes
)

// Texture atlas layout: AtlasTiles x AtlasTiles square tiles.
const (
	AtlasTiles = 4
	atlasTile  = float32(1.0) / AtlasTiles
)

func (t VoxelType) String() string {
	switch t {
	case VoxelAir:
		return "air"
	case VoxelGrass:
		return "grass"
	case VoxelStone:
		return "stone"
	case VoxelWater:
		return "water"
	}
	return fmt.Sprintf("VoxelType(%d)", uint8(t))
}

// Valid reports whether t is one of the known voxel types.
func (t VoxelType) Valid() bool {
	return t < numVoxelTypes
}

// IsVisible is false only for air; invisible voxels are never meshed.
func (t VoxelType) IsVisible() bool {
	switch t {
	case VoxelAir:
		return false
	case VoxelGrass, VoxelStone, VoxelWater:
		return true
	}
	panic(fmt.Sprintf("world: unknown voxel type %d", uint8(t)))
}

// IsLiquid is true only for water.
func (t VoxelType) IsLiquid() bool {
	switch t {
	case VoxelWater:
		return true
	case VoxelAir, VoxelGrass, VoxelStone:
		return false
	}
	panic(fmt.Sprintf("world: unknown voxel type %d", uint8(t)))
}

// ShouldRender reports whether an adjacent solid must still draw its face
// against a voxel of this type.
func (t VoxelType) ShouldRender() bool {
	switch t {
	case VoxelAir, VoxelWater:
		return true
	case VoxelGrass, VoxelStone:
		return false
	}
	panic(fmt.Sprintf("world: unknown voxel type %d", uint8(t)))
}

// Color returns the flat RGBA tint of the type. Air is fully transparent.
func (t VoxelType) Color() mgl32.Vec4 {
	switch t {
	case VoxelAir:
		return mgl32.Vec4{0, 0, 0, 0}
	case VoxelGrass:
		return mgl32.Vec4{0.194, 0.840, 0.160, 1.0}
	case VoxelStone:
		return mgl32.Vec4{0.717, 0.710, 0.717, 1.0}
	case VoxelWater:
		return mgl32.Vec4{0.385, 0.610, 0.770, 0.5}
	}
	panic(fmt.Sprintf("world: unknown voxel type %d", uint8(t)))
}

// atlasTileOf returns the column and row of the type's tile in the atlas.
func (t VoxelType) atlasTileOf() (col, row int) {
	switch t {
	case VoxelAir:
		return AtlasTiles - 1, AtlasTiles - 1
	case VoxelGrass:
		return 0, 0
	case VoxelStone:
		return 1, 0
	case VoxelWater:
		return 2, 0
	}
	panic(fmt.Sprintf("world: unknown voxel type %d", uint8(t)))
}

// UVs returns the atlas texture coordinates for the four corners of a face,
// in the corner order used by the mesher: (-u,-v), (+u,-v), (+u,+v), (-u,+v).
func (t VoxelType) UVs() [4]mgl32.Vec2 {
	col, row := t.atlasTileOf()
	u0 := float32(col) * atlasTile
	v0 := float32(row) * atlasTile
	u1 := u0 + atlasTile
	v1 := v0 + atlasTile
	return [4]mgl32.Vec2{
		{u0, v1},
		{u1, v1},
		{u1, v0},
		{u0, v0},
	}
}
