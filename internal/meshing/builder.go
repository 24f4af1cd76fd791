package meshing

import (
	"fmt"
	"math/rand"

	"aravoxel/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// ColorMode selects how vertex colors are derived.
type ColorMode uint8

const (
	// ColorAO shades by ambient occlusion only.
	ColorAO ColorMode = iota
	// ColorTinted multiplies the AO shade by the voxel type's tint.
	ColorTinted
	// ColorRandom replaces colors with random RGB. Debug only; geometry, AO
	// levels and indices are unaffected.
	ColorRandom
)

// ParseColorMode maps a config name to a ColorMode.
func ParseColorMode(s string) (ColorMode, error) {
	switch s {
	case "", "ao":
		return ColorAO, nil
	case "tinted":
		return ColorTinted, nil
	case "random":
		return ColorRandom, nil
	}
	return 0, fmt.Errorf("unknown color mode %q", s)
}

// Options configures a mesh build.
type Options struct {
	ColorMode ColorMode
	// RandomSeed seeds ColorRandom; each chunk mixes in its coordinate.
	RandomSeed int64
	// Per-surface color scale, also written as vertex alpha.
	OpaqueAlpha float32
	LiquidAlpha float32
}

// DefaultOptions returns AO shading with opaque alpha 1.0 and liquid alpha 0.3.
func DefaultOptions() Options {
	return Options{
		ColorMode:   ColorAO,
		OpaqueAlpha: 1.0,
		LiquidAlpha: 0.3,
	}
}

// ChunkMesh is the pair of surfaces built for one chunk.
type ChunkMesh struct {
	Coord  world.ChunkCoord
	Opaque *Mesh
	Liquid *Mesh
}

// BuildChunk is Build wrapped with the chunk coordinate.
func BuildChunk(c *world.Chunk, chunks world.ChunkSource, opts Options) ChunkMesh {
	opaque, liquid := Build(c, chunks, opts)
	return ChunkMesh{Coord: c.Position, Opaque: opaque, Liquid: liquid}
}

// Build emits one quad for every exposed face of every visible voxel in c.
// Liquid voxels go to the liquid mesh, everything else to the opaque mesh.
// chunks is only read and resolves neighbors across chunk borders.
func Build(c *world.Chunk, chunks world.ChunkSource, opts Options) (opaque, liquid *Mesh) {
	opaque, liquid = &Mesh{}, &Mesh{}

	for x := 0; x < world.ChunkSize; x++ {
		for y := 0; y < world.ChunkSize; y++ {
			for z := 0; z < world.ChunkSize; z++ {
				v := c.At(x, y, z)
				if !v.Type.IsVisible() {
					continue
				}
				dst := opaque
				if v.Type.IsLiquid() {
					dst = liquid
				}
				emitVoxel(dst, c, v, chunks)
			}
		}
	}

	shade(opaque, opts, opts.OpaqueAlpha, c.Position, 0)
	shade(liquid, opts, opts.LiquidAlpha, c.Position, 1)
	return opaque, liquid
}

func emitVoxel(m *Mesh, c *world.Chunk, v world.Voxel, chunks world.ChunkSource) {
	center := mgl32.Vec3{float32(v.World.X), float32(v.World.Y), float32(v.World.Z)}
	uvs := v.Type.UVs()
	for _, f := range Faces {
		if !c.IsVoid(v.Type, v.Local.Add(f.Normal()), chunks) {
			continue
		}
		ao := FaceAO(SampleRing(c, v.Type, v.Local, f, chunks))
		m.addQuad(v.Type, f.corners(center), f.Normal32(), uvs, ao)
	}
}

// shade derives per-vertex colors from the AO levels.
func shade(m *Mesh, opts Options, alpha float32, coord world.ChunkCoord, surface int64) {
	m.Colors = make([]mgl32.Vec4, len(m.Vertices))

	if opts.ColorMode == ColorRandom {
		seed := opts.RandomSeed ^ int64(coord.X)*73856093 ^ int64(coord.Y)*19349663 ^ int64(coord.Z)*83492791 ^ surface
		rng := rand.New(rand.NewSource(seed))
		for i := range m.Colors {
			m.Colors[i] = mgl32.Vec4{rng.Float32(), rng.Float32(), rng.Float32(), 1.0}
		}
		return
	}

	for i, level := range m.AO {
		b := Brightness(level) * alpha
		c := mgl32.Vec4{b, b, b, alpha}
		if opts.ColorMode == ColorTinted {
			tint := m.types[i/4].Color()
			c = mgl32.Vec4{b * tint.X(), b * tint.Y(), b * tint.Z(), alpha}
		}
		m.Colors[i] = c
	}
}
