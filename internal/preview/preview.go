package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"aravoxel/internal/world"

	"golang.org/x/image/draw"
)

var background = color.NRGBA{R: 10, G: 10, B: 18, A: 255}

// Render draws a top-down map of the extent: every world column shows the
// tint of its topmost visible voxel, darker the lower it sits. Water is
// blended over whatever lies beneath it. The image is scaled up by scale
// with nearest-neighbor sampling.
func Render(chunks world.ChunkMap, extent world.Extent, scale int) *image.NRGBA {
	size := extent.Size()
	w := int(size.X) * world.ChunkSize
	h := int(size.Z) * world.ChunkSize
	base := extent.Min.Scale(world.ChunkSize)
	top := int(extent.Max.Y)*world.ChunkSize - 1
	bottom := int(extent.Min.Y) * world.ChunkSize

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for px := 0; px < w; px++ {
		for pz := 0; pz < h; pz++ {
			wx := int(base.X) + px
			wz := int(base.Z) + pz
			img.SetNRGBA(px, pz, columnColor(chunks, wx, wz, top, bottom))
		}
	}

	if scale <= 1 {
		return img
	}
	out := image.NewNRGBA(image.Rect(0, 0, w*scale, h*scale))
	draw.NearestNeighbor.Scale(out, out.Bounds(), img, img.Bounds(), draw.Src, nil)
	return out
}

func columnColor(chunks world.ChunkMap, wx, wz, top, bottom int) color.NRGBA {
	underWater := false
	for wy := top; wy >= bottom; wy-- {
		t := chunks.TypeAtWorld(wx, wy, wz)
		if !t.IsVisible() {
			continue
		}
		if t.IsLiquid() {
			underWater = true
			continue
		}
		shade := 0.4 + 0.6*float32(wy-bottom)/float32(max(top-bottom, 1))
		c := t.Color().Mul(shade)
		if underWater {
			wc := world.VoxelWater.Color()
			c = c.Mul(0.5).Add(wc.Mul(0.5))
		}
		return toNRGBA(c.X(), c.Y(), c.Z())
	}
	if underWater {
		wc := world.VoxelWater.Color()
		return toNRGBA(wc.X(), wc.Y(), wc.Z())
	}
	return background
}

func toNRGBA(r, g, b float32) color.NRGBA {
	return color.NRGBA{R: channel(r), G: channel(g), B: channel(b), A: 255}
}

func channel(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}

// SavePNG encodes img to path, creating parent directories.
func SavePNG(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create preview: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode preview: %w", err)
	}
	return f.Close()
}
