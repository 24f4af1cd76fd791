package main

import (
	"fmt"
	"log/slog"

	"aravoxel/internal/config"
	"aravoxel/internal/export"
	"aravoxel/internal/pipeline"
	"aravoxel/internal/preview"
)

func run(cfg config.Config, log *slog.Logger) error {
	res, err := pipeline.Run(cfg, log)
	if err != nil {
		return err
	}

	if cfg.Output.Bundle != "" {
		if err := export.WriteBundle(cfg.Output.Bundle, res.Meshes); err != nil {
			return fmt.Errorf("write bundle: %w", err)
		}
		log.Info("wrote mesh bundle", "path", cfg.Output.Bundle, "chunks", len(res.Meshes))
	}

	if cfg.Output.Preview != "" {
		img := preview.Render(res.Chunks, cfg.Extent(), cfg.Output.PreviewScale)
		if err := preview.SavePNG(cfg.Output.Preview, img); err != nil {
			return fmt.Errorf("write preview: %w", err)
		}
		log.Info("wrote preview", "path", cfg.Output.Preview, "width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	}
	return nil
}
