package main

import (
	"flag"
	"log/slog"
	"os"

	"aravoxel/internal/config"
	"aravoxel/internal/profiling"

	"github.com/xlab/closer"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML config file (defaults are used when empty)")
		bundlePath = flag.String("out", "", "mesh bundle output path (overrides output.bundle)")
		preview    = flag.String("preview", "", "preview PNG output path (overrides output.preview)")
		workers    = flag.Int("workers", 0, "worker goroutines per phase (overrides world.workers)")
		mode       = flag.String("mode", "", "terrain mode: heightmap, density or flat")
		colors     = flag.String("colors", "", "vertex color mode: ao, tinted or random")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Error("load config", "path", *configPath, "error", err)
			os.Exit(2)
		}
		cfg = loaded
	}
	if *bundlePath != "" {
		cfg.Output.Bundle = *bundlePath
	}
	if *preview != "" {
		cfg.Output.Preview = *preview
	}
	if *workers > 0 {
		cfg.World.Workers = *workers
	}
	if *mode != "" {
		cfg.Terrain.Mode = *mode
	}
	if *colors != "" {
		cfg.Mesh.ColorMode = *colors
	}

	closer.Bind(func() {
		if s := profiling.Summary(5); s != "" {
			log.Debug("profile", "top", s)
		}
	})
	closer.Checked(func() error {
		if err := run(cfg, log); err != nil {
			log.Error("run failed", "error", err)
			return err
		}
		return nil
	}, false)
	closer.Close()
}
