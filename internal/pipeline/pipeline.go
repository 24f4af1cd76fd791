package pipeline

import (
	"fmt"
	"log/slog"
	"slices"
	"time"

	"aravoxel/internal/config"
	"aravoxel/internal/meshing"
	"aravoxel/internal/profiling"
	"aravoxel/internal/world"
)

// Stats summarizes a run.
type Stats struct {
	Chunks      int
	OpaqueFaces int
	LiquidFaces int
	Generate    time.Duration
	Mesh        time.Duration
}

// Result is the output of a run: the frozen chunk map and one mesh pair per
// chunk, ordered by chunk coordinate.
type Result struct {
	Chunks world.ChunkMap
	Meshes []meshing.ChunkMesh
	Stats  Stats
}

// Run generates every chunk in the configured extent, waits for all of
// them, then meshes every chunk against the frozen chunk map.
func Run(cfg config.Config, log *slog.Logger) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	gen, err := cfg.Generator()
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}

	extent := cfg.Extent()
	workers := cfg.World.Workers
	log.Info("generating chunks", "chunks", extent.Count(), "mode", cfg.Terrain.Mode, "workers", workers)

	w := world.New(gen)
	start := time.Now()
	stop := profiling.Track("pipeline.generate")
	w.GenerateParallel(extent.Coords(), workers)
	stop()
	genTime := time.Since(start)

	chunks := w.Chunks().Freeze()
	log.Info("generated chunks", "chunks", len(chunks), "elapsed", genTime)

	start = time.Now()
	stop = profiling.Track("pipeline.mesh")
	meshes := MeshAll(chunks, cfg.MeshOptions(), workers)
	stop()
	meshTime := time.Since(start)

	stats := Stats{
		Chunks:   len(chunks),
		Generate: genTime,
		Mesh:     meshTime,
	}
	for _, m := range meshes {
		stats.OpaqueFaces += m.Opaque.FaceCount()
		stats.LiquidFaces += m.Liquid.FaceCount()
	}
	log.Info("meshed chunks",
		"chunks", len(meshes),
		"opaque_faces", stats.OpaqueFaces,
		"liquid_faces", stats.LiquidFaces,
		"elapsed", meshTime)

	return &Result{Chunks: chunks, Meshes: meshes, Stats: stats}, nil
}

// MeshAll meshes every chunk in the map on a worker pool. The map must not
// change while MeshAll runs. Results are sorted by chunk coordinate.
func MeshAll(chunks world.ChunkMap, opts meshing.Options, workers int) []meshing.ChunkMesh {
	coords := chunks.Coords()
	results := make(chan meshing.ChunkMesh, len(coords))

	pool := meshing.NewWorkerPool(workers, len(coords))
	for _, coord := range coords {
		job := meshing.MeshJob{
			Chunk:      chunks[coord],
			Chunks:     chunks,
			Options:    opts,
			ResultChan: results,
		}
		if !pool.SubmitJob(job) {
			pool.SubmitJobBlocking(job)
		}
	}
	pool.Shutdown()
	close(results)

	out := make([]meshing.ChunkMesh, 0, len(coords))
	for m := range results {
		out = append(out, m)
	}
	slices.SortFunc(out, func(a, b meshing.ChunkMesh) int {
		switch {
		case a.Coord.Less(b.Coord):
			return -1
		case b.Coord.Less(a.Coord):
			return 1
		}
		return 0
	})
	return out
}
