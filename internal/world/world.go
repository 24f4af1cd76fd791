package world

import "sync"

// World owns the generator and the chunk map that neighbor queries read.
type World struct {
	gen    TerrainGenerator
	chunks *ChunkStore
}

// New creates an empty world backed by gen.
func New(gen TerrainGenerator) *World {
	return &World{
		gen:    gen,
		chunks: NewChunkStore(),
	}
}

// Generate builds the chunk at coord without publishing it. The result
// depends only on coord and the generator's fixed parameters.
func (w *World) Generate(coord ChunkCoord) *Chunk {
	c := NewChunk(coord)
	w.gen.PopulateChunk(c)
	return c
}

// GenerateChunk builds the chunk at coord and inserts it into the chunk
// map, replacing any chunk already stored at that coordinate.
func (w *World) GenerateChunk(coord ChunkCoord) *Chunk {
	c := w.Generate(coord)
	w.chunks.Insert(c)
	return c
}

// GenerateExtent generates every chunk in the extent sequentially.
func (w *World) GenerateExtent(e Extent) {
	for _, coord := range e.Coords() {
		w.GenerateChunk(coord)
	}
}

// GenerateParallel generates the given coordinates on workers goroutines.
// Each worker writes only to the chunk it allocated; the store insert is
// the one synchronized step. It returns once every chunk is stored.
func (w *World) GenerateParallel(coords []ChunkCoord, workers int) {
	jobs := make(chan ChunkCoord, len(coords))
	for _, c := range coords {
		jobs <- c
	}
	close(jobs)

	var wg sync.WaitGroup
	for i := 0; i < max(workers, 1); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for coord := range jobs {
				w.GenerateChunk(coord)
			}
		}()
	}
	wg.Wait()
}

// Chunks returns the world's chunk store.
func (w *World) Chunks() *ChunkStore {
	return w.chunks
}
