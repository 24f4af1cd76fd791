package meshing

import (
	"testing"

	"aravoxel/internal/world"
)

func TestSubmitJobFullQueue(t *testing.T) {
	c := world.NewChunk(world.ChunkCoord{})
	chunks := world.ChunkMap{c.Position: c}
	results := make(chan ChunkMesh) // unbuffered and unread: the worker blocks on its first result
	job := MeshJob{Chunk: c, Chunks: chunks, Options: DefaultOptions(), ResultChan: results}

	pool := NewWorkerPool(1, 1)
	pool.SubmitJobBlocking(job)
	// Returns only once the worker has taken the first job.
	pool.SubmitJobBlocking(job)

	if pool.SubmitJob(job) {
		t.Fatal("SubmitJob succeeded with a full queue")
	}

	done := make(chan int)
	go func() {
		n := 0
		for range results {
			n++
		}
		done <- n
	}()
	pool.Shutdown()
	close(results)
	if n := <-done; n != 2 {
		t.Errorf("got %d results, want 2", n)
	}
}

func TestSubmitJobAccepted(t *testing.T) {
	c := world.NewChunk(world.ChunkCoord{})
	c.Set(0, 0, 0, world.VoxelStone)
	results := make(chan ChunkMesh, 1)

	pool := NewWorkerPool(0, 1)
	if !pool.SubmitJob(MeshJob{Chunk: c, Chunks: world.ChunkMap{c.Position: c}, Options: DefaultOptions(), ResultChan: results}) {
		t.Fatal("SubmitJob rejected a job with room in the queue")
	}
	pool.Shutdown()

	m := <-results
	if m.Coord != c.Position || m.Opaque.FaceCount() != 6 {
		t.Errorf("result %v with %d faces, want 6", m.Coord, m.Opaque.FaceCount())
	}
}
