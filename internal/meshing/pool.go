package meshing

import (
	"sync"

	"aravoxel/internal/world"
)

// MeshJob is a request to mesh one chunk.
type MeshJob struct {
	Chunk   *world.Chunk
	Chunks  world.ChunkSource
	Options Options
	// ResultChan receives the built meshes.
	ResultChan chan<- ChunkMesh
}

// WorkerPool runs mesh jobs on a fixed set of goroutines. Jobs only read
// their chunk and chunk source, so any number may run at once as long as
// nothing writes to the chunks.
type WorkerPool struct {
	jobQueue chan MeshJob
	wg       sync.WaitGroup
}

// NewWorkerPool starts workers goroutines sharing a queue of queueSize.
func NewWorkerPool(workers int, queueSize int) *WorkerPool {
	workers = max(workers, 1)
	pool := &WorkerPool{
		jobQueue: make(chan MeshJob, queueSize),
	}

	for i := 0; i < workers; i++ {
		pool.wg.Add(1)
		go pool.worker()
	}

	return pool
}

// SubmitJob queues a job without blocking. It returns false if the queue is full.
func (p *WorkerPool) SubmitJob(job MeshJob) bool {
	select {
	case p.jobQueue <- job:
		return true
	default:
		return false
	}
}

// SubmitJobBlocking queues a job, waiting for room in the queue.
func (p *WorkerPool) SubmitJobBlocking(job MeshJob) {
	p.jobQueue <- job
}

func (p *WorkerPool) worker() {
	defer p.wg.Done()

	for job := range p.jobQueue {
		job.ResultChan <- BuildChunk(job.Chunk, job.Chunks, job.Options)
	}
}

// Shutdown stops accepting jobs and waits for queued jobs to finish.
func (p *WorkerPool) Shutdown() {
	close(p.jobQueue)
	p.wg.Wait()
}
