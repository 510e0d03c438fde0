package meshing

import (
	"context"
	"fmt"
	"sync"

	"voxelmesh/internal/chunk"
)

// Algorithm selects which mesh generator a job runs.
type Algorithm string

const (
	AlgorithmCulled Algorithm = "culled"
	AlgorithmGreedy Algorithm = "greedy"
)

// Build runs the selected generator over the input.
func (a Algorithm) Build(input Input) (*Mesh, error) {
	switch a {
	case AlgorithmCulled:
		return Culled(input), nil
	case AlgorithmGreedy:
		return Greedy(input), nil
	}
	return nil, fmt.Errorf("meshing: unknown algorithm %q", string(a))
}

// Job is a request to mesh one chunk. Input.Blocks must be a snapshot the
// workers can read without coordination; chunk.BlockStorage.Snapshot
// provides one.
type Job struct {
	Pos       chunk.Pos
	Input     Input
	Algorithm Algorithm
	// Result receives the outcome when the job completes.
	Result chan Result
}

// Result is the outcome of a meshing job.
type Result struct {
	Pos  chunk.Pos
	Mesh *Mesh
	Err  error
}

// WorkerPool runs mesh generation on background goroutines. Meshing for
// freshly generated chunks is expected to run off the rendering thread;
// the generators themselves are pure, so distinct chunks mesh in parallel
// without locking.
type WorkerPool struct {
	jobQueue chan Job
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

// NewWorkerPool starts a pool with the given number of workers and queue
// capacity.
func NewWorkerPool(workers, queueSize int) *WorkerPool {
	ctx, cancel := context.WithCancel(context.Background())

	pool := &WorkerPool{
		jobQueue: make(chan Job, queueSize),
		ctx:      ctx,
		cancel:   cancel,
	}

	for i := 0; i < workers; i++ {
		pool.wg.Add(1)
		go pool.worker()
	}

	return pool
}

// Submit queues a job without blocking.
// Returns false when the queue is full.
func (p *WorkerPool) Submit(job Job) bool {
	select {
	case p.jobQueue <- job:
		return true
	default:
		return false
	}
}

// SubmitBlocking queues a job, waiting for space. Returns false only if
// the pool shut down first.
func (p *WorkerPool) SubmitBlocking(job Job) bool {
	select {
	case p.jobQueue <- job:
		return true
	case <-p.ctx.Done():
		return false
	}
}

func (p *WorkerPool) worker() {
	defer p.wg.Done()

	for {
		select {
		case job := <-p.jobQueue:
			mesh, err := job.Algorithm.Build(job.Input)
			select {
			case job.Result <- Result{Pos: job.Pos, Mesh: mesh, Err: err}:
			case <-p.ctx.Done():
				return
			}
		case <-p.ctx.Done():
			return
		}
	}
}

// Shutdown stops the workers and waits for them to exit.
func (p *WorkerPool) Shutdown() {
	p.cancel()
	p.wg.Wait()
}

// QueueLen returns the number of queued jobs.
func (p *WorkerPool) QueueLen() int {
	return len(p.jobQueue)
}
