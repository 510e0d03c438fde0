package meshing

import (
	"testing"
	"time"

	"voxelmesh/internal/chunk"
)

func TestWorkerPoolMeshesChunks(t *testing.T) {
	pool := NewWorkerPool(2, 8)
	defer pool.Shutdown()

	const jobs = 4
	results := make(chan Result, jobs)
	for i := 0; i < jobs; i++ {
		blocks := emptyBlocks()
		setBlock(blocks, i, 0, 0, blockStone)

		ok := pool.SubmitBlocking(Job{
			Pos:       chunk.Pos{X: i},
			Input:     testInput(blocks),
			Algorithm: AlgorithmGreedy,
			Result:    results,
		})
		if !ok {
			t.Fatalf("job %d rejected", i)
		}
	}

	seen := make(map[int]bool)
	for i := 0; i < jobs; i++ {
		select {
		case r := <-results:
			if r.Err != nil {
				t.Fatalf("job %v failed: %v", r.Pos, r.Err)
			}
			if len(r.Mesh.Vertices) != 24 {
				t.Fatalf("job %v: %d vertices, want 24", r.Pos, len(r.Mesh.Vertices))
			}
			seen[r.Pos.X] = true
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for mesh results")
		}
	}
	if len(seen) != jobs {
		t.Fatalf("got results for %d distinct chunks, want %d", len(seen), jobs)
	}
}

func TestWorkerPoolUnknownAlgorithm(t *testing.T) {
	pool := NewWorkerPool(1, 1)
	defer pool.Shutdown()

	results := make(chan Result, 1)
	pool.SubmitBlocking(Job{
		Input:     testInput(emptyBlocks()),
		Algorithm: Algorithm("voronoi"),
		Result:    results,
	})

	select {
	case r := <-results:
		if r.Err == nil {
			t.Fatal("unknown algorithm did not error")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for result")
	}
}

func TestSubmitRejectsWhenFull(t *testing.T) {
	// no workers: the queue can only drain on shutdown
	pool := NewWorkerPool(0, 1)
	defer pool.Shutdown()

	job := Job{Input: testInput(emptyBlocks()), Algorithm: AlgorithmCulled, Result: make(chan Result, 1)}
	if !pool.Submit(job) {
		t.Fatal("first job rejected with an empty queue")
	}
	if pool.Submit(job) {
		t.Fatal("second job accepted with a full queue")
	}
	if pool.QueueLen() != 1 {
		t.Fatalf("QueueLen() = %d, want 1", pool.QueueLen())
	}
}
