package engine

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"toroid-life/internal/core"
)

// Parallel partitions the output grid into disjoint row bands and evaluates
// them on concurrent workers. Every unit of work reads only the src buffer
// and writes only its own rows of dst, so the partition needs no locking;
// Evaluate blocks until the final worker has joined.
type Parallel struct {
	workers int
}

// NewParallel returns a parallel engine running the given number of worker
// goroutines. workers <= 0 selects one worker per available CPU.
func NewParallel(workers int) (*Parallel, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers < 1 {
		return nil, fmt.Errorf("parallel engine needs at least one worker, got %d", workers)
	}
	return &Parallel{workers: workers}, nil
}

// Name identifies the backend.
func (p *Parallel) Name() string { return "parallel" }

// Evaluate computes the next generation of src into dst, one row band per
// worker.
func (p *Parallel) Evaluate(dst, src *core.Grid) error {
	if err := checkBuffers(dst, src); err != nil {
		return err
	}
	band := (src.H + p.workers - 1) / p.workers
	var eg errgroup.Group
	for lo := 0; lo < src.H; lo += band {
		lo, hi := lo, min(lo+band, src.H)
		eg.Go(func() error {
			evalRows(dst, src, lo, hi)
			return nil
		})
	}
	return eg.Wait()
}

func init() {
	Register("parallel", func() (Engine, error) { return NewParallel(0) })
}
