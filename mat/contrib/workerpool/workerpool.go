// Copyright 2025 The matbench Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent, reusable worker pool for
// row-partitioned computation. Unlike mat.Threads, which starts goroutines on
// every call, a Pool is created once and reused, so repeated multiplications
// pay no spawn cost.
//
// Work is split with mat.Partition, exactly like the other strategies: static
// row ranges, remainder on the last one. The calling goroutine always runs the
// last range itself.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	for range iterations {
//	    if err := pool.Multiply(a, b, c, dim, 4); err != nil {
//	        return err
//	    }
//	}
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/ajroetker/matbench/mat"
)

// Pool is a persistent worker pool that can be reused across many parallel
// operations. Workers are spawned once at creation and reused.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

// workItem is one row range to execute.
type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a new worker pool with the specified number of workers.
// Workers are spawned immediately and persist until Close is called.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		// Buffer enough for all workers to have pending work
		workC: make(chan workItem, numWorkers*2),
	}

	for range numWorkers {
		go p.worker()
	}

	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the worker pool. All pending work will complete.
// Calling Close multiple times is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// ParallelRanges calls fn once for every non-empty range and blocks until all
// calls have returned. The last non-empty range runs on the calling
// goroutine; the others are handed to the pool. fn must be safe to call
// concurrently on different ranges.
//
// After Close, ranges are processed sequentially on the caller.
func (p *Pool) ParallelRanges(ranges []mat.Range, fn func(r mat.Range)) {
	last := -1
	for i := len(ranges) - 1; i >= 0; i-- {
		if !ranges[i].Empty() {
			last = i
			break
		}
	}
	if last < 0 {
		return
	}

	if p.closed.Load() {
		for _, r := range ranges[:last+1] {
			if !r.Empty() {
				fn(r)
			}
		}
		return
	}

	var wg sync.WaitGroup
	for _, r := range ranges[:last] {
		if r.Empty() {
			continue
		}
		wg.Add(1)
		p.workC <- workItem{
			fn: func() {
				fn(r)
			},
			barrier: &wg,
		}
	}

	fn(ranges[last])
	wg.Wait()
}

// ParallelFor splits [0, n) into one range per pool worker with
// mat.Partition and calls fn(start, end) for each non-empty range.
// Blocks until all work completes.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	p.ParallelRanges(mat.Partition(n, p.numWorkers), func(r mat.Range) {
		fn(r.Start, r.End())
	})
}

// Name implements mat.Strategy.
func (p *Pool) Name() string {
	return "pooled threads"
}

// Multiply implements mat.Strategy. Rows are split into workers ranges, which
// may be more or fewer than the pool's workers; extra ranges queue up.
func (p *Pool) Multiply(a, b, c []float64, dim, workers int) error {
	if err := mat.CheckOperands(a, b, c, dim, workers); err != nil {
		return err
	}
	p.ParallelRanges(mat.Partition(dim, workers), func(r mat.Range) {
		mat.MultiplyRange(a, b, c, dim, r)
	})
	return nil
}
