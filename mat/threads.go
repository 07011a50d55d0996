// Copyright 2025 The matbench Authors. SPDX-License-Identifier: Apache-2.0

package mat

import "sync"

// Threads splits the rows across goroutines that share the output buffer.
var Threads = Func("parallel threads", MultiplyThreads)

// task describes the work of one goroutine. Tasks only live for the duration
// of one MultiplyThreads call.
type task struct {
	a, b, c []float64
	dim     int
	rows    Range
}

func (t *task) run() {
	MultiplyRange(t.a, t.b, t.c, t.dim, t.rows)
}

// MultiplyThreads computes c = a * b with workers goroutines.
//
// It starts workers-1 goroutines, one per row range from Partition, runs the
// last range on the calling goroutine and waits for the others. All of them
// write directly into c; no locking is needed since the ranges are disjoint.
func MultiplyThreads(a, b, c []float64, dim, workers int) error {
	if err := CheckOperands(a, b, c, dim, workers); err != nil {
		return err
	}

	ranges := Partition(dim, workers)
	tasks := make([]task, workers)
	for i, r := range ranges {
		tasks[i] = task{a: a, b: b, c: c, dim: dim, rows: r}
	}

	var wg sync.WaitGroup
	wg.Add(workers - 1)
	for i := range workers - 1 {
		go func(t *task) {
			defer wg.Done()
			t.run()
		}(&tasks[i])
	}

	// The caller takes the last (and largest) range itself.
	tasks[workers-1].run()
	wg.Wait()
	return nil
}
