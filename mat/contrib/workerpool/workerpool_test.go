// Copyright 2025 The matbench Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/ajroetker/matbench/mat"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	if pool.NumWorkers() != 4 {
		t.Errorf("NumWorkers() = %d, want 4", pool.NumWorkers())
	}
}

func TestNewDefault(t *testing.T) {
	pool := New(0)
	defer pool.Close()

	if pool.NumWorkers() != runtime.GOMAXPROCS(0) {
		t.Errorf("NumWorkers() = %d, want %d", pool.NumWorkers(), runtime.GOMAXPROCS(0))
	}
}

func TestParallelFor(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 103
	results := make([]int, n)

	pool.ParallelFor(n, func(start, end int) {
		for i := start; i < end; i++ {
			results[i] = i * 2
		}
	})

	for i := 0; i < n; i++ {
		if results[i] != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2)
		}
	}
}

func TestParallelForSmallN(t *testing.T) {
	pool := New(8)
	defer pool.Close()

	// Test with n smaller than workers
	n := 3
	var count, calls atomic.Int32

	pool.ParallelFor(n, func(start, end int) {
		calls.Add(1)
		count.Add(int32(end - start))
	})

	if count.Load() != int32(n) {
		t.Errorf("count = %d, want %d", count.Load(), n)
	}
	// base chunk is 0, so only the last range has rows.
	if calls.Load() != 1 {
		t.Errorf("calls = %d, want 1", calls.Load())
	}
}

func TestParallelForZeroN(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	var called bool
	pool.ParallelFor(0, func(start, end int) {
		called = true
	})

	if called {
		t.Error("ParallelFor with n=0 should not call fn")
	}
}

func TestParallelRangesLastOnCaller(t *testing.T) {
	pool := New(2)
	defer pool.Close()

	ranges := mat.Partition(10, 4)
	var mu sync.Mutex
	seen := map[mat.Range]bool{}
	pool.ParallelRanges(ranges, func(r mat.Range) {
		mu.Lock()
		defer mu.Unlock()
		if seen[r] {
			t.Errorf("range %v executed twice", r)
		}
		seen[r] = true
	})

	if len(seen) != len(ranges) {
		t.Errorf("executed %d ranges, want %d", len(seen), len(ranges))
	}
}

func TestCloseMultipleTimes(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close() // Should not panic
}

func TestClosedPoolFallback(t *testing.T) {
	pool := New(4)
	pool.Close()

	n := 100
	results := make([]int, n)

	// Should still work (sequential fallback)
	pool.ParallelFor(n, func(start, end int) {
		for i := start; i < end; i++ {
			results[i] = i * 2
		}
	})

	for i := 0; i < n; i++ {
		if results[i] != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2)
		}
	}
}

func TestMultiplyMatchesSerial(t *testing.T) {
	pool := New(3)
	defer pool.Close()

	for _, tc := range []struct{ dim, workers int }{{2, 1}, {2, 3}, {4, 3}, {5, 10}, {37, 6}} {
		t.Run(fmt.Sprintf("%d/%d", tc.dim, tc.workers), func(t *testing.T) {
			a, err := mat.New(tc.dim)
			if err != nil {
				t.Fatal(err)
			}
			a.FillSequential()
			b := a.Clone()
			for i := range b.Data {
				b.Data[i] = 1 / b.Data[i]
			}

			gold, err := mat.Mul(a, b)
			if err != nil {
				t.Fatal(err)
			}
			c, _ := mat.New(tc.dim)
			if err := pool.Multiply(a.Data, b.Data, c.Data, tc.dim, tc.workers); err != nil {
				t.Fatal(err)
			}
			if err := mat.Verify(c.Data, gold.Data, tc.dim); err != nil {
				t.Error(err)
			}
		})
	}
}

func TestMultiplyBadWorkers(t *testing.T) {
	pool := New(2)
	defer pool.Close()
	buf := make([]float64, 4)
	if err := pool.Multiply(buf, buf, buf, 2, 0); err == nil {
		t.Error("Multiply with 0 workers should fail")
	}
	if pool.Name() != "pooled threads" {
		t.Errorf("Name() = %q", pool.Name())
	}
}

func BenchmarkParallelFor(b *testing.B) {
	pool := New(0) // Use GOMAXPROCS
	defer pool.Close()

	n := 1000

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pool.ParallelFor(n, func(start, end int) {
			// Simulate work
			for j := start; j < end; j++ {
				_ = j * j
			}
		})
	}
}

// BenchmarkPoolOverhead compares the pool against per-call goroutines.
func BenchmarkPoolOverhead(b *testing.B) {
	const dim = 64
	a := make([]float64, dim*dim)
	c := make([]float64, dim*dim)
	pool := New(4)
	defer pool.Close()

	b.Run("Pool", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = pool.Multiply(a, a, c, dim, 4)
		}
	})
	b.Run("Threads", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = mat.MultiplyThreads(a, a, c, dim, 4)
		}
	})
}
