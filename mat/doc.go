// Copyright 2025 The matbench Authors. SPDX-License-Identifier: Apache-2.0

// Package mat multiplies square dense float64 matrices with interchangeable
// execution strategies and checks their results against a serial oracle.
//
// Every strategy is built from the same two pieces:
//
//   - MultiplyChunk, the kernel that computes a contiguous run of output rows.
//   - Partition, which splits [0, dim) into one static row range per worker,
//     with the remainder going to the last worker.
//
// Because the row ranges are disjoint, workers write into a shared output
// buffer without locks. Because every strategy runs the same kernel with the
// same summation order, their results are bit-identical to the serial one and
// can be compared with exact equality (see Verify).
//
// Example usage:
//
//	a, _ := mat.Identity(4)
//	b, _ := mat.New(4)
//	b.FillSequential()
//	c, _ := mat.New(4)
//
//	if err := mat.Threads.Multiply(a.Data, b.Data, c.Data, 4, 3); err != nil {
//	    log.Fatal(err)
//	}
//	if err := mat.Verify(c.Data, b.Data, 4); err != nil {
//	    log.Fatal(err)
//	}
//
// The process-based strategy lives in contrib/procs, since it needs a shared
// memory segment (contrib/shm) and a worker entry point in the binary.
package mat
