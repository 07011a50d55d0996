// Copyright 2025 The matbench Authors. SPDX-License-Identifier: Apache-2.0

package mat

// MultiplyChunk computes rows [rowStart, rowStart+chunk) of C = A * B, where
// a, b and c are dim×dim row-major buffers:
//
//	c[i*dim+j] = sum(a[i*dim+k] * b[k*dim+j]) for k in 0..dim-1
//
// Each output element is written exactly once and nothing outside the
// assigned rows is touched, so concurrent calls on disjoint row ranges of the
// same c are safe. chunk <= 0 is a no-op. Bounds are the caller's
// responsibility (use Partition).
//
// The k loop always runs in ascending order from a zero accumulator. Every
// strategy relies on this to produce bit-identical results; do not reorder
// it in one strategy only.
func MultiplyChunk(a, b, c []float64, dim, rowStart, chunk int) {
	for i := rowStart; i < rowStart+chunk; i++ {
		aRow := a[i*dim : (i+1)*dim]
		cRow := c[i*dim : (i+1)*dim]
		for j := range dim {
			var sum float64
			for k, aik := range aRow {
				sum += aik * b[k*dim+j]
			}
			cRow[j] = sum
		}
	}
}

// MultiplyRange is MultiplyChunk over r.
func MultiplyRange(a, b, c []float64, dim int, r Range) {
	MultiplyChunk(a, b, c, dim, r.Start, r.Len)
}
