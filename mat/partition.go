// Copyright 2025 The matbench Authors. SPDX-License-Identifier: Apache-2.0

package mat

import "fmt"

// Range is the half-open row interval [Start, Start+Len) owned by one worker.
type Range struct {
	Start int
	Len   int
}

// End returns the first row past the range.
func (r Range) End() int {
	return r.Start + r.Len
}

// Empty reports whether the range holds no rows.
func (r Range) Empty() bool {
	return r.Len <= 0
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End())
}

// Partition splits [0, dim) into workers contiguous row ranges.
//
// The first workers-1 ranges get dim/workers rows each and the last range
// gets the remainder, dim - (dim/workers)*(workers-1), which is never smaller
// than the others. The ranges cover [0, dim) exactly, in order, without
// overlap. When workers > dim the base size is 0, so every range but the last
// is empty and the last one holds all rows.
//
// Partition returns nil if workers < 1.
func Partition(dim, workers int) []Range {
	if workers < 1 {
		return nil
	}
	base := dim / workers
	ranges := make([]Range, workers)
	start := 0
	for i := range workers - 1 {
		ranges[i] = Range{Start: start, Len: base}
		start += base
	}
	ranges[workers-1] = Range{Start: start, Len: dim - start}
	return ranges
}
