// Copyright 2025 The matbench Authors. SPDX-License-Identifier: Apache-2.0

package mat

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartitionCoverage(t *testing.T) {
	for dim := 1; dim <= 33; dim++ {
		for workers := 1; workers <= 40; workers++ {
			ranges := Partition(dim, workers)
			require.Len(t, ranges, workers, "dim=%d workers=%d", dim, workers)

			owner := make([]int, dim)
			for i := range owner {
				owner[i] = -1
			}
			next := 0
			for w, r := range ranges {
				require.Equal(t, next, r.Start, "dim=%d workers=%d: gap or overlap before range %d", dim, workers, w)
				require.GreaterOrEqual(t, r.Len, 0)
				for row := r.Start; row < r.End(); row++ {
					require.Equal(t, -1, owner[row], "row %d assigned twice", row)
					owner[row] = w
				}
				next = r.End()
			}
			require.Equal(t, dim, next, "dim=%d workers=%d: rows not covered", dim, workers)

			base := dim / workers
			for _, r := range ranges[:workers-1] {
				assert.Equal(t, base, r.Len)
			}
			assert.GreaterOrEqual(t, ranges[workers-1].Len, base)
		}
	}
}

func TestPartitionScenarios(t *testing.T) {
	testCases := []struct {
		dim, workers int
		want         []Range
	}{
		{4, 1, []Range{{0, 4}}},
		{4, 2, []Range{{0, 2}, {2, 2}}},
		{4, 3, []Range{{0, 1}, {1, 1}, {2, 2}}},
		{10, 4, []Range{{0, 2}, {2, 2}, {4, 2}, {6, 4}}},
		{5, 10, []Range{{0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 5}}},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%d/%d", tc.dim, tc.workers), func(t *testing.T) {
			assert.Equal(t, tc.want, Partition(tc.dim, tc.workers))
		})
	}
}

func TestPartitionNoWorkers(t *testing.T) {
	assert.Nil(t, Partition(8, 0))
	assert.Nil(t, Partition(8, -2))
}

func TestRange(t *testing.T) {
	r := Range{Start: 2, Len: 3}
	assert.Equal(t, 5, r.End())
	assert.False(t, r.Empty())
	assert.Equal(t, "[2,5)", r.String())
	assert.True(t, Range{Start: 4}.Empty())
}
