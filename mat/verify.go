// Copyright 2025 The matbench Authors. SPDX-License-Identifier: Apache-2.0

package mat

// Verify compares the first dim*dim elements of m1 and m2 for exact
// equality. It returns nil if they match and a *MismatchError describing the
// first differing element otherwise (m1 is reported as Got, m2 as Want).
//
// No tolerance is applied: all strategies perform the same floating point
// operations in the same order, so a correct result is bit-identical to the
// serial oracle. NaN never compares equal.
func Verify(m1, m2 []float64, dim int) error {
	n := dim * dim
	if len(m1) < n || len(m2) < n {
		return ErrDimensionMismatch
	}
	for i, got := range m1[:n] {
		if want := m2[i]; got != want {
			return &MismatchError{Row: i / dim, Col: i % dim, Got: got, Want: want}
		}
	}
	return nil
}

// Equal reports whether Verify(m1, m2, dim) succeeds.
func Equal(m1, m2 []float64, dim int) bool {
	return Verify(m1, m2, dim) == nil
}
