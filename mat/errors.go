// Copyright 2025 The matbench Authors. SPDX-License-Identifier: Apache-2.0

package mat

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a dimension is not positive.
	ErrBadShape = errors.New("mat: dimension must be > 0")

	// ErrBadWorkers is returned when the worker count is not positive.
	ErrBadWorkers = errors.New("mat: worker count must be > 0")

	// ErrDimensionMismatch is returned when an operand buffer does not hold
	// exactly dim*dim elements.
	ErrDimensionMismatch = errors.New("mat: dimension mismatch")

	// ErrNonSquare is returned when rows of different lengths, or a row count
	// different from the row length, are used to build a Matrix.
	ErrNonSquare = errors.New("mat: matrix is not square")

	// ErrMismatch is matched (via errors.Is) by every *MismatchError.
	ErrMismatch = errors.New("mat: verification failed")
)

// MismatchError reports the first element at which two matrices differ.
type MismatchError struct {
	Row, Col  int
	Got, Want float64
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("mat: verification failed at (%d, %d): got %v, want %v", e.Row, e.Col, e.Got, e.Want)
}

// Is reports ErrMismatch as a match.
func (e *MismatchError) Is(target error) bool {
	return target == ErrMismatch
}
