// Copyright 2025 The matbench Authors. SPDX-License-Identifier: Apache-2.0

package mat

import "fmt"

// Strategy is one way of computing C = A * B for dim×dim row-major buffers
// using a given number of workers. Implementations write the full product
// into c before returning nil, and never expose a partial result.
type Strategy interface {
	// Name identifies the strategy in reports.
	Name() string

	// Multiply computes c = a * b. workers is a hint some strategies ignore.
	Multiply(a, b, c []float64, dim, workers int) error
}

// MultiplyFunc has the uniform strategy signature.
type MultiplyFunc func(a, b, c []float64, dim, workers int) error

type funcStrategy struct {
	name string
	fn   MultiplyFunc
}

func (s funcStrategy) Name() string { return s.name }

func (s funcStrategy) Multiply(a, b, c []float64, dim, workers int) error {
	return s.fn(a, b, c, dim, workers)
}

// Func wraps fn as a Strategy called name.
func Func(name string, fn MultiplyFunc) Strategy {
	return funcStrategy{name: name, fn: fn}
}

// CheckOperands validates the arguments shared by every strategy: dim and
// workers must be positive and a, b and c must hold exactly dim*dim elements.
func CheckOperands(a, b, c []float64, dim, workers int) error {
	if dim < 1 {
		return fmt.Errorf("dim=%d: %w", dim, ErrBadShape)
	}
	if workers < 1 {
		return fmt.Errorf("workers=%d: %w", workers, ErrBadWorkers)
	}
	n := dim * dim
	for _, op := range []struct {
		name string
		buf  []float64
	}{{"a", a}, {"b", b}, {"c", c}} {
		if len(op.buf) != n {
			return fmt.Errorf("len(%s)=%d, want %d: %w", op.name, len(op.buf), n, ErrDimensionMismatch)
		}
	}
	return nil
}

// Mul returns a newly allocated a * b computed serially. It is the oracle
// other strategies are verified against.
func Mul(a, b *Matrix) (*Matrix, error) {
	if a.Dim != b.Dim {
		return nil, fmt.Errorf("Mul: %d×%d * %d×%d: %w", a.Dim, a.Dim, b.Dim, b.Dim, ErrDimensionMismatch)
	}
	c, err := New(a.Dim)
	if err != nil {
		return nil, err
	}
	if err := MultiplySerial(a.Data, b.Data, c.Data, a.Dim, 1); err != nil {
		return nil, err
	}
	return c, nil
}
