// Copyright 2025 The matbench Authors. SPDX-License-Identifier: Apache-2.0

package mat

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Matrix is a square, dense, row-major matrix of float64 values.
// Data always holds exactly Dim*Dim elements.
type Matrix struct {
	Dim  int
	Data []float64
}

// New returns a zero-initialized dim×dim matrix.
func New(dim int) (*Matrix, error) {
	if dim < 1 {
		return nil, fmt.Errorf("New(%d): %w", dim, ErrBadShape)
	}
	return &Matrix{Dim: dim, Data: make([]float64, dim*dim)}, nil
}

// FromRows copies rows into a new Matrix. All rows must have len(rows)
// elements.
func FromRows(rows [][]float64) (*Matrix, error) {
	m, err := New(len(rows))
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != m.Dim {
			return nil, fmt.Errorf("FromRows: row %d has %d elements, want %d: %w", i, len(row), m.Dim, ErrNonSquare)
		}
		copy(m.Row(i), row)
	}
	return m, nil
}

// Identity returns the dim×dim identity matrix.
func Identity(dim int) (*Matrix, error) {
	m, err := New(dim)
	if err != nil {
		return nil, err
	}
	for i := range dim {
		m.Data[i*dim+i] = 1
	}
	return m, nil
}

// At returns the element at row i, column j.
func (m *Matrix) At(i, j int) float64 {
	return m.Data[i*m.Dim+j]
}

// Set assigns v to the element at row i, column j.
func (m *Matrix) Set(i, j int, v float64) {
	m.Data[i*m.Dim+j] = v
}

// Row returns row i as a sub-slice of Data (not a copy).
func (m *Matrix) Row(i int) []float64 {
	return m.Data[i*m.Dim : (i+1)*m.Dim]
}

// Clone returns a deep copy of m.
func (m *Matrix) Clone() *Matrix {
	data := make([]float64, len(m.Data))
	copy(data, m.Data)
	return &Matrix{Dim: m.Dim, Data: data}
}

// FillSequential writes 1, 2, 3, ... into m in row-major order.
// It is the benchmark's standard input pattern.
func (m *Matrix) FillSequential() {
	for i := range m.Data {
		m.Data[i] = float64(i + 1)
	}
}

// WriteTo prints m one row per line, elements formatted with %0.0f and
// separated by spaces, followed by an empty line.
func (m *Matrix) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	for i, v := range m.Data {
		k, _ := fmt.Fprintf(bw, "%0.0f ", v)
		n += int64(k)
		if (i+1)%m.Dim == 0 {
			_ = bw.WriteByte('\n')
			n++
		}
	}
	_ = bw.WriteByte('\n')
	n++
	return n, bw.Flush()
}

// String implements fmt.Stringer using the WriteTo layout.
func (m *Matrix) String() string {
	var sb strings.Builder
	_, _ = m.WriteTo(&sb)
	return sb.String()
}
