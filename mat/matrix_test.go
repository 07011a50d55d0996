// Copyright 2025 The matbench Authors. SPDX-License-Identifier: Apache-2.0

package mat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	m, err := New(3)
	require.NoError(t, err)
	assert.Equal(t, 3, m.Dim)
	assert.Len(t, m.Data, 9)
	for _, v := range m.Data {
		assert.Zero(t, v)
	}

	_, err = New(0)
	assert.ErrorIs(t, err, ErrBadShape)
	_, err = New(-1)
	assert.ErrorIs(t, err, ErrBadShape)
}

func TestFromRows(t *testing.T) {
	m, err := FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4}, m.Data)
	assert.Equal(t, 3.0, m.At(1, 0))

	_, err = FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	assert.ErrorIs(t, err, ErrNonSquare)

	_, err = FromRows(nil)
	assert.ErrorIs(t, err, ErrBadShape)
}

func TestIdentity(t *testing.T) {
	m, err := Identity(3)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1}, m.Data)
}

func TestSetRowClone(t *testing.T) {
	m, err := New(2)
	require.NoError(t, err)
	m.Set(1, 1, 7)
	assert.Equal(t, []float64{0, 7}, m.Row(1))

	c := m.Clone()
	c.Set(0, 0, 9)
	assert.Zero(t, m.At(0, 0), "Clone must not share storage")
	assert.Equal(t, 7.0, c.At(1, 1))
}

func TestFillSequential(t *testing.T) {
	m, err := New(3)
	require.NoError(t, err)
	m.FillSequential()
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}, m.Data)
}

func TestWriteTo(t *testing.T) {
	m, err := FromRows([][]float64{{1, 2}, {3, 40}})
	require.NoError(t, err)

	var sb strings.Builder
	n, err := m.WriteTo(&sb)
	require.NoError(t, err)
	want := "1 2 \n3 40 \n\n"
	assert.Equal(t, want, sb.String())
	assert.Equal(t, int64(len(want)), n)
	assert.Equal(t, want, m.String())
}
