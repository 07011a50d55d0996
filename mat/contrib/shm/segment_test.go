// Copyright 2025 The matbench Authors. SPDX-License-Identifier: Apache-2.0

//go:build unix

package shm

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

// dupFile returns a second descriptor for the same open file.
func dupFile(t *testing.T, f *os.File) *os.File {
	t.Helper()
	fd, err := unix.Dup(int(f.Fd()))
	require.NoError(t, err)
	return os.NewFile(uintptr(fd), f.Name())
}

func TestCreateZeroFilled(t *testing.T) {
	seg, err := Create("zero", 64*8)
	require.NoError(t, err)
	defer seg.Close()

	assert.Equal(t, 64*8, seg.Len())
	floats := seg.Float64s()
	require.Len(t, floats, 64)
	for i, v := range floats {
		assert.Zero(t, v, "element %d", i)
	}
	assert.NotNil(t, seg.File())
}

func TestCreateBadSize(t *testing.T) {
	for _, size := range []int{0, -8, 7, 12} {
		_, err := Create("bad", size)
		assert.ErrorIs(t, err, ErrBadSize, "size %d", size)
	}
}

func TestSharedMapping(t *testing.T) {
	seg, err := Create("shared", 16*8)
	require.NoError(t, err)
	defer seg.Close()

	other, err := Open(dupFile(t, seg.File()), seg.Len(), true)
	require.NoError(t, err)

	for i := range other.Float64s() {
		other.Float64s()[i] = float64(i) + 0.5
	}
	require.NoError(t, other.Close())

	for i, v := range seg.Float64s() {
		assert.Equal(t, float64(i)+0.5, v)
	}
}

func TestOpenReadOnly(t *testing.T) {
	seg, err := Create("ro", 8)
	require.NoError(t, err)
	defer seg.Close()
	seg.Float64s()[0] = 42

	ro, err := Open(dupFile(t, seg.File()), 8, false)
	require.NoError(t, err)
	defer ro.Close()
	assert.Equal(t, 42.0, ro.Float64s()[0])
}

func TestCloseTwice(t *testing.T) {
	seg, err := Create("twice", 8)
	require.NoError(t, err)
	require.NoError(t, seg.Close())
	assert.NoError(t, seg.Close())
	assert.Nil(t, seg.Float64s())
}
