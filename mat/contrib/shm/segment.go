// Copyright 2025 The matbench Authors. SPDX-License-Identifier: Apache-2.0

// Package shm provides memory segments that stay shared between a process
// and the child processes it starts.
//
// A Segment is a file mapped with MAP_SHARED: an anonymous memfd on Linux, an
// unlinked temporary file on other Unix systems. Its descriptor can be handed
// to a child process (for example through exec.Cmd.ExtraFiles), which maps it
// again with Open. Writes from either side are visible to the other once the
// writer has exited or otherwise synchronized with the reader.
//
// Usage:
//
//	seg, err := shm.Create("result", dim*dim*8)
//	if err != nil {
//	    return err
//	}
//	defer seg.Close()
//
//	cmd.ExtraFiles = []*os.File{seg.File()}
//	...
//	copy(out, seg.Float64s())
package shm

import (
	"errors"
	"fmt"
	"os"
	"unsafe"

	"github.com/google/uuid"
)

// ErrBadSize is returned when a segment size is not a positive multiple of 8.
var ErrBadSize = errors.New("shm: size must be a positive multiple of 8")

// Segment is a shared memory mapping and the file backing it.
// The zero value is not usable; use Create or Open.
type Segment struct {
	f      *os.File
	data   []byte
	closed bool
}

// Create allocates a zero-filled segment of size bytes. name is used as a
// prefix for the backing file name and gets a unique suffix.
// The caller owns the segment and must Close it.
func Create(name string, size int) (*Segment, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	return create(name+"-"+uuid.NewString(), size)
}

// Bytes returns the mapped memory.
func (s *Segment) Bytes() []byte {
	return s.data
}

// Float64s returns the mapped memory viewed as float64 values. The view is
// only valid until Close.
func (s *Segment) Float64s() []float64 {
	if len(s.data) == 0 {
		return nil
	}
	return unsafe.Slice((*float64)(unsafe.Pointer(&s.data[0])), len(s.data)/8)
}

// File returns the backing file, for passing to child processes.
func (s *Segment) File() *os.File {
	return s.f
}

// Len returns the size of the mapping in bytes.
func (s *Segment) Len() int {
	return len(s.data)
}

func checkSize(size int) error {
	if size <= 0 || size%8 != 0 {
		return fmt.Errorf("size %d: %w", size, ErrBadSize)
	}
	return nil
}
