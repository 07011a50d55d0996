// Copyright 2025 The matbench Authors. SPDX-License-Identifier: Apache-2.0

//go:build !unix

package shm

import (
	"errors"
	"os"
)

// Open is not supported on this platform.
func Open(f *os.File, size int, writable bool) (*Segment, error) {
	return nil, errors.ErrUnsupported
}

// Close is a no-op on this platform.
func (s *Segment) Close() error {
	return nil
}

func create(name string, size int) (*Segment, error) {
	return nil, errors.ErrUnsupported
}
