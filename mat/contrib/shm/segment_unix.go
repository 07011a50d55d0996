// Copyright 2025 The matbench Authors. SPDX-License-Identifier: Apache-2.0

//go:build unix

package shm

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Open maps size bytes of f, typically a descriptor inherited from the
// process that created the segment. The returned Segment owns f and closes it
// on Close. Read-only mappings fault on write.
func Open(f *os.File, size int, writable bool) (*Segment, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	prot := unix.PROT_READ
	if writable {
		prot |= unix.PROT_WRITE
	}
	data, err := unix.Mmap(int(f.Fd()), 0, size, prot, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("shm: mmap %s (%d bytes): %w", f.Name(), size, err)
	}
	return &Segment{f: f, data: data}, nil
}

// Close unmaps the segment and closes its file. Calling Close more than once
// is safe; only the first call does anything.
func (s *Segment) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	var errs []error
	if s.data != nil {
		if err := unix.Munmap(s.data); err != nil {
			errs = append(errs, fmt.Errorf("shm: munmap %s: %w", s.f.Name(), err))
		}
		s.data = nil
	}
	if err := s.f.Close(); err != nil {
		errs = append(errs, fmt.Errorf("shm: close: %w", err))
	}
	return errors.Join(errs...)
}

func create(name string, size int) (*Segment, error) {
	f, err := newBackingFile(name)
	if err != nil {
		return nil, err
	}
	// A freshly truncated file reads back as zeros.
	if err := f.Truncate(int64(size)); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("shm: truncate %s to %d bytes: %w", f.Name(), size, err)
	}
	s, err := Open(f, size, true)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return s, nil
}
