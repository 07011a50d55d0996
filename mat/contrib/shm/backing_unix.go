// Copyright 2025 The matbench Authors. SPDX-License-Identifier: Apache-2.0

//go:build unix && !linux

package shm

import (
	"fmt"
	"os"
)

// newBackingFile returns a temporary file that is unlinked right away, so it
// disappears with its last descriptor.
func newBackingFile(name string) (*os.File, error) {
	f, err := os.CreateTemp("", name+"-*")
	if err != nil {
		return nil, fmt.Errorf("shm: create %s: %w", name, err)
	}
	if err := os.Remove(f.Name()); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("shm: unlink %s: %w", f.Name(), err)
	}
	return f, nil
}
