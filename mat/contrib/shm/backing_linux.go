// Copyright 2025 The matbench Authors. SPDX-License-Identifier: Apache-2.0

package shm

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// newBackingFile returns an anonymous memory file. MFD_CLOEXEC only affects
// the creating process; exec.Cmd.ExtraFiles still passes it to children.
func newBackingFile(name string) (*os.File, error) {
	fd, err := unix.MemfdCreate(name, unix.MFD_CLOEXEC)
	if err != nil {
		return nil, fmt.Errorf("shm: memfd_create %s: %w", name, err)
	}
	return os.NewFile(uintptr(fd), "memfd:"+name), nil
}
