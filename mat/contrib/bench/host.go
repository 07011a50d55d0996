// Copyright 2025 The matbench Authors. SPDX-License-Identifier: Apache-2.0

package bench

import (
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"
)

// HostInfo describes the machine a benchmark runs on.
type HostInfo struct {
	GOOS       string
	GOARCH     string
	NumCPU     int
	GOMAXPROCS int

	// Features lists the detected vector extensions, e.g. "avx2", "asimd".
	Features []string
}

// Host returns the current HostInfo.
func Host() HostInfo {
	return HostInfo{
		GOOS:       runtime.GOOS,
		GOARCH:     runtime.GOARCH,
		NumCPU:     runtime.NumCPU(),
		GOMAXPROCS: runtime.GOMAXPROCS(0),
		Features:   cpuFeatures(runtime.GOARCH),
	}
}

func (h HostInfo) String() string {
	features := "none"
	if len(h.Features) > 0 {
		features = strings.Join(h.Features, " ")
	}
	return fmt.Sprintf("%s/%s, %d CPUs (GOMAXPROCS %d), features: %s",
		h.GOOS, h.GOARCH, h.NumCPU, h.GOMAXPROCS, features)
}

type feature struct {
	name string
	has  bool
}

func cpuFeatures(arch string) []string {
	var table []feature
	switch arch {
	case "amd64", "386":
		table = []feature{
			{"sse2", cpu.X86.HasSSE2},
			{"sse41", cpu.X86.HasSSE41},
			{"avx", cpu.X86.HasAVX},
			{"avx2", cpu.X86.HasAVX2},
			{"fma", cpu.X86.HasFMA},
			{"avx512f", cpu.X86.HasAVX512F},
		}
	case "arm64":
		table = []feature{
			{"fp", cpu.ARM64.HasFP},
			{"asimd", cpu.ARM64.HasASIMD},
			{"sve", cpu.ARM64.HasSVE},
			{"sve2", cpu.ARM64.HasSVE2},
		}
	}

	var names []string
	for _, f := range table {
		if f.has {
			names = append(names, f.name)
		}
	}
	return names
}
