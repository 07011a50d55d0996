// Copyright 2025 The matbench Authors. SPDX-License-Identifier: Apache-2.0

// Command matbench times square matrix multiplication with serial,
// multi-process and multi-thread strategies and verifies the parallel
// results against the serial one.
//
// Usage:
//
//	matbench                          # 1024×1024, 4 workers, all strategies
//	matbench -d 512 -w 8 -s threads -s processes
//	matbench -d 4 -w 3 --print        # show operands and results
//	matbench strategies               # list strategy names
//
// Defaults can also be set with MATBENCH_DIM, MATBENCH_WORKERS,
// MATBENCH_STRATEGIES, MATBENCH_NO_VERIFY and MATBENCH_PRINT.
package main

import (
	"log"
	"os"

	"github.com/ajroetker/matbench/mat/contrib/procs"
)

func main() {
	// Worker processes started by the processes strategy stop here.
	procs.Main()

	log.SetFlags(0)
	log.SetPrefix("matbench: ")

	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		log.Fatal(err)
	}
}
