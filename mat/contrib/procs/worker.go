// Copyright 2025 The matbench Authors. SPDX-License-Identifier: Apache-2.0

package procs

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/ajroetker/matbench/mat"
	"github.com/ajroetker/matbench/mat/contrib/shm"
)

// EnvWorker marks a process started as a worker by Strategy.Multiply.
const EnvWorker = "MATBENCH_WORKER"

const (
	envDim      = "MATBENCH_WORKER_DIM"
	envRowStart = "MATBENCH_WORKER_ROW_START"
	envChunk    = "MATBENCH_WORKER_CHUNK"

	operandsFD = 3
	outputFD   = 4
)

var (
	// ErrNotWorker is returned by RunWorker outside a worker process.
	ErrNotWorker = errors.New("procs: not running as a worker")

	// ErrBadAssignment is returned when the worker environment is malformed.
	ErrBadAssignment = errors.New("procs: invalid worker assignment")
)

// IsWorker reports whether this process was started as a worker.
func IsWorker() bool {
	return os.Getenv(EnvWorker) != ""
}

// Main runs the worker and exits if this process is a worker, and returns
// immediately otherwise.
func Main() {
	if !IsWorker() {
		return
	}
	if err := RunWorker(); err != nil {
		log.New(os.Stderr, "matbench worker: ", 0).Print(err)
		os.Exit(1)
	}
	os.Exit(0)
}

// RunWorker maps the inherited segments, computes the assigned rows into the
// output segment and releases both mappings.
func RunWorker() (err error) {
	if !IsWorker() {
		return ErrNotWorker
	}
	dim, rows, err := readAssignment()
	if err != nil {
		return err
	}

	n := dim * dim
	in, err := shm.Open(os.NewFile(operandsFD, "matbench-in"), 2*n*8, false)
	if err != nil {
		return fmt.Errorf("procs: map operands: %w", err)
	}
	defer func() { err = errors.Join(err, in.Close()) }()

	out, err := shm.Open(os.NewFile(outputFD, "matbench-out"), n*8, true)
	if err != nil {
		return fmt.Errorf("procs: map output: %w", err)
	}
	defer func() { err = errors.Join(err, out.Close()) }()

	operands := in.Float64s()
	mat.MultiplyRange(operands[:n], operands[n:], out.Float64s(), dim, rows)
	return nil
}

// readAssignment parses the dimension and row range from the environment.
func readAssignment() (dim int, rows mat.Range, err error) {
	values := make([]int, 3)
	for i, name := range []string{envDim, envRowStart, envChunk} {
		raw, ok := os.LookupEnv(name)
		if !ok {
			return 0, mat.Range{}, fmt.Errorf("%w: %s not set", ErrBadAssignment, name)
		}
		if values[i], err = strconv.Atoi(raw); err != nil {
			return 0, mat.Range{}, fmt.Errorf("%w: %s=%q: %w", ErrBadAssignment, name, raw, err)
		}
	}
	dim, rows = values[0], mat.Range{Start: values[1], Len: values[2]}
	if dim < 1 || rows.Start < 0 || rows.Len < 0 || rows.End() > dim {
		return 0, mat.Range{}, fmt.Errorf("%w: rows %v of %d", ErrBadAssignment, rows, dim)
	}
	return dim, rows, nil
}
