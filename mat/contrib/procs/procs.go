// Copyright 2025 The matbench Authors. SPDX-License-Identifier: Apache-2.0

// Package procs multiplies matrices with one operating system process per
// worker.
//
// A Go program cannot fork itself, so worker processes are new instances of
// the running executable, started with an environment that tells them which
// rows to compute. Workers have their own address space: the operands reach
// them through a read-only shared segment and their rows come back through a
// shared output segment (see package shm). The parent copies the output into
// the caller's buffer once every worker has exited.
//
// Any binary that uses this package must call Main first thing in main (and
// in TestMain for test binaries), so that worker instances run their chunk
// and exit instead of running the program:
//
//	func main() {
//	    procs.Main()
//	    ...
//	}
package procs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/matbench/mat"
	"github.com/ajroetker/matbench/mat/contrib/shm"
)

var (
	// ErrSpawn is returned when a worker process cannot be started.
	ErrSpawn = errors.New("procs: failed to start worker")

	// ErrWorkerFailed is returned when a worker process exits unsuccessfully.
	ErrWorkerFailed = errors.New("procs: worker failed")
)

// Strategy is the process-parallel mat.Strategy.
type Strategy struct {
	// Executable is the binary started for each worker. It must call Main.
	// Empty means the running executable.
	Executable string

	// Stderr receives the workers' standard error. Nil means os.Stderr.
	Stderr io.Writer
}

// Processes uses the running executable for its workers.
var Processes mat.Strategy = &Strategy{}

// MultiplyProcesses computes c = a * b with Processes.
func MultiplyProcesses(a, b, c []float64, dim, workers int) error {
	return Processes.Multiply(a, b, c, dim, workers)
}

// Name implements mat.Strategy.
func (s *Strategy) Name() string {
	return "parallel processes"
}

// Multiply computes c = a * b with workers processes: workers-1 child
// processes take the first row ranges from mat.Partition and the calling
// process computes the last one while they run.
//
// Both shared segments are released before Multiply returns, on every path.
// Failure to allocate them, to start a worker, or a worker exiting with an
// error, aborts the multiplication and c is left untouched.
func (s *Strategy) Multiply(a, b, c []float64, dim, workers int) (err error) {
	if err := mat.CheckOperands(a, b, c, dim, workers); err != nil {
		return err
	}
	exe, err := s.executable()
	if err != nil {
		return err
	}

	n := dim * dim
	out, err := shm.Create("matbench-out", n*8)
	if err != nil {
		return fmt.Errorf("procs: allocate output: %w", err)
	}
	defer func() { err = errors.Join(err, out.Close()) }()

	in, err := shm.Create("matbench-in", 2*n*8)
	if err != nil {
		return fmt.Errorf("procs: allocate operands: %w", err)
	}
	defer func() { err = errors.Join(err, in.Close()) }()
	operands := in.Float64s()
	copy(operands[:n], a)
	copy(operands[n:], b)

	ranges := mat.Partition(dim, workers)
	var g errgroup.Group
	started := make([]*exec.Cmd, 0, workers-1)
	for _, rows := range ranges[:workers-1] {
		cmd := s.command(exe, dim, rows, in, out)
		if err := cmd.Start(); err != nil {
			for _, running := range started {
				_ = running.Process.Kill()
			}
			_ = g.Wait()
			return fmt.Errorf("%w for rows %v: %w", ErrSpawn, rows, err)
		}
		started = append(started, cmd)
		g.Go(func() error {
			if err := cmd.Wait(); err != nil {
				return fmt.Errorf("%w (pid %d, rows %v): %w", ErrWorkerFailed, cmd.Process.Pid, rows, err)
			}
			return nil
		})
	}

	shared := out.Float64s()
	mat.MultiplyRange(a, b, shared, dim, ranges[workers-1])

	// Children write into shared until they exit; nothing is read before.
	if err := g.Wait(); err != nil {
		return err
	}
	copy(c, shared)
	return nil
}

func (s *Strategy) executable() (string, error) {
	if s.Executable != "" {
		return s.Executable, nil
	}
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("procs: locate executable: %w", err)
	}
	return exe, nil
}

func (s *Strategy) command(exe string, dim int, rows mat.Range, in, out *shm.Segment) *exec.Cmd {
	cmd := exec.Command(exe)
	cmd.Env = append(os.Environ(),
		EnvWorker+"=1",
		fmt.Sprintf("%s=%d", envDim, dim),
		fmt.Sprintf("%s=%d", envRowStart, rows.Start),
		fmt.Sprintf("%s=%d", envChunk, rows.Len),
	)
	// Descriptors 3 and 4 in the child.
	cmd.ExtraFiles = []*os.File{in.File(), out.File()}
	cmd.Stderr = s.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}
	return cmd
}
