// Copyright 2025 The matbench Authors. SPDX-License-Identifier: Apache-2.0

package bench

import (
	"fmt"
	"io"
	"time"

	"github.com/ajroetker/matbench/mat"
)

// Result is the outcome of one strategy run.
type Result struct {
	Strategy string
	Workers  int
	Elapsed  time.Duration

	// Checked is set when the output was compared with the oracle, and
	// Mismatch holds the comparison error, if any.
	Checked  bool
	Mismatch error

	// Err is the error returned by the strategy itself.
	Err error
}

// Verified reports whether the result was checked and matched the oracle.
func (r Result) Verified() bool {
	return r.Checked && r.Mismatch == nil
}

// RunAndTime runs s on a and b into c and measures the wall-clock time of
// the Multiply call only. If gold is not nil the result is verified against
// it.
func RunAndTime(s mat.Strategy, a, b, c, gold *mat.Matrix, workers int) Result {
	res := Result{Strategy: s.Name(), Workers: workers}

	start := time.Now()
	res.Err = s.Multiply(a.Data, b.Data, c.Data, a.Dim, workers)
	res.Elapsed = time.Since(start)

	if res.Err == nil && gold != nil {
		res.Checked = true
		res.Mismatch = mat.Verify(c.Data, gold.Data, a.Dim)
	}
	return res
}

// Runner runs a benchmark described by Config and reports to Out.
type Runner struct {
	Config Config
	Out    io.Writer
}

// Run executes every configured strategy in order and returns their results.
// It stops at the first strategy error and returns the results so far along
// with the error. Verification failures are reported, not returned.
func (r *Runner) Run() ([]Result, error) {
	cfg := r.Config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	a, err := mat.New(cfg.Dim)
	if err != nil {
		return nil, err
	}
	a.FillSequential()
	b := a.Clone()

	if cfg.Print {
		if err := r.printMatrix("A", a); err != nil {
			return nil, err
		}
		if err := r.printMatrix("B", b); err != nil {
			return nil, err
		}
	}

	var gold *mat.Matrix
	if cfg.Verify {
		if gold, err = mat.Mul(a, b); err != nil {
			return nil, fmt.Errorf("bench: oracle: %w", err)
		}
	}

	strategies, release, err := Strategies(cfg.Kinds, cfg.Workers)
	if err != nil {
		return nil, err
	}
	defer release()

	results := make([]Result, 0, len(strategies))
	for _, s := range strategies {
		c, err := mat.New(cfg.Dim)
		if err != nil {
			return results, err
		}

		if _, err := fmt.Fprintf(r.Out, "Algorithm: %s with %s.\n", s.Name(), plural(cfg.Workers, "worker", "workers")); err != nil {
			return results, err
		}
		res := RunAndTime(s, a, b, c, gold, cfg.Workers)
		results = append(results, res)
		if res.Err != nil {
			return results, fmt.Errorf("bench: %s: %w", res.Strategy, res.Err)
		}
		if err := WriteResult(r.Out, res); err != nil {
			return results, err
		}
		if cfg.Print {
			if err := r.printMatrix("C ("+s.Name()+")", c); err != nil {
				return results, err
			}
		}
	}
	return results, nil
}

func (r *Runner) printMatrix(label string, m *mat.Matrix) error {
	if _, err := fmt.Fprintf(r.Out, "%s:\n", label); err != nil {
		return err
	}
	_, err := m.WriteTo(r.Out)
	return err
}

// WriteResult writes the elapsed time line and, for checked results, the
// verification line.
func WriteResult(w io.Writer, res Result) error {
	secs := res.Elapsed / time.Second
	usecs := (res.Elapsed % time.Second) / time.Microsecond
	if _, err := fmt.Fprintf(w, "Time elapsed for %s: %s and %d microseconds.\n",
		res.Strategy, plural(int(secs), "second", "seconds"), usecs); err != nil {
		return err
	}
	if !res.Checked {
		return nil
	}
	status := "success"
	if !res.Verified() {
		status = "failure"
	}
	_, err := fmt.Fprintf(w, "Verification for %s: %s.\n", res.Strategy, status)
	return err
}

func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}
