// Copyright 2025 The matbench Authors. SPDX-License-Identifier: Apache-2.0

package bench

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

// Defaults used when neither flags nor environment say otherwise.
const (
	DefaultDim     = 1024
	DefaultWorkers = 4
)

// Environment variables read by ConfigFromEnv.
const (
	EnvDim        = "MATBENCH_DIM"
	EnvWorkers    = "MATBENCH_WORKERS"
	EnvStrategies = "MATBENCH_STRATEGIES"
	EnvNoVerify   = "MATBENCH_NO_VERIFY"
	EnvPrint      = "MATBENCH_PRINT"
)

// ErrBadConfig is returned by Config.Validate.
var ErrBadConfig = errors.New("bench: invalid config")

// Config describes one benchmark run.
type Config struct {
	// Dim is the dimension of the square operands.
	Dim int

	// Workers is the worker count passed to every strategy.
	Workers int

	// Kinds lists the strategies to run, in order.
	Kinds []Kind

	// Verify compares every result against the serial oracle.
	Verify bool

	// Print writes the operands and every result to the report.
	Print bool
}

// DefaultConfig runs every strategy on 1024×1024 operands with 4 workers and
// verification enabled.
func DefaultConfig() Config {
	return Config{
		Dim:     DefaultDim,
		Workers: DefaultWorkers,
		Kinds:   Kinds(),
		Verify:  true,
	}
}

// ConfigFromEnv returns DefaultConfig overridden by the MATBENCH_*
// environment variables.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()
	var err error
	if cfg.Dim, err = envInt(EnvDim, cfg.Dim); err != nil {
		return cfg, err
	}
	if cfg.Workers, err = envInt(EnvWorkers, cfg.Workers); err != nil {
		return cfg, err
	}
	if val := os.Getenv(EnvStrategies); val != "" {
		if cfg.Kinds, err = ParseKinds(val); err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvStrategies, err)
		}
	}
	cfg.Verify = !envBool(EnvNoVerify)
	cfg.Print = envBool(EnvPrint)
	return cfg, nil
}

// Validate checks that the config describes a runnable benchmark.
func (c Config) Validate() error {
	switch {
	case c.Dim < 1:
		return fmt.Errorf("%w: dimension %d must be > 0", ErrBadConfig, c.Dim)
	case c.Workers < 1:
		return fmt.Errorf("%w: worker count %d must be > 0", ErrBadConfig, c.Workers)
	case len(c.Kinds) == 0:
		return fmt.Errorf("%w: no strategies selected", ErrBadConfig)
	}
	return nil
}

func envInt(name string, fallback int) (int, error) {
	val := os.Getenv(name)
	if val == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return fallback, fmt.Errorf("%w: %s=%q: %w", ErrBadConfig, name, val, err)
	}
	return n, nil
}

// envBool reports whether name is set to a true value. Any non-empty value
// that does not parse as a bool counts as true.
func envBool(name string) bool {
	val := os.Getenv(name)
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
