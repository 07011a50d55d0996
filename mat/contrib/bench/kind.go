// Copyright 2025 The matbench Authors. SPDX-License-Identifier: Apache-2.0

package bench

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ajroetker/matbench/mat"
	"github.com/ajroetker/matbench/mat/contrib/procs"
	"github.com/ajroetker/matbench/mat/contrib/workerpool"
)

// ErrUnknownKind is returned by ParseKind for unrecognized names.
var ErrUnknownKind = errors.New("bench: unknown strategy")

// Kind selects a multiplication strategy.
type Kind int

const (
	// KindSerial runs on the calling goroutine. It is also the oracle.
	KindSerial Kind = iota

	// KindProcesses runs one worker process per row range.
	KindProcesses

	// KindThreads runs one goroutine per row range.
	KindThreads

	// KindPooled runs row ranges on a persistent worker pool.
	KindPooled
)

// Kinds returns every strategy kind in report order.
func Kinds() []Kind {
	return []Kind{KindSerial, KindProcesses, KindThreads, KindPooled}
}

// String returns the short name accepted by ParseKind.
func (k Kind) String() string {
	switch k {
	case KindSerial:
		return "serial"
	case KindProcesses:
		return "processes"
	case KindThreads:
		return "threads"
	case KindPooled:
		return "pooled"
	default:
		return "unknown"
	}
}

// ParseKind returns the Kind named s, ignoring case and surrounding spaces.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, k := range Kinds() {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w %q (want one of %s)", ErrUnknownKind, s, kindNames())
}

// ParseKinds parses a comma-separated list of kinds. Empty entries are
// skipped and duplicates are kept once.
func ParseKinds(s string) ([]Kind, error) {
	var kinds []Kind
	seen := map[Kind]bool{}
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		k, err := ParseKind(part)
		if err != nil {
			return nil, err
		}
		if !seen[k] {
			seen[k] = true
			kinds = append(kinds, k)
		}
	}
	return kinds, nil
}

func kindNames() string {
	names := make([]string, 0, len(Kinds()))
	for _, k := range Kinds() {
		names = append(names, k.String())
	}
	return strings.Join(names, ", ")
}

// Strategies resolves kinds to strategies, in order. If KindPooled is
// requested a pool of poolSize workers is created; the returned release
// function closes it and must be called when the strategies are no longer
// used.
func Strategies(kinds []Kind, poolSize int) ([]mat.Strategy, func(), error) {
	var pool *workerpool.Pool
	release := func() {
		if pool != nil {
			pool.Close()
		}
	}

	strategies := make([]mat.Strategy, 0, len(kinds))
	for _, k := range kinds {
		switch k {
		case KindSerial:
			strategies = append(strategies, mat.Serial)
		case KindProcesses:
			strategies = append(strategies, procs.Processes)
		case KindThreads:
			strategies = append(strategies, mat.Threads)
		case KindPooled:
			if pool == nil {
				pool = workerpool.New(poolSize)
			}
			strategies = append(strategies, pool)
		default:
			release()
			return nil, nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
		}
	}
	return strategies, release, nil
}
