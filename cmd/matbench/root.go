// Copyright 2025 The matbench Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ajroetker/matbench/mat/contrib/bench"
)

func newRootCmd(out io.Writer) *cobra.Command {
	defaults, envErr := bench.ConfigFromEnv()

	var (
		cfg        = defaults
		strategies []string
		showHost   bool
	)

	cmd := &cobra.Command{
		Use:   "matbench",
		Short: "Compare serial, multi-process and multi-thread matrix multiplication",
		Long: `matbench multiplies two square matrices filled with 1, 2, 3, ... using each
selected strategy, reports the wall-clock time of every run and, unless
disabled, checks that each result is identical to the serial one.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if envErr != nil {
				return envErr
			}
			if cmd.Flags().Changed("strategy") {
				kinds, err := bench.ParseKinds(strings.Join(strategies, ","))
				if err != nil {
					return err
				}
				cfg.Kinds = kinds
			}
			if showHost {
				if _, err := fmt.Fprintf(out, "Host: %s\n", bench.Host()); err != nil {
					return err
				}
			}

			r := &bench.Runner{Config: cfg, Out: out}
			results, err := r.Run()
			if err != nil {
				return err
			}
			for _, res := range results {
				if res.Checked && !res.Verified() {
					return fmt.Errorf("%s: %w", res.Strategy, res.Mismatch)
				}
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&cfg.Dim, "dim", "d", defaults.Dim, "matrix dimension")
	flags.IntVarP(&cfg.Workers, "workers", "w", defaults.Workers, "number of workers for the parallel strategies")
	flags.StringSliceVarP(&strategies, "strategy", "s", kindNames(defaults.Kinds), "strategies to run (repeatable or comma-separated)")
	flags.BoolVar(&cfg.Verify, "verify", defaults.Verify, "verify every result against the serial product")
	flags.BoolVar(&cfg.Print, "print", defaults.Print, "print operands and results")
	flags.BoolVar(&showHost, "host", false, "print host CPU information first")

	cmd.AddCommand(newStrategiesCmd(out))
	return cmd
}

func newStrategiesCmd(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "strategies",
		Short: "List the available strategies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, k := range bench.Kinds() {
				if _, err := fmt.Fprintln(out, k); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func kindNames(kinds []bench.Kind) []string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return names
}
