// Copyright 2025 The matbench Authors. SPDX-License-Identifier: Apache-2.0

// Package bench times the multiplication strategies against each other and
// verifies their results against the serial oracle.
//
// A Runner builds two Dim×Dim operands filled with 1, 2, 3, ..., computes the
// serial product once as the reference, then runs every selected strategy
// with the configured worker count and writes a report:
//
//	Algorithm: parallel threads with 4 workers.
//	Time elapsed for parallel threads: 0 seconds and 231406 microseconds.
//	Verification for parallel threads: success.
//
// Any strategy error aborts the run; partial timings would be misleading.
package bench
