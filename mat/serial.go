// Copyright 2025 The matbench Authors. SPDX-License-Identifier: Apache-2.0

package mat

// Serial runs the whole multiplication on the calling goroutine.
var Serial = Func("serial", MultiplySerial)

// MultiplySerial computes c = a * b with a single MultiplyChunk call over
// [0, dim). workers is validated but otherwise ignored.
func MultiplySerial(a, b, c []float64, dim, workers int) error {
	if err := CheckOperands(a, b, c, dim, workers); err != nil {
		return err
	}
	MultiplyChunk(a, b, c, dim, 0, dim)
	return nil
}
