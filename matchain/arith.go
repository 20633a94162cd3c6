// SPDX-License-Identifier: MIT

package matchain

import "math/bits"

// mulCost returns p·q·r, or saturated when the product exceeds int64.
// All inputs are positive (guaranteed by chain.Validate).
func mulCost(p, q, r int) int64 {
	hi, lo := bits.Mul64(uint64(p), uint64(q))
	if hi != 0 || lo > uint64(saturated) {
		return saturated
	}
	hi, lo = bits.Mul64(lo, uint64(r))
	if hi != 0 || lo > uint64(saturated) {
		return saturated
	}

	return int64(lo)
}

// addCost returns a+b, or saturated when either operand is saturated or the
// sum exceeds int64. Both operands are non-negative.
func addCost(a, b int64) int64 {
	if a == saturated || b == saturated || a > saturated-b {
		return saturated
	}

	return a + b
}
