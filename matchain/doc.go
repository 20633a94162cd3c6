// SPDX-License-Identifier: MIT

// Package matchain finds the cheapest order in which to multiply a chain of
// matrices, given only their shapes.
//
// 🚀 What is matrix-chain ordering?
//
//	Matrix multiplication is associative, so M1·M2·M3 may be evaluated as
//	(M1·M2)·M3 or M1·(M2·M3). The result is the same, the scalar work is not:
//	multiplying a p×q by a q×r matrix costs p·q·r multiplications.
//
//	  6x7 · 7x5 · 5x4
//	  ((M1 x M2) x M3) = 210 + 120 = 330
//	  (M1 x (M2 x M3)) = 140 + 168 = 308   ← optimal
//
// ✨ Key features:
//   - interval DP over sub-chains, O(n³) time and O(n²) memory
//   - BottomUp (by sub-chain length) or TopDown (memoized) strategies,
//     both iterative and both producing identical tables
//   - left-biased tie-break: the first optimal split point wins
//   - reconstruction of the optimal bracketing as a string and as an
//     ordered multiplication Plan
//   - reference tools: RenderAllGroupings, BruteForceCost, SequentialCost
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/matchain/chain"
//	  "github.com/katalvlaran/matchain/matchain"
//	)
//
//	res, err := matchain.ComputeOptimal(chain.FromDims(6, 7, 5, 4))
//	if err != nil {
//	  // chain.ErrEmptyChain, chain.ErrNotConformable, chain.ErrZeroDimension, …
//	}
//	fmt.Println(res.Cost, res.Sequence) // 308 (M1 x (M2 x M3))
//
// The package performs no I/O and never logs. An Optimizer is not safe for
// concurrent use; give each goroutine its own.
package matchain
