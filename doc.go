// Package matchain is a small, dependency-light toolkit for ordering matrix
// chain multiplications by cost.
//
// 🚀 What is inside?
//
//	chain/    - matrix shapes (Dim, Chain) and the Validate conformability check
//	matchain/ - the interval-DP Optimizer, bracketing renderer, multiplication
//	            Plan, and reference oracles (BruteForceCost, SequentialCost,
//	            RenderAllGroupings)
//	examples/ - runnable harness replaying the classic lab cases
//
// ✨ Why?
//
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic – left-biased tie-break, identical results for both
//     fill strategies
//   - Iterative – no recursion depth limits in the DP or the reconstruction
//
// Quick example:
//
//	6x7 · 7x5 · 5x4  →  cost 308, (M1 x (M2 x M3))
//
//	go get github.com/katalvlaran/matchain
package matchain
