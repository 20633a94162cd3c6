// SPDX-License-Identifier: MIT

// Package chain describes a sequence of matrix shapes to be multiplied and
// checks that the sequence is well formed.
//
// 🚀 What is a chain?
//
//	A chain is the ordered list of shapes M1·M2·…·Mn. Only the shapes are
//	stored, never the matrix entries:
//
//	  c := chain.Chain{{Rows: 6, Cols: 7}, {Rows: 7, Cols: 5}, {Rows: 5, Cols: 4}}
//
//	or, from the classic p0..pn dimension vector:
//
//	  c := chain.FromDims(6, 7, 5, 4)
//
// ✨ Validation rules (Validate):
//   - the chain is non-empty                         → ErrEmptyChain
//   - neighbours share the inner dimension           → ErrNotConformable
//   - no matrix has a zero row or column count       → ErrZeroDimension
//   - no matrix has a negative row or column count   → ErrNegativeDimension
//
// Index-carrying failures are reported as *IndexError, which unwraps to the
// sentinel. Match with errors.Is, read the position with errors.As.
//
// Complexity: O(n) time, no allocations on success.
package chain
