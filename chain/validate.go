// SPDX-License-Identifier: MIT

package chain

// Validate reports whether c may be handed to the optimizer.
//
// Scan order (first failure wins):
//  1. empty chain                        → ErrEmptyChain
//  2. for i = 0..n-1, ascending:
//     a. c[i].Cols != c[i+1].Rows        → IndexError{i, ErrNotConformable}
//     b. c[i] has a negative count       → IndexError{i, ErrNegativeDimension}
//     c. c[i] has a zero count           → IndexError{i, ErrZeroDimension}
//
// Step (a) is skipped for the last matrix, which has no right neighbour.
//
// Complexity: O(n) time, O(1) space.
func Validate(c Chain) error {
	n := len(c)
	if n == 0 {
		return ErrEmptyChain
	}

	var i int
	for i = 0; i < n; i++ {
		if i+1 < n && c[i].Cols != c[i+1].Rows {
			return indexErr(i, ErrNotConformable)
		}
		if c[i].Rows < 0 || c[i].Cols < 0 {
			return indexErr(i, ErrNegativeDimension)
		}
		if c[i].Rows == 0 || c[i].Cols == 0 {
			return indexErr(i, ErrZeroDimension)
		}
	}

	return nil
}
