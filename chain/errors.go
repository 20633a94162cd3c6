// SPDX-License-Identifier: MIT

package chain

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "chain: ...". Return sentinels either bare
// (ErrEmptyChain) or inside *IndexError; callers match with errors.Is.
var (
	// ErrEmptyChain is returned when the chain holds no matrices.
	ErrEmptyChain = errors.New("chain: no matrices available")

	// ErrNotConformable indicates that c[i].Cols != c[i+1].Rows.
	ErrNotConformable = errors.New("chain: matrices are not conformable")

	// ErrZeroDimension indicates a matrix with zero rows or zero columns.
	ErrZeroDimension = errors.New("chain: matrix has zero dimensions")

	// ErrNegativeDimension indicates a matrix with a negative row or column count.
	ErrNegativeDimension = errors.New("chain: matrix has negative dimensions")
)

// IndexError ties a validation sentinel to the 0-based position of the
// offending matrix. For ErrNotConformable, Index is the left matrix of the pair.
type IndexError struct {
	Index int
	Err   error
}

// Error renders positions 1-based, matching the M1..Mn labels.
func (e *IndexError) Error() string {
	if errors.Is(e.Err, ErrNotConformable) {
		return fmt.Sprintf("%v: M%d and M%d", e.Err, e.Index+1, e.Index+2)
	}

	return fmt.Sprintf("%v: M%d", e.Err, e.Index+1)
}

// Unwrap exposes the sentinel to errors.Is.
func (e *IndexError) Unwrap() error { return e.Err }

// indexErr builds an *IndexError for sentinel err at position i.
func indexErr(i int, err error) error {
	return &IndexError{Index: i, Err: err}
}
