// SPDX-License-Identifier: MIT

package chain

import "fmt"

// Dim is the shape of one matrix: Rows×Cols.
type Dim struct {
	Rows int
	Cols int
}

// String renders the shape as "RxC".
func (d Dim) String() string {
	return fmt.Sprintf("%dx%d", d.Rows, d.Cols)
}

// Chain is the ordered sequence of shapes M1·M2·…·Mn.
// Index i in the slice is the matrix labelled M(i+1).
type Chain []Dim

// Len returns the number of matrices in the chain.
func (c Chain) Len() int { return len(c) }

// FromDims builds a chain from the dimension vector p0, p1, …, pn, where
// matrix i has shape p[i]×p[i+1]. Fewer than two values yield an empty chain.
//
// Example:
//
//	FromDims(6, 7, 5, 4) // {6x7, 7x5, 5x4}
func FromDims(p ...int) Chain {
	if len(p) < 2 {
		return Chain{}
	}
	c := make(Chain, len(p)-1)
	var i int
	for i = range c {
		c[i] = Dim{Rows: p[i], Cols: p[i+1]}
	}

	return c
}

// Dims returns the dimension vector p0..pn of a conformable chain:
// the row count of every matrix followed by the column count of the last.
// It does not validate; call Validate first when the chain is untrusted.
func (c Chain) Dims() []int {
	if len(c) == 0 {
		return nil
	}
	p := make([]int, len(c)+1)
	var i int
	for i = range c {
		p[i] = c[i].Rows
	}
	p[len(c)] = c[len(c)-1].Cols

	return p
}

// Clone returns an independent copy of c.
func (c Chain) Clone() Chain {
	if c == nil {
		return nil
	}
	cp := make(Chain, len(c))
	copy(cp, c)

	return cp
}
