// SPDX-License-Identifier: MIT

package matchain

import "math"

// Unset marks a table cell that holds no value. Valid costs and split
// indices are never negative.
const Unset int64 = -1

// saturated stands for a cost that does not fit in an int64.
const saturated int64 = math.MaxInt64

// Table is a fixed n×n arena of int64 cells addressed by (start, end)
// sub-chain coordinates, stored row-major in one slice.
type Table struct {
	n     int
	cells []int64
}

// newTable allocates an n×n table with every cell set to Unset.
func newTable(n int) *Table {
	t := &Table{n: n, cells: make([]int64, n*n)}
	var i int
	for i = range t.cells {
		t.cells[i] = Unset
	}

	return t
}

// Size returns n.
func (t *Table) Size() int { return t.n }

// At returns cell (i, j), or ErrIndexRange for coordinates outside [0, n).
func (t *Table) At(i, j int) (int64, error) {
	if i < 0 || j < 0 || i >= t.n || j >= t.n {
		return 0, ErrIndexRange
	}

	return t.at(i, j), nil
}

// Rows returns a deep copy of the table as a slice of rows.
func (t *Table) Rows() [][]int64 {
	out := make([][]int64, t.n)
	var i int
	for i = range out {
		out[i] = make([]int64, t.n)
		copy(out[i], t.cells[i*t.n:(i+1)*t.n])
	}

	return out
}

func (t *Table) at(i, j int) int64     { return t.cells[i*t.n+j] }
func (t *Table) set(i, j int, v int64) { t.cells[i*t.n+j] = v }
