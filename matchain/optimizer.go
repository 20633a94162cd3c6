// SPDX-License-Identifier: MIT

package matchain

import (
	"github.com/katalvlaran/matchain/chain"
)

// Matrix-Chain Ordering
//
// Description:
//
//	For a chain M1·…·Mn with Mi of shape p[i-1]×p[i], find the bracketing
//	that minimizes the number of scalar multiplications.
//
// Algorithm Outline (BottomUp):
//  1. Allocate n×n cost and split tables, every cell Unset.
//  2. cost[i][i] = 0 for all i.
//  3. For L = 2..n, i = 0..n-L, j = i+L-1:
//     cost[i][j] = min over k∈[i,j) of
//     cost[i][k] + cost[k+1][j] + rows(i)·cols(k)·cols(j)
//     split[i][j] = the first k reaching the minimum (strict <).
//  4. Answer is cost[0][n-1]; bracketing follows split from (0, n-1).
//
// TopDown computes the same cells on demand from (0, n-1), memoizing each
// one, with an explicit work stack instead of recursion.
//
// Complexity:
//
//	Time   = O(n³)
//	Memory = O(n²)
//
// Errors:
//   - chain validation sentinels, returned unchanged.
//   - ErrCostOverflow if the minimum cost does not fit in an int64.

// Result is the outcome of ComputeOptimal.
type Result struct {
	// Cost is the minimum number of scalar multiplications.
	Cost int64

	// Sequence is the optimal bracketing, e.g. "(M1 x (M2 x M3))".
	// A single matrix renders as its bare label, e.g. "M1".
	Sequence string
}

// Optimizer owns the cost and split tables for the last chain it solved.
// Solving a new chain discards the previous tables entirely.
type Optimizer struct {
	opts  Options
	c     chain.Chain
	cost  *Table
	split *Table
}

// New returns an Optimizer configured by opts over DefaultOptions.
func New(opts ...Option) *Optimizer {
	return &Optimizer{opts: gatherOptions(opts...)}
}

// ComputeOptimal validates c, solves it with a fresh Optimizer and returns
// the minimum cost with its rendered bracketing.
//
// Example:
//
//	res, err := ComputeOptimal(chain.FromDims(6, 7, 5, 4))
//	// res.Cost == 308, res.Sequence == "(M1 x (M2 x M3))"
func ComputeOptimal(c chain.Chain, opts ...Option) (Result, error) {
	return New(opts...).ComputeOptimal(c)
}

// ComputeOptimal validates c, rebuilds both tables for it and returns the
// minimum cost with its rendered bracketing. On a validation error no table
// work is done and the Optimizer is left empty.
func (o *Optimizer) ComputeOptimal(c chain.Chain) (Result, error) {
	o.reset()
	if err := chain.Validate(c); err != nil {
		return Result{}, err
	}

	n := len(c)
	o.c = c.Clone()
	o.cost = newTable(n)
	o.split = newTable(n)
	var i int
	for i = 0; i < n; i++ {
		o.cost.set(i, i, 0)
	}

	if n == 1 {
		return Result{Cost: 0, Sequence: o.label(0)}, nil
	}

	switch o.opts.Strategy {
	case TopDown:
		o.fillTopDown()
	default:
		o.fillBottomUp()
	}

	total := o.cost.at(0, n-1)
	if total == saturated {
		o.reset()
		return Result{}, ErrCostOverflow
	}

	return Result{Cost: total, Sequence: o.render(0, n-1)}, nil
}

// fillBottomUp solves every sub-chain in order of increasing length.
func (o *Optimizer) fillBottomUp() {
	n := len(o.c)
	var length, i int
	for length = 2; length <= n; length++ {
		for i = 0; i+length-1 < n; i++ {
			o.solveCell(i, i+length-1)
		}
	}
}

// fillTopDown solves (0, n-1), descending into unsolved sub-chains first.
// A span is pushed back under its missing children; by the time it is popped
// again every child above it has been solved.
func (o *Optimizer) fillTopDown() {
	n := len(o.c)
	stack := [][2]int{{0, n - 1}}

	var (
		top     [2]int
		i, j, k int
		pending bool
	)
	for len(stack) > 0 {
		top = stack[len(stack)-1]
		i, j = top[0], top[1]
		if o.cost.at(i, j) != Unset {
			stack = stack[:len(stack)-1] // memo hit or duplicate push
			continue
		}

		pending = false
		for k = i; k < j; k++ {
			if o.cost.at(i, k) == Unset {
				stack = append(stack, [2]int{i, k})
				pending = true
			}
			if o.cost.at(k+1, j) == Unset {
				stack = append(stack, [2]int{k + 1, j})
				pending = true
			}
		}
		if pending {
			continue
		}

		stack = stack[:len(stack)-1]
		o.solveCell(i, j)
	}
}

// solveCell computes cost[i][j] and split[i][j] from already solved
// sub-chains. The first k with the strictly smallest cost wins.
func (o *Optimizer) solveCell(i, j int) {
	var (
		k    int
		cand int64
		best = saturated
		arg  = i
	)
	for k = i; k < j; k++ {
		cand = addCost(
			addCost(o.cost.at(i, k), o.cost.at(k+1, j)),
			mulCost(o.c[i].Rows, o.c[k].Cols, o.c[j].Cols),
		)
		if cand < best {
			best = cand
			arg = k
		}
	}
	o.cost.set(i, j, best)
	o.split.set(i, j, int64(arg))
}

// reset drops the tables of the previous chain.
func (o *Optimizer) reset() {
	o.c = nil
	o.cost = nil
	o.split = nil
}

// Len returns the length of the solved chain, or 0 if none.
func (o *Optimizer) Len() int { return len(o.c) }

// Chain returns a copy of the solved chain, or nil if none.
func (o *Optimizer) Chain() chain.Chain { return o.c.Clone() }

// CostAt returns the minimum cost of sub-chain [i, j]. Cells with i > j
// hold Unset.
func (o *Optimizer) CostAt(i, j int) (int64, error) {
	if o.cost == nil {
		return 0, ErrNotComputed
	}

	return o.cost.At(i, j)
}

// SplitAt returns the optimal split index k of sub-chain [i, j], meaning the
// bracketing [i, k]·[k+1, j]. Diagonal and lower-triangle cells hold Unset.
func (o *Optimizer) SplitAt(i, j int) (int64, error) {
	if o.split == nil {
		return 0, ErrNotComputed
	}

	return o.split.At(i, j)
}

// Costs returns a deep copy of the cost table.
func (o *Optimizer) Costs() ([][]int64, error) {
	if o.cost == nil {
		return nil, ErrNotComputed
	}

	return o.cost.Rows(), nil
}

// Splits returns a deep copy of the split table.
func (o *Optimizer) Splits() ([][]int64, error) {
	if o.split == nil {
		return nil, ErrNotComputed
	}

	return o.split.Rows(), nil
}
