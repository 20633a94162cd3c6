// SPDX-License-Identifier: MIT

package matchain

import (
	"fmt"

	"github.com/katalvlaran/matchain/chain"
)

// Span is an inclusive range [From, To] of 0-based matrix positions.
type Span struct {
	From int
	To   int
}

// Step is one pairwise multiplication of the optimal order: the product of
// sub-chain Left (Rows×Inner) by sub-chain Right (Inner×Cols).
type Step struct {
	Left  Span
	Right Span
	Rows  int
	Inner int
	Cols  int

	// Cost is Rows·Inner·Cols.
	Cost int64
}

// Shape returns the shape of the step's product.
func (s Step) Shape() chain.Dim { return chain.Dim{Rows: s.Rows, Cols: s.Cols} }

// String renders the step with 1-based spans, e.g. "M1..M2 x M3: 6x5 * 5x4 = 120".
func (s Step) String() string {
	return fmt.Sprintf("%s x %s: %dx%d * %dx%d = %d",
		spanLabel(s.Left), spanLabel(s.Right), s.Rows, s.Inner, s.Inner, s.Cols, s.Cost)
}

func spanLabel(sp Span) string {
	if sp.From == sp.To {
		return fmt.Sprintf("M%d", sp.From+1)
	}

	return fmt.Sprintf("M%d..M%d", sp.From+1, sp.To+1)
}

// Plan returns the n-1 multiplications of the optimal order, each one after
// the steps producing its operands (post-order, left subtree first). The
// step costs sum to Result.Cost. A single-matrix chain yields no steps.
//
// Complexity: O(n) time and memory.
func (o *Optimizer) Plan() ([]Step, error) {
	if o.split == nil {
		return nil, ErrNotComputed
	}
	n := len(o.c)
	if n < 2 {
		return []Step{}, nil
	}

	type frame struct {
		i, j int
		done bool
	}
	var (
		steps = make([]Step, 0, n-1)
		stack = []frame{{i: 0, j: n - 1}}
		f     frame
		k     int
	)
	for len(stack) > 0 {
		f = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.i == f.j {
			continue
		}
		k = int(o.split.at(f.i, f.j))
		if f.done {
			steps = append(steps, Step{
				Left:  Span{From: f.i, To: k},
				Right: Span{From: k + 1, To: f.j},
				Rows:  o.c[f.i].Rows,
				Inner: o.c[k].Cols,
				Cols:  o.c[f.j].Cols,
				Cost:  mulCost(o.c[f.i].Rows, o.c[k].Cols, o.c[f.j].Cols),
			})
			continue
		}
		stack = append(stack,
			frame{i: f.i, j: f.j, done: true},
			frame{i: k + 1, j: f.j},
			frame{i: f.i, j: k},
		)
	}

	return steps, nil
}
