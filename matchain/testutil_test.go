// SPDX-License-Identifier: MIT

// Package matchain_test shares small helpers across the *_test.go files.
package matchain_test

import (
	"math/rand"
	"strconv"

	"github.com/katalvlaran/matchain/chain"
)

const (
	// seedDet keeps randomized cross-checks reproducible.
	seedDet = int64(42)

	// maxDim bounds random matrix sides in generated chains.
	maxDim = 30
)

// labCases are the conformable chains replayed by examples/matchain_lab_harness.go.
var labCases = []chain.Chain{
	chain.FromDims(6, 7, 5, 4),
	chain.FromDims(6, 8, 5, 4, 6),
	chain.FromDims(6, 8, 5, 4, 6, 3),
	chain.FromDims(6, 8, 5, 4, 6, 3, 5),
	chain.FromDims(6, 8, 5, 4, 6, 3, 5, 7, 2),
}

// randomChain returns a valid chain of n matrices with sides in [1, maxDim].
func randomChain(rng *rand.Rand, n int) chain.Chain {
	p := make([]int, n+1)
	for i := range p {
		p[i] = 1 + rng.Intn(maxDim)
	}

	return chain.FromDims(p...)
}

// grouping is one full bracketing of a sub-chain with its cost.
type grouping struct {
	cost int64
	expr string
}

// enumerateGroupings lists every full bracketing of [i, j], ordered by the
// root split k ascending, then by the left and right groupings in turn.
// It shares no code with the package under test.
func enumerateGroupings(c chain.Chain, i, j int) []grouping {
	if i == j {
		return []grouping{{cost: 0, expr: "M" + strconv.Itoa(i+1)}}
	}
	var out []grouping
	for k := i; k < j; k++ {
		mul := int64(c[i].Rows) * int64(c[k].Cols) * int64(c[j].Cols)
		for _, l := range enumerateGroupings(c, i, k) {
			for _, r := range enumerateGroupings(c, k+1, j) {
				out = append(out, grouping{
					cost: l.cost + r.cost + mul,
					expr: "(" + l.expr + " x " + r.expr + ")",
				})
			}
		}
	}

	return out
}

// firstMinimal returns the first grouping with the smallest cost.
func firstMinimal(gs []grouping) grouping {
	best := gs[0]
	for _, g := range gs[1:] {
		if g.cost < best.cost {
			best = g
		}
	}

	return best
}
