// SPDX-License-Identifier: MIT

package matchain

import "github.com/katalvlaran/matchain/chain"

// MaxBruteForceLen bounds the chain length accepted by BruteForceCost.
// The unmemoized recursion makes O(3ⁿ) calls.
const MaxBruteForceLen = 16

// BruteForceCost returns the minimum cost by recursing over every split of
// every sub-chain with no memoization. It is a reference oracle for the DP
// and shares nothing with the Optimizer's tables.
//
// Errors: chain validation sentinels, ErrChainTooLong, ErrCostOverflow.
func BruteForceCost(c chain.Chain) (int64, error) {
	if err := chain.Validate(c); err != nil {
		return 0, err
	}
	if len(c) > MaxBruteForceLen {
		return 0, ErrChainTooLong
	}
	cost := bruteForce(c, 0, len(c)-1)
	if cost == saturated {
		return 0, ErrCostOverflow
	}

	return cost, nil
}

func bruteForce(c chain.Chain, i, j int) int64 {
	if i == j {
		return 0
	}
	best := saturated
	var (
		k    int
		cand int64
	)
	for k = i; k < j; k++ {
		cand = addCost(
			addCost(bruteForce(c, i, k), bruteForce(c, k+1, j)),
			mulCost(c[i].Rows, c[k].Cols, c[j].Cols),
		)
		if cand < best {
			best = cand
		}
	}

	return best
}

// SequentialCost returns the cost of the naive left-to-right order
// ((M1·M2)·M3)·…·Mn. The running product always has c[0].Rows rows, so
// step i costs c[0].Rows·c[i].Cols·c[i+1].Cols.
//
// Errors: chain validation sentinels, ErrCostOverflow.
func SequentialCost(c chain.Chain) (int64, error) {
	if err := chain.Validate(c); err != nil {
		return 0, err
	}
	var (
		total int64
		i     int
	)
	for i = 0; i+1 < len(c); i++ {
		total = addCost(total, mulCost(c[0].Rows, c[i].Cols, c[i+1].Cols))
	}
	if total == saturated {
		return 0, ErrCostOverflow
	}

	return total, nil
}
