// SPDX-License-Identifier: MIT

package matchain

import "errors"

// Validation failures come from package chain (chain.ErrEmptyChain,
// chain.ErrNotConformable, chain.ErrZeroDimension, chain.ErrNegativeDimension)
// and are returned unchanged. The sentinels below cover optimizer-only
// conditions; every message is prefixed with "matchain: ...".
var (
	// ErrIndexRange indicates a sub-chain or table coordinate outside [0, n).
	ErrIndexRange = errors.New("matchain: index out of range")

	// ErrNotComputed indicates a query before any chain was successfully solved.
	ErrNotComputed = errors.New("matchain: no chain has been solved")

	// ErrCostOverflow indicates the minimum cost does not fit in an int64.
	ErrCostOverflow = errors.New("matchain: cost exceeds int64 range")

	// ErrChainTooLong indicates a chain too long for an exponential reference routine.
	ErrChainTooLong = errors.New("matchain: chain too long for exhaustive search")
)
