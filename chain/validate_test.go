// SPDX-License-Identifier: MIT

package chain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matchain/chain"
)

// requireIndexErr asserts err wraps sentinel at the given matrix position.
func requireIndexErr(t *testing.T, err error, sentinel error, index int) {
	t.Helper()
	require.ErrorIs(t, err, sentinel)
	var ie *chain.IndexError
	require.True(t, errors.As(err, &ie), "expected *chain.IndexError, got %T", err)
	assert.Equal(t, index, ie.Index)
}

func TestValidate_Empty(t *testing.T) {
	require.ErrorIs(t, chain.Validate(nil), chain.ErrEmptyChain)
	require.ErrorIs(t, chain.Validate(chain.Chain{}), chain.ErrEmptyChain)
}

func TestValidate_NotConformable(t *testing.T) {
	c := chain.Chain{{Rows: 6, Cols: 7}, {Rows: 5, Cols: 4}}
	requireIndexErr(t, chain.Validate(c), chain.ErrNotConformable, 0)

	// the first offending pair is reported
	c = chain.Chain{{Rows: 2, Cols: 3}, {Rows: 3, Cols: 4}, {Rows: 5, Cols: 6}, {Rows: 7, Cols: 8}}
	requireIndexErr(t, chain.Validate(c), chain.ErrNotConformable, 1)
}

func TestValidate_ZeroDimension(t *testing.T) {
	c := chain.Chain{{Rows: 6, Cols: 7}, {Rows: 7, Cols: 0}, {Rows: 0, Cols: 4}}
	requireIndexErr(t, chain.Validate(c), chain.ErrZeroDimension, 1)
}

func TestValidate_ZeroDimensionLastMatrix(t *testing.T) {
	c := chain.Chain{{Rows: 3, Cols: 2}, {Rows: 2, Cols: 0}}
	requireIndexErr(t, chain.Validate(c), chain.ErrZeroDimension, 1)

	requireIndexErr(t, chain.Validate(chain.Chain{{Rows: 0, Cols: 5}}), chain.ErrZeroDimension, 0)
}

func TestValidate_ConformabilityCheckedBeforeShape(t *testing.T) {
	// matrix 0 is degenerate and also mismatched with its neighbour
	c := chain.Chain{{Rows: 0, Cols: 7}, {Rows: 5, Cols: 4}}
	requireIndexErr(t, chain.Validate(c), chain.ErrNotConformable, 0)
}

func TestValidate_Negative(t *testing.T) {
	c := chain.Chain{{Rows: 2, Cols: -3}, {Rows: -3, Cols: 4}}
	requireIndexErr(t, chain.Validate(c), chain.ErrNegativeDimension, 0)
}

func TestValidate_Valid(t *testing.T) {
	cases := map[string]chain.Chain{
		"single":   {{Rows: 6, Cols: 7}},
		"three":    {{Rows: 6, Cols: 7}, {Rows: 7, Cols: 5}, {Rows: 5, Cols: 4}},
		"square":   {{Rows: 4, Cols: 4}, {Rows: 4, Cols: 4}, {Rows: 4, Cols: 4}},
		"vector":   chain.FromDims(1, 9, 1),
		"labEight": chain.FromDims(6, 8, 5, 4, 6, 3, 5, 7, 2),
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			assert.NoError(t, chain.Validate(c))
		})
	}
}

func TestIndexError_Message(t *testing.T) {
	err := chain.Validate(chain.Chain{{Rows: 6, Cols: 7}, {Rows: 5, Cols: 4}})
	assert.EqualError(t, err, "chain: matrices are not conformable: M1 and M2")

	err = chain.Validate(chain.FromDims(6, 7, 0, 4))
	assert.EqualError(t, err, "chain: matrix has zero dimensions: M2")
}
