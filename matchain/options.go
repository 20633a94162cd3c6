// SPDX-License-Identifier: MIT

// Package matchain: functional configuration for the Optimizer.
//
// Defaults live in the Default* constants below and nowhere else.
// WithX constructors panic only on nonsensical values (programmer error).
package matchain

import "fmt"

// Strategy selects how the cost table is filled.
type Strategy int

const (
	// BottomUp fills the tables by increasing sub-chain length.
	BottomUp Strategy = iota

	// TopDown fills only what the full chain asks for, memoizing every
	// sub-chain. It is driven by an explicit stack, not by recursion.
	TopDown
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case BottomUp:
		return "bottom-up"
	case TopDown:
		return "top-down"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultStrategy is the table-filling order.
	DefaultStrategy = BottomUp

	// DefaultOperator joins the two halves of a split in rendered output.
	DefaultOperator = " x "

	// DefaultLabelPrefix precedes the 1-based matrix number: M1, M2, …
	DefaultLabelPrefix = "M"
)

const (
	panicStrategyInvalid = "matchain: WithStrategy: unknown strategy"
	panicOperatorEmpty   = "matchain: WithOperator: operator must be non-empty"
	panicLabelEmpty      = "matchain: WithLabelPrefix: prefix must be non-empty"
)

// Options holds the resolved Optimizer configuration.
type Options struct {
	Strategy    Strategy
	Operator    string
	LabelPrefix string
}

// Option mutates Options. Safe to apply repeatedly.
type Option func(*Options)

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Strategy:    DefaultStrategy,
		Operator:    DefaultOperator,
		LabelPrefix: DefaultLabelPrefix,
	}
}

// WithStrategy selects BottomUp or TopDown.
func WithStrategy(s Strategy) Option {
	if s != BottomUp && s != TopDown {
		panic(panicStrategyInvalid)
	}

	return func(o *Options) { o.Strategy = s }
}

// WithOperator sets the infix marker between multiplied halves, e.g. " * ".
func WithOperator(op string) Option {
	if op == "" {
		panic(panicOperatorEmpty)
	}

	return func(o *Options) { o.Operator = op }
}

// WithLabelPrefix sets the leaf label prefix, e.g. "A" renders A1, A2, …
func WithLabelPrefix(prefix string) Option {
	if prefix == "" {
		panic(panicLabelEmpty)
	}

	return func(o *Options) { o.LabelPrefix = prefix }
}

// gatherOptions applies opts over the defaults, skipping nil entries.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
