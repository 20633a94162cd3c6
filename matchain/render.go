// SPDX-License-Identifier: MIT

package matchain

import (
	"strconv"
	"strings"
)

// renderItem is one pending piece of output: either a literal token or a
// sub-chain span still to be expanded.
type renderItem struct {
	lit  string
	i, j int
	span bool
}

// Render returns the optimal bracketing of sub-chain [i, j] of the solved
// chain. A single matrix renders as its bare label.
func (o *Optimizer) Render(i, j int) (string, error) {
	if o.split == nil {
		return "", ErrNotComputed
	}
	if i < 0 || j < i || j >= o.split.Size() {
		return "", ErrIndexRange
	}

	return o.render(i, j), nil
}

// render walks the split table with an explicit stack, so depth is bounded
// by the heap rather than the goroutine stack. Items are pushed in reverse
// of their output order: ")" right op left "(".
func (o *Optimizer) render(i, j int) string {
	var (
		sb    strings.Builder
		stack = []renderItem{{i: i, j: j, span: true}}
		it    renderItem
		k     int
	)
	for len(stack) > 0 {
		it = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !it.span {
			sb.WriteString(it.lit)
			continue
		}
		if it.i == it.j {
			sb.WriteString(o.label(it.i))
			continue
		}

		k = int(o.split.at(it.i, it.j))
		stack = append(stack,
			renderItem{lit: ")"},
			renderItem{i: k + 1, j: it.j, span: true},
			renderItem{lit: o.opts.Operator},
			renderItem{i: it.i, j: k, span: true},
			renderItem{lit: "("},
		)
	}

	return sb.String()
}

// label returns the 1-based leaf label of matrix i, e.g. "M3" for i == 2.
func (o *Optimizer) label(i int) string {
	return o.opts.LabelPrefix + strconv.Itoa(i+1)
}

// RenderAllGroupings traces every split point of sub-chain [i, j] rather
// than one optimal choice. For each k in [i, j) it writes the grouping of
// [i, k], " x ", then the grouping of [k+1, j]; the runs for successive k
// are written back to back inside one pair of parentheses:
//
//	RenderAllGroupings(0, 2) == "(M1 x (M2 x M3)(M1 x M2) x M3)"
//
// Output length grows exponentially with j-i; use it only on short chains
// as a debugging trace.
func RenderAllGroupings(i, j int) (string, error) {
	if i < 0 || j < i {
		return "", ErrIndexRange
	}
	var sb strings.Builder
	writeAllGroupings(&sb, i, j)

	return sb.String(), nil
}

func writeAllGroupings(sb *strings.Builder, i, j int) {
	if i == j {
		sb.WriteString(DefaultLabelPrefix)
		sb.WriteString(strconv.Itoa(i + 1))
		return
	}
	sb.WriteByte('(')
	var k int
	for k = i; k < j; k++ {
		writeAllGroupings(sb, i, k)
		sb.WriteString(DefaultOperator)
		writeAllGroupings(sb, k+1, j)
	}
	sb.WriteByte(')')
}
