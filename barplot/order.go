// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package barplot

import (
	"fmt"
	"sort"
)

// An Order determines the sequence in which series are drawn. Series
// drawn later are stacked above, and painted over, series drawn
// earlier.
//
// The zero Order draws the last series first and series 0 last, so
// series 0 ends up at the top of a stack.
type Order struct {
	kind  orderKind
	base  int
	ranks []int
}

type orderKind int

const (
	orderDefault orderKind = iota
	orderZ
	orderRanks
)

// ZOrder returns an Order that assigns each series a z-order starting
// at base: series i gets base+n-1-i, so series 0 has the highest
// z-order. Series are drawn in increasing z-order and StackBar passes
// each series' z-order to Axes.Bar as the "zorder" style option.
func ZOrder(base int) Order {
	return Order{kind: orderZ, base: base}
}

// Ranks returns an Order that gives each series its position in the
// stack, counted from the top: the series with the lowest rank is at
// the top of the stack and is drawn last. Only the relative values of
// ranks matter. Series with equal ranks are drawn in index order.
func Ranks(ranks ...int) Order {
	return Order{kind: orderRanks, ranks: append([]int(nil), ranks...)}
}

func (o Order) String() string {
	switch o.kind {
	case orderZ:
		return fmt.Sprintf("ZOrder(%d)", o.base)
	case orderRanks:
		return fmt.Sprintf("Ranks%v", o.ranks)
	}
	return "DefaultOrder"
}

// Resolve returns the draw sequence for n series. The result is always
// a permutation of 0, ..., n-1.
func (o Order) Resolve(n int) ([]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("barplot: negative series count %d", n)
	}
	switch o.kind {
	case orderDefault, orderZ:
		// The z-orders descend with the series index, so
		// increasing z-order is decreasing index.
		seq := make([]int, n)
		for i := range seq {
			seq[i] = n - 1 - i
		}
		return seq, nil

	case orderRanks:
		if len(o.ranks) != n {
			return nil, fmt.Errorf("barplot: stack order has %d ranks for %d series", len(o.ranks), n)
		}
		min := 0
		for i, r := range o.ranks {
			if i == 0 || r < min {
				min = r
			}
		}
		type ranked struct {
			index, rank int
		}
		rs := make([]ranked, n)
		for i, r := range o.ranks {
			rs[i] = ranked{i, r - min}
		}
		sort.SliceStable(rs, func(i, j int) bool {
			return rs[i].rank > rs[j].rank
		})
		seq := make([]int, n)
		for i, r := range rs {
			seq[i] = r.index
		}
		return seq, nil
	}
	panic("bad Order")
}

// zorders returns the z-order of each of n series, or nil if o does
// not assign z-orders.
func (o Order) zorders(n int) []int {
	if o.kind != orderZ {
		return nil
	}
	zs := make([]int, n)
	for i := range zs {
		zs[i] = o.base + n - 1 - i
	}
	return zs
}
