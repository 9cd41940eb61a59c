// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package barplot

import (
	"fmt"
	"sort"
)

// A Value is a drawing option value. It is either a scalar, which is
// used for every series, or a per-series sequence.
type Value struct {
	v      interface{}
	series []interface{}
	wide   bool
}

// Scalar returns a Value that applies v to every series.
func Scalar(v interface{}) Value {
	return Value{v: v}
}

// PerSeries returns a Value whose i'th element applies to series i.
func PerSeries(vs ...interface{}) Value {
	return Value{series: vs, wide: true}
}

// IsPerSeries reports whether v was constructed by PerSeries.
func (v Value) IsPerSeries() bool {
	return v.wide
}

// Len returns the number of elements in a per-series Value, or 1 for a
// scalar.
func (v Value) Len() int {
	if !v.wide {
		return 1
	}
	return len(v.series)
}

// Interface returns the underlying value. For a per-series Value, this
// is a []interface{} holding a copy of the sequence.
func (v Value) Interface() interface{} {
	if !v.wide {
		return v.v
	}
	return append([]interface{}(nil), v.series...)
}

func (v Value) String() string {
	if v.wide {
		return fmt.Sprintf("PerSeries%v", v.series)
	}
	return fmt.Sprintf("Scalar(%v)", v.v)
}

// Options maps option names to values. Options not interpreted by this
// package are passed through to Axes.Bar in Bar.Style.
type Options map[string]Value

// A Broadcast is an Options set split into the options shared by every
// series and the options that vary by series.
type Broadcast struct {
	thin Style
	wide map[string][]interface{}
	keys []string // Sorted keys of wide.
}

// Broadcast splits o into shared and per-series options. An option is
// per-series if it is a PerSeries value and its name is not listed in
// scalar. Options named in scalar are always shared; a PerSeries value
// named in scalar is passed to every series as a []interface{}.
func (o Options) Broadcast(scalar ...string) *Broadcast {
	keep := make(map[string]bool, len(scalar))
	for _, name := range scalar {
		keep[name] = true
	}

	b := &Broadcast{thin: make(Style), wide: make(map[string][]interface{})}
	for name, v := range o {
		if v.wide && !keep[name] {
			b.wide[name] = v.series
			b.keys = append(b.keys, name)
		} else {
			b.thin[name] = v.Interface()
		}
	}
	sort.Strings(b.keys)
	return b
}

// At returns the style for series i: every shared option plus element
// i of every per-series option. It returns an error if a per-series
// option has no element i.
func (b *Broadcast) At(i int) (Style, error) {
	s := b.thin.clone()
	for _, name := range b.keys {
		seq := b.wide[name]
		if i < 0 || i >= len(seq) {
			return nil, fmt.Errorf("barplot: option %q: series index %d out of range [0:%d]", name, i, len(seq))
		}
		s[name] = seq[i]
	}
	return s, nil
}

// Shared returns the names of the options that apply to every series.
func (b *Broadcast) Shared() []string {
	names := make([]string, 0, len(b.thin))
	for name := range b.thin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Varying returns the names of the per-series options.
func (b *Broadcast) Varying() []string {
	return append([]string(nil), b.keys...)
}
