// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/aclements/go-barplot/barplot"
	"github.com/aclements/go-barplot/bench"
	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"
)

// benchInput is a set of benchmark results with the input file each
// came from.
type benchInput struct {
	benchmarks []*bench.Benchmark
	files      []string
}

// add adds the results read from file.
func (in *benchInput) add(bs []*bench.Benchmark, file string) {
	for _, b := range bs {
		in.benchmarks = append(in.benchmarks, b)
		in.files = append(in.files, file)
	}
}

// seriesOf returns the series benchmark i belongs to. If key is "",
// that is its input file. Otherwise it is the value of configuration
// key, or "" if the benchmark does not have key.
func (in *benchInput) seriesOf(i int, key string) string {
	if key == "" {
		return in.files[i]
	}
	if c, ok := in.benchmarks[i].Config[key]; ok {
		return c.String()
	}
	return ""
}

// table returns the results that have unit as a table with columns
// "name", "series", and unit. Series are grouped by key as described
// by seriesOf.
func (in *benchInput) table(unit, key string) (*table.Table, error) {
	var names, series []string
	var vals []float64
	for i, b := range in.benchmarks {
		v, ok := b.Result[unit]
		if !ok {
			continue
		}
		names = append(names, b.Name)
		series = append(series, in.seriesOf(i, key))
		vals = append(vals, v)
	}
	if len(vals) == 0 {
		return nil, fmt.Errorf("no results with unit %s", unit)
	}
	return new(table.Builder).
		Add("name", names).
		Add("series", series).
		Add(unit, vals).
		Done(), nil
}

// aggregate averages the repeated runs of each benchmark in each
// series.
func aggregate(t *table.Table, unit string) table.Grouping {
	return ggstat.Agg("name", "series")(ggstat.AggMean(unit)).F(t)
}

// benchMatrix arranges the means in g into a Matrix with one row per
// benchmark name and one column per series, both in the order they
// first appear in t. It also returns the (name, series) pairs that
// have no results; those cells are 0.
func benchMatrix(t *table.Table, g table.Grouping, unit string) (names []string, m *barplot.Matrix, missing []string, err error) {
	var allNames, allSeries []string
	slice.Convert(&allNames, t.MustColumn("name"))
	slice.Convert(&allSeries, t.MustColumn("series"))
	names, series := firstSeen(allNames), firstSeen(allSeries)

	type cell struct{ name, series string }
	means := make(map[cell]float64)
	for _, gid := range g.Tables() {
		at := g.Table(gid)
		var ns, ss []string
		var vs []float64
		slice.Convert(&ns, at.MustColumn("name"))
		slice.Convert(&ss, at.MustColumn("series"))
		slice.Convert(&vs, at.MustColumn("mean "+unit))
		for i := range ns {
			means[cell{ns[i], ss[i]}] = vs[i]
		}
	}

	cols := make([][]float64, len(series))
	for j, s := range series {
		cols[j] = make([]float64, len(names))
		for i, n := range names {
			v, ok := means[cell{n, s}]
			if !ok {
				missing = append(missing, fmt.Sprintf("%s/%s", n, s))
			}
			cols[j][i] = v
		}
	}
	m, err = barplot.FromColumns(series, cols...)
	return names, m, missing, err
}

// firstSeen returns the distinct elements of xs in the order they
// first appear.
func firstSeen(xs []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, x := range xs {
		if !seen[x] {
			seen[x] = true
			out = append(out, x)
		}
	}
	return out
}
