// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"reflect"
	"strings"
	"testing"

	"github.com/aclements/go-barplot/bench"
	"github.com/aclements/go-gg/table"
)

const oldBench = `goos: linux
goarch: amd64
BenchmarkParse-8   	 1000	      1200 ns/op	     64 B/op
BenchmarkParse-8   	 1000	      1000 ns/op	     64 B/op
BenchmarkPrint/json-8	  500	      3000 ns/op
PASS
ok  	example.com/pkg	2.1s
`

const newBench = `BenchmarkPrint/json-8	  500	      2000 ns/op
Benchmarklower 1 2 ns/op
BenchmarkParse 100 800 ns/op
BenchmarkBad x 1 ns/op
`

// readTable reads benchmark files named "old" and "new" and returns
// their unit results grouped into series by key.
func readTable(t *testing.T, unit, key string, files ...string) (*table.Table, error) {
	var in benchInput
	for i, data := range files {
		bs, err := bench.Parse(strings.NewReader(data))
		if err != nil {
			t.Fatal(err)
		}
		in.add(bs, []string{"old", "new"}[i])
	}
	bench.ParseValues(in.benchmarks, nil)
	return in.table(unit, key)
}

func TestBenchMatrix(t *testing.T) {
	tab, err := readTable(t, "ns/op", "", oldBench, newBench)
	if err != nil {
		t.Fatal(err)
	}
	names, m, missing, err := benchMatrix(tab, aggregate(tab, "ns/op"), "ns/op")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"Parse", "Print/json"}; !reflect.DeepEqual(names, want) {
		t.Errorf("names %v; want %v", names, want)
	}
	if want := []string{"old", "new"}; !reflect.DeepEqual(m.Names, want) {
		t.Errorf("series %v; want %v", m.Names, want)
	}
	if want := []float64{1100, 3000}; !reflect.DeepEqual(m.Col(0), want) {
		t.Errorf("old means %v; want %v", m.Col(0), want)
	}
	if want := []float64{800, 2000}; !reflect.DeepEqual(m.Col(1), want) {
		t.Errorf("new means %v; want %v", m.Col(1), want)
	}
	if len(missing) != 0 {
		t.Errorf("unexpected missing cells %v", missing)
	}
}

func TestBenchMatrixMissing(t *testing.T) {
	tab, err := readTable(t, "B/op", "", oldBench, newBench)
	if err != nil {
		t.Fatal(err)
	}
	names, m, missing, err := benchMatrix(tab, aggregate(tab, "B/op"), "B/op")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"Parse"}; !reflect.DeepEqual(names, want) {
		t.Errorf("names %v; want %v", names, want)
	}
	if m.Cols() != 1 || m.At(0, 0) != 64 {
		t.Errorf("got %d series, first %v; want 1 series, 64", m.Cols(), m.At(0, 0))
	}
	if len(missing) != 0 {
		t.Errorf("unexpected missing cells %v", missing)
	}

	// Print/json has no results in series "new".
	tab, _ = readTable(t, "ns/op", "", oldBench, "BenchmarkParse 1 900 ns/op\n")
	_, m, missing, err = benchMatrix(tab, aggregate(tab, "ns/op"), "ns/op")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"Print/json/new"}; !reflect.DeepEqual(missing, want) {
		t.Errorf("missing %v; want %v", missing, want)
	}
	if want := []float64{900, 0}; !reflect.DeepEqual(m.Col(1), want) {
		t.Errorf("new column %v; want %v", m.Col(1), want)
	}
}

func TestBenchSeriesKey(t *testing.T) {
	const data = `commit: aaa
BenchmarkA 1 10 ns/op
BenchmarkA 1 20 ns/op
commit: bbb
BenchmarkA 1 5 ns/op
`
	tab, err := readTable(t, "ns/op", "commit", data)
	if err != nil {
		t.Fatal(err)
	}
	_, m, _, err := benchMatrix(tab, aggregate(tab, "ns/op"), "ns/op")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"aaa", "bbb"}; !reflect.DeepEqual(m.Names, want) {
		t.Errorf("series %v; want %v", m.Names, want)
	}
	if m.At(0, 0) != 15 || m.At(0, 1) != 5 {
		t.Errorf("means %v, %v; want 15, 5", m.At(0, 0), m.At(0, 1))
	}
}

func TestBenchNoUnit(t *testing.T) {
	if _, err := readTable(t, "allocs/op", "", oldBench); err == nil {
		t.Errorf("want error for unit with no results")
	}
}

func TestBenchSubBenchmarkKey(t *testing.T) {
	const data = `BenchmarkSort/n:10-8	100	50 ns/op
BenchmarkSort/n:1000-8	10	9000 ns/op
BenchmarkSort/n:10-8	100	70 ns/op
BenchmarkSearch/n:1000-8	10	30 ns/op
`
	tab, err := readTable(t, "ns/op", "n", data)
	if err != nil {
		t.Fatal(err)
	}
	names, m, missing, err := benchMatrix(tab, aggregate(tab, "ns/op"), "ns/op")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"Sort", "Search"}; !reflect.DeepEqual(names, want) {
		t.Errorf("names %v; want %v", names, want)
	}
	if want := []string{"10", "1000"}; !reflect.DeepEqual(m.Names, want) {
		t.Errorf("series %v; want %v", m.Names, want)
	}
	if want := []float64{60, 0}; !reflect.DeepEqual(m.Col(0), want) {
		t.Errorf("n=10 means %v; want %v", m.Col(0), want)
	}
	if want := []float64{9000, 30}; !reflect.DeepEqual(m.Col(1), want) {
		t.Errorf("n=1000 means %v; want %v", m.Col(1), want)
	}
	if want := []string{"Search/10"}; !reflect.DeepEqual(missing, want) {
		t.Errorf("missing %v; want %v", missing, want)
	}
}
