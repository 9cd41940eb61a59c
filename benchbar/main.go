// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command benchbar draws bar charts of benchmark results.
//
// benchbar takes input files in Go benchmark format [1] and draws one
// group of bars per benchmark, with one bar per series. By default,
// each input file is a series. With -series, the series is instead
// given by a configuration key, so a single file can compare, for
// example, several commits. Repeated runs of a benchmark are averaged.
//
// With -tsv, the input is instead a tab-separated table with a header
// row. The first column gives the category of each row and each
// remaining numeric column is a series.
//
// Bars are drawn side by side unless -stack is given. The output is an
// SVG or PNG image.
//
// [1] https://github.com/golang/proposal/blob/master/design/14313-benchmark-format.md
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/aclements/go-barplot/barplot"
	"github.com/aclements/go-barplot/bench"
	"github.com/aclements/go-barplot/figure"
	"github.com/aclements/go-gg/table"
)

func main() {
	log.SetPrefix("benchbar: ")
	log.SetFlags(0)

	var (
		flagUnit   = flag.String("unit", "ns/op", "plot results with `unit`")
		flagSeries = flag.String("series", "", "group results into series by configuration `key` (default: by input file)")
		flagTSV    = flag.Bool("tsv", false, "read a tab-separated table instead of benchmark results")
		flagStack  = flag.Bool("stack", false, "stack series instead of drawing them side by side")
		flagOrder  = flag.String("order", "", "stacking `order`: z:N for z-orders starting at N, or comma-separated ranks")
		flagIGap   = flag.Float64("igap", 0.2, "gap between groups of bars, as a fraction of the category spacing")
		flagBGap   = flag.Float64("bgap", 0, "gap between bars in a group, as a fraction of the category spacing")
		flagStyle  = flag.String("style", "", "bar `options` as key=value words; comma-separated values vary by series")
		flagScalar = flag.String("scalar", "", "comma-separated `options` that are never split by series")
		flagTable  = flag.Bool("table", false, "output the averaged table instead of a plot")
		flagOut    = flag.String("o", "", "write output to `file` (default: stdout)")
		flagFormat = flag.String("format", "", "output `format`, svg or png (default: from -o)")
		flagTitle  = flag.String("title", "", "plot `title` (default: input file names)")
		flagYLabel = flag.String("ylabel", "", "y axis `label` (default: the unit)")
		flagWidth  = flag.Int("width", 640, "image width in pixels")
		flagHeight = flag.Int("height", 400, "image height in pixels")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [inputs...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	style, err := parseStyle(*flagStyle)
	if err != nil {
		log.Fatal(err)
	}
	order, err := parseOrder(*flagOrder)
	if err != nil {
		log.Fatal(err)
	}
	if *flagOrder != "" && !*flagStack {
		log.Fatal("-order requires -stack")
	}
	format, err := outputFormat(*flagOut, *flagFormat)
	if err != nil {
		log.Fatal(err)
	}

	paths := flag.Args()
	if len(paths) == 0 {
		paths = []string{"-"}
	}
	out := &outputFile{path: *flagOut}

	// Read inputs into categories and series.
	var cats []string
	var ys *barplot.Matrix
	ylabel := *flagUnit
	if *flagTSV {
		if len(paths) != 1 {
			log.Fatal("-tsv takes at most one input")
		}
		var t *table.Table
		withInput(paths[0], func(r *os.File) {
			t, err = readTSV(r)
		})
		if err != nil {
			log.Fatalf("%s: %v", paths[0], err)
		}
		if *flagTable {
			table.Fprint(out, t)
			if err := out.Close(); err != nil {
				log.Fatal(err)
			}
			return
		}
		cats, ys, err = tsvMatrix(t)
		if err != nil {
			log.Fatal(err)
		}
		ylabel = ""
	} else {
		var in benchInput
		for _, path := range paths {
			withInput(path, func(r *os.File) {
				var bs []*bench.Benchmark
				bs, err = bench.Parse(r)
				in.add(bs, path)
			})
			if err != nil {
				log.Fatalf("%s: %v", path, err)
			}
		}
		bench.ParseValues(in.benchmarks, nil)
		t, err := in.table(*flagUnit, *flagSeries)
		if err != nil {
			log.Fatal(err)
		}
		g := aggregate(t, *flagUnit)
		if *flagTable {
			table.Fprint(out, g)
			if err := out.Close(); err != nil {
				log.Fatal(err)
			}
			return
		}
		var missing []string
		cats, ys, missing, err = benchMatrix(t, g, *flagUnit)
		if err != nil {
			log.Fatal(err)
		}
		for _, m := range missing {
			log.Printf("warning: no %s results for %s; plotting 0", *flagUnit, m)
		}
	}

	// Label each series in the legend.
	if _, ok := style["label"]; !ok && len(ys.Names) > 1 {
		labels := make([]interface{}, len(ys.Names))
		for i, n := range ys.Names {
			labels[i] = n
		}
		style["label"] = barplot.PerSeries(labels...)
	}

	fig := figure.New()
	fig.Title = *flagTitle
	if fig.Title == "" && !(len(paths) == 1 && paths[0] == "-") {
		fig.Title = strings.Join(paths, " ")
	}
	fig.YLabel = *flagYLabel
	if fig.YLabel == "" {
		fig.YLabel = ylabel
	}

	scalar := splitList(*flagScalar)
	if *flagStack {
		err = barplot.StackBar(fig, cats, ys, barplot.StackOptions{
			Order:  order,
			Style:  style,
			Scalar: scalar,
		})
	} else {
		err = barplot.MultiBar(fig, cats, ys, barplot.MultiOptions{
			IGap:   *flagIGap,
			BGap:   *flagBGap,
			Style:  style,
			Scalar: scalar,
		})
	}
	if err != nil {
		log.Fatal(err)
	}

	// Render plot.
	if err := checkBinaryOutput(*flagOut, format); err != nil {
		log.Fatal(err)
	}
	if err := writeFigure(out, fig, format, *flagWidth, *flagHeight); err != nil {
		log.Fatal(err)
	}
	if err := out.Close(); err != nil {
		log.Fatal(err)
	}
}

// withInput calls fn with the file at path, or with stdin if path is
// "-".
func withInput(path string, fn func(r *os.File)) {
	f := os.Stdin
	if path != "-" {
		var err error
		f, err = os.Open(path)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	}
	fn(f)
}
