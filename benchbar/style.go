// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aclements/go-barplot/barplot"
	"github.com/kballard/go-shellquote"
)

// parseStyle parses a list of shell-quoted key=value words into bar
// options. A value containing commas is split into one value per
// series. Values that parse as numbers become float64s.
func parseStyle(s string) (barplot.Options, error) {
	words, err := shellquote.Split(s)
	if err != nil {
		return nil, fmt.Errorf("bad -style: %v", err)
	}
	opts := make(barplot.Options)
	for _, w := range words {
		i := strings.Index(w, "=")
		if i <= 0 {
			return nil, fmt.Errorf("bad -style option %q: want key=value", w)
		}
		key, val := w[:i], w[i+1:]
		if !strings.Contains(val, ",") {
			opts[key] = barplot.Scalar(styleValue(val))
			continue
		}
		var vs []interface{}
		for _, v := range strings.Split(val, ",") {
			vs = append(vs, styleValue(v))
		}
		opts[key] = barplot.PerSeries(vs...)
	}
	return opts, nil
}

func styleValue(s string) interface{} {
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v
	}
	return s
}

// parseOrder parses an -order flag. It is either "z:N", which draws
// bars with increasing zorder starting at N, or a comma-separated list
// of stacking ranks, one per series.
func parseOrder(s string) (barplot.Order, error) {
	if s == "" {
		return barplot.Order{}, nil
	}
	if strings.HasPrefix(s, "z:") {
		base, err := strconv.Atoi(s[2:])
		if err != nil {
			return barplot.Order{}, fmt.Errorf("bad -order %q: %v", s, err)
		}
		return barplot.ZOrder(base), nil
	}
	var ranks []int
	for _, f := range strings.Split(s, ",") {
		r, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return barplot.Order{}, fmt.Errorf("bad -order %q: %v", s, err)
		}
		ranks = append(ranks, r)
	}
	return barplot.Ranks(ranks...), nil
}

// splitList splits a comma-separated flag value, ignoring empty
// elements.
func splitList(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
