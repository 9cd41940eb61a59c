// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package barplot composes stacked and grouped bar charts on top of an
// axis that knows how to draw a single set of bars.
//
// The package does no rendering itself. StackBar and MultiBar compute
// bar positions, stacking offsets, and per-series styles, and then
// issue one Axes.Bar call per series. Package
// github.com/aclements/go-barplot/figure provides an Axes that renders
// to SVG and PNG.
//
// Drawing options are given as an Options map. Each option is either a
// Scalar, which applies to every series, or a PerSeries value, which
// has one element per series:
//
//	opts := barplot.Options{
//		"color": barplot.PerSeries("#4c72b0", "#55a868"),
//		"alpha": barplot.Scalar(0.8),
//	}
package barplot

// DefaultWidth is the bar width StackBar uses when none is given. It
// is a fraction of the distance between adjacent categories.
const DefaultWidth = 0.8

// Axes is a drawing surface for bars.
//
// Implementations are not expected to be safe for concurrent use. The
// functions in this package return errors from Axes unchanged.
type Axes interface {
	// Bar draws one bar at each position in b.X. StackBar and
	// MultiBar pass slices that no one else refers to, so Bar may
	// retain or modify them.
	Bar(b Bar) error

	// SetXTicks places the x axis ticks at pos.
	SetXTicks(pos []float64) error

	// SetXTickLabels labels the ticks set by SetXTicks.
	SetXTickLabels(labels []string) error
}

// Bar is a single bar-drawing request. All of its slices have one
// element per bar.
type Bar struct {
	// X gives the center of each bar.
	X []float64

	// Labels, if non-nil, names each position in X. This indicates
	// that X is categorical and Axes may use Labels for its ticks.
	Labels []string

	// Height and Bottom give the extent of each bar, which spans
	// [Bottom[i], Bottom[i]+Height[i]].
	Height []float64
	Bottom []float64

	// Width is the width of every bar in X units.
	Width float64

	// Style holds pass-through drawing options, such as colors.
	// Their interpretation is up to the Axes.
	Style Style
}

// Style is a resolved set of drawing options for one Axes.Bar call.
type Style map[string]interface{}

func (s Style) clone() Style {
	s2 := make(Style, len(s))
	for k, v := range s {
		s2[k] = v
	}
	return s2
}

// positions returns the category positions 0, 1, ..., n-1.
func positions(n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i)
	}
	return xs
}
