// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package figure implements a single set of bar chart axes that can be
// rendered as SVG or PNG.
//
// A Figure implements barplot.Axes. It records the bars and ticks it
// is given and lays them out when it is written. Bar styles understand
// the following options:
//
//	color      fill color (default: one palette color per Bar call)
//	edgecolor  outline color (default: none)
//	linewidth  outline width in pixels (default: 1)
//	alpha      opacity in [0, 1], applied to the fill and outline
//	label      legend label
//	zorder     paint order; bars with lower zorder are painted first
//
// Colors may be given as color.Color values or as strings of the form
// "#rgb", "#rrggbb", "#rrggbbaa", "none", or an SVG color name.
package figure

import (
	"fmt"
	"image/color"
	"reflect"

	"github.com/aclements/go-barplot/barplot"
)

// Figure is a set of bar chart axes.
//
// The zero Figure is ready to use.
type Figure struct {
	// Title, XLabel, and YLabel are optional text for the top of
	// the figure and the two axes.
	Title, XLabel, YLabel string

	bars []*barSet

	xticks    []float64
	xlabels   []string
	haveTicks bool
}

var _ barplot.Axes = (*Figure)(nil)

// New returns an empty Figure.
func New() *Figure {
	return new(Figure)
}

// barSet is one recorded Bar call.
type barSet struct {
	call              int
	x, height, bottom []float64
	labels            []string
	width             float64
	style             barStyle
}

type barStyle struct {
	fill      color.Color // nil for the palette default
	edge      color.Color
	lineWidth float64
	alpha     float64
	label     string
	zorder    float64
}

// Bar records a set of bars. It returns an error if the lengths of
// b's slices do not agree or b.Style contains an option Figure does not
// understand.
func (f *Figure) Bar(b barplot.Bar) error {
	n := len(b.X)
	if len(b.Height) != n {
		return fmt.Errorf("figure: shape mismatch: %d positions but %d heights", n, len(b.Height))
	}
	if len(b.Bottom) != n {
		return fmt.Errorf("figure: shape mismatch: %d positions but %d bottoms", n, len(b.Bottom))
	}
	if b.Labels != nil && len(b.Labels) != n {
		return fmt.Errorf("figure: shape mismatch: %d positions but %d labels", n, len(b.Labels))
	}
	width := b.Width
	if width == 0 {
		width = barplot.DefaultWidth
	} else if width < 0 {
		return fmt.Errorf("figure: negative bar width %g", width)
	}
	style, err := parseStyle(b.Style)
	if err != nil {
		return err
	}

	f.bars = append(f.bars, &barSet{
		call:   len(f.bars),
		x:      append([]float64(nil), b.X...),
		height: append([]float64(nil), b.Height...),
		bottom: append([]float64(nil), b.Bottom...),
		labels: append([]string(nil), b.Labels...),
		width:  width,
		style:  style,
	})
	return nil
}

// SetXTicks places the x axis ticks at pos. Explicit ticks take
// precedence over the category labels of categorical bars.
func (f *Figure) SetXTicks(pos []float64) error {
	f.xticks = append([]float64(nil), pos...)
	f.xlabels = nil
	f.haveTicks = true
	return nil
}

// SetXTickLabels labels the ticks given to SetXTicks. There must be
// one label per tick.
func (f *Figure) SetXTickLabels(labels []string) error {
	if !f.haveTicks {
		return fmt.Errorf("figure: tick labels set before ticks")
	}
	if len(labels) != len(f.xticks) {
		return fmt.Errorf("figure: %d tick labels for %d ticks", len(labels), len(f.xticks))
	}
	f.xlabels = append([]string(nil), labels...)
	return nil
}

func parseStyle(s barplot.Style) (barStyle, error) {
	st := barStyle{lineWidth: 1, alpha: 1}
	for key, v := range s {
		var err error
		switch key {
		case "color":
			st.fill, err = parseColor(v)
		case "edgecolor":
			st.edge, err = parseColor(v)
		case "linewidth":
			st.lineWidth, err = toFloat(v)
			if err == nil && st.lineWidth < 0 {
				err = fmt.Errorf("negative width %g", st.lineWidth)
			}
		case "alpha":
			st.alpha, err = toFloat(v)
			if err == nil && (st.alpha < 0 || st.alpha > 1) {
				err = fmt.Errorf("%g is not in [0, 1]", st.alpha)
			}
		case "label":
			st.label = fmt.Sprint(v)
		case "zorder":
			st.zorder, err = toFloat(v)
		default:
			return st, fmt.Errorf("figure: unknown bar option %q", key)
		}
		if err != nil {
			return st, fmt.Errorf("figure: bad %s: %v", key, err)
		}
	}
	return st, nil
}

func toFloat(v interface{}) (float64, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	}
	return 0, fmt.Errorf("%v (%T) is not a number", v, v)
}
