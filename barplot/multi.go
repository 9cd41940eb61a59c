// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package barplot

import "fmt"

// MultiOptions controls MultiBar.
//
// Gaps and widths are fractions of the distance between adjacent
// categories.
type MultiOptions struct {
	// IGap is the gap between groups of bars.
	IGap float64

	// BGap is the gap between adjacent bars in a group.
	BGap float64

	// IWidth, if non-zero, is the total width of a group of bars.
	// It overrides IGap with 1-IWidth.
	IWidth float64

	// Width, if non-zero, is the width of each bar. Otherwise the
	// width is computed from the gaps.
	Width float64

	// Style is passed through to Axes.Bar, broadcast across
	// series. It must not contain "width".
	Style Options

	// Scalar names Style options that are never broadcast.
	Scalar []string
}

// Layout returns the bar width and the offset between adjacent bars in
// a group of n bars.
func (o MultiOptions) Layout(n int) (width, step float64, err error) {
	if n <= 0 {
		return 0, 0, fmt.Errorf("barplot: no series to plot")
	}
	igap := o.IGap
	if o.IWidth != 0 {
		igap = 1 - o.IWidth
	}
	width = o.Width
	if width == 0 {
		gap := igap + float64(n-1)*o.BGap
		width = (1 - gap) / float64(n)
	}
	if width <= 0 {
		return 0, 0, fmt.Errorf("barplot: bar width %g is not positive", width)
	}
	return width, width + o.BGap, nil
}

// MultiBar draws the columns of ys as groups of side-by-side bars, one
// group per category in x.
//
// Category k is placed at k and series i of that category at
// k+i*(width+BGap). Once all series are drawn, MultiBar moves the x
// ticks to the center of each group and labels them with x.
func MultiBar(ax Axes, x []string, ys *Matrix, opts MultiOptions) error {
	if _, ok := opts.Style["width"]; ok {
		return fmt.Errorf("barplot: %q must be set in MultiOptions, not Style", "width")
	}

	n := ys.Cols()
	width, step, err := opts.Layout(n)
	if err != nil {
		return err
	}
	bc := opts.Style.Broadcast(opts.Scalar...)
	base := positions(len(x))

	for i := 0; i < n; i++ {
		style, err := bc.At(i)
		if err != nil {
			return err
		}
		xs := make([]float64, len(base))
		for k, p := range base {
			xs[k] = p + float64(i)*step
		}
		err = ax.Bar(Bar{
			X:      xs,
			Height: append([]float64(nil), ys.Col(i)...),
			Bottom: make([]float64, len(xs)),
			Width:  width,
			Style:  style,
		})
		if err != nil {
			return err
		}
	}

	// Center the ticks between the first and last bar of each group.
	mid := float64(n-1) * step / 2
	ticks := make([]float64, len(base))
	for k, p := range base {
		ticks[k] = p + mid
	}
	if err := ax.SetXTicks(ticks); err != nil {
		return err
	}
	return ax.SetXTickLabels(append([]string(nil), x...))
}
