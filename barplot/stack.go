// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package barplot

import "fmt"

// StackOptions controls StackBar.
type StackOptions struct {
	// Order is the stacking order of the series.
	Order Order

	// Bottom is the base of the stack. The zero value stacks on 0.
	Bottom Bottom

	// Width is the bar width. If 0, it defaults to DefaultWidth.
	Width float64

	// Style is passed through to Axes.Bar, broadcast across
	// series. It must not contain "width" or "bottom".
	Style Options

	// Scalar names Style options that are never broadcast.
	Scalar []string
}

// Bottom is the base of a bar stack.
type Bottom struct {
	v    float64
	rows []float64
	m    *Matrix
}

// BottomAt returns a Bottom that starts every category's stack at v.
func BottomAt(v float64) Bottom {
	return Bottom{v: v}
}

// BottomRows returns a Bottom that starts the stack of category i at
// rows[i].
func BottomRows(rows []float64) Bottom {
	return Bottom{rows: rows}
}

// BottomMatrix returns a Bottom that gives every bar its own base:
// series c of category r is drawn from m.At(r, c). Series are not
// stacked on each other.
func BottomMatrix(m *Matrix) Bottom {
	return Bottom{m: m}
}

// start returns the initial running total for an nrows by ncols
// matrix.
func (b Bottom) start(nrows, ncols int) ([]float64, error) {
	run := make([]float64, nrows)
	switch {
	case b.m != nil:
		if b.m.Rows() != nrows || b.m.Cols() != ncols {
			return nil, fmt.Errorf("barplot: bottom is %dx%d, data is %dx%d", b.m.Rows(), b.m.Cols(), nrows, ncols)
		}
	case b.rows != nil:
		if len(b.rows) != nrows {
			return nil, fmt.Errorf("barplot: bottom has %d values for %d categories", len(b.rows), nrows)
		}
		copy(run, b.rows)
	default:
		for i := range run {
			run[i] = b.v
		}
	}
	return run, nil
}

// StackBar draws each column of ys as a segment of a stacked bar at
// each category in x.
//
// Series are drawn in the sequence given by opts.Order, each starting
// at the running total of the series drawn before it. By default,
// series 0 ends up at the top of each stack.
func StackBar(ax Axes, x []string, ys *Matrix, opts StackOptions) error {
	for _, name := range []string{"width", "bottom"} {
		if _, ok := opts.Style[name]; ok {
			return fmt.Errorf("barplot: %q must be set in StackOptions, not Style", name)
		}
	}

	n := ys.Cols()
	order, err := opts.Order.Resolve(n)
	if err != nil {
		return err
	}
	zs := opts.Order.zorders(n)
	bc := opts.Style.Broadcast(opts.Scalar...)

	width := opts.Width
	if width == 0 {
		width = DefaultWidth
	}

	run, err := opts.Bottom.start(ys.Rows(), n)
	if err != nil {
		return err
	}

	for _, i := range order {
		style, err := bc.At(i)
		if err != nil {
			return err
		}
		if zs != nil {
			style["zorder"] = zs[i]
		}

		col := ys.Col(i)
		var bottom []float64
		if opts.Bottom.m != nil {
			bottom = append([]float64(nil), opts.Bottom.m.Col(i)...)
		} else {
			bottom = append([]float64(nil), run...)
		}

		err = ax.Bar(Bar{
			X:      positions(len(x)),
			Labels: append([]string(nil), x...),
			Height: append([]float64(nil), col...),
			Bottom: bottom,
			Width:  width,
			Style:  style,
		})
		if err != nil {
			return err
		}

		if opts.Bottom.m == nil {
			for r, v := range col {
				run[r] += v
			}
		}
	}
	return nil
}
