// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figure

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"github.com/aclements/go-moremath/scale"
)

// metrics describes the text measurements of an output format.
type metrics struct {
	lineHeight float64
	textWidth  func(s string) float64
}

const (
	pad       = 10 // Space around the figure and between elements.
	tickLen   = 5
	swatch    = 12 // Size of a legend color swatch.
	minTickPx = 80 // Minimum space per x tick on a numeric axis.
)

// frame is a Figure laid out on a canvas.
type frame struct {
	// left, top, width, and height give the plot area in pixels.
	left, top, width, height float64

	xs, ys scale.Linear

	xticks, yticks   []float64
	xlabels, ylabels []string

	// bars is the Figure's bars in paint order, and fills gives
	// the fill of each bar set, indexed by Bar call.
	bars  []*barSet
	fills []color.Color

	legend []legendEntry

	// legendX is the left edge of the legend.
	legendX float64
}

type legendEntry struct {
	label      string
	fill, edge color.Color
}

func isFinite(x float64) bool {
	return !(math.IsNaN(x) || math.IsInf(x, 0))
}

// mapX maps data coordinate x to a pixel column.
func (fr *frame) mapX(x float64) float64 {
	return fr.left + fr.xs.Map(x)*fr.width
}

// mapY maps data coordinate y to a pixel row.
func (fr *frame) mapY(y float64) float64 {
	return fr.top + (1-fr.ys.Map(y))*fr.height
}

func (f *Figure) layout(w, h int, m metrics) (*frame, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("figure: bad size %dx%d", w, h)
	}
	fr := &frame{}

	// Compute data bounds.
	xmin, xmax := math.Inf(1), math.Inf(-1)
	ymin, ymax := 0.0, 0.0
	for _, b := range f.bars {
		for i, x := range b.x {
			y0, y1 := b.bottom[i], b.bottom[i]+b.height[i]
			if !isFinite(x) || !isFinite(y0) || !isFinite(y1) {
				continue
			}
			xmin = math.Min(xmin, x-b.width/2)
			xmax = math.Max(xmax, x+b.width/2)
			ymin = math.Min(ymin, math.Min(y0, y1))
			ymax = math.Max(ymax, math.Max(y0, y1))
		}
	}
	if f.haveTicks {
		for _, x := range f.xticks {
			if isFinite(x) {
				xmin, xmax = math.Min(xmin, x), math.Max(xmax, x)
			}
		}
	}
	if xmin > xmax {
		xmin, xmax = -0.5, 0.5
	} else if xmin == xmax {
		xmin, xmax = xmin-0.5, xmax+0.5
	}
	if ymin == ymax {
		ymax = ymin + 1
	}
	// Add a 5% margin, except at 0 so bars sit on the axis.
	xpad, ypad := 0.05*(xmax-xmin), 0.05*(ymax-ymin)
	xmin, xmax = xmin-xpad, xmax+xpad
	if ymin < 0 {
		ymin -= ypad
	}
	if ymax > 0 {
		ymax += ypad
	}
	fr.xs = scale.Linear{Min: xmin, Max: xmax}
	fr.ys = scale.Linear{Min: ymin, Max: ymax}

	// Legend.
	legendWidth := 0.0
	for _, b := range f.bars {
		if b.style.label == "" {
			continue
		}
		fr.legend = append(fr.legend, legendEntry{b.style.label, nil, b.style.edge})
		legendWidth = math.Max(legendWidth, swatch+pad/2+m.textWidth(b.style.label))
	}

	// Vertical layout. The y ticks depend only on the plot height.
	top := float64(pad)
	if f.Title != "" {
		top += m.lineHeight * 1.5
	}
	bottom := pad + tickLen + m.lineHeight*1.3
	if f.XLabel != "" {
		bottom += m.lineHeight * 1.3
	}
	fr.top = top
	fr.height = math.Max(float64(h)-top-bottom, 1)

	maxY := int(fr.height / (m.lineHeight * 2.5))
	if maxY < 2 {
		maxY = 2
	}
	fr.yticks, _ = fr.ys.Ticks(scale.TickOptions{Max: maxY})
	fr.ylabels = formatTicks(fr.yticks)

	// Horizontal layout.
	left := float64(pad) + tickLen + pad/2
	labelWidth := 0.0
	for _, l := range fr.ylabels {
		labelWidth = math.Max(labelWidth, m.textWidth(l))
	}
	left += labelWidth
	if f.YLabel != "" {
		left += m.lineHeight * 1.5
	}
	right := float64(pad)
	if legendWidth > 0 {
		right += legendWidth + pad
	}
	fr.left = left
	fr.width = math.Max(float64(w)-left-right, 1)
	fr.legendX = fr.left + fr.width + pad

	fr.xticks, fr.xlabels = f.xTicks(fr)

	// Paint order and default colors.
	fr.bars = append([]*barSet(nil), f.bars...)
	sort.SliceStable(fr.bars, func(i, j int) bool {
		return fr.bars[i].style.zorder < fr.bars[j].style.zorder
	})
	fr.fills = make([]color.Color, len(f.bars))
	for i, b := range f.bars {
		fill := b.style.fill
		if fill == nil {
			fill = defaultFill(i, len(f.bars))
		}
		fr.fills[i] = withAlpha(fill, b.style.alpha)
	}
	j := 0
	for _, b := range f.bars {
		if b.style.label != "" {
			fr.legend[j].fill = fr.fills[b.call]
			j++
		}
	}

	return fr, nil
}

// xTicks returns the x tick positions and labels. Explicit ticks come
// first, then category labels from categorical bars, and finally
// numeric ticks.
func (f *Figure) xTicks(fr *frame) ([]float64, []string) {
	if f.haveTicks {
		labels := f.xlabels
		if labels == nil {
			labels = formatTicks(f.xticks)
		}
		return f.xticks, labels
	}

	cats := make(map[float64]string)
	for _, b := range f.bars {
		for i, l := range b.labels {
			if _, ok := cats[b.x[i]]; !ok {
				cats[b.x[i]] = l
			}
		}
	}
	if len(cats) > 0 {
		pos := make([]float64, 0, len(cats))
		for x := range cats {
			pos = append(pos, x)
		}
		sort.Float64s(pos)
		labels := make([]string, len(pos))
		for i, x := range pos {
			labels[i] = cats[x]
		}
		return pos, labels
	}

	maxX := int(fr.width / minTickPx)
	if maxX < 2 {
		maxX = 2
	}
	major, _ := fr.xs.Ticks(scale.TickOptions{Max: maxX})
	return major, formatTicks(major)
}

func formatTicks(ticks []float64) []string {
	labels := make([]string, len(ticks))
	for i, t := range ticks {
		labels[i] = fmt.Sprintf("%.6g", t)
	}
	return labels
}
