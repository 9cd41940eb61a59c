// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figure

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"unicode/utf8"

	"github.com/ajstarks/svgo"
)

// fontSize is the SVG font size in pixels.
const fontSize = 14

var svgMetrics = metrics{
	lineHeight: fontSize,
	textWidth: func(s string) float64 {
		// Roughly the average advance of a sans-serif font.
		return 0.6 * fontSize * float64(utf8.RuneCountInString(s))
	},
}

// errWriter records the first error from w. svgo ignores write errors.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

func round(x float64) int {
	return int(math.Floor(x + 0.5))
}

// WriteSVG renders f as a width by height pixel SVG image to w.
func (f *Figure) WriteSVG(w io.Writer, width, height int) error {
	fr, err := f.layout(width, height, svgMetrics)
	if err != nil {
		return err
	}

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(width, height, fmt.Sprintf(`font-size="%dpx" font-family="Roboto,&quot;Helvetica Neue&quot;,Helvetica,Arial,sans-serif"`, fontSize))
	canvas.Rect(0, 0, width, height, "fill:#fff")

	// Plot area and horizontal grid lines.
	canvas.Rect(round(fr.left), round(fr.top), round(fr.width), round(fr.height), "fill:#eee")
	var grid bytes.Buffer
	for _, y := range fr.yticks {
		fmt.Fprintf(&grid, "M%.6g %.6gh%.6g", fr.left, math.Floor(fr.mapY(y)+0.5), fr.width)
	}
	if grid.Len() > 0 {
		canvas.Path(grid.String(), "stroke:#fff;stroke-width:2")
	}

	// Bars, in paint order.
	for _, b := range fr.bars {
		style := cssPaint("fill", fr.fills[b.call])
		if b.style.edge != nil {
			style += ";" + cssPaint("stroke", withAlpha(b.style.edge, b.style.alpha))
			style += fmt.Sprintf(";stroke-width:%.6g", b.style.lineWidth)
		}
		canvas.Gstyle(style)
		for i, x := range b.x {
			y0, y1 := b.bottom[i], b.bottom[i]+b.height[i]
			if !isFinite(x) || !isFinite(y0) || !isFinite(y1) {
				continue
			}
			px0, px1 := fr.mapX(x-b.width/2), fr.mapX(x+b.width/2)
			py0, py1 := fr.mapY(y0), fr.mapY(y1)
			canvas.Path(fmt.Sprintf("M%.6g %.6gH%.6gV%.6gH%.6gZ", px0, py0, px1, py1, px0))
		}
		canvas.Gend()
	}

	// Ticks and tick labels.
	var ticks bytes.Buffer
	base := fr.top + fr.height
	for i, x := range fr.xticks {
		px := fr.mapX(x)
		fmt.Fprintf(&ticks, "M%.6g %.6gv%d", px, base, tickLen)
		canvas.Text(round(px), round(base+tickLen), fr.xlabels[i], `text-anchor="middle" dy="1em" fill="#666"`)
	}
	for i, y := range fr.yticks {
		py := fr.mapY(y)
		fmt.Fprintf(&ticks, "M%.6g %.6gh%d", fr.left, py, -tickLen)
		canvas.Text(round(fr.left-tickLen-pad/2), round(py), fr.ylabels[i], `text-anchor="end" dy=".3em" fill="#666"`)
	}
	if ticks.Len() > 0 {
		canvas.Path(ticks.String(), "stroke:#888;stroke-width:1")
	}

	// Title and axis labels.
	mid := round(fr.left + fr.width/2)
	if f.Title != "" {
		canvas.Text(mid, pad, f.Title, `text-anchor="middle" dy="1em" font-size="120%"`)
	}
	if f.XLabel != "" {
		canvas.Text(mid, height-pad, f.XLabel, `text-anchor="middle"`)
	}
	if f.YLabel != "" {
		canvas.Gtransform(fmt.Sprintf("translate(%d,%d) rotate(-90)", pad, round(fr.top+fr.height/2)))
		canvas.Text(0, 0, f.YLabel, `text-anchor="middle" dy="1em"`)
		canvas.Gend()
	}

	// Legend.
	for i, e := range fr.legend {
		y := fr.top + float64(i)*fontSize*1.5
		style := cssPaint("fill", e.fill)
		if e.edge != nil {
			style += ";" + cssPaint("stroke", e.edge)
		}
		canvas.Rect(round(fr.legendX), round(y), swatch, swatch, style)
		canvas.Text(round(fr.legendX+swatch+pad/2), round(y+swatch/2), e.label, `dy=".35em"`)
	}

	canvas.End()
	return ew.err
}
