// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figure

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// supersample is the factor shapes are rendered at before being scaled
// down to the output size.
const supersample = 2

var rasterFace = basicfont.Face7x13

var rasterMetrics = metrics{
	lineHeight: float64(rasterFace.Height),
	textWidth: func(s string) float64 {
		return float64(font.MeasureString(rasterFace, s).Ceil())
	},
}

var (
	colorBackground = color.Gray{0xee}
	colorGrid       = color.White
	colorTick       = color.Gray{0x88}
	colorTickLabel  = color.Gray{0x66}
)

// painter fills rectangles in a supersampled image.
type painter struct {
	img *image.RGBA
	r   *vector.Rasterizer
}

func newPainter(w, h int) *painter {
	img := image.NewRGBA(image.Rect(0, 0, w*supersample, h*supersample))
	return &painter{img, vector.NewRasterizer(w*supersample, h*supersample)}
}

// fill fills the rectangle with corners (x0, y0) and (x1, y1), given in
// output pixels.
func (p *painter) fill(x0, y0, x1, y1 float64, c color.Color) {
	b := p.img.Bounds()
	clamp := func(v float64, max int) float32 {
		return float32(math.Max(0, math.Min(v*supersample, float64(max))))
	}
	fx0, fx1 := clamp(math.Min(x0, x1), b.Dx()), clamp(math.Max(x0, x1), b.Dx())
	fy0, fy1 := clamp(math.Min(y0, y1), b.Dy()), clamp(math.Max(y0, y1), b.Dy())
	if fx0 == fx1 || fy0 == fy1 {
		return
	}
	p.r.Reset(b.Dx(), b.Dy())
	p.r.DrawOp = draw.Over
	p.r.MoveTo(fx0, fy0)
	p.r.LineTo(fx1, fy0)
	p.r.LineTo(fx1, fy1)
	p.r.LineTo(fx0, fy1)
	p.r.ClosePath()
	p.r.Draw(p.img, b, image.NewUniform(c), image.Point{})
}

// outline strokes the inside of a rectangle with width lw.
func (p *painter) outline(x0, y0, x1, y1, lw float64, c color.Color) {
	x0, x1 = math.Min(x0, x1), math.Max(x0, x1)
	y0, y1 = math.Min(y0, y1), math.Max(y0, y1)
	lw = math.Min(lw, math.Min(x1-x0, y1-y0)/2)
	if lw <= 0 {
		return
	}
	p.fill(x0, y0, x1, y0+lw, c)
	p.fill(x0, y1-lw, x1, y1, c)
	p.fill(x0, y0+lw, x0+lw, y1-lw, c)
	p.fill(x1-lw, y0+lw, x1, y1-lw, c)
}

// WritePNG renders f as a width by height pixel PNG image to w.
func (f *Figure) WritePNG(w io.Writer, width, height int) error {
	fr, err := f.layout(width, height, rasterMetrics)
	if err != nil {
		return err
	}

	p := newPainter(width, height)
	draw.Draw(p.img, p.img.Bounds(), image.White, image.Point{}, draw.Src)
	p.fill(fr.left, fr.top, fr.left+fr.width, fr.top+fr.height, colorBackground)
	for _, y := range fr.yticks {
		py := fr.mapY(y)
		p.fill(fr.left, py-1, fr.left+fr.width, py+1, colorGrid)
	}

	for _, b := range fr.bars {
		for i, x := range b.x {
			y0, y1 := b.bottom[i], b.bottom[i]+b.height[i]
			if !isFinite(x) || !isFinite(y0) || !isFinite(y1) {
				continue
			}
			px0, px1 := fr.mapX(x-b.width/2), fr.mapX(x+b.width/2)
			py0, py1 := fr.mapY(y0), fr.mapY(y1)
			p.fill(px0, py0, px1, py1, fr.fills[b.call])
			if b.style.edge != nil {
				p.outline(px0, py0, px1, py1, b.style.lineWidth, withAlpha(b.style.edge, b.style.alpha))
			}
		}
	}

	base := fr.top + fr.height
	for _, x := range fr.xticks {
		px := fr.mapX(x)
		p.fill(px-0.5, base, px+0.5, base+tickLen, colorTick)
	}
	for _, y := range fr.yticks {
		py := fr.mapY(y)
		p.fill(fr.left-tickLen, py-0.5, fr.left, py+0.5, colorTick)
	}
	for i, e := range fr.legend {
		y := fr.top + float64(i)*rasterMetrics.lineHeight*1.5
		p.fill(fr.legendX, y, fr.legendX+swatch, y+swatch, e.fill)
		if e.edge != nil {
			p.outline(fr.legendX, y, fr.legendX+swatch, y+swatch, 1, e.edge)
		}
	}

	// Scale down, then draw text at full resolution.
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.BiLinear.Scale(img, img.Bounds(), p.img, p.img.Bounds(), draw.Src, nil)

	t := &textDrawer{img: img}
	for i, x := range fr.xticks {
		t.draw(fr.xlabels[i], fr.mapX(x), base+tickLen+2, alignCenter, alignTop, colorTickLabel)
	}
	for i, y := range fr.yticks {
		t.draw(fr.ylabels[i], fr.left-tickLen-pad/2, fr.mapY(y), alignEnd, alignMiddle, colorTickLabel)
	}
	mid := fr.left + fr.width/2
	if f.Title != "" {
		t.draw(f.Title, mid, pad, alignCenter, alignTop, color.Black)
	}
	if f.XLabel != "" {
		t.draw(f.XLabel, mid, float64(height-pad), alignCenter, alignBottom, color.Black)
	}
	if f.YLabel != "" {
		// basicfont can't be rotated, so the y label goes
		// above the axis.
		t.draw(f.YLabel, pad, fr.top-2, alignStart, alignBottom, color.Black)
	}
	for i, e := range fr.legend {
		y := fr.top + float64(i)*rasterMetrics.lineHeight*1.5
		t.draw(e.label, fr.legendX+swatch+pad/2, y+swatch/2, alignStart, alignMiddle, color.Black)
	}

	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("figure: %v", err)
	}
	return nil
}

type align int

const (
	alignStart align = iota
	alignCenter
	alignEnd
	alignTop
	alignMiddle
	alignBottom
)

type textDrawer struct {
	img *image.RGBA
}

// draw draws s anchored at (x, y) according to halign and valign.
func (t *textDrawer) draw(s string, x, y float64, halign, valign align, c color.Color) {
	d := &font.Drawer{Dst: t.img, Src: image.NewUniform(c), Face: rasterFace}
	w := float64(d.MeasureString(s).Ceil())
	switch halign {
	case alignCenter:
		x -= w / 2
	case alignEnd:
		x -= w
	}
	m := rasterFace.Metrics()
	ascent, descent := float64(m.Ascent.Ceil()), float64(m.Descent.Ceil())
	switch valign {
	case alignTop:
		y += ascent
	case alignMiddle:
		y += (ascent - descent) / 2
	case alignBottom:
		y -= descent
	}
	d.Dot = fixed.P(round(x), round(y))
	d.DrawString(s)
}
