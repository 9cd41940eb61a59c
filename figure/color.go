// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figure

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/palette"
	"golang.org/x/image/colornames"
)

// parseColor converts a style value to a color.
func parseColor(v interface{}) (color.Color, error) {
	switch v := v.(type) {
	case color.Color:
		return v, nil
	case string:
		return parseColorString(v)
	}
	return nil, fmt.Errorf("%v (%T) is not a color", v, v)
}

func parseColorString(s string) (color.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "none" {
		return color.Transparent, nil
	}
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	if !strings.HasPrefix(s, "#") {
		return nil, fmt.Errorf("unknown color %q", s)
	}

	hex := s[1:]
	if len(hex) == 3 {
		// Expand #rgb to #rrggbb.
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return nil, fmt.Errorf("malformed color %q", s)
	}
	x, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("malformed color %q", s)
	}
	return color.NRGBA{R: uint8(x >> 24), G: uint8(x >> 16), B: uint8(x >> 8), A: uint8(x)}, nil
}

// withAlpha scales c's opacity by alpha.
func withAlpha(c color.Color, alpha float64) color.Color {
	if alpha == 1 {
		return c
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(float64(n.A)*alpha + 0.5)
	return n
}

// defaultFill returns the fill color for Bar call i of n.
func defaultFill(i, n int) color.Color {
	if n <= 1 {
		return palette.Viridis.Map(0)
	}
	// Stay away from the pale yellow end of the palette.
	return palette.Viridis.Map(0.85 * float64(i) / float64(n-1))
}

// cssPaint returns a CSS fragment for setting CSS property prop to
// color c.
func cssPaint(prop string, c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 0 {
		return prop + ":none"
	}
	css := fmt.Sprintf("%s:#%02x%02x%02x", prop, n.R, n.G, n.B)
	if n.A != 0xff {
		// SVG 1.1 has no rgba, so opacity is a separate
		// property.
		css += fmt.Sprintf(";%s-opacity:%.3g", prop, float64(n.A)/0xff)
	}
	return css
}
