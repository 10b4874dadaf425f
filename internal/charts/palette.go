// Trackviz - Request Tracking Analytics Charts
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trackviz

package charts

import (
	"fmt"
	"math"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// World map colours.
const (
	PaletteLowColor      = "#EFEFFF"
	PaletteHighColor     = "#02386F"
	DefaultFillColor     = "#F5F5F5"
	BorderColor          = "#DEDEDE"
	HighlightBorderColor = "#B7B7B7"
	HighlightBorderWidth = 2
)

// Palette linearly interpolates between two colours over a numeric domain.
type Palette struct {
	Min  float64
	Max  float64
	Low  drawing.Color
	High drawing.Color
}

// NewPalette builds a palette from CSS colour strings.
func NewPalette(lo, hi float64, low, high string) Palette {
	return Palette{
		Min:  lo,
		Max:  hi,
		Low:  drawing.ParseColor(low),
		High: drawing.ParseColor(high),
	}
}

// Color returns the interpolated colour for v. A zero-width domain yields
// the low colour.
func (p Palette) Color(v float64) drawing.Color {
	t := 0.0
	if span := p.Max - p.Min; span != 0 {
		t = (v - p.Min) / span
	}
	return drawing.Color{
		R: lerpChannel(p.Low.R, p.High.R, t),
		G: lerpChannel(p.Low.G, p.High.G, t),
		B: lerpChannel(p.Low.B, p.High.B, t),
		A: 255,
	}
}

// Hex returns Color(v) as "#RRGGBB".
func (p Palette) Hex(v float64) string {
	return HexColor(p.Color(v))
}

// HexColor formats c as "#RRGGBB", dropping alpha.
func HexColor(c drawing.Color) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// ParseColor parses a CSS colour such as "#RRGGBB" or "rgb(r,g,b)".
func ParseColor(s string) drawing.Color {
	return drawing.ParseColor(s)
}

func lerpChannel(a, b uint8, t float64) uint8 {
	v := math.Round(float64(a) + (float64(b)-float64(a))*t)
	return uint8(math.Max(0, math.Min(255, v)))
}
