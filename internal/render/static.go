// Trackviz - Request Tracking Analytics Charts
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trackviz

package render

import (
	"fmt"
	"html"
	"io"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/tomtom215/trackviz/internal/charts"
)

// Static chart styling.
const (
	BarColor        = "#FFA500"
	AreaColor       = "#4682B4"
	AxisColor       = "#000000"
	BackgroundColor = "#FFFFFF"

	axisFontSize    = 8.0
	tickSize        = 6
	tickPadding     = 3
	yLabelRotation  = 270.0
	yLabelOffset    = 6
	textBaselineGap = 0.71
)

// staticCanvas wraps a go-chart renderer with the plot origin and the text
// escaping the output format needs.
type staticCanvas struct {
	r      chart.Renderer
	ox, oy float64
	escape func(string) string
}

func newStaticCanvas(format Format, c charts.Canvas) (*staticCanvas, error) {
	var provider chart.RendererProvider
	escape := func(s string) string { return s }
	switch format {
	case FormatSVG:
		provider = chart.SVG
		escape = html.EscapeString
	case FormatPNG:
		provider = chart.PNG
	default:
		return nil, fmt.Errorf("%w: %s is not a static format", ErrUnsupportedFormat, format)
	}

	r, err := provider(int(c.Width), int(c.Height))
	if err != nil {
		return nil, fmt.Errorf("create %s renderer: %w", format, err)
	}
	font, err := chart.GetDefaultFont()
	if err != nil {
		return nil, fmt.Errorf("load default font: %w", err)
	}
	r.SetFont(font)

	sc := &staticCanvas{r: r, ox: c.Margin.Left, oy: c.Margin.Top, escape: escape}
	sc.fillRect(-c.Margin.Left, -c.Margin.Top, c.Width, c.Height, drawing.ParseColor(BackgroundColor))
	return sc, nil
}

func (s *staticCanvas) px(x, y float64) (int, int) {
	return int(math.Round(s.ox + x)), int(math.Round(s.oy + y))
}

func (s *staticCanvas) fillRect(x, y, w, h float64, color drawing.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	s.r.ResetStyle()
	s.r.SetFillColor(color)
	s.r.SetStrokeWidth(0)
	x0, y0 := s.px(x, y)
	x1, y1 := s.px(x+w, y+h)
	s.r.MoveTo(x0, y0)
	s.r.LineTo(x1, y0)
	s.r.LineTo(x1, y1)
	s.r.LineTo(x0, y1)
	s.r.Close()
	s.r.Fill()
}

func (s *staticCanvas) line(x0, y0, x1, y1 float64) {
	s.r.ResetStyle()
	s.r.SetStrokeColor(drawing.ParseColor(AxisColor))
	s.r.SetStrokeWidth(1)
	ax, ay := s.px(x0, y0)
	bx, by := s.px(x1, y1)
	s.r.MoveTo(ax, ay)
	s.r.LineTo(bx, by)
	s.r.Stroke()
}

type textAnchor int

const (
	anchorStart textAnchor = iota
	anchorMiddle
	anchorEnd
)

func (s *staticCanvas) text(body string, x, y float64, anchor textAnchor) {
	if body == "" {
		return
	}
	s.r.ResetStyle()
	s.r.SetFontColor(drawing.ParseColor(AxisColor))
	s.r.SetFontSize(axisFontSize)
	width := float64(s.r.MeasureText(body).Width())
	switch anchor {
	case anchorMiddle:
		x -= width / 2
	case anchorEnd:
		x -= width
	}
	px, py := s.px(x, y)
	s.r.Text(s.escape(body), px, py)
}

func (s *staticCanvas) fontHeight() float64 {
	s.r.SetFontSize(axisFontSize)
	return drawing.PointsToPixels(s.r.GetDPI(), axisFontSize)
}

// bottomAxis draws the domain line along y = plotHeight and one tick per
// entry, labels centred below the tick.
func (s *staticCanvas) bottomAxis(width, height float64, ticks []charts.Tick) {
	s.line(0, height, width, height)
	baseline := height + tickSize + tickPadding + s.fontHeight()*textBaselineGap
	for _, t := range ticks {
		s.line(t.Position, height, t.Position, height+tickSize)
		s.text(t.Label, t.Position, baseline, anchorMiddle)
	}
}

// leftAxis draws the domain line along x = 0 with labels right-aligned
// against the ticks.
func (s *staticCanvas) leftAxis(height float64, ticks []charts.Tick) {
	s.line(0, 0, 0, height)
	half := s.fontHeight() / 3
	for _, t := range ticks {
		s.line(-tickSize, t.Position, 0, t.Position)
		s.text(t.Label, -(tickSize + tickPadding), t.Position+half, anchorEnd)
	}
}

// axisTitle draws a rotated title running up the left axis, ending at the
// top of the plot.
func (s *staticCanvas) axisTitle(title string) {
	if title == "" {
		return
	}
	s.r.ResetStyle()
	s.r.SetFontColor(drawing.ParseColor(AxisColor))
	s.r.SetFontSize(axisFontSize)
	width := float64(s.r.MeasureText(title).Width())
	x, y := s.px(yLabelOffset+s.fontHeight()*textBaselineGap, width)
	s.r.SetTextRotation(chart.DegreesToRadians(yLabelRotation))
	s.r.Text(s.escape(title), x, y)
	s.r.ClearTextRotation()
}

func (s *staticCanvas) save(w io.Writer) error {
	return s.r.Save(w)
}

// DrawDeviceBarChart draws a laid-out device bar chart as SVG or PNG.
func DrawDeviceBarChart(w io.Writer, format Format, c charts.DeviceBarChart) error {
	sc, err := newStaticCanvas(format, c.Canvas)
	if err != nil {
		return err
	}

	barColor := drawing.ParseColor(BarColor)
	for _, b := range c.Bars {
		sc.fillRect(b.X, b.Y, b.Width, b.Height, barColor)
	}

	sc.bottomAxis(c.Canvas.PlotWidth(), c.Canvas.PlotHeight(), c.XTicks)
	sc.leftAxis(c.Canvas.PlotHeight(), c.YTicks)
	return sc.save(w)
}

// DrawRequestsAreaChart draws a laid-out requests area chart as SVG or PNG.
func DrawRequestsAreaChart(w io.Writer, format Format, c charts.RequestsAreaChart) error {
	sc, err := newStaticCanvas(format, c.Canvas)
	if err != nil {
		return err
	}

	if outline := c.Outline(); len(outline) > 0 {
		sc.r.ResetStyle()
		sc.r.SetFillColor(drawing.ParseColor(AreaColor))
		sc.r.SetStrokeWidth(0)
		x, y := sc.px(outline[0].X, outline[0].Y)
		sc.r.MoveTo(x, y)
		for _, p := range outline[1:] {
			x, y = sc.px(p.X, p.Y)
			sc.r.LineTo(x, y)
		}
		sc.r.Close()
		sc.r.Fill()
	}

	sc.bottomAxis(c.Canvas.PlotWidth(), c.Canvas.PlotHeight(), c.XTicks)
	sc.leftAxis(c.Canvas.PlotHeight(), c.YTicks)
	sc.axisTitle(c.YLabel)
	return sc.save(w)
}
