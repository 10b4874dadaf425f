// Trackviz - Request Tracking Analytics Charts
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trackviz

package charts

import (
	"sort"
	"time"

	"github.com/tomtom215/trackviz/internal/models"
	"github.com/tomtom215/trackviz/internal/scale"
)

// AreaPoint is one vertex of the area's top edge, with its baseline.
type AreaPoint struct {
	Date     time.Time `json:"date"`
	Requests int64     `json:"requests"`
	X        float64   `json:"x"`
	Y0       float64   `json:"y0"`
	Y1       float64   `json:"y1"`
}

// RequestsAreaChart is the laid-out requests-over-time area chart.
type RequestsAreaChart struct {
	Canvas      Canvas      `json:"canvas"`
	Points      []AreaPoint `json:"points"`
	XTicks      []Tick      `json:"x_ticks"`
	YTicks      []Tick      `json:"y_ticks"`
	YLabel      string      `json:"y_label"`
	Start       *time.Time  `json:"start,omitempty"`
	End         *time.Time  `json:"end,omitempty"`
	MaxRequests int64       `json:"max_requests"`
	Skipped     int         `json:"skipped"`

	X scale.Time   `json:"-"`
	Y scale.Linear `json:"-"`
}

// BuildRequestsAreaChart lays out the area under a request series. Points
// are drawn in date order whatever order the payload used; points sharing a
// date keep their payload order.
func BuildRequestsAreaChart(series models.RequestSeries) RequestsAreaChart {
	canvas := RequestsCanvas()
	width, height := canvas.PlotWidth(), canvas.PlotHeight()

	points := make([]models.RequestPoint, len(series.Points))
	copy(points, series.Points)
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})

	dates := make([]time.Time, 0, len(points))
	var maxRequests int64
	for _, p := range points {
		dates = append(dates, p.Date)
		if p.Requests > maxRequests {
			maxRequests = p.Requests
		}
	}

	x := scale.NewTimeExtent(dates, 0, width)
	y := scale.NewLinear(0, float64(maxRequests), height, 0)

	chart := RequestsAreaChart{
		Canvas:      canvas,
		Points:      make([]AreaPoint, 0, len(points)),
		YLabel:      requestsAxisLabel,
		MaxRequests: maxRequests,
		Skipped:     len(series.Skipped),
		X:           x,
		Y:           y,
	}
	if !x.Empty() {
		start, end := x.Domain()
		chart.Start, chart.End = &start, &end
	}

	for _, p := range points {
		chart.Points = append(chart.Points, AreaPoint{
			Date:     p.Date,
			Requests: p.Requests,
			X:        x.Scale(p.Date),
			Y0:       height,
			Y1:       y.Scale(float64(p.Requests)),
		})
	}

	for _, tick := range x.Ticks() {
		chart.XTicks = append(chart.XTicks, Tick{
			Value:    tick.Value,
			Position: x.ScaleUnix(tick.Value),
			Label:    tick.Label,
		})
	}
	for _, tick := range y.Ticks() {
		chart.YTicks = append(chart.YTicks, Tick{
			Value:    tick.Value,
			Position: y.Scale(tick.Value),
			Label:    scale.IntegerFormat(tick.Value),
		})
	}

	return chart
}

// Outline returns the closed area polygon: the top edge left to right, then
// the baseline right to left. It is empty when there are no points.
func (c RequestsAreaChart) Outline() []Point {
	if len(c.Points) == 0 {
		return nil
	}
	outline := make([]Point, 0, 2*len(c.Points))
	for _, p := range c.Points {
		outline = append(outline, Point{X: p.X, Y: p.Y1})
	}
	for i := len(c.Points) - 1; i >= 0; i-- {
		outline = append(outline, Point{X: c.Points[i].X, Y: c.Points[i].Y0})
	}
	return outline
}
