// Trackviz - Request Tracking Analytics Charts
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trackviz

package charts

import (
	"github.com/tomtom215/trackviz/internal/models"
	"github.com/tomtom215/trackviz/internal/scale"
)

// Bar is one device bar. X and Y are the top-left corner in plot
// coordinates; the bar extends Height pixels down to the plot floor.
type Bar struct {
	DeviceType string  `json:"device_type"`
	Label      string  `json:"label"`
	Count      int64   `json:"count"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	Tooltip    string  `json:"tooltip"`
}

// DeviceBarChart is the laid-out requests-per-device bar chart.
type DeviceBarChart struct {
	Canvas   Canvas `json:"canvas"`
	Bars     []Bar  `json:"bars"`
	XTicks   []Tick `json:"x_ticks"`
	YTicks   []Tick `json:"y_ticks"`
	MaxCount int64  `json:"max_count"`

	X scale.Band   `json:"-"`
	Y scale.Linear `json:"-"`
}

// BuildDeviceBarChart lays out one bar per distinct device type, in order of
// first appearance. When a device type repeats, its last record wins the band.
func BuildDeviceBarChart(stats []models.DeviceStat) DeviceBarChart {
	canvas := DevicesCanvas()
	width, height := canvas.PlotWidth(), canvas.PlotHeight()

	categories := make([]string, 0, len(stats))
	latest := make(map[string]int64, len(stats))
	var maxCount int64
	for _, s := range stats {
		key := string(s.DeviceType)
		if _, seen := latest[key]; !seen {
			categories = append(categories, key)
		}
		latest[key] = s.Count
		if s.Count > maxCount {
			maxCount = s.Count
		}
	}

	x := scale.NewBand(categories, 0, width, deviceBandPadding)
	y := scale.NewLinear(0, float64(maxCount), height, 0)

	chart := DeviceBarChart{
		Canvas:   canvas,
		Bars:     make([]Bar, 0, x.Len()),
		XTicks:   make([]Tick, 0, x.Len()),
		MaxCount: maxCount,
		X:        x,
		Y:        y,
	}

	for _, category := range x.Domain() {
		pos, _ := x.Position(category)
		count := latest[category]
		top := y.Scale(float64(count))
		label := models.DeviceType(category).Label()

		chart.Bars = append(chart.Bars, Bar{
			DeviceType: category,
			Label:      label,
			Count:      count,
			X:          pos,
			Y:          top,
			Width:      x.Bandwidth(),
			Height:     height - top,
			Tooltip:    DeviceTooltip(count),
		})
		chart.XTicks = append(chart.XTicks, Tick{
			Position: pos + x.Bandwidth()/2,
			Label:    label,
		})
	}

	for _, tick := range y.Ticks() {
		chart.YTicks = append(chart.YTicks, Tick{
			Value:    tick.Value,
			Position: y.Scale(tick.Value),
			Label:    tick.Label,
		})
	}

	return chart
}

// BarAt returns the bar under the plot-coordinate point, if any. Hovering a
// bar shows its tooltip; leaving it hides the tooltip again.
func (c DeviceBarChart) BarAt(px, py float64) (Bar, bool) {
	for _, b := range c.Bars {
		if px >= b.X && px < b.X+b.Width && py >= b.Y && py <= b.Y+b.Height {
			return b, true
		}
	}
	return Bar{}, false
}
