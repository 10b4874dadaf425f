// Trackviz - Request Tracking Analytics Charts
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trackviz

package charts

// Container ids the host page reserves for each chart.
const (
	DevicesContainerID    = "devices-stats"
	RequestsContainerID   = "requests-graph"
	WorldMapContainerID   = "world-map"
	requestsAxisLabel     = "Requests"
	deviceBandPadding     = 0.1
	defaultWorldMapWidth  = 960
	defaultWorldMapHeight = 500
)

// Margin is the space reserved around the plot area for axes.
type Margin struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// Canvas is the full drawing surface of a chart.
type Canvas struct {
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	Margin      Margin  `json:"margin"`
	ContainerID string  `json:"container_id"`
}

// PlotWidth is the width inside the margins.
func (c Canvas) PlotWidth() float64 {
	return c.Width - c.Margin.Left - c.Margin.Right
}

// PlotHeight is the height inside the margins.
func (c Canvas) PlotHeight() float64 {
	return c.Height - c.Margin.Top - c.Margin.Bottom
}

// DevicesCanvas is the fixed surface of the device bar chart.
func DevicesCanvas() Canvas {
	return Canvas{
		Width:       500,
		Height:      300,
		Margin:      Margin{Top: 40, Right: 20, Bottom: 30, Left: 50},
		ContainerID: DevicesContainerID,
	}
}

// RequestsCanvas is the fixed surface of the requests area chart.
func RequestsCanvas() Canvas {
	return Canvas{
		Width:       960,
		Height:      200,
		Margin:      Margin{Top: 20, Right: 20, Bottom: 30, Left: 50},
		ContainerID: RequestsContainerID,
	}
}

// WorldMapCanvas is the default surface of the world map. The map fills its
// container, so callers may override the size.
func WorldMapCanvas() Canvas {
	return Canvas{
		Width:       defaultWorldMapWidth,
		Height:      defaultWorldMapHeight,
		ContainerID: WorldMapContainerID,
	}
}

// Tick is one labelled axis tick. Position is in plot coordinates.
type Tick struct {
	Value    float64 `json:"value"`
	Position float64 `json:"position"`
	Label    string  `json:"label"`
}

// Point is a plot-coordinate vertex.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}
