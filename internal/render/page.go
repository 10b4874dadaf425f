// Trackviz - Request Tracking Analytics Charts
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trackviz

package render

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/components"

	"github.com/tomtom215/trackviz/internal/charts"
)

const dashboardTitle = "Request tracking"

// Filters are the dashboard filters active when the page was requested.
// A chart broken down by a filtered dimension carries no information and is
// left out.
type Filters struct {
	Country    string `json:"country,omitempty" koanf:"country"`
	DeviceType string `json:"device_type,omitempty" koanf:"device_type"`
}

// Dashboard is the set of laid-out charts shown on one page. Nil charts are
// omitted.
type Dashboard struct {
	Devices   *charts.DeviceBarChart    `json:"devices,omitempty"`
	Requests  *charts.RequestsAreaChart `json:"requests,omitempty"`
	Countries *charts.WorldMap          `json:"countries,omitempty"`
}

// Apply drops the charts made redundant by the filters.
func (f Filters) Apply(d Dashboard) Dashboard {
	if f.Country != "" {
		d.Countries = nil
	}
	if f.DeviceType != "" {
		d.Devices = nil
	}
	return d
}

// Empty reports whether the dashboard has no charts.
func (d Dashboard) Empty() bool {
	return d.Devices == nil && d.Requests == nil && d.Countries == nil
}

// DrawDashboard writes the dashboard as one HTML page, requests first.
func DrawDashboard(w io.Writer, d Dashboard, o InteractiveOptions) error {
	title := o.PageTitle
	if title == "" {
		title = dashboardTitle
	}

	page := components.NewPage().
		SetPageTitle(title).
		SetLayout(components.PageFlexLayout)
	if o.AssetsHost != "" {
		page.SetAssetsHost(o.AssetsHost)
	}

	// Chart page titles are ignored inside a page.
	o.PageTitle = ""
	if d.Requests != nil {
		page.AddCharts(RequestsArea(*d.Requests, o))
	}
	if d.Devices != nil {
		page.AddCharts(DeviceBar(*d.Devices, o))
	}
	if d.Countries != nil {
		page.AddCharts(WorldMap(*d.Countries, o))
	}
	return renderHTML(w, page)
}
