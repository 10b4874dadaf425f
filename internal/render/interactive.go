// Trackviz - Request Tracking Analytics Charts
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trackviz

package render

import (
	"fmt"
	"io"
	"strconv"

	echarts "github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/tomtom215/trackviz/internal/charts"
)

// InteractiveOptions control the HTML output.
type InteractiveOptions struct {
	// AssetsHost serves echarts.min.js and maps/world.js. Empty uses the
	// go-echarts default CDN.
	AssetsHost string
	PageTitle  string
	// MapWidth and MapHeight size the world map container in pixels.
	MapWidth  int
	MapHeight int
}

// mercatorProjection switches the map series to a Mercator projection,
// clamping latitudes to +-85 degrees.
const mercatorProjection = `%MY_ECHARTS%.setOption({series: [{projection: {` +
	`project: function (p) { var lat = Math.max(-85, Math.min(85, p[1])) * Math.PI / 180;` +
	` return [p[0] * Math.PI / 180, -Math.log(Math.tan(Math.PI / 4 + lat / 2))]; },` +
	`unproject: function (p) { return [p[0] * 180 / Math.PI, (2 * Math.atan(Math.exp(-p[1])) - Math.PI / 2) * 180 / Math.PI]; }` +
	`}}]});`

// countryTooltip shows the precomputed popup of countries with data and
// nothing for the rest.
const countryTooltip = `function (params) { if (!params.data || !params.data.popup) { return ''; } return params.data.popup; }`

func px(v float64) string {
	return strconv.Itoa(int(v)) + "px"
}

func (o InteractiveOptions) init(c charts.Canvas, title string) opts.Initialization {
	init := opts.Initialization{
		Width:      px(c.Width),
		Height:     px(c.Height),
		ChartID:    c.ContainerID,
		PageTitle:  o.PageTitle,
		AssetsHost: o.AssetsHost,
	}
	if init.PageTitle == "" {
		init.PageTitle = title
	}
	return init
}

func grid(c charts.Canvas) opts.Grid {
	return opts.Grid{
		Top:    strconv.Itoa(int(c.Margin.Top)),
		Right:  strconv.Itoa(int(c.Margin.Right)),
		Bottom: strconv.Itoa(int(c.Margin.Bottom)),
		Left:   strconv.Itoa(int(c.Margin.Left)),
	}
}

// DeviceBar builds the interactive device bar chart. Each bar carries its
// own tooltip HTML.
func DeviceBar(c charts.DeviceBarChart, o InteractiveOptions) *echarts.Bar {
	bar := echarts.NewBar()
	bar.SetGlobalOptions(
		echarts.WithInitializationOpts(o.init(c.Canvas, "Requests per device")),
		echarts.WithGridOpts(grid(c.Canvas)),
		echarts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
		echarts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}),
		echarts.WithYAxisOpts(opts.YAxis{Type: "value", Min: 0, MinInterval: 1}),
	)

	labels := make([]string, 0, len(c.Bars))
	data := make([]opts.BarData, 0, len(c.Bars))
	for _, b := range c.Bars {
		labels = append(labels, b.Label)
		data = append(data, opts.BarData{
			Name:    b.Label,
			Value:   b.Count,
			Tooltip: &opts.Tooltip{Formatter: types.FuncStr(b.Tooltip)},
		})
	}

	bar.SetXAxis(labels).AddSeries("Requests", data,
		echarts.WithBarChartOpts(opts.BarChart{BarCategoryGap: "10%"}),
		echarts.WithItemStyleOpts(opts.ItemStyle{Color: BarColor}),
		echarts.WithEmphasisOpts(opts.Emphasis{ItemStyle: &opts.ItemStyle{Color: "orangered"}}),
	)
	return bar
}

// RequestsArea builds the interactive requests area chart on a time axis.
func RequestsArea(c charts.RequestsAreaChart, o InteractiveOptions) *echarts.Line {
	line := echarts.NewLine()
	line.SetGlobalOptions(
		echarts.WithInitializationOpts(o.init(c.Canvas, "Requests over time")),
		echarts.WithGridOpts(grid(c.Canvas)),
		echarts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
		echarts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		echarts.WithXAxisOpts(opts.XAxis{Type: "time"}),
		echarts.WithYAxisOpts(opts.YAxis{
			Type:         "value",
			Name:         c.YLabel,
			NameLocation: "end",
			Min:          0,
			MinInterval:  1,
			AxisLabel:    &opts.AxisLabel{Formatter: types.FuncStr("{value}")},
		}),
	)

	data := make([]opts.LineData, 0, len(c.Points))
	for _, p := range c.Points {
		data = append(data, opts.LineData{Value: []interface{}{p.Date.UnixMilli(), p.Requests}})
	}

	line.AddSeries(c.YLabel, data,
		echarts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}),
		echarts.WithAreaStyleOpts(opts.AreaStyle{Color: AreaColor, Opacity: opts.Float(1)}),
		echarts.WithItemStyleOpts(opts.ItemStyle{Color: AreaColor}),
	)
	return line
}

// mapItem is a map series entry. opts.MapData has no per-item style, so the
// series data is replaced with these after AddSeries.
type mapItem struct {
	Name      string          `json:"name"`
	Value     int64           `json:"value"`
	Popup     string          `json:"popup"`
	ItemStyle *opts.ItemStyle `json:"itemStyle,omitempty"`
	Emphasis  *opts.Emphasis  `json:"emphasis,omitempty"`
}

// WorldMap builds the interactive choropleth. Fills come from the layout's
// lookup table; countries without data keep the default fill and get no
// popup.
func WorldMap(m charts.WorldMap, o InteractiveOptions) *echarts.Map {
	canvas := m.Canvas
	if o.MapWidth > 0 {
		canvas.Width = float64(o.MapWidth)
	}
	if o.MapHeight > 0 {
		canvas.Height = float64(o.MapHeight)
	}

	wm := echarts.NewMap()
	wm.RegisterMapType("world")
	wm.SetGlobalOptions(
		echarts.WithInitializationOpts(o.init(canvas, "Requests per country")),
		echarts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
		echarts.WithTooltipOpts(opts.Tooltip{
			Show:      opts.Bool(true),
			Trigger:   "item",
			Formatter: opts.FuncOpts(countryTooltip),
		}),
	)

	items := make([]mapItem, 0, len(m.Countries))
	data := make([]opts.MapData, 0, len(m.Countries))
	for _, country := range m.Countries {
		data = append(data, opts.MapData{Name: country.Name, Value: country.Count})
		items = append(items, mapItem{
			Name:      country.Name,
			Value:     country.Count,
			Popup:     country.Popup,
			ItemStyle: &opts.ItemStyle{AreaColor: country.FillColor},
			Emphasis:  highlight(m, country.ISOCode),
		})
	}

	wm.AddSeries("Requests", data,
		echarts.WithItemStyleOpts(opts.ItemStyle{
			AreaColor:   m.DefaultFill,
			BorderColor: m.BorderColor,
		}),
		echarts.WithEmphasisOpts(*highlight(m, "")),
		echarts.WithSeriesOpts(func(s *echarts.SingleSeries) {
			s.Data = items
		}),
	)
	wm.AddJSFuncStrs(types.FuncStr(mercatorProjection))
	return wm
}

// highlight is the hover style of iso; an empty iso styles countries
// without data.
func highlight(m charts.WorldMap, iso string) *opts.Emphasis {
	return &opts.Emphasis{
		Label: &opts.Label{Show: opts.Bool(false)},
		ItemStyle: &opts.ItemStyle{
			AreaColor:   m.HighlightFill(iso),
			BorderColor: m.HighlightBorderColor,
			BorderWidth: float32(m.HighlightBorderWidth),
		},
	}
}

// renderer is satisfied by every go-echarts chart and page.
type renderer interface {
	Render(w io.Writer) error
}

func renderHTML(w io.Writer, r renderer) error {
	if err := r.Render(w); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}
