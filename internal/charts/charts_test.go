// Trackviz - Request Tracking Analytics Charts
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trackviz

package charts

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/tomtom215/trackviz/internal/models"
)

// ===================================================================================================
// DeviceBarChart
// ===================================================================================================

func TestBuildDeviceBarChart(t *testing.T) {
	t.Parallel()

	chart := BuildDeviceBarChart([]models.DeviceStat{
		{DeviceType: models.DevicePC, Count: 40},
		{DeviceType: models.DeviceMobile, Count: 80},
		{DeviceType: models.DeviceBot, Count: 10},
	})

	if len(chart.Bars) != 3 {
		t.Fatalf("len(Bars) = %d, want 3", len(chart.Bars))
	}
	if chart.MaxCount != 80 {
		t.Errorf("MaxCount = %d, want 80", chart.MaxCount)
	}

	plotHeight := chart.Canvas.PlotHeight()
	for _, b := range chart.Bars {
		if got := b.Y + b.Height; math.Abs(got-plotHeight) > 1e-9 {
			t.Errorf("bar %s bottom = %v, want plot floor %v", b.DeviceType, got, plotHeight)
		}
		if b.Width != chart.X.Bandwidth() {
			t.Errorf("bar %s width = %v, want bandwidth %v", b.DeviceType, b.Width, chart.X.Bandwidth())
		}
	}

	// mobile has the highest count and so the tallest bar
	if chart.Bars[1].Height != plotHeight {
		t.Errorf("mobile bar height = %v, want full plot height %v", chart.Bars[1].Height, plotHeight)
	}
	if chart.Bars[0].Height != plotHeight/2 {
		t.Errorf("pc bar height = %v, want %v", chart.Bars[0].Height, plotHeight/2)
	}
	if chart.XTicks[0].Label != "PC" {
		t.Errorf("XTicks[0].Label = %q, want PC", chart.XTicks[0].Label)
	}
}

func TestBuildDeviceBarChart_HeightsMonotonic(t *testing.T) {
	t.Parallel()

	chart := BuildDeviceBarChart([]models.DeviceStat{
		{DeviceType: "a", Count: 3},
		{DeviceType: "b", Count: 17},
		{DeviceType: "c", Count: 0},
		{DeviceType: "d", Count: 9},
		{DeviceType: "e", Count: 17},
	})

	for i, a := range chart.Bars {
		for j, b := range chart.Bars {
			if a.Count <= b.Count && a.Height > b.Height {
				t.Errorf("bar %d (count %d, height %v) taller than bar %d (count %d, height %v)",
					i, a.Count, a.Height, j, b.Count, b.Height)
			}
		}
	}
}

func TestBuildDeviceBarChart_DistinctCategories(t *testing.T) {
	t.Parallel()

	chart := BuildDeviceBarChart([]models.DeviceStat{
		{DeviceType: models.DevicePC, Count: 5},
		{DeviceType: models.DeviceTablet, Count: 2},
		{DeviceType: models.DevicePC, Count: 7},
	})

	if len(chart.Bars) != 2 {
		t.Fatalf("len(Bars) = %d, want 2 distinct device types", len(chart.Bars))
	}
	if chart.Bars[0].Count != 7 {
		t.Errorf("pc count = %d, want last record 7", chart.Bars[0].Count)
	}
}

func TestBuildDeviceBarChart_Empty(t *testing.T) {
	t.Parallel()

	chart := BuildDeviceBarChart(nil)
	if len(chart.Bars) != 0 {
		t.Errorf("len(Bars) = %d, want 0", len(chart.Bars))
	}
	if len(chart.YTicks) == 0 {
		t.Error("empty chart should still have a y axis")
	}
	for _, tick := range chart.YTicks {
		if math.IsNaN(tick.Position) {
			t.Error("y tick position is NaN")
		}
	}
}

func TestDeviceTooltip(t *testing.T) {
	t.Parallel()

	chart := BuildDeviceBarChart([]models.DeviceStat{{DeviceType: models.DevicePC, Count: 42}})
	bar := chart.Bars[0]

	want := "<strong>Requests:</strong> <span style='color:red'>42</span>"
	if bar.Tooltip != want {
		t.Errorf("Tooltip = %q, want %q", bar.Tooltip, want)
	}

	hovered, ok := chart.BarAt(bar.X+1, bar.Y+1)
	if !ok || !strings.Contains(hovered.Tooltip, "42") {
		t.Errorf("BarAt() inside bar = %+v, %v", hovered, ok)
	}
	if _, ok := chart.BarAt(bar.X+bar.Width+1, bar.Y+1); ok {
		t.Error("BarAt() outside every bar should report no bar")
	}
}

// ===================================================================================================
// RequestsAreaChart
// ===================================================================================================

func TestBuildRequestsAreaChart_Extent(t *testing.T) {
	t.Parallel()

	series, err := models.ParseRequests([]byte(`[
		{"date":"2024-01-01T00:00","requests":10},
		{"date":"2024-01-02T00:00","requests":20}
	]`))
	if err != nil {
		t.Fatalf("ParseRequests() error = %v", err)
	}
	chart := BuildRequestsAreaChart(series)

	jan1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	jan2 := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	if chart.Start == nil || !chart.Start.Equal(jan1) || chart.End == nil || !chart.End.Equal(jan2) {
		t.Errorf("extent = %v..%v, want %v..%v", chart.Start, chart.End, jan1, jan2)
	}
	if d0, d1 := chart.Y.Domain(); d0 != 0 || d1 != 20 {
		t.Errorf("requests domain = [%v, %v], want [0, 20]", d0, d1)
	}
	if chart.YLabel != "Requests" {
		t.Errorf("YLabel = %q, want Requests", chart.YLabel)
	}
}

func TestBuildRequestsAreaChart_TopEdgeMatchesScale(t *testing.T) {
	t.Parallel()

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	series := models.RequestSeries{}
	for i, r := range []int64{4, 9, 0, 15, 6} {
		series.Points = append(series.Points, models.RequestPoint{
			Date:     base.Add(time.Duration(i) * time.Minute),
			Requests: r,
		})
	}

	chart := BuildRequestsAreaChart(series)
	height := chart.Canvas.PlotHeight()
	for _, p := range chart.Points {
		if p.Y1 != chart.Y.Scale(float64(p.Requests)) {
			t.Errorf("Y1 at %v = %v, want y(%d) = %v", p.Date, p.Y1, p.Requests, chart.Y.Scale(float64(p.Requests)))
		}
		if back := chart.Y.Invert(p.Y1); math.Abs(back-float64(p.Requests)) > 1e-9 {
			t.Errorf("Invert(Y1) = %v, want %d", back, p.Requests)
		}
		if p.Y0 != height {
			t.Errorf("Y0 = %v, want baseline %v", p.Y0, height)
		}
	}
}

func TestBuildRequestsAreaChart_SortsByDate(t *testing.T) {
	t.Parallel()

	series, _ := models.ParseRequests([]byte(`[
		{"date":"2024-01-03T00:00","requests":3},
		{"date":"2024-01-01T00:00","requests":1},
		{"date":"2024-01-02T00:00","requests":2}
	]`))
	chart := BuildRequestsAreaChart(series)

	for i := 1; i < len(chart.Points); i++ {
		if chart.Points[i].X < chart.Points[i-1].X {
			t.Fatalf("points not in date order: %+v", chart.Points)
		}
	}
	if chart.Points[0].Requests != 1 || chart.Points[2].Requests != 3 {
		t.Errorf("points = %+v", chart.Points)
	}
}

func TestBuildRequestsAreaChart_EmptyAndSingle(t *testing.T) {
	t.Parallel()

	empty := BuildRequestsAreaChart(models.RequestSeries{})
	if len(empty.Points) != 0 || empty.Outline() != nil || empty.Start != nil {
		t.Errorf("empty chart = %+v", empty)
	}

	single := BuildRequestsAreaChart(models.RequestSeries{Points: []models.RequestPoint{
		{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Requests: 5},
	}})
	for _, p := range single.Outline() {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) {
			t.Fatalf("outline contains NaN: %+v", single.Outline())
		}
	}
}

func TestBuildRequestsAreaChart_SkippedCount(t *testing.T) {
	t.Parallel()

	series, _ := models.ParseRequests([]byte(`[{"date":"bad","requests":1},{"date":"2024-01-01T00:00","requests":2}]`))
	chart := BuildRequestsAreaChart(series)
	if chart.Skipped != 1 || len(chart.Points) != 1 {
		t.Errorf("Skipped = %d, Points = %d; want 1, 1", chart.Skipped, len(chart.Points))
	}
}

func TestRequestsAreaChart_Outline(t *testing.T) {
	t.Parallel()

	chart := RequestsAreaChart{Points: []AreaPoint{
		{X: 0, Y0: 150, Y1: 100},
		{X: 10, Y0: 150, Y1: 50},
	}}
	want := []Point{{0, 100}, {10, 50}, {10, 150}, {0, 150}}
	got := chart.Outline()
	if len(got) != len(want) {
		t.Fatalf("Outline() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Outline()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

// ===================================================================================================
// WorldMap
// ===================================================================================================

func TestBuildWorldMap(t *testing.T) {
	t.Parallel()

	m := BuildWorldMap([]models.CountryStat{
		{ISOCode: "USA", Count: 100},
		{ISOCode: "FRA", Count: 50},
	})

	if m.MinValue != 50 || m.MaxValue != 100 {
		t.Errorf("MinValue, MaxValue = %d, %d; want 50, 100", m.MinValue, m.MaxValue)
	}
	if got := m.Fill("USA"); got != "#02386F" {
		t.Errorf("Fill(USA) = %s, want #02386F", got)
	}
	if got := m.Fill("FRA"); got != "#EFEFFF" {
		t.Errorf("Fill(FRA) = %s, want #EFEFFF", got)
	}
	if got := m.Fill("DEU"); got != "#F5F5F5" {
		t.Errorf("Fill(DEU) = %s, want #F5F5F5", got)
	}
	if m.Projection != ProjectionMercator {
		t.Errorf("Projection = %q", m.Projection)
	}
	if m.BorderColor != "#DEDEDE" || m.HighlightBorderColor != "#B7B7B7" || m.HighlightBorderWidth != 2 {
		t.Errorf("border styling = %s, %s, %d", m.BorderColor, m.HighlightBorderColor, m.HighlightBorderWidth)
	}
}

func TestBuildWorldMap_Midpoint(t *testing.T) {
	t.Parallel()

	m := BuildWorldMap([]models.CountryStat{
		{ISOCode: "USA", Count: 100},
		{ISOCode: "GBR", Count: 75},
		{ISOCode: "FRA", Count: 50},
	})

	// halfway between #EFEFFF and #02386F
	if got := m.Fill("GBR"); got != "#7994B7" {
		t.Errorf("Fill(GBR) = %s, want #7994B7", got)
	}
}

func TestBuildWorldMap_Empty(t *testing.T) {
	t.Parallel()

	m := BuildWorldMap(nil)
	if len(m.Countries) != 0 {
		t.Errorf("len(Countries) = %d, want 0", len(m.Countries))
	}
	if got := m.Fill("USA"); got != DefaultFillColor {
		t.Errorf("Fill(USA) on empty map = %s, want default", got)
	}
}

func TestBuildWorldMap_SingleCountry(t *testing.T) {
	t.Parallel()

	m := BuildWorldMap([]models.CountryStat{{ISOCode: "JPN", Count: 7}})
	if got := m.Fill("JPN"); got != PaletteLowColor {
		t.Errorf("Fill(JPN) = %s, want low colour on zero-width domain", got)
	}
}

func TestWorldMap_Popup(t *testing.T) {
	t.Parallel()

	m := BuildWorldMap([]models.CountryStat{{ISOCode: "FRA", Count: 42}})

	popup, ok := m.Popup("FRA")
	if !ok {
		t.Fatal("Popup(FRA) missing")
	}
	want := `<div class="hoverinfo"><strong>France</strong><br>Requests: <strong>42</strong></div>`
	if popup != want {
		t.Errorf("Popup(FRA) = %q, want %q", popup, want)
	}

	if _, ok := m.Popup("DEU"); ok {
		t.Error("countries without data should have no popup")
	}
}

func TestCountryName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code string
		want string
	}{
		{"USA", "United States"},
		{"fra", "France"},
		{"DE", "Germany"},
		{"COD", "Dem. Rep. Congo"},
		{"nowhere", "NOWHERE"},
	}
	for _, tt := range tests {
		if got := CountryName(tt.code); got != tt.want {
			t.Errorf("CountryName(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestISO3(t *testing.T) {
	t.Parallel()

	if got, ok := ISO3("us"); !ok || got != "USA" {
		t.Errorf("ISO3(us) = %q, %v", got, ok)
	}
	if _, ok := ISO3("not-a-country"); ok {
		t.Error("ISO3() accepted garbage")
	}
}

func TestPalette(t *testing.T) {
	t.Parallel()

	p := NewPalette(0, 10, "#000000", "#FFFFFF")
	if got := p.Hex(5); got != "#808080" {
		t.Errorf("Hex(5) = %s, want #808080", got)
	}
	if got := HexColor(ParseColor("#02386F")); got != "#02386F" {
		t.Errorf("round trip = %s", got)
	}
}
