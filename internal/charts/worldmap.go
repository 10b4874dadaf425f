// Trackviz - Request Tracking Analytics Charts
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trackviz

package charts

import (
	"github.com/tomtom215/trackviz/internal/models"
)

// ProjectionMercator is the only projection the world map uses.
const ProjectionMercator = "mercator"

// CountryFill is a country's entry in the world map lookup table.
type CountryFill struct {
	ISOCode   string `json:"iso_code"`
	Name      string `json:"name"`
	Count     int64  `json:"count"`
	FillColor string `json:"fill_color"`
	Popup     string `json:"popup"`
}

// WorldMap is the laid-out requests-per-country choropleth.
type WorldMap struct {
	Canvas               Canvas                 `json:"canvas"`
	Projection           string                 `json:"projection"`
	Countries            []CountryFill          `json:"countries"`
	Lookup               map[string]CountryFill `json:"-"`
	MinValue             int64                  `json:"min_value"`
	MaxValue             int64                  `json:"max_value"`
	LowColor             string                 `json:"low_color"`
	HighColor            string                 `json:"high_color"`
	DefaultFill          string                 `json:"default_fill"`
	BorderColor          string                 `json:"border_color"`
	HighlightBorderColor string                 `json:"highlight_border_color"`
	HighlightBorderWidth int                    `json:"highlight_border_width"`

	Palette Palette `json:"-"`
}

// BuildWorldMap colours each country by its count on a linear scale from the
// smallest to the largest count. With no countries the table is empty and
// every country takes the default fill.
func BuildWorldMap(stats []models.CountryStat) WorldMap {
	m := WorldMap{
		Canvas:               WorldMapCanvas(),
		Projection:           ProjectionMercator,
		Countries:            make([]CountryFill, 0, len(stats)),
		Lookup:               make(map[string]CountryFill, len(stats)),
		LowColor:             PaletteLowColor,
		HighColor:            PaletteHighColor,
		DefaultFill:          DefaultFillColor,
		BorderColor:          BorderColor,
		HighlightBorderColor: HighlightBorderColor,
		HighlightBorderWidth: HighlightBorderWidth,
	}
	if len(stats) == 0 {
		m.Palette = NewPalette(0, 0, PaletteLowColor, PaletteHighColor)
		return m
	}

	m.MinValue, m.MaxValue = stats[0].Count, stats[0].Count
	for _, s := range stats[1:] {
		if s.Count < m.MinValue {
			m.MinValue = s.Count
		}
		if s.Count > m.MaxValue {
			m.MaxValue = s.Count
		}
	}
	m.Palette = NewPalette(float64(m.MinValue), float64(m.MaxValue), PaletteLowColor, PaletteHighColor)

	for _, s := range stats {
		name := CountryName(s.ISOCode)
		fill := CountryFill{
			ISOCode:   s.ISOCode,
			Name:      name,
			Count:     s.Count,
			FillColor: m.Palette.Hex(float64(s.Count)),
			Popup:     CountryPopup(name, s.Count),
		}
		if _, ok := m.Lookup[s.ISOCode]; ok {
			for i := range m.Countries {
				if m.Countries[i].ISOCode == s.ISOCode {
					m.Countries[i] = fill
				}
			}
		} else {
			m.Countries = append(m.Countries, fill)
		}
		m.Lookup[s.ISOCode] = fill
	}
	return m
}

// Fill returns the fill colour of a country, or the default fill when the
// country has no data.
func (m WorldMap) Fill(iso string) string {
	if c, ok := m.Lookup[iso]; ok {
		return c.FillColor
	}
	return m.DefaultFill
}

// HighlightFill is the fill shown while a country is hovered. It never
// changes the colour, only the border.
func (m WorldMap) HighlightFill(iso string) string {
	return m.Fill(iso)
}

// Popup returns the hover popup of a country. Countries without data have
// no popup.
func (m WorldMap) Popup(iso string) (string, bool) {
	c, ok := m.Lookup[iso]
	if !ok {
		return "", false
	}
	return c.Popup, true
}
