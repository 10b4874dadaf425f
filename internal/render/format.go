// Trackviz - Request Tracking Analytics Charts
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trackviz

package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tomtom215/trackviz/internal/models"
)

var (
	// ErrUnsupportedFormat is returned when a chart cannot be drawn in the
	// requested format, e.g. a static world map.
	ErrUnsupportedFormat = errors.New("unsupported output format")

	// ErrUnknownChart is returned for chart names other than devices,
	// requests and countries.
	ErrUnknownChart = errors.New("unknown chart")

	// ErrThrottled is returned when a PNG render could not get a slot
	// before its deadline.
	ErrThrottled = errors.New("png render throttled")

	// ErrEmptyDashboard is returned when the filters leave a dashboard
	// with nothing to draw.
	ErrEmptyDashboard = errors.New("dashboard has no charts to draw")
)

// Format is an output encoding.
type Format string

const (
	FormatSVG  Format = "svg"
	FormatPNG  Format = "png"
	FormatHTML Format = "html"
	FormatJSON Format = "json"
)

// ParseFormat parses a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatSVG, FormatPNG, FormatHTML, FormatJSON:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// ContentType is the HTTP media type of the format.
func (f Format) ContentType() string {
	switch f {
	case FormatSVG:
		return "image/svg+xml"
	case FormatPNG:
		return "image/png"
	case FormatHTML:
		return "text/html; charset=utf-8"
	}
	return "application/json"
}

func (f Format) valid() bool {
	switch f {
	case FormatSVG, FormatPNG, FormatHTML, FormatJSON:
		return true
	}
	return false
}

// Extension is the file extension of the format, without a dot.
func (f Format) Extension() string {
	return string(f)
}

// Chart names a renderable chart. Its value is the payload name.
type Chart string

const (
	ChartDevices   Chart = models.PayloadDevices
	ChartRequests  Chart = models.PayloadRequests
	ChartCountries Chart = models.PayloadCountries
)

// ParseChart parses a chart name.
func ParseChart(s string) (Chart, error) {
	switch c := Chart(strings.ToLower(strings.TrimSpace(s))); c {
	case ChartDevices, ChartRequests, ChartCountries:
		return c, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownChart, s)
}

func (c Chart) valid() bool {
	return c == ChartDevices || c == ChartRequests || c == ChartCountries
}

// Supports reports whether the chart can be drawn in format f.
func (c Chart) Supports(f Format) bool {
	if c == ChartCountries {
		return f == FormatHTML || f == FormatJSON
	}
	return true
}
