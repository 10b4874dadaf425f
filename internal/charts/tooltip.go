// Trackviz - Request Tracking Analytics Charts
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trackviz

package charts

import (
	"html"
	"strconv"
)

// DeviceTooltip is the hover label of a device bar.
func DeviceTooltip(count int64) string {
	return "<strong>Requests:</strong> <span style='color:red'>" + strconv.FormatInt(count, 10) + "</span>"
}

// CountryPopup is the hover popup of a country with data.
func CountryPopup(name string, count int64) string {
	return `<div class="hoverinfo"><strong>` + html.EscapeString(name) +
		`</strong><br>Requests: <strong>` + strconv.FormatInt(count, 10) + `</strong></div>`
}
