// Trackviz - Request Tracking Analytics Charts
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trackviz

/*
Package charts computes the geometry of the three tracking analytics charts.

Every Build function is pure: it takes parsed payload records, builds its
own scales, and returns a layout value holding everything a drawing backend
needs (pixel positions, sizes, colours, tick labels and tooltip HTML). The
render package draws these layouts as SVG, PNG or interactive HTML; the API
also returns them as JSON.

Charts:

  - DeviceBarChart: requests per device type, 500x300, one rounded band per
    distinct device type and a tooltip per bar
  - RequestsAreaChart: requests over time, 960x200, a filled area between
    the plot floor and y(requests), left axis labelled "Requests"
  - WorldMap: choropleth of requests per country, colours interpolated from
    #EFEFFF (fewest requests) to #02386F (most), #F5F5F5 for countries
    without data

Empty payloads are not errors. They produce layouts with axes and no marks,
and scales that never return NaN.
*/
package charts
