// Trackviz - Request Tracking Analytics Charts
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trackviz

/*
Package models defines the chart payloads rendered by Trackviz.

The host application aggregates its tracking records and hands Trackviz one
JSON payload per chart. This package is the boundary where those payloads are
decoded, coerced and validated into typed records.

Payloads:

  - devices: array of {"device_type": "pc", "count": 12}
  - requests: array of {"date": "2024-01-01T00:00", "requests": 10}
  - countries: array of ["USA", 100] pairs keyed by ISO 3166-1 alpha-3 code

Counts accept JSON numbers or numeric strings. Anything else, including
negative values, coerces to zero. A payload that is not JSON, or whose top
level has the wrong shape, fails with *PayloadParseError. A request point
whose date does not match DateLayout is skipped and reported as a
*DateParseError on the parsed series.

Usage Example:

	series, err := models.ParseRequests(body)
	if err != nil {
	    var perr *models.PayloadParseError
	    if errors.As(err, &perr) {
	        // reject the render
	    }
	}
	for _, skipped := range series.Skipped {
	    log.Warn().Int("index", skipped.Index).Msg(skipped.Error())
	}
*/
package models
