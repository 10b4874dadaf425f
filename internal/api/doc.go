// Trackviz - Request Tracking Analytics Charts
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trackviz

/*
Package api is the HTTP layer of the chart server.

Routes:

	GET    /api/v1/health            status, version and uptime
	GET    /api/v1/health/live       liveness probe
	GET    /api/v1/health/ready      readiness probe
	POST   /api/v1/charts/{chart}    render devices, requests or countries
	POST   /api/v1/dashboard         render every supplied chart on one page
	GET    /api/v1/device-types      known device types and their labels
	DELETE /api/v1/cache             drop every cached chart
	GET    /metrics                  Prometheus metrics

A chart request body is the tracker's JSON payload for that chart. The format
query parameter selects svg (default), png, html or json; the world map is
only available as html or json. Successful renders return the raw chart body
with an ETag, X-Render-Cache (hit or miss) and X-Skipped-Records, the number
of request points dropped for an unparseable date.

Errors use the JSON envelope:

	{"success": false, "error": {"code": "INVALID_PAYLOAD", "message": "..."}}

Status codes:

  - 400: invalid query parameters, unsupported format, empty body
  - 413: body larger than render.max_payload_bytes
  - 422: body is not a valid payload for the chart
  - 429: per-IP rate limit exceeded
  - 503: PNG render throttle saturated (Retry-After is set)
  - 504: render timed out

Middleware order: request id, real IP, panic recovery, CORS, gzip, then per
group security headers, Prometheus metrics and httprate limits.
*/
package api
