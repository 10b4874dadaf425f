// Trackviz - Request Tracking Analytics Charts
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trackviz

/*
Command server runs the trackviz chart rendering API.

It accepts the JSON produced by the request tracking admin endpoints
(device counts, per-minute request counts, per-country counts) and returns
the device bar chart, the requests area chart and the world request map as
SVG, PNG, interactive HTML or a JSON layout.

# Process layout

	trackviz
	├── maintenance-layer
	│   ├── cache-janitor
	│   └── uptime
	└── api-layer
	    └── http-server

Startup order:

 1. Configuration: Koanf v2 (defaults, YAML file, environment)
 2. Logging: zerolog, configured from the logging section
 3. Render service: LRU output cache and PNG throttle
 4. HTTP router: chi with CORS, rate limits and Prometheus middleware
 5. Supervisor tree: suture v4

# Configuration

The most common environment variables:

	HTTP_HOST, HTTP_PORT            listen address (default 0.0.0.0:8080)
	ENVIRONMENT                     development, staging or production
	RENDER_CACHE_SIZE               cached outputs, 0 disables (default 256)
	RENDER_PNG_RATE                 PNG renders per second, 0 disables throttling
	RENDER_ASSETS_HOST              host for echarts.min.js and the world map
	CORS_ORIGINS                    comma-separated allowed origins
	RATE_LIMIT_REQUESTS             requests per window per client IP
	LOG_LEVEL, LOG_FORMAT           zerolog level and json or console output
	CONFIG_PATH                     YAML file to load

# Signals

SIGINT and SIGTERM cancel the root context. The HTTP server stops accepting
connections and drains in-flight requests for up to
HTTP_SHUTDOWN_TIMEOUT.

# Example

	LOG_FORMAT=console RENDER_PNG_RATE=5 ./server

	curl -s -X POST --data @devices.json \
	  'http://localhost:8080/api/v1/charts/devices?format=svg' > devices.svg
*/
package main
