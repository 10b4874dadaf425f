// Trackviz - Request Tracking Analytics Charts
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trackviz

/*
Package config loads the server configuration with koanf.

Sources are layered, later ones winning:

  - built-in defaults
  - an optional YAML file (config.yaml, /etc/trackviz/config.yaml or $CONFIG_PATH)
  - environment variables

# Environment Variables

	HTTP_HOST, HTTP_PORT, HTTP_READ_TIMEOUT, HTTP_WRITE_TIMEOUT, HTTP_SHUTDOWN_TIMEOUT
	ENVIRONMENT                 development, staging or production
	RENDER_CACHE_SIZE, RENDER_CACHE_TTL
	RENDER_PNG_RATE, RENDER_PNG_BURST
	RENDER_TIMEOUT, RENDER_MAX_PAYLOAD_BYTES
	RENDER_ASSETS_HOST, RENDER_MAP_WIDTH, RENDER_MAP_HEIGHT
	CORS_ORIGINS                comma-separated
	RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT
	LOG_LEVEL, LOG_FORMAT, LOG_CALLER

# Example File

	server:
	  port: 8080
	  environment: production
	render:
	  cache_size: 512
	  png_rate: 5
	  assets_host: https://assets.example.com/echarts/
	security:
	  cors_origins: ["https://admin.example.com"]
	logging:
	  level: debug
	  format: console

The loaded configuration is validated with struct tags through the
validation package.
*/
package config
