// Trackviz - Request Tracking Analytics Charts
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trackviz

/*
Package metrics registers the Prometheus collectors exposed on /metrics.

# Available Metrics

API:
  - trackviz_api_requests_total{method, endpoint, status_code}
  - trackviz_api_request_duration_seconds{method, endpoint}
  - trackviz_api_active_requests
  - trackviz_api_rate_limit_hits_total{endpoint}

Rendering:
  - trackviz_renders_total{chart, format, outcome}
    outcome is ok, cached, bad_payload, unsupported or error
  - trackviz_render_duration_seconds{chart, format}
  - trackviz_render_output_bytes{format}
  - trackviz_render_skipped_records_total{chart}
  - trackviz_render_throttle_wait_seconds

Cache:
  - trackviz_cache_hits_total{cache}
  - trackviz_cache_misses_total{cache}
  - trackviz_cache_entries{cache}
  - trackviz_cache_evictions_total{cache}

System:
  - trackviz_app_info{version, go_version}
  - trackviz_app_uptime_seconds

Endpoint labels are chi route patterns, not raw paths, so chart names in the
URL do not multiply series.

Collectors register with the default registry through promauto at package
init.
*/
package metrics
