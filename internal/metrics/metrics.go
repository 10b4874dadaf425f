// Trackviz - Request Tracking Analytics Charts
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trackviz

package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Render outcomes.
const (
	OutcomeOK          = "ok"
	OutcomeCached      = "cached"
	OutcomeBadPayload  = "bad_payload"
	OutcomeUnsupported = "unsupported"
	OutcomeError       = "error"
)

var (
	// API
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trackviz_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "trackviz_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "trackviz_api_active_requests",
			Help: "Current number of in-flight API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trackviz_api_rate_limit_hits_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
		[]string{"endpoint"},
	)

	// Rendering
	RenderTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trackviz_renders_total",
			Help: "Total number of chart renders by outcome",
		},
		[]string{"chart", "format", "outcome"},
	)

	RenderDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "trackviz_render_duration_seconds",
			Help:    "Chart layout and encoding time in seconds",
			Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"chart", "format"},
	)

	RenderOutputBytes = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "trackviz_render_output_bytes",
			Help:    "Size of rendered chart output in bytes",
			Buckets: prometheus.ExponentialBuckets(1024, 2, 10),
		},
		[]string{"format"},
	)

	RenderSkippedRecords = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trackviz_render_skipped_records_total",
			Help: "Input records dropped because they could not be parsed",
		},
		[]string{"chart"},
	)

	RenderThrottleWait = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "trackviz_render_throttle_wait_seconds",
			Help:    "Time spent waiting for a PNG render slot",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
	)

	// Cache
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trackviz_cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trackviz_cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache"},
	)

	CacheSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "trackviz_cache_entries",
			Help: "Current number of cache entries",
		},
		[]string{"cache"},
	)

	CacheEvictions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trackviz_cache_evictions_total",
			Help: "Total number of entries evicted to make room",
		},
		[]string{"cache"},
	)

	// System
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "trackviz_app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "trackviz_app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// RecordAPIRequest records one finished API request.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRender records a render outcome. Duration and size are observed only
// for fresh successful renders.
func RecordRender(chart, format, outcome string, duration time.Duration, size int) {
	RenderTotal.WithLabelValues(chart, format, outcome).Inc()
	if outcome != OutcomeOK {
		return
	}
	RenderDuration.WithLabelValues(chart, format).Observe(duration.Seconds())
	RenderOutputBytes.WithLabelValues(format).Observe(float64(size))
}

func RecordSkipped(chart string, n int) {
	if n > 0 {
		RenderSkippedRecords.WithLabelValues(chart).Add(float64(n))
	}
}

func RecordThrottleWait(d time.Duration) {
	RenderThrottleWait.Observe(d.Seconds())
}

// RecordCacheLookup counts a hit or miss on the named cache.
func RecordCacheLookup(cache string, hit bool) {
	if hit {
		CacheHits.WithLabelValues(cache).Inc()
	} else {
		CacheMisses.WithLabelValues(cache).Inc()
	}
}

// RecordCacheStore records the cache size after a store and whether the
// store evicted an entry.
func RecordCacheStore(cache string, size int, evicted bool) {
	CacheSize.WithLabelValues(cache).Set(float64(size))
	if evicted {
		CacheEvictions.WithLabelValues(cache).Inc()
	}
}

func SetAppInfo(version string) {
	AppInfo.WithLabelValues(version, runtime.Version()).Set(1)
}

// TrackUptime updates AppUptime every interval until stop is closed.
func TrackUptime(start time.Time, interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		AppUptime.Set(time.Since(start).Seconds())
		select {
		case <-stop:
			return
		case <-ticker.C:
		}
	}
}
