// Trackviz - Request Tracking Analytics Charts
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trackviz

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/trackviz/internal/logging"
	"github.com/tomtom215/trackviz/internal/render"
)

// Renderer is the part of render.Service the handlers use.
type Renderer interface {
	Render(ctx context.Context, req render.Request) (render.Result, error)
	Dashboard(ctx context.Context, req render.DashboardRequest) (render.Result, error)
	ClearCache()
}

// Handler serves the chart API.
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor
//   - handlers_health.go: health and liveness endpoints
//   - handlers_charts.go: chart, dashboard and device type endpoints
type Handler struct {
	renderer        Renderer
	maxPayloadBytes int64
	version         string
	startTime       time.Time
	ready           func() bool
}

// HandlerConfig holds the Handler dependencies.
type HandlerConfig struct {
	Renderer Renderer
	// MaxPayloadBytes caps request bodies; zero means 1 MiB.
	MaxPayloadBytes int64
	Version         string
	// Ready reports readiness for /health/ready. Nil means always ready.
	Ready func() bool
}

const defaultMaxPayloadBytes = 1 << 20

func NewHandler(cfg HandlerConfig) *Handler {
	limit := cfg.MaxPayloadBytes
	if limit <= 0 {
		limit = defaultMaxPayloadBytes
	}
	ready := cfg.Ready
	if ready == nil {
		ready = func() bool { return true }
	}
	return &Handler{
		renderer:        cfg.Renderer,
		maxPayloadBytes: limit,
		version:         cfg.Version,
		startTime:       time.Now(),
		ready:           ready,
	}
}

func logCtx(r *http.Request) *zerolog.Logger {
	return logging.Ctx(r.Context())
}
