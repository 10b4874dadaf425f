// Trackviz - Request Tracking Analytics Charts
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trackviz

package api

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/tomtom215/trackviz/internal/models"
	"github.com/tomtom215/trackviz/internal/render"
	"github.com/tomtom215/trackviz/internal/validation"
)

// RenderCacheHeader reports whether a chart came from the render cache.
const RenderCacheHeader = "X-Render-Cache"

const defaultChartFormat = render.FormatSVG

type renderParams struct {
	Chart    string `validate:"required,chart"`
	Format   string `validate:"omitempty,render_format"`
	Download string `validate:"omitempty,oneof=0 1 true false"`
}

type dashboardParams struct {
	Format     string `validate:"omitempty,oneof=html json"`
	Country    string `validate:"omitempty,iso_country"`
	DeviceType string `validate:"omitempty,max=64"`
}

// dashboardBody is the POST /dashboard request body.
type dashboardBody struct {
	Devices   json.RawMessage `json:"devices"`
	Requests  json.RawMessage `json:"requests"`
	Countries json.RawMessage `json:"countries"`
	Filters   render.Filters  `json:"filters"`
}

// RenderChart renders one chart from the JSON payload in the request body.
//
// POST /api/v1/charts/{chart}?format=svg|png|html|json[&download=1]
//
// The body is the chart's data payload exactly as the tracker exports it.
func (h *Handler) RenderChart(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	q := r.URL.Query()
	params := renderParams{
		Chart:    chi.URLParam(r, "chart"),
		Format:   q.Get("format"),
		Download: q.Get("download"),
	}
	if verr := validation.ValidateStruct(&params); verr != nil {
		rw.ValidationError(verr)
		return
	}

	chart, err := render.ParseChart(params.Chart)
	if err != nil {
		respondRenderError(w, r, err)
		return
	}
	format := defaultChartFormat
	if params.Format != "" {
		if format, err = render.ParseFormat(params.Format); err != nil {
			respondRenderError(w, r, err)
			return
		}
	}

	payload, err := h.readBody(w, r)
	if err != nil {
		respondRenderError(w, r, err)
		return
	}

	res, err := h.renderer.Render(r.Context(), render.Request{Chart: chart, Format: format, Payload: payload})
	if err != nil {
		respondRenderError(w, r, err)
		return
	}

	setRenderHeaders(w, res)
	if params.Download == "1" || params.Download == "true" {
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", render.FilenameFor(chart, format)))
	}
	rw.Body(res.ContentType, res.Body)
}

// Dashboard renders every supplied payload as one page.
//
// POST /api/v1/dashboard?format=html|json
//
// Filters in the body drop the charts broken down by a filtered dimension.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	raw, err := h.readBody(w, r)
	if err != nil {
		respondRenderError(w, r, err)
		return
	}
	var body dashboardBody
	if err := json.Unmarshal(raw, &body); err != nil {
		rw.BadRequest("Request body must be a JSON object")
		return
	}

	params := dashboardParams{
		Format:     strings.ToLower(r.URL.Query().Get("format")),
		Country:    body.Filters.Country,
		DeviceType: body.Filters.DeviceType,
	}
	if verr := validation.ValidateStruct(&params); verr != nil {
		rw.ValidationError(verr)
		return
	}
	if isNull(body.Devices) && isNull(body.Requests) && isNull(body.Countries) {
		respondRenderError(w, r, ErrNoCharts)
		return
	}

	res, err := h.renderer.Dashboard(r.Context(), render.DashboardRequest{
		Devices:   nullToEmpty(body.Devices),
		Requests:  nullToEmpty(body.Requests),
		Countries: nullToEmpty(body.Countries),
		Filters:   body.Filters,
		Format:    render.Format(params.Format),
	})
	if err != nil {
		respondRenderError(w, r, err)
		return
	}

	setRenderHeaders(w, res)
	rw.Body(res.ContentType, res.Body)
}

// DeviceTypes lists the device types the tracker reports, with their labels.
//
// GET /api/v1/device-types
func (h *Handler) DeviceTypes(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(models.DeviceTypeInfos())
}

// ClearCache drops every cached chart.
//
// DELETE /api/v1/cache
func (h *Handler) ClearCache(w http.ResponseWriter, r *http.Request) {
	h.renderer.ClearCache()
	logCtx(r).Info().Msg("Render cache cleared")
	NewResponseWriter(w, r).Success(map[string]bool{"cleared": true})
}

func (h *Handler) readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxPayloadBytes))
	if err != nil {
		return nil, fmt.Errorf("read request body: %w", err)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, ErrEmptyBody
	}
	return body, nil
}

func setRenderHeaders(w http.ResponseWriter, res render.Result) {
	h := w.Header()
	h.Set(render.SkippedHeader, render.SkippedValue(res.Skipped))
	if res.Cached {
		h.Set(RenderCacheHeader, "hit")
	} else {
		h.Set(RenderCacheHeader, "miss")
	}
}

var jsonNull = []byte("null")

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, jsonNull)
}

func nullToEmpty(raw json.RawMessage) json.RawMessage {
	if isNull(raw) {
		return nil
	}
	return raw
}
