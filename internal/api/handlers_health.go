// Trackviz - Request Tracking Analytics Charts
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trackviz

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/trackviz/internal/models"
)

// Health reports the service status, version and uptime.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	status := "healthy"
	if !h.ready() {
		status = "starting"
	}
	NewResponseWriter(w, r).Success(models.HealthStatus{
		Status:  status,
		Version: h.version,
		Uptime:  time.Since(h.startTime).Seconds(),
		Now:     time.Now().UTC(),
	})
}

// HealthLive answers 200 while the process is running.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady answers 503 until the server is ready to render.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	if !h.ready() {
		rw.Error(http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "Service is not ready")
		return
	}
	rw.Success(map[string]interface{}{"ready": true})
}
