// Trackviz - Request Tracking Analytics Charts
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trackviz

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/tomtom215/trackviz/internal/models"
	"github.com/tomtom215/trackviz/internal/render"
)

var (
	// ErrEmptyBody is returned for a chart request without a payload.
	ErrEmptyBody = errors.New("request body is empty")

	// ErrNoCharts is returned for a dashboard request that names no payload.
	ErrNoCharts = errors.New("dashboard request has no chart payloads")
)

// errorResponse maps a render error to its HTTP status, error code and a
// client-safe message.
func errorResponse(err error) (status int, code, message string) {
	var tooLarge *http.MaxBytesError
	var payloadErr *models.PayloadParseError

	switch {
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge, ErrCodePayloadTooLarge, "Request body is too large"
	case errors.As(err, &payloadErr):
		return http.StatusUnprocessableEntity, ErrCodeInvalidPayload, payloadErr.Error()
	case errors.Is(err, ErrEmptyBody), errors.Is(err, ErrNoCharts), errors.Is(err, render.ErrEmptyDashboard):
		return http.StatusBadRequest, ErrCodeBadRequest, err.Error()
	case errors.Is(err, render.ErrUnknownChart):
		return http.StatusNotFound, ErrCodeUnknownChart, err.Error()
	case errors.Is(err, render.ErrUnsupportedFormat):
		return http.StatusBadRequest, ErrCodeUnsupportedFormat, err.Error()
	case errors.Is(err, render.ErrThrottled):
		return http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "Too many image renders, retry shortly"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, ErrCodeRenderTimeout, "Rendering took too long"
	}
	return http.StatusInternalServerError, ErrCodeInternalError, "Failed to render chart"
}

// respondRenderError logs server-side failures and writes the mapped error.
func respondRenderError(w http.ResponseWriter, r *http.Request, err error) {
	status, code, message := errorResponse(err)
	if status >= http.StatusInternalServerError {
		logEvent := logCtx(r).Error()
		if status == http.StatusServiceUnavailable {
			logEvent = logCtx(r).Warn()
		}
		logEvent.Err(err).Str("code", code).Msg("Render request failed")
	}
	if status == http.StatusServiceUnavailable {
		w.Header().Set("Retry-After", "1")
	}
	WriteError(w, r, status, code, message)
}
