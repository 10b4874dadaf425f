// Trackviz - Request Tracking Analytics Charts
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trackviz

package models

import (
	"errors"
	"fmt"
)

// ErrEmptyPayload is wrapped by PayloadParseError when the body is blank.
var ErrEmptyPayload = errors.New("empty payload")

// PayloadParseError reports a payload that could not be decoded at all.
// Renders fail visibly on this error rather than drawing an empty chart.
type PayloadParseError struct {
	// Payload names the payload: "devices", "requests" or "countries".
	Payload string
	Err     error
}

func (e *PayloadParseError) Error() string {
	return fmt.Sprintf("parse %s payload: %v", e.Payload, e.Err)
}

func (e *PayloadParseError) Unwrap() error {
	return e.Err
}

// DateParseError reports a request point whose date did not match DateLayout.
// The point is skipped; the rest of the series still renders.
type DateParseError struct {
	Index int
	Value string
	Err   error
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("request point %d: invalid date %q (want %s)", e.Index, e.Value, DateLayout)
}

func (e *DateParseError) Unwrap() error {
	return e.Err
}

// IsPayloadParseError reports whether err is or wraps a *PayloadParseError.
func IsPayloadParseError(err error) bool {
	var perr *PayloadParseError
	return errors.As(err, &perr)
}
