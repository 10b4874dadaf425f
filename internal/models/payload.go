// Trackviz - Request Tracking Analytics Charts
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trackviz

package models

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// DateLayout is the minute-precision layout of RequestPoint dates.
const DateLayout = "2006-01-02T15:04"

// Payload names used in errors, metrics and logs.
const (
	PayloadDevices   = "devices"
	PayloadRequests  = "requests"
	PayloadCountries = "countries"
)

// DeviceStat is the number of requests made from one device type.
type DeviceStat struct {
	DeviceType DeviceType `json:"device_type"`
	Count      int64      `json:"count"`
}

// RequestPoint is the number of requests tracked in one minute bucket.
type RequestPoint struct {
	Date     time.Time `json:"date"`
	Requests int64     `json:"requests"`
}

// CountryStat is the number of requests from one country.
type CountryStat struct {
	ISOCode string `json:"iso_code"`
	Count   int64  `json:"count"`
}

// RequestSeries is a parsed requests payload. Points keep payload order;
// Skipped holds the records dropped for unparseable dates.
type RequestSeries struct {
	Points  []RequestPoint
	Skipped []*DateParseError
}

type rawDeviceStat struct {
	DeviceType *string         `json:"device_type"`
	Count      json.RawMessage `json:"count"`
}

type rawRequestPoint struct {
	Date     json.RawMessage `json:"date"`
	Requests json.RawMessage `json:"requests"`
}

// ParseDevices decodes a devices payload.
func ParseDevices(data []byte) ([]DeviceStat, error) {
	var raw []rawDeviceStat
	if err := decodePayload(PayloadDevices, data, &raw); err != nil {
		return nil, err
	}

	stats := make([]DeviceStat, 0, len(raw))
	for _, r := range raw {
		stat := DeviceStat{Count: coerceCount(r.Count)}
		if r.DeviceType != nil {
			stat.DeviceType = DeviceType(*r.DeviceType)
		}
		stats = append(stats, stat)
	}
	return stats, nil
}

// ParseRequests decodes a requests payload. Points with a date that does not
// match DateLayout are skipped and recorded in RequestSeries.Skipped.
func ParseRequests(data []byte) (RequestSeries, error) {
	var raw []rawRequestPoint
	if err := decodePayload(PayloadRequests, data, &raw); err != nil {
		return RequestSeries{}, err
	}

	series := RequestSeries{Points: make([]RequestPoint, 0, len(raw))}
	for i, r := range raw {
		date, err := parseDate(r.Date)
		if err != nil {
			series.Skipped = append(series.Skipped, &DateParseError{
				Index: i,
				Value: string(bytes.TrimSpace(r.Date)),
				Err:   err,
			})
			continue
		}
		series.Points = append(series.Points, RequestPoint{
			Date:     date,
			Requests: coerceCount(r.Requests),
		})
	}
	return series, nil
}

// ParseCountries decodes a countries payload of [iso_code, count] pairs.
// Codes are upper-cased; a repeated code keeps its first position and its
// last count. Pairs with a null or blank code are ignored, which is how the
// tracker reports requests it could not geolocate.
func ParseCountries(data []byte) ([]CountryStat, error) {
	var raw [][]json.RawMessage
	if err := decodePayload(PayloadCountries, data, &raw); err != nil {
		return nil, err
	}

	stats := make([]CountryStat, 0, len(raw))
	index := make(map[string]int, len(raw))
	for i, pair := range raw {
		if len(pair) != 2 {
			return nil, &PayloadParseError{
				Payload: PayloadCountries,
				Err:     fmt.Errorf("entry %d: want [iso_code, count] pair, got %d elements", i, len(pair)),
			}
		}

		var code *string
		if err := json.Unmarshal(pair[0], &code); err != nil {
			return nil, &PayloadParseError{
				Payload: PayloadCountries,
				Err:     fmt.Errorf("entry %d: iso_code: %w", i, err),
			}
		}
		if code == nil || strings.TrimSpace(*code) == "" {
			continue
		}

		iso := strings.ToUpper(strings.TrimSpace(*code))
		count := coerceCount(pair[1])
		if pos, ok := index[iso]; ok {
			stats[pos].Count = count
			continue
		}
		index[iso] = len(stats)
		stats = append(stats, CountryStat{ISOCode: iso, Count: count})
	}
	return stats, nil
}

// decodePayload decodes data into v. A payload that is itself a JSON string
// is decoded twice, since templates commonly embed json.dumps output as a
// string literal.
func decodePayload(name string, data []byte, v interface{}) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return &PayloadParseError{Payload: name, Err: ErrEmptyPayload}
	}

	if trimmed[0] == '"' {
		var inner string
		if err := json.Unmarshal(trimmed, &inner); err != nil {
			return &PayloadParseError{Payload: name, Err: err}
		}
		trimmed = bytes.TrimSpace([]byte(inner))
		if len(trimmed) == 0 {
			return &PayloadParseError{Payload: name, Err: ErrEmptyPayload}
		}
	}

	if err := json.Unmarshal(trimmed, v); err != nil {
		return &PayloadParseError{Payload: name, Err: err}
	}
	return nil
}

var errDateNotString = errors.New("date is not a string")

func parseDate(raw json.RawMessage) (time.Time, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return time.Time{}, errDateNotString
	}
	return time.Parse(DateLayout, s)
}

// coerceCount converts a JSON number or numeric string to a non-negative
// integer. Everything else is zero.
func coerceCount(raw json.RawMessage) int64 {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return 0
	}

	text := string(raw)
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0
		}
		text = strings.TrimSpace(s)
	}

	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return 0
	}
	if f >= math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(f)
}
