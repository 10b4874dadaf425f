// Trackviz - Request Tracking Analytics Charts
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trackviz

package models

import (
	"time"
)

// HealthStatus represents the health check response
type HealthStatus struct {
	Status  string    `json:"status"`
	Version string    `json:"version"`
	Uptime  float64   `json:"uptime_seconds"`
	Now     time.Time `json:"now"`
}

// TotalDeviceRequests sums the counts of a devices payload.
func TotalDeviceRequests(stats []DeviceStat) int64 {
	var total int64
	for _, s := range stats {
		total += s.Count
	}
	return total
}

// TotalRequests sums the requests of a parsed series.
func (s RequestSeries) TotalRequests() int64 {
	var total int64
	for _, p := range s.Points {
		total += p.Requests
	}
	return total
}

// TotalCountryRequests sums the counts of a countries payload.
func TotalCountryRequests(stats []CountryStat) int64 {
	var total int64
	for _, s := range stats {
		total += s.Count
	}
	return total
}
