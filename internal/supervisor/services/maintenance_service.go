// Trackviz - Request Tracking Analytics Charts
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trackviz

package services

import (
	"context"
	"time"

	"github.com/tomtom215/trackviz/internal/logging"
	"github.com/tomtom215/trackviz/internal/metrics"
)

// ExpiringCache drops expired entries on demand.
type ExpiringCache interface {
	CleanupExpired() int
}

// CacheJanitorService sweeps expired render cache entries. Lookups already
// ignore expired entries; the sweep releases their memory.
type CacheJanitorService struct {
	cache    ExpiringCache
	interval time.Duration
}

func NewCacheJanitorService(cache ExpiringCache, interval time.Duration) *CacheJanitorService {
	if interval <= 0 {
		interval = time.Minute
	}
	return &CacheJanitorService{cache: cache, interval: interval}
}

func (s *CacheJanitorService) Serve(ctx context.Context) error {
	log := logging.WithComponent(s.String())
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if n := s.cache.CleanupExpired(); n > 0 {
				log.Debug().Int("removed", n).Msg("Expired render cache entries removed")
			}
		}
	}
}

func (s *CacheJanitorService) String() string {
	return "cache-janitor"
}

// UptimeService keeps the uptime gauge current.
type UptimeService struct {
	start    time.Time
	interval time.Duration
}

func NewUptimeService(start time.Time, interval time.Duration) *UptimeService {
	if interval <= 0 {
		interval = 15 * time.Second
	}
	return &UptimeService{start: start, interval: interval}
}

func (s *UptimeService) Serve(ctx context.Context) error {
	metrics.TrackUptime(s.start, s.interval, ctx.Done())
	return ctx.Err()
}

func (s *UptimeService) String() string {
	return "uptime"
}
