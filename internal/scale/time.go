// Trackviz - Request Tracking Analytics Charts
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trackviz

package scale

import (
	"math"
	"time"

	"gonum.org/v1/plot"
)

// Time maps the interval [t0, t1] onto the range [r0, r1]. All calendar
// arithmetic is done in UTC.
type Time struct {
	t0, t1 time.Time
	r0, r1 float64
	empty  bool
}

// NewTime builds a time scale over [t0, t1].
func NewTime(t0, t1 time.Time, r0, r1 float64) Time {
	return Time{t0: t0.UTC(), t1: t1.UTC(), r0: r0, r1: r1}
}

// NewTimeExtent builds a time scale over the extent of times. With no
// times the scale is empty: it maps everything to r0 and has no ticks.
func NewTimeExtent(times []time.Time, r0, r1 float64) Time {
	lo, hi, ok := Extent(times)
	if !ok {
		return Time{r0: r0, r1: r1, empty: true}
	}
	return NewTime(lo, hi, r0, r1)
}

// Extent returns the earliest and latest of times.
func Extent(times []time.Time) (lo, hi time.Time, ok bool) {
	if len(times) == 0 {
		return time.Time{}, time.Time{}, false
	}
	lo, hi = times[0], times[0]
	for _, t := range times[1:] {
		if t.Before(lo) {
			lo = t
		}
		if t.After(hi) {
			hi = t
		}
	}
	return lo, hi, true
}

// Empty reports whether the scale was built without any dates.
func (s Time) Empty() bool {
	return s.empty
}

// Domain returns the domain endpoints.
func (s Time) Domain() (time.Time, time.Time) {
	return s.t0, s.t1
}

// Scale maps t into the range. A zero-width or empty domain maps to r0.
func (s Time) Scale(t time.Time) float64 {
	return s.ScaleUnix(UnixSeconds(t))
}

// ScaleUnix is Scale for a time given in seconds since the Unix epoch.
func (s Time) ScaleUnix(sec float64) float64 {
	span := s.span()
	if s.empty || span == 0 {
		return s.r0
	}
	return s.r0 + (sec-UnixSeconds(s.t0))/span*(s.r1-s.r0)
}

// Invert maps a range value back to a time.
func (s Time) Invert(r float64) time.Time {
	if s.empty || s.r1 == s.r0 {
		return s.t0
	}
	offset := (r - s.r0) / (s.r1 - s.r0) * s.span()
	whole := math.Floor(offset)
	nanos := math.Round((offset - whole) * 1e9)
	return time.Unix(s.t0.Unix()+int64(whole), int64(s.t0.Nanosecond())+int64(nanos)).UTC()
}

// span is the domain width in seconds. time.Duration saturates at about
// 292 years, so spans are never taken with Sub.
func (s Time) span() float64 {
	return secondsBetween(s.t0, s.t1)
}

// UnixSeconds is t in seconds since the Unix epoch, as gonum/plot time
// axes expect.
func UnixSeconds(t time.Time) float64 {
	return float64(t.Unix()) + float64(t.Nanosecond())/1e9
}

func secondsBetween(t0, t1 time.Time) float64 {
	return float64(t1.Unix()-t0.Unix()) + float64(t1.Nanosecond()-t0.Nanosecond())/1e9
}

// Ticks returns the labelled ticks of gonum/plot's time ticker over the
// domain, in seconds since the epoch. Labels use TickLayout for the span.
func (s Time) Ticks() []plot.Tick {
	if s.empty {
		return nil
	}
	layout := TickLayout(s.span())
	if s.span() == 0 {
		return []plot.Tick{{Value: UnixSeconds(s.t0), Label: s.t0.Format(layout)}}
	}
	ticker := plot.TimeTicks{Format: layout, Time: plot.UTCUnixTime}
	return majorTicks(ticker.Ticks(UnixSeconds(s.t0), UnixSeconds(s.t1)))
}

// TickLayout picks the time label layout for a domain spanning span
// seconds: clock times within two days, days within a year, else dates.
func TickLayout(span float64) string {
	switch {
	case span <= 2*24*60*60:
		return "Jan 02 15:04"
	case span <= 366*24*60*60:
		return "Jan 02"
	}
	return "2006-01-02"
}
