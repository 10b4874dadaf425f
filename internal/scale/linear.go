// Trackviz - Request Tracking Analytics Charts
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trackviz

package scale

import (
	"math"
	"strconv"

	"gonum.org/v1/plot"
)

// Linear maps the numeric domain [d0, d1] onto the range [r0, r1].
type Linear struct {
	d0, d1 float64
	r0, r1 float64
}

// NewLinear builds a linear scale.
func NewLinear(d0, d1, r0, r1 float64) Linear {
	return Linear{d0: d0, d1: d1, r0: r0, r1: r1}
}

// Domain returns the domain endpoints.
func (l Linear) Domain() (float64, float64) {
	return l.d0, l.d1
}

// Range returns the range endpoints.
func (l Linear) Range() (float64, float64) {
	return l.r0, l.r1
}

// Scale maps v into the range. A zero-width domain maps everything to r0.
func (l Linear) Scale(v float64) float64 {
	span := l.d1 - l.d0
	if span == 0 || math.IsNaN(span) {
		return l.r0
	}
	return l.r0 + (v-l.d0)/span*(l.r1-l.r0)
}

// Invert maps a range value back into the domain.
func (l Linear) Invert(r float64) float64 {
	span := l.r1 - l.r0
	if span == 0 || math.IsNaN(span) {
		return l.d0
	}
	return l.d0 + (r-l.r0)/span*(l.d1-l.d0)
}

// Ticks returns the labelled ticks gonum/plot's default ticker places
// inside the domain. Minor ticks are dropped. A zero-width domain yields
// that single value.
func (l Linear) Ticks() []plot.Tick {
	lo, hi := l.extent()
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return nil
	}
	if lo == hi {
		return []plot.Tick{{Value: lo, Label: strconv.FormatFloat(lo, 'f', -1, 64)}}
	}
	return majorTicks(plot.DefaultTicks{}.Ticks(lo, hi))
}

// IntegerFormat formats integral values and blanks everything else, so an
// axis over a small domain never shows fractional request counts.
func IntegerFormat(v float64) string {
	if v != math.Trunc(v) || math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	return strconv.FormatInt(int64(v), 10)
}

func (l Linear) extent() (float64, float64) {
	if l.d0 > l.d1 {
		return l.d1, l.d0
	}
	return l.d0, l.d1
}

func majorTicks(ticks []plot.Tick) []plot.Tick {
	major := ticks[:0]
	for _, t := range ticks {
		if !t.IsMinor() {
			major = append(major, t)
		}
	}
	return major
}
