// Trackviz - Request Tracking Analytics Charts
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trackviz

package scale

import "math"

// Band maps distinct categories to rounded, evenly spaced bands.
type Band struct {
	domain    []string
	index     map[string]int
	positions []float64
	bandwidth float64
	step      float64
}

// NewBand builds a band scale over the distinct values of domain, in order
// of first appearance, spread across [start, stop]. Padding is the fraction
// of each step left empty between bands; the same amount is used on the
// outer edges.
func NewBand(domain []string, start, stop, padding float64) Band {
	b := Band{index: make(map[string]int, len(domain))}
	for _, d := range domain {
		if _, ok := b.index[d]; ok {
			continue
		}
		b.index[d] = len(b.domain)
		b.domain = append(b.domain, d)
	}

	n := float64(len(b.domain))
	if n == 0 {
		return b
	}

	reverse := stop < start
	lo, hi := start, stop
	if reverse {
		lo, hi = stop, start
	}

	step := math.Floor((hi - lo) / (n - padding + 2*padding))
	offset := lo + math.Round((hi-lo-(n-padding)*step)/2)

	b.positions = make([]float64, len(b.domain))
	for i := range b.domain {
		b.positions[i] = offset + step*float64(i)
	}
	if reverse {
		for i, j := 0, len(b.positions)-1; i < j; i, j = i+1, j-1 {
			b.positions[i], b.positions[j] = b.positions[j], b.positions[i]
		}
	}

	b.step = step
	b.bandwidth = math.Round(step * (1 - padding))
	return b
}

// Domain returns the distinct categories in band order.
func (b Band) Domain() []string {
	out := make([]string, len(b.domain))
	copy(out, b.domain)
	return out
}

// Len is the number of distinct categories.
func (b Band) Len() int {
	return len(b.domain)
}

// Position returns the start of the band for category. ok is false when the
// category is not in the domain.
func (b Band) Position(category string) (pos float64, ok bool) {
	i, ok := b.index[category]
	if !ok {
		return 0, false
	}
	return b.positions[i], true
}

// Bandwidth is the rounded width of every band.
func (b Band) Bandwidth() float64 {
	return b.bandwidth
}

// Step is the distance between the starts of adjacent bands.
func (b Band) Step() float64 {
	return b.step
}
