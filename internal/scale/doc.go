// Trackviz - Request Tracking Analytics Charts
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trackviz

/*
Package scale maps data domains onto pixel ranges.

Three scales are provided, each an immutable value built once per render:

  - Band: ordinal categories to evenly spaced, pixel-rounded bands
  - Linear: a numeric interval to a pixel interval, with "nice" ticks
  - Time: a time interval to a pixel interval, with calendar-aligned ticks

Tick generation and band rounding follow the conventions of the classic d3
scale family, so charts laid out here line up with the ones the tracking
admin has always drawn. Degenerate domains (no categories, a zero-width
interval, no dates) never produce NaN: every value maps to the start of the
range and a single tick, or no tick, is generated.
*/
package scale
