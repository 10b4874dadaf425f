// Trackviz - Request Tracking Analytics Charts
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trackviz

package cache

import (
	"github.com/cespare/xxhash/v2"
)

// Key hashes parts into a cache key. Parts are separated by a zero byte so
// ("ab", "c") and ("a", "bc") differ.
func Key(parts ...[]byte) uint64 {
	d := xxhash.New()
	for i, p := range parts {
		if i > 0 {
			_, _ = d.Write([]byte{0})
		}
		_, _ = d.Write(p)
	}
	return d.Sum64()
}
