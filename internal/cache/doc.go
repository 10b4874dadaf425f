// Trackviz - Request Tracking Analytics Charts
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trackviz

/*
Package cache holds rendered chart output in memory.

Rendering a chart is deterministic in its chart name, output format and
payload, so the render service hashes those with xxhash and keeps the encoded
bytes in a bounded LRU with a TTL:

	c := cache.NewLRU[[]byte](256, 5*time.Minute)
	key := cache.Key([]byte("devices"), []byte("svg"), payload)
	if body, ok := c.Get(key); ok {
	    return body
	}
	c.Add(key, body)

# Thread Safety

All LRU methods are safe for concurrent use.
*/
package cache
