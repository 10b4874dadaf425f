// Trackviz - Request Tracking Analytics Charts
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trackviz

package cache

import (
	"sync"
	"testing"
	"time"
)

func TestLRU_BasicOperations(t *testing.T) {
	t.Parallel()
	c := NewLRU[string](3, time.Minute)

	c.Add(1, "a")
	c.Add(2, "b")
	c.Add(3, "c")

	for key, want := range map[uint64]string{1: "a", 2: "b", 3: "c"} {
		got, ok := c.Get(key)
		if !ok || got != want {
			t.Errorf("Get(%d) = %q, %v; want %q, true", key, got, ok, want)
		}
	}
	if c.Len() != 3 {
		t.Errorf("Len() = %d, want 3", c.Len())
	}
}

func TestLRU_Eviction(t *testing.T) {
	t.Parallel()
	c := NewLRU[int](3, time.Minute)

	c.Add(1, 1)
	c.Add(2, 2)
	c.Add(3, 3)

	// 1 becomes most recently used, leaving 2 as the oldest.
	c.Get(1)

	if evicted := c.Add(4, 4); !evicted {
		t.Error("Add over capacity should report an eviction")
	}
	if _, ok := c.Get(2); ok {
		t.Error("expected 2 to be evicted")
	}
	for _, key := range []uint64{1, 3, 4} {
		if _, ok := c.Get(key); !ok {
			t.Errorf("expected %d to be present", key)
		}
	}
	if s := c.Stats(); s.Evictions != 1 {
		t.Errorf("Evictions = %d, want 1", s.Evictions)
	}
}

func TestLRU_UpdateExisting(t *testing.T) {
	t.Parallel()
	c := NewLRU[string](2, time.Minute)

	c.Add(1, "old")
	if evicted := c.Add(1, "new"); evicted {
		t.Error("updating a key should not evict")
	}
	if got, _ := c.Get(1); got != "new" {
		t.Errorf("Get(1) = %q, want new", got)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestLRU_TTLExpiration(t *testing.T) {
	t.Parallel()
	c := NewLRU[string](10, time.Minute)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	c.Add(1, "a")
	if _, ok := c.Get(1); !ok {
		t.Fatal("expected fresh entry")
	}

	now = now.Add(2 * time.Minute)
	if _, ok := c.Get(1); ok {
		t.Error("expected entry to expire")
	}
	if c.Len() != 0 {
		t.Errorf("expired entry should be dropped, Len() = %d", c.Len())
	}
}

func TestLRU_CleanupExpired(t *testing.T) {
	t.Parallel()
	c := NewLRU[int](10, time.Minute)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	c.Add(1, 1)
	c.Add(2, 2)
	now = now.Add(30 * time.Second)
	c.Add(3, 3)
	now = now.Add(45 * time.Second)

	if removed := c.CleanupExpired(); removed != 2 {
		t.Errorf("CleanupExpired() = %d, want 2", removed)
	}
	if _, ok := c.Get(3); !ok {
		t.Error("expected 3 to survive cleanup")
	}
}

func TestLRU_Clear(t *testing.T) {
	t.Parallel()
	c := NewLRU[int](4, time.Minute)
	c.Add(1, 1)
	c.Add(2, 2)

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d", c.Len())
	}
	c.Add(3, 3)
	if _, ok := c.Get(3); !ok {
		t.Error("cache unusable after Clear")
	}
}

func TestLRU_Defaults(t *testing.T) {
	t.Parallel()
	c := NewLRU[int](0, 0)
	if c.capacity != DefaultCapacity {
		t.Errorf("capacity = %d, want %d", c.capacity, DefaultCapacity)
	}
	if c.ttl != DefaultTTL {
		t.Errorf("ttl = %v, want %v", c.ttl, DefaultTTL)
	}
}

func TestLRU_Stats(t *testing.T) {
	t.Parallel()
	c := NewLRU[int](4, time.Minute)

	if rate := c.Stats().HitRate(); rate != 0 {
		t.Errorf("HitRate() with no lookups = %v, want 0", rate)
	}

	c.Add(1, 1)
	c.Get(1)
	c.Get(1)
	c.Get(1)
	c.Get(2)

	s := c.Stats()
	if s.Hits != 3 || s.Misses != 1 || s.Size != 1 {
		t.Errorf("Stats() = %+v", s)
	}
	if rate := s.HitRate(); rate != 75 {
		t.Errorf("HitRate() = %v, want 75", rate)
	}
}

func TestLRU_Concurrent(t *testing.T) {
	t.Parallel()
	c := NewLRU[int](64, time.Minute)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				key := uint64((g*500 + i) % 100)
				c.Add(key, i)
				c.Get(key)
			}
		}(g)
	}
	wg.Wait()

	if c.Len() > 64 {
		t.Errorf("Len() = %d exceeds capacity", c.Len())
	}
}

// ========================================
// Keys
// ========================================

func TestKey(t *testing.T) {
	t.Parallel()

	if Key([]byte("ab"), []byte("c")) == Key([]byte("a"), []byte("bc")) {
		t.Error("part boundaries must change the key")
	}
	if Key([]byte("devices"), []byte("svg"), []byte("[]")) != Key([]byte("devices"), []byte("svg"), []byte("[]")) {
		t.Error("keys must be deterministic")
	}
	if Key([]byte("devices"), []byte("svg")) == Key([]byte("devices"), []byte("png")) {
		t.Error("format must change the key")
	}
}
