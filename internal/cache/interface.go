// Copyright (c) 2026 Akbar Maulana
// SPDX-License-Identifier: GPL-3.0-or-later

// Package cache provides the application cache (memory or Redis, chosen
// by configuration) and the in-process category lookup used by the
// localization resolver.
package cache

import (
	"context"
	"time"
)

// Cacher is a byte-value cache with TTL expiry. Values are []byte so
// the same interface covers the in-process map and Redis; callers
// serialize. Implementations are safe for concurrent use.
type Cacher interface {
	// Get returns the value for key, or ErrCacheMiss when the key is
	// absent or expired.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value. A ttl of 0 selects the cache's default TTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a key. Absent keys are not an error.
	Delete(ctx context.Context, key string) error

	// Clear removes every entry.
	Clear(ctx context.Context) error

	// Has reports whether key exists and has not expired.
	Has(ctx context.Context, key string) (bool, error)

	// Close releases the cache's resources.
	Close() error
}

// Stats holds counters for one cache instance.
type Stats struct {
	Hits    int64
	Misses  int64
	Sets    int64
	Items   int
	HitRate float64
	Size    int64
}

// StatsProvider is implemented by caches that track statistics.
type StatsProvider interface {
	Stats() Stats
	ResetStats()
}

// Error is a sentinel error for cache operations.
type Error string

func (e Error) Error() string { return string(e) }

const (
	// ErrCacheMiss reports an absent or expired key.
	ErrCacheMiss Error = "cache miss"

	// ErrCacheClosed reports an operation on a closed cache.
	ErrCacheClosed Error = "cache closed"
)
