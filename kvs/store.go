// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package kvs

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key is absent.
var ErrNotFound = errors.New("kvs: key not found")

// RankedEntry is one member of a weighted ranking.
type RankedEntry struct {
	Member string
	Weight int64
}

// Store is the cache/counter store the aggregation core runs on. Its
// atomicity guarantees are the only concurrency primitive in the system:
// IncrBy and ZIncrBy must not lose concurrent updates.
type Store interface {
	// Get returns the value stored at key, or ErrNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value at key with no expiry.
	Set(ctx context.Context, key, value string) error

	// MGet returns one value per key, aligned with keys. Absent keys
	// yield the empty string.
	MGet(ctx context.Context, keys ...string) ([]string, error)

	// IncrBy atomically adds delta to the integer counter at key,
	// creating it at delta if absent, and returns the new value.
	IncrBy(ctx context.Context, key string, delta int64) (int64, error)

	// ZIncrBy atomically adds delta to member's weight within the
	// ranking at key, creating the entry at delta if absent, and
	// returns the new weight.
	ZIncrBy(ctx context.Context, key, member string, delta int64) (int64, error)

	// TopK returns up to k entries of the ranking at key, descending by
	// weight. An absent ranking yields an empty slice.
	TopK(ctx context.Context, key string, k int) ([]RankedEntry, error)

	// Keys returns every key starting with prefix, in no particular
	// order. Used only during reset.
	Keys(ctx context.Context, prefix string) ([]string, error)

	// Del removes the given keys. Absent keys are ignored.
	Del(ctx context.Context, keys ...string) error
}
