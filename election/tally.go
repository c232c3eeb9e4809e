// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"context"
	"fmt"
	"strconv"

	"github.com/danielhkuo/rapid-tally/kvs"
)

// Tally is the live aggregation engine: unbounded non-negative integer
// counters plus weighted keyword rankings, all living in the key-value
// store. Each mutation is a single atomic store operation; there is no
// cross-counter transaction.
type Tally struct {
	kv kvs.Store
}

func NewTally(kv kvs.Store) *Tally {
	return &Tally{kv: kv}
}

// Increment atomically adds delta to the named counter, creating it at
// delta if absent.
func (t *Tally) Increment(ctx context.Context, key string, delta int) error {
	if _, err := t.kv.IncrBy(ctx, key, int64(delta)); err != nil {
		return fmt.Errorf("increment %s: %w", key, err)
	}
	return nil
}

// Read returns the counter value, 0 if absent.
func (t *Tally) Read(ctx context.Context, key string) (int, error) {
	counts, err := t.ReadMany(ctx, []string{key})
	if err != nil {
		return 0, err
	}
	return counts[0], nil
}

// ReadMany bulk-reads counters in one round trip, aligned with keys.
// Absent counters read as 0.
func (t *Tally) ReadMany(ctx context.Context, keys []string) ([]int, error) {
	vals, err := t.kv.MGet(ctx, keys...)
	if err != nil {
		return nil, fmt.Errorf("read counters: %w", err)
	}
	counts := make([]int, len(keys))
	for i, v := range vals {
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("counter %s holds %q: %w", keys[i], v, err)
		}
		counts[i] = n
	}
	return counts, nil
}

// BumpKeyword atomically adds delta to keyword's weight in the named
// ranking.
func (t *Tally) BumpKeyword(ctx context.Context, key, keyword string, delta int) error {
	if _, err := t.kv.ZIncrBy(ctx, key, keyword, int64(delta)); err != nil {
		return fmt.Errorf("bump keyword on %s: %w", key, err)
	}
	return nil
}

// TopKeywords returns up to k keywords of the named ranking, heaviest
// first.
func (t *Tally) TopKeywords(ctx context.Context, key string, k int) ([]kvs.RankedEntry, error) {
	entries, err := t.kv.TopK(ctx, key, k)
	if err != nil {
		return nil, fmt.Errorf("top keywords on %s: %w", key, err)
	}
	return entries, nil
}
