// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package kvs

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// MemoryStore is an in-process Store. It holds plain values and rankings
// in mutex-guarded maps; every mutation happens under the lock, so
// increments are atomic. Nothing is ever evicted. Tests run against it so
// they need no live Redis.
type MemoryStore struct {
	mu       sync.RWMutex
	values   map[string]string
	rankings map[string]map[string]int64
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		values:   make(map[string]string),
		rankings: make(map[string]map[string]int64),
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *MemoryStore) MGet(_ context.Context, keys ...string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	vals := make([]string, len(keys))
	for i, k := range keys {
		vals[i] = s.values[k]
	}
	return vals, nil
}

func (s *MemoryStore) IncrBy(_ context.Context, key string, delta int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	if v, ok := s.values[key]; ok {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("kvs: value at %q is not an integer: %w", key, err)
		}
		n = parsed
	}
	n += delta
	s.values[key] = strconv.FormatInt(n, 10)
	return n, nil
}

func (s *MemoryStore) ZIncrBy(_ context.Context, key, member string, delta int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ranking, ok := s.rankings[key]
	if !ok {
		ranking = make(map[string]int64)
		s.rankings[key] = ranking
	}
	ranking[member] += delta
	return ranking[member], nil
}

// TopK orders by weight descending. Equal weights tie-break
// lexicographically ascending by member, so results are deterministic.
func (s *MemoryStore) TopK(_ context.Context, key string, k int) ([]RankedEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ranking := s.rankings[key]
	entries := make([]RankedEntry, 0, len(ranking))
	for member, weight := range ranking {
		entries = append(entries, RankedEntry{Member: member, Weight: weight})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Weight != entries[j].Weight {
			return entries[i].Weight > entries[j].Weight
		}
		return entries[i].Member < entries[j].Member
	})
	if k >= 0 && k < len(entries) {
		entries = entries[:k]
	}
	return entries, nil
}

func (s *MemoryStore) Keys(_ context.Context, prefix string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var keys []string
	for k := range s.values {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	for k := range s.rankings {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	return keys, nil
}

func (s *MemoryStore) Del(_ context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range keys {
		delete(s.values, k)
		delete(s.rankings, k)
	}
	return nil
}
