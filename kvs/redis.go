// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package kvs

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisStore is the production Store, backed by a single Redis instance.
// Counters map to INCRBY, rankings to sorted sets. Redis applies commands
// one at a time, which is where the atomicity contract comes from.
type RedisStore struct {
	rdb *redis.Client
}

var _ Store = (*RedisStore)(nil)

func NewRedisStore(addr string) *RedisStore {
	return &RedisStore{
		rdb: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

// Ping verifies connectivity. Called once at startup.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	val, err := s.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	// No expiry: cache entries live for the whole benchmark run.
	return s.rdb.Set(ctx, key, value, 0).Err()
}

func (s *RedisStore) MGet(ctx context.Context, keys ...string) ([]string, error) {
	if len(keys) == 0 {
		return nil, nil
	}
	raw, err := s.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}
	vals := make([]string, len(raw))
	for i, v := range raw {
		if str, ok := v.(string); ok {
			vals[i] = str
		}
	}
	return vals, nil
}

func (s *RedisStore) IncrBy(ctx context.Context, key string, delta int64) (int64, error) {
	return s.rdb.IncrBy(ctx, key, delta).Result()
}

func (s *RedisStore) ZIncrBy(ctx context.Context, key, member string, delta int64) (int64, error) {
	weight, err := s.rdb.ZIncrBy(ctx, key, float64(delta), member).Result()
	if err != nil {
		return 0, err
	}
	return int64(weight), nil
}

func (s *RedisStore) TopK(ctx context.Context, key string, k int) ([]RankedEntry, error) {
	if k <= 0 {
		return nil, nil
	}
	raw, err := s.rdb.ZRevRangeWithScores(ctx, key, 0, int64(k-1)).Result()
	if err != nil {
		return nil, err
	}
	entries := make([]RankedEntry, len(raw))
	for i, z := range raw {
		member, _ := z.Member.(string)
		entries[i] = RankedEntry{Member: member, Weight: int64(z.Score)}
	}
	return entries, nil
}

func (s *RedisStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	return s.rdb.Keys(ctx, prefix+"*").Result()
}

func (s *RedisStore) Del(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return s.rdb.Del(ctx, keys...).Err()
}
