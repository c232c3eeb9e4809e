// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package kvs defines the key-value store the aggregation core runs on.

The store is used two ways at once: as a read-through cache in front of
MySQL (citizen records, candidate mirrors) and as the authoritative live
counter store (tallies, keyword rankings, per-citizen cast counters).

# Contract

Store is a small interface: Get/Set/MGet for plain values, IncrBy for
atomic counters, ZIncrBy/TopK for weighted rankings, and Keys/Del for the
prefix sweeps reset performs. Atomicity of IncrBy and ZIncrBy is the only
concurrency guarantee the rest of the system relies on; there are no
locks, leases, or transactions above it.

# Implementations

  - RedisStore: the production backend (go-redis v9)
  - MemoryStore: an in-process backend with deterministic TopK ordering,
    used throughout the tests

The two differ only in tie-break order for equal ranking weights:
MemoryStore sorts ties lexicographically ascending, Redis by its own
sorted-set ordering. Nothing in the application depends on tie order.
*/
package kvs
