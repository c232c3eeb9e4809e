// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db creates the MySQL schema.

Three tables: users (citizens with their vote quotas), candidates (the
fixed candidate list) and votes (legacy per-vote history, cleared on
reset, otherwise untouched). Benchmark deployments arrive with these
tables already seeded; CreateSchema is idempotent so running it against
a seeded database is harmless.
*/
package db
