// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package election is the vote-aggregation core.

Everything in the HTTP layer is thin plumbing around this package. The
key-value store is both a read-through cache in front of MySQL and the
authoritative live counter store; MySQL is read-only at request time
except for the reset procedure.

# Components

  - Identity: resolves a mynumber to a cached citizen record, read
    through from MySQL on first lookup, never invalidated
  - Registry: the fixed candidate table, loaded once per process and
    mirrored into the cache for name-based lookup at vote time
  - Tally: atomic counters (per candidate, party, sex and per-citizen
    cast count) and weighted keyword rankings
  - Election.SubmitVote: the submission state machine
  - Election.Reset: clears all run state to the empty baseline

# Vote Submission

SubmitVote validates in a fixed, short-circuiting order and maps every
failure to one of five sentinel errors:

	ErrInvalidIdentity  unknown citizen, or name/address mismatch
	ErrQuotaExceeded    cast + vote_count would exceed the quota
	ErrCandidateBlank   candidate field empty
	ErrInvalidCandidate name not present in the cache mirror
	ErrKeywordBlank     reason field empty

On success it bumps the citizen's cast counter, the candidate, party and
sex tallies, and the candidate- and party-scoped keyword rankings, each
by vote_count. Every bump is an atomic store operation; there is no
transaction across them.

# Keys

All state lives under fixed key prefixes (users., users.votes.,
candidates., results.*, keywords.*). The exported *Key helpers build the
result and keyword keys for the handlers' bulk reads.
*/
package election
