// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"context"
	"database/sql"
	"errors"

	"github.com/danielhkuo/rapid-tally/kvs"
	"github.com/danielhkuo/rapid-tally/models"
)

// Vote rejection errors. All five are user input errors surfaced as a
// re-rendered form, never as server faults.
var (
	ErrInvalidIdentity  = errors.New("election: invalid identity")
	ErrQuotaExceeded    = errors.New("election: vote quota exceeded")
	ErrCandidateBlank   = errors.New("election: candidate is blank")
	ErrInvalidCandidate = errors.New("election: invalid candidate")
	ErrKeywordBlank     = errors.New("election: keyword is blank")
)

// Election wires the aggregation subsystem together: identity resolution,
// the candidate registry and the live tallies, all sharing one MySQL
// handle and one key-value store. Constructed once at process start and
// injected into the handlers.
type Election struct {
	Identity *Identity
	Registry *Registry
	Tally    *Tally

	db *sql.DB
	kv kvs.Store
}

func New(db *sql.DB, kv kvs.Store) *Election {
	return &Election{
		Identity: NewIdentity(db, kv),
		Registry: NewRegistry(db, kv),
		Tally:    NewTally(kv),
		db:       db,
		kv:       kv,
	}
}

// SubmitVote runs the vote submission state machine. Checks short-circuit
// in a fixed order; the first failing one wins and nothing is mutated on
// any rejection path.
//
// The apply step bumps four counters and two rankings. Each bump is
// individually atomic but there is no transaction across them; a crash
// mid-sequence leaves partial state.
func (e *Election) SubmitVote(ctx context.Context, sub models.VoteSubmission) error {
	citizen, err := e.Identity.Resolve(ctx, sub.MyNumber)
	if errors.Is(err, ErrCitizenNotFound) {
		return ErrInvalidIdentity
	}
	if err != nil {
		return err
	}
	if citizen.Name != sub.Name || citizen.Address != sub.Address {
		return ErrInvalidIdentity
	}

	cast, err := e.Tally.Read(ctx, voteCastKey(sub.MyNumber))
	if err != nil {
		return err
	}
	if cast+sub.VoteCount > citizen.VoteQuota {
		return ErrQuotaExceeded
	}

	if sub.Candidate == "" {
		return ErrCandidateBlank
	}
	candidate, err := e.Registry.FindByName(ctx, sub.Candidate)
	if errors.Is(err, ErrCandidateNotFound) {
		return ErrInvalidCandidate
	}
	if err != nil {
		return err
	}

	if sub.Keyword == "" {
		return ErrKeywordBlank
	}

	delta := sub.VoteCount
	if err := e.Tally.Increment(ctx, voteCastKey(sub.MyNumber), delta); err != nil {
		return err
	}
	if err := e.Tally.Increment(ctx, CandidateResultKey(candidate.ID), delta); err != nil {
		return err
	}
	if err := e.Tally.Increment(ctx, PartyResultKey(candidate.PoliticalParty), delta); err != nil {
		return err
	}
	if err := e.Tally.Increment(ctx, SexResultKey(candidate.Sex), delta); err != nil {
		return err
	}
	if err := e.Tally.BumpKeyword(ctx, CandidateKeywordKey(candidate.ID), sub.Keyword, delta); err != nil {
		return err
	}
	if err := e.Tally.BumpKeyword(ctx, PartyKeywordKey(candidate.PoliticalParty), sub.Keyword, delta); err != nil {
		return err
	}

	return nil
}
