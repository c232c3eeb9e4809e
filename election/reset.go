// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"context"
	"fmt"

	"github.com/danielhkuo/rapid-tally/models"
)

// Reset clears all run state to a known empty baseline. It is an
// administrative operation meant to run with no in-flight votes; nothing
// guards against concurrent submissions.
//
// Identity cache entries (users.<mynumber>) are deliberately left alone:
// citizen identity and quota are immutable reference data, not per-run
// state.
func (e *Election) Reset(ctx context.Context) error {
	// The votes table is a legacy artifact. Nothing writes to it anymore,
	// but external consumers expect a clean slate.
	if _, err := e.db.ExecContext(ctx, "DELETE FROM votes"); err != nil {
		return fmt.Errorf("clear vote history: %w", err)
	}

	if err := e.Registry.Reload(ctx); err != nil {
		return err
	}

	for _, prefix := range []string{
		candidateKeywordKeyPrefix,
		partyKeywordKeyPrefix,
		voteCastKeyPrefix,
	} {
		keys, err := e.kv.Keys(ctx, prefix)
		if err != nil {
			return fmt.Errorf("enumerate %s*: %w", prefix, err)
		}
		if err := e.kv.Del(ctx, keys...); err != nil {
			return fmt.Errorf("purge %s*: %w", prefix, err)
		}
	}

	if err := e.Registry.Mirror(ctx); err != nil {
		return err
	}
	for _, c := range e.Registry.All() {
		if err := e.kv.Set(ctx, CandidateResultKey(c.ID), "0"); err != nil {
			return fmt.Errorf("zero candidate tally %d: %w", c.ID, err)
		}
	}

	for _, party := range models.PoliticalParties {
		if err := e.kv.Set(ctx, PartyResultKey(party), "0"); err != nil {
			return fmt.Errorf("zero party tally %q: %w", party, err)
		}
	}

	for _, sex := range models.Sexes {
		if err := e.kv.Set(ctx, SexResultKey(sex), "0"); err != nil {
			return fmt.Errorf("zero sex tally %q: %w", sex, err)
		}
	}

	return nil
}
