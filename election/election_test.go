// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/danielhkuo/rapid-tally/kvs"
	"github.com/danielhkuo/rapid-tally/models"
)

var (
	testAlice = models.Candidate{
		ID:             1,
		Name:           "Alice",
		PoliticalParty: "PartyX",
		Sex:            models.SexMale,
	}
	testBob = models.Candidate{
		ID:             2,
		Name:           "Bob",
		PoliticalParty: "PartyY",
		Sex:            models.SexFemale,
	}
)

// seedVoting puts a citizen and two candidate mirrors straight into the
// cache, the state a bootstrapped system would be in.
func seedVoting(t *testing.T, store *kvs.MemoryStore) {
	t.Helper()
	ctx := context.Background()
	store.Set(ctx, "users.0001", models.EncodeCitizen(models.Citizen{
		MyNumber: "0001", Name: "Carol", Address: "Tokyo", VoteQuota: 10,
	}))
	store.Set(ctx, "candidates.Alice", models.EncodeCandidate(testAlice))
	store.Set(ctx, "candidates.Bob", models.EncodeCandidate(testBob))
}

func validSubmission() models.VoteSubmission {
	return models.VoteSubmission{
		MyNumber:  "0001",
		Name:      "Carol",
		Address:   "Tokyo",
		Candidate: "Alice",
		Keyword:   "economy",
		VoteCount: 3,
	}
}

// readCounters snapshots the counters a successful submission touches.
func readCounters(t *testing.T, e *Election) map[string]int {
	t.Helper()
	ctx := context.Background()
	keys := []string{
		voteCastKey("0001"),
		CandidateResultKey(testAlice.ID),
		PartyResultKey(testAlice.PoliticalParty),
		SexResultKey(testAlice.Sex),
	}
	counts, err := e.Tally.ReadMany(ctx, keys)
	if err != nil {
		t.Fatalf("ReadMany failed: %v", err)
	}
	snapshot := make(map[string]int, len(keys))
	for i, k := range keys {
		snapshot[k] = counts[i]
	}
	return snapshot
}

func TestSubmitVoteApplies(t *testing.T) {
	ctx := context.Background()
	e, _, store := newTestElection(t)
	seedVoting(t, store)

	if err := e.SubmitVote(ctx, validSubmission()); err != nil {
		t.Fatalf("SubmitVote failed: %v", err)
	}

	counts := readCounters(t, e)
	for key, want := range map[string]int{
		"users.votes.0001":     3,
		"results.candidates.1": 3,
		"results.party.PartyX": 3,
		"results.sex.M":        3,
	} {
		if counts[key] != want {
			t.Errorf("%s = %d, want %d", key, counts[key], want)
		}
	}

	for _, key := range []string{
		CandidateKeywordKey(testAlice.ID),
		PartyKeywordKey(testAlice.PoliticalParty),
	} {
		entries, err := e.Tally.TopKeywords(ctx, key, 11)
		if err != nil {
			t.Fatalf("TopKeywords failed: %v", err)
		}
		if len(entries) != 1 || entries[0].Member != "economy" || entries[0].Weight != 3 {
			t.Errorf("%s = %+v, want economy=3", key, entries)
		}
	}
}

func TestSubmitVoteAccumulates(t *testing.T) {
	ctx := context.Background()
	e, _, store := newTestElection(t)
	seedVoting(t, store)

	if err := e.SubmitVote(ctx, validSubmission()); err != nil {
		t.Fatalf("first SubmitVote failed: %v", err)
	}
	second := validSubmission()
	second.VoteCount = 7 // exactly reaches the quota of 10
	second.Keyword = "pension"
	if err := e.SubmitVote(ctx, second); err != nil {
		t.Fatalf("second SubmitVote failed: %v", err)
	}

	counts := readCounters(t, e)
	if counts["users.votes.0001"] != 10 {
		t.Errorf("cast counter = %d, want 10", counts["users.votes.0001"])
	}
	if counts["results.candidates.1"] != 10 {
		t.Errorf("candidate tally = %d, want 10", counts["results.candidates.1"])
	}
}

func TestSubmitVoteRejections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.VoteSubmission)
		wantErr error
	}{
		{
			name:    "unknown citizen",
			mutate:  func(s *models.VoteSubmission) { s.MyNumber = "9999" },
			wantErr: ErrInvalidIdentity,
		},
		{
			name:    "name mismatch",
			mutate:  func(s *models.VoteSubmission) { s.Name = "Mallory" },
			wantErr: ErrInvalidIdentity,
		},
		{
			name:    "address mismatch",
			mutate:  func(s *models.VoteSubmission) { s.Address = "Osaka" },
			wantErr: ErrInvalidIdentity,
		},
		{
			name:    "quota exceeded",
			mutate:  func(s *models.VoteSubmission) { s.VoteCount = 11 },
			wantErr: ErrQuotaExceeded,
		},
		{
			// The quota check runs before candidate checks.
			name: "quota exceeded with blank candidate",
			mutate: func(s *models.VoteSubmission) {
				s.VoteCount = 11
				s.Candidate = ""
			},
			wantErr: ErrQuotaExceeded,
		},
		{
			name:    "blank candidate",
			mutate:  func(s *models.VoteSubmission) { s.Candidate = "" },
			wantErr: ErrCandidateBlank,
		},
		{
			name:    "unknown candidate",
			mutate:  func(s *models.VoteSubmission) { s.Candidate = "Nobody" },
			wantErr: ErrInvalidCandidate,
		},
		{
			name:    "blank keyword",
			mutate:  func(s *models.VoteSubmission) { s.Keyword = "" },
			wantErr: ErrKeywordBlank,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			e, mock, store := newTestElection(t)
			seedVoting(t, store)

			if tt.name == "unknown citizen" {
				mock.ExpectQuery(citizenQuery).
					WithArgs("9999").
					WillReturnError(sql.ErrNoRows)
			}

			sub := validSubmission()
			tt.mutate(&sub)

			err := e.SubmitVote(ctx, sub)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("got %v, want %v", err, tt.wantErr)
			}

			// No side effects on any rejection path.
			for key, n := range readCounters(t, e) {
				if n != 0 {
					t.Errorf("%s = %d after rejection, want 0", key, n)
				}
			}
			entries, _ := e.Tally.TopKeywords(ctx, CandidateKeywordKey(testAlice.ID), 11)
			if len(entries) != 0 {
				t.Errorf("keyword ranking mutated on rejection: %+v", entries)
			}
		})
	}
}

func TestSubmitVoteQuotaOverSecondSubmission(t *testing.T) {
	ctx := context.Background()
	e, _, store := newTestElection(t)
	seedVoting(t, store)

	if err := e.SubmitVote(ctx, validSubmission()); err != nil {
		t.Fatalf("first SubmitVote failed: %v", err)
	}
	before := readCounters(t, e)

	// 3 already cast; 8 more would total 11 > quota 10.
	second := validSubmission()
	second.VoteCount = 8
	if err := e.SubmitVote(ctx, second); !errors.Is(err, ErrQuotaExceeded) {
		t.Fatalf("got %v, want ErrQuotaExceeded", err)
	}

	after := readCounters(t, e)
	for key := range before {
		if after[key] != before[key] {
			t.Errorf("%s changed from %d to %d on rejected vote", key, before[key], after[key])
		}
	}
}
