// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/danielhkuo/rapid-tally/kvs"
	"github.com/danielhkuo/rapid-tally/models"
)

// ErrCandidateNotFound is returned by the registry lookups.
var ErrCandidateNotFound = errors.New("election: candidate not found")

// Registry holds the fixed candidate list. The list is loaded from MySQL
// once per process and kept in memory; Reload (driven by reset) is the
// single writer. Name lookups go through the cache mirror instead of the
// in-memory table because that is the record vote submission trusts: a
// candidate that was never mirrored is unvotable.
type Registry struct {
	db *sql.DB
	kv kvs.Store

	mu         sync.RWMutex
	candidates []models.Candidate
}

func NewRegistry(db *sql.DB, kv kvs.Store) *Registry {
	return &Registry{db: db, kv: kv}
}

const candidatesQuery = "SELECT id, name, political_party, sex FROM candidates"

// Load populates the candidate list on first call and is a no-op after.
func (r *Registry) Load(ctx context.Context) error {
	r.mu.RLock()
	loaded := r.candidates != nil
	r.mu.RUnlock()
	if loaded {
		return nil
	}
	return r.Reload(ctx)
}

// Reload replaces the in-memory list with a fresh read from MySQL.
func (r *Registry) Reload(ctx context.Context) error {
	rows, err := r.db.QueryContext(ctx, candidatesQuery)
	if err != nil {
		return fmt.Errorf("load candidates: %w", err)
	}
	defer rows.Close()

	candidates := []models.Candidate{}
	for rows.Next() {
		var c models.Candidate
		if err := rows.Scan(&c.ID, &c.Name, &c.PoliticalParty, &c.Sex); err != nil {
			return fmt.Errorf("scan candidate: %w", err)
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("load candidates: %w", err)
	}

	r.mu.Lock()
	r.candidates = candidates
	r.mu.Unlock()
	return nil
}

// All returns the loaded candidate list in table order.
func (r *Registry) All() []models.Candidate {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.candidates
}

// FindByID scans the in-memory list.
func (r *Registry) FindByID(id int) (models.Candidate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.candidates {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Candidate{}, ErrCandidateNotFound
}

// FindByName resolves the free-text name a voter typed via the cache
// mirror. An absent key is an ordinary not-found, not a store fault.
func (r *Registry) FindByName(ctx context.Context, name string) (models.Candidate, error) {
	record, err := r.kv.Get(ctx, candidateMirrorKey(name))
	if errors.Is(err, kvs.ErrNotFound) {
		return models.Candidate{}, ErrCandidateNotFound
	}
	if err != nil {
		return models.Candidate{}, fmt.Errorf("candidate cache lookup: %w", err)
	}
	return models.DecodeCandidate(name, record)
}

// Mirror writes every loaded candidate's compact record into the cache.
// Only reset calls this; name lookups fail until it has run.
func (r *Registry) Mirror(ctx context.Context) error {
	for _, c := range r.All() {
		if err := r.kv.Set(ctx, candidateMirrorKey(c.Name), models.EncodeCandidate(c)); err != nil {
			return fmt.Errorf("mirror candidate %q: %w", c.Name, err)
		}
	}
	return nil
}
