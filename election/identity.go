// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/danielhkuo/rapid-tally/kvs"
	"github.com/danielhkuo/rapid-tally/models"
)

// ErrCitizenNotFound is returned by Resolve for an unknown mynumber.
var ErrCitizenNotFound = errors.New("election: citizen not found")

// Identity resolves a citizen identifier to a cached identity record,
// lazily populated from MySQL on first lookup and never invalidated.
// Citizen rows are immutable reference data, so the cache entry stays
// valid for the whole process lifetime and survives reset.
type Identity struct {
	db *sql.DB
	kv kvs.Store
}

func NewIdentity(db *sql.DB, kv kvs.Store) *Identity {
	return &Identity{db: db, kv: kv}
}

const citizenQuery = "SELECT name, address, votes FROM users WHERE mynumber = ?"

// Resolve returns the citizen for mynumber, reading through the cache.
// A miss on both the cache and MySQL yields ErrCitizenNotFound.
func (s *Identity) Resolve(ctx context.Context, mynumber string) (models.Citizen, error) {
	record, err := s.kv.Get(ctx, citizenKey(mynumber))
	switch {
	case err == nil:
		return models.DecodeCitizen(mynumber, record)
	case !errors.Is(err, kvs.ErrNotFound):
		return models.Citizen{}, fmt.Errorf("citizen cache lookup: %w", err)
	}

	c := models.Citizen{MyNumber: mynumber}
	err = s.db.QueryRowContext(ctx, citizenQuery, mynumber).
		Scan(&c.Name, &c.Address, &c.VoteQuota)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Citizen{}, ErrCitizenNotFound
	}
	if err != nil {
		return models.Citizen{}, fmt.Errorf("citizen lookup: %w", err)
	}

	// Write-through with no expiry. Re-encoding an identical citizen on a
	// racing request is harmless.
	if err := s.kv.Set(ctx, citizenKey(mynumber), models.EncodeCitizen(c)); err != nil {
		return models.Citizen{}, fmt.Errorf("citizen cache write: %w", err)
	}

	return c, nil
}
