// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/danielhkuo/rapid-tally/kvs"
	"github.com/danielhkuo/rapid-tally/models"
)

// newTestElection returns an election wired to a mocked MySQL handle and
// an in-memory key-value store. Callers set query expectations on the
// mock; a cleanup closes the handle.
func newTestElection(t *testing.T) (*Election, sqlmock.Sqlmock, *kvs.MemoryStore) {
	t.Helper()

	// sqlmock defaults to regex matching of query strings;
	// QueryMatcherEqual does a full case sensitive match instead.
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })

	store := kvs.NewMemoryStore()
	return New(db, store), mock, store
}

func TestResolveCacheMiss(t *testing.T) {
	ctx := context.Background()
	e, mock, store := newTestElection(t)

	mock.ExpectQuery(citizenQuery).
		WithArgs("0001").
		WillReturnRows(sqlmock.NewRows([]string{"name", "address", "votes"}).
			AddRow("山本 太郎", "東京都1-2-3", 10))

	c, err := e.Identity.Resolve(ctx, "0001")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	want := models.Citizen{MyNumber: "0001", Name: "山本 太郎", Address: "東京都1-2-3", VoteQuota: 10}
	if c != want {
		t.Errorf("got %+v, want %+v", c, want)
	}

	// The record was written through to the cache.
	record, err := store.Get(ctx, "users.0001")
	if err != nil {
		t.Fatalf("cache entry missing: %v", err)
	}
	if record != "山本 太郎:東京都1-2-3:10" {
		t.Errorf("unexpected cache record %q", record)
	}

	// A second resolve is served from the cache; no further DB
	// expectation is set, so a query would fail the mock.
	c2, err := e.Identity.Resolve(ctx, "0001")
	if err != nil {
		t.Fatalf("second Resolve failed: %v", err)
	}
	if c2 != want {
		t.Errorf("cached resolve mismatch: %+v", c2)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestResolveCacheHit(t *testing.T) {
	ctx := context.Background()
	e, mock, store := newTestElection(t)

	store.Set(ctx, "users.0002", "佐藤 花子:大阪府4-5-6:7")

	c, err := e.Identity.Resolve(ctx, "0002")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if c.Name != "佐藤 花子" || c.VoteQuota != 7 {
		t.Errorf("unexpected citizen %+v", c)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestResolveNotFound(t *testing.T) {
	ctx := context.Background()
	e, mock, _ := newTestElection(t)

	mock.ExpectQuery(citizenQuery).
		WithArgs("9999").
		WillReturnError(sql.ErrNoRows)

	_, err := e.Identity.Resolve(ctx, "9999")
	if !errors.Is(err, ErrCitizenNotFound) {
		t.Errorf("expected ErrCitizenNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestResolveMalformedCacheRecord(t *testing.T) {
	ctx := context.Background()
	e, _, store := newTestElection(t)

	store.Set(ctx, "users.0003", "not-a-citizen-record")

	if _, err := e.Identity.Resolve(ctx, "0003"); err == nil {
		t.Error("expected decode error for malformed cache record")
	}
}
