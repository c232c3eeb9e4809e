// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/danielhkuo/rapid-tally/election"
	"github.com/danielhkuo/rapid-tally/kvs"
	"github.com/danielhkuo/rapid-tally/models"
)

// candidatesQuery mirrors the registry's load query for mock
// expectations.
const candidatesQuery = "SELECT id, name, political_party, sex FROM candidates"

// Candidates is the fixture candidate table used across handler tests.
func Candidates() []models.Candidate {
	return []models.Candidate{
		{ID: 1, Name: "鈴木 一郎", PoliticalParty: models.PoliticalParties[0], Sex: models.SexMale},
		{ID: 2, Name: "田中 美咲", PoliticalParty: models.PoliticalParties[1], Sex: models.SexFemale},
		{ID: 3, Name: "高橋 健太", PoliticalParty: models.PoliticalParties[0], Sex: models.SexMale},
		{ID: 4, Name: "伊藤 直樹", PoliticalParty: models.PoliticalParties[2], Sex: models.SexMale},
		{ID: 5, Name: "渡辺 結衣", PoliticalParty: models.PoliticalParties[3], Sex: models.SexFemale},
		{ID: 6, Name: "山本 さくら", PoliticalParty: models.PoliticalParties[1], Sex: models.SexFemale},
	}
}

// NewElection wires an election core to a mocked MySQL handle and an
// in-memory key-value store.
func NewElection(t *testing.T) (*election.Election, sqlmock.Sqlmock, *kvs.MemoryStore) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	if err != nil {
		t.Fatalf("Failed to open mock database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	store := kvs.NewMemoryStore()
	return election.New(db, store), mock, store
}

// ExpectReset registers the SQL expectations one Reset run consumes: the
// vote-history delete and the candidate reload, answered with the
// fixture table.
func ExpectReset(mock sqlmock.Sqlmock) {
	mock.ExpectExec("DELETE FROM votes").
		WillReturnResult(sqlmock.NewResult(0, 0))

	rows := sqlmock.NewRows([]string{"id", "name", "political_party", "sex"})
	for _, c := range Candidates() {
		rows.AddRow(c.ID, c.Name, c.PoliticalParty, c.Sex)
	}
	mock.ExpectQuery(candidatesQuery).WillReturnRows(rows)
}

// Bootstrap brings a fresh election to the post-initialize baseline:
// candidate list loaded, mirrors written, every counter zeroed.
func Bootstrap(t *testing.T, e *election.Election, mock sqlmock.Sqlmock) {
	t.Helper()

	ExpectReset(mock)
	if err := e.Reset(context.Background()); err != nil {
		t.Fatalf("Failed to bootstrap election state: %v", err)
	}
}

// SeedCitizen puts a citizen record straight into the identity cache.
func SeedCitizen(t *testing.T, store *kvs.MemoryStore, c models.Citizen) {
	t.Helper()

	err := store.Set(context.Background(), "users."+c.MyNumber, models.EncodeCitizen(c))
	if err != nil {
		t.Fatalf("Failed to seed citizen: %v", err)
	}
}

// FormRequest creates an HTTP test request carrying a URL-encoded form
func FormRequest(method, path string, form url.Values) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertBodyContains checks that the response body contains the substring
func AssertBodyContains(t *testing.T, w *httptest.ResponseRecorder, substr string) {
	t.Helper()
	if !strings.Contains(w.Body.String(), substr) {
		t.Errorf("Expected body to contain %q. Body: %s", substr, w.Body.String())
	}
}
