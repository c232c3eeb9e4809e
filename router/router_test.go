// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/rapid-tally/cliparse"
	"github.com/danielhkuo/rapid-tally/testutil"
)

func testConfig() cliparse.Config {
	return cliparse.Config{
		Port:          8080,
		DatabaseDSN:   "tally:tally@tcp(localhost:3306)/tally",
		RedisAddr:     "localhost:6379",
		SessionSecret: "test-secret",
		PublicDir:     "./public",
	}
}

func TestRoutes(t *testing.T) {
	e, mock, _ := testutil.NewElection(t)
	testutil.Bootstrap(t, e, mock)

	mux := NewRouter(e, testConfig())

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{"health check", "GET", "/health", 200},
		{"results page", "GET", "/", 200},
		{"vote form", "GET", "/vote", 200},
		{"candidate detail", "GET", "/candidates/1", 200},
		{"candidate redirect", "GET", "/candidates/999", 302},
		{"unknown static path", "GET", "/no-such-asset.css", 404},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("%s %s: expected status %d, got %d",
					tt.method, tt.path, tt.expectedStatus, w.Code)
			}
		})
	}
}

func TestRoutesSetSessionCookie(t *testing.T) {
	e, mock, _ := testutil.NewElection(t)
	testutil.Bootstrap(t, e, mock)

	mux := NewRouter(e, testConfig())

	req := httptest.NewRequest("GET", "/vote", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if len(w.Result().Cookies()) == 0 {
		t.Error("expected a session cookie on page routes")
	}
}
