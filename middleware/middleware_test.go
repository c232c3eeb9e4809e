// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/sessions"
)

func TestWithLoggingCallsNext(t *testing.T) {
	called := false
	handler := WithLogging(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest("GET", "/vote", nil)
	w := httptest.NewRecorder()
	handler(w, req)

	if !called {
		t.Error("next handler was not called")
	}
	if w.Code != http.StatusTeapot {
		t.Errorf("expected status %d, got %d", http.StatusTeapot, w.Code)
	}
}

func TestWithSessionSetsCookie(t *testing.T) {
	store := sessions.NewCookieStore([]byte("test-secret"))
	handler := WithSession(store, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	handler(w, req)

	cookies := w.Result().Cookies()
	found := false
	for _, c := range cookies {
		if c.Name == SessionName {
			found = true
		}
	}
	if !found {
		t.Errorf("expected %s cookie, got %v", SessionName, cookies)
	}
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name     string
		headers  map[string]string
		remote   string
		expected string
	}{
		{
			name:     "x-forwarded-for single",
			headers:  map[string]string{"X-Forwarded-For": "203.0.113.5"},
			remote:   "10.0.0.1:1234",
			expected: "203.0.113.5",
		},
		{
			name:     "x-forwarded-for chain",
			headers:  map[string]string{"X-Forwarded-For": "203.0.113.5, 10.0.0.2"},
			remote:   "10.0.0.1:1234",
			expected: "203.0.113.5",
		},
		{
			name:     "x-real-ip",
			headers:  map[string]string{"X-Real-IP": "198.51.100.7"},
			remote:   "10.0.0.1:1234",
			expected: "198.51.100.7",
		},
		{
			name:     "remote addr fallback",
			remote:   "10.0.0.1:1234",
			expected: "10.0.0.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			if got := GetClientIP(req); got != tt.expected {
				t.Errorf("GetClientIP = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestWithSessionSurvivesGarbageCookie(t *testing.T) {
	store := sessions.NewCookieStore([]byte("test-secret"))
	handler := WithSession(store, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Cookie", SessionName+"="+strings.Repeat("x", 40))
	w := httptest.NewRecorder()
	handler(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200 despite bad cookie, got %d", w.Code)
	}
}
