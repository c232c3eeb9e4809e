// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/danielhkuo/rapid-tally/cliparse"
	"github.com/danielhkuo/rapid-tally/election"
	"github.com/danielhkuo/rapid-tally/handlers"
	"github.com/danielhkuo/rapid-tally/middleware"
)

func NewRouter(e *election.Election, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	sessionStore := sessions.NewCookieStore([]byte(cfg.SessionSecret))

	// Initialize handlers
	resultsHandler := handlers.NewResultsHandler(e)
	votingHandler := handlers.NewVotingHandler(e)
	adminHandler := handlers.NewAdminHandler(e)

	wrap := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.WithSession(sessionStore, h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Result pages
	mux.HandleFunc("GET /{$}", wrap(resultsHandler.Index))
	mux.HandleFunc("GET /candidates/{id}", wrap(resultsHandler.Candidate))
	mux.HandleFunc("GET /political_parties/{name}", wrap(resultsHandler.PoliticalParty))

	// Voting
	mux.HandleFunc("GET /vote", wrap(votingHandler.Form))
	mux.HandleFunc("POST /vote", wrap(votingHandler.Submit))

	// Benchmark reset
	mux.HandleFunc("GET /initialize", wrap(adminHandler.Initialize))

	// Static assets; "GET /{$}" above keeps the results page off this route
	mux.Handle("GET /", http.FileServer(http.Dir(cfg.PublicDir)))

	return mux
}
