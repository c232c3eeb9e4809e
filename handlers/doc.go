// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP request handlers for the vote server.

The handlers are deliberately thin: every interesting decision lives in
the election package, and this layer only parses requests and renders
templates.

# Handler Types

Each handler is a struct holding the injected election core:

  - ResultsHandler: ranked results, candidate and party detail pages
  - VotingHandler: the submission form and POST /vote
  - AdminHandler: the between-runs reset endpoint

Handlers are created via constructor functions:

	resultsHandler := handlers.NewResultsHandler(e)

# Routes

	GET  /                          → ResultsHandler.Index
	GET  /candidates/{id}           → ResultsHandler.Candidate
	GET  /political_parties/{name}  → ResultsHandler.PoliticalParty
	GET  /vote                      → VotingHandler.Form
	POST /vote                      → VotingHandler.Submit
	GET  /initialize                → AdminHandler.Initialize

# Rendering

Pages are server-rendered from templates embedded at build time
(templates/*.html). POST /vote always answers with the re-rendered form
carrying the outcome message; the five rejection messages and the
success message come from the models package.
*/
package handlers
