// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Rapid Tally election server.

Rapid Tally is a vote-tallying web application for a national election.
Citizens identify themselves with their personal number, cast weighted
votes for candidates, and browse live result pages ranked by vote count,
political party, and sex. Counters and keyword leaderboards live in Redis;
MySQL remains the system of record for citizens and candidates.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_DSN="user:pass@tcp(localhost:3306)/rapid_tally" go run main.go

Or with flags:

	go run main.go -p 8080 -d "user:pass@tcp(localhost:3306)/rapid_tally" -r localhost:6379

# Configuration

Required settings:

  - DATABASE_DSN (-d): MySQL connection string

Optional settings:

  - PORT (-p): Server port (default: 8080)
  - REDIS_ADDR (-r): Redis address (default: localhost:6379)
  - SESSION_SECRET (--session-secret): Cookie session signing key
  - PUBLIC_DIR (--public): Static asset directory (default: ./public)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (results, voting, admin)
  - router: Route definitions using Go 1.22+ routing
  - middleware: Session, logging helpers
  - election: Vote acceptance, counters, candidate registry
  - kvs: Key-value store abstraction (Redis and in-memory)
  - models: Domain types and cache record codec
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
