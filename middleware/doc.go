// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware for the vote server.

# Middleware

  - WithLogging: structured request/completion logs with a per-request id
  - WithSession: attaches a gorilla/sessions cookie to every visitor

# Helpers

GetClientIP resolves the client address through X-Forwarded-For and
X-Real-IP before falling back to RemoteAddr.
*/
package middleware
