// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP routes using Go 1.22+ routing.

NewRouter wires the handlers to their paths, wraps each page route in
the logging and session middleware, and serves static assets from the
configured public directory. /health stays unwrapped so liveness probes
don't pollute the request log.
*/
package router
