// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 8080)
  - DatabaseDSN: MySQL connection string (required)
  - RedisAddr: Redis address (default: localhost:6379)
  - SessionSecret: Session cookie secret
  - PublicDir: Static asset directory (default: ./public)

# CLI Flags

	-p               Server port
	-d               MySQL DSN
	-r               Redis address
	--session-secret Session cookie secret
	--public         Static asset directory

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	DATABASE_DSN   → -d
	REDIS_ADDR     → -r
	SESSION_SECRET → --session-secret
	PUBLIC_DIR     → --public

CLI flags take precedence over environment variables. Only the MySQL DSN
is required; everything else has a development default.
*/
package cliparse
