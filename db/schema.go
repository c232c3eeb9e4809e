// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS. Statements run one at
// a time because the MySQL driver rejects multi-statement Exec by default.
func CreateSchema(db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	return nil
}

var schema = []string{
	// Citizens eligible to vote. votes is the cumulative quota, not a
	// running count.
	`CREATE TABLE IF NOT EXISTS users (
    id INT NOT NULL AUTO_INCREMENT PRIMARY KEY,
    name VARCHAR(255) NOT NULL,
    address VARCHAR(255) NOT NULL,
    mynumber VARCHAR(255) NOT NULL UNIQUE,
    votes INT NOT NULL
)`,

	// The fixed candidate table, loaded once per process.
	`CREATE TABLE IF NOT EXISTS candidates (
    id INT NOT NULL AUTO_INCREMENT PRIMARY KEY,
    name VARCHAR(255) NOT NULL,
    political_party VARCHAR(255) NOT NULL,
    sex VARCHAR(8) NOT NULL
)`,

	// Legacy per-vote history. Nothing reads it anymore; reset still
	// clears it so external consumers see a clean slate.
	`CREATE TABLE IF NOT EXISTS votes (
    id INT NOT NULL AUTO_INCREMENT PRIMARY KEY,
    user_id INT NOT NULL,
    candidate_id INT NOT NULL,
    keyword VARCHAR(255) NOT NULL
)`,
}
