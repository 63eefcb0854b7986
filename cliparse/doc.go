// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# CLI Flags

	-p                 Server port (default: 5000)
	-d                 Database URL (default: <data>/valentine.db for sqlite)
	-t                 Database type: sqlite or postgres (default: sqlite)
	-data              Directory for JSON response files (default: data)
	-static            Built front-end directory (default: ../frontend/dist)
	-secret            Word that unlocks the /responses endpoints
	-codeword          Word that unlocks /api/teddy-responses
	-blocked-referrers Comma-separated referrer substrings denied on teddy responses
	-visit-salt        Salt for visitor IP hashing
	-tz                Time zone for /api/today (default: Local)
	-debug             Debug logging

# Environment Variables

Flags fall back to environment variables:

	PORT              → -p
	DATABASE_URL      → -d
	DATABASE_TYPE     → -t
	DATA_DIR          → -data
	STATIC_DIR        → -static
	RESPONSES_SECRET  → -secret
	TEDDY_CODEWORD    → -codeword
	BLOCKED_REFERRERS → -blocked-referrers
	VISIT_SALT        → -visit-salt
	TZ_NAME           → -tz
	DEBUG             → -debug

CLI flags take precedence over environment variables. main loads a .env
file (if present) before ParseFlags runs.

# Validation

ParseFlags returns an error if:

  - RESPONSES_SECRET is missing
  - DATABASE_TYPE is not sqlite or postgres
  - DATABASE_URL is missing for postgres
  - TZ_NAME is not a known location

TEDDY_CODEWORD and VISIT_SALT default to RESPONSES_SECRET. Both words are
lowercased so comparison against callers is case-insensitive.
*/
package cliparse
