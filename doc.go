// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Valentine Week API server.

The server hands out one themed page per day from Rose Day (Feb 7) to
Valentine's Day (Feb 14), collects the little forms those pages post, and
lets the sender read the answers back with a shared word.

# Starting the Server

Only the responses secret is required:

	RESPONSES_SECRET=... go run .

Or with flags:

	go run . -p 5000 -secret ... -t postgres -d "postgres://..."

A .env file in the working directory is loaded first if present.

# Configuration

Required settings:

  - RESPONSES_SECRET (-secret): Word that unlocks the responses endpoints

Optional settings:

  - PORT (-p): Server port (default: 5000)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): Connection string (default: <data>/valentine.db)
  - DATA_DIR (-data): Directory for the JSON response files
  - STATIC_DIR (-static): Built front-end served at /
  - TEDDY_CODEWORD (-codeword): Word for /api/teddy-responses
  - BLOCKED_REFERRERS (-blocked-referrers): Comma-separated deny list
  - VISIT_SALT (-visit-salt): HMAC salt for visitor IP hashes
  - TZ_NAME (-tz): Time zone used by /api/today
  - DEBUG (-debug): Debug logging

# Architecture

  - handlers: HTTP request handlers (days, submissions, responses, static)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, recovery, logging, JSON helpers
  - forms: Field defaults, submission stamping, gated reads
  - store: Append-only record stores (JSON file, SQL table)
  - days: The Valentine-week day table
  - models: Request/response types
  - auth: Word comparison, origin heuristic, IP hashing
  - db: Connection setup and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
