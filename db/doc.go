// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the relational database and creates its schema.

# Drivers

	sqlite   → modernc.org/sqlite (default, a single file under the data dir)
	postgres → github.com/lib/pq

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

SQLite connections are limited to one open connection and run with WAL,
NORMAL synchronous mode and a 5-second busy timeout.

# Schema Creation

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - movie_date_response: movie-date submissions read by /api/teddy-responses

seq gives insertion order, id is a UUID exposed to readers, and
submitted_at is fixed-width RFC 3339 text in UTC.

The other form kinds live in JSON files (see package store), not here.
*/
package db
