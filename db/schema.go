// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/valentine-week/cliparse"
)

// Open connects to the configured database and verifies the connection.
// SQLite files (and their directory) are created when missing.
func Open(dbType, url string) (*sql.DB, error) {
	driver, err := driverName(dbType)
	if err != nil {
		return nil, err
	}

	if dbType == cliparse.DatabaseSQLite {
		if dir := sqliteDir(url); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
	}

	conn, err := sql.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if dbType == cliparse.DatabaseSQLite {
		// SQLite only supports one writer at a time
		conn.SetMaxOpenConns(1)
		conn.SetMaxIdleConns(1)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if dbType == cliparse.DatabaseSQLite {
		for _, pragma := range sqlitePragmas {
			if _, err := conn.Exec(pragma); err != nil {
				conn.Close()
				return nil, fmt.Errorf("failed to apply %q: %w", pragma, err)
			}
		}
	}

	return conn, nil
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, dbType string) error {
	var schema string
	switch dbType {
	case cliparse.DatabaseSQLite:
		schema = sqliteSchema
	case cliparse.DatabasePostgres:
		schema = postgresSchema
	default:
		return fmt.Errorf("unsupported database type %q", dbType)
	}

	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

func driverName(dbType string) (string, error) {
	switch dbType {
	case cliparse.DatabaseSQLite:
		return "sqlite", nil
	case cliparse.DatabasePostgres:
		return "postgres", nil
	}
	return "", fmt.Errorf("unsupported database type %q", dbType)
}

// sqliteDir returns the directory of a plain file path, or "" for
// in-memory and URI-style DSNs.
func sqliteDir(url string) string {
	if url == "" || strings.HasPrefix(url, ":memory:") || strings.HasPrefix(url, "file:") {
		return ""
	}
	dir := filepath.Dir(url)
	if dir == "." {
		return ""
	}
	return dir
}

var sqlitePragmas = []string{
	"PRAGMA journal_mode = WAL",
	"PRAGMA synchronous = NORMAL",
	"PRAGMA busy_timeout = 5000",
}

// submitted_at is fixed-width RFC 3339 text in UTC so both dialects sort
// and scan it the same way.
const sqliteSchema = `
-- Movie date responses (authoritative store)
CREATE TABLE IF NOT EXISTS movie_date_response (
    seq INTEGER PRIMARY KEY AUTOINCREMENT,
    id TEXT NOT NULL UNIQUE,
    is_free_for_movie TEXT NOT NULL DEFAULT '',
    movie_date TEXT NOT NULL DEFAULT '',
    movie_choice TEXT NOT NULL DEFAULT '',
    submitted_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_movie_date_response_submitted_at ON movie_date_response(submitted_at);
`

const postgresSchema = `
-- Movie date responses (authoritative store)
CREATE TABLE IF NOT EXISTS movie_date_response (
    seq BIGSERIAL PRIMARY KEY,
    id TEXT NOT NULL UNIQUE,
    is_free_for_movie TEXT NOT NULL DEFAULT '',
    movie_date TEXT NOT NULL DEFAULT '',
    movie_choice TEXT NOT NULL DEFAULT '',
    submitted_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_movie_date_response_submitted_at ON movie_date_response(submitted_at);
`
