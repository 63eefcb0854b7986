// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/valentine-week/models"
)

// Movie-date field keys
const (
	FieldIsFreeForMovie = "isFreeForMovie"
	FieldMovieDate      = "movieDate"
	FieldMovieChoice    = "movieChoice"
)

// timestampLayout is fixed width so text ordering matches time ordering.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

// MovieDateTable stores movie-date records in the movie_date_response
// table. Each row gets a UUID id. It is a StagedStore so a row can be
// held back until the other stores of a submission have accepted it.
type MovieDateTable struct {
	db *sql.DB
}

var _ StagedStore = (*MovieDateTable)(nil)

func NewMovieDateTable(db *sql.DB) *MovieDateTable {
	return &MovieDateTable{db: db}
}

func (t *MovieDateTable) Append(ctx context.Context, rec models.FormRecord) (models.FormRecord, error) {
	staged, err := t.Stage(ctx, rec)
	if err != nil {
		return models.FormRecord{}, err
	}
	if err := staged.Commit(); err != nil {
		return models.FormRecord{}, err
	}
	return staged.Record(), nil
}

// Stage inserts rec inside a transaction that stays open until Commit or
// Rollback. With SQLite the transaction holds the only connection.
func (t *MovieDateTable) Stage(ctx context.Context, rec models.FormRecord) (Staged, error) {
	rec.Kind = models.KindMovieDate
	rec.ID = uuid.NewString()

	isFree := textValue(rec.Fields[FieldIsFreeForMovie])
	movieDate := textValue(rec.Fields[FieldMovieDate])
	movieChoice := textValue(rec.Fields[FieldMovieChoice])

	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin movie date insert: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO movie_date_response (id, is_free_for_movie, movie_date, movie_choice, submitted_at)
		VALUES ($1, $2, $3, $4, $5)
	`, rec.ID, isFree, movieDate, movieChoice, rec.SubmittedAt.UTC().Format(timestampLayout))
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to insert movie date response: %w", err)
	}

	rec.Fields = movieDateFields(isFree, movieDate, movieChoice)
	return &stagedRow{tx: tx, rec: rec}, nil
}

type stagedRow struct {
	tx  *sql.Tx
	rec models.FormRecord
}

func (s *stagedRow) Record() models.FormRecord { return s.rec }

func (s *stagedRow) Commit() error {
	if err := s.tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit movie date response: %w", err)
	}
	return nil
}

func (s *stagedRow) Rollback() error {
	if err := s.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return fmt.Errorf("failed to roll back movie date response: %w", err)
	}
	return nil
}

func (t *MovieDateTable) List(ctx context.Context) ([]models.FormRecord, error) {
	rows, err := t.db.QueryContext(ctx, `
		SELECT id, is_free_for_movie, movie_date, movie_choice, submitted_at
		FROM movie_date_response
		ORDER BY seq
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query movie date responses: %w", err)
	}
	defer rows.Close()

	records := []models.FormRecord{}
	for rows.Next() {
		var id, isFree, movieDate, movieChoice, submittedAt string
		if err := rows.Scan(&id, &isFree, &movieDate, &movieChoice, &submittedAt); err != nil {
			return nil, fmt.Errorf("failed to scan movie date response: %w", err)
		}
		ts, err := time.Parse(time.RFC3339Nano, submittedAt)
		if err != nil {
			return nil, fmt.Errorf("invalid submitted_at %q for %s: %w", submittedAt, id, err)
		}
		records = append(records, models.FormRecord{
			Kind:        models.KindMovieDate,
			ID:          id,
			Fields:      movieDateFields(isFree, movieDate, movieChoice),
			SubmittedAt: ts,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate movie date responses: %w", err)
	}

	return records, nil
}

func movieDateFields(isFree, movieDate, movieChoice string) map[string]any {
	return map[string]any{
		FieldIsFreeForMovie: isFree,
		FieldMovieDate:      movieDate,
		FieldMovieChoice:    movieChoice,
	}
}

// textValue stores strings as-is and anything else as its JSON text,
// since the columns are TEXT.
func textValue(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}
