// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/valentine-week/cliparse"
	"github.com/danielhkuo/valentine-week/db"
	"github.com/danielhkuo/valentine-week/models"
)

func openTable(t *testing.T) (*sql.DB, *MovieDateTable) {
	t.Helper()

	conn, err := db.Open(cliparse.DatabaseSQLite, filepath.Join(t.TempDir(), "valentine.db"))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	require.NoError(t, db.CreateSchema(conn, cliparse.DatabaseSQLite))

	return conn, NewMovieDateTable(conn)
}

func TestMovieDateTable_AppendAssignsID(t *testing.T) {
	_, table := openTable(t)

	at := time.Date(2026, 2, 10, 19, 30, 0, 0, time.UTC)
	rec, err := table.Append(context.Background(), models.FormRecord{
		Fields: map[string]any{
			FieldIsFreeForMovie: "yes",
			FieldMovieDate:      "2026-02-14",
			FieldMovieChoice:    "Inception",
		},
		SubmittedAt: at,
	})
	require.NoError(t, err)

	_, err = uuid.Parse(rec.ID)
	assert.NoError(t, err, "id should be a UUID")
	assert.Equal(t, models.KindMovieDate, rec.Kind)

	records, err := table.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, rec.ID, records[0].ID)
	assert.Equal(t, "Inception", records[0].Fields[FieldMovieChoice])
	assert.True(t, records[0].SubmittedAt.Equal(at))
}

func TestMovieDateTable_ListInsertionOrder(t *testing.T) {
	_, table := openTable(t)
	ctx := context.Background()

	base := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)
	choices := []string{"Up", "Coco", "Her"}
	for i, choice := range choices {
		_, err := table.Append(ctx, models.FormRecord{
			Fields:      map[string]any{FieldMovieChoice: choice},
			SubmittedAt: base.Add(time.Duration(i) * time.Second),
		})
		require.NoError(t, err)
	}

	records, err := table.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)
	for i, rec := range records {
		assert.Equal(t, choices[i], rec.Fields[FieldMovieChoice])
		assert.Equal(t, "", rec.Fields[FieldMovieDate], "missing fields read back as empty")
	}
}

func TestMovieDateTable_NonStringValuesStoredAsJSON(t *testing.T) {
	_, table := openTable(t)

	rec, err := table.Append(context.Background(), models.FormRecord{
		Fields: map[string]any{
			FieldIsFreeForMovie: true,
			FieldMovieChoice:    []any{"Up", "Coco"},
		},
		SubmittedAt: time.Now(),
	})
	require.NoError(t, err)

	assert.Equal(t, "true", rec.Fields[FieldIsFreeForMovie])
	assert.Equal(t, `["Up","Coco"]`, rec.Fields[FieldMovieChoice])

	// TEXT columns: the original type is not recoverable on read
	records, err := table.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "true", records[0].Fields[FieldIsFreeForMovie])
	assert.Equal(t, `["Up","Coco"]`, records[0].Fields[FieldMovieChoice])
	assert.Equal(t, "", records[0].Fields[FieldMovieDate])
}

func TestMovieDateTable_StageRollback(t *testing.T) {
	_, table := openTable(t)
	ctx := context.Background()

	staged, err := table.Stage(ctx, models.FormRecord{
		Fields:      map[string]any{FieldMovieChoice: "Rejected"},
		SubmittedAt: time.Now(),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, staged.Record().ID)
	require.NoError(t, staged.Rollback())
	assert.NoError(t, staged.Rollback(), "second rollback is a no-op")

	records, err := table.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestMovieDateTable_StageCommit(t *testing.T) {
	_, table := openTable(t)
	ctx := context.Background()

	staged, err := table.Stage(ctx, models.FormRecord{
		Fields:      map[string]any{FieldMovieChoice: "Kept"},
		SubmittedAt: time.Now(),
	})
	require.NoError(t, err)
	require.NoError(t, staged.Commit())

	records, err := table.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, staged.Record().ID, records[0].ID)
	assert.Equal(t, "Kept", records[0].Fields[FieldMovieChoice])
}

func TestMovieDateTable_EmptyList(t *testing.T) {
	_, table := openTable(t)

	records, err := table.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestMovieDateTable_ClosedDatabase(t *testing.T) {
	conn, table := openTable(t)
	conn.Close()

	_, err := table.Append(context.Background(), models.FormRecord{SubmittedAt: time.Now()})
	assert.Error(t, err)

	_, err = table.List(context.Background())
	assert.Error(t, err)
}
