// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/valentine-week/models"
)

func chocolateRecord(name string, at time.Time) models.FormRecord {
	return models.FormRecord{
		Kind: models.KindChocolateRanking,
		Fields: map[string]any{
			"rankings": []any{map[string]any{"rank": 1, "name": name}},
		},
		SubmittedAt: at,
	}
}

func TestFileStore_MissingFileIsEmpty(t *testing.T) {
	s := NewFileStore(models.KindChocolateRanking, filepath.Join(t.TempDir(), "chocolate.json"))

	records, err := s.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)

	_, err = os.Stat(s.Path())
	assert.True(t, os.IsNotExist(err), "List must not create the file")
}

func TestFileStore_AppendCreatesFileAndDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "data", "chocolate.json")
	s := NewFileStore(models.KindChocolateRanking, path)

	at := time.Date(2026, 2, 9, 10, 0, 0, 0, time.UTC)
	_, err := s.Append(context.Background(), chocolateRecord("Dairy Milk", at))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var raw []map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Len(t, raw, 1)
	assert.Equal(t, "2026-02-09T10:00:00Z", raw[0]["submittedAt"])
	assert.Contains(t, raw[0], "rankings")
}

func TestFileStore_PreservesInsertionOrder(t *testing.T) {
	s := NewFileStore(models.KindChocolateRanking, filepath.Join(t.TempDir(), "chocolate.json"))
	ctx := context.Background()

	base := time.Date(2026, 2, 9, 10, 0, 0, 0, time.UTC)
	names := []string{"Silk", "Fruit & Nut", "Oreo"}
	for i, name := range names {
		_, err := s.Append(ctx, chocolateRecord(name, base.Add(time.Duration(i)*time.Minute)))
		require.NoError(t, err)
	}

	records, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, len(names))

	for i, rec := range records {
		assert.Equal(t, models.KindChocolateRanking, rec.Kind)
		rankings := rec.Fields["rankings"].([]any)
		first := rankings[0].(map[string]any)
		assert.Equal(t, names[i], first["name"])
		assert.Equal(t, json.Number("1"), first["rank"])
		assert.True(t, rec.SubmittedAt.Equal(base.Add(time.Duration(i)*time.Minute)))
	}
}

func TestFileStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "promise.json")
	ctx := context.Background()

	first := NewFileStore(models.KindPromiseDay, path)
	_, err := first.Append(ctx, models.FormRecord{
		Fields:      map[string]any{"promiseWait": "yes", "promiseLoveForever": "always"},
		SubmittedAt: time.Now(),
	})
	require.NoError(t, err)

	reopened := NewFileStore(models.KindPromiseDay, path)
	records, err := reopened.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "always", records[0].Fields["promiseLoveForever"])
	assert.Equal(t, models.KindPromiseDay, records[0].Kind)
}

func TestFileStore_ConcurrentAppendsNoLostUpdate(t *testing.T) {
	s := NewFileStore(models.KindChocolateRanking, filepath.Join(t.TempDir(), "chocolate.json"))
	ctx := context.Background()

	const n = 25
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := s.Append(ctx, chocolateRecord(fmt.Sprintf("bar-%d", i), time.Now()))
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	records, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, records, n)

	seen := map[string]bool{}
	for _, rec := range records {
		name := rec.Fields["rankings"].([]any)[0].(map[string]any)["name"].(string)
		seen[name] = true
	}
	assert.Len(t, seen, n, "every payload must be retrievable")
}

func TestFileStore_EmptyFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "visits.json")
	require.NoError(t, os.WriteFile(path, []byte("  \n"), 0o644))

	records, err := NewFileStore(models.KindSiteVisit, path).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestFileStore_CorruptFileFailsWithoutOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "visits.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	s := NewFileStore(models.KindSiteVisit, path)

	_, err := s.List(context.Background())
	require.Error(t, err)

	_, err = s.Append(context.Background(), models.FormRecord{Fields: map[string]any{}, SubmittedAt: time.Now()})
	require.Error(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{not json", string(data), "failed append must leave the file untouched")
}

func TestFileStore_UnwritableDirectory(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	// Parent "directory" is a regular file, so MkdirAll fails.
	s := NewFileStore(models.KindPromiseDay, filepath.Join(blocker, "promise.json"))
	_, err := s.Append(context.Background(), models.FormRecord{Fields: map[string]any{}, SubmittedAt: time.Now()})
	assert.Error(t, err)
}

func TestFileStore_CanceledContext(t *testing.T) {
	s := NewFileStore(models.KindPromiseDay, filepath.Join(t.TempDir(), "promise.json"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Append(ctx, models.FormRecord{SubmittedAt: time.Now()})
	assert.ErrorIs(t, err, context.Canceled)
}
