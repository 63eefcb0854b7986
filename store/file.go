// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/valentine-week/models"
)

// FileStore keeps every record of one kind in a single JSON array file.
// Each append reads the whole file, adds one record and writes the full
// array back through a temp file and rename, all under one mutex.
type FileStore struct {
	kind models.FormKind
	path string

	mu sync.Mutex
}

func NewFileStore(kind models.FormKind, path string) *FileStore {
	return &FileStore{kind: kind, path: path}
}

func (s *FileStore) Path() string { return s.path }

func (s *FileStore) Append(ctx context.Context, rec models.FormRecord) (models.FormRecord, error) {
	if err := ctx.Err(); err != nil {
		return models.FormRecord{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return models.FormRecord{}, err
	}

	rec.Kind = s.kind
	records = append(records, rec)

	if err := s.write(records); err != nil {
		return models.FormRecord{}, err
	}
	return rec, nil
}

func (s *FileStore) List(ctx context.Context) ([]models.FormRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load()
}

// load reads the file; a missing or empty file is an empty store.
func (s *FileStore) load() ([]models.FormRecord, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []models.FormRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return []models.FormRecord{}, nil
	}

	var records []models.FormRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", s.path, err)
	}
	for i := range records {
		records[i].Kind = s.kind
	}
	if records == nil {
		records = []models.FormRecord{}
	}
	return records, nil
}

func (s *FileStore) write(records []models.FormRecord) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode records: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", s.path, err)
	}

	slog.Debug("record file written",
		"kind", s.kind,
		"path", s.path,
		"records", len(records),
		"size", humanize.Bytes(uint64(len(data))),
	)
	return nil
}
