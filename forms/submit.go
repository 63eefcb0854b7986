// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package forms

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/danielhkuo/valentine-week/models"
	"github.com/danielhkuo/valentine-week/store"
)

// Submitter accepts form payloads and appends them to the stores
// registered for their kind.
type Submitter struct {
	now func() time.Time

	mu     sync.Mutex
	stores map[models.FormKind][]store.RecordStore
	kinds  map[models.FormKind]*kindState
}

type kindState struct {
	mu   sync.Mutex
	last time.Time
}

func NewSubmitter(now func() time.Time) *Submitter {
	if now == nil {
		now = time.Now
	}
	return &Submitter{
		now:    now,
		stores: make(map[models.FormKind][]store.RecordStore),
		kinds:  make(map[models.FormKind]*kindState),
	}
}

// Register sets the stores a kind is written to, in write order. The
// first store's copy of the record is what Submit returns.
func (s *Submitter) Register(kind models.FormKind, stores ...store.RecordStore) error {
	if _, ok := SchemaFor(kind); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	if len(stores) == 0 {
		return fmt.Errorf("no stores given for %s", kind)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.stores[kind] = append([]store.RecordStore(nil), stores...)
	if _, ok := s.kinds[kind]; !ok {
		s.kinds[kind] = &kindState{}
	}
	return nil
}

// Submit defaults the payload's fields, stamps submittedAt and appends
// the record to every store of kind. Submissions of one kind run one at a
// time so stamps never go backwards in insertion order. Any store failure
// fails the whole submission with a *StorageError and no staged store
// keeps the record.
func (s *Submitter) Submit(ctx context.Context, kind models.FormKind, payload map[string]any) (models.FormRecord, error) {
	schema, ok := SchemaFor(kind)
	if !ok {
		return models.FormRecord{}, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}

	s.mu.Lock()
	stores, ok := s.stores[kind]
	state := s.kinds[kind]
	s.mu.Unlock()
	if !ok {
		return models.FormRecord{}, fmt.Errorf("%w: %s has no store", ErrUnknownKind, kind)
	}

	state.mu.Lock()
	defer state.mu.Unlock()

	submittedAt := s.now().UTC()
	if submittedAt.Before(state.last) {
		submittedAt = state.last
	}
	state.last = submittedAt

	rec := models.FormRecord{
		Kind:        kind,
		Fields:      schema.Extract(payload),
		SubmittedAt: submittedAt,
	}

	saved, err := writeAll(ctx, stores, rec)
	if err != nil {
		return models.FormRecord{}, &StorageError{Kind: kind, Op: "append", Err: err}
	}
	return saved, nil
}

// writeAll appends rec to every store. Staged stores are held open until
// all plain appends have succeeded and are rolled back otherwise, so a
// failed submission leaves nothing behind in them. The first store's copy
// of the record is returned.
func writeAll(ctx context.Context, stores []store.RecordStore, rec models.FormRecord) (models.FormRecord, error) {
	var (
		saved   models.FormRecord
		pending []store.Staged
	)
	rollback := func() {
		for _, p := range pending {
			if err := p.Rollback(); err != nil {
				slog.Error("failed to roll back staged record", "kind", rec.Kind, "error", err)
			}
		}
	}

	for i, st := range stores {
		var out models.FormRecord
		if ss, ok := st.(store.StagedStore); ok {
			p, err := ss.Stage(ctx, rec)
			if err != nil {
				rollback()
				return models.FormRecord{}, err
			}
			pending = append(pending, p)
			out = p.Record()
		} else {
			var err error
			out, err = st.Append(ctx, rec)
			if err != nil {
				rollback()
				return models.FormRecord{}, err
			}
		}
		if i == 0 {
			saved = out
		}
	}

	for i, p := range pending {
		if err := p.Commit(); err != nil {
			pending = pending[i+1:]
			rollback()
			return models.FormRecord{}, err
		}
	}
	return saved, nil
}
