// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"

	"github.com/danielhkuo/valentine-week/models"
)

// RecordStore is an append-only, order-preserving sequence of records for
// one form kind. List returns records in insertion order.
type RecordStore interface {
	// Append persists rec and returns it as stored (with any assigned id).
	// When an error is returned the record must not be treated as saved.
	Append(ctx context.Context, rec models.FormRecord) (models.FormRecord, error)
	List(ctx context.Context) ([]models.FormRecord, error)
}

// StagedStore can hold an append open until the caller has written the
// same record everywhere else. Nothing is visible to List before Commit.
type StagedStore interface {
	RecordStore
	Stage(ctx context.Context, rec models.FormRecord) (Staged, error)
}

// Staged is a pending append. Exactly one of Commit or Rollback must be
// called.
type Staged interface {
	Record() models.FormRecord
	Commit() error
	Rollback() error
}
