// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package forms

import (
	"context"
	"slices"

	"github.com/danielhkuo/valentine-week/auth"
	"github.com/danielhkuo/valentine-week/models"
	"github.com/danielhkuo/valentine-week/store"
)

type Order int

const (
	InsertionOrder Order = iota
	NewestFirst
)

// Gate decides whether a caller may read a store back.
type Gate struct {
	// Secret is the expected word, compared case-insensitively.
	Secret string

	// CheckOrigin turns on the Origin/Referer pre-check. It only keeps the
	// app's own front-end out and is trivially bypassed.
	CheckOrigin      bool
	BlockedReferrers []string
}

// Access is what the caller presented.
type Access struct {
	Credential string
	Origin     string
	Referrer   string
}

// Authorize applies the origin check (when enabled) and then the word
// check. The first failing rule decides the error.
func (g Gate) Authorize(a Access) error {
	if g.CheckOrigin {
		if err := auth.CheckOrigin(a.Origin, a.Referrer, g.BlockedReferrers); err != nil {
			return ErrOriginBlocked
		}
	}
	if err := auth.ValidateWord(a.Credential, g.Secret); err != nil {
		return ErrInvalidCredential
	}
	return nil
}

// GatedReader returns the full history of one store to callers that pass
// its gate.
type GatedReader struct {
	Kind  models.FormKind
	Store store.RecordStore
	Gate  Gate
	Order Order
}

func (r *GatedReader) List(ctx context.Context, a Access) ([]models.FormRecord, error) {
	if err := r.Gate.Authorize(a); err != nil {
		return nil, err
	}

	records, err := r.Store.List(ctx)
	if err != nil {
		return nil, &StorageError{Kind: r.Kind, Op: "list", Err: err}
	}

	if r.Order == NewestFirst {
		newestFirst(records)
	}
	return records, nil
}

// newestFirst sorts by submittedAt descending; records with equal stamps
// keep the later-inserted one first.
func newestFirst(records []models.FormRecord) {
	slices.Reverse(records)
	slices.SortStableFunc(records, func(a, b models.FormRecord) int {
		return b.SubmittedAt.Compare(a.SubmittedAt)
	})
}
