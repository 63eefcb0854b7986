// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package forms

import (
	"errors"
	"fmt"

	"github.com/danielhkuo/valentine-week/auth"
	"github.com/danielhkuo/valentine-week/models"
)

var (
	ErrUnknownKind       = errors.New("unknown form kind")
	ErrOriginBlocked     = auth.ErrOriginBlocked
	ErrInvalidCredential = auth.ErrInvalidWord
)

// StorageError means a record could not be persisted or read back. A
// submission that fails with it was not accepted.
type StorageError struct {
	Kind models.FormKind
	Op   string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s %s records: %v", e.Op, e.Kind, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// IsDenied reports whether err is one of the read gate denials.
func IsDenied(err error) bool {
	return errors.Is(err, ErrOriginBlocked) || errors.Is(err, ErrInvalidCredential)
}
