// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
)

var (
	ErrInvalidWord   = errors.New("invalid shared word")
	ErrOriginBlocked = errors.New("request came from a blocked origin")
)

// ValidateWord compares a caller-supplied word against the expected one,
// ignoring case. An empty expected word never matches.
func ValidateWord(provided, expected string) error {
	if expected == "" {
		return ErrInvalidWord
	}
	p := strings.ToLower(provided)
	e := strings.ToLower(expected)
	if !hmac.Equal([]byte(p), []byte(e)) {
		return ErrInvalidWord
	}
	return nil
}

// CheckOrigin is a best-effort heuristic: any non-empty Origin header, or a
// Referer containing one of the blocked substrings, is rejected. Clients
// that omit both headers pass.
func CheckOrigin(origin, referrer string, blocked []string) error {
	if strings.TrimSpace(origin) != "" {
		return ErrOriginBlocked
	}
	for _, b := range blocked {
		if b != "" && strings.Contains(referrer, b) {
			return ErrOriginBlocked
		}
	}
	return nil
}

// HashIP creates a one-way hash of an IP address for privacy
// Includes salt to prevent rainbow table attacks
func HashIP(ip, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(ip))
	sum := h.Sum(nil)
	// Return first 16 hex chars (64 bits) - enough for deduplication
	return hex.EncodeToString(sum[:8])
}
