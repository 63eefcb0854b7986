// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides the shared-word check, the origin heuristic, and IP
hashing.

# Shared Word

Gated reads compare a query parameter against a configured word:

	err := auth.ValidateWord(r.URL.Query().Get("name"), cfg.ResponsesSecret)

The comparison ignores case and surrounding spaces. This is not
authentication: there are no users, sessions or rotation, and the word is
not hashed.

# Origin Heuristic

CheckOrigin rejects requests that carry any Origin header or whose Referer
contains one of the configured substrings (the app's own front-end hosts):

	err := auth.CheckOrigin(r.Header.Get("Origin"), r.Referer(), cfg.BlockedReferrers)

It keeps the browser app from reading the data back. Any client that omits
the headers gets past it.

# IP Hashing

Visit tracking stores a salted hash instead of the address:

	hash := auth.HashIP(ipAddress, salt)

Returns first 8 bytes (16 hex chars) of HMAC-SHA256.
*/
package auth
