// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists submitted form records.

# Record Stores

Every implementation of RecordStore is append-only: records are never
updated or deleted, and List returns them in insertion order. Stores start
empty and grow without a retention limit.

# File Store

FileStore keeps one JSON array per form kind:

	s := store.NewFileStore(models.KindChocolateRanking, "data/chocolate_rankings.json")
	rec, err := s.Append(ctx, rec)

Appends hold a mutex for the whole read-modify-write cycle and replace the
file atomically (temp file, fsync, rename), so concurrent submissions never
lose each other and a failed write leaves the previous contents intact. The
file and its directory are created on first write.

# Movie Date Table

MovieDateTable writes movie-date records to the movie_date_response table
(see package db) and assigns each a UUID id. Non-string field values are
stored as their JSON text and read back as strings. It also implements
StagedStore, so the insert can stay uncommitted until the legacy file
has the record too.

Movie-date submissions go to both this table and a legacy FileStore. The
two are read through different endpoints with different gates and
orderings. This duplication is a known defect kept for compatibility.
*/
package store
