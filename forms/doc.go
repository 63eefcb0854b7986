// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package forms implements submission and gated retrieval of form records.

# Schemas

Each form kind has a fixed list of expected fields with defaults:

	movie-date         isFreeForMovie, movieDate, movieChoice   ("")
	chocolate-ranking  rankings                                  ([])
	promise-day        promiseWait, promiseLoveForever           ("")
	site-visit         page, timezone, referrer, ipHash, userAgent ("")
	                   screenWidth, screenHeight                 (null)

Missing fields get their default. Present fields are stored exactly as
sent, even when the type is wrong; there is no further validation.

# Submitting

	sub := forms.NewSubmitter(time.Now)
	sub.Register(models.KindMovieDate, table, legacyFile)
	rec, err := sub.Submit(ctx, models.KindMovieDate, payload)

Submit stamps submittedAt (UTC) and appends to every registered store in
order. Stores that implement store.StagedStore hold their write in a
transaction that is committed only once every plain append has succeeded,
and rolled back otherwise. Errors from a store come back as *StorageError
and mean the submission was not accepted.

# Reading

	r := &forms.GatedReader{
		Kind:  models.KindMovieDate,
		Store: table,
		Gate:  forms.Gate{Secret: "pookie", CheckOrigin: true, BlockedReferrers: blocked},
		Order: forms.NewestFirst,
	}
	records, err := r.List(ctx, forms.Access{Credential: word, Origin: origin, Referrer: referer})

Rules, first match wins:

 1. CheckOrigin and (Origin non-empty or Referer contains a blocked
    substring) → ErrOriginBlocked
 2. Credential does not match Secret (case-insensitive) → ErrInvalidCredential
 3. The whole store in Order

The origin rule only keeps the app's own pages from reading data back; it
is not a security boundary.
*/
package forms
