// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Day Types

  - Day: date, title, subtitle, message, color, optional poems
  - TodayResponse: a Day plus its slug
  - NoDayResponse: message, date (no special day today)

# Form Records

FormRecord is one accepted submission of a FormKind:

	KindMovieDate        = "movie-date"
	KindChocolateRanking = "chocolate-ranking"
	KindPromiseDay       = "promise-day"
	KindSiteVisit        = "site-visit"

It encodes as a flat JSON object: the caller fields, "submittedAt"
(RFC 3339, nanoseconds) and "id" when the store assigns one:

	{"movieChoice":"Inception","isFreeForMovie":"","movieDate":"","submittedAt":"2026-02-10T18:04:05.123Z"}

Decoding keeps numbers as json.Number so values stored verbatim come back
unchanged.

# Response Types

  - AckResponse: success, error
  - DeniedResponse: error, message, hint (403 on gated reads)
  - ErrorResponse: error, message
*/
package models
