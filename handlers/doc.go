// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Valentine Week API.

# Handler Types

  - DayHandler: The day table and today's lookup
  - SubmissionHandler: Form posts, one per form kind
  - ResponsesHandler: Gated read-back of stored submissions
  - StaticHandler: Front-end files with index.html fallback

Stores are built once from the database and config and shared by the
submission and responses handlers:

	stores := handlers.NewStores(db, cfg)
	sub, err := handlers.NewSubmissionHandler(stores, cfg)
	resp := handlers.NewResponsesHandler(stores, cfg)

# Movie-date

Movie-date answers land in two places. The movie_date_response table is
read by /api/teddy-responses (newest first, blocked for requests carrying
an Origin or a local Referer). The legacy movie_date_responses.json file
is read by /api/movie-date/responses (oldest first). The two are never
merged.

# Denials

Every failed gate returns the same 403 body. The reason is only logged.
*/
package handlers
