// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Valentine Week API.

# Route Registration

NewRouter creates the configured handler with all endpoints. The
ServeMux is wrapped in Recovery and CORS:

	handler, err := router.NewRouter(db, cfg)

# Endpoints

Health:

	GET /health

Days:

	GET /api/days        - All eight days keyed by slug
	GET /api/days/{slug} - One day
	GET /api/today       - Today's day, or a placeholder

Submissions (public):

	POST /api/movie-date
	POST /api/chocolate-ranking
	POST /api/promise-day
	POST /api/track-visit

Responses (gated by a shared word):

	GET /api/movie-date/responses?name=
	GET /api/teddy-responses?codeword=
	GET /api/chocolate-ranking/responses?name=
	GET /api/promise-day/responses?name=
	GET /api/track-visit/responses?name=

Everything else under GET / is the front-end, with index.html for paths
that don't name a file.
*/
package router
