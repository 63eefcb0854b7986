// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/valentine-week/cliparse"
	"github.com/danielhkuo/valentine-week/forms"
	"github.com/danielhkuo/valentine-week/middleware"
	"github.com/danielhkuo/valentine-week/models"
)

// deniedResponse is the same for every failed check so callers can't tell
// which rule stopped them.
var deniedResponse = models.DeniedResponse{
	Error:   "Access denied",
	Message: "These responses are private.",
	Hint:    "Only the right word opens this door 🔐",
}

type ResponsesHandler struct {
	legacyMovieDate *forms.GatedReader
	teddy           *forms.GatedReader
	chocolate       *forms.GatedReader
	promise         *forms.GatedReader
	visits          *forms.GatedReader
}

func NewResponsesHandler(stores *Stores, cfg cliparse.Config) *ResponsesHandler {
	legacy := forms.Gate{Secret: cfg.ResponsesSecret}

	return &ResponsesHandler{
		legacyMovieDate: &forms.GatedReader{
			Kind:  models.KindMovieDate,
			Store: stores.LegacyMovieDate,
			Gate:  legacy,
			Order: forms.InsertionOrder,
		},
		teddy: &forms.GatedReader{
			Kind:  models.KindMovieDate,
			Store: stores.MovieDate,
			Gate: forms.Gate{
				Secret:           cfg.TeddyCodeword,
				CheckOrigin:      true,
				BlockedReferrers: cfg.BlockedReferrers,
			},
			Order: forms.NewestFirst,
		},
		chocolate: &forms.GatedReader{
			Kind:  models.KindChocolateRanking,
			Store: stores.Chocolate,
			Gate:  legacy,
			Order: forms.InsertionOrder,
		},
		promise: &forms.GatedReader{
			Kind:  models.KindPromiseDay,
			Store: stores.Promise,
			Gate:  legacy,
			Order: forms.InsertionOrder,
		},
		visits: &forms.GatedReader{
			Kind:  models.KindSiteVisit,
			Store: stores.Visits,
			Gate:  legacy,
			Order: forms.InsertionOrder,
		},
	}
}

// ListMovieDateResponses handles GET /api/movie-date/responses?name=
// Reads the legacy file store, oldest first
func (h *ResponsesHandler) ListMovieDateResponses(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.legacyMovieDate, r.URL.Query().Get("name"))
}

// ListTeddyResponses handles GET /api/teddy-responses?codeword=
// Reads the movie_date_response table, newest first, and refuses any
// request that looks like it came from the app's own pages
func (h *ResponsesHandler) ListTeddyResponses(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.teddy, r.URL.Query().Get("codeword"))
}

// ListChocolateResponses handles GET /api/chocolate-ranking/responses?name=
func (h *ResponsesHandler) ListChocolateResponses(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.chocolate, r.URL.Query().Get("name"))
}

// ListPromiseResponses handles GET /api/promise-day/responses?name=
func (h *ResponsesHandler) ListPromiseResponses(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.promise, r.URL.Query().Get("name"))
}

// ListVisits handles GET /api/track-visit/responses?name=
func (h *ResponsesHandler) ListVisits(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.visits, r.URL.Query().Get("name"))
}

func (h *ResponsesHandler) list(w http.ResponseWriter, r *http.Request, reader *forms.GatedReader, credential string) {
	records, err := reader.List(r.Context(), forms.Access{
		Credential: credential,
		Origin:     r.Header.Get("Origin"),
		Referrer:   r.Referer(),
	})

	if forms.IsDenied(err) {
		slog.Warn("responses access denied", "kind", reader.Kind, "path", r.URL.Path, "reason", err)
		middleware.JSONResponse(w, http.StatusForbidden, deniedResponse)
		return
	}
	if err != nil {
		var serr *forms.StorageError
		if errors.As(err, &serr) {
			slog.Error("failed to load responses", "kind", reader.Kind, "error", serr.Err)
		} else {
			slog.Error("failed to load responses", "kind", reader.Kind, "error", err)
		}
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load responses")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, records)
}
