// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/valentine-week/auth"
	"github.com/danielhkuo/valentine-week/cliparse"
	"github.com/danielhkuo/valentine-week/forms"
	"github.com/danielhkuo/valentine-week/middleware"
	"github.com/danielhkuo/valentine-week/models"
)

type SubmissionHandler struct {
	submitter *forms.Submitter
	cfg       cliparse.Config
}

// NewSubmissionHandler registers every form kind with its stores. The
// table is written before the legacy file for movie-date.
func NewSubmissionHandler(stores *Stores, cfg cliparse.Config) (*SubmissionHandler, error) {
	sub := forms.NewSubmitter(time.Now)

	if err := sub.Register(models.KindMovieDate, stores.MovieDate, stores.LegacyMovieDate); err != nil {
		return nil, err
	}
	if err := sub.Register(models.KindChocolateRanking, stores.Chocolate); err != nil {
		return nil, err
	}
	if err := sub.Register(models.KindPromiseDay, stores.Promise); err != nil {
		return nil, err
	}
	if err := sub.Register(models.KindSiteVisit, stores.Visits); err != nil {
		return nil, err
	}

	return &SubmissionHandler{submitter: sub, cfg: cfg}, nil
}

// SubmitMovieDate handles POST /api/movie-date
func (h *SubmissionHandler) SubmitMovieDate(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, models.KindMovieDate, nil)
}

// SubmitChocolateRanking handles POST /api/chocolate-ranking
func (h *SubmissionHandler) SubmitChocolateRanking(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, models.KindChocolateRanking, nil)
}

// SubmitPromiseDay handles POST /api/promise-day
func (h *SubmissionHandler) SubmitPromiseDay(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, models.KindPromiseDay, nil)
}

// TrackVisit handles POST /api/track-visit
// The client IP is stored only as a salted hash
func (h *SubmissionHandler) TrackVisit(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, models.KindSiteVisit, map[string]any{
		forms.FieldIPHash:    auth.HashIP(middleware.GetClientIP(r), h.cfg.VisitSalt),
		forms.FieldUserAgent: r.UserAgent(),
	})
}

// submit decodes the body, overlays server-side fields and stores the record
func (h *SubmissionHandler) submit(w http.ResponseWriter, r *http.Request, kind models.FormKind, server map[string]any) {
	payload, err := middleware.ParseJSONObject(w, r)
	if errors.Is(err, middleware.ErrBodyTooLarge) {
		middleware.JSONResponse(w, http.StatusRequestEntityTooLarge, models.AckResponse{
			Success: false,
			Error:   "Request body too large",
		})
		return
	}
	if err != nil {
		middleware.JSONResponse(w, http.StatusBadRequest, models.AckResponse{
			Success: false,
			Error:   "Invalid JSON",
		})
		return
	}

	for k, v := range server {
		payload[k] = v
	}

	rec, err := h.submitter.Submit(r.Context(), kind, payload)
	if err != nil {
		var serr *forms.StorageError
		if errors.As(err, &serr) {
			slog.Error("failed to store submission", "kind", kind, "op", serr.Op, "error", serr.Err)
		} else {
			slog.Error("submission rejected", "kind", kind, "error", err)
		}
		middleware.JSONResponse(w, http.StatusInternalServerError, models.AckResponse{
			Success: false,
			Error:   "Failed to save response",
		})
		return
	}

	slog.Info("submission stored", "kind", kind, "id", rec.ID, "submitted_at", rec.SubmittedAt)

	middleware.JSONResponse(w, http.StatusOK, models.AckResponse{Success: true})
}
