// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/valentine-week/cliparse"
	"github.com/danielhkuo/valentine-week/days"
	"github.com/danielhkuo/valentine-week/handlers"
	"github.com/danielhkuo/valentine-week/middleware"
)

// NewRouter wires every endpoint. The returned handler applies panic
// recovery and CORS around the mux.
func NewRouter(db *sql.DB, cfg cliparse.Config) (http.Handler, error) {
	mux := http.NewServeMux()

	// Initialize handlers
	stores := handlers.NewStores(db, cfg)
	dayHandler := handlers.NewDayHandler(days.ValentineWeek(), cfg)
	responsesHandler := handlers.NewResponsesHandler(stores, cfg)
	staticHandler := handlers.NewStaticHandler(cfg.StaticDir)
	submissionHandler, err := handlers.NewSubmissionHandler(stores, cfg)
	if err != nil {
		return nil, err
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Day catalogue
	mux.HandleFunc("GET /api/days", middleware.WithLogging(dayHandler.GetAllDays))
	mux.HandleFunc("GET /api/days/{slug}", middleware.WithLogging(dayHandler.GetDay))
	mux.HandleFunc("GET /api/today", middleware.WithLogging(dayHandler.GetToday))

	// Form submissions (public)
	mux.HandleFunc("POST /api/movie-date", middleware.WithLogging(submissionHandler.SubmitMovieDate))
	mux.HandleFunc("POST /api/chocolate-ranking", middleware.WithLogging(submissionHandler.SubmitChocolateRanking))
	mux.HandleFunc("POST /api/promise-day", middleware.WithLogging(submissionHandler.SubmitPromiseDay))
	mux.HandleFunc("POST /api/track-visit", middleware.WithLogging(submissionHandler.TrackVisit))

	// Response read-back (gated)
	mux.HandleFunc("GET /api/movie-date/responses", middleware.WithLogging(responsesHandler.ListMovieDateResponses))
	mux.HandleFunc("GET /api/teddy-responses", middleware.WithLogging(responsesHandler.ListTeddyResponses))
	mux.HandleFunc("GET /api/chocolate-ranking/responses", middleware.WithLogging(responsesHandler.ListChocolateResponses))
	mux.HandleFunc("GET /api/promise-day/responses", middleware.WithLogging(responsesHandler.ListPromiseResponses))
	mux.HandleFunc("GET /api/track-visit/responses", middleware.WithLogging(responsesHandler.ListVisits))

	// Front-end and SPA fallback
	mux.HandleFunc("GET /", middleware.WithLogging(staticHandler.Serve))

	return middleware.Recovery(middleware.CORS(mux)), nil
}
