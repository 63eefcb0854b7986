// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"path/filepath"

	"github.com/danielhkuo/valentine-week/cliparse"
	"github.com/danielhkuo/valentine-week/models"
	"github.com/danielhkuo/valentine-week/store"
)

// Response file names under the data directory
const (
	MovieDateFile = "movie_date_responses.json"
	ChocolateFile = "chocolate_rankings.json"
	PromiseFile   = "promise_day_responses.json"
	VisitsFile    = "visits.json"
)

// Stores holds one record store per form kind. Movie-date has two: the
// table is authoritative, the file is the legacy copy read by
// /api/movie-date/responses.
type Stores struct {
	MovieDate       *store.MovieDateTable
	LegacyMovieDate *store.FileStore
	Chocolate       *store.FileStore
	Promise         *store.FileStore
	Visits          *store.FileStore
}

func NewStores(db *sql.DB, cfg cliparse.Config) *Stores {
	return &Stores{
		MovieDate:       store.NewMovieDateTable(db),
		LegacyMovieDate: store.NewFileStore(models.KindMovieDate, filepath.Join(cfg.DataDir, MovieDateFile)),
		Chocolate:       store.NewFileStore(models.KindChocolateRanking, filepath.Join(cfg.DataDir, ChocolateFile)),
		Promise:         store.NewFileStore(models.KindPromiseDay, filepath.Join(cfg.DataDir, PromiseFile)),
		Visits:          store.NewFileStore(models.KindSiteVisit, filepath.Join(cfg.DataDir, VisitsFile)),
	}
}
