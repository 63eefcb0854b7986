// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"time"

	"github.com/danielhkuo/valentine-week/cliparse"
	"github.com/danielhkuo/valentine-week/days"
	"github.com/danielhkuo/valentine-week/middleware"
	"github.com/danielhkuo/valentine-week/models"
)

type DayHandler struct {
	days *days.Table
	cfg  cliparse.Config
	now  func() time.Time
}

func NewDayHandler(table *days.Table, cfg cliparse.Config) *DayHandler {
	return &DayHandler{days: table, cfg: cfg, now: time.Now}
}

// GetAllDays handles GET /api/days
func (h *DayHandler) GetAllDays(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.days.All())
}

// GetDay handles GET /api/days/{slug}
func (h *DayHandler) GetDay(w http.ResponseWriter, r *http.Request) {
	day, ok := h.days.Get(r.PathValue("slug"))
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Day not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, day)
}

// GetToday handles GET /api/today
// Returns the day matching today's date, or a placeholder message
func (h *DayHandler) GetToday(w http.ResponseWriter, r *http.Request) {
	now := h.now()
	slug, day, ok := h.days.ForDate(now, h.cfg.Location)
	if !ok {
		if h.cfg.Location != nil {
			now = now.In(h.cfg.Location)
		}
		middleware.JSONResponse(w, http.StatusOK, models.NoDayResponse{
			Message: "No special day today",
			Date:    now.Format(days.DateLayout),
		})
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.TodayResponse{Slug: slug, Day: day})
}
