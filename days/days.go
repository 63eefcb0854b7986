// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package days holds the fixed Valentine-week content table.
package days

import (
	"maps"
	"time"

	"github.com/danielhkuo/valentine-week/models"
)

const DateLayout = "2006-01-02"

// Table is a read-only day-slug → descriptor mapping. Lookups return
// copies so callers cannot change the shared content.
type Table struct {
	days map[string]models.Day
}

// New copies the given days into a Table.
func New(days map[string]models.Day) *Table {
	t := &Table{days: make(map[string]models.Day, len(days))}
	for slug, d := range days {
		d.Poems = append([]string(nil), d.Poems...)
		t.days[slug] = d
	}
	return t
}

// ValentineWeek returns the 2026 table.
func ValentineWeek() *Table {
	return New(valentineWeek)
}

// All returns a copy of the whole mapping.
func (t *Table) All() map[string]models.Day {
	out := maps.Clone(t.days)
	for slug, d := range out {
		d.Poems = append([]string(nil), d.Poems...)
		out[slug] = d
	}
	return out
}

func (t *Table) Get(slug string) (models.Day, bool) {
	d, ok := t.days[slug]
	if !ok {
		return models.Day{}, false
	}
	d.Poems = append([]string(nil), d.Poems...)
	return d, true
}

// ForDate finds the day whose date equals now formatted in loc.
func (t *Table) ForDate(now time.Time, loc *time.Location) (slug string, day models.Day, ok bool) {
	if loc != nil {
		now = now.In(loc)
	}
	date := now.Format(DateLayout)
	for s, d := range t.days {
		if d.Date == date {
			d.Poems = append([]string(nil), d.Poems...)
			return s, d, true
		}
	}
	return "", models.Day{}, false
}

var valentineWeek = map[string]models.Day{
	"rose-day": {
		Date:     "2026-02-07",
		Title:    "Rose Day",
		Subtitle: "I am bad at drawing so please bear with my disformed roses.🌹",
		Message:  "Here is a virtual rose from my side. (kyuki blinkit nahi aata aapke waha) Happy Rose Day!",
		Color:    "#e63946",
		Poems: []string{
			"Roses are red, violets are blue, no flower in the world is as beautiful as you.",
			"Like petals soft upon the breeze, you calm my heart and put me at ease.",
			"Each rose I give speaks words untold, of love more precious than finest gold.",
		},
	},
	"propose-day": {
		Date:     "2026-02-08",
		Title:    "Propose Day",
		Subtitle: "Will you be mine? 💍",
		Message:  "Coming soon...",
		Color:    "#e76f51",
	},
	"chocolate-day": {
		Date:     "2026-02-09",
		Title:    "Chocolate Day",
		Subtitle: "Life is sweet with you 🍫",
		Message:  "Coming soon...",
		Color:    "#6b4226",
	},
	"teddy-day": {
		Date:     "2026-02-10",
		Title:    "Teddy Day",
		Subtitle: "Warm hugs for you 🧸",
		Message:  "Coming soon...",
		Color:    "#c9a96e",
	},
	"promise-day": {
		Date:     "2026-02-11",
		Title:    "Promise Day",
		Subtitle: "Forever and always 🤞",
		Message:  "Coming soon...",
		Color:    "#457b9d",
	},
	"hug-day": {
		Date:     "2026-02-12",
		Title:    "Hug Day",
		Subtitle: "Wrapped in love 🤗",
		Message:  "Coming soon...",
		Color:    "#f4a261",
	},
	"kiss-day": {
		Date:     "2026-02-13",
		Title:    "Kiss Day",
		Subtitle: "A kiss to seal it all 💋",
		Message:  "Coming soon...",
		Color:    "#e76f8a",
	},
	"valentines-day": {
		Date:     "2026-02-14",
		Title:    "Valentine's Day",
		Subtitle: "Love conquers all ❤️",
		Message:  "Coming soon...",
		Color:    "#d62828",
	},
}
