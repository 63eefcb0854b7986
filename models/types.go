package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Form kinds
type FormKind string

const (
	KindMovieDate        FormKind = "movie-date"
	KindChocolateRanking FormKind = "chocolate-ranking"
	KindPromiseDay       FormKind = "promise-day"
	KindSiteVisit        FormKind = "site-visit"
)

// Reserved record keys, never taken from caller fields
const (
	KeyID          = "id"
	KeySubmittedAt = "submittedAt"
)

// Day content

type Day struct {
	Date     string   `json:"date"`
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle"`
	Message  string   `json:"message"`
	Color    string   `json:"color"`
	Poems    []string `json:"poems,omitempty"`
}

type TodayResponse struct {
	Slug string `json:"slug"`
	Day
}

type NoDayResponse struct {
	Message string `json:"message"`
	Date    string `json:"date"`
}

// Form records

// FormRecord is one accepted submission. On the wire the fields are
// flattened next to submittedAt (and id when the store assigns one).
type FormRecord struct {
	Kind        FormKind
	ID          string
	Fields      map[string]any
	SubmittedAt time.Time
}

func (r FormRecord) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(r.Fields)+2)
	for k, v := range r.Fields {
		out[k] = v
	}
	if r.ID != "" {
		out[KeyID] = r.ID
	}
	out[KeySubmittedAt] = r.SubmittedAt.Format(time.RFC3339Nano)
	return json.Marshal(out)
}

// UnmarshalJSON keeps numbers as json.Number so stored values round-trip
// exactly. Kind is not part of the encoding.
func (r *FormRecord) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return err
	}

	r.ID = ""
	r.SubmittedAt = time.Time{}
	if id, ok := raw[KeyID].(string); ok {
		r.ID = id
	}
	if ts, ok := raw[KeySubmittedAt].(string); ok {
		t, err := time.Parse(time.RFC3339Nano, ts)
		if err != nil {
			return fmt.Errorf("invalid submittedAt %q: %w", ts, err)
		}
		r.SubmittedAt = t
	}
	delete(raw, KeyID)
	delete(raw, KeySubmittedAt)
	r.Fields = raw
	return nil
}

// Response types

type AckResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type DeniedResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Hint    string `json:"hint"`
}

// Error response

type ErrorResponse struct {
	Error string `json:"error"`
}
