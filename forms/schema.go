// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package forms

import (
	"github.com/danielhkuo/valentine-week/models"
	"github.com/danielhkuo/valentine-week/store"
)

// Site-visit keys filled by the server, never by the caller.
const (
	FieldIPHash    = "ipHash"
	FieldUserAgent = "userAgent"
)

// Field is one expected key of a form and the value used when the caller
// leaves it out.
type Field struct {
	Key     string
	Default func() any
}

type Schema struct {
	Kind   models.FormKind
	Fields []Field
}

func emptyString() any   { return "" }
func emptySequence() any { return []any{} }
func null() any          { return nil }

var schemas = map[models.FormKind]Schema{
	models.KindMovieDate: {
		Kind: models.KindMovieDate,
		Fields: []Field{
			{store.FieldIsFreeForMovie, emptyString},
			{store.FieldMovieDate, emptyString},
			{store.FieldMovieChoice, emptyString},
		},
	},
	models.KindChocolateRanking: {
		Kind: models.KindChocolateRanking,
		Fields: []Field{
			{"rankings", emptySequence},
		},
	},
	models.KindPromiseDay: {
		Kind: models.KindPromiseDay,
		Fields: []Field{
			{"promiseWait", emptyString},
			{"promiseLoveForever", emptyString},
		},
	},
	models.KindSiteVisit: {
		Kind: models.KindSiteVisit,
		Fields: []Field{
			{"page", emptyString},
			{"screenWidth", null},
			{"screenHeight", null},
			{"timezone", emptyString},
			{"referrer", emptyString},
			{FieldIPHash, emptyString},
			{FieldUserAgent, emptyString},
		},
	},
}

func SchemaFor(kind models.FormKind) (Schema, bool) {
	s, ok := schemas[kind]
	return s, ok
}

// Extract picks the expected fields out of payload. Present values are
// kept exactly as given, whatever their type; absent ones get the default.
// Unexpected keys are dropped.
func (s Schema) Extract(payload map[string]any) map[string]any {
	fields := make(map[string]any, len(s.Fields))
	for _, f := range s.Fields {
		if v, ok := payload[f.Key]; ok {
			fields[f.Key] = v
			continue
		}
		fields[f.Key] = f.Default()
	}
	return fields
}
