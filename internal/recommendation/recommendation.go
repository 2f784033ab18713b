// Copyright (c) 2026 Smart Wardrobe. All rights reserved.
// Author: vigneshrv10

/*
Package recommendation persists generated outfits against the event they were made for.

# Event Dates

The submitted event date is stored verbatim and also parsed into a calendar
date (eventon) against a fixed list of layouts. Upcoming lists sort on the
parsed date; entries whose date matched no layout sort last.
*/
package recommendation

import (
	"context"
	"strings"
	"time"

	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/weather"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/pkg/pagination"
)

// # Domain Entities

// Outfit is the stored outcome of a pipeline run.
type Outfit struct {
	Prompt          string  `json:"prompt"`
	ImageURL        *string `json:"imageUrl"`
	PaymentRequired bool    `json:"paymentRequired"`
	Message         *string `json:"message,omitempty"`
}

// Recommendation is a saved outfit for an event. The weather and outfit
// snapshots are written once and never recomputed.
type Recommendation struct {
	ID            string            `json:"id"`
	UserID        string            `json:"userId"`
	EventTitle    string            `json:"eventTitle"`
	EventType     string            `json:"eventType"`
	EventDate     string            `json:"eventDate"`
	EventOn       *time.Time        `json:"eventOn,omitempty"`
	EventLocation string            `json:"eventLocation"`
	Clothing      *string           `json:"clothing,omitempty"`
	Weather       *weather.Snapshot `json:"weather"`
	Outfit        *Outfit           `json:"outfit"`
	CreatedAt     time.Time         `json:"createdAt"`
}

// OutfitInput mirrors the pipeline's outfit JSON. Image is the field the
// pipeline returns; ImageURL is accepted from clients that re-save a stored record.
type OutfitInput struct {
	Prompt          string  `json:"prompt"`
	Image           *string `json:"image"`
	ImageURL        *string `json:"imageUrl"`
	PaymentRequired bool    `json:"paymentRequired"`
	Message         string  `json:"message"`
}

// SaveInput is the payload accepted by both save endpoints.
type SaveInput struct {
	EventTitle    string            `json:"eventTitle"`
	EventType     string            `json:"eventType"`
	EventDate     string            `json:"eventDate"`
	EventLocation string            `json:"eventLocation"`
	Clothing      string            `json:"clothing"`
	Weather       *weather.Snapshot `json:"weather"`
	Outfit        *OutfitInput      `json:"outfit"`
}

// # Repository Contract

// Repository persists recommendations.
type Repository interface {
	Create(context context.Context, recommendation *Recommendation) error
	ListByOwner(context context.Context, userID string) ([]*Recommendation, error)
	List(context context.Context, params pagination.Params) ([]*Recommendation, int, error)

	// Delete removes id only when it belongs to userID and reports whether a row went.
	Delete(context context.Context, id, userID string) (bool, error)
}

// # Event Date Normalization

// eventDateLayouts are tried in order. The first is what the event form submits.
var eventDateLayouts = []string{
	"January 2, 2006",
	"Jan 2, 2006",
	"2006-01-02",
	time.RFC3339,
	"01/02/2006",
	"2 January 2006",
}

// ParseEventDate returns the calendar date of raw, or nil when no layout matches.
func ParseEventDate(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	for _, layout := range eventDateLayouts {
		parsed, err := time.Parse(layout, raw)
		if err != nil {
			continue
		}
		day := time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC)
		return &day
	}
	return nil
}
