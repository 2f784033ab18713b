// Copyright (c) 2026 Smart Wardrobe. All rights reserved.
// Author: vigneshrv10

// Package wardrobe catalogs a user's clothing items.
package wardrobe

import (
	"context"
	"time"
)

// Categories is the closed set of item categories, in display order.
var Categories = []string{"tops", "bottoms", "dresses", "outerwear", "shoes", "accessories"}

// Seasons is the closed set of season values, in display order.
var Seasons = []string{"spring", "summer", "fall", "winter"}

// Item is a cataloged clothing item. Items have no update path.
type Item struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Color     string    `json:"color"`
	Seasons   []string  `json:"season"`
	Occasions []string  `json:"occasion"`
	ImageURL  string    `json:"imageUrl"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateInput is the payload for a new item.
type CreateInput struct {
	Name      string   `json:"name"`
	Category  string   `json:"category"`
	Color     string   `json:"color"`
	Seasons   []string `json:"season"`
	Occasions []string `json:"occasion"`
	ImageURL  string   `json:"imageUrl"`
}

// Filter narrows a listing. Empty fields match everything; Seasons matches
// items sharing at least one season.
type Filter struct {
	Category string
	Seasons  []string
}

// Repository persists wardrobe items.
type Repository interface {
	Create(context context.Context, item *Item) error
	ListByOwner(context context.Context, userID string, filter Filter) ([]*Item, error)

	// Delete removes id only when it belongs to userID and reports whether a row went.
	Delete(context context.Context, id, userID string) (bool, error)
}
