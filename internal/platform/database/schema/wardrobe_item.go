// Copyright (c) 2026 Smart Wardrobe. All rights reserved.
// Author: vigneshrv10

package schema

// WardrobeItemTable represents the 'wardrobe.item' table
type WardrobeItemTable struct {
	Table     string
	ID        string
	UserID    string
	Name      string
	Category  string
	Color     string
	Seasons   string
	Occasions string
	ImageURL  string
	CreatedAt string
	UpdatedAt string
}

// WardrobeItem is the schema definition for wardrobe.item
var WardrobeItem = WardrobeItemTable{
	Table:     "wardrobe.item",
	ID:        "id",
	UserID:    "userid",
	Name:      "name",
	Category:  "category",
	Color:     "color",
	Seasons:   "seasons",
	Occasions: "occasions",
	ImageURL:  "imageurl",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

func (t WardrobeItemTable) Columns() []string {
	return []string{
		t.ID, t.UserID, t.Name, t.Category, t.Color, t.Seasons,
		t.Occasions, t.ImageURL, t.CreatedAt, t.UpdatedAt,
	}
}
