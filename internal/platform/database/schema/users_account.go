// Copyright (c) 2026 Smart Wardrobe. All rights reserved.
// Author: vigneshrv10

package schema

// UserAccountTable represents the 'users.account' table
type UserAccountTable struct {
	Table               string
	ID                  string
	Username            string
	Email               string
	Password            string
	DisplayName         string
	ProfilePicture      string
	ExternalID          string
	AuthProvider        string
	StylePreferences    string
	ColorPreferences    string
	OccasionPreferences string
	CreatedAt           string
	UpdatedAt           string
}

// UserAccount is the schema definition for users.account
var UserAccount = UserAccountTable{
	Table:               "users.account",
	ID:                  "id",
	Username:            "username",
	Email:               "email",
	Password:            "passwordhash",
	DisplayName:         "displayname",
	ProfilePicture:      "profilepicture",
	ExternalID:          "externalid",
	AuthProvider:        "authprovider",
	StylePreferences:    "stylepreferences",
	ColorPreferences:    "colorpreferences",
	OccasionPreferences: "occasionpreferences",
	CreatedAt:           "createdat",
	UpdatedAt:           "updatedat",
}

// Columns returns all standard column names
func (t UserAccountTable) Columns() []string {
	return []string{
		t.ID, t.Username, t.Email, t.Password, t.DisplayName, t.ProfilePicture,
		t.ExternalID, t.AuthProvider, t.StylePreferences, t.ColorPreferences,
		t.OccasionPreferences, t.CreatedAt, t.UpdatedAt,
	}
}
