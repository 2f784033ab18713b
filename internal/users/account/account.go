// Copyright (c) 2026 Smart Wardrobe. All rights reserved.
// Author: vigneshrv10

/*
Package account handles profile management for signed-in users.

It lets a user change their profile picture, upload a new avatar image, and
save the style, color, and occasion preferences that feed outfit suggestions.

# Architecture

  - Domain: This package depends on the auth package for the User entity.
  - Storage: Avatar bytes go through [storage.Store]; only the returned
    reference is written to users.account.
*/
package account

import (
	"context"

	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/users/auth"
)

// # Domain Entities

// PreferencesPatch carries the preference lists a client chose to replace.
// A nil field leaves the stored list unchanged.
type PreferencesPatch struct {
	Style     *[]string `json:"style"`
	Colors    *[]string `json:"colors"`
	Occasions *[]string `json:"occasions"`
}

// ProfilePatch is a partial profile update.
type ProfilePatch struct {
	ProfilePicture *string
	Preferences    PreferencesPatch
}

// IsEmpty reports whether the patch would change nothing.
func (patch ProfilePatch) IsEmpty() bool {
	return patch.ProfilePicture == nil &&
		patch.Preferences.Style == nil &&
		patch.Preferences.Colors == nil &&
		patch.Preferences.Occasions == nil
}

// # Repository Contracts

// AccountRepository defines the persistence contract for profile data.
type AccountRepository interface {
	/*
		FindByID retrieves a user record by their unique ID.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *auth.User: The found user
		  - error: apperr.NotFound or database failures
	*/
	FindByID(context context.Context, id string) (*auth.User, error)

	/*
		UpdateProfile applies a partial profile update and returns the new state.

		Parameters:
		  - context: context.Context
		  - userID: string
		  - patch: ProfilePatch

		Returns:
		  - *auth.User: The updated user
		  - error: apperr.NotFound or database failures
	*/
	UpdateProfile(context context.Context, userID string, patch ProfilePatch) (*auth.User, error)
}
