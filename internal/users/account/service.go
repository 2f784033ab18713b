// Copyright (c) 2026 Smart Wardrobe. All rights reserved.
// Author: vigneshrv10

package account

import (
	"context"
	"fmt"
	"strings"

	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/apperr"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/ctxutil"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/storage"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/users/auth"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/pkg/slice"
)

// avatarPrefix namespaces avatar objects in the bucket.
const avatarPrefix = "avatars"

// # Service Layer

// Service orchestrates profile updates and avatar uploads.
type Service struct {
	accountRepository AccountRepository
	images            storage.Store
}

// NewService constructs a new [Service] with its dependencies.
func NewService(accountRepo AccountRepository, images storage.Store) *Service {
	return &Service{accountRepository: accountRepo, images: images}
}

/*
GetProfile retrieves the full private identity of a user.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - *auth.User: The hydrated user profile
  - error: Not found or execution failures
*/
func (service *Service) GetProfile(context context.Context, userID string) (*auth.User, error) {
	return service.accountRepository.FindByID(context, userID)
}

/*
UpdateProfile applies a partial set of changes to a user's profile.

Description: Preference values are trimmed and empty entries dropped. An
empty profile picture string is treated as "not provided". A patch that
changes nothing returns the current profile untouched.

Parameters:
  - context: context.Context
  - userID: string
  - patch: ProfilePatch

Returns:
  - *auth.User: The updated profile
  - error: Not found or execution failures
*/
func (service *Service) UpdateProfile(context context.Context, userID string, patch ProfilePatch) (*auth.User, error) {
	if patch.ProfilePicture != nil && strings.TrimSpace(*patch.ProfilePicture) == "" {
		patch.ProfilePicture = nil
	}
	patch.Preferences.Style = cleanList(patch.Preferences.Style)
	patch.Preferences.Colors = cleanList(patch.Preferences.Colors)
	patch.Preferences.Occasions = cleanList(patch.Preferences.Occasions)

	if patch.IsEmpty() {
		return service.accountRepository.FindByID(context, userID)
	}

	user, err := service.accountRepository.UpdateProfile(context, userID, patch)
	if err != nil {
		return nil, err
	}

	ctxutil.GetLogger(context).Info("profile_updated", "user_id", userID)
	return user, nil
}

/*
UploadAvatar stores an image and makes it the user's profile picture.

Parameters:
  - context: context.Context
  - userID: string
  - filename: string (client-supplied, used only to shape the object key)
  - contentType: string
  - data: []byte

Returns:
  - string: The stored reference (object URL or data URI)
  - error: Storage or persistence failures
*/
func (service *Service) UploadAvatar(context context.Context, userID, filename, contentType string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", apperr.ValidationError("No image provided")
	}

	key := storage.ObjectKey(avatarPrefix+"/"+userID, filename, contentType)
	reference, err := service.images.Put(context, key, contentType, data)
	if err != nil {
		return "", fmt.Errorf("account_service_avatar_store_failed: %w", err)
	}

	if _, err := service.accountRepository.UpdateProfile(context, userID, ProfilePatch{ProfilePicture: &reference}); err != nil {
		return "", err
	}

	ctxutil.GetLogger(context).Info("avatar_uploaded", "user_id", userID, "bytes", len(data))
	return reference, nil
}

// cleanList trims every entry and drops blanks. A nil list stays nil.
func cleanList(values *[]string) *[]string {
	if values == nil {
		return nil
	}
	trimmed := slice.Map(*values, strings.TrimSpace)
	cleaned := slice.Filter(trimmed, func(value string) bool { return value != "" })
	return &cleaned
}
