// Copyright (c) 2026 Smart Wardrobe. All rights reserved.
// Author: vigneshrv10

package wardrobe

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/apperr"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/ctxutil"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/storage"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/validate"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/pkg/slice"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/pkg/uuid"
)

const (
	msgItemNotFound  = "Item not found or unauthorized"
	imagePrefix      = "wardrobe"
	maxNameLength    = 120
	maxOccasionCount = 20
)

// Service implements the wardrobe catalog.
type Service struct {
	repository Repository
	images     storage.Store
	now        func() time.Time
}

// NewService constructs a [Service].
func NewService(repository Repository, images storage.Store) *Service {
	return &Service{repository: repository, images: images, now: time.Now}
}

/*
Create validates and stores a new item for ownerID.

Description: Checks run in order and stop at the first failing group:
required fields, category membership, then season membership. Seasons are
lowercased; blank occasions are dropped.

Returns:
  - *Item: The stored item
  - error: ValidationError with the catalog's messages
*/
func (service *Service) Create(context context.Context, ownerID string, input CreateInput) (*Item, error) {
	item := &Item{
		Name:      strings.TrimSpace(input.Name),
		Category:  strings.ToLower(strings.TrimSpace(input.Category)),
		Color:     strings.TrimSpace(input.Color),
		Seasons:   clean(input.Seasons, true),
		Occasions: clean(input.Occasions, false),
		ImageURL:  strings.TrimSpace(input.ImageURL),
	}

	// ── 1. Required fields ────────────────────────────────────────────────
	required := &validate.Validator{}
	required.Required("name", item.Name).
		Required("category", item.Category).
		Required("color", item.Color).
		Required("imageUrl", item.ImageURL).
		Custom("season", len(item.Seasons) == 0, "At least one season is required").
		Custom("occasion", len(item.Occasions) == 0, "At least one occasion is required")
	if err := required.ErrMessage("Missing required fields"); err != nil {
		return nil, err
	}

	// ── 2. Closed sets ────────────────────────────────────────────────────
	if !slices.Contains(Categories, item.Category) {
		return nil, apperr.ValidationError("Invalid category. Must be one of: " + strings.Join(Categories, ", "))
	}

	invalid := slice.Filter(item.Seasons, func(season string) bool { return !slices.Contains(Seasons, season) })
	if len(invalid) > 0 {
		return nil, apperr.ValidationError(fmt.Sprintf("Invalid seasons: %s. Valid seasons are: %s",
			strings.Join(invalid, ", "), strings.Join(Seasons, ", ")))
	}

	// ── 3. Bounds ─────────────────────────────────────────────────────────
	bounds := &validate.Validator{}
	bounds.MaxLen("name", item.Name, maxNameLength).
		Custom("occasion", len(item.Occasions) > maxOccasionCount, fmt.Sprintf("Maximum %d occasions", maxOccasionCount))
	if err := bounds.Err(); err != nil {
		return nil, err
	}

	now := service.now().UTC()
	item.ID = uuid.New()
	item.UserID = ownerID
	item.CreatedAt = now
	item.UpdatedAt = now

	if err := service.repository.Create(context, item); err != nil {
		return nil, apperr.Internal(fmt.Errorf("wardrobe_create_failed: %w", err))
	}

	ctxutil.GetLogger(context).Info("wardrobe_item_created",
		"item_id", item.ID,
		"user_id", ownerID,
		"category", item.Category,
	)
	return item, nil
}

// List returns ownerID's items newest first, narrowed by filter.
func (service *Service) List(context context.Context, ownerID string, filter Filter) ([]*Item, error) {
	filter.Category = strings.ToLower(strings.TrimSpace(filter.Category))

	v := &validate.Validator{}
	if filter.Category != "" {
		v.OneOf("category", filter.Category, Categories...)
	}
	v.Values("season", filter.Seasons, Seasons...)
	if err := v.Err(); err != nil {
		return nil, err
	}

	items, err := service.repository.ListByOwner(context, ownerID, filter)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return items, nil
}

/*
Delete removes id when requesterID owns it.

Returns:
  - error: ValidationError when id is blank, NOT_FOUND "Item not found or unauthorized"
*/
func (service *Service) Delete(context context.Context, id, requesterID string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return apperr.ValidationError("Item ID is required")
	}
	if !uuid.Valid(id) {
		return apperr.NotFoundMessage(msgItemNotFound)
	}

	deleted, err := service.repository.Delete(context, id, requesterID)
	if err != nil {
		return apperr.Internal(err)
	}
	if !deleted {
		return apperr.NotFoundMessage(msgItemNotFound)
	}

	ctxutil.GetLogger(context).Info("wardrobe_item_deleted", "item_id", id, "user_id", requesterID)
	return nil
}

// UploadImage stores an item photo and returns its reference.
func (service *Service) UploadImage(context context.Context, ownerID, filename, contentType string, data []byte) (string, error) {
	key := storage.ObjectKey(imagePrefix+"/"+ownerID, filename, contentType)

	url, err := service.images.Put(context, key, contentType, data)
	if err != nil {
		return "", apperr.Internal(fmt.Errorf("wardrobe_image_upload_failed: %w", err))
	}
	return url, nil
}

func clean(values []string, lower bool) []string {
	trimmed := slice.Map(values, func(value string) string {
		value = strings.TrimSpace(value)
		if lower {
			value = strings.ToLower(value)
		}
		return value
	})
	return slice.Filter(trimmed, func(value string) bool { return value != "" })
}
