// Copyright (c) 2026 Smart Wardrobe. All rights reserved.
// Author: vigneshrv10

package recommendation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/apperr"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/ctxutil"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/pkg/pagination"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/pkg/pointer"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/pkg/uuid"
)

const msgNotFound = "Recommendation not found"

// Service implements saving, listing and deleting recommendations.
type Service struct {
	repository Repository
	now        func() time.Time
}

// NewService constructs a [Service].
func NewService(repository Repository) *Service {
	return &Service{repository: repository, now: time.Now}
}

/*
Save stores a recommendation owned by ownerID.

Description: The raw event date is kept and its parsed calendar date is
recorded alongside. The outfit's image reference is stored as imageUrl.

Returns:
  - *Recommendation: The stored record
  - error: ValidationError "Missing required fields"
*/
func (service *Service) Save(context context.Context, ownerID string, input SaveInput) (*Recommendation, error) {
	input.EventTitle = strings.TrimSpace(input.EventTitle)
	input.EventType = strings.TrimSpace(input.EventType)
	input.EventDate = strings.TrimSpace(input.EventDate)
	input.EventLocation = strings.TrimSpace(input.EventLocation)

	if input.EventTitle == "" || input.EventType == "" || input.EventDate == "" || input.EventLocation == "" {
		return nil, apperr.ValidationError("Missing required fields")
	}

	recommendation := &Recommendation{
		ID:            uuid.New(),
		UserID:        ownerID,
		EventTitle:    input.EventTitle,
		EventType:     input.EventType,
		EventDate:     input.EventDate,
		EventOn:       ParseEventDate(input.EventDate),
		EventLocation: input.EventLocation,
		Clothing:      pointer.NonEmpty(input.Clothing),
		Weather:       input.Weather,
		CreatedAt:     service.now().UTC(),
	}

	if outfit := input.Outfit; outfit != nil {
		imageURL := outfit.Image
		if imageURL == nil {
			imageURL = outfit.ImageURL
		}
		recommendation.Outfit = &Outfit{
			Prompt:          outfit.Prompt,
			ImageURL:        imageURL,
			PaymentRequired: outfit.PaymentRequired,
			Message:         pointer.NonEmpty(outfit.Message),
		}
	}

	if err := service.repository.Create(context, recommendation); err != nil {
		return nil, apperr.Internal(fmt.Errorf("recommendation_save_failed: %w", err))
	}

	ctxutil.GetLogger(context).Info("recommendation_saved",
		"recommendation_id", recommendation.ID,
		"user_id", ownerID,
		"dated", recommendation.EventOn != nil,
	)
	return recommendation, nil
}

// ListUpcoming returns ownerID's recommendations, soonest event first.
func (service *Service) ListUpcoming(context context.Context, ownerID string) ([]*Recommendation, error) {
	recommendations, err := service.repository.ListByOwner(context, ownerID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return recommendations, nil
}

// ListAll returns one page of every recommendation, newest first.
func (service *Service) ListAll(context context.Context, params pagination.Params) ([]*Recommendation, pagination.Meta, error) {
	recommendations, total, err := service.repository.List(context, params)
	if err != nil {
		return nil, pagination.Meta{}, apperr.Internal(err)
	}
	return recommendations, pagination.NewMeta(params, total), nil
}

/*
Delete removes id when requesterID owns it.

Description: A missing record, a malformed id and another user's record all
answer the same NOT_FOUND so existence is not revealed.

Returns:
  - error: ValidationError when id is blank, NOT_FOUND "Recommendation not found"
*/
func (service *Service) Delete(context context.Context, id, requesterID string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return apperr.ValidationError("Recommendation ID is required")
	}
	if !uuid.Valid(id) {
		return apperr.NotFoundMessage(msgNotFound)
	}

	deleted, err := service.repository.Delete(context, id, requesterID)
	if err != nil {
		return apperr.Internal(err)
	}
	if !deleted {
		return apperr.NotFoundMessage(msgNotFound)
	}

	ctxutil.GetLogger(context).Info("recommendation_deleted", "recommendation_id", id, "user_id", requesterID)
	return nil
}
