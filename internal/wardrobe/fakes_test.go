// Copyright (c) 2026 Smart Wardrobe. All rights reserved.
// Author: vigneshrv10

package wardrobe

import (
	"context"
	"net/http"
	"slices"
	"sort"
	"time"

	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/ctxutil"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/sec"
)

// memoryItems filters and orders the way the SQL statements do.
type memoryItems struct {
	items []*Item
	err   error
}

func (repository *memoryItems) Create(_ context.Context, item *Item) error {
	if repository.err != nil {
		return repository.err
	}
	copied := *item
	repository.items = append(repository.items, &copied)
	return nil
}

func (repository *memoryItems) ListByOwner(_ context.Context, userID string, filter Filter) ([]*Item, error) {
	if repository.err != nil {
		return nil, repository.err
	}

	matched := make([]*Item, 0)
	for _, item := range repository.items {
		if item.UserID != userID {
			continue
		}
		if filter.Category != "" && item.Category != filter.Category {
			continue
		}
		if len(filter.Seasons) > 0 && !slices.ContainsFunc(filter.Seasons, func(season string) bool {
			return slices.Contains(item.Seasons, season)
		}) {
			continue
		}
		matched = append(matched, item)
	}

	sort.SliceStable(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })
	return matched, nil
}

func (repository *memoryItems) Delete(_ context.Context, id, userID string) (bool, error) {
	if repository.err != nil {
		return false, repository.err
	}
	for i, item := range repository.items {
		if item.ID == id && item.UserID == userID {
			repository.items = append(repository.items[:i], repository.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type recordingStore struct {
	keys []string
}

func (store *recordingStore) Put(_ context.Context, key, _ string, _ []byte) (string, error) {
	store.keys = append(store.keys, key)
	return "https://cdn.example.com/" + key, nil
}

// newTestService returns a service whose clock advances one second per call.
func newTestService(repository Repository, images *recordingStore) *Service {
	service := NewService(repository, images)
	tick := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	service.now = func() time.Time {
		tick = tick.Add(time.Second)
		return tick
	}
	return service
}

func validInput() CreateInput {
	return CreateInput{
		Name:      "Oxford shirt",
		Category:  "tops",
		Color:     "white",
		Seasons:   []string{"spring", "Summer"},
		Occasions: []string{"work", " "},
		ImageURL:  "https://cdn.example.com/wardrobe/u-1/a.jpg",
	}
}

func authenticated(request *http.Request, userID string) *http.Request {
	return request.WithContext(ctxutil.WithPrincipal(request.Context(), &sec.Principal{UserID: userID}))
}
