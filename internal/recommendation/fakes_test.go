// Copyright (c) 2026 Smart Wardrobe. All rights reserved.
// Author: vigneshrv10

package recommendation

import (
	"context"
	"sort"
	"time"

	"github.com/vigneshrv10/AI-driven-smart-wardrobe/pkg/pagination"
)

// memoryRepository orders rows the way the SQL statements do.
type memoryRepository struct {
	rows []*Recommendation
	err  error
}

func (repository *memoryRepository) Create(_ context.Context, recommendation *Recommendation) error {
	if repository.err != nil {
		return repository.err
	}
	copied := *recommendation
	repository.rows = append(repository.rows, &copied)
	return nil
}

func (repository *memoryRepository) ListByOwner(_ context.Context, userID string) ([]*Recommendation, error) {
	if repository.err != nil {
		return nil, repository.err
	}

	owned := make([]*Recommendation, 0)
	for _, row := range repository.rows {
		if row.UserID == userID {
			owned = append(owned, row)
		}
	}

	sort.SliceStable(owned, func(i, j int) bool {
		left, right := owned[i].EventOn, owned[j].EventOn
		switch {
		case left != nil && right == nil:
			return true
		case left == nil && right != nil:
			return false
		case left != nil && right != nil && !left.Equal(*right):
			return left.Before(*right)
		}
		return owned[i].CreatedAt.Before(owned[j].CreatedAt)
	})
	return owned, nil
}

func (repository *memoryRepository) List(_ context.Context, params pagination.Params) ([]*Recommendation, int, error) {
	if repository.err != nil {
		return nil, 0, repository.err
	}

	all := append([]*Recommendation(nil), repository.rows...)
	sort.SliceStable(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })

	start := min(params.Offset(), len(all))
	end := min(start+params.Limit, len(all))
	return all[start:end], len(all), nil
}

func (repository *memoryRepository) Delete(_ context.Context, id, userID string) (bool, error) {
	if repository.err != nil {
		return false, repository.err
	}
	for i, row := range repository.rows {
		if row.ID == id && row.UserID == userID {
			repository.rows = append(repository.rows[:i], repository.rows[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// newTestService returns a service whose clock advances one minute per call.
func newTestService(repository Repository) *Service {
	service := NewService(repository)
	tick := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	service.now = func() time.Time {
		tick = tick.Add(time.Minute)
		return tick
	}
	return service
}
