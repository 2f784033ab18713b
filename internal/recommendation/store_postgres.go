// Copyright (c) 2026 Smart Wardrobe. All rights reserved.
// Author: vigneshrv10

package recommendation

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/database/schema"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/weather"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/pkg/pagination"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/pkg/pointer"
)

// PostgresRepository implements [Repository] on wardrobe.recommendation.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a PostgreSQL recommendation repository.
func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

var (
	recommendationColumns = strings.Join(schema.Recommendation.Columns(), ", ")
	recommendationArgs    = placeholders(len(schema.Recommendation.Columns()))
)

func placeholders(count int) string {
	parts := make([]string, count)
	for i := range parts {
		parts[i] = fmt.Sprintf("$%d", i+1)
	}
	return strings.Join(parts, ", ")
}

/*
Create inserts a recommendation. The weather snapshot is flattened into its
four nullable columns; a nil outfit leaves prompt and image empty.
*/
func (repository *PostgresRepository) Create(context context.Context, recommendation *Recommendation) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s)`,
		schema.Recommendation.Table, recommendationColumns, recommendationArgs)

	var (
		temperature                           *float64
		description, weatherLocation, country *string
		prompt, imageURL, message             *string
		paymentRequired                       bool
	)
	if snapshot := recommendation.Weather; snapshot != nil {
		temperature = &snapshot.Temperature
		description = &snapshot.Description
		weatherLocation = &snapshot.Location
		country = &snapshot.Country
	}
	if outfit := recommendation.Outfit; outfit != nil {
		prompt = &outfit.Prompt
		imageURL = outfit.ImageURL
		paymentRequired = outfit.PaymentRequired
		message = outfit.Message
	}

	_, err := repository.pool.Exec(context, query,
		recommendation.ID,
		recommendation.UserID,
		recommendation.EventTitle,
		recommendation.EventType,
		recommendation.EventDate,
		recommendation.EventOn,
		recommendation.EventLocation,
		recommendation.Clothing,
		temperature,
		description,
		weatherLocation,
		country,
		prompt,
		imageURL,
		paymentRequired,
		message,
		recommendation.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("postgres_recommendation_create_failed: %w", err)
	}
	return nil
}

// ListByOwner returns userID's recommendations soonest event first.
func (repository *PostgresRepository) ListByOwner(context context.Context, userID string) ([]*Recommendation, error) {
	query := fmt.Sprintf(`
		SELECT %s, 0 FROM %s
		WHERE %s = $1
		ORDER BY %s ASC NULLS LAST, %s ASC`,
		recommendationColumns,
		schema.Recommendation.Table,
		schema.Recommendation.UserID,
		schema.Recommendation.EventOn,
		schema.Recommendation.CreatedAt,
	)

	rows, err := repository.pool.Query(context, query, userID)
	if err != nil {
		return nil, fmt.Errorf("postgres_recommendation_list_owner_failed: %w", err)
	}

	recommendations, _, err := collect(rows)
	return recommendations, err
}

/*
List returns one page of every recommendation, newest first.

Returns:
  - []*Recommendation: The page
  - int: Total recommendations, from COUNT(*) OVER()
*/
func (repository *PostgresRepository) List(context context.Context, params pagination.Params) ([]*Recommendation, int, error) {
	query := fmt.Sprintf(`
		SELECT %s, COUNT(*) OVER() AS total_count FROM %s
		ORDER BY %s DESC
		LIMIT $1 OFFSET $2`,
		recommendationColumns,
		schema.Recommendation.Table,
		schema.Recommendation.CreatedAt,
	)

	rows, err := repository.pool.Query(context, query, params.Limit, params.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("postgres_recommendation_list_failed: %w", err)
	}

	return collect(rows)
}

// Delete removes the row only when both id and owner match.
func (repository *PostgresRepository) Delete(context context.Context, id, userID string) (bool, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		schema.Recommendation.Table,
		schema.Recommendation.ID,
		schema.Recommendation.UserID,
	)

	result, err := repository.pool.Exec(context, query, id, userID)
	if err != nil {
		return false, fmt.Errorf("postgres_recommendation_delete_failed: %w", err)
	}
	return result.RowsAffected() > 0, nil
}

// collect scans rows selected as the full column list plus a trailing count.
func collect(rows pgx.Rows) ([]*Recommendation, int, error) {
	defer rows.Close()

	recommendations := make([]*Recommendation, 0)
	total := 0

	for rows.Next() {
		var (
			item                                  Recommendation
			temperature                           *float64
			description, weatherLocation, country *string
			prompt, imageURL, message             *string
			paymentRequired                       bool
		)

		err := rows.Scan(
			&item.ID,
			&item.UserID,
			&item.EventTitle,
			&item.EventType,
			&item.EventDate,
			&item.EventOn,
			&item.EventLocation,
			&item.Clothing,
			&temperature,
			&description,
			&weatherLocation,
			&country,
			&prompt,
			&imageURL,
			&paymentRequired,
			&message,
			&item.CreatedAt,
			&total,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("postgres_recommendation_scan_failed: %w", err)
		}

		if temperature != nil || description != nil || weatherLocation != nil || country != nil {
			item.Weather = &weather.Snapshot{
				Temperature: pointer.Val(temperature),
				Description: pointer.Val(description),
				Location:    pointer.Val(weatherLocation),
				Country:     pointer.Val(country),
			}
		}
		if prompt != nil || imageURL != nil || paymentRequired {
			item.Outfit = &Outfit{
				Prompt:          pointer.Val(prompt),
				ImageURL:        imageURL,
				PaymentRequired: paymentRequired,
				Message:         message,
			}
		}

		recommendations = append(recommendations, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("postgres_recommendation_rows_failed: %w", err)
	}
	return recommendations, total, nil
}
