// Copyright (c) 2026 Smart Wardrobe. All rights reserved.
// Author: vigneshrv10

package wardrobe

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/database/schema"
)

// PostgresRepository implements [Repository] on wardrobe.item.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a PostgreSQL wardrobe repository.
func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

var itemColumns = strings.Join(schema.WardrobeItem.Columns(), ", ")

// Create inserts an item.
func (repository *PostgresRepository) Create(context context.Context, item *Item) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		schema.WardrobeItem.Table, itemColumns)

	_, err := repository.pool.Exec(context, query,
		item.ID,
		item.UserID,
		item.Name,
		item.Category,
		item.Color,
		item.Seasons,
		item.Occasions,
		item.ImageURL,
		item.CreatedAt,
		item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("postgres_wardrobe_create_failed: %w", err)
	}
	return nil
}

/*
ListByOwner returns userID's items newest first.

Description: The category filter is an equality match; the season filter
uses array overlap (&&).
*/
func (repository *PostgresRepository) ListByOwner(context context.Context, userID string, filter Filter) ([]*Item, error) {
	var queryBuilder strings.Builder
	args := []any{userID}

	queryBuilder.WriteString(fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		itemColumns, schema.WardrobeItem.Table, schema.WardrobeItem.UserID))

	if filter.Category != "" {
		args = append(args, filter.Category)
		queryBuilder.WriteString(fmt.Sprintf(" AND %s = $%d", schema.WardrobeItem.Category, len(args)))
	}
	if len(filter.Seasons) > 0 {
		args = append(args, filter.Seasons)
		queryBuilder.WriteString(fmt.Sprintf(" AND %s && $%d", schema.WardrobeItem.Seasons, len(args)))
	}

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY %s DESC", schema.WardrobeItem.CreatedAt))

	rows, err := repository.pool.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("postgres_wardrobe_list_failed: %w", err)
	}
	defer rows.Close()

	items := make([]*Item, 0)
	for rows.Next() {
		var item Item
		err := rows.Scan(
			&item.ID,
			&item.UserID,
			&item.Name,
			&item.Category,
			&item.Color,
			&item.Seasons,
			&item.Occasions,
			&item.ImageURL,
			&item.CreatedAt,
			&item.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("postgres_wardrobe_scan_failed: %w", err)
		}
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_wardrobe_rows_failed: %w", err)
	}
	return items, nil
}

// Delete removes the row only when both id and owner match.
func (repository *PostgresRepository) Delete(context context.Context, id, userID string) (bool, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		schema.WardrobeItem.Table, schema.WardrobeItem.ID, schema.WardrobeItem.UserID)

	result, err := repository.pool.Exec(context, query, id, userID)
	if err != nil {
		return false, fmt.Errorf("postgres_wardrobe_delete_failed: %w", err)
	}
	return result.RowsAffected() > 0, nil
}
