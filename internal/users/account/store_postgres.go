// Copyright (c) 2026 Smart Wardrobe. All rights reserved.
// Author: vigneshrv10

package account

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/apperr"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/database/schema"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/users/auth"
)

// # Repository Implementations

// PostgresAccountRepository implements [AccountRepository] using pgx.
type PostgresAccountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository creates a new Postgres implementation for profile management.
func NewAccountRepository(pool *pgxpool.Pool) *PostgresAccountRepository {
	return &PostgresAccountRepository{pool: pool}
}

// accountColumns matches the scan order of [auth.ScanUser].
var accountColumns = strings.Join(schema.UserAccount.Columns(), ", ")

/*
FindByID retrieves a user record from the users.account table.

Parameters:
  - context: context.Context
  - id: string (UUID)

Returns:
  - *auth.User: Hydrated identity entity
  - error: apperr.NotFound or database execution failure
*/
func (repository *PostgresAccountRepository) FindByID(context context.Context, id string) (*auth.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		accountColumns, schema.UserAccount.Table, schema.UserAccount.ID,
	)

	user, err := auth.ScanUser(repository.pool.QueryRow(context, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("User")
		}
		return nil, fmt.Errorf("postgres_account_repo_find_by_id_failed: %w", err)
	}

	return user, nil
}

/*
UpdateProfile modifies the mutable profile fields of a user.

Description: Every nil field in the patch keeps its stored value through
COALESCE, so one statement serves every partial combination.

Parameters:
  - context: context.Context
  - userID: string
  - patch: ProfilePatch

Returns:
  - *auth.User: The row after the update
  - error: apperr.NotFound or execution errors
*/
func (repository *PostgresAccountRepository) UpdateProfile(context context.Context, userID string, patch ProfilePatch) (*auth.User, error) {
	table := schema.UserAccount
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = COALESCE($2, %s),
		    %s = COALESCE($3, %s),
		    %s = COALESCE($4, %s),
		    %s = COALESCE($5, %s),
		    %s = $6
		WHERE %s = $1
		RETURNING %s`,
		table.Table,
		table.ProfilePicture, table.ProfilePicture,
		table.StylePreferences, table.StylePreferences,
		table.ColorPreferences, table.ColorPreferences,
		table.OccasionPreferences, table.OccasionPreferences,
		table.UpdatedAt,
		table.ID,
		accountColumns,
	)

	user, err := auth.ScanUser(repository.pool.QueryRow(context, query,
		userID,
		patch.ProfilePicture,
		patch.Preferences.Style,
		patch.Preferences.Colors,
		patch.Preferences.Occasions,
		time.Now(),
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("User")
		}
		return nil, fmt.Errorf("postgres_account_repo_update_profile_failed: %w", err)
	}

	return user, nil
}
