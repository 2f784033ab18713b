// Copyright (c) 2026 Smart Wardrobe. All rights reserved.
// Author: vigneshrv10

// # err Mapping
//
// Storage-specific errors (pgx.ErrNoRows, unique violations) are mapped to
// [apperr.AppError] types so handlers never see driver details.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/apperr"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/dberr"
)

// # User Repository

// PostgresUserRepository implements the UserRepository interface using pgx.
type PostgresUserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new PostgreSQL implementation of the UserRepository.
func NewUserRepository(pool *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{pool: pool}
}

// userColumns is the SELECT list scanned by [scanUser].
const userColumns = `
	id, username, email, passwordhash, displayname, profilepicture, externalid, authprovider,
	stylepreferences, colorpreferences, occasionpreferences, createdat, updatedat`

// ScanUser hydrates a User from a row selected with the full account column list.
// It is exported for the account package, which shares the table.
func ScanUser(row pgx.Row) (*User, error) {
	user := &User{}
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.Name,
		&user.ProfilePicture,
		&user.ExternalID,
		&user.AuthProvider,
		&user.Preferences.Style,
		&user.Preferences.Colors,
		&user.Preferences.Occasions,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

/*
Create persists a new user record into the users.account table.

Description: Initializes timestamps and empty preference arrays.

Parameters:
  - context: context.Context
  - user: *User (Entity to persist)

Returns:
  - error: apperr CONFLICT on a unique violation, or connectivity errors
*/
func (repository *PostgresUserRepository) Create(context context.Context, user *User) error {
	const query = `
		INSERT INTO users.account (
			id, username, email, passwordhash, displayname, profilepicture, externalid, authprovider,
			stylepreferences, colorpreferences, occasionpreferences, createdat, updatedat
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now
	normalizePreferences(&user.Preferences)

	_, err := repository.pool.Exec(context, query,
		user.ID,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.Name,
		user.ProfilePicture,
		user.ExternalID,
		user.AuthProvider,
		user.Preferences.Style,
		user.Preferences.Colors,
		user.Preferences.Occasions,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		switch {
		case dberr.IsUniqueViolation(err, "account_email_key"):
			return apperr.Conflict("Email already registered")
		case dberr.IsUniqueViolation(err, "account_username_key"):
			return apperr.Conflict("Username already taken")
		case dberr.IsUniqueViolation(err, ""):
			return apperr.Conflict("Account already exists")
		}
		return fmt.Errorf("postgres_user_repo_create_failed: %w", err)
	}

	return nil
}

/*
FindByID retrieves a user record by their unique ID.

Parameters:
  - context: context.Context
  - id: string (UUIDv7)

Returns:
  - *User: Hydrated account entity
  - error: apperr.NotFound or execution errors
*/
func (repository *PostgresUserRepository) FindByID(context context.Context, id string) (*User, error) {
	return repository.findOne(context, "id", id, "find_by_id")
}

/*
FindByEmail retrieves a user record by their unique email address.

Parameters:
  - context: context.Context
  - email: string

Returns:
  - *User: Hydrated account entity
  - error: apperr.NotFound or database errors
*/
func (repository *PostgresUserRepository) FindByEmail(context context.Context, email string) (*User, error) {
	return repository.findOne(context, "email", email, "find_by_email")
}

/*
FindByUsername retrieves a user record by their unique username.

Parameters:
  - context: context.Context
  - username: string

Returns:
  - *User: Hydrated account entity
  - error: apperr.NotFound or database errors
*/
func (repository *PostgresUserRepository) FindByUsername(context context.Context, username string) (*User, error) {
	return repository.findOne(context, "username", username, "find_by_username")
}

/*
FindByExternalID retrieves the account linked to an identity-provider subject.

Parameters:
  - context: context.Context
  - externalID: string

Returns:
  - *User: Hydrated account entity
  - error: apperr.NotFound or database errors
*/
func (repository *PostgresUserRepository) FindByExternalID(context context.Context, externalID string) (*User, error) {
	return repository.findOne(context, "externalid", externalID, "find_by_external_id")
}

// findOne runs a single-row lookup on a unique column. column is never user input.
func (repository *PostgresUserRepository) findOne(context context.Context, column, value, action string) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM users.account WHERE ` + column + ` = $1`

	user, err := ScanUser(repository.pool.QueryRow(context, query, value))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("User")
		}
		return nil, fmt.Errorf("postgres_user_repo_%s_failed: %w", action, err)
	}

	return user, nil
}

/*
LinkExternal upgrades an account in place after an identity-provider sign-in.

Description: Sets externalid and authprovider = 'google'. The stored picture
is kept when the provider supplied none.

Parameters:
  - context: context.Context
  - userID: string
  - externalID: string
  - picture: *string

Returns:
  - *User: The upgraded entity
  - error: apperr.NotFound or database errors
*/
func (repository *PostgresUserRepository) LinkExternal(context context.Context, userID, externalID string, picture *string) (*User, error) {
	query := `
		UPDATE users.account
		SET externalid = $2, authprovider = $3,
		    profilepicture = COALESCE($4, profilepicture), updatedat = $5
		WHERE id = $1
		RETURNING ` + userColumns

	user, err := ScanUser(repository.pool.QueryRow(context, query,
		userID, externalID, ProviderGoogle, picture, time.Now(),
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("User")
		}
		if dberr.IsUniqueViolation(err, "account_externalid_key") {
			return nil, apperr.Conflict("External identity is linked to another account")
		}
		return nil, fmt.Errorf("postgres_user_repo_link_external_failed: %w", err)
	}

	return user, nil
}

// normalizePreferences replaces nil slices so NOT NULL array columns accept them.
func normalizePreferences(preferences *Preferences) {
	if preferences.Style == nil {
		preferences.Style = []string{}
	}
	if preferences.Colors == nil {
		preferences.Colors = []string{}
	}
	if preferences.Occasions == nil {
		preferences.Occasions = []string{}
	}
}
