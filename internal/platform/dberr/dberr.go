// Copyright (c) 2026 Smart Wardrobe. All rights reserved.
// Author: vigneshrv10

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/apperr"
)

// uniqueViolation is the Postgres SQLSTATE for a unique-constraint collision.
const uniqueViolation = "23505"

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
func Wrap(err error, resource string) error {
	if err == nil {
		return nil
	}

	// 1. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound(resource)
	}

	// 2. Unique violations surface as 409 with the constraint kept as the cause
	var pgError *pgconn.PgError
	if errors.As(err, &pgError) && pgError.Code == uniqueViolation {
		return &apperr.AppError{
			Code:       "CONFLICT",
			Message:    resource + " already exists",
			HTTPStatus: 409,
			Cause:      err,
		}
	}

	// 3. Everything else is an Internal Server Error
	return apperr.Internal(err)
}

// IsUniqueViolation reports whether err is a unique-constraint collision on
// the named constraint. An empty constraint matches any unique violation.
func IsUniqueViolation(err error, constraint string) bool {
	var pgError *pgconn.PgError
	if !errors.As(err, &pgError) || pgError.Code != uniqueViolation {
		return false
	}
	return constraint == "" || pgError.ConstraintName == constraint
}
