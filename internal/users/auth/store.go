// Copyright (c) 2026 Smart Wardrobe. All rights reserved.
// Author: vigneshrv10

package auth

import (
	"context"
)

// # User Data Access

// UserRepository defines the data access contract for user accounts.
//
// Every Find method returns an apperr NOT_FOUND error when no row matches.
type UserRepository interface {

	/*
		FindByID returns the account with the given ID.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *User: Hydrated entity
		  - error: apperr.NotFound or database failures
	*/
	FindByID(context context.Context, id string) (*User, error)

	/*
		FindByEmail returns the account with the given (lowercase) email.

		Parameters:
		  - context: context.Context
		  - email: string

		Returns:
		  - *User: Hydrated entity
		  - error: apperr.NotFound or database failures
	*/
	FindByEmail(context context.Context, email string) (*User, error)

	/*
		FindByUsername returns the account with the given (lowercase) username.

		Parameters:
		  - context: context.Context
		  - username: string

		Returns:
		  - *User: Hydrated entity
		  - error: apperr.NotFound or database failures
	*/
	FindByUsername(context context.Context, username string) (*User, error)

	/*
		FindByExternalID returns the account linked to an identity-provider subject.

		Parameters:
		  - context: context.Context
		  - externalID: string

		Returns:
		  - *User: Hydrated entity
		  - error: apperr.NotFound or database failures
	*/
	FindByExternalID(context context.Context, externalID string) (*User, error)

	/*
		Create persists a brand-new user account.

		Parameters:
		  - context: context.Context
		  - user: *User

		Returns:
		  - error: apperr CONFLICT on a duplicate username/email, or persistence failures
	*/
	Create(context context.Context, user *User) error

	/*
		LinkExternal attaches an identity-provider subject to an existing account
		and switches its provider to google. The picture is replaced only when
		picture is non-nil.

		Parameters:
		  - context: context.Context
		  - userID: string
		  - externalID: string
		  - picture: *string

		Returns:
		  - *User: The upgraded entity
		  - error: apperr.NotFound or persistence failures
	*/
	LinkExternal(context context.Context, userID, externalID string, picture *string) (*User, error)
}

// # Volatile Data Access

// HandleStore keeps opaque session handles and the user they belong to.
type HandleStore interface {

	/*
		Set stores handle -> userID with the session lifetime.

		Parameters:
		  - context: context.Context
		  - handle: string
		  - userID: string

		Returns:
		  - error: Persistence failures
	*/
	Set(context context.Context, handle, userID string) error

	/*
		Get returns the user id behind a handle.

		Returns:
		  - string: UserID
		  - error: apperr.NotFound when the handle is unknown or expired
	*/
	Get(context context.Context, handle string) (string, error)

	/*
		Touch restarts the handle's lifetime.

		Returns:
		  - error: Persistence failures
	*/
	Touch(context context.Context, handle string) error

	/*
		Delete removes a handle. Deleting an unknown handle is not an error.

		Returns:
		  - error: Persistence failures
	*/
	Delete(context context.Context, handle string) error
}
