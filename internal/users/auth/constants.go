// Copyright (c) 2026 Smart Wardrobe. All rights reserved.
// Author: vigneshrv10

package auth

import (
	"strconv"
	"time"

	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/constants"
)

// # Authentication Constraints

const (
	// AppTokenTTL is how long a register/login token remains valid.
	AppTokenTTL = constants.SessionTTL

	// HandleTTL is the lifetime of an opaque session handle in Redis.
	// It equals the cookie max-age so both expire together.
	HandleTTL = constants.SessionTTL

	// HandleLength is the byte length of the random session handle.
	HandleLength = 32

	// IdentityTokenTTL bounds how long a completed Google sign-in may be
	// replayed before the user must sign in again.
	IdentityTokenTTL = constants.SessionTTL

	// MinPasswordLength is the shortest accepted local password.
	MinPasswordLength = 6
)

// fallbackUsername is used when the email local part is already taken.
func fallbackUsername(now time.Time) string {
	return "user_" + strconv.FormatInt(now.UnixMilli(), 10)
}
