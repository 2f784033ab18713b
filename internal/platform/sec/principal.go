// Copyright (c) 2026 Smart Wardrobe. All rights reserved.
// Author: vigneshrv10

package sec

// Principal is the resolved identity attached to a request context.
//
// It is a transport-neutral projection of the stored user so that platform
// packages (middleware, request helpers) never import domain packages.
type Principal struct {
	UserID   string
	Username string
	Email    string
	Provider string
}
