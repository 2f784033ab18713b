// Copyright (c) 2026 Smart Wardrobe. All rights reserved.
// Author: vigneshrv10

/*
Package auth implements the user identity and session layer.

It owns the User entity, local registration and login, the linking of
identity-provider sign-ins to stored users, and the ordered chain of
resolvers that turns request credentials into a user.

# Architecture

  - Store: Postgres for accounts, Redis for opaque session handles.
  - Service: Register, Login, Logout, LinkExternalIdentity, IssueSession.
  - Resolver: IdentityToken -> SessionHandle -> AppToken, first match wins.
*/
package auth

import (
	"time"

	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/sec"
)

// # Domain Entities

// Provider identifies how an account signs in.
type Provider string

const (
	ProviderLocal  Provider = "local"
	ProviderGoogle Provider = "google"
)

// Preferences holds the style hints a user saved on their profile.
type Preferences struct {
	Style     []string `json:"style"`
	Colors    []string `json:"colors"`
	Occasions []string `json:"occasions"`
}

// User represents a registered member of the wardrobe service.
type User struct {
	ID             string      `json:"id"`
	Username       string      `json:"username"`
	Email          string      `json:"email"`
	PasswordHash   *string     `json:"-"`
	Name           string      `json:"name"`
	ProfilePicture *string     `json:"profilePicture"`
	ExternalID     *string     `json:"-"`
	AuthProvider   Provider    `json:"authProvider"`
	Preferences    Preferences `json:"preferences"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
}

// Principal projects the user onto the request-scoped identity.
func (user *User) Principal() *sec.Principal {
	return &sec.Principal{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		Provider: string(user.AuthProvider),
	}
}

// ExternalIdentity is the verified content of an identity-provider token.
type ExternalIdentity struct {
	Subject string
	Email   string
	Name    string
	Picture string
}

// # Field Identifiers

const (
	FieldUsername    = "username"
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldName        = "name"
	FieldLogin       = "login"
	FieldAccessToken = "accessToken"
	FieldUser        = "user"
	FieldMessage     = "message"
)
