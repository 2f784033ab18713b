// Copyright (c) 2026 Smart Wardrobe. All rights reserved.
// Author: vigneshrv10

package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/apperr"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/ctxutil"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/sec"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/validate"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/pkg/pointer"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/pkg/slug"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/pkg/uuid"
)

// # Contracts & Types

// TokenProvider signs and verifies app tokens.
type TokenProvider interface {
	// GenerateAccessToken creates a signed token for the given user.
	GenerateAccessToken(userID, email string, timeToLive time.Duration) (string, error)

	// VerifyToken checks signature and expiry and returns the claims.
	VerifyToken(token string) (*sec.AuthClaims, error)
}

// Service implements user authentication use cases.
type Service struct {
	userRepository UserRepository
	handleStore    HandleStore
	tokenProvider  TokenProvider
	now            func() time.Time
}

// NewService constructs a new [Service] with necessary dependencies.
func NewService(userRepo UserRepository, handles HandleStore, tokens TokenProvider) *Service {
	return &Service{
		userRepository: userRepo,
		handleStore:    handles,
		tokenProvider:  tokens,
		now:            time.Now,
	}
}

// Session is the set of credentials handed to a client after authentication.
// Handle is empty when no opaque session was opened.
type Session struct {
	User        *User
	AccessToken string
	Handle      string
}

// # Registration Flow

// RegisterInput holds the data required to enroll a new member.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Name     string
}

/*
Register validates, hashes, and persists a brand new local account.

Description: Username and email are folded to lowercase before the uniqueness
checks. On success an app token is issued for the new user.

Parameters:
  - context: context.Context
  - input: RegisterInput

Returns:
  - *Session: Created user and its app token
  - error: ValidationError, Conflict, or storage errors
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*Session, error) {

	// ── 1. Validation ─────────────────────────────────────────────────────
	validator := &validate.Validator{}
	validator.Required(FieldUsername, input.Username).
		Required(FieldEmail, input.Email).
		Required(FieldPassword, input.Password).
		Required(FieldName, input.Name)
	if validator.HasErrors() {
		return nil, apperr.ValidationError("All fields are required: username, email, password, and name")
	}

	username := slug.Lower(input.Username)
	email := slug.Lower(input.Email)

	if err := (&validate.Validator{}).Email(FieldEmail, email).ErrMessage("Invalid email format"); err != nil {
		return nil, err
	}
	passwordRules := (&validate.Validator{}).MinLen(FieldPassword, input.Password, MinPasswordLength)
	if err := passwordRules.ErrMessage(fmt.Sprintf("Password must be at least %d characters long", MinPasswordLength)); err != nil {
		return nil, err
	}

	// ── 2. Uniqueness ─────────────────────────────────────────────────────
	if err := service.ensureAbsent(context, service.userRepository.FindByEmail, email, "Email already registered"); err != nil {
		return nil, err
	}
	if err := service.ensureAbsent(context, service.userRepository.FindByUsername, username, "Username already taken"); err != nil {
		return nil, err
	}

	// ── 3. Persistence ────────────────────────────────────────────────────
	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	user := &User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: &hashedPassword,
		Name:         strings.TrimSpace(input.Name),
		AuthProvider: ProviderLocal,
	}

	if err := service.userRepository.Create(context, user); err != nil {
		return nil, err
	}

	// ── 4. Token Issuance ─────────────────────────────────────────────────
	accessToken, err := service.tokenProvider.GenerateAccessToken(user.ID, user.Email, AppTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_failed: %w", err)
	}

	ctxutil.GetLogger(context).Info("user_registered", "user_id", user.ID)

	return &Session{User: user, AccessToken: accessToken}, nil
}

// ensureAbsent returns a Conflict when find locates a row for value.
func (service *Service) ensureAbsent(context context.Context, find func(context.Context, string) (*User, error), value, message string) error {
	_, err := find(context, value)
	switch {
	case err == nil:
		return apperr.Conflict(message)
	case apperr.IsNotFound(err):
		return nil
	default:
		return err
	}
}

// # Authentication Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Login    string // Username or Email
	Password string
}

/*
Login validates user credentials and opens a session.

Description: Accepts either the email or the username. Accounts without a
stored password (created by an identity provider) cannot log in locally.

Parameters:
  - context: context.Context
  - input: LoginInput

Returns:
  - *Session: User, app token, and opaque handle
  - error: Unauthorized or internal failures
*/
func (service *Service) Login(context context.Context, input LoginInput) (*Session, error) {
	login := slug.Lower(input.Login)
	if login == "" || input.Password == "" {
		return nil, apperr.ValidationError("Login and password are required")
	}

	user, err := service.userRepository.FindByEmail(context, login)
	if apperr.IsNotFound(err) {
		user, err = service.userRepository.FindByUsername(context, login)
	}
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, apperr.Unauthorized("Invalid credentials")
		}
		return nil, err
	}

	if !sec.CheckPasswordHash(input.Password, pointer.Val(user.PasswordHash)) {
		return nil, apperr.Unauthorized("Invalid credentials")
	}

	session, err := service.IssueSession(context, user)
	if err != nil {
		return nil, err
	}

	accessToken, err := service.tokenProvider.GenerateAccessToken(user.ID, user.Email, AppTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_failed: %w", err)
	}
	session.AccessToken = accessToken

	ctxutil.GetLogger(context).Info("user_logged_in", "user_id", user.ID)

	return session, nil
}

/*
IssueSession opens a new opaque session handle for the user.

Parameters:
  - context: context.Context
  - user: *User

Returns:
  - *Session: User and Handle populated
  - error: Randomness or store failures
*/
func (service *Service) IssueSession(context context.Context, user *User) (*Session, error) {
	handle, err := sec.GenerateSecureToken(HandleLength)
	if err != nil {
		return nil, fmt.Errorf("auth_service_handle_failed: %w", err)
	}
	if err := service.handleStore.Set(context, handle, user.ID); err != nil {
		return nil, err
	}
	return &Session{User: user, Handle: handle}, nil
}

/*
Logout destroys the opaque session handle. An empty handle is a no-op.

Parameters:
  - context: context.Context
  - handle: string

Returns:
  - error: Store failures
*/
func (service *Service) Logout(context context.Context, handle string) error {
	if handle == "" {
		return nil
	}
	return service.handleStore.Delete(context, handle)
}

// FindByID returns the stored user with the given ID.
func (service *Service) FindByID(context context.Context, id string) (*User, error) {
	return service.userRepository.FindByID(context, id)
}

/*
UserForHandle resolves an opaque session handle to its user.

Returns:
  - *User: nil when the handle is unknown or its user no longer exists
  - error: Store failures only
*/
func (service *Service) UserForHandle(context context.Context, handle string) (*User, error) {
	userID, err := service.handleStore.Get(context, handle)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return service.optionalUser(context, userID)
}

/*
UserForToken verifies an app token and loads its user.

Returns:
  - *User: nil when the token is malformed, expired, or names an unknown user
  - error: Store failures only
*/
func (service *Service) UserForToken(context context.Context, token string) (*User, error) {
	claims, err := service.tokenProvider.VerifyToken(token)
	if err != nil {
		return nil, nil
	}
	return service.optionalUser(context, claims.UserID)
}

/*
EnsureSession returns a handle bound to user. An existing handle that already
belongs to the user is kept and its lifetime restarted. Otherwise a new one is issued.

Parameters:
  - context: context.Context
  - user: *User
  - existing: string (may be empty)

Returns:
  - string: The handle to set on the client
  - error: Store failures
*/
func (service *Service) EnsureSession(context context.Context, user *User, existing string) (string, error) {
	if existing != "" {
		owner, err := service.handleStore.Get(context, existing)
		switch {
		case err == nil && owner == user.ID:
			if err := service.handleStore.Touch(context, existing); err != nil {
				return "", err
			}
			return existing, nil
		case err != nil && !apperr.IsNotFound(err):
			return "", err
		}
	}

	session, err := service.IssueSession(context, user)
	if err != nil {
		return "", err
	}
	return session.Handle, nil
}

// optionalUser maps a missing user to nil.
func (service *Service) optionalUser(context context.Context, userID string) (*User, error) {
	user, err := service.userRepository.FindByID(context, userID)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

// # Identity Provider Linking

/*
LinkExternalIdentity maps a verified identity-provider sign-in onto a stored user.

Description: The lookup order is external subject, then email. A user found by
email is upgraded in place. Otherwise a new external account is created with
no password.

Parameters:
  - context: context.Context
  - identity: ExternalIdentity

Returns:
  - *User: The linked account
  - error: Store failures
*/
func (service *Service) LinkExternalIdentity(context context.Context, identity ExternalIdentity) (*User, error) {
	logger := ctxutil.GetLogger(context)
	email := slug.Lower(identity.Email)

	// ── 1. Known Subject ──────────────────────────────────────────────────
	user, err := service.userRepository.FindByExternalID(context, identity.Subject)
	if err == nil {
		return user, nil
	}
	if !apperr.IsNotFound(err) {
		return nil, err
	}

	// ── 2. Upgrade By Email ───────────────────────────────────────────────
	user, err = service.userRepository.FindByEmail(context, email)
	if err == nil {
		upgraded, err := service.userRepository.LinkExternal(context, user.ID, identity.Subject, pointer.NonEmpty(identity.Picture))
		if err != nil {
			return nil, err
		}
		logger.Info("external_identity_linked", "user_id", upgraded.ID, "mode", "upgrade")
		return upgraded, nil
	}
	if !apperr.IsNotFound(err) {
		return nil, err
	}

	// ── 3. Create ─────────────────────────────────────────────────────────
	username, err := service.deriveUsername(context, email)
	if err != nil {
		return nil, err
	}

	user = &User{
		ID:             uuid.New(),
		Username:       username,
		Email:          email,
		Name:           strings.TrimSpace(identity.Name),
		ProfilePicture: pointer.NonEmpty(identity.Picture),
		ExternalID:     pointer.To(identity.Subject),
		AuthProvider:   ProviderGoogle,
	}
	if err := service.userRepository.Create(context, user); err != nil {
		return nil, err
	}

	logger.Info("external_identity_linked", "user_id", user.ID, "mode", "create")
	return user, nil
}

// deriveUsername takes the email local part, or a timestamped fallback when
// that name is taken or empty.
func (service *Service) deriveUsername(context context.Context, email string) (string, error) {
	local, _, _ := strings.Cut(email, "@")
	local = slug.Lower(local)
	if local == "" {
		return fallbackUsername(service.now()), nil
	}

	_, err := service.userRepository.FindByUsername(context, local)
	switch {
	case apperr.IsNotFound(err):
		return local, nil
	case err != nil:
		return "", err
	default:
		return fallbackUsername(service.now()), nil
	}
}
