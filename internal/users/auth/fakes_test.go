// Copyright (c) 2026 Smart Wardrobe. All rights reserved.
// Author: vigneshrv10

package auth

import (
	"context"
	"sync"
	"time"

	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/apperr"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/sec"
)

// # In-Memory Users

type memoryUsers struct {
	mu    sync.Mutex
	users map[string]*User
	err   error
}

func newMemoryUsers(users ...*User) *memoryUsers {
	repository := &memoryUsers{users: map[string]*User{}}
	for _, user := range users {
		repository.users[user.ID] = user
	}
	return repository
}

func (repository *memoryUsers) find(match func(*User) bool) (*User, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	if repository.err != nil {
		return nil, repository.err
	}
	for _, user := range repository.users {
		if match(user) {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("User")
}

func (repository *memoryUsers) FindByID(_ context.Context, id string) (*User, error) {
	return repository.find(func(user *User) bool { return user.ID == id })
}

func (repository *memoryUsers) FindByEmail(_ context.Context, email string) (*User, error) {
	return repository.find(func(user *User) bool { return user.Email == email })
}

func (repository *memoryUsers) FindByUsername(_ context.Context, username string) (*User, error) {
	return repository.find(func(user *User) bool { return user.Username == username })
}

func (repository *memoryUsers) FindByExternalID(_ context.Context, externalID string) (*User, error) {
	return repository.find(func(user *User) bool {
		return user.ExternalID != nil && *user.ExternalID == externalID
	})
}

func (repository *memoryUsers) Create(_ context.Context, user *User) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	if repository.err != nil {
		return repository.err
	}
	for _, existing := range repository.users {
		if existing.Email == user.Email {
			return apperr.Conflict("Email already registered")
		}
		if existing.Username == user.Username {
			return apperr.Conflict("Username already taken")
		}
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	copied := *user
	repository.users[user.ID] = &copied
	return nil
}

func (repository *memoryUsers) LinkExternal(_ context.Context, userID, externalID string, picture *string) (*User, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	user, ok := repository.users[userID]
	if !ok {
		return nil, apperr.NotFound("User")
	}
	user.ExternalID = &externalID
	user.AuthProvider = ProviderGoogle
	if picture != nil {
		user.ProfilePicture = picture
	}
	copied := *user
	return &copied, nil
}

func (repository *memoryUsers) get(id string) *User {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	return repository.users[id]
}

func (repository *memoryUsers) count() int {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	return len(repository.users)
}

// # In-Memory Handles

type memoryHandles struct {
	mu      sync.Mutex
	handles map[string]string
	touched map[string]int
	err     error
}

func newMemoryHandles() *memoryHandles {
	return &memoryHandles{handles: map[string]string{}, touched: map[string]int{}}
}

func (store *memoryHandles) Set(_ context.Context, handle, userID string) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	if store.err != nil {
		return store.err
	}
	store.handles[handle] = userID
	return nil
}

func (store *memoryHandles) Get(_ context.Context, handle string) (string, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	if store.err != nil {
		return "", store.err
	}
	userID, ok := store.handles[handle]
	if !ok {
		return "", apperr.NotFound("Session")
	}
	return userID, nil
}

func (store *memoryHandles) Touch(_ context.Context, handle string) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.touched[handle]++
	return store.err
}

func (store *memoryHandles) Delete(_ context.Context, handle string) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	if store.err != nil {
		return store.err
	}
	delete(store.handles, handle)
	return nil
}

// # Fixtures

const (
	testJWTSecret      = "test-app-secret"
	testIdentitySecret = "test-identity-secret"
)

type fixture struct {
	users      *memoryUsers
	handles    *memoryHandles
	tokens     *sec.TokenService
	identities *sec.IdentityTokenService
	service    *Service
}

func newFixture(users ...*User) *fixture {
	tokens, err := sec.NewTokenService(testJWTSecret, "smart-wardrobe")
	if err != nil {
		panic(err)
	}
	identities, err := sec.NewIdentityTokenService(testIdentitySecret)
	if err != nil {
		panic(err)
	}

	repository := newMemoryUsers(users...)
	handles := newMemoryHandles()
	service := NewService(repository, handles, tokens)
	service.now = func() time.Time { return time.UnixMilli(1700000000000) }

	return &fixture{
		users:      repository,
		handles:    handles,
		tokens:     tokens,
		identities: identities,
		service:    service,
	}
}

func localUser(id, username, email, password string) *User {
	hash, err := sec.HashPassword(password)
	if err != nil {
		panic(err)
	}
	return &User{
		ID:           id,
		Username:     username,
		Email:        email,
		PasswordHash: &hash,
		Name:         username,
		AuthProvider: ProviderLocal,
	}
}
