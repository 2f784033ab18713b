// Copyright (c) 2026 Smart Wardrobe. All rights reserved.
// Author: vigneshrv10

package auth

import (
	"net/http"
	"strings"

	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/constants"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/middleware"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/sec"
)

// # Resolver Contract

// Resolver turns the credentials on a request into a stored user.
//
// A nil user with a nil error means the resolver found nothing usable and the
// next one should be tried. Errors are reserved for store failures.
type Resolver interface {
	Resolve(writer http.ResponseWriter, request *http.Request) (*User, error)
}

// ResolverFunc adapts a function to the [Resolver] interface.
type ResolverFunc func(writer http.ResponseWriter, request *http.Request) (*User, error)

// Resolve calls fn.
func (fn ResolverFunc) Resolve(writer http.ResponseWriter, request *http.Request) (*User, error) {
	return fn(writer, request)
}

// Chain tries each resolver in order and returns the first user found.
type Chain []Resolver

// Resolve implements [Resolver].
func (chain Chain) Resolve(writer http.ResponseWriter, request *http.Request) (*User, error) {
	for _, resolver := range chain {
		user, err := resolver.Resolve(writer, request)
		if err != nil {
			return nil, err
		}
		if user != nil {
			return user, nil
		}
	}
	return nil, nil
}

// NewChain builds the standard order: identity token, session handle, app token.
func NewChain(service *Service, identities IdentityVerifier, cookies Cookies) Chain {
	return Chain{
		&IdentityTokenResolver{service: service, verifier: identities, cookies: cookies},
		&SessionHandleResolver{service: service},
		&AppTokenResolver{service: service},
	}
}

// # Identity Token

// IdentityVerifier checks identity-provider tokens.
type IdentityVerifier interface {
	Verify(token string) (*sec.IdentityClaims, error)
}

// IdentityTokenResolver resolves the `identity_token` cookie minted after a
// Google sign-in and makes sure the client also holds a session handle.
type IdentityTokenResolver struct {
	service  *Service
	verifier IdentityVerifier
	cookies  Cookies
}

/*
Resolve links the verified identity to a stored user.

Description: A valid token always yields a user: it is found by subject,
upgraded by email, or created. The session cookie is then written, reusing
the current handle when it already belongs to that user.
*/
func (resolver *IdentityTokenResolver) Resolve(writer http.ResponseWriter, request *http.Request) (*User, error) {
	token := cookieValue(request, constants.IdentityCookieName)
	if token == "" {
		return nil, nil
	}

	claims, err := resolver.verifier.Verify(token)
	if err != nil {
		return nil, nil
	}

	user, err := resolver.service.LinkExternalIdentity(request.Context(), ExternalIdentity{
		Subject: claims.Subject,
		Email:   claims.Email,
		Name:    claims.Name,
		Picture: claims.Picture,
	})
	if err != nil {
		return nil, err
	}

	handle, err := resolver.service.EnsureSession(request.Context(), user, cookieValue(request, constants.SessionCookieName))
	if err != nil {
		return nil, err
	}
	resolver.cookies.SetSession(writer, handle)

	return user, nil
}

// # Session Handle

// SessionHandleResolver resolves the opaque `session` cookie through Redis.
type SessionHandleResolver struct {
	service *Service
}

// Resolve implements [Resolver].
func (resolver *SessionHandleResolver) Resolve(_ http.ResponseWriter, request *http.Request) (*User, error) {
	handle := cookieValue(request, constants.SessionCookieName)
	if handle == "" {
		return nil, nil
	}
	return resolver.service.UserForHandle(request.Context(), handle)
}

// # App Token

// AppTokenResolver resolves an app token from the Authorization header or
// the `token` cookie. The header wins when both are present.
type AppTokenResolver struct {
	service *Service
}

// Resolve implements [Resolver].
func (resolver *AppTokenResolver) Resolve(_ http.ResponseWriter, request *http.Request) (*User, error) {
	token := bearerToken(request)
	if token == "" {
		token = cookieValue(request, constants.TokenCookieName)
	}
	if token == "" {
		return nil, nil
	}
	return resolver.service.UserForToken(request.Context(), token)
}

func bearerToken(request *http.Request) string {
	header := request.Header.Get(constants.HeaderAuthorization)
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// # Middleware Adapter

// Principals exposes a [Resolver] as a [middleware.IdentityResolver].
func Principals(resolver Resolver) middleware.IdentityResolver {
	return principalResolver{resolver: resolver}
}

type principalResolver struct {
	resolver Resolver
}

func (adapter principalResolver) Resolve(writer http.ResponseWriter, request *http.Request) (*sec.Principal, error) {
	user, err := adapter.resolver.Resolve(writer, request)
	if err != nil || user == nil {
		return nil, err
	}
	return user.Principal(), nil
}
