// Copyright (c) 2026 Smart Wardrobe. All rights reserved.
// Author: vigneshrv10

package middleware

import (
	"net/http"

	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/apperr"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/ctxutil"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/respond"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/sec"
)

// IdentityResolver turns request credentials into a [sec.Principal].
//
// # Contract
//
// A nil principal with a nil error means "anonymous". Malformed or expired
// credentials must be reported that way, never as an error. An error means a
// backing store failed and the request cannot be answered safely. The writer
// is passed so a resolver may set or clear cookies.
type IdentityResolver interface {
	Resolve(writer http.ResponseWriter, request *http.Request) (*sec.Principal, error)
}

// Authenticate runs the resolver once per request and stores the result.
//
// # Flow
//  1. Ask the [IdentityResolver] for a principal.
//  2. On a store failure, abort with HTTP 500.
//  3. On no match, proceed as anonymous.
//  4. Otherwise inject [*sec.Principal] into the request context.
func Authenticate(resolver IdentityResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			// ── 1. Resolution ─────────────────────────────────────────────────
			principal, err := resolver.Resolve(writer, request)
			if err != nil {
				respond.Error(writer, request, apperr.Internal(err))
				return
			}

			// ── 2. Anonymous Access ───────────────────────────────────────────
			if principal == nil {
				next.ServeHTTP(writer, request)
				return
			}

			// ── 3. Context Injection ──────────────────────────────────────────
			recordPrincipal(request.Context(), principal.UserID)
			ctx := ctxutil.WithPrincipal(request.Context(), principal)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireAuth blocks requests that carry no resolved identity.
//
// Must be registered in the router AFTER [Authenticate].
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if ctxutil.GetPrincipal(request.Context()) == nil {
			respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
			return
		}
		next.ServeHTTP(writer, request)
	})
}
