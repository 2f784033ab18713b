// Copyright (c) 2026 Smart Wardrobe. All rights reserved.
// Author: vigneshrv10

/*
Package constants provides centralized, immutable values for the entire platform.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Rate Limiting: Burst capacities and IP tracking TTLs.
  - Sessions: cookie names, lifetimes and Redis key prefixes.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "smart-wardrobe-api"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout covers multipart uploads of wardrobe photos.
	DefaultReadTimeout = 15 * time.Second

	// DefaultWriteTimeout must outlive the full outfit pipeline (5s + 15s + 30s).
	DefaultWriteTimeout = 60 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 55 * time.Second

	// StatementTimeout bounds every SQL statement issued by the pool.
	StatementTimeout = 15 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 20.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	DefaultRateLimitBurst = 40

	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # Authentication

const (
	// AuthIssuer is the standard 'iss' claim in app-signed tokens.
	AuthIssuer = "smart-wardrobe"

	// SessionCookieName carries the opaque session handle.
	SessionCookieName = "session"

	// TokenCookieName carries the app-signed token.
	TokenCookieName = "token"

	// IdentityCookieName carries the identity-provider token minted after Google sign-in.
	IdentityCookieName = "identity_token"

	// OAuthStateCookieName is the gorilla/sessions cookie holding the OAuth state.
	OAuthStateCookieName = "oauth_state"

	// SessionTTL is the lifetime of the opaque handle, the app token and their cookies.
	SessionTTL = 7 * 24 * time.Hour

	// OAuthStateTTL bounds the Google sign-in round trip.
	OAuthStateTTL = 5 * time.Minute
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderAuthorization = "Authorization"
)

// # JSON Field Identifiers

const (
	FieldError   = "error"
	FieldCode    = "code"
	FieldMessage = "message"
	FieldStatus  = "status"
	FieldChecks  = "checks"
	FieldURL     = "url"
	FieldUser    = "user"
	FieldSuccess = "success"
)

// # Uploads

const (
	// MaxUploadBytes caps multipart image uploads.
	MaxUploadBytes = 10 << 20

	// UploadFormField is the multipart field carrying the image.
	UploadFormField = "image"
)

// # Redis Prefixes (Cache Taxonomy)

const (
	RedisPrefixSession = "auth:session:"
)
