// Copyright (c) 2026 Smart Wardrobe. All rights reserved.
// Author: vigneshrv10

package ctxutil_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/ctxutil"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/sec"
)

/*
TestContext_RequestID verifies that Request IDs can be injected and retrieved.
*/
func TestContext_RequestID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, ctxutil.GetRequestID(ctx))

	ctx = ctxutil.WithRequestID(ctx, "req-42")
	assert.Equal(t, "req-42", ctxutil.GetRequestID(ctx))
}

/*
TestContext_Logger verifies the default fallback and an injected logger.
*/
func TestContext_Logger(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	assert.Equal(t, slog.Default(), ctxutil.GetLogger(ctx))

	ctx = ctxutil.WithLogger(ctx, logger)
	assert.Equal(t, logger, ctxutil.GetLogger(ctx))
}

/*
TestContext_Principal verifies that a resolved identity survives the round trip.
*/
func TestContext_Principal(t *testing.T) {
	ctx := context.Background()
	assert.Nil(t, ctxutil.GetPrincipal(ctx))

	principal := &sec.Principal{UserID: "user-123", Username: "ada", Provider: "local"}
	ctx = ctxutil.WithPrincipal(ctx, principal)

	got := ctxutil.GetPrincipal(ctx)
	if assert.NotNil(t, got) {
		assert.Equal(t, "user-123", got.UserID)
		assert.Equal(t, "ada", got.Username)
	}
}
