// Copyright (c) 2026 Smart Wardrobe. All rights reserved.
// Author: vigneshrv10

package sec_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/sec"
)

/*
TestTokenService_RoundTrip issues and verifies an app token.
*/
func TestTokenService_RoundTrip(t *testing.T) {
	service, err := sec.NewTokenService("app-secret", "smart-wardrobe")
	require.NoError(t, err)

	token, err := service.GenerateAccessToken("user-1", "ada@example.com", time.Hour)
	require.NoError(t, err)

	claims, err := service.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "ada@example.com", claims.Email)
}

/*
TestTokenService_Rejects covers expiry, foreign secrets and garbage input.
*/
func TestTokenService_Rejects(t *testing.T) {
	service, err := sec.NewTokenService("app-secret", "smart-wardrobe")
	require.NoError(t, err)
	other, err := sec.NewTokenService("other-secret", "smart-wardrobe")
	require.NoError(t, err)

	expired, err := service.GenerateAccessToken("user-1", "a@b.co", -time.Minute)
	require.NoError(t, err)
	foreign, err := other.GenerateAccessToken("user-1", "a@b.co", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"expired", expired},
		{"foreign_secret", foreign},
		{"garbage", "not-a-jwt"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.VerifyToken(tt.token)
			assert.Error(t, err)
		})
	}
}

/*
TestIdentityTokenService_Families verifies that the two token families do not
accept each other's tokens.
*/
func TestIdentityTokenService_Families(t *testing.T) {
	identity, err := sec.NewIdentityTokenService("idp-secret")
	require.NoError(t, err)
	app, err := sec.NewTokenService("app-secret", "smart-wardrobe")
	require.NoError(t, err)

	token, err := identity.Sign("google-sub-1", "ada@example.com", "Ada", "https://img/ada.png", time.Hour)
	require.NoError(t, err)

	claims, err := identity.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "google-sub-1", claims.Subject)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.Equal(t, "https://img/ada.png", claims.Picture)

	_, err = app.VerifyToken(token)
	assert.Error(t, err)
}

/*
TestIdentityTokenService_IncompleteClaims rejects signed tokens that cannot
name an external identity.
*/
func TestIdentityTokenService_IncompleteClaims(t *testing.T) {
	identity, err := sec.NewIdentityTokenService("idp-secret")
	require.NoError(t, err)

	tests := []struct {
		name    string
		subject string
		email   string
	}{
		{name: "no_subject", subject: "", email: "a@b.c"},
		{name: "no_email", subject: "google-sub-1", email: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			token, err := identity.Sign(tc.subject, tc.email, "Ada", "", time.Hour)
			require.NoError(t, err)

			claims, err := identity.Verify(token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

/*
TestNewTokenService_EmptySecret refuses to build signers without key material.
*/
func TestNewTokenService_EmptySecret(t *testing.T) {
	_, err := sec.NewTokenService("", "smart-wardrobe")
	assert.ErrorIs(t, err, sec.ErrEmptySecret)

	_, err = sec.NewIdentityTokenService("")
	assert.ErrorIs(t, err, sec.ErrEmptySecret)
}
