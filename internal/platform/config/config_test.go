// Copyright (c) 2026 Smart Wardrobe. All rights reserved.
// Author: vigneshrv10

package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/config"
)

var requiredEnv = map[string]string{
	"DATABASE_URL":          "postgres://localhost/wardrobe",
	"REDIS_URL":             "redis://localhost:6379/0",
	"SESSION_SECRET":        "session-secret",
	"JWT_SECRET":            "jwt-secret",
	"IDENTITY_TOKEN_SECRET": "identity-secret",
	"OPENWEATHER_API_KEY":   "owm-key",
	"GEMINI_API_KEY":        "gemini-key",
	"STABILITY_API_KEY":     "stability-key",
}

func setRequired(t *testing.T) {
	t.Helper()
	for key, value := range requiredEnv {
		t.Setenv(key, value)
	}
}

/*
TestLoad_Defaults verifies that a minimal environment yields the documented defaults.
*/
func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, 5*time.Second, cfg.WeatherTimeout)
	assert.Equal(t, 15*time.Second, cfg.PromptTimeout)
	assert.Equal(t, 30*time.Second, cfg.ImageTimeout)
	assert.Equal(t, "gemini-2.0-flash", cfg.GeminiModel)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.GoogleEnabled())
}

/*
TestLoad_FailsClosed verifies that every upstream key and secret is mandatory.
*/
func TestLoad_FailsClosed(t *testing.T) {
	for missing := range requiredEnv {
		t.Run(missing, func(t *testing.T) {
			setRequired(t)
			t.Setenv(missing, "")

			_, err := config.Load()
			assert.Error(t, err)
		})
	}
}

/*
TestLoad_GoogleRequiresSecret rejects a half-configured Google client.
*/
func TestLoad_GoogleRequiresSecret(t *testing.T) {
	setRequired(t)
	t.Setenv("GOOGLE_CLIENT_ID", "client-id")

	_, err := config.Load()
	assert.Error(t, err)
}

/*
TestConfig_Origins splits and trims EXTRA_ORIGINS.
*/
func TestConfig_Origins(t *testing.T) {
	cfg := &config.Config{ExtraOrigins: " https://a.example , ,https://b.example"}
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Origins())
}
