// Copyright (c) 2026 Smart Wardrobe. All rights reserved.
// Author: vigneshrv10

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Every upstream API key and signing secret is marked required and non-empty:
the process refuses to start rather than fall back to an embedded credential.
*/
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// # Configuration Schema

// Config holds all runtime configuration for the API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`

	// MigrateOnStart applies embedded schema migrations before serving.
	MigrateOnStart bool `env:"MIGRATE_ON_START" envDefault:"true"`

	// Key-Value Store (Redis) backing opaque session handles
	RedisURL string `env:"REDIS_URL,required,notEmpty"`

	// Signing material
	SessionSecret       string `env:"SESSION_SECRET,required,notEmpty"`
	JWTSecret           string `env:"JWT_SECRET,required,notEmpty"`
	IdentityTokenSecret string `env:"IDENTITY_TOKEN_SECRET,required,notEmpty"`

	// Weather service (OpenWeatherMap)
	OpenWeatherAPIKey  string `env:"OPENWEATHER_API_KEY,required,notEmpty"`
	OpenWeatherBaseURL string `env:"OPENWEATHER_BASE_URL" envDefault:"https://api.openweathermap.org"`

	// Text generation (Gemini)
	GeminiAPIKey  string `env:"GEMINI_API_KEY,required,notEmpty"`
	GeminiBaseURL string `env:"GEMINI_BASE_URL" envDefault:"https://generativelanguage.googleapis.com"`
	GeminiModel   string `env:"GEMINI_MODEL"    envDefault:"gemini-2.0-flash"`

	// Image generation (Stability AI)
	StabilityAPIKey  string `env:"STABILITY_API_KEY,required,notEmpty"`
	StabilityBaseURL string `env:"STABILITY_BASE_URL" envDefault:"https://api.stability.ai"`

	// Pipeline stage deadlines
	WeatherTimeout time.Duration `env:"WEATHER_TIMEOUT" envDefault:"5s"`
	PromptTimeout  time.Duration `env:"PROMPT_TIMEOUT"  envDefault:"15s"`
	ImageTimeout   time.Duration `env:"IMAGE_TIMEOUT"   envDefault:"30s"`

	// Google sign-in. Disabled when the client id is empty.
	GoogleClientID     string `env:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `env:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURL  string `env:"GOOGLE_REDIRECT_URL"`
	FrontendURL        string `env:"FRONTEND_URL" envDefault:"/"`

	// Object Storage (S3-compatible). Images are inlined as data URIs when the bucket is empty.
	S3Bucket    string `env:"S3_BUCKET"`
	S3Region    string `env:"S3_REGION"   envDefault:"auto"`
	S3Endpoint  string `env:"S3_ENDPOINT"`
	S3AccessKey string `env:"S3_ACCESS_KEY"`
	S3SecretKey string `env:"S3_SECRET_KEY"`
	S3PublicURL string `env:"S3_PUBLIC_URL"`

	// Cross-Origin Resource Sharing
	ExtraOrigins string `env:"EXTRA_ORIGINS"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {
	cfg := &Config{}

	// This fails if any field marked 'required' is missing or empty.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate enforces cross-field rules that struct tags cannot express.
func (c *Config) validate() error {
	if c.GoogleClientID != "" && (c.GoogleClientSecret == "" || c.GoogleRedirectURL == "") {
		return fmt.Errorf("config: GOOGLE_CLIENT_SECRET and GOOGLE_REDIRECT_URL are required when GOOGLE_CLIENT_ID is set")
	}
	if c.S3Bucket != "" && (c.S3AccessKey == "" || c.S3SecretKey == "") {
		return fmt.Errorf("config: S3_ACCESS_KEY and S3_SECRET_KEY are required when S3_BUCKET is set")
	}
	for name, timeout := range map[string]time.Duration{
		"WEATHER_TIMEOUT": c.WeatherTimeout,
		"PROMPT_TIMEOUT":  c.PromptTimeout,
		"IMAGE_TIMEOUT":   c.ImageTimeout,
	} {
		if timeout <= 0 {
			return fmt.Errorf("config: %s must be positive", name)
		}
	}
	return nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// GoogleEnabled reports whether Google sign-in is configured.
func (c *Config) GoogleEnabled() bool {
	return c.GoogleClientID != ""
}

// Origins returns the trimmed, non-empty entries of EXTRA_ORIGINS.
func (c *Config) Origins() []string {
	var origins []string
	for _, origin := range strings.Split(c.ExtraOrigins, ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
