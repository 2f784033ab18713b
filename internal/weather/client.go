// Copyright (c) 2026 Smart Wardrobe. All rights reserved.
// Author: vigneshrv10

package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/apperr"
)

const (
	currentWeatherPath = "/data/2.5/weather"

	// maxErrorBody bounds how much of an upstream error body is read.
	maxErrorBody = 64 << 10

	msgLocationNotFound = "Location not found"
	msgLookupFailed     = "Failed to fetch weather data"
)

// Config configures the OpenWeatherMap client.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Client calls the OpenWeatherMap current-weather API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient builds a client. Timeout bounds each HTTP exchange; callers can
// impose a tighter deadline through the context.
func NewClient(cfg Config) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
	}
}

// owmResponse mirrors the fields read from the upstream payload.
type owmResponse struct {
	Name string `json:"name"`
	Sys  struct {
		Country string `json:"country"`
	} `json:"sys"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  float64 `json:"humidity"`
	} `json:"main"`
	Weather []Conditions `json:"weather"`
	Wind    Wind         `json:"wind"`
}

// owmError is the upstream error body, e.g. {"cod":"404","message":"city not found"}.
type owmError struct {
	Message string `json:"message"`
}

/*
Lookup fetches current conditions for location in metric units.

Parameters:
  - context: context.Context
  - location: string (trimmed, then URL-encoded as-is)

Returns:
  - *Report: Normalized reading
  - error: apperr NOT_FOUND or UPSTREAM_ERROR
*/
func (client *Client) Lookup(context context.Context, location string) (*Report, error) {
	query := url.Values{}
	query.Set("q", strings.TrimSpace(location))
	query.Set("appid", client.apiKey)
	query.Set("units", "metric")

	endpoint := client.baseURL + currentWeatherPath + "?" + query.Encode()
	request, err := http.NewRequestWithContext(context, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("weather_request_build_failed: %w", err))
	}
	request.Header.Set("Accept", "application/json")

	response, err := client.httpClient.Do(request)
	if err != nil {
		return nil, transportError(err)
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return nil, statusError(response)
	}

	var payload owmResponse
	if err := json.NewDecoder(response.Body).Decode(&payload); err != nil {
		return nil, apperr.Upstream(http.StatusBadGateway, msgLookupFailed, fmt.Errorf("weather_decode_failed: %w", err))
	}

	report := &Report{
		Location:    payload.Name,
		Country:     payload.Sys.Country,
		Temperature: payload.Main.Temp,
		FeelsLike:   payload.Main.FeelsLike,
		Humidity:    payload.Main.Humidity,
		Wind:        payload.Wind,
	}
	if len(payload.Weather) > 0 {
		report.Weather = payload.Weather[0]
	}

	return report, nil
}

func statusError(response *http.Response) error {
	var body owmError
	raw, _ := io.ReadAll(io.LimitReader(response.Body, maxErrorBody))
	_ = json.Unmarshal(raw, &body)

	cause := fmt.Errorf("weather_upstream_status_%d", response.StatusCode)

	if response.StatusCode == http.StatusNotFound {
		message := body.Message
		if message == "" {
			message = msgLocationNotFound
		}
		return apperr.NotFoundMessage(message)
	}

	message := body.Message
	if message == "" {
		message = msgLookupFailed
	}
	return apperr.Upstream(response.StatusCode, message, cause)
}

func transportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return apperr.Upstream(http.StatusGatewayTimeout, "Weather service timed out", err)
	}
	return apperr.Upstream(http.StatusBadGateway, msgLookupFailed, err)
}
