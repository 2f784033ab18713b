// Copyright (c) 2026 Smart Wardrobe. All rights reserved.
// Author: vigneshrv10

package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/apperr"
)

const msgPromptFailed = "Failed to generate outfit prompt"

// TextConfig configures the Gemini client.
type TextConfig struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// TextClient calls Gemini's generateContent endpoint.
type TextClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

// NewTextClient builds a Gemini client.
func NewTextClient(cfg TextConfig) *TextClient {
	return &TextClient{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
	}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

type geminiError struct {
	Error struct {
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

/*
GeneratePrompt sends instruction to Gemini and returns the first candidate's text.

Parameters:
  - context: context.Context
  - instruction: string

Returns:
  - string: Generated text, possibly empty when Gemini produced no candidate
  - error: apperr UPSTREAM_ERROR with the vendor status
*/
func (client *TextClient) GeneratePrompt(context context.Context, instruction string) (string, error) {
	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: instruction}}}},
	})
	if err != nil {
		return "", apperr.Internal(fmt.Errorf("gemini_request_encode_failed: %w", err))
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		client.baseURL, url.PathEscape(client.model), url.QueryEscape(client.apiKey))

	request, err := http.NewRequestWithContext(context, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", apperr.Internal(fmt.Errorf("gemini_request_build_failed: %w", err))
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := client.httpClient.Do(request)
	if err != nil {
		return "", transportError("Gemini", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		var failure geminiError
		raw, _ := io.ReadAll(io.LimitReader(response.Body, maxErrorBody))
		_ = json.Unmarshal(raw, &failure)

		message := failure.Error.Message
		if message == "" {
			message = msgPromptFailed
		}
		return "", apperr.Upstream(response.StatusCode, message, fmt.Errorf("gemini_status_%d", response.StatusCode))
	}

	var payload geminiResponse
	if err := json.NewDecoder(response.Body).Decode(&payload); err != nil {
		return "", apperr.Upstream(http.StatusBadGateway, msgPromptFailed, fmt.Errorf("gemini_decode_failed: %w", err))
	}

	if len(payload.Candidates) == 0 || len(payload.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}
	return payload.Candidates[0].Content.Parts[0].Text, nil
}
