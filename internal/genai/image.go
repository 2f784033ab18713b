// Copyright (c) 2026 Smart Wardrobe. All rights reserved.
// Author: vigneshrv10

package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/apperr"
)

const (
	stabilityPath = "/v2beta/stable-image/generate/ultra"

	// OutputFormat is the image format requested from Stability.
	OutputFormat = "jpeg"

	// maxImageBytes bounds a generated image read into memory.
	maxImageBytes = 20 << 20

	msgImageFailed = "Failed to generate image"
)

// Image is a generated picture.
type Image struct {
	ContentType string
	Data        []byte
}

// ImageConfig configures the Stability client.
type ImageConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// ImageClient calls Stability AI's stable-image endpoint.
type ImageClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewImageClient builds a Stability client.
func NewImageClient(cfg ImageConfig) *ImageClient {
	return &ImageClient{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
	}
}

/*
GenerateImage submits prompt as multipart form data and returns the image bytes.

Parameters:
  - context: context.Context
  - prompt: string

Returns:
  - *Image: Bytes plus the vendor's content type
  - error: [ErrPaymentRequired] on 402, otherwise apperr UPSTREAM_ERROR
*/
func (client *ImageClient) GenerateImage(context context.Context, prompt string) (*Image, error) {
	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	if err := form.WriteField("prompt", prompt); err != nil {
		return nil, apperr.Internal(fmt.Errorf("stability_form_failed: %w", err))
	}
	if err := form.WriteField("output_format", OutputFormat); err != nil {
		return nil, apperr.Internal(fmt.Errorf("stability_form_failed: %w", err))
	}
	if err := form.Close(); err != nil {
		return nil, apperr.Internal(fmt.Errorf("stability_form_failed: %w", err))
	}

	request, err := http.NewRequestWithContext(context, http.MethodPost, client.baseURL+stabilityPath, &body)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("stability_request_build_failed: %w", err))
	}
	request.Header.Set("Content-Type", form.FormDataContentType())
	request.Header.Set("Authorization", "Bearer "+client.apiKey)
	request.Header.Set("Accept", "image/*")

	response, err := client.httpClient.Do(request)
	if err != nil {
		return nil, transportError("Stability AI", err)
	}
	defer response.Body.Close()

	if response.StatusCode == http.StatusPaymentRequired {
		return nil, ErrPaymentRequired
	}
	if response.StatusCode != http.StatusOK {
		return nil, stabilityError(response)
	}

	data, err := io.ReadAll(io.LimitReader(response.Body, maxImageBytes+1))
	if err != nil {
		return nil, transportError("Stability AI", err)
	}
	if len(data) > maxImageBytes {
		return nil, apperr.Upstream(http.StatusBadGateway, msgImageFailed, fmt.Errorf("stability_image_too_large: over %d bytes", maxImageBytes))
	}
	if len(data) == 0 {
		return nil, apperr.Upstream(http.StatusBadGateway, msgImageFailed, fmt.Errorf("stability_empty_image"))
	}

	contentType := response.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		contentType = http.DetectContentType(data)
	}

	return &Image{ContentType: contentType, Data: data}, nil
}

// stabilityError prefers the vendor's message, then the status text.
func stabilityError(response *http.Response) error {
	var failure struct {
		Message string   `json:"message"`
		Errors  []string `json:"errors"`
	}
	raw, _ := io.ReadAll(io.LimitReader(response.Body, maxErrorBody))
	_ = json.Unmarshal(raw, &failure)

	message := failure.Message
	if message == "" && len(failure.Errors) > 0 {
		message = strings.Join(failure.Errors, "; ")
	}
	if message == "" {
		message = http.StatusText(response.StatusCode)
	}
	if message == "" {
		message = msgImageFailed
	}
	return apperr.Upstream(response.StatusCode, message, fmt.Errorf("stability_status_%d", response.StatusCode))
}
