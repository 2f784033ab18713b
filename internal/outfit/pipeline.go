// Copyright (c) 2026 Smart Wardrobe. All rights reserved.
// Author: vigneshrv10

package outfit

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/genai"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/apperr"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/ctxutil"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/metrics"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/storage"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/weather"
)

// imagePrefix namespaces generated outfit images in the bucket.
const imagePrefix = "outfits"

// # Contracts

// WeatherLookup resolves an event location.
type WeatherLookup interface {
	Lookup(context context.Context, location string) (*weather.Report, error)
}

// PromptGenerator turns an instruction into an image prompt.
type PromptGenerator interface {
	GeneratePrompt(context context.Context, instruction string) (string, error)
}

// ImageGenerator renders a prompt. It returns [genai.ErrPaymentRequired]
// when the vendor refuses for billing reasons.
type ImageGenerator interface {
	GenerateImage(context context.Context, prompt string) (*genai.Image, error)
}

// Timeouts bounds each stage. Every stage deadline is derived from the
// request context, so client cancellation still stops the run early.
type Timeouts struct {
	Weather time.Duration
	Prompt  time.Duration
	Image   time.Duration
}

// DefaultTimeouts are used for any zero field.
var DefaultTimeouts = Timeouts{
	Weather: 5 * time.Second,
	Prompt:  15 * time.Second,
	Image:   30 * time.Second,
}

// # Pipeline

// Pipeline runs weather lookup, prompt generation and image generation.
type Pipeline struct {
	weather  WeatherLookup
	prompts  PromptGenerator
	images   ImageGenerator
	store    storage.Store
	timeouts Timeouts
}

// NewPipeline constructs a [Pipeline].
func NewPipeline(lookup WeatherLookup, prompts PromptGenerator, images ImageGenerator, store storage.Store, timeouts Timeouts) *Pipeline {
	if timeouts.Weather <= 0 {
		timeouts.Weather = DefaultTimeouts.Weather
	}
	if timeouts.Prompt <= 0 {
		timeouts.Prompt = DefaultTimeouts.Prompt
	}
	if timeouts.Image <= 0 {
		timeouts.Image = DefaultTimeouts.Image
	}

	return &Pipeline{
		weather:  lookup,
		prompts:  prompts,
		images:   images,
		store:    store,
		timeouts: timeouts,
	}
}

/*
Generate runs the full pipeline for an event.

Parameters:
  - context: context.Context
  - request: Request (type, location and date required)

Returns:
  - *Result: Weather snapshot plus outfit; the image may be degraded
  - error: ValidationError, the weather error unchanged, or UPSTREAM_ERROR
*/
func (pipeline *Pipeline) Generate(context context.Context, request Request) (*Result, error) {
	request.EventLocation = strings.TrimSpace(request.EventLocation)
	if request.EventType == "" || request.EventLocation == "" || request.EventDate == "" {
		return nil, apperr.ValidationError(msgMissingParameters)
	}

	logger := ctxutil.GetLogger(context)

	// ── 1. Weather ────────────────────────────────────────────────────────
	report, err := pipeline.lookupWeather(context, request.EventLocation)
	if err != nil {
		logger.Warn("outfit_weather_failed", "location", request.EventLocation, "error", err.Error())
		return nil, err
	}
	snapshot := report.Snapshot()

	// ── 2. Prompt ─────────────────────────────────────────────────────────
	instruction := Instruction(request, snapshot.Temperature, snapshot.Description)
	prompt, err := pipeline.GeneratePrompt(context, instruction)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(prompt) == "" {
		return nil, apperr.Upstream(http.StatusInternalServerError, "Failed to generate a valid outfit prompt", nil)
	}

	// ── 3. Image ──────────────────────────────────────────────────────────
	image, err := pipeline.GenerateImage(context, prompt)
	if err != nil {
		return nil, err
	}

	logger.Info("outfit_generated",
		"location", snapshot.Location,
		"country", snapshot.Country,
		"degraded", image.PaymentRequired,
	)

	return &Result{
		Weather: snapshot,
		Outfit:  Outfit{Prompt: prompt, Image: *image},
	}, nil
}

func (pipeline *Pipeline) lookupWeather(parent context.Context, location string) (*weather.Report, error) {
	context, cancel := context.WithTimeout(parent, pipeline.timeouts.Weather)
	defer cancel()

	started := time.Now()
	report, err := pipeline.weather.Lookup(context, location)
	metrics.ObserveStage(metrics.StageWeather, started, err)
	return report, err
}

/*
GeneratePrompt runs only the prompt stage under its deadline.

Returns:
  - string: The model output, possibly empty
  - error: UPSTREAM_ERROR with the vendor status
*/
func (pipeline *Pipeline) GeneratePrompt(parent context.Context, instruction string) (string, error) {
	context, cancel := context.WithTimeout(parent, pipeline.timeouts.Prompt)
	defer cancel()

	started := time.Now()
	prompt, err := pipeline.prompts.GeneratePrompt(context, instruction)
	metrics.ObserveStage(metrics.StagePrompt, started, err)
	if err != nil {
		ctxutil.GetLogger(parent).Warn("outfit_prompt_failed", "error", err.Error())
		return "", err
	}
	return prompt, nil
}

/*
GenerateImage runs only the image stage under its deadline and stores the result.

Description: A payment refusal is not an error. It yields a nil image with
PaymentRequired set and the fixed explanatory message.

Returns:
  - *Image: Stored reference, or the degraded marker
  - error: UPSTREAM_ERROR for any other vendor failure, or storage failures
*/
func (pipeline *Pipeline) GenerateImage(parent context.Context, prompt string) (*Image, error) {
	context, cancel := context.WithTimeout(parent, pipeline.timeouts.Image)
	defer cancel()

	logger := ctxutil.GetLogger(parent)

	started := time.Now()
	generated, err := pipeline.images.GenerateImage(context, prompt)
	metrics.ObserveStage(metrics.StageImage, started, err)

	if errors.Is(err, genai.ErrPaymentRequired) {
		metrics.ImageDegraded()
		logger.Warn("outfit_image_degraded")
		return &Image{PaymentRequired: true, Message: PaymentRequiredMessage}, nil
	}
	if err != nil {
		logger.Warn("outfit_image_failed", "error", err.Error())
		return nil, err
	}

	key := storage.ObjectKey(imagePrefix, "", generated.ContentType)
	reference, err := pipeline.store.Put(parent, key, generated.ContentType, generated.Data)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("outfit_image_store_failed: %w", err))
	}

	return &Image{Image: &reference}, nil
}
