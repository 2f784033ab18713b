// Copyright (c) 2026 Smart Wardrobe. All rights reserved.
// Author: vigneshrv10

package outfit

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/apperr"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/middleware"
	requestutil "github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/request"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/respond"
)

const msgMissingParameters = "Missing required parameters"

// # Handler Definition

// Handler exposes the outfit generation endpoints.
type Handler struct {
	pipeline *Pipeline
}

// NewHandler constructs a new [Handler].
func NewHandler(pipeline *Pipeline) *Handler {
	return &Handler{pipeline: pipeline}
}

// Routes returns a [chi.Router] with the outfit endpoints.
//
// # Endpoints
//   - POST /       : Full weather, prompt and image run.
//   - POST /prompt : Prompt stage only, with a caller-supplied temperature.
//   - POST /image  : Image stage only.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Post("/", handler.generate)
	router.Post("/prompt", handler.generatePrompt)
	router.Post("/image", handler.generateImage)

	return router
}

/*
POST /api/v1/outfit.

Request:
  - body: Request (eventType, eventLocation, eventDate, clothing?)

Response:
  - 200: Result
  - 400: Missing required parameters
  - 4xx/5xx: Weather or prompt upstream failure
*/
func (handler *Handler) generate(writer http.ResponseWriter, request *http.Request) {
	var input Request
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.pipeline.Generate(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, result)
}

type promptRequest struct {
	Request
	Temperature *float64 `json:"temperature"`
}

/*
POST /api/v1/outfit/prompt.

Response:
  - 200: {prompt}
  - 400: Missing required parameters
*/
func (handler *Handler) generatePrompt(writer http.ResponseWriter, request *http.Request) {
	var input promptRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	input.EventLocation = strings.TrimSpace(input.EventLocation)
	if input.EventType == "" || input.EventLocation == "" || input.EventDate == "" || input.Temperature == nil {
		respond.Error(writer, request, apperr.ValidationError(msgMissingParameters))
		return
	}

	prompt, err := handler.pipeline.GeneratePrompt(request.Context(), Instruction(input.Request, *input.Temperature, ""))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]string{"prompt": prompt})
}

type imageRequest struct {
	Prompt string `json:"prompt"`
}

/*
POST /api/v1/outfit/image.

Description: A billing refusal from the image vendor is answered with 200,
a null image and paymentRequired.

Response:
  - 200: Image
  - 400: Prompt is required
*/
func (handler *Handler) generateImage(writer http.ResponseWriter, request *http.Request) {
	var input imageRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	if strings.TrimSpace(input.Prompt) == "" {
		respond.Error(writer, request, apperr.ValidationError("Prompt is required"))
		return
	}

	image, err := handler.pipeline.GenerateImage(request.Context(), input.Prompt)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, image)
}
