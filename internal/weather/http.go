// Copyright (c) 2026 Smart Wardrobe. All rights reserved.
// Author: vigneshrv10

package weather

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/apperr"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/respond"
)

// Lookup resolves a location into a weather report.
type Lookup interface {
	Lookup(context context.Context, location string) (*Report, error)
}

// Handler exposes the public weather endpoint.
type Handler struct {
	lookup Lookup
}

// NewHandler constructs a new [Handler].
func NewHandler(lookup Lookup) *Handler {
	return &Handler{lookup: lookup}
}

// Routes returns a [chi.Router] serving GET /.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.get)
	return router
}

/*
GET /api/v1/weather?location=.

Response:
  - 200: Report
  - 400: Location parameter is required
  - 404: Location not found (upstream message when available)
  - 4xx/5xx: Upstream status
*/
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	location := strings.TrimSpace(request.URL.Query().Get("location"))
	if location == "" {
		respond.Error(writer, request, apperr.ValidationError("Location parameter is required"))
		return
	}

	report, err := handler.lookup.Lookup(request.Context(), location)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, report)
}
