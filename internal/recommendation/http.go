// Copyright (c) 2026 Smart Wardrobe. All rights reserved.
// Author: vigneshrv10

package recommendation

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/middleware"
	requestutil "github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/request"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/respond"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/pkg/pagination"
)

// # Handler Definition

// Handler serves the owner-scoped and global recommendation endpoints.
type Handler struct {
	recommendationService *Service
}

// NewHandler constructs a new [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{recommendationService: service}
}

// Routes returns the owner-scoped router, mounted at /recommendations.
//
// # Endpoints
//   - GET    /     : Caller's recommendations, soonest event first.
//   - POST   /     : Save for the caller.
//   - DELETE /     : Delete ?id= (owner only).
//   - DELETE /{id} : Delete by path (owner only).
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Get("/", handler.listUpcoming)
	router.Post("/", handler.save)
	router.Delete("/", handler.delete)
	router.Delete("/{id}", handler.delete)

	return router
}

// HistoryRoutes returns the global history router, mounted at /history.
//
// # Endpoints
//   - GET    / : Every recommendation, newest first, paginated via headers.
//   - POST   / : Save for the caller.
//   - DELETE / : Delete ?id= (owner only).
func (handler *Handler) HistoryRoutes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Get("/", handler.listAll)
	router.Post("/", handler.save)
	router.Delete("/", handler.delete)

	return router
}

func (handler *Handler) listUpcoming(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	recommendations, err := handler.recommendationService.ListUpcoming(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, recommendations)
}

/*
GET /api/v1/history.

Response:
  - 200: []Recommendation with X-Total-Count, X-Page, X-Per-Page, X-Total-Pages
*/
func (handler *Handler) listAll(writer http.ResponseWriter, request *http.Request) {
	recommendations, meta, err := handler.recommendationService.ListAll(request.Context(), pagination.FromRequest(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, recommendations, meta)
}

/*
POST /api/v1/recommendations and /api/v1/history.

Request:
  - body: SaveInput (eventTitle, eventType, eventDate, eventLocation required)

Response:
  - 201: Recommendation
  - 400: Missing required fields
*/
func (handler *Handler) save(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input SaveInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	recommendation, err := handler.recommendationService.Save(request.Context(), userID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, recommendation)
}

/*
DELETE by ?id= or /{id}.

Response:
  - 200: {success: true}
  - 400: Recommendation ID is required
  - 404: Recommendation not found (also for records owned by someone else)
*/
func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.recommendationService.Delete(request.Context(), requestutil.ID(request), userID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]bool{"success": true})
}
