// Copyright (c) 2026 Smart Wardrobe. All rights reserved.
// Author: vigneshrv10

package wardrobe

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/constants"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/middleware"
	requestutil "github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/request"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/respond"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/pkg/query"
)

// Handler serves the wardrobe catalog.
type Handler struct {
	wardrobeService *Service
}

// NewHandler constructs a new [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{wardrobeService: service}
}

// Routes returns a [chi.Router] with the wardrobe endpoints.
//
// # Endpoints
//   - GET    /       : Caller's items (?category=, ?season=).
//   - POST   /       : Create an item.
//   - DELETE /       : Delete ?id=.
//   - DELETE /{id}   : Delete by path.
//   - POST   /images : Multipart item photo upload.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Get("/", handler.list)
	router.Post("/", handler.create)
	router.Delete("/", handler.delete)
	router.Delete("/{id}", handler.delete)
	router.Post("/images", handler.uploadImage)

	return router
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	filter := Filter{
		Category: request.URL.Query().Get("category"),
		Seasons:  query.StringSlice(request.URL.Query()["season"]),
	}

	items, err := handler.wardrobeService.List(request.Context(), userID, filter)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, items)
}

/*
POST /api/v1/wardrobe.

Request:
  - body: CreateInput (name, category, color, season[], occasion[], imageUrl)

Response:
  - 201: Item
  - 400: Missing required fields, Invalid category..., Invalid seasons...
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input CreateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	item, err := handler.wardrobeService.Create(request.Context(), userID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, item)
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.wardrobeService.Delete(request.Context(), requestutil.ID(request), userID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]string{constants.FieldMessage: "Item deleted successfully"})
}

/*
POST /api/v1/wardrobe/images.

Response:
  - 200: {url}
  - 400: No image provided
*/
func (handler *Handler) uploadImage(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	image, err := requestutil.Image(writer, request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	reference, err := handler.wardrobeService.UploadImage(request.Context(), userID, image.Filename, image.ContentType, image.Data)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]string{constants.FieldURL: reference})
}
