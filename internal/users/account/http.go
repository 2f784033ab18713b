// Copyright (c) 2026 Smart Wardrobe. All rights reserved.
// Author: vigneshrv10

package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/constants"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/middleware"
	requestutil "github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/request"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/respond"
)

// # Handler Definition

// Handler implements the profile management HTTP endpoints.
type Handler struct {
	accountService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{accountService: service}
}

// Routes returns a [chi.Router] with the account endpoints. Every route
// requires a resolved identity.
//
// # Endpoints
//   - GET  /profile : Current profile.
//   - PUT  /profile : Partial profile update.
//   - POST /avatar  : Multipart avatar upload.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Get("/profile", handler.getProfile)
	router.Put("/profile", handler.updateProfile)
	router.Post("/avatar", handler.uploadAvatar)

	return router
}

// # Profile Endpoints

func (handler *Handler) getProfile(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.accountService.GetProfile(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{constants.FieldUser: user})
}

// updateProfileRequest defines the expected JSON payload for profile updates.
type updateProfileRequest struct {
	ProfilePicture *string           `json:"profilePicture"`
	Preferences    *PreferencesPatch `json:"preferences"`
}

/*
PUT /api/v1/account/profile.

Description: Applies partial updates to the authenticated user's profile.

Request:
  - body: updateProfileRequest (profilePicture?, preferences?{style,colors,occasions})

Response:
  - 200: {user}
  - 400: Invalid JSON
  - 401: Authentication required
  - 404: User not found
*/
func (handler *Handler) updateProfile(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input updateProfileRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	patch := ProfilePatch{ProfilePicture: input.ProfilePicture}
	if input.Preferences != nil {
		patch.Preferences = *input.Preferences
	}

	user, err := handler.accountService.UpdateProfile(request.Context(), userID, patch)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{constants.FieldUser: user})
}

/*
POST /api/v1/account/avatar.

Request:
  - multipart field `image`

Response:
  - 200: {url}
  - 400: No image provided
*/
func (handler *Handler) uploadAvatar(writer http.ResponseWriter, request *http.Request) {
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

	reference, err := handler.accountService.UploadAvatar(request.Context(), userID, image.Filename, image.ContentType, image.Data)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]string{constants.FieldURL: reference})
}
