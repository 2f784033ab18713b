// Copyright (c) 2026 Smart Wardrobe. All rights reserved.
// Author: vigneshrv10

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/apperr"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/constants"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/ctxutil"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/sec"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/validate"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
ID retrieves a resource identifier from the `{id}` URL parameter, falling back
to the `?id=` query parameter used by the query-style delete endpoints.
*/
func ID(request *http.Request) string {
	if id := chi.URLParam(request, "id"); id != "" {
		return id
	}
	return strings.TrimSpace(request.URL.Query().Get("id"))
}

/*
Principal extracts the resolved identity from the request context.

Returns nil if the request is anonymous.
*/
func Principal(request *http.Request) *sec.Principal {
	return ctxutil.GetPrincipal(request.Context())
}

/*
RequiredUserID returns the User ID of the resolved caller.

Returns:
  - string: User UUID
  - error: apperr.Unauthorized if anonymous
*/
func RequiredUserID(request *http.Request) (string, error) {
	principal := ctxutil.GetPrincipal(request.Context())
	if principal == nil {
		return "", apperr.Unauthorized("Authentication required")
	}
	return principal.UserID, nil
}

// UploadedImage is a decoded multipart image upload.
type UploadedImage struct {
	ContentType string
	Data        []byte
	Filename    string
}

/*
Image reads the `image` field of a multipart form, bounded by
[constants.MaxUploadBytes].

Returns:
  - *UploadedImage: raw bytes plus the declared or sniffed content type
  - error: ValidationError "No image provided" when the field is missing
*/
func Image(writer http.ResponseWriter, request *http.Request) (*UploadedImage, error) {
	request.Body = http.MaxBytesReader(writer, request.Body, constants.MaxUploadBytes)
	if err := request.ParseMultipartForm(constants.MaxUploadBytes); err != nil {
		return nil, apperr.ValidationError("No image provided")
	}

	file, header, err := request.FormFile(constants.UploadFormField)
	if err != nil {
		return nil, apperr.ValidationError("No image provided")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, apperr.ValidationError(fmt.Sprintf("Failed to read image: %v", err))
	}
	if len(data) == 0 {
		return nil, apperr.ValidationError("No image provided")
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}
	if !strings.HasPrefix(contentType, "image/") {
		return nil, apperr.ValidationError("Uploaded file must be an image")
	}

	return &UploadedImage{ContentType: contentType, Data: data, Filename: header.Filename}, nil
}
