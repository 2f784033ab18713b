// Copyright (c) 2026 Smart Wardrobe. All rights reserved.
// Author: vigneshrv10

package wardrobe

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*
TestHandler_CreateAndList round-trips an item through the JSON surface.
*/
func TestHandler_CreateAndList(t *testing.T) {
	router := NewHandler(newTestService(&memoryItems{}, &recordingStore{})).Routes()

	body := `{"name":"Chinos","category":"bottoms","color":"khaki","season":["spring","fall"],"occasion":["work"],"imageUrl":"https://cdn/x.jpg"}`
	created := httptest.NewRecorder()
	router.ServeHTTP(created, authenticated(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)), "u-1"))
	require.Equal(t, http.StatusCreated, created.Code)

	listed := httptest.NewRecorder()
	router.ServeHTTP(listed, authenticated(httptest.NewRequest(http.MethodGet, "/?season=fall,winter&category=bottoms", nil), "u-1"))
	require.Equal(t, http.StatusOK, listed.Code)

	var items []map[string]any
	require.NoError(t, json.Unmarshal(listed.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Chinos", items[0]["name"])
	assert.Equal(t, []any{"spring", "fall"}, items[0]["season"])
	assert.Equal(t, []any{"work"}, items[0]["occasion"])
}

/*
TestHandler_Delete covers both the query and path forms.
*/
func TestHandler_Delete(t *testing.T) {
	repository := &memoryItems{}
	service := newTestService(repository, &recordingStore{})
	router := NewHandler(service).Routes()

	first, err := service.Create(context.Background(), "u-1", validInput())
	require.NoError(t, err)
	second, err := service.Create(context.Background(), "u-1", validInput())
	require.NoError(t, err)

	denied := httptest.NewRecorder()
	router.ServeHTTP(denied, authenticated(httptest.NewRequest(http.MethodDelete, "/?id="+first.ID, nil), "u-2"))
	assert.Equal(t, http.StatusNotFound, denied.Code)
	assert.Contains(t, denied.Body.String(), msgItemNotFound)

	byQuery := httptest.NewRecorder()
	router.ServeHTTP(byQuery, authenticated(httptest.NewRequest(http.MethodDelete, "/?id="+first.ID, nil), "u-1"))
	assert.Equal(t, http.StatusOK, byQuery.Code)
	assert.JSONEq(t, `{"message":"Item deleted successfully"}`, byQuery.Body.String())

	byPath := httptest.NewRecorder()
	router.ServeHTTP(byPath, authenticated(httptest.NewRequest(http.MethodDelete, "/"+second.ID, nil), "u-1"))
	assert.Equal(t, http.StatusOK, byPath.Code)

	assert.Empty(t, repository.items)
}

/*
TestHandler_UploadImage stores the photo under the owner's prefix.
*/
func TestHandler_UploadImage(t *testing.T) {
	images := &recordingStore{}
	router := NewHandler(newTestService(&memoryItems{}, images)).Routes()

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="image"; filename="coat.jpg"`)
	header.Set("Content-Type", "image/jpeg")
	part, err := form.CreatePart(header)
	require.NoError(t, err)
	_, _ = part.Write([]byte{0xFF, 0xD8, 0xFF, 0xE0})
	require.NoError(t, form.Close())

	request := httptest.NewRequest(http.MethodPost, "/images", &body)
	request.Header.Set("Content-Type", form.FormDataContentType())
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, authenticated(request, "u-1"))

	require.Equal(t, http.StatusOK, recorder.Code)
	require.Len(t, images.keys, 1)
	assert.True(t, strings.HasPrefix(images.keys[0], "wardrobe/u-1/"))
	assert.JSONEq(t, `{"url":"https://cdn.example.com/`+images.keys[0]+`"}`, recorder.Body.String())
}

/*
TestHandler_UploadImage_Missing rejects a form without the image field.
*/
func TestHandler_UploadImage_Missing(t *testing.T) {
	router := NewHandler(newTestService(&memoryItems{}, &recordingStore{})).Routes()

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	require.NoError(t, form.WriteField("other", "x"))
	require.NoError(t, form.Close())

	request := httptest.NewRequest(http.MethodPost, "/images", &body)
	request.Header.Set("Content-Type", form.FormDataContentType())
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, authenticated(request, "u-1"))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "No image provided")
}
