// Copyright (c) 2026 Smart Wardrobe. All rights reserved.
// Author: vigneshrv10

package recommendation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/ctxutil"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/sec"
)

func newRouter(service *Service) chi.Router {
	handler := NewHandler(service)
	router := chi.NewRouter()
	router.Mount("/recommendations", handler.Routes())
	router.Mount("/history", handler.HistoryRoutes())
	return router
}

func do(router http.Handler, method, target, body, userID string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(method, target, strings.NewReader(body))
	if userID != "" {
		request = request.WithContext(ctxutil.WithPrincipal(request.Context(), &sec.Principal{UserID: userID}))
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

/*
TestHandler_SaveAndList stores the pipeline payload and lists it back.
*/
func TestHandler_SaveAndList(t *testing.T) {
	router := newRouter(newTestService(&memoryRepository{}))

	created := do(router, http.MethodPost, "/recommendations", `{
		"eventTitle": "Sam's wedding",
		"eventType": "wedding",
		"eventDate": "March 10, 2025",
		"eventLocation": "London",
		"weather": {"temperature": 15, "description": "clear sky", "location": "London", "country": "GB"},
		"outfit": {"prompt": "A tailored navy suit...", "image": null, "paymentRequired": true, "message": "pay"}
	}`, "u-1")
	require.Equal(t, http.StatusCreated, created.Code)

	listed := do(router, http.MethodGet, "/recommendations", "", "u-1")
	require.Equal(t, http.StatusOK, listed.Code)

	var body []map[string]any
	require.NoError(t, json.Unmarshal(listed.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "March 10, 2025", body[0]["eventDate"])
	assert.Equal(t, map[string]any{"prompt": "A tailored navy suit...", "imageUrl": nil, "paymentRequired": true, "message": "pay"}, body[0]["outfit"])

	empty := do(router, http.MethodGet, "/recommendations", "", "u-2")
	assert.JSONEq(t, `[]`, empty.Body.String())
}

/*
TestHandler_History lists globally with pagination headers.
*/
func TestHandler_History(t *testing.T) {
	service := newTestService(&memoryRepository{})
	router := newRouter(service)

	for _, owner := range []string{"u-1", "u-2"} {
		_, err := service.Save(context.Background(), owner, londonInput())
		require.NoError(t, err)
	}

	recorder := do(router, http.MethodGet, "/history?limit=1", "", "u-1")

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "2", recorder.Header().Get("X-Total-Count"))
	assert.Equal(t, "2", recorder.Header().Get("X-Total-Pages"))

	var body []Recommendation
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "u-2", body[0].UserID)
}

/*
TestHandler_Delete_Ownership checks that user A cannot delete user B's record
on either surface and that the record survives.
*/
func TestHandler_Delete_Ownership(t *testing.T) {
	repository := &memoryRepository{}
	service := newTestService(repository)
	router := newRouter(service)

	saved, err := service.Save(context.Background(), "user-b", londonInput())
	require.NoError(t, err)

	for _, target := range []string{
		"/recommendations/" + saved.ID,
		"/recommendations?id=" + saved.ID,
		"/history?id=" + saved.ID,
	} {
		recorder := do(router, http.MethodDelete, target, "", "user-a")
		assert.Equal(t, http.StatusNotFound, recorder.Code, target)
		assert.Contains(t, recorder.Body.String(), "Recommendation not found", target)
	}
	require.Len(t, repository.rows, 1)

	recorder := do(router, http.MethodDelete, "/history?id="+saved.ID, "", "user-b")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"success":true}`, recorder.Body.String())
	assert.Empty(t, repository.rows)
}

/*
TestHandler_RequiresAuth rejects anonymous callers on both routers.
*/
func TestHandler_RequiresAuth(t *testing.T) {
	router := newRouter(newTestService(&memoryRepository{}))

	for _, target := range []string{"/recommendations", "/history"} {
		recorder := do(router, http.MethodGet, target, "", "")
		assert.Equal(t, http.StatusUnauthorized, recorder.Code, target)
	}
}
