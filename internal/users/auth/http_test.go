// Copyright (c) 2026 Smart Wardrobe. All rights reserved.
// Author: vigneshrv10

package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/constants"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/ctxutil"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/sec"
)

/*
TestHandler_RegisterThenLogin walks the local account lifecycle over HTTP.
*/
func TestHandler_RegisterThenLogin(t *testing.T) {
	f := newFixture()
	router := NewHandler(f.service, Cookies{}, nil).Routes()

	body := `{"username":"ada","email":"ada@example.com","password":"secret1","name":"Ada"}`
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, recorder.Code)
	assert.NotNil(t, findCookie(recorder, constants.TokenCookieName))
	assert.NotContains(t, recorder.Body.String(), "passwordHash")

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"login":"ada","password":"secret1"}`)))

	require.Equal(t, http.StatusOK, recorder.Code)
	var payload struct {
		User        User   `json:"user"`
		AccessToken string `json:"accessToken"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
	assert.Equal(t, "ada", payload.User.Username)
	assert.NotEmpty(t, payload.AccessToken)
	assert.NotNil(t, findCookie(recorder, constants.SessionCookieName))
}

/*
TestHandler_Register_MissingFields returns the combined required-fields message.
*/
func TestHandler_Register_MissingFields(t *testing.T) {
	f := newFixture()
	router := NewHandler(f.service, Cookies{}, nil).Routes()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(`{"username":"ada"}`)))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "All fields are required: username, email, password, and name")
}

/*
TestHandler_Me covers the resolved and the stale-cookie paths.
*/
func TestHandler_Me(t *testing.T) {
	f := newFixture(localUser("u-1", "ada", "ada@example.com", "secret1"))
	router := NewHandler(f.service, Cookies{}, nil).Routes()

	t.Run("resolved", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/me", nil)
		request = request.WithContext(ctxutil.WithPrincipal(request.Context(), &sec.Principal{UserID: "u-1"}))
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"username":"ada"`)
	})

	t.Run("stale_session_cookie", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/me", nil)
		request.AddCookie(&http.Cookie{Name: constants.SessionCookieName, Value: "gone"})
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Not authenticated")
		cleared := findCookie(recorder, constants.SessionCookieName)
		require.NotNil(t, cleared)
		assert.Empty(t, cleared.Value)
		assert.Negative(t, cleared.MaxAge)
	})
}

/*
TestHandler_Logout deletes the handle and clears every auth cookie.
*/
func TestHandler_Logout(t *testing.T) {
	f := newFixture(localUser("u-1", "ada", "ada@example.com", "secret1"))
	f.handles.handles["h-1"] = "u-1"
	router := NewHandler(f.service, Cookies{}, nil).Routes()

	request := httptest.NewRequest(http.MethodPost, "/logout", nil)
	request.AddCookie(&http.Cookie{Name: constants.SessionCookieName, Value: "h-1"})
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"message":"Logged out successfully"}`, recorder.Body.String())
	assert.Empty(t, f.handles.handles)
	for _, name := range []string{constants.SessionCookieName, constants.TokenCookieName, constants.IdentityCookieName} {
		assert.NotNil(t, findCookie(recorder, name), name)
	}
}

/*
TestHandler_GoogleDisabled answers 503 when sign-in is not configured.
*/
func TestHandler_GoogleDisabled(t *testing.T) {
	router := NewHandler(newFixture().service, Cookies{}, nil).Routes()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/google/login", nil))

	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
}
