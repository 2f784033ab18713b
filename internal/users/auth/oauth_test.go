// Copyright (c) 2026 Smart Wardrobe. All rights reserved.
// Author: vigneshrv10

package auth

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/constants"
)

const verifiedProfile = `{"id":"google-42","email":"ada@example.com","verified_email":true,"name":"Ada","picture":"https://p/a.png"}`

func newTestGoogle(t *testing.T, f *fixture, profile string) *GoogleSignIn {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(writer http.ResponseWriter, _ *http.Request) {
		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write([]byte(`{"access_token":"google-access","token_type":"Bearer","expires_in":3600}`))
	})
	mux.HandleFunc("/userinfo", func(writer http.ResponseWriter, request *http.Request) {
		if request.Header.Get("Authorization") != "Bearer google-access" {
			writer.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = writer.Write([]byte(profile))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	flow := NewGoogleSignIn(GoogleConfig{
		ClientID:      "client",
		ClientSecret:  "secret",
		RedirectURL:   "http://localhost/api/v1/auth/google/callback",
		FrontendURL:   "http://localhost:3000/",
		SessionSecret: "0123456789abcdef0123456789abcdef",
	}, f.identities, Cookies{})
	flow.oauth.Endpoint = oauth2.Endpoint{AuthURL: server.URL + "/auth", TokenURL: server.URL + "/token"}
	flow.userInfoURL = server.URL + "/userinfo"
	return flow
}

/*
TestGoogleSignIn_RoundTrip follows login -> callback and checks the identity cookie.
*/
func TestGoogleSignIn_RoundTrip(t *testing.T) {
	f := newFixture()
	flow := newTestGoogle(t, f, verifiedProfile)

	// ── Login ─────────────────────────────────────────────────────────────
	loginRecorder := httptest.NewRecorder()
	flow.Login(loginRecorder, httptest.NewRequest(http.MethodGet, "/google/login", nil))
	require.Equal(t, http.StatusFound, loginRecorder.Code)

	location, err := url.Parse(loginRecorder.Header().Get("Location"))
	require.NoError(t, err)
	state := location.Query().Get("state")
	require.NotEmpty(t, state)

	stateCookie := findCookie(loginRecorder, constants.OAuthStateCookieName)
	require.NotNil(t, stateCookie)

	// ── Callback ──────────────────────────────────────────────────────────
	callback := httptest.NewRequest(http.MethodGet, "/google/callback?code=abc&state="+url.QueryEscape(state), nil)
	callback.AddCookie(stateCookie)
	callbackRecorder := httptest.NewRecorder()
	flow.Callback(callbackRecorder, callback)

	require.Equal(t, http.StatusFound, callbackRecorder.Code)
	assert.Equal(t, "http://localhost:3000/", callbackRecorder.Header().Get("Location"))

	identity := findCookie(callbackRecorder, constants.IdentityCookieName)
	require.NotNil(t, identity)
	claims, err := f.identities.Verify(identity.Value)
	require.NoError(t, err)
	assert.Equal(t, "google-42", claims.Subject)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.Equal(t, "https://p/a.png", claims.Picture)
}

/*
TestGoogleSignIn_StateMismatch rejects callbacks that did not start here.
*/
func TestGoogleSignIn_StateMismatch(t *testing.T) {
	flow := newTestGoogle(t, newFixture(), verifiedProfile)

	recorder := httptest.NewRecorder()
	flow.Callback(recorder, httptest.NewRequest(http.MethodGet, "/google/callback?code=abc&state=forged", nil))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Nil(t, findCookie(recorder, constants.IdentityCookieName))
}

/*
TestGoogleSignIn_UnverifiedEmail refuses to mint an identity for an email
Google has not verified, so it can never be linked to a local account.
*/
func TestGoogleSignIn_UnverifiedEmail(t *testing.T) {
	tests := []struct {
		name    string
		profile string
	}{
		{name: "explicitly_unverified", profile: `{"id":"google-42","email":"ada@example.com","verified_email":false,"name":"Ada"}`},
		{name: "flag_absent", profile: `{"id":"google-42","email":"ada@example.com","name":"Ada"}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			flow := newTestGoogle(t, newFixture(), tc.profile)

			loginRecorder := httptest.NewRecorder()
			flow.Login(loginRecorder, httptest.NewRequest(http.MethodGet, "/google/login", nil))
			location, err := url.Parse(loginRecorder.Header().Get("Location"))
			require.NoError(t, err)
			stateCookie := findCookie(loginRecorder, constants.OAuthStateCookieName)
			require.NotNil(t, stateCookie)

			callback := httptest.NewRequest(http.MethodGet, "/google/callback?code=abc&state="+url.QueryEscape(location.Query().Get("state")), nil)
			callback.AddCookie(stateCookie)
			recorder := httptest.NewRecorder()
			flow.Callback(recorder, callback)

			assert.Equal(t, http.StatusUnauthorized, recorder.Code)
			assert.Contains(t, recorder.Body.String(), "Google account email is not verified")
			assert.Nil(t, findCookie(recorder, constants.IdentityCookieName))
		})
	}
}
