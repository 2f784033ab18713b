// Copyright (c) 2026 Smart Wardrobe. All rights reserved.
// Author: vigneshrv10

package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/apperr"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/constants"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/ctxutil"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/respond"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/sec"
)

// googleUserInfoURL is the profile endpoint queried after the code exchange.
const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

const stateKey = "state"

// IdentitySigner mints identity-provider tokens.
type IdentitySigner interface {
	Sign(subject, email, name, picture string, timeToLive time.Duration) (string, error)
}

// GoogleConfig configures the Google sign-in flow.
type GoogleConfig struct {
	ClientID      string
	ClientSecret  string
	RedirectURL   string
	FrontendURL   string
	SessionSecret string
}

// GoogleSignIn drives the OAuth2 authorization-code flow against Google.
//
// # Flow
//
//  1. /google/login stores a random state in a short-lived gorilla session
//     cookie and redirects to Google.
//  2. /google/callback checks the state, exchanges the code, fetches the
//     profile, and stores a signed identity token in a cookie.
//  3. The next request is resolved by [IdentityTokenResolver].
type GoogleSignIn struct {
	oauth       *oauth2.Config
	states      sessions.Store
	signer      IdentitySigner
	cookies     Cookies
	frontendURL string
	userInfoURL string
}

// NewGoogleSignIn builds the flow from configuration.
func NewGoogleSignIn(cfg GoogleConfig, signer IdentitySigner, cookies Cookies) *GoogleSignIn {
	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(constants.OAuthStateTTL.Seconds()),
		HttpOnly: true,
		Secure:   cookies.Secure,
		SameSite: http.SameSiteLaxMode,
	}

	return &GoogleSignIn{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint:     google.Endpoint,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
		},
		states:      store,
		signer:      signer,
		cookies:     cookies,
		frontendURL: cfg.FrontendURL,
		userInfoURL: googleUserInfoURL,
	}
}

/*
Login redirects the browser to Google's consent screen.

GET /api/v1/auth/google/login

Response:
  - 302: Redirect to Google
*/
func (flow *GoogleSignIn) Login(writer http.ResponseWriter, request *http.Request) {
	state, err := sec.GenerateSecureToken(16)
	if err != nil {
		respond.Error(writer, request, apperr.Internal(err))
		return
	}

	session, _ := flow.states.Get(request, constants.OAuthStateCookieName)
	session.Values[stateKey] = state
	if err := session.Save(request, writer); err != nil {
		respond.Error(writer, request, apperr.Internal(fmt.Errorf("oauth_state_save_failed: %w", err)))
		return
	}

	http.Redirect(writer, request, flow.oauth.AuthCodeURL(state), http.StatusFound)
}

/*
Callback completes the Google sign-in.

GET /api/v1/auth/google/callback

Response:
  - 302: Redirect to the frontend with the identity_token cookie set
  - 400: State mismatch or missing code
  - 401: Google has not verified the account's email
  - 502: Google rejected the exchange or the profile request
*/
func (flow *GoogleSignIn) Callback(writer http.ResponseWriter, request *http.Request) {
	logger := ctxutil.GetLogger(request.Context())

	// ── 1. State Check ────────────────────────────────────────────────────
	session, _ := flow.states.Get(request, constants.OAuthStateCookieName)
	expected, _ := session.Values[stateKey].(string)

	session.Options.MaxAge = -1
	_ = session.Save(request, writer)

	query := request.URL.Query()
	if expected == "" || query.Get(stateKey) != expected {
		respond.Error(writer, request, apperr.ValidationError("Invalid OAuth state"))
		return
	}
	code := query.Get("code")
	if code == "" {
		respond.Error(writer, request, apperr.ValidationError("Missing authorization code"))
		return
	}

	// ── 2. Exchange & Profile ─────────────────────────────────────────────
	token, err := flow.oauth.Exchange(request.Context(), code)
	if err != nil {
		respond.Error(writer, request, apperr.Upstream(http.StatusBadGateway, "Google sign-in failed", err))
		return
	}

	profile, err := flow.fetchProfile(request.Context(), token)
	if err != nil {
		respond.Error(writer, request, apperr.Upstream(http.StatusBadGateway, "Google sign-in failed", err))
		return
	}
	if profile.Email == "" {
		respond.Error(writer, request, apperr.ValidationError("Google account has no email address"))
		return
	}
	if !profile.VerifiedEmail {
		logger.Warn("google_sign_in_unverified_email")
		respond.Error(writer, request, apperr.Unauthorized("Google account email is not verified"))
		return
	}

	// ── 3. Identity Token ─────────────────────────────────────────────────
	identityToken, err := flow.signer.Sign(profile.ID, profile.Email, profile.Name, profile.Picture, IdentityTokenTTL)
	if err != nil {
		respond.Error(writer, request, apperr.Internal(err))
		return
	}
	flow.cookies.SetIdentity(writer, identityToken)

	logger.Info("google_sign_in_completed")
	http.Redirect(writer, request, flow.frontendURL, http.StatusFound)
}

// googleProfile is the userinfo payload. Only verified emails may be linked
// to an existing local account.
type googleProfile struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

func (flow *GoogleSignIn) fetchProfile(context context.Context, token *oauth2.Token) (*googleProfile, error) {
	client := flow.oauth.Client(context, token)

	response, err := client.Get(flow.userInfoURL)
	if err != nil {
		return nil, fmt.Errorf("google_userinfo_request_failed: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("google_userinfo_status_%d", response.StatusCode)
	}

	var profile googleProfile
	if err := json.NewDecoder(response.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("google_userinfo_decode_failed: %w", err)
	}
	if profile.ID == "" {
		return nil, fmt.Errorf("google_userinfo_missing_id")
	}
	return &profile, nil
}
