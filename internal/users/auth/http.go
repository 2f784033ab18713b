// Copyright (c) 2026 Smart Wardrobe. All rights reserved.
// Author: vigneshrv10

package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/apperr"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/constants"
	requestutil "github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/request"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/respond"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/validate"
)

// # Definitions & Constructors

// Handler implements authentication-related HTTP endpoints.
//
// It expects the router to run [middleware.Authenticate] in front of it, so
// /me reads the already resolved principal instead of resolving again.
type Handler struct {
	authService *Service
	cookies     Cookies
	google      *GoogleSignIn
}

// NewHandler constructs a new [Handler]. google may be nil when sign-in with
// Google is not configured.
func NewHandler(service *Service, cookies Cookies, google *GoogleSignIn) *Handler {
	return &Handler{authService: service, cookies: cookies, google: google}
}

// Routes returns a [chi.Router] configured with authentication-specific routes.
//
// # Endpoints
//   - POST /register         : Creates a local account.
//   - POST /login            : Opens a session.
//   - POST /logout           : Destroys the session and clears cookies.
//   - GET  /me               : Returns the resolved user.
//   - GET  /google/login     : Starts Google sign-in.
//   - GET  /google/callback  : Completes Google sign-in.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/register", handler.register)
	router.Post("/login", handler.login)
	router.Post("/logout", handler.logout)
	router.Get("/me", handler.me)
	router.Get("/google/login", handler.googleLogin)
	router.Get("/google/callback", handler.googleCallback)

	return router
}

// # Request Payloads

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

/*
Register handles the creation of a new local account.

POST /api/v1/auth/register

Request:
  - Body: registerRequest (username, email, password, name)

Response:
  - 201: {user} with the `token` cookie set
  - 400: Missing fields, bad email, or short password
  - 409: Email or username already exists
*/
func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	var input registerRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	session, err := handler.authService.Register(request.Context(), RegisterInput{
		Username: input.Username,
		Email:    input.Email,
		Password: input.Password,
		Name:     input.Name,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.cookies.SetToken(writer, session.AccessToken)
	respond.Created(writer, map[string]any{FieldUser: session.User})
}

/*
Login authenticates a local account.

POST /api/v1/auth/login

Request:
  - Body: loginRequest (login = email or username, password)

Response:
  - 200: {user, accessToken} with `session` and `token` cookies set
  - 401: Invalid credentials
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	session, err := handler.authService.Login(request.Context(), LoginInput{
		Login:    input.Login,
		Password: input.Password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.cookies.SetSession(writer, session.Handle)
	handler.cookies.SetToken(writer, session.AccessToken)

	respond.OK(writer, map[string]any{
		FieldUser:        session.User,
		FieldAccessToken: session.AccessToken,
	})
}

/*
Logout terminates the current session.

POST /api/v1/auth/logout

Response:
  - 200: {message}
*/
func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	if err := handler.authService.Logout(request.Context(), cookieValue(request, constants.SessionCookieName)); err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.cookies.Clear(writer, constants.SessionCookieName)
	handler.cookies.Clear(writer, constants.TokenCookieName)
	handler.cookies.Clear(writer, constants.IdentityCookieName)

	respond.OK(writer, map[string]string{FieldMessage: "Logged out successfully"})
}

/*
Me returns the resolved user.

GET /api/v1/auth/me

Response:
  - 200: {user}
  - 401: Not authenticated; a stale `session` cookie is cleared
*/
func (handler *Handler) me(writer http.ResponseWriter, request *http.Request) {
	principal := requestutil.Principal(request)
	if principal == nil {
		handler.notAuthenticated(writer, request)
		return
	}

	user, err := handler.authService.FindByID(request.Context(), principal.UserID)
	if err != nil {
		if apperr.IsNotFound(err) {
			handler.notAuthenticated(writer, request)
			return
		}
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{FieldUser: user})
}

func (handler *Handler) notAuthenticated(writer http.ResponseWriter, request *http.Request) {
	if cookieValue(request, constants.SessionCookieName) != "" {
		handler.cookies.Clear(writer, constants.SessionCookieName)
	}
	respond.Error(writer, request, apperr.Unauthorized("Not authenticated"))
}

// # Google Sign-In

func (handler *Handler) googleLogin(writer http.ResponseWriter, request *http.Request) {
	if handler.google == nil {
		respond.Error(writer, request, apperr.ServiceUnavailable("Google sign-in is not configured"))
		return
	}
	handler.google.Login(writer, request)
}

func (handler *Handler) googleCallback(writer http.ResponseWriter, request *http.Request) {
	if handler.google == nil {
		respond.Error(writer, request, apperr.ServiceUnavailable("Google sign-in is not configured"))
		return
	}
	handler.google.Callback(writer, request)
}
