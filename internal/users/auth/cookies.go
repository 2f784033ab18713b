// Copyright (c) 2026 Smart Wardrobe. All rights reserved.
// Author: vigneshrv10

package auth

import (
	"net/http"
	"time"

	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/constants"
)

// Cookies writes and clears the authentication cookies.
//
// All cookies are HttpOnly, SameSite=Lax and scoped to "/". Secure is set in
// production only so local development over plain HTTP keeps working.
type Cookies struct {
	Secure bool
}

// SetSession writes the opaque session handle cookie.
func (cookies Cookies) SetSession(writer http.ResponseWriter, handle string) {
	cookies.set(writer, constants.SessionCookieName, handle, HandleTTL)
}

// SetToken writes the app token cookie.
func (cookies Cookies) SetToken(writer http.ResponseWriter, token string) {
	cookies.set(writer, constants.TokenCookieName, token, AppTokenTTL)
}

// SetIdentity writes the identity-provider token cookie.
func (cookies Cookies) SetIdentity(writer http.ResponseWriter, token string) {
	cookies.set(writer, constants.IdentityCookieName, token, IdentityTokenTTL)
}

// Clear expires the named cookie on the client.
func (cookies Cookies) Clear(writer http.ResponseWriter, name string) {
	http.SetCookie(writer, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		Secure:   cookies.Secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (cookies Cookies) set(writer http.ResponseWriter, name, value string, ttl time.Duration) {
	http.SetCookie(writer, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		Secure:   cookies.Secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// cookieValue returns the named cookie's value, or "" when it is absent.
func cookieValue(request *http.Request, name string) string {
	cookie, err := request.Cookie(name)
	if err != nil {
		return ""
	}
	return cookie.Value
}
