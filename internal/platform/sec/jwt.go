// Copyright (c) 2026 Smart Wardrobe. All rights reserved.
// Author: vigneshrv10

// Package sec provides cryptographic primitives and token management.
//
// # Architecture
//
// Two independent HS256 token families exist, each with its own secret:
//
//   - App tokens ([AuthClaims]) carry a user id and are issued by register/login.
//   - Identity tokens ([IdentityClaims]) carry the external provider's subject and
//     email and are minted after a completed Google sign-in.
package sec

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrEmptySecret is returned when a signer is built without key material.
var ErrEmptySecret = errors.New("sec: signing secret must not be empty")

// # App Tokens

// AuthClaims represents the payload embedded inside an app-signed token.
type AuthClaims struct {
	jwt.RegisteredClaims

	UserID string `json:"uid"`
	Email  string `json:"email"`
}

// TokenService signs and verifies app tokens using HS256.
type TokenService struct {
	secret []byte
	issuer string
}

// NewTokenService creates a new TokenService.
func NewTokenService(secret, issuer string) (*TokenService, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	return &TokenService{secret: []byte(secret), issuer: issuer}, nil
}

// GenerateAccessToken creates a new signed token for a user.
func (service *TokenService) GenerateAccessToken(userID, email string, timeToLive time.Duration) (string, error) {
	currentTime := time.Now()
	claims := AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(timeToLive)),
		},
		UserID: userID,
		Email:  email,
	}

	signedToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(service.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, nil
}

// VerifyToken checks the signature, issuer and expiry of an app token.
func (service *TokenService) VerifyToken(tokenString string) (*AuthClaims, error) {
	claims := &AuthClaims{}
	if err := parseHS256(tokenString, claims, service.secret, jwt.WithIssuer(service.issuer)); err != nil {
		return nil, err
	}
	if claims.UserID == "" {
		return nil, fmt.Errorf("sec: token carries no user id")
	}
	return claims, nil
}

// # Identity Tokens

// IdentityClaims is the payload of an identity-provider token.
type IdentityClaims struct {
	jwt.RegisteredClaims

	Email   string `json:"email"`
	Name    string `json:"name,omitempty"`
	Picture string `json:"picture,omitempty"`
}

// IdentityTokenService signs and verifies identity-provider tokens.
type IdentityTokenService struct {
	secret []byte
}

// NewIdentityTokenService creates a new IdentityTokenService.
func NewIdentityTokenService(secret string) (*IdentityTokenService, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	return &IdentityTokenService{secret: []byte(secret)}, nil
}

// Sign mints an identity token for the given provider subject.
func (service *IdentityTokenService) Sign(subject, email, name, picture string, timeToLive time.Duration) (string, error) {
	currentTime := time.Now()
	claims := IdentityClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(timeToLive)),
		},
		Email:   email,
		Name:    name,
		Picture: picture,
	}

	signedToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(service.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign identity token: %w", err)
	}
	return signedToken, nil
}

// Verify checks an identity token and returns its claims.
// Tokens without a provider subject or a declared email are rejected.
func (service *IdentityTokenService) Verify(tokenString string) (*IdentityClaims, error) {
	claims := &IdentityClaims{}
	if err := parseHS256(tokenString, claims, service.secret); err != nil {
		return nil, err
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("sec: identity token carries no subject")
	}
	if claims.Email == "" {
		return nil, fmt.Errorf("sec: identity token carries no email")
	}
	return claims, nil
}

// parseHS256 verifies tokenString into claims, refusing any algorithm but HS256.
func parseHS256(tokenString string, claims jwt.Claims, secret []byte, options ...jwt.ParserOption) error {
	options = append(options, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	}, options...)
	if err != nil {
		return fmt.Errorf("sec: invalid token: %w", err)
	}
	if !token.Valid {
		return fmt.Errorf("sec: invalid token claims")
	}
	return nil
}
