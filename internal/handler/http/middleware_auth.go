// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-course-catalog/internal/logger"
	"github.com/MKhiriev/go-course-catalog/internal/service"
	"github.com/MKhiriev/go-course-catalog/internal/utils"
	"github.com/MKhiriev/go-course-catalog/models"
)

const bearerScheme = "Bearer"

// auth is an HTTP middleware that resolves the "Authorization" header to a
// user and stores it in the request context via [utils.WithCurrentUser].
//
// Two schemes are accepted:
//   - Basic: the email address and password are checked by
//     [service.AuthService.Authenticate].
//   - Bearer: only while token authentication is enabled; the token is
//     resolved by [service.AuthService.UserByToken].
//
// A missing header, an unknown scheme, or bad credentials end the request
// with 401 {"message": "Access Denied"}. Storage failures surface as 500.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := h.authenticate(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		l := logger.FromRequest(r).GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Int64("user_id", user.UserID)
		})
		ctx := l.WithContext(utils.WithCurrentUser(r.Context(), user))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) authenticate(r *http.Request) (models.User, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return models.User{}, fmt.Errorf("%w: %w", service.ErrUnauthenticated, ErrEmptyAuthorizationHeader)
	}

	if emailAddress, password, ok := r.BasicAuth(); ok {
		return h.services.AuthService.Authenticate(r.Context(), emailAddress, password)
	}

	if !h.services.AuthService.TokenAuthEnabled() {
		return models.User{}, fmt.Errorf("%w: %w", service.ErrUnauthenticated, ErrInvalidAuthorizationHeader)
	}

	tokenString, err := getTokenFromAuthHeader(authHeader)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", service.ErrUnauthenticated, err)
	}

	return h.services.AuthService.UserByToken(r.Context(), tokenString)
}

// getTokenFromAuthHeader extracts the token from a "Bearer <token>" header
// value. The scheme is matched case-insensitively.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	scheme, tokenString, found := strings.Cut(authHeader, " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
