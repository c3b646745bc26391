// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-course-catalog/internal/logger"
	"github.com/MKhiriev/go-course-catalog/internal/utils"
	"github.com/MKhiriev/go-course-catalog/models"
)

// register creates an account. The response carries no user data, only a
// Location header pointing at the site root.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var user models.User
	if err := decodeJSON(r, &user); err != nil {
		log.Debug().Err(err).Msg("invalid registration body")
		writeInvalidJSON(w)
		return
	}

	registered, err := h.services.UserService.Register(r.Context(), user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("user_id", registered.UserID).Msg("user registered")

	w.Header().Set("Location", "/")
	utils.WriteMessage(w, msgAccountCreated, http.StatusCreated)
}

func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user.Public(), http.StatusOK)
}

// createToken issues a bearer token for the authenticated user.
func (h *Handler) createToken(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.TokenResponse{
		Token:     token.String(),
		ExpiresAt: token.ExpiresAt,
	}, http.StatusOK)
}
