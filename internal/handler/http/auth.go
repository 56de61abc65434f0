// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/bookmark-keeper/internal/logger"
	"github.com/MKhiriev/bookmark-keeper/internal/utils"
	"github.com/MKhiriev/bookmark-keeper/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.AuthRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	token, err := h.services.AuthService.Signup(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("user_id", token.UserID).Msg("user registered")
	writeToken(w, r, token, http.StatusCreated)
}

func (h *Handler) signin(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.AuthRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	token, err := h.services.AuthService.Signin(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("user_id", token.UserID).Msg("user successfully logged in")
	writeToken(w, r, token, http.StatusOK)
}

// writeToken returns the token in the body and in the Authorization header.
func writeToken(w http.ResponseWriter, r *http.Request, token models.Token, status int) {
	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))

	if _, err := utils.WriteJSON(w, models.TokenResponse{AccessToken: token.SignedString}, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing token response")
	}
}
