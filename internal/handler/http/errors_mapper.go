// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/bookmark-keeper/internal/logger"
	"github.com/MKhiriev/bookmark-keeper/internal/service"
	"github.com/MKhiriev/bookmark-keeper/internal/store"
	"github.com/MKhiriev/bookmark-keeper/internal/utils"
	"github.com/MKhiriev/bookmark-keeper/internal/validators"
	"github.com/MKhiriev/bookmark-keeper/models"
)

var errorStatusMap = map[error]int{
	ErrEmptyAuthorizationHeader:         http.StatusUnauthorized,
	utils.ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrNoUserInContext:                  http.StatusUnauthorized,
	ErrInvalidJSON:                      http.StatusBadRequest,
	ErrInvalidBookmarkID:                http.StatusBadRequest,
	ErrTooManyRequests:                  http.StatusTooManyRequests,

	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongCredentials:        http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrUserNotFound:            http.StatusUnauthorized,
	service.ErrAccessDenied:            http.StatusForbidden,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrUnknownOwner:       http.StatusUnauthorized,
}

// classifyError returns the status for err and the sentinel it matched.
// Unmapped errors yield 500 and a nil sentinel.
func classifyError(err error) (int, error) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status, target
		}
	}
	return http.StatusInternalServerError, nil
}

func statusFromError(err error) int {
	status, _ := classifyError(err)
	return status
}

// writeError renders err as models.ErrorResponse. Client errors expose the
// matched sentinel message; everything else is reported as a generic 500
// and logged with full detail.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status, target := classifyError(err)
	resp := models.ErrorResponse{Error: http.StatusText(status)}
	if target != nil {
		resp.Error = target.Error()
	}

	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		resp.Fields = validationErr.Fields
	}

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	if _, writeErr := utils.WriteJSON(w, resp, status); writeErr != nil {
		log.Err(writeErr).Msg("error writing error response")
	}
}
