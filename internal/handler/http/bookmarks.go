// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/bookmark-keeper/internal/logger"
	"github.com/MKhiriev/bookmark-keeper/internal/utils"
	"github.com/MKhiriev/bookmark-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createBookmark(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoUserInContext)
		return
	}

	var req models.CreateBookmarkRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	created, err := h.services.BookmarkService.Create(r.Context(), ownerID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Int64("bookmark_id", created.ID).Msg("bookmark created")
	writeJSON(w, r, created, http.StatusCreated)
}

func (h *Handler) listBookmarks(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoUserInContext)
		return
	}

	bookmarks, err := h.services.BookmarkService.ListOwned(r.Context(), ownerID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, bookmarks, http.StatusOK)
}

// getBookmark answers 200 with a JSON null when the caller owns no bookmark
// with that id.
func (h *Handler) getBookmark(w http.ResponseWriter, r *http.Request) {
	ownerID, bookmarkID, err := callerAndBookmarkID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	bookmark, err := h.services.BookmarkService.GetByID(r.Context(), ownerID, bookmarkID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, bookmark, http.StatusOK)
}

func (h *Handler) editBookmark(w http.ResponseWriter, r *http.Request) {
	ownerID, bookmarkID, err := callerAndBookmarkID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.EditBookmarkRequest
	if err = utils.DecodeJSON(r, &req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	updated, err := h.services.BookmarkService.EditByID(r.Context(), ownerID, bookmarkID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, updated, http.StatusOK)
}

func (h *Handler) deleteBookmark(w http.ResponseWriter, r *http.Request) {
	ownerID, bookmarkID, err := callerAndBookmarkID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.BookmarkService.DeleteByID(r.Context(), ownerID, bookmarkID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func callerAndBookmarkID(r *http.Request) (int64, int64, error) {
	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return 0, 0, ErrNoUserInContext
	}

	bookmarkID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", ErrInvalidBookmarkID, err)
	}

	return ownerID, bookmarkID, nil
}

func writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
