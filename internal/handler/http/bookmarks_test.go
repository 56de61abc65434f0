// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/bookmark-keeper/internal/logger"
	"github.com/MKhiriev/bookmark-keeper/internal/service"
	"github.com/MKhiriev/bookmark-keeper/internal/store/mock"
	"github.com/MKhiriev/bookmark-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testCaller = models.User{ID: 7, Email: "owner@example.com"}

func serveAuthenticated(t *testing.T, bookmarks service.BookmarkService, method, path string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()

	router := newTestRouter(&service.Services{
		AuthService:     &mockAuthService{authenticateFn: authenticatedAs(testCaller)},
		BookmarkService: bookmarks,
	})

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateBookmark(t *testing.T) {
	svc := &mockBookmarkService{
		createFn: func(_ context.Context, ownerID int64, req models.CreateBookmarkRequest) (models.Bookmark, error) {
			assert.Equal(t, testCaller.ID, ownerID)
			return models.Bookmark{ID: 3, UserID: ownerID, Title: req.Title, Link: req.Link}, nil
		},
	}

	rec := serveAuthenticated(t, svc, http.MethodPost, "/bookmarks",
		strings.NewReader(`{"title":"Go","link":"https://go.dev","userID":999}`))

	require.Equal(t, http.StatusCreated, rec.Code)
	var got models.Bookmark
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, int64(3), got.ID)
	assert.Equal(t, testCaller.ID, got.UserID)
}

func TestCreateBookmark_Invalid(t *testing.T) {
	svc := &mockBookmarkService{
		createFn: func(context.Context, int64, models.CreateBookmarkRequest) (models.Bookmark, error) {
			return models.Bookmark{}, service.ErrInvalidDataProvided
		},
	}

	rec := serveAuthenticated(t, svc, http.MethodPost, "/bookmarks", strings.NewReader(`{"title":"Go"}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"invalid data provided"}`, rec.Body.String())
}

func TestListBookmarks_Empty(t *testing.T) {
	svc := &mockBookmarkService{
		listOwnedFn: func(_ context.Context, ownerID int64) ([]models.Bookmark, error) {
			assert.Equal(t, testCaller.ID, ownerID)
			return []models.Bookmark{}, nil
		},
	}

	rec := serveAuthenticated(t, svc, http.MethodGet, "/bookmarks", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", rec.Body.String())
}

func TestGetBookmark(t *testing.T) {
	svc := &mockBookmarkService{
		getByIDFn: func(_ context.Context, ownerID, bookmarkID int64) (*models.Bookmark, error) {
			if bookmarkID == 5 {
				return &models.Bookmark{ID: 5, UserID: ownerID, Title: "Go"}, nil
			}
			return nil, nil
		},
	}

	t.Run("owned → 200 with bookmark", func(t *testing.T) {
		rec := serveAuthenticated(t, svc, http.MethodGet, "/bookmarks/5", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var got models.Bookmark
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, int64(5), got.ID)
	})

	t.Run("absent or foreign → 200 with null", func(t *testing.T) {
		rec := serveAuthenticated(t, svc, http.MethodGet, "/bookmarks/6", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "null", rec.Body.String())
	})

	t.Run("non-integer id → 400", func(t *testing.T) {
		rec := serveAuthenticated(t, svc, http.MethodGet, "/bookmarks/abc", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestEditBookmark(t *testing.T) {
	svc := &mockBookmarkService{
		editByIDFn: func(_ context.Context, ownerID, bookmarkID int64, req models.EditBookmarkRequest) (models.Bookmark, error) {
			if bookmarkID != 5 {
				return models.Bookmark{}, service.ErrAccessDenied
			}
			return models.Bookmark{ID: 5, UserID: ownerID, Title: *req.Title}, nil
		},
	}

	t.Run("owner → 200", func(t *testing.T) {
		rec := serveAuthenticated(t, svc, http.MethodPatch, "/bookmarks/5", strings.NewReader(`{"title":"new"}`))

		require.Equal(t, http.StatusOK, rec.Code)
		var got models.Bookmark
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "new", got.Title)
	})

	t.Run("not owner or missing → 403", func(t *testing.T) {
		rec := serveAuthenticated(t, svc, http.MethodPatch, "/bookmarks/6", strings.NewReader(`{"title":"new"}`))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.JSONEq(t, `{"error":"access to resources denied"}`, rec.Body.String())
	})

	t.Run("bad JSON → 400", func(t *testing.T) {
		rec := serveAuthenticated(t, svc, http.MethodPatch, "/bookmarks/5", strings.NewReader(`[`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDeleteBookmark(t *testing.T) {
	svc := &mockBookmarkService{
		deleteByIDFn: func(_ context.Context, ownerID, bookmarkID int64) error {
			switch bookmarkID {
			case 5:
				return nil
			case 9:
				return errors.New("connection reset")
			default:
				return service.ErrAccessDenied
			}
		},
	}

	ok := serveAuthenticated(t, svc, http.MethodDelete, "/bookmarks/5", nil)
	assert.Equal(t, http.StatusNoContent, ok.Code)
	assert.Zero(t, ok.Body.Len())

	denied := serveAuthenticated(t, svc, http.MethodDelete, "/bookmarks/6", nil)
	assert.Equal(t, http.StatusForbidden, denied.Code)

	failed := serveAuthenticated(t, svc, http.MethodDelete, "/bookmarks/9", nil)
	assert.Equal(t, http.StatusInternalServerError, failed.Code)
	assert.NotContains(t, failed.Body.String(), "connection reset")
}

func TestCallerAndBookmarkID_NoCaller(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/bookmarks/1", nil)

	_, _, err := callerAndBookmarkID(req)
	assert.ErrorIs(t, err, ErrNoUserInContext)
}

func TestBookmarkRoutes_NonPositiveID(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
		wantBody   string
	}{
		{name: "get 0", method: http.MethodGet, path: "/bookmarks/0", wantStatus: http.StatusOK, wantBody: "null"},
		{name: "get -1", method: http.MethodGet, path: "/bookmarks/-1", wantStatus: http.StatusOK, wantBody: "null"},
		{name: "edit 0", method: http.MethodPatch, path: "/bookmarks/0", body: `{"title":"x"}`, wantStatus: http.StatusForbidden},
		{name: "edit -1", method: http.MethodPatch, path: "/bookmarks/-1", body: `{"title":"x"}`, wantStatus: http.StatusForbidden},
		{name: "delete 0", method: http.MethodDelete, path: "/bookmarks/0", wantStatus: http.StatusForbidden},
		{name: "delete -1", method: http.MethodDelete, path: "/bookmarks/-1", wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// the repository has no expectations, so any query fails the test
			repo := mock.NewMockBookmarkRepository(gomock.NewController(t))
			bookmarks := service.NewBookmarkService(repo, logger.Nop())

			rec := serveAuthenticated(t, bookmarks, tt.method, tt.path, strings.NewReader(tt.body))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
			if tt.wantStatus == http.StatusForbidden {
				var resp models.ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, service.ErrAccessDenied.Error(), resp.Error)
			}
		})
	}
}
