// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/bookmark-keeper/internal/config"
	"github.com/MKhiriev/bookmark-keeper/internal/logger"
	"github.com/MKhiriev/bookmark-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAPI(t *testing.T, handler http.HandlerFunc, token string) BookmarkAPI {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	api, err := NewHTTPBookmarkAPI(config.ClientConfig{
		ServerURL:      srv.URL,
		Token:          token,
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	return api
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "host and port", raw: "localhost:8080", want: "http://localhost:8080"},
		{name: "with scheme", raw: "https://bookmarks.example.com/", want: "https://bookmarks.example.com"},
		{name: "surrounding spaces", raw: "  http://127.0.0.1:9000  ", want: "http://127.0.0.1:9000"},
		{name: "empty", raw: "", wantErr: true},
		{name: "no host", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPBookmarkAPI_InvalidURL(t *testing.T) {
	_, err := NewHTTPBookmarkAPI(config.ClientConfig{}, logger.Nop())
	assert.Error(t, err)
}

func TestSignin_StoresTokenFromBody(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/signin", r.URL.Path)

		var req models.AuthRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "ann@example.com", req.Email)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"signed"}`))
	}, "")

	token, err := api.Signin(context.Background(), models.AuthRequest{Email: "ann@example.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "signed", token)
	assert.Equal(t, "signed", api.Token())
}

func TestSignup_FallsBackToHeaderToken(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Authorization", "Bearer from-header")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{}`))
	}, "")

	token, err := api.Signup(context.Background(), models.AuthRequest{Email: "ann@example.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "from-header", token)
}

func TestSignup_ValidationErrorIsBadRequest(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid data provided","fields":{"password":"is required"}}`))
	}, "")

	_, err := api.Signup(context.Background(), models.AuthRequest{Email: "ann@example.com"})
	require.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "password is required")
	assert.Empty(t, api.Token())
}

func TestAuthorizedCalls_RequireToken(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
	}, "")
	ctx := context.Background()

	_, err := api.Me(ctx)
	assert.ErrorIs(t, err, ErrNoToken)

	_, err = api.ListBookmarks(ctx)
	assert.ErrorIs(t, err, ErrNoToken)

	assert.ErrorIs(t, api.DeleteBookmark(ctx, 1), ErrNoToken)
}

func TestMe_SendsBearerToken(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/me", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"id":3,"email":"ann@example.com"}`))
	}, "tok")

	user, err := api.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), user.ID)
	assert.Equal(t, "ann@example.com", user.Email)
}

func TestGetBookmark(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/bookmarks/42", r.URL.Path)
			_, _ = w.Write([]byte(`{"id":42,"userID":3,"title":"Go","link":"https://go.dev"}`))
		}, "tok")

		bookmark, err := api.GetBookmark(context.Background(), 42)
		require.NoError(t, err)
		require.NotNil(t, bookmark)
		assert.Equal(t, "Go", bookmark.Title)
	})

	t.Run("null body", func(t *testing.T) {
		api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`null`))
		}, "tok")

		bookmark, err := api.GetBookmark(context.Background(), 42)
		require.NoError(t, err)
		assert.Nil(t, bookmark)
	})
}

func TestEditBookmark_Forbidden(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":"access to resources denied"}`))
	}, "tok")

	title := "new"
	_, err := api.EditBookmark(context.Background(), 9, models.EditBookmarkRequest{Title: &title})
	require.ErrorIs(t, err, ErrForbidden)
	assert.Contains(t, err.Error(), "access to resources denied")
}

func TestDeleteBookmark_NoContent(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/bookmarks/5", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}, "tok")

	assert.NoError(t, api.DeleteBookmark(context.Background(), 5))
}

func TestListBookmarks_Empty(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}, "tok")

	bookmarks, err := api.ListBookmarks(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, bookmarks)
	assert.Empty(t, bookmarks)
}

func TestVersion(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/version", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("v1.2.3\n"))
	}, "tok")

	version, err := api.Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "v1.2.3", version)
}

func TestMapHTTPError(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
		substr string
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{"error":"wrong credentials"}`, want: ErrUnauthorized, substr: "wrong credentials"},
		{name: "conflict", status: http.StatusConflict, body: `{"error":"email already exists"}`, want: ErrConflict, substr: "email already exists"},
		{name: "not found plain body", status: http.StatusNotFound, body: "404 page not found", want: ErrNotFound, substr: "404 page not found"},
		{name: "too many", status: http.StatusTooManyRequests, body: "", want: ErrTooManyRequests, substr: "Too Many Requests"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}, "tok")

			_, err := api.Me(context.Background())
			require.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), tt.substr)
		})
	}
}

func TestMapHTTPError_UnmappedStatus(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}, "tok")

	_, err := api.Me(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 502")
}
