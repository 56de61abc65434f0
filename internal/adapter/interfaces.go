// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the bookmark-keeper REST API.
//
// [BookmarkAPI] hides the transport from callers such as the CLI. Non-2xx
// responses are mapped to the sentinel errors in errors.go, so callers can
// branch with [errors.Is] (e.g. [ErrForbidden] for 403, [ErrConflict] for 409).
package adapter

import (
	"context"

	"github.com/MKhiriev/bookmark-keeper/models"
)

// BookmarkAPI is a typed client for every endpoint of the server.
type BookmarkAPI interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" if none is set.
	Token() string

	// Signup registers an account and stores the returned token.
	Signup(ctx context.Context, req models.AuthRequest) (string, error)

	// Signin authenticates and stores the returned token.
	Signin(ctx context.Context, req models.AuthRequest) (string, error)

	Me(ctx context.Context) (models.User, error)
	UpdateMe(ctx context.Context, req models.UpdateUserRequest) (models.User, error)

	CreateBookmark(ctx context.Context, req models.CreateBookmarkRequest) (models.Bookmark, error)
	ListBookmarks(ctx context.Context) ([]models.Bookmark, error)

	// GetBookmark returns nil when the caller owns no bookmark with that id.
	GetBookmark(ctx context.Context, id int64) (*models.Bookmark, error)

	EditBookmark(ctx context.Context, id int64, req models.EditBookmarkRequest) (models.Bookmark, error)
	DeleteBookmark(ctx context.Context, id int64) error

	// Version returns the server build version.
	Version(ctx context.Context) (string, error)
}
