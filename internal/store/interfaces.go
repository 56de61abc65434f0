// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store is the persistence gateway of the server. It exposes typed
// repositories over a PostgreSQL database opened through the pgx stdlib driver.
package store

import (
	"context"

	"github.com/MKhiriev/bookmark-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=mock/store_mock.go -package=mock

// UserRepository persists user accounts in the "users" table.
//
// Finder methods return a nil pointer, not an error, when no row matches.
type UserRepository interface {
	// CreateUser inserts a new account and returns it with server-assigned fields.
	// A duplicate email yields ErrEmailAlreadyExists.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUnique looks a user up by primary key.
	FindUnique(ctx context.Context, id int64) (*models.User, error)
	// FindOne returns the first user matching every non-zero filter field.
	FindOne(ctx context.Context, filter models.UserFilter) (*models.User, error)
	// Update writes the non-nil fields of update to the row with the given id.
	Update(ctx context.Context, id int64, update models.UserUpdate) (*models.User, error)
}

// BookmarkRepository persists bookmarks in the "bookmarks" table.
//
// Update and Delete are conditional: the filter becomes the WHERE clause of
// a single statement, so ownership is checked atomically with the write.
type BookmarkRepository interface {
	Create(ctx context.Context, bookmark models.Bookmark) (models.Bookmark, error)
	FindMany(ctx context.Context, filter models.BookmarkFilter) ([]models.Bookmark, error)
	FindOne(ctx context.Context, filter models.BookmarkFilter) (*models.Bookmark, error)
	FindUnique(ctx context.Context, id int64) (*models.Bookmark, error)
	Update(ctx context.Context, filter models.BookmarkFilter, update models.BookmarkUpdate) (*models.Bookmark, error)
	Delete(ctx context.Context, filter models.BookmarkFilter) (bool, error)
}
