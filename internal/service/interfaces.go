// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic of the bookmark server:
// authentication, profile management and owner-scoped bookmark CRUD.
//
// Caller identity is always passed explicitly (a user or user id resolved
// by the HTTP auth middleware); nothing here reads it from globals.
package service

import (
	"context"

	"github.com/MKhiriev/bookmark-keeper/models"
)

// AuthService issues and verifies access tokens.
type AuthService interface {
	// Signup registers a new account and returns a token for it.
	Signup(ctx context.Context, req models.AuthRequest) (models.Token, error)
	// Signin checks credentials and returns a fresh token.
	Signin(ctx context.Context, req models.AuthRequest) (models.Token, error)
	CreateToken(ctx context.Context, userID int64) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	// Authenticate resolves a raw bearer token to the stored user (hash blanked).
	Authenticate(ctx context.Context, tokenString string) (models.User, error)
}

// UserService manages the caller's own profile.
type UserService interface {
	GetOwnProfile(ctx context.Context, caller models.User) (models.User, error)
	UpdateProfile(ctx context.Context, callerID int64, req models.UpdateUserRequest) (models.User, error)
}

// BookmarkService is the owner-scoped bookmark CRUD.
//
// Edit and delete report ErrAccessDenied both when the bookmark does not
// exist and when it belongs to someone else.
type BookmarkService interface {
	Create(ctx context.Context, ownerID int64, req models.CreateBookmarkRequest) (models.Bookmark, error)
	ListOwned(ctx context.Context, ownerID int64) ([]models.Bookmark, error)
	GetByID(ctx context.Context, ownerID, bookmarkID int64) (*models.Bookmark, error)
	EditByID(ctx context.Context, ownerID, bookmarkID int64, req models.EditBookmarkRequest) (models.Bookmark, error)
	DeleteByID(ctx context.Context, ownerID, bookmarkID int64) error
}

// AppInfoService exposes build metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// BookmarkServiceWrapper defines middleware composition for BookmarkService.
// Implementations wrap an existing BookmarkService to add behavior such as
// validation.
type BookmarkServiceWrapper interface {
	Wrap(BookmarkService) BookmarkService
}

// UserServiceWrapper defines middleware composition for UserService.
type UserServiceWrapper interface {
	Wrap(UserService) UserService
}
