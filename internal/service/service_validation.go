// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/bookmark-keeper/internal/validators"
	"github.com/MKhiriev/bookmark-keeper/models"
)

// BookmarkValidationService validates request DTOs before delegating to the
// wrapped BookmarkService. Failures are returned as ErrInvalidDataProvided
// wrapping the *validators.ValidationError.
type BookmarkValidationService struct {
	inner     BookmarkService
	validator validators.Validator
}

func NewBookmarkValidationService(validator validators.Validator) BookmarkServiceWrapper {
	return &BookmarkValidationService{validator: validator}
}

func (v *BookmarkValidationService) Wrap(inner BookmarkService) BookmarkService {
	v.inner = inner
	return v
}

func (v *BookmarkValidationService) Create(ctx context.Context, ownerID int64, req models.CreateBookmarkRequest) (models.Bookmark, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Bookmark{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Create(ctx, ownerID, req)
}

func (v *BookmarkValidationService) ListOwned(ctx context.Context, ownerID int64) ([]models.Bookmark, error) {
	return v.inner.ListOwned(ctx, ownerID)
}

func (v *BookmarkValidationService) GetByID(ctx context.Context, ownerID, bookmarkID int64) (*models.Bookmark, error) {
	return v.inner.GetByID(ctx, ownerID, bookmarkID)
}

func (v *BookmarkValidationService) EditByID(ctx context.Context, ownerID, bookmarkID int64, req models.EditBookmarkRequest) (models.Bookmark, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Bookmark{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.EditByID(ctx, ownerID, bookmarkID, req)
}

func (v *BookmarkValidationService) DeleteByID(ctx context.Context, ownerID, bookmarkID int64) error {
	return v.inner.DeleteByID(ctx, ownerID, bookmarkID)
}

// UserValidationService validates profile updates before delegating to the
// wrapped UserService.
type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService(validator validators.Validator) UserServiceWrapper {
	return &UserValidationService{validator: validator}
}

func (v *UserValidationService) Wrap(inner UserService) UserService {
	v.inner = inner
	return v
}

func (v *UserValidationService) GetOwnProfile(ctx context.Context, caller models.User) (models.User, error) {
	return v.inner.GetOwnProfile(ctx, caller)
}

func (v *UserValidationService) UpdateProfile(ctx context.Context, callerID int64, req models.UpdateUserRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.UpdateProfile(ctx, callerID, req)
}
