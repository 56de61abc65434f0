// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/bookmark-keeper/internal/logger"
	"github.com/MKhiriev/bookmark-keeper/internal/store"
	"github.com/MKhiriev/bookmark-keeper/models"
)

type userService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewUserService returns the UserService without input validation; wrap it
// with NewUserValidationService before exposing it to transport.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// GetOwnProfile returns the caller as resolved by authentication.
func (u *userService) GetOwnProfile(ctx context.Context, caller models.User) (models.User, error) {
	return caller.WithoutHash(), nil
}

// UpdateProfile writes req to the caller's own row. The target id comes
// only from callerID.
func (u *userService) UpdateProfile(ctx context.Context, callerID int64, req models.UpdateUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	updated, err := u.userRepository.Update(ctx, callerID, req.ToUpdate())
	if err != nil {
		log.Err(err).Str("func", "*userService.UpdateProfile").Int64("user_id", callerID).Msg("profile update failed")
		return models.User{}, fmt.Errorf("profile update failed: %w", err)
	}
	if updated == nil {
		return models.User{}, ErrUserNotFound
	}

	return updated.WithoutHash(), nil
}
