// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/bookmark-keeper/internal/config"
	"github.com/MKhiriev/bookmark-keeper/internal/logger"
	"github.com/MKhiriev/bookmark-keeper/internal/store"
	"github.com/MKhiriev/bookmark-keeper/internal/validators"
	"github.com/MKhiriev/bookmark-keeper/models"
)

// Services bundles every service the transport layer depends on.
type Services struct {
	AuthService     AuthService
	UserService     UserService
	BookmarkService BookmarkService
	AppInfoService  AppInfoService
}

// NewServices wires the services over storages. User and bookmark services
// are wrapped with request validation.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	validator := validators.NewStructValidator()

	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService: NewAuthService(storages.UserRepository, validator, cfg.App, logger),
		UserService: NewUserValidationService(validator).
			Wrap(NewUserService(storages.UserRepository, logger)),
		BookmarkService: NewBookmarkValidationService(validator).
			Wrap(NewBookmarkService(storages.BookmarkRepository, logger)),
		AppInfoService: appInfoService,
	}, nil
}
