// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/bookmark-keeper/internal/logger"

// Storages bundles the repositories handed to the service layer.
type Storages struct {
	UserRepository     UserRepository
	BookmarkRepository BookmarkRepository
}

// NewStorages builds every repository on top of one shared pool.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:     NewUserRepository(db, log),
		BookmarkRepository: NewBookmarkRepository(db, log),
	}
}
