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

// bookmarkService implements BookmarkService on top of a BookmarkRepository.
// Every repository call carries the owner id, so a caller can never read or
// modify another user's rows.
type bookmarkService struct {
	bookmarkRepository store.BookmarkRepository
	logger             *logger.Logger
}

// NewBookmarkService returns the BookmarkService without input validation.
func NewBookmarkService(bookmarkRepository store.BookmarkRepository, logger *logger.Logger) BookmarkService {
	return &bookmarkService{
		bookmarkRepository: bookmarkRepository,
		logger:             logger,
	}
}

func (b *bookmarkService) Create(ctx context.Context, ownerID int64, req models.CreateBookmarkRequest) (models.Bookmark, error) {
	log := logger.FromContext(ctx)

	created, err := b.bookmarkRepository.Create(ctx, models.Bookmark{
		UserID:      ownerID,
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
	})
	if err != nil {
		log.Err(err).Str("func", "*bookmarkService.Create").Int64("user_id", ownerID).Msg("bookmark creation failed")
		return models.Bookmark{}, fmt.Errorf("bookmark creation failed: %w", err)
	}

	return created, nil
}

func (b *bookmarkService) ListOwned(ctx context.Context, ownerID int64) ([]models.Bookmark, error) {
	bookmarks, err := b.bookmarkRepository.FindMany(ctx, models.BookmarkFilter{UserID: ownerID})
	if err != nil {
		return nil, fmt.Errorf("listing bookmarks failed: %w", err)
	}
	if bookmarks == nil {
		bookmarks = []models.Bookmark{}
	}

	return bookmarks, nil
}

// GetByID returns nil, not an error, when the bookmark is missing or belongs
// to another user. Non-positive ids never exist.
func (b *bookmarkService) GetByID(ctx context.Context, ownerID, bookmarkID int64) (*models.Bookmark, error) {
	if bookmarkID <= 0 {
		return nil, nil
	}

	bookmark, err := b.bookmarkRepository.FindOne(ctx, models.BookmarkFilter{ID: bookmarkID, UserID: ownerID})
	if err != nil {
		return nil, fmt.Errorf("getting bookmark failed: %w", err)
	}

	return bookmark, nil
}

// EditByID updates the bookmark in a single conditional statement.
func (b *bookmarkService) EditByID(ctx context.Context, ownerID, bookmarkID int64, req models.EditBookmarkRequest) (models.Bookmark, error) {
	log := logger.FromContext(ctx)

	if bookmarkID <= 0 {
		log.Warn().Int64("user_id", ownerID).Int64("bookmark_id", bookmarkID).Msg("edit denied")
		return models.Bookmark{}, ErrAccessDenied
	}

	updated, err := b.bookmarkRepository.Update(ctx,
		models.BookmarkFilter{ID: bookmarkID, UserID: ownerID},
		req.ToUpdate(),
	)
	if err != nil {
		log.Err(err).Str("func", "*bookmarkService.EditByID").Int64("bookmark_id", bookmarkID).Msg("bookmark update failed")
		return models.Bookmark{}, fmt.Errorf("bookmark update failed: %w", err)
	}
	if updated == nil {
		log.Warn().Int64("user_id", ownerID).Int64("bookmark_id", bookmarkID).Msg("edit denied")
		return models.Bookmark{}, ErrAccessDenied
	}

	return *updated, nil
}

// DeleteByID deletes the bookmark in a single conditional statement.
func (b *bookmarkService) DeleteByID(ctx context.Context, ownerID, bookmarkID int64) error {
	log := logger.FromContext(ctx)

	if bookmarkID <= 0 {
		log.Warn().Int64("user_id", ownerID).Int64("bookmark_id", bookmarkID).Msg("delete denied")
		return ErrAccessDenied
	}

	deleted, err := b.bookmarkRepository.Delete(ctx, models.BookmarkFilter{ID: bookmarkID, UserID: ownerID})
	if err != nil {
		log.Err(err).Str("func", "*bookmarkService.DeleteByID").Int64("bookmark_id", bookmarkID).Msg("bookmark deletion failed")
		return fmt.Errorf("bookmark deletion failed: %w", err)
	}
	if !deleted {
		log.Warn().Int64("user_id", ownerID).Int64("bookmark_id", bookmarkID).Msg("delete denied")
		return ErrAccessDenied
	}

	return nil
}
