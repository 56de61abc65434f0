// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/bookmark-keeper/internal/logger"
	"github.com/MKhiriev/bookmark-keeper/models"
)

// bookmarkRepository is the PostgreSQL-backed implementation of
// [BookmarkRepository] over the "bookmarks" table.
type bookmarkRepository struct {
	*DB
	logger *logger.Logger
}

// NewBookmarkRepository constructs a [BookmarkRepository] backed by the
// provided database connection and logger.
func NewBookmarkRepository(db *DB, logger *logger.Logger) BookmarkRepository {
	logger.Debug().Msg("creating bookmark repository")
	return &bookmarkRepository{
		DB:     db,
		logger: logger,
	}
}

// Create inserts bookmark and returns the stored row.
func (b *bookmarkRepository) Create(ctx context.Context, bookmark models.Bookmark) (models.Bookmark, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateBookmarkQuery(bookmark)
	if err != nil {
		log.Err(err).Str("func", "bookmarkRepository.Create").Msg("failed to build query")
		return models.Bookmark{}, err
	}

	created, err := scanBookmark(b.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if isForeignKeyViolation(err) {
			return models.Bookmark{}, ErrUnknownOwner
		}
		log.Err(err).
			Str("func", "bookmarkRepository.Create").
			Int64("user_id", bookmark.UserID).
			Msg("failed to insert bookmark")
		return models.Bookmark{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

// FindMany returns every bookmark matching filter ordered by id. The result
// is never nil.
func (b *bookmarkRepository) FindMany(ctx context.Context, filter models.BookmarkFilter) ([]models.Bookmark, error) {
	return b.find(ctx, filter, 0)
}

// FindOne returns the first bookmark matching filter, or nil when absent.
func (b *bookmarkRepository) FindOne(ctx context.Context, filter models.BookmarkFilter) (*models.Bookmark, error) {
	found, err := b.find(ctx, filter, 1)
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, nil
	}
	return &found[0], nil
}

// FindUnique returns the bookmark with the given id regardless of owner,
// or nil when absent. It is part of the gateway surface for tooling and
// tests; request paths never use it, since they must scope by owner.
func (b *bookmarkRepository) FindUnique(ctx context.Context, id int64) (*models.Bookmark, error) {
	if id == 0 {
		return nil, nil
	}
	return b.FindOne(ctx, models.BookmarkFilter{ID: id})
}

// Update runs one UPDATE ... WHERE id = $n AND user_id = $m RETURNING ...
// and returns nil when no row satisfied both predicates.
func (b *bookmarkRepository) Update(ctx context.Context, filter models.BookmarkFilter, update models.BookmarkUpdate) (*models.Bookmark, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateBookmarkQuery(filter, update)
	if err != nil {
		log.Err(err).Str("func", "bookmarkRepository.Update").Msg("failed to build query")
		return nil, err
	}

	updated, err := scanBookmark(b.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "bookmarkRepository.Update").
			Int64("bookmark_id", filter.ID).
			Int64("user_id", filter.UserID).
			Msg("failed to update bookmark")
		return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return &updated, nil
}

// Delete runs one DELETE ... WHERE id = $1 AND user_id = $2 and reports
// whether a row was removed.
func (b *bookmarkRepository) Delete(ctx context.Context, filter models.BookmarkFilter) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteBookmarkQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "bookmarkRepository.Delete").Msg("failed to build query")
		return false, err
	}

	result, err := b.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "bookmarkRepository.Delete").
			Int64("bookmark_id", filter.ID).
			Int64("user_id", filter.UserID).
			Msg("failed to delete bookmark")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected > 0, nil
}

func (b *bookmarkRepository) find(ctx context.Context, filter models.BookmarkFilter, limit uint64) ([]models.Bookmark, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindBookmarksQuery(filter, limit)
	if err != nil {
		log.Err(err).Str("func", "bookmarkRepository.find").Msg("failed to build query")
		return nil, err
	}

	rows, err := b.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "bookmarkRepository.find").
			Int64("user_id", filter.UserID).
			Msg("failed to execute query for bookmarks")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Bookmark, 0)
	for rows.Next() {
		var item models.Bookmark
		if scanErr := rows.Scan(
			&item.ID,
			&item.UserID,
			&item.Title,
			&item.Description,
			&item.Link,
			&item.CreatedAt,
			&item.UpdatedAt,
		); scanErr != nil {
			log.Err(scanErr).Str("func", "bookmarkRepository.find").Msg("failed to scan bookmark row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		results = append(results, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "bookmarkRepository.find").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

func scanBookmark(row *sql.Row) (models.Bookmark, error) {
	var bookmark models.Bookmark
	err := row.Scan(
		&bookmark.ID,
		&bookmark.UserID,
		&bookmark.Title,
		&bookmark.Description,
		&bookmark.Link,
		&bookmark.CreatedAt,
		&bookmark.UpdatedAt,
	)
	return bookmark, err
}
