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

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (ID, CreatedAt, UpdatedAt).
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateUserQuery(user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to build query")
		return models.User{}, err
	}

	created, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if isUniqueViolation(err) {
			return models.User{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to insert user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

// FindUnique returns the user with the given id, or nil when absent.
func (r *userRepository) FindUnique(ctx context.Context, id int64) (*models.User, error) {
	return r.FindOne(ctx, models.UserFilter{ID: id})
}

// FindOne returns the first user matching filter, or nil when absent.
func (r *userRepository) FindOne(ctx context.Context, filter models.UserFilter) (*models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindOne").Msg("failed to build query")
		return nil, err
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindOne").Int64("user_id", filter.ID).Msg("failed to find user")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return &user, nil
}

// Update applies the non-nil fields of update to the user row and returns
// the new state, or nil when no row has that id.
func (r *userRepository) Update(ctx context.Context, id int64, update models.UserUpdate) (*models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserQuery(id, update)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Update").Msg("failed to build query")
		return nil, err
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, nil
	case isUniqueViolation(err):
		return nil, ErrEmailAlreadyExists
	case err != nil:
		log.Err(err).Str("func", "*userRepository.Update").Int64("user_id", id).Msg("failed to update user")
		return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return &user, nil
}

func scanUser(row *sql.Row) (models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.Hash,
		&user.FirstName,
		&user.LastName,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	return user, err
}
