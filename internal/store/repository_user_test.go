// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/bookmark-keeper/internal/logger"
	"github.com/MKhiriev/bookmark-keeper/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return &DB{DB: db, logger: logger.Nop()}, mock
}

func newTestUserRepo(t *testing.T) (UserRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return NewUserRepository(db, logger.Nop()), mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func userRows(now time.Time) *sqlmock.Rows {
	return sqlmock.NewRows(userColumns).
		AddRow(int64(1), "john@example.com", "hash", "John", nil, now, now)
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	now := time.Now()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("john@example.com", "hash", "John", nil).
		WillReturnRows(userRows(now))

	created, err := repo.CreateUser(context.Background(), models.User{
		Email:     "john@example.com",
		Hash:      "hash",
		FirstName: strPtr("John"),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "john@example.com", created.Email)
	require.NotNil(t, created.FirstName)
	assert.Equal(t, "John", *created.FirstName)
	assert.Nil(t, created.LastName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), models.User{Email: "john@example.com", Hash: "h"})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestCreateUser_DBError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.CreateUser(context.Background(), models.User{Email: "john@example.com", Hash: "h"})
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NotErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestFindUnique_Found(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE id = \$1 LIMIT 1`).
		WithArgs(int64(1)).
		WillReturnRows(userRows(time.Now()))

	user, err := repo.FindUnique(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "hash", user.Hash)
}

func TestFindUnique_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(userColumns))

	user, err := repo.FindUnique(context.Background(), 99)
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestFindOne_ByEmail(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE email = \$1`).
		WithArgs("john@example.com").
		WillReturnRows(userRows(time.Now()))

	user, err := repo.FindOne(context.Background(), models.UserFilter{Email: "john@example.com"})
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "john@example.com", user.Email)
}

func TestFindOne_EmptyFilter(t *testing.T) {
	repo, _ := newTestUserRepo(t)

	_, err := repo.FindOne(context.Background(), models.UserFilter{})
	assert.ErrorIs(t, err, ErrEmptyFilter)
}

func TestFindOne_DBError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM users").
		WillReturnError(sql.ErrConnDone)

	_, err := repo.FindOne(context.Background(), models.UserFilter{ID: 1})
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.ErrorIs(t, err, sql.ErrConnDone)
}

func TestUpdateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	now := time.Now()

	mock.ExpectQuery(`UPDATE users SET updated_at = NOW\(\), first_name = \$1 WHERE id = \$2`).
		WithArgs("John", int64(1)).
		WillReturnRows(userRows(now))

	user, err := repo.Update(context.Background(), 1, models.UserUpdate{FirstName: strPtr("John")})
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "John", *user.FirstName)
}

func TestUpdateUser_NoRow(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("UPDATE users").
		WillReturnRows(sqlmock.NewRows(userColumns))

	user, err := repo.Update(context.Background(), 1, models.UserUpdate{})
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUpdateUser_EmailTaken(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("UPDATE users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.Update(context.Background(), 1, models.UserUpdate{Email: strPtr("taken@example.com")})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestDB_Wipe(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectExec(`TRUNCATE TABLE bookmarks, users RESTART IDENTITY`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, db.Wipe(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDB_WipeError(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectExec("TRUNCATE").WillReturnError(errors.New("boom"))

	assert.ErrorIs(t, db.Wipe(context.Background()), ErrExecutingStatement)
}

func TestPostgresErrorHelpers(t *testing.T) {
	assert.True(t, isUniqueViolation(pgError(pgerrcode.UniqueViolation)))
	assert.False(t, isUniqueViolation(errors.New("plain")))
	assert.True(t, isForeignKeyViolation(pgError(pgerrcode.ForeignKeyViolation)))
	assert.Equal(t, "", postgresError(nil))
}
