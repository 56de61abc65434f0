// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/bookmark-keeper/models"
)

const (
	usersTable     = "users"
	bookmarksTable = "bookmarks"

	wipeAll = `TRUNCATE TABLE bookmarks, users RESTART IDENTITY CASCADE;`
)

// psql builds PostgreSQL statements with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var userColumns = []string{
	"id",
	"email",
	"hash",
	"first_name",
	"last_name",
	"created_at",
	"updated_at",
}

var bookmarkColumns = []string{
	"id",
	"user_id",
	"title",
	"description",
	"link",
	"created_at",
	"updated_at",
}

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func wrapBuildErr(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
}

func buildCreateUserQuery(user models.User) (string, []any, error) {
	query, args, err := psql.Insert(usersTable).
		Columns("email", "hash", "first_name", "last_name").
		Values(user.Email, user.Hash, user.FirstName, user.LastName).
		Suffix(returning(userColumns)).
		ToSql()
	return query, args, wrapBuildErr(err)
}

func buildFindUserQuery(filter models.UserFilter) (string, []any, error) {
	if filter.ID == 0 && filter.Email == "" {
		return "", nil, ErrEmptyFilter
	}

	builder := psql.Select(userColumns...).From(usersTable)
	if filter.ID != 0 {
		builder = builder.Where(sq.Eq{"id": filter.ID})
	}
	if filter.Email != "" {
		builder = builder.Where(sq.Eq{"email": filter.Email})
	}

	query, args, err := builder.Limit(1).ToSql()
	return query, args, wrapBuildErr(err)
}

func buildUpdateUserQuery(id int64, update models.UserUpdate) (string, []any, error) {
	builder := psql.Update(usersTable).Set("updated_at", sq.Expr("NOW()"))
	if update.Email != nil {
		builder = builder.Set("email", *update.Email)
	}
	if update.FirstName != nil {
		builder = builder.Set("first_name", *update.FirstName)
	}
	if update.LastName != nil {
		builder = builder.Set("last_name", *update.LastName)
	}

	query, args, err := builder.
		Where(sq.Eq{"id": id}).
		Suffix(returning(userColumns)).
		ToSql()
	return query, args, wrapBuildErr(err)
}

func buildCreateBookmarkQuery(bookmark models.Bookmark) (string, []any, error) {
	query, args, err := psql.Insert(bookmarksTable).
		Columns("user_id", "title", "description", "link").
		Values(bookmark.UserID, bookmark.Title, bookmark.Description, bookmark.Link).
		Suffix(returning(bookmarkColumns)).
		ToSql()
	return query, args, wrapBuildErr(err)
}

// bookmarkPredicates applies every non-zero filter field as an equality.
func bookmarkPredicates(filter models.BookmarkFilter) sq.And {
	preds := sq.And{}
	if filter.ID != 0 {
		preds = append(preds, sq.Eq{"id": filter.ID})
	}
	if filter.UserID != 0 {
		preds = append(preds, sq.Eq{"user_id": filter.UserID})
	}
	return preds
}

func buildFindBookmarksQuery(filter models.BookmarkFilter, limit uint64) (string, []any, error) {
	builder := psql.Select(bookmarkColumns...).From(bookmarksTable)
	if preds := bookmarkPredicates(filter); len(preds) > 0 {
		builder = builder.Where(preds)
	}
	builder = builder.OrderBy("id")
	if limit > 0 {
		builder = builder.Limit(limit)
	}

	query, args, err := builder.ToSql()
	return query, args, wrapBuildErr(err)
}

// buildUpdateBookmarkQuery builds a single conditional UPDATE. Both id and
// user_id are required so that the ownership check and the write happen in
// one statement.
func buildUpdateBookmarkQuery(filter models.BookmarkFilter, update models.BookmarkUpdate) (string, []any, error) {
	if filter.ID == 0 || filter.UserID == 0 {
		return "", nil, ErrEmptyFilter
	}

	builder := psql.Update(bookmarksTable).Set("updated_at", sq.Expr("NOW()"))
	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.Description != nil {
		builder = builder.Set("description", *update.Description)
	}
	if update.Link != nil {
		builder = builder.Set("link", *update.Link)
	}

	query, args, err := builder.
		Where(bookmarkPredicates(filter)).
		Suffix(returning(bookmarkColumns)).
		ToSql()
	return query, args, wrapBuildErr(err)
}

func buildDeleteBookmarkQuery(filter models.BookmarkFilter) (string, []any, error) {
	if filter.ID == 0 || filter.UserID == 0 {
		return "", nil, ErrEmptyFilter
	}

	query, args, err := psql.Delete(bookmarksTable).
		Where(bookmarkPredicates(filter)).
		ToSql()
	return query, args, wrapBuildErr(err)
}
