// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Bookmark is a link saved by a user. Every bookmark has exactly one owner,
// set at creation and never changed afterwards.
type Bookmark struct {
	ID int64 `json:"id"`

	// UserID is the owner of the bookmark.
	UserID int64 `json:"userID"`

	Title       string  `json:"title"`
	Description *string `json:"description"`
	Link        string  `json:"link"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookmarkFilter selects bookmarks by equality on the non-zero fields.
// A zero filter matches every row, so callers scoping by owner must set UserID.
type BookmarkFilter struct {
	ID     int64
	UserID int64
}

// BookmarkUpdate holds the editable bookmark fields. Only non-nil fields are
// written; the owner is deliberately absent.
type BookmarkUpdate struct {
	Title       *string
	Description *string
	Link        *string
}
