// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account entity used for authentication and as the owner
// of bookmarks.
type User struct {
	// ID is the unique identifier of the user. It is the caller identity
	// carried through every authenticated request.
	ID int64 `json:"id"`

	// Email is the unique login of the user.
	Email string `json:"email"`

	// Hash is the bcrypt hash of the user's password.
	// It is never serialized into a response payload.
	Hash string `json:"-"`

	// FirstName and LastName are optional profile fields.
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// WithoutHash returns a copy of the user with the credential hash blanked.
func (u User) WithoutHash() User {
	u.Hash = ""
	return u
}

// UserFilter selects users by equality on the non-zero fields.
type UserFilter struct {
	ID    int64
	Email string
}

// UserUpdate holds the mutable profile fields. Only non-nil fields are written.
type UserUpdate struct {
	Email     *string
	FirstName *string
	LastName  *string
}

// IsEmpty reports whether no field is set.
func (u UserUpdate) IsEmpty() bool {
	return u.Email == nil && u.FirstName == nil && u.LastName == nil
}
