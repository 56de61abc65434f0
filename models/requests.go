// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AuthRequest is the body of POST /auth/signup and POST /auth/signin.
type AuthRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserRequest is the body of PATCH /users. It has no identifier or
// credential fields, so a caller can only touch its own profile data.
type UpdateUserRequest struct {
	Email     *string `json:"email,omitempty" validate:"omitnil,email"`
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
}

// ToUpdate converts the request into a storage-level update.
func (r UpdateUserRequest) ToUpdate() UserUpdate {
	return UserUpdate{
		Email:     r.Email,
		FirstName: r.FirstName,
		LastName:  r.LastName,
	}
}

// CreateBookmarkRequest is the body of POST /bookmarks.
type CreateBookmarkRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description *string `json:"description,omitempty"`
	Link        string  `json:"link" validate:"required"`
}

// EditBookmarkRequest is the body of PATCH /bookmarks/{id}.
type EditBookmarkRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitnil,min=1"`
	Description *string `json:"description,omitempty"`
	Link        *string `json:"link,omitempty" validate:"omitnil,min=1"`
}

// ToUpdate converts the request into a storage-level update.
func (r EditBookmarkRequest) ToUpdate() BookmarkUpdate {
	return BookmarkUpdate{
		Title:       r.Title,
		Description: r.Description,
		Link:        r.Link,
	}
}

// TokenResponse is returned by signup and signin.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
}
