// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrInvalidDataProvided wraps a *validators.ValidationError.
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongCredentials    = errors.New("wrong credentials")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrAccessDenied is returned when an owner-scoped write matched no row.
	ErrAccessDenied = errors.New("access to resources denied")

	// ErrUserNotFound is returned when the authenticated caller no longer exists.
	ErrUserNotFound = errors.New("user not found")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
