// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised by the transport itself. Callers can match against
// them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// request has no "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrNoUserInContext means a protected handler ran without the auth
	// middleware having attached a caller.
	ErrNoUserInContext = errors.New("no authenticated user in request context")

	ErrInvalidJSON       = errors.New("invalid JSON was passed")
	ErrInvalidBookmarkID = errors.New("bookmark id must be an integer")

	ErrTooManyRequests = errors.New("too many requests")
)
