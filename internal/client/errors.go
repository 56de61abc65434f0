// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	ErrMissingID = errors.New("bookmark id is required")
	ErrInvalidID = errors.New("bookmark id must be a positive integer")
)
