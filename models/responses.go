// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ErrorResponse is the JSON body of every non-2xx API response.
type ErrorResponse struct {
	// Error is a short human-readable description.
	Error string `json:"error"`

	// Fields maps offending JSON fields to a message. Present only for
	// validation failures.
	Fields map[string]string `json:"fields,omitempty"`
}
