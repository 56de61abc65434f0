// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the bookmark server.
//
// It wires routes, request handlers and middleware. Authentication, request
// tracing, access logging, CORS, compression and rate limiting of the
// /auth endpoints happen here before a request reaches the service layer.
// Handlers read the caller from the request context and pass it explicitly
// into every service call.
package http
