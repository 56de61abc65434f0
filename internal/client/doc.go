// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client runtime.
//
// It builds a cobra command tree whose leaves call [adapter.BookmarkAPI]
// and print the results, as indented JSON or as a table for lists.
package client
