// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides accept/reject rules applied to incoming data
// before it is persisted.
//
// The upload pipeline uses [MimeTypeValidator] to decide whether a file
// is kept, based on the mime type classified from its name and an optional
// allow-list loaded from configuration.
package validators

import "context"

// MimeTypeValidator decides whether files of a given mime type are accepted.
type MimeTypeValidator interface {
	// Validate returns an error wrapping [ErrMimeTypeNotAllowed] when files
	// of mimeType may not be stored.
	Validate(ctx context.Context, mimeType string) error

	// IsAllowed reports whether mimeType may be stored.
	IsAllowed(mimeType string) bool

	// IsRestricted reports whether any allow-list is in effect.
	IsRestricted() bool
}
