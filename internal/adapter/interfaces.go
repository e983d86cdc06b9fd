// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the file exchange protocol.
//
// The primary abstraction is [ServerAdapter], which hides the HTTP details of
// uploading, downloading and listing files from the command-line client.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrNotFound] for
// 404, [ErrMethodNotAllowed] for 405).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-upnode/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter talks to a running file exchange server.
type ServerAdapter interface {
	// Push uploads the local files at paths, plus optional form fields, to
	// the server directory (or file name) remotePath in a single multipart
	// request. Returns the server's summary; a summary reporting an error is
	// returned together with an error wrapping [ErrUploadFailed].
	Push(ctx context.Context, remotePath string, fields map[string]string, paths ...string) (models.UploadResult, error)

	// Pull downloads the file at remotePath. Directories and missing paths
	// yield an error wrapping [ErrNotFound].
	Pull(ctx context.Context, remotePath string) (models.ServedFile, error)

	// List returns the entry names of the remote directory remoteDir.
	// Returns [ErrNotADirectory] when remoteDir names a regular file.
	List(ctx context.Context, remoteDir string) ([]string, error)
}
