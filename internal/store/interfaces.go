// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements persistence of served and uploaded files on the
// local file system.
//
// All paths handled by the package are confined to a single upload root that
// is fixed when the storage is created, symbolic links included. Request paths are slash-separated and
// rooted at "/", which denotes the upload root itself.
package store

import (
	"context"
	"io"
	"io/fs"
)

// UploadStorage is the file-system view of the upload root used by the GET
// and POST pipelines.
type UploadStorage interface {
	// Root returns the absolute upload root.
	Root() string

	// Resolve maps a slash-separated request pathname onto an absolute path
	// inside the root. It fails with ErrPathOutsideRoot otherwise.
	Resolve(pathname string) (string, error)

	// Relative returns the slash-separated location of absPath relative to
	// the root.
	Relative(absPath string) (string, error)

	// Stat returns file information, or ErrFileNotFound.
	Stat(ctx context.Context, absPath string) (fs.FileInfo, error)

	// ReadFile loads the whole file into memory.
	ReadFile(ctx context.Context, absPath string) ([]byte, error)

	// ReadDir returns the sorted entry names of a directory.
	ReadDir(ctx context.Context, absPath string) ([]string, error)

	// EnsureDirectory creates absPath and every missing ancestor. It is a
	// no-op when the directory already exists and is safe to call
	// concurrently for the same path.
	EnsureDirectory(ctx context.Context, absPath string) error

	// Create opens absPath for writing, truncating an existing file.
	Create(absPath string) (io.WriteCloser, error)

	// Close releases the handle on the upload root.
	Close() error
}
