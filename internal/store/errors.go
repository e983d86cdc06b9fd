package store

import "errors"

// Sentinel errors returned by [UploadStorage] methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrPathOutsideRoot is returned when a path resolves to a location that
	// is not contained in the upload root.
	ErrPathOutsideRoot = errors.New("path is outside of the upload root")

	// ErrFileNotFound is returned when the requested path does not exist.
	ErrFileNotFound = errors.New("file does not exist")

	// ErrReadingFile is returned when an existing file cannot be read.
	ErrReadingFile = errors.New("error reading file")

	// ErrReadingDirectory is returned when a directory cannot be listed.
	ErrReadingDirectory = errors.New("error reading directory")

	// ErrCreatingDirectory is returned when a directory chain cannot be
	// materialized, for example because of permissions or because a regular
	// file occupies one of the segments.
	ErrCreatingDirectory = errors.New("error creating directory")

	// ErrCreatingFile is returned when a destination file cannot be opened
	// for writing.
	ErrCreatingFile = errors.New("error creating file")
)
