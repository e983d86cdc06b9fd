package models

// ServedFile is the outcome of a successful GET lookup: either a directory
// listing or the full contents of a regular file.
type ServedFile struct {
	// Pathname is the normalized request path that was looked up.
	Pathname string

	// IsDir is true when Pathname names a directory; Entries is then set.
	IsDir bool

	// Entries are the sorted names inside the directory.
	Entries []string

	// Content is the whole file body.
	Content []byte

	// MimeType is the classified type of the file.
	MimeType string
}
