package models

// ResolvedTarget is a request path mapped onto the upload root.
type ResolvedTarget struct {
	// Pathname is the normalized, slash-separated path starting with "/".
	Pathname string

	// Directory is the directory part of Pathname. It equals Pathname when
	// the request denotes a directory.
	Directory string

	// Filename is the last path element, empty for directory requests.
	Filename string
}

// IsDirectory reports whether the target names a directory rather than a file.
func (t ResolvedTarget) IsDirectory() bool {
	return t.Filename == ""
}
