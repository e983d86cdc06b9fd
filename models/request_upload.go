package models

import "io"

// UploadRequest is the transport-neutral description of a POST body that
// should be decoded as multipart/form-data and written under Path.
type UploadRequest struct {
	// Path is the decoded URL pathname the upload was sent to.
	Path string

	// ContentType is the raw Content-Type header, boundary included.
	ContentType string

	// ContentLength is the declared body length, or -1 when unknown.
	ContentLength int64

	// Body is the request body. It is read exactly once.
	Body io.Reader
}
