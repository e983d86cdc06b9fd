// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-upnode/models"
)

// FileService answers GET requests against the upload root.
type FileService interface {
	// Lookup resolves requestPath and returns either a directory listing or
	// the whole file. A missing path yields an error wrapping
	// store.ErrFileNotFound together with a ServedFile whose Pathname is the
	// resolved request path.
	Lookup(ctx context.Context, requestPath string) (models.ServedFile, error)
}

// UploadService ingests multipart upload bodies.
type UploadService interface {
	// Ingest decodes req in a single pass and writes accepted files below the
	// directory named by req.Path. The returned result is always populated;
	// on failure it has Errors set and the error is returned as well.
	Ingest(ctx context.Context, req models.UploadRequest) (models.UploadResult, error)
}

// UploadObserver receives progress notifications of running uploads.
// Implementations must be safe for concurrent use because several requests
// may be in flight at once.
type UploadObserver interface {
	// FileBegin is called before an accepted file starts writing.
	FileBegin(pathname string)

	// Progress reports the share of the request body consumed so far.
	// percent is -1 when the body length is unknown.
	Progress(percent float64, received, expected int64)

	// FileRejected is called for a file dropped by the mime type whitelist.
	FileRejected(fileName, mimeType string)

	// Done is called once per upload; err is nil on success.
	Done(err error)
}

// UploadServiceWrapper defines middleware composition for UploadService.
// Implementations wrap an existing UploadService to add behavior such as
// logging.
type UploadServiceWrapper interface {
	Wrap(UploadService) UploadService // returns a decorated UploadService applying additional behavior
}
