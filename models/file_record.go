package models

import "time"

// FileRecord describes one accepted uploaded file as reported back to the
// client. Records are immutable once appended to an upload result.
type FileRecord struct {
	// Name is the original file name sent by the client.
	Name string `json:"name"`

	// Size is the number of bytes written to disk.
	Size int64 `json:"size"`

	// Pathname is the slash-separated location of the file relative to the
	// upload root.
	Pathname string `json:"pathname"`

	// LastModifiedDate is the moment the file finished writing.
	LastModifiedDate time.Time `json:"lastModifiedDate"`

	// MimeType is the type classified from the file name.
	MimeType string `json:"mimeType"`
}
