// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains user-facing message templates shared by the server
// handlers, the console progress renderer and the command-line client.
//
// Keeping them in one place keeps the wording identical wherever a message
// is written to a response body or a terminal.
package app

const (
	// MsgNotFound is the plain-text body of a 404 for a missing path.
	// The argument is the resolved request pathname, never an absolute path.
	MsgNotFound = "404 Not Found\n%s does not exist."

	// MsgMethodNotAllowed is the plain-text body of a 405. The argument is
	// the rejected request method.
	MsgMethodNotAllowed = "405 Method Not Allowed\n%s is not supported."

	// MsgMimeTypeRejected reports a file dropped by the mime type whitelist.
	// The arguments are the uploaded file name and its classified type.
	MsgMimeTypeRejected = "Ignoring uploaded file '%s' of type '%s', the file's mime type is not white listed."

	// MsgUploadDone closes the progress output of a successful upload.
	MsgUploadDone = "Uploading: [DONE]"

	// MsgUploadFailed closes the progress output of a failed upload.
	MsgUploadFailed = "Uploading: [FAILED]"

	// MsgSaved is printed by the client after a download. The arguments are
	// the byte count and the local destination.
	MsgSaved = "saved %d bytes to %s"
)
