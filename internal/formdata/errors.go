package formdata

import "errors"

var (
	// ErrNotMultipart is returned by NewDecoder when the content type is not
	// a multipart media type.
	ErrNotMultipart = errors.New("request content type is not multipart")

	// ErrMissingBoundary is returned by NewDecoder when the multipart content
	// type carries no boundary parameter.
	ErrMissingBoundary = errors.New("multipart boundary not found")

	// ErrMalformedBody reports a body that does not follow the multipart
	// framing announced by its content type.
	ErrMalformedBody = errors.New("malformed multipart body")

	// ErrFieldTooLarge is returned when the accumulated size of non-file
	// fields exceeds the configured limit.
	ErrFieldTooLarge = errors.New("form fields exceed the maximum allowed size")

	// ErrInvalidFileName is returned for file parts whose name does not
	// denote a regular file, such as ".", ".." or "/".
	ErrInvalidFileName = errors.New("invalid uploaded file name")

	// ErrNoDestination is returned when the handler neither discards a file
	// part nor assigns it a destination.
	ErrNoDestination = errors.New("file part has no destination")
)
