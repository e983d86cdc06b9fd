package validators

import "errors"

// ErrMimeTypeNotAllowed is returned by the whitelist validator when the
// classified type is absent from a non-empty allow-list.
var ErrMimeTypeNotAllowed = errors.New("mime type is not white listed")
