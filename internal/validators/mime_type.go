package validators

import (
	"context"
	"fmt"
	"strings"
)

type mimeTypeWhitelist struct {
	allowed map[string]struct{}
}

// NewMimeTypeWhitelist builds a [MimeTypeValidator] from a configured list.
// A nil or empty list (or one holding only blank entries) allows every type.
func NewMimeTypeWhitelist(whitelist []string) MimeTypeValidator {
	allowed := make(map[string]struct{}, len(whitelist))
	for _, mimeType := range whitelist {
		if normalized := normalizeMimeType(mimeType); normalized != "" {
			allowed[normalized] = struct{}{}
		}
	}

	return &mimeTypeWhitelist{allowed: allowed}
}

func (m *mimeTypeWhitelist) IsAllowed(mimeType string) bool {
	if !m.IsRestricted() {
		return true
	}

	_, ok := m.allowed[normalizeMimeType(mimeType)]
	return ok
}

func (m *mimeTypeWhitelist) IsRestricted() bool {
	return len(m.allowed) > 0
}

func (m *mimeTypeWhitelist) Validate(_ context.Context, mimeType string) error {
	if !m.IsAllowed(mimeType) {
		return fmt.Errorf("%w: %s", ErrMimeTypeNotAllowed, mimeType)
	}

	return nil
}

func normalizeMimeType(mimeType string) string {
	return strings.ToLower(strings.TrimSpace(mimeType))
}
