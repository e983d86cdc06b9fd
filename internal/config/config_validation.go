// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// normalize resolves the uploads directory to an absolute path so that the
// upload root cannot change if the working directory does.
func (cfg *StructuredConfig) normalize() error {
	if cfg.Storage.Files.UploadsDir == "" {
		return nil
	}

	abs, err := filepath.Abs(cfg.Storage.Files.UploadsDir)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidStorageConfigs, err)
	}
	cfg.Storage.Files.UploadsDir = abs

	return nil
}

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.Files.UploadsDir == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.Port < 1 || cfg.Server.Port > maxPort {
		return fmt.Errorf("%w: port %d", ErrInvalidServerConfigs, cfg.Server.Port)
	}

	if cfg.Upload.MaxFieldsSize < 0 {
		return fmt.Errorf("%w: negative max fields size", ErrInvalidUploadConfigs)
	}

	for _, mimeType := range cfg.Upload.MimeTypeWhitelist {
		if !strings.Contains(mimeType, "/") {
			return fmt.Errorf("%w: %q is not a mime type", ErrInvalidUploadConfigs, mimeType)
		}
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.ServerURL == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
