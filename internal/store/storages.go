package store

import (
	"github.com/MKhiriev/go-upnode/internal/config"
	"github.com/MKhiriev/go-upnode/internal/logger"
)

// Storages aggregates the storage backends used by the services.
type Storages struct {
	UploadStorage UploadStorage
}

// NewStorages builds every storage backend from cfg.
func NewStorages(cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	uploadStorage, err := NewUploadStorage(cfg.Files, logger)
	if err != nil {
		return nil, err
	}

	return &Storages{
		UploadStorage: uploadStorage,
	}, nil
}

// Close releases every storage backend.
func (s *Storages) Close() error {
	return s.UploadStorage.Close()
}
