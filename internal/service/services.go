package service

import (
	"github.com/MKhiriev/go-upnode/internal/config"
	"github.com/MKhiriev/go-upnode/internal/logger"
	"github.com/MKhiriev/go-upnode/internal/store"
)

type Services struct {
	FileService   FileService
	UploadService UploadService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, observer UploadObserver, logger *logger.Logger) *Services {
	uploadService := NewUploadService(storages.UploadStorage, cfg.Upload, observer, logger)

	return &Services{
		FileService:   NewFileService(storages.UploadStorage, logger),
		UploadService: NewUploadLoggingService(logger).Wrap(uploadService),
	}
}
