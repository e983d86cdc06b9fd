package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-upnode/internal/logger"
	"github.com/MKhiriev/go-upnode/models"
)

// UploadLoggingService writes one summary entry per ingested upload.
type UploadLoggingService struct {
	inner UploadService

	logger *logger.Logger
}

func NewUploadLoggingService(logger *logger.Logger) UploadServiceWrapper {
	return &UploadLoggingService{
		logger: logger,
	}
}

func (l *UploadLoggingService) Ingest(ctx context.Context, req models.UploadRequest) (models.UploadResult, error) {
	log := logger.FromContextOrDefault(ctx, l.logger)
	start := time.Now()

	result, err := l.inner.Ingest(ctx, req)

	event := log.Info()
	if err != nil {
		event = log.Warn().Err(err)
	}
	event.
		Str("path", req.Path).
		Int64("content_length", req.ContentLength).
		Int("files", result.NumberOfFiles).
		Int("fields", len(result.Fields)).
		Dur("duration", time.Since(start)).
		Msg("upload ingested")

	return result, err
}

func (l *UploadLoggingService) Wrap(wrapped UploadService) UploadService {
	l.inner = wrapped
	return l
}
