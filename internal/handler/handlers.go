package handler

import (
	"github.com/MKhiriev/go-upnode/internal/handler/http"
	"github.com/MKhiriev/go-upnode/internal/logger"
	"github.com/MKhiriev/go-upnode/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if services == nil || services.FileService == nil || services.UploadService == nil {
		return nil, errServicesAreMissing
	}

	return &Handlers{
		HTTP: http.NewHandler(services, logger),
	}, nil
}
