package handler

import (
	"testing"

	"github.com/MKhiriev/go-upnode/internal/logger"
	"github.com/MKhiriev/go-upnode/internal/mock"
	"github.com/MKhiriev/go-upnode/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	services := &service.Services{
		FileService:   mock.NewMockFileService(ctrl),
		UploadService: mock.NewMockUploadService(ctrl),
	}

	h, err := NewHandlers(services, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
	assert.NotNil(t, h.HTTP.Init())
}

func TestNewHandlers_MissingServices(t *testing.T) {
	ctrl := gomock.NewController(t)

	tests := []struct {
		name     string
		services *service.Services
	}{
		{name: "nil services"},
		{name: "no upload service", services: &service.Services{FileService: mock.NewMockFileService(ctrl)}},
		{name: "no file service", services: &service.Services{UploadService: mock.NewMockUploadService(ctrl)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := NewHandlers(tt.services, logger.Nop())

			require.ErrorIs(t, err, errServicesAreMissing)
			assert.Nil(t, h)
		})
	}
}
