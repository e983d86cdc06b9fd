package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-upnode/internal/config"
	"github.com/MKhiriev/go-upnode/internal/handler"
	"github.com/MKhiriev/go-upnode/internal/logger"
	"github.com/MKhiriev/go-upnode/internal/progress"
	"github.com/MKhiriev/go-upnode/internal/server"
	"github.com/MKhiriev/go-upnode/internal/service"
	"github.com/MKhiriev/go-upnode/internal/store"
	"github.com/MKhiriev/go-upnode/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Println(models.NewBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("upnode-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services := service.NewServices(storages, *cfg, progress.NewConsole(os.Stderr), log)

	handlers, err := handler.NewHandlers(services, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
