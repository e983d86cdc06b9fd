package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-upnode/internal/adapter"
	"github.com/MKhiriev/go-upnode/internal/client"
	"github.com/MKhiriev/go-upnode/internal/config"
	"github.com/MKhiriev/go-upnode/internal/logger"
	"github.com/MKhiriev/go-upnode/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewConsoleLogger("upnode-client", os.Stderr)
	log.Debug().Str("build", models.NewBuildInfo(buildVersion, buildDate, buildCommit).String()).Msg("starting client")

	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, client.Usage())
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	app, err := client.NewApp(serverAdapter, os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx, cfg.Args); err != nil {
		stop()
		log.Fatal().Err(err).Msg("client run error")
	}
}
