package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-xray-viewer/internal/client"
	"github.com/MKhiriev/go-xray-viewer/internal/config"
	myHTTP "github.com/MKhiriev/go-xray-viewer/internal/handler/http"
	"github.com/MKhiriev/go-xray-viewer/internal/logger"
	"github.com/MKhiriev/go-xray-viewer/internal/printer"
	"github.com/MKhiriev/go-xray-viewer/internal/server"
	"github.com/MKhiriev/go-xray-viewer/internal/service"
	"github.com/MKhiriev/go-xray-viewer/internal/session"
	"github.com/MKhiriev/go-xray-viewer/internal/store"
	"github.com/MKhiriev/go-xray-viewer/internal/tui"
	"github.com/MKhiriev/go-xray-viewer/internal/utils"
	"github.com/MKhiriev/go-xray-viewer/models"
)

const role = "xray-viewer"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewClientLogger(role, "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger(role, cfg.App.LogFile)
	log.Debug().Any("config", cfg).Msg("received configs")

	if err = run(context.Background(), cfg, log); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func run(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) error {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("create local storage: %w", err)
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Err(closeErr).Msg("error closing local storage")
		}
	}()

	printServer, err := server.NewPrintServer(myHTTP.NewHandler(storages.PrintDocuments, log), cfg.Print, log)
	if err != nil {
		return fmt.Errorf("create print server: %w", err)
	}
	go printServer.RunServer()
	defer printServer.Shutdown()

	surface := printer.NewBrowserSurface(
		storages.PrintDocuments,
		printServer.URL(),
		utils.NewUUIDGenerator(),
		printer.CommandOpener(cfg.Print.Opener),
		log,
	)

	services := service.NewClientServices(storages, surface, cfg, log)
	monitor := session.NewMonitor(cfg.App.IdleTimeout, log)

	ui, err := tui.New(services, monitor, tui.Options{
		RowsPerPage: cfg.View.RowsPerPage,
		ImportDir:   cfg.Import.Dir,
		BuildInfo:   models.NewAppBuildInfo(buildVersion, buildDate, buildCommit),
	}, log)
	if err != nil {
		return fmt.Errorf("create ui: %w", err)
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		return fmt.Errorf("init client app: %w", err)
	}

	return app.Run(ctx)
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
