package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-group-sync/internal/adapter"
	"github.com/MKhiriev/go-group-sync/internal/client"
	"github.com/MKhiriev/go-group-sync/internal/config"
	"github.com/MKhiriev/go-group-sync/internal/engine"
	"github.com/MKhiriev/go-group-sync/internal/logger"
	"github.com/MKhiriev/go-group-sync/internal/metrics"
	"github.com/MKhiriev/go-group-sync/internal/service"
	"github.com/MKhiriev/go-group-sync/internal/store"
	"github.com/MKhiriev/go-group-sync/internal/tui"
	"github.com/MKhiriev/go-group-sync/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logger.NewClientLogger("group-sync-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	localStorage, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer localStorage.Close()

	eng, err := engine.NewNativeEngine(models.MemberID(cfg.App.UserID))
	if err != nil {
		log.Fatal().Err(err).Msg("create group security engine")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	var metricsServer *http.Server
	if cfg.Metrics.Address != "" {
		metricsServer = metrics.NewServer(cfg.Metrics.Address, reg)
	}

	syncClient := service.NewSyncClient(eng, serverAdapter, localStorage.Credentials, cfg.Workers.PollInterval, metrics.New(reg), log)

	ui, err := tui.New(syncClient, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(syncClient, ui, metricsServer, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		localStorage.Close()
		os.Exit(1)
	}
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
