package main

import (
	"context"
	"fmt"

	"github.com/harborline/moorage/internal/adapter"
	"github.com/harborline/moorage/internal/config"
	httphandler "github.com/harborline/moorage/internal/handler/http"
	"github.com/harborline/moorage/internal/logger"
	"github.com/harborline/moorage/internal/server"
	"github.com/harborline/moorage/internal/service"
	"github.com/harborline/moorage/internal/store"
	"github.com/harborline/moorage/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("moorage-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)

	notifier, err := adapter.NewSendGridNotifier(cfg.Mail, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating mail gateway")
	}

	photos, err := adapter.NewPhotoSearchAdapter(cfg.Photos, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating photo gateway")
	}

	objects, err := adapter.NewS3ObjectStore(ctx, cfg.ObjectStore, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating object store")
	}

	services := service.NewServices(*storages, service.Gateways{
		Notifier:    notifier,
		ObjectStore: objects,
		Photos:      photos,
		Fetcher:     photos,
	}, *cfg, log)

	handler := httphandler.NewHandler(services, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	backgroundWorkers := workers.NewWorkers(
		workers.NewCodeCleanupWorker(ctx, storages.AccountRepository, cfg.Workers.CleanupInterval, log),
	)
	backgroundWorkers.Run()

	srv.RunServer()
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
