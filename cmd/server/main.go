package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"

	"github.com/heavymart/backend/internal/adapter"
	"github.com/heavymart/backend/internal/config"
	handler "github.com/heavymart/backend/internal/handler/http"
	"github.com/heavymart/backend/internal/logger"
	"github.com/heavymart/backend/internal/server"
	"github.com/heavymart/backend/internal/service"
	"github.com/heavymart/backend/internal/store"
	"github.com/heavymart/backend/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("heavymart-server")

	// a local .env is optional; real environment variables always win
	_ = godotenv.Load()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Error().Err(err).Msg("error closing storages")
		}
	}()

	mailer := adapter.NewLogMailer(log)
	if cfg.Mail.ProviderURL != "" {
		mailer, err = adapter.NewHTTPMailer(cfg.Mail, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error creating mailer")
		}
	}

	services, err := service.NewServices(storages, mailer, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	workers.NewWorkers(cfg.Workers, storages.Sessions, log).Run(ctx)

	handlers := handler.NewHandler(services, storages, cfg.Storage.Files.UploadsDir, log)

	srv, err := server.NewServer(handlers.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

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
