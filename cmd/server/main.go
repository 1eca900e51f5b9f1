package main

import (
	"fmt"

	"github.com/savrasovpm/go-pantry-keeper/internal/config"
	handlerhttp "github.com/savrasovpm/go-pantry-keeper/internal/handler/http"
	"github.com/savrasovpm/go-pantry-keeper/internal/logger"
	"github.com/savrasovpm/go-pantry-keeper/internal/server"
	"github.com/savrasovpm/go-pantry-keeper/internal/service"
	"github.com/savrasovpm/go-pantry-keeper/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("pantry-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services := service.NewServices(*storages, *cfg, log)

	version := cfg.App.Version
	if version == "" {
		version = buildVersion
	}
	handler := handlerhttp.NewHandler(services, version, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
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
