// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/MKhiriev/vc-tracker/internal/config"
	"github.com/MKhiriev/vc-tracker/internal/handler"
	"github.com/MKhiriev/vc-tracker/internal/logger"
	"github.com/MKhiriev/vc-tracker/internal/server"
	"github.com/MKhiriev/vc-tracker/internal/service"
	"github.com/MKhiriev/vc-tracker/internal/store"
	"github.com/MKhiriev/vc-tracker/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("vc-tracker-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.App.Version == "" {
		cfg.App.Version = "dev"
		if buildInfo.HasVersion() {
			cfg.App.Version = buildInfo.BuildVersion()
		}
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("users_file", cfg.Storage.UsersFile).
		Str("version", cfg.App.Version).
		Msg("received configs")

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
