// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/MKhiriev/vc-tracker/internal/adapter"
	"github.com/MKhiriev/vc-tracker/internal/cli"
	"github.com/MKhiriev/vc-tracker/internal/config"
	"github.com/MKhiriev/vc-tracker/internal/logger"
	"github.com/MKhiriev/vc-tracker/models"
	"github.com/google/subcommands"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

var (
	configPath = flag.String("c", "", "Path to a JSON config file. Overrides CONFIG.")
	version    = flag.Bool("version", false, "Print build information and exit.")
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")

	flag.Parse()

	if *version {
		fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
		return
	}

	log := logger.NewClientLogger("vc-tracker-client")
	cfg, err := config.GetClientConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(*cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		log.Fatal().Err(err).Msg("create server adapter")
	}

	cli.Register(commander, cli.NewEnv(*cfg, serverAdapter, log))

	os.Exit(int(commander.Execute(context.Background())))
}
