package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/palantir/go-baseapp/baseapp"
)

func main() {
	configPath := flag.String("config", "server.yml", "path to the server configuration file")
	flag.Parse()

	config, err := ReadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		os.Exit(1)
	}

	logger := baseapp.NewLogger(config.Logging)

	server, err := baseapp.NewServer(config.Server, baseapp.DefaultParams(logger, "mirna.devserver.")...)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create server")
	}

	RegisterRoutes(server.Mux(), config)

	logger.Info().
		Str("address", config.Server.Address).
		Int("port", config.Server.Port).
		Int("mirnas", len(config.Fixtures.MiRNAs)).
		Int("predictions", len(config.Fixtures.Predictions)).
		Int("pathways", len(config.Fixtures.Pathways)).
		Bool("auth", len(config.Auth.Tokens) > 0).
		Msg("Starting miRNA dev server")

	if err := server.Start(); err != nil {
		logger.Fatal().Err(err).Msg("Server stopped")
	}
}
