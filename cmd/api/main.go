package main

import (
	"os"

	"github.com/acme/hr-directory/internal/pkg/logger"
	"github.com/acme/hr-directory/internal/server"
)

// @title Acme HR Directory API
// @version 1.0
// @description Reference HR backend exposing CRUD over employees and departments

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:3000
// @BasePath /api
// @schemes http

func main() {
	// NewServer orchestrates config/logger setup, database connection,
	// schema reset, seeding and routing. Initialization failure is fatal:
	// the process never serves from a partially bootstrapped store.
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
