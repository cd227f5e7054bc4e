package main

import (
	"context"
	"os"

	"github.com/notehub/notehub/internal/pkg/logger"
	"github.com/notehub/notehub/internal/server"
)

// @title NoteHub API
// @version 1.0
// @description API for sharing lecture notes tagged by subject and professor

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Access token issued by the identity provider

func main() {
	srv, err := server.NewServer(context.Background())
	if err != nil {
		// Error details are logged within the bootstrap steps
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Blocks until shutdown signal
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
