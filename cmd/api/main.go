package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/selimd/admitflow/internal/pkg/logger"
	"github.com/selimd/admitflow/internal/server"
)

// @title AdmitFlow API
// @version 1.0
// @description University admissions workflow API: student registration, admission applications, document verification, shortlisting, decisions, loans, and counsellor communications.

// @contact.name API Support
// @contact.email support@admitflow.dev

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	// A missing .env file is fine; configuration falls back to config.yaml
	// and process environment.
	_ = godotenv.Load()

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
}
