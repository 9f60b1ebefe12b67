package main

import (
	"os"

	"github.com/yigit/schedulocity/internal/pkg/logger"
	"github.com/yigit/schedulocity/internal/server"
)

// @title Schedulocity API
// @version 1.0
// @description Role-based university timetable dashboard API

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT access token returned by /auth/login

func main() {
	srv, err := server.NewServer()
	if err != nil {
		// Error details are logged within NewServer's setup functions
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
