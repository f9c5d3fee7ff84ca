package main

import (
	"salon/config"
	"salon/di"
	_ "salon/docs"
	"salon/helper"
	"salon/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Salon Booking API
// @version 1.0
// @description Catalog, cart and booking wizard of the salon website.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Visitor token from POST /v1/visitors, sent as "Bearer <token>".
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if cfg.DB.Driver == config.DriverPostgres && cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	app := di.InitializeService()
	app.Serve()
}
