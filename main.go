package main

import (
	"os"

	"lms/config"
	"lms/database"
	"lms/logging"
	"lms/routers"

	"github.com/rs/zerolog/log"
)

func main() {
	config.LoadConfig()
	logging.Setup(config.AppConfig.LogLevel, config.AppConfig.LogFormat)
	database.ConnectDb()

	app := routers.NewApp(os.Stdout)

	log.Info().Str("port", config.AppConfig.Port).Msg("server is running")
	if err := app.Listen(":" + config.AppConfig.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
