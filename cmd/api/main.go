package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"github.com/todaypickup/gateway/internal/api"
	"github.com/todaypickup/gateway/pkg/utils"
)

// Start the gateway server
func main() {
	// Find env file
	envFile := ".env"
	if os.Getenv("ENV_FILE") != "" {
		envFile = os.Getenv("ENV_FILE")
	}

	// Load global config
	cfg := utils.NewConfigFromEnv(envFile)

	// Start
	if err := api.Start(cfg); err != nil {
		log.Fatal().Err(err).Msg("gateway exited")
	}
}
