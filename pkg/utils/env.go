package utils

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// LoadEnv loads environment variables from the given .env files and
// returns the resulting process environment as a map, with later files
// taking precedence
func LoadEnv(files ...string) map[string]string {
	config := make(map[string]string)

	// Load each file in order
	for _, file := range files {
		if _, err := os.Stat(file); err == nil {
			if err := godotenv.Load(file); err != nil {
				log.Warn().Str("file", file).Err(err).Msg("could not load env file")
			}
		}
	}

	// Read all environment variables into map
	for _, env := range os.Environ() {
		key, value := splitEnv(env)
		if key != "" {
			config[key] = value
		}
	}

	return config
}

// splitEnv splits an environment variable string into key and value
func splitEnv(env string) (string, string) {
	for i := 0; i < len(env); i++ {
		if env[i] == '=' {
			return env[:i], env[i+1:]
		}
	}
	return "", ""
}
