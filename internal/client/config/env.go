package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const envPrefix = "SENTIMETER_"

// parseEnv overlays cfg with SENTIMETER_* variables. A missing .env file is
// fine; a malformed value panics.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v, ok := os.LookupEnv(envPrefix + "ENDPOINT"); ok {
		cfg.Endpoint = v
	}
	if v, ok := os.LookupEnv(envPrefix + "CREDENTIAL_PATH"); ok {
		cfg.CredentialPath = v
	}
	if v, ok := os.LookupEnv(envPrefix + "REQUEST_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(fmt.Errorf("%sREQUEST_TIMEOUT has invalid duration %q: %w", envPrefix, v, err))
		}
		cfg.RequestTimeout = d
	}
	if v, ok := os.LookupEnv(envPrefix + "HISTORY_PATH"); ok {
		cfg.HistoryPath = v
	}
	if v, ok := os.LookupEnv(envPrefix + "HISTORY_LIMIT"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			panic(fmt.Errorf("%sHISTORY_LIMIT has invalid number %q: %w", envPrefix, v, err))
		}
		cfg.HistoryLimit = n
	}
	if v, ok := os.LookupEnv(envPrefix + "LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
}
