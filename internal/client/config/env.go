package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment,
// after merging in an optional .env file from the working directory.
// A missing .env is not an error.
//
// Recognized variables:
//
//	BANKTERM_API_URL  — API base URL
//	BANKTERM_TIMEOUT  — request timeout, Go duration syntax (e.g. "10s")
//	BANKTERM_DB_PATH  — sqlite database path
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("BANKTERM_API_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("BANKTERM_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv("BANKTERM_DB_PATH"); v != "" {
		cfg.DatabasePath = v
	}
}
