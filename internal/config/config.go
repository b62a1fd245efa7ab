// Package config loads server configuration from the environment, with a
// .env file as an optional convenience for local development.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the server's runtime configuration.
type Config struct {
	Addr      string // listen address
	DBPath    string // SQLite database file
	DetectURL string // detection service base URL, empty disables /api/detect
	LogFile   string // optional log file, empty means stdout/stderr only
}

// Load reads configuration from the environment. A .env file in the
// working directory is loaded first if present; missing files are fine
// since variables can be set by other means.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Addr:      getenv("STOCKPOT_ADDR", ":8080"),
		DBPath:    getenv("STOCKPOT_DB", "stockpot.sqlite3"),
		DetectURL: os.Getenv("STOCKPOT_DETECT_URL"),
		LogFile:   os.Getenv("STOCKPOT_LOG"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
