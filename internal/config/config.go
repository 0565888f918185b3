// Package config loads process configuration from .env and the environment.
package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds everything the process needs at startup.
type Config struct {
	// DSN is the PostgreSQL connection string.
	DSN string
	// StateDir holds the last-username marker and the log file.
	StateDir string
	// LogPath is the zap output file; empty means stderr.
	LogPath string
}

// Load reads an optional .env file, then the environment, applying defaults.
func Load() Config {
	// Missing .env is fine; explicit env always wins because godotenv
	// does not override existing variables.
	_ = godotenv.Load()

	cfg := Config{
		DSN:      getenv("FITTRACK_DSN", "postgres://localhost:5432/fittrack?sslmode=disable"),
		StateDir: getenv("FITTRACK_STATE_DIR", defaultStateDir()),
	}
	cfg.LogPath = getenv("FITTRACK_LOG", filepath.Join(cfg.StateDir, "fittrack.log"))
	return cfg
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func defaultStateDir() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "fittrack")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "fittrack")
}
