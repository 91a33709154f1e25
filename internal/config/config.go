// Package config collects the environment-driven settings the server is
// wired with at startup. Nothing reads the environment after Load; the
// Config is passed explicitly to the components that need it.
package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port         string
	DatabasePath string

	// BaseURL is the public origin used when building share links for
	// newly created events, e.g. "https://rsvp.example.com".
	BaseURL string

	// TZName and TZOffsetHours define the single fixed offset all
	// wall-clock fields are interpreted at. Defaults to Brazilian
	// standard time; DST is not modelled.
	TZName        string
	TZOffsetHours int
}

// Load reads the configuration from the environment, falling back to
// development defaults.
func Load() *Config {
	cfg := &Config{
		Port:          getenv("PORT", "8080"),
		DatabasePath:  getenv("DATABASE_PATH", "events.db"),
		BaseURL:       getenv("BASE_URL", "http://localhost:8080"),
		TZName:        getenv("TZ_NAME", "America/Sao_Paulo"),
		TZOffsetHours: -3,
	}

	if v := os.Getenv("TZ_OFFSET_HOURS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.TZOffsetHours = n
		}
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
