package config

import "os"

// Environment variable names. PORTALE_API_URL mirrors the public build-time
// variable the mobile app resolves its backend address from.
const (
	EnvBaseURL      = "PORTALE_API_URL"
	EnvDatabasePath = "PORTALE_DB"
)

// parseEnv overlays cfg with values from the process environment.
// Unset variables leave the current values untouched.
func parseEnv(cfg *Config) {
	if v, ok := os.LookupEnv(EnvBaseURL); ok && v != "" {
		cfg.BaseURL = v
	}
	if v, ok := os.LookupEnv(EnvDatabasePath); ok && v != "" {
		cfg.DatabasePath = v
	}
}
