package config

import (
	"fmt"
	"os"
)

// Config holds the application configuration.
type Config struct {
	DatabasePath string
	LogLevel     string
}

// Load loads configuration from environment variables or sets defaults.
func Load() (*Config, error) {
	cfg := &Config{
		DatabasePath: getEnv("DATABASE_PATH", "./planforge.db"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
	}
	if cfg.DatabasePath == "" {
		return nil, fmt.Errorf("DATABASE_PATH must not be empty")
	}
	return cfg, nil
}

// Helper to get an environment variable with a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
