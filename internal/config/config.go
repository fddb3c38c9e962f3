// Package config loads service configuration from the environment.
package config

import (
	"os"
	"time"
)

type Config struct {
	Port string

	// Auth
	APIKey string

	// Storage
	DBPath string

	// Taxonomy
	TaxonomyFile     string
	RedisAddr        string // empty disables the taxonomy cache
	TaxonomyCacheTTL time.Duration

	// Logging
	LogLevel string
}

func Load() Config {
	return Config{
		Port:             envOr("PORT", "8085"),
		APIKey:           os.Getenv("ONBOARDING_API_KEY"),
		DBPath:           os.Getenv("ONBOARDING_DB"),
		TaxonomyFile:     os.Getenv("TAXONOMY_FILE"),
		RedisAddr:        os.Getenv("REDIS_ADDR"),
		TaxonomyCacheTTL: envDuration("TAXONOMY_CACHE_TTL", 10*time.Minute),
		LogLevel:         envOr("LOG_LEVEL", "info"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
