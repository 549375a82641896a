package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all process-wide settings. It is loaded once in main and
// injected where needed; nothing re-reads the environment per request.
type Config struct {
	Port        string
	DatabaseURL string

	JWTSecret string
	TokenTTL  time.Duration
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvi(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func Load() *Config {
	return &Config{
		Port: getenv("PORT", "8080"),

		// Fallback for local dev if not set
		DatabaseURL: getenv("DATABASE_URL",
			"host=localhost user=postgres password=postgres dbname=bloghub port=5432 sslmode=disable"),

		JWTSecret: getenv("JWT_SECRET", "secret_key_change_me"),
		TokenTTL:  time.Duration(getenvi("TOKEN_TTL_HOURS", 24*7)) * time.Hour,
	}
}
