package config

import (
	"os"
	"time"
)

// Config holds everything the server reads from the environment at startup.
type Config struct {
	Port          string
	DatabasePath  string
	SessionSecret string
	SessionTTL    time.Duration
	Production    bool
}

// Load reads the environment, falling back to development defaults.
func Load() Config {
	return Config{
		Port:          getenv("PORT", "3000"),
		DatabasePath:  getenv("ACADEMIA_DB_PATH", "./academia.db"),
		SessionSecret: getenv("SESSION_SECRET", "academia-secret-2024"),
		SessionTTL:    getenvDuration("SESSION_TTL", 24*time.Hour),
		Production:    os.Getenv("ACADEMIA_ENV") == "production",
	}
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
	}
	return fallback
}
