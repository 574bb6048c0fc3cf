package app

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Issuer string // Issuer name shown in authenticator apps (default: atlaspin)

	DatabaseFile         string        // Path to SQLite database file (default: ./atlaspin.db)
	PepperFile           string        // Path to file containing pepper for password hashing (default: ./pepper)
	SessionTTL           time.Duration // Session lifetime (default: 24h)
	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Expired-session sweep interval (default: 1h)
}

// LoadConfig reads configuration from the environment, after loading a .env
// file when one exists. Missing variables fall back to development defaults.
func LoadConfig() Config {
	// A missing .env file is not an error; real deployments set the
	// environment directly.
	_ = godotenv.Load()

	return Config{
		Issuer:               getEnvOrDefault("ISSUER", "atlaspin"),
		DatabaseFile:         getEnvOrDefault("DATABASE_FILE", "atlaspin.db"),
		PepperFile:           getEnvOrDefault("PEPPER_FILE", "pepper"),
		SessionTTL:           getEnvDurationOrDefault("SESSION_TTL", 24*time.Hour),
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
