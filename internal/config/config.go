package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
)

// Config holds all configuration for the listing mapper service
type Config struct {
	// Server
	Port        string
	Environment string

	// Database
	DatabaseURL string

	// Redis
	RedisURL string

	// Market spec source (one of path or URL)
	MarketSpecPath string
	MarketSpecURL  string

	// Rate Limiting
	DefaultRateLimit int // requests per second
}

// Load loads configuration from environment variables
func Load() *Config {
	// Build DATABASE_URL from components if not set directly
	databaseURL := getEnv("DATABASE_URL", "")
	if databaseURL == "" {
		dbHost := getEnv("DB_HOST", "localhost")
		dbPort := getEnv("DB_PORT", "5432")
		dbUser := getEnv("DB_USER", "postgres")
		dbPassword := getEnv("DB_PASSWORD", "postgres")
		dbName := getEnv("DB_NAME", "listing_mapper")
		dbSSLMode := getEnv("DB_SSLMODE", "disable")

		databaseURL = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
			dbUser, dbPassword, dbHost, dbPort, dbName, dbSSLMode)
	}

	config := &Config{
		Port:        getEnv("PORT", "8094"),
		Environment: getEnv("ENVIRONMENT", "development"),
		DatabaseURL: databaseURL,

		RedisURL: getEnv("REDIS_URL", ""),

		MarketSpecPath: getEnv("MARKET_SPEC_PATH", ""),
		MarketSpecURL:  getEnv("MARKET_SPEC_URL", ""),

		DefaultRateLimit: getEnvAsInt("DEFAULT_RATE_LIMIT", 10),
	}

	// Validate required fields
	if config.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	return config
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvAsInt gets an environment variable as an integer with a default value
func getEnvAsInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intValue
}
