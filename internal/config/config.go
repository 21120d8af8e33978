package config

import (
	"fmt"
	"log"
	"os"
)

// App holds the runtime configuration loaded from environment variables.
type App struct {
	Env             string
	HTTPPort        string
	DBHost          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBPort          string
	DBSSLMode       string
	DBMaxRetries    int
	RateLimitPerSec int
	RateLimitBurst  int
	APIVersion      string
}

// Load returns application config populated from environment variables
// with sensible defaults for local development.
func Load() App {
	return App{
		Env:             getEnv("APP_ENV", "dev"),
		HTTPPort:        getEnv("PORT", "8000"),
		DBHost:          getEnv("DB_HOST", "localhost"),
		DBUser:          getEnv("DB_USER", "bluscan"),
		DBPassword:      getEnv("DB_PASSWORD", "bluscan"),
		DBName:          getEnv("DB_NAME", "bluscan_db"),
		DBPort:          getEnv("DB_PORT", "5432"),
		DBSSLMode:       getEnv("DB_SSLMODE", "disable"),
		DBMaxRetries:    intEnv("DB_MAX_RETRIES", 5),
		RateLimitPerSec: intEnv("RATE_LIMIT_PER_SEC", 20),
		RateLimitBurst:  intEnv("RATE_LIMIT_BURST", 40),
		APIVersion:      getEnv("API_VERSION", "1.0.0"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func intEnv(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		var parsed int
		if _, err := fmt.Sscanf(val, "%d", &parsed); err == nil {
			return parsed
		}
		log.Printf("invalid int for %s, using fallback %d", key, fallback)
	}
	return fallback
}
