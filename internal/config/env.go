package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	groqKey := os.Getenv("GROQ_API_KEY")
	groqFallbackKey := os.Getenv("GROQ_FALLBACK_API_KEY")
	databaseURL := os.Getenv("DATABASE_URL")
	redisURL := os.Getenv("REDIS_URL")
	jwtSecret := os.Getenv("JWT_SECRET")
	environment := os.Getenv("ENVIRONMENT")

	if groqKey == "" {
		return nil, fmt.Errorf("GROQ_API_KEY environment variable is required")
	}

	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	if environment == "" {
		environment = "development"
	}

	// GROQ_FALLBACK_API_KEY and REDIS_URL are optional; without a fallback
	// key the gateway simply has no failover target, and without Redis the
	// rate limiter falls back to an in-memory store.

	return &Config{
		GroqAPIKey:      groqKey,
		GroqFallbackKey: groqFallbackKey,
		DatabaseURL:     databaseURL,
		RedisURL:        redisURL,
		JWTSecret:       jwtSecret,
		Environment:     environment,
	}, nil
}
