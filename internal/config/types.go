package config

type Config struct {
	GroqAPIKey      string
	GroqFallbackKey string
	DatabaseURL     string
	RedisURL        string
	JWTSecret       string
	Environment     string
}
