package config

import (
	"os"
	"time"
)

type Config struct {
	Port        string
	Environment string
	CORSOrigins string
	// Token configuration
	JWTSigningKey string // Shared HS256 key for the built-in issuer/verifier
	JWTIssuer     string
	JWKSURL       string // When set, tokens are verified against this JWKS instead of the local key
	TokenTTL      time.Duration
	// Credential directory
	UsersFile string // Optional YAML file; empty means the built-in demo users
}

func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8080"),
		Environment:   getEnv("ENVIRONMENT", "dev"),
		CORSOrigins:   getEnv("CORS_ORIGINS", "http://localhost:3000"),
		JWTSigningKey: getEnv("JWT_SIGNING_KEY", "dev-signing-key-do-not-use-in-prod"),
		JWTIssuer:     getEnv("JWT_ISSUER", "doc-service"),
		JWKSURL:       getEnv("JWKS_URL", ""),
		TokenTTL:      getDuration("TOKEN_TTL", 30*time.Minute),
		UsersFile:     getEnv("USERS_FILE", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}
