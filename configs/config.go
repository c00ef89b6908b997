package config

import (
	"os"
	"time"
)

// DevSecretKey is the fallback JWT signing key. It exists so the server can
// boot in a local development environment without any configuration; running
// against real data with this key is a configuration error and main logs a
// warning when it is in use.
const DevSecretKey = "dev-secret-please-change"

type Config struct {
	Port        string
	PostgresURI string
	SecretKey   string
	JWTIssuer   string
	JWTAudience string
	TokenTTL    time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Port:        getEnv("PORT", "3000"),
		PostgresURI: getEnv("POSTGRES_URI", ""),
		SecretKey:   getEnv("SECRET_KEY", DevSecretKey),
		JWTIssuer:   getEnv("JWT_ISSUER", "socialdeck"),
		JWTAudience: getEnv("JWT_AUDIENCE", "socialdeck-frontend"),
		TokenTTL:    getDurationEnv("TOKEN_TTL", 7*24*time.Hour),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
