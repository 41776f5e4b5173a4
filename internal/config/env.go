package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const defaultJWTTTLHours = 168 // 7 days

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	databaseURL := os.Getenv("DATABASE_URL")
	jwtSecret := os.Getenv("JWT_SECRET")
	sessionSecret := os.Getenv("SESSION_SECRET")
	googleClientID := os.Getenv("GOOGLE_CLIENT_ID")
	googleClientSecret := os.Getenv("GOOGLE_CLIENT_SECRET")
	clientURL := os.Getenv("CLIENT_URL")
	environment := os.Getenv("ENVIRONMENT")
	port := os.Getenv("PORT")

	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	if sessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET environment variable is required")
	}

	if googleClientID == "" || googleClientSecret == "" {
		return nil, fmt.Errorf("GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET environment variables are required")
	}

	if clientURL == "" {
		clientURL = "http://localhost:3000"
	}

	if environment == "" {
		environment = "development"
	}

	if port == "" {
		port = "8080"
	}

	ttlHours := defaultJWTTTLHours

	if raw := os.Getenv("JWT_TTL_HOURS"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("JWT_TTL_HOURS must be a positive integer, got %q", raw)
		}

		ttlHours = parsed
	}

	return &Config{
		Port:               port,
		DatabaseURL:        databaseURL,
		JWTSecret:          jwtSecret,
		JWTTTLHours:        ttlHours,
		SessionSecret:      sessionSecret,
		GoogleClientID:     googleClientID,
		GoogleClientSecret: googleClientSecret,
		ClientURL:          clientURL,
		Environment:        environment,
	}, nil
}
