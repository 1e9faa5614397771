package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultHost             = "0.0.0.0"
	defaultPort             = 3000
	defaultLogLevel         = "INFO"
	defaultMaxContentLength = 1 << 20 // 1MB
)

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	host := os.Getenv("SERVER_HOST")
	if host == "" {
		host = defaultHost
	}

	port := defaultPort
	if portStr := os.Getenv("SERVER_PORT"); portStr != "" {
		parsed, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid SERVER_PORT %q: %w", portStr, err)
		}

		if parsed < 1 || parsed > 65535 {
			return nil, fmt.Errorf("SERVER_PORT %d out of range", parsed)
		}

		port = parsed
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = defaultLogLevel
	}

	autoReload := strings.EqualFold(os.Getenv("AUTO_SAVE"), "true")

	maxContentLength := int64(defaultMaxContentLength)
	if sizeStr := os.Getenv("MAX_CONTENT_LENGTH"); sizeStr != "" {
		parsed, err := strconv.ParseInt(sizeStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid MAX_CONTENT_LENGTH %q: %w", sizeStr, err)
		}

		if parsed <= 0 {
			return nil, fmt.Errorf("MAX_CONTENT_LENGTH must be positive, got %d", parsed)
		}

		maxContentLength = parsed
	}

	environment := os.Getenv("ENVIRONMENT")
	if environment == "" {
		environment = "development"
	}

	return &Config{
		Host:             host,
		Port:             port,
		LogLevel:         strings.ToUpper(logLevel),
		AutoReload:       autoReload,
		MaxContentLength: maxContentLength,
		Environment:      environment,
	}, nil
}
