package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all configuration values
type Config struct {
	// Server configuration
	Port        int    `json:"port"`
	Environment string `json:"environment"`

	// Accepted range for the numeric part of a RUT
	RutMinNumber int `json:"rut_min_number"`
	RutMaxNumber int `json:"rut_max_number"`

	// Tracing configuration
	TracingEnabled  bool   `json:"tracing_enabled"`
	TracingEndpoint string `json:"tracing_endpoint"`
}

var (
	AppConfig *Config
)

// LoadConfig loads configuration from environment variables
func LoadConfig() error {
	port, err := strconv.Atoi(getEnvOrDefault("PORT", "8080"))
	if err != nil {
		return fmt.Errorf("invalid PORT: %w", err)
	}

	minNumber, err := strconv.Atoi(getEnvOrDefault("RUT_MIN_NUMBER", "1000000"))
	if err != nil {
		return fmt.Errorf("invalid RUT_MIN_NUMBER: %w", err)
	}

	maxNumber, err := strconv.Atoi(getEnvOrDefault("RUT_MAX_NUMBER", "99999999"))
	if err != nil {
		return fmt.Errorf("invalid RUT_MAX_NUMBER: %w", err)
	}

	if minNumber > maxNumber {
		return fmt.Errorf("RUT_MIN_NUMBER (%d) must not exceed RUT_MAX_NUMBER (%d)", minNumber, maxNumber)
	}

	tracingEnabled, err := strconv.ParseBool(getEnvOrDefault("TRACING_ENABLED", "false"))
	if err != nil {
		return fmt.Errorf("invalid TRACING_ENABLED: %w", err)
	}

	AppConfig = &Config{
		// Server configuration
		Port:        port,
		Environment: getEnvOrDefault("ENVIRONMENT", "development"),

		// RUT range configuration
		RutMinNumber: minNumber,
		RutMaxNumber: maxNumber,

		// Tracing configuration
		TracingEnabled:  tracingEnabled,
		TracingEndpoint: getEnvOrDefault("TRACING_ENDPOINT", "localhost:4317"),
	}

	return nil
}

// getEnvOrDefault returns environment variable value or default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
