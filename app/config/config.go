package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the session service
type Config struct {
	// Server
	Port     string `env:"PORT" default:"9500"`
	Host     string `env:"HOST" default:"0.0.0.0"`
	LogLevel string `env:"LOG_LEVEL" default:"info"`

	// Database
	DatabaseURL string `env:"DATABASE_URL" required:"true"`

	// Redis (warm startup cache)
	RedisURL string `env:"REDIS_URL" default:"redis://localhost:6379/0"`

	// Kratos
	KratosPublicURL string `env:"KRATOS_PUBLIC_URL" required:"true"`
	KratosAdminURL  string `env:"KRATOS_ADMIN_URL" required:"true"`

	// Assets
	AssetManifestURL string `env:"ASSET_MANIFEST_URL"`

	// Session
	SessionPollInterval time.Duration `env:"SESSION_POLL_INTERVAL" default:"3s"`
	ProfileFetchTimeout time.Duration `env:"PROFILE_FETCH_TIMEOUT" default:"10s"`

	// Features
	EnableMetrics bool `env:"ENABLE_METRICS" default:"true"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	config := &Config{}

	// Server configuration
	config.Port = getEnvOrDefault("PORT", "9500")
	config.Host = getEnvOrDefault("HOST", "0.0.0.0")
	config.LogLevel = getEnvOrDefault("LOG_LEVEL", "info")

	// Database configuration
	config.DatabaseURL = os.Getenv("DATABASE_URL")
	if config.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	// Redis configuration
	config.RedisURL = getEnvOrDefault("REDIS_URL", "redis://localhost:6379/0")

	// Kratos configuration
	config.KratosPublicURL = os.Getenv("KRATOS_PUBLIC_URL")
	if config.KratosPublicURL == "" {
		return nil, fmt.Errorf("KRATOS_PUBLIC_URL is required")
	}

	config.KratosAdminURL = os.Getenv("KRATOS_ADMIN_URL")
	if config.KratosAdminURL == "" {
		return nil, fmt.Errorf("KRATOS_ADMIN_URL is required")
	}

	// Asset configuration
	config.AssetManifestURL = os.Getenv("ASSET_MANIFEST_URL")

	// Session configuration
	var err error
	pollIntervalStr := getEnvOrDefault("SESSION_POLL_INTERVAL", "3s")
	config.SessionPollInterval, err = time.ParseDuration(pollIntervalStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_POLL_INTERVAL: %w", err)
	}

	fetchTimeoutStr := getEnvOrDefault("PROFILE_FETCH_TIMEOUT", "10s")
	config.ProfileFetchTimeout, err = time.ParseDuration(fetchTimeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PROFILE_FETCH_TIMEOUT: %w", err)
	}

	// Feature flags
	config.EnableMetrics = getBoolEnv("ENABLE_METRICS", true)

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Validate port
	port, err := strconv.ParseInt(c.Port, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid port: %s", c.Port)
	}
	// Check port range (1-65535)
	if port < 1 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535: %s", c.Port)
	}

	// Validate log level
	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("invalid log level: %s (must be one of: %s)", c.LogLevel, strings.Join(validLogLevels, ", "))
	}

	// Validate poll interval (sub-second polling hammers the identity provider)
	if c.SessionPollInterval < time.Second {
		return fmt.Errorf("session poll interval must be at least 1 second, got: %v", c.SessionPollInterval)
	}

	// Validate fetch timeout
	if c.ProfileFetchTimeout < time.Second {
		return fmt.Errorf("profile fetch timeout must be at least 1 second, got: %v", c.ProfileFetchTimeout)
	}

	return nil
}

// Helper functions

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
