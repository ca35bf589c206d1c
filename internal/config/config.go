package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	Storage struct {
		Path string `yaml:"path" env:"STORAGE_PATH"`
		Slot string `yaml:"slot" env:"STORAGE_SLOT"`
	} `yaml:"storage"`

	Auth struct {
		// OwnerPasswordHash is the bcrypt hash of the owner password.
		// Leave empty to run without authentication (local use).
		OwnerPasswordHash     string `yaml:"owner_password_hash" env:"AUTH_OWNER_PASSWORD_HASH"`
		JWTSecret             string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET"`
		AccessTokenExpiration string `yaml:"access_token_expiration" env:"AUTH_ACCESS_TOKEN_EXPIRATION"`
		Issuer                string `yaml:"issuer" env:"AUTH_ISSUER"`
	} `yaml:"auth"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// Load default config with sane defaults
	config := &Config{}
	setDefaults(config)

	// Try to read config file if it exists
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	// Validate config
	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	// Server defaults
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	// Storage defaults
	config.Storage.Path = "planner.db"
	config.Storage.Slot = "courses"

	// Auth defaults
	config.Auth.JWTSecret = "change-me-in-production"
	config.Auth.AccessTokenExpiration = "12h"
	config.Auth.Issuer = "acadplan.local"

	// Logging defaults
	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Storage.Path == "" {
		return fmt.Errorf("storage path is required")
	}

	if config.Storage.Slot == "" {
		return fmt.Errorf("storage slot is required")
	}

	if config.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	if _, err := time.ParseDuration(config.Auth.AccessTokenExpiration); err != nil {
		return fmt.Errorf("invalid access token expiration format: %w", err)
	}

	return nil
}

// AccessTokenExp returns the parsed access token lifetime.
// validateConfig guarantees the format is parseable.
func (c *Config) AccessTokenExp() time.Duration {
	d, _ := time.ParseDuration(c.Auth.AccessTokenExpiration)
	return d
}
