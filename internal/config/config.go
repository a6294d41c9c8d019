package config

import (
	"os"
	"strconv"

	"github.com/dnafinder/uroccomp/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server ServerConfig
	Report ReportConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// ReportConfig holds presentation defaults
type ReportConfig struct {
	Alpha     float64 // default significance level for requests that omit it
	PlotWidth int     // plot edge length in points (square aspect)
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8080"),
			GinMode: getEnvOrDefault("GIN_MODE", "release"),
		},
		Report: ReportConfig{
			Alpha:     getEnvFloatOrDefault("ALPHA", 0.05),
			PlotWidth: getEnvIntOrDefault("PLOT_WIDTH", 400),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

func validateConfig(config *Config) error {
	if config.Report.Alpha <= 0 || config.Report.Alpha >= 1 {
		return errors.ConfigInvalid("ALPHA must be strictly between 0 and 1")
	}
	if config.Report.PlotWidth <= 0 {
		return errors.ConfigInvalid("PLOT_WIDTH must be positive")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
