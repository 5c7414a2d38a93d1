package config

import (
	"errors"
	"fmt"
	"os"
	"time"
)

// Backend names accepted by LOOM_BACKEND.
const (
	BackendHTTP    = "http"
	BackendSurreal = "surrealdb"
)

// Config holds all CLI configuration
type Config struct {
	Backend  string
	HTTP     HTTPConfig
	Database DatabaseConfig
	Plan     PlanConfig
	Metrics  MetricsConfig
}

// HTTPConfig holds HTTP backend settings
type HTTPConfig struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// DatabaseConfig holds SurrealDB connection settings
type DatabaseConfig struct {
	Host      string
	Port      string
	Namespace string
	Database  string
	User      string
	Password  string
}

// PlanConfig holds seed plan settings
type PlanConfig struct {
	Path string
}

// MetricsConfig holds Prometheus endpoint settings
type MetricsConfig struct {
	Addr string
}

// Load reads configuration from environment variables with sensible defaults
func Load() (*Config, error) {
	return &Config{
		Backend: getEnv("LOOM_BACKEND", BackendHTTP),
		HTTP: HTTPConfig{
			BaseURL: getEnv("LOOM_API_BASE_URL", ""),
			Token:   getEnv("LOOM_API_TOKEN", ""),
			Timeout: getDurationEnv("LOOM_API_TIMEOUT", 15*time.Second),
		},
		Database: DatabaseConfig{
			Host:      getEnv("LOOM_DB_HOST", "localhost"),
			Port:      getEnv("LOOM_DB_PORT", "8000"),
			Namespace: getEnv("LOOM_DB_NAMESPACE", "loom"),
			Database:  getEnv("LOOM_DB_DATABASE", "seed"),
			User:      getEnv("LOOM_DB_USER", "root"),
			Password:  getEnv("LOOM_DB_PASSWORD", "root"),
		},
		Plan: PlanConfig{
			Path: getEnv("LOOM_PLAN", "./seed.yaml"),
		},
		Metrics: MetricsConfig{
			Addr: getEnv("LOOM_METRICS_ADDR", ""),
		},
	}, nil
}

// Validate checks that all required configuration values are present and valid.
// It returns an error describing all validation failures, or nil if valid.
func (c *Config) Validate() error {
	var errs []error

	switch c.Backend {
	case BackendHTTP:
		if c.HTTP.BaseURL == "" {
			errs = append(errs, errors.New("LOOM_API_BASE_URL is required for the http backend"))
		}
		if c.HTTP.Timeout <= 0 {
			errs = append(errs, errors.New("LOOM_API_TIMEOUT must be positive"))
		}
	case BackendSurreal:
		if c.Database.Host == "" {
			errs = append(errs, errors.New("LOOM_DB_HOST is required"))
		}
		if c.Database.Port == "" {
			errs = append(errs, errors.New("LOOM_DB_PORT is required"))
		}
		if c.Database.Namespace == "" {
			errs = append(errs, errors.New("LOOM_DB_NAMESPACE is required"))
		}
		if c.Database.Database == "" {
			errs = append(errs, errors.New("LOOM_DB_DATABASE is required"))
		}
	default:
		errs = append(errs, fmt.Errorf("LOOM_BACKEND must be '%s' or '%s', got '%s'", BackendHTTP, BackendSurreal, c.Backend))
	}

	if c.Plan.Path == "" {
		errs = append(errs, errors.New("LOOM_PLAN is required"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// Helper functions for reading environment variables

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
