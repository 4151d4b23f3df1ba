// ABOUTME: Centralized configuration for the postermatch CLI
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// DBConfig holds connection parameters for the movie store. It is built once
// at startup and passed by reference into the storage layer.
type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

// Config holds all configuration for the recommender
type Config struct {
	// Store settings
	DB             DBConfig
	ConnectRetries int

	// Poster fetch settings
	FetchTimeout     time.Duration
	FetchConcurrency int
	FetchMaxBytes    int64
	UserAgent        string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		DB: DBConfig{
			Host:     getEnv("POSTERMATCH_DB_HOST", "localhost"),
			Port:     getEnvInt("POSTERMATCH_DB_PORT", 5432),
			User:     getEnv("POSTERMATCH_DB_USER", "postgres"),
			Password: os.Getenv("POSTERMATCH_DB_PASSWORD"),
			Database: getEnv("POSTERMATCH_DB_NAME", "postermatch"),
			SSLMode:  getEnv("POSTERMATCH_DB_SSLMODE", "disable"),
		},
		ConnectRetries:   getEnvInt("POSTERMATCH_DB_CONNECT_RETRIES", 3),
		FetchTimeout:     getEnvDuration("POSTERMATCH_FETCH_TIMEOUT", 10*time.Second),
		FetchConcurrency: getEnvInt("POSTERMATCH_FETCH_CONCURRENCY", 8),
		FetchMaxBytes:    getEnvInt64("POSTERMATCH_FETCH_MAX_BYTES", 5*1024*1024),
		UserAgent:        getEnv("POSTERMATCH_USER_AGENT", "postermatch/1.0"),
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.DB.Host == "" {
		return fmt.Errorf("POSTERMATCH_DB_HOST must not be empty")
	}
	if c.DB.Port < 1 || c.DB.Port > 65535 {
		return fmt.Errorf("POSTERMATCH_DB_PORT must be 1-65535, got %d", c.DB.Port)
	}
	if c.DB.Database == "" {
		return fmt.Errorf("POSTERMATCH_DB_NAME must not be empty")
	}
	if c.ConnectRetries < 0 || c.ConnectRetries > 10 {
		return fmt.Errorf("POSTERMATCH_DB_CONNECT_RETRIES must be 0-10, got %d", c.ConnectRetries)
	}
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("POSTERMATCH_FETCH_TIMEOUT must be positive, got %s", c.FetchTimeout)
	}
	if c.FetchConcurrency < 1 || c.FetchConcurrency > 64 {
		return fmt.Errorf("POSTERMATCH_FETCH_CONCURRENCY must be 1-64, got %d", c.FetchConcurrency)
	}
	if c.FetchMaxBytes < 1024 {
		return fmt.Errorf("POSTERMATCH_FETCH_MAX_BYTES must be at least 1024, got %d", c.FetchMaxBytes)
	}
	return nil
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvInt64(key string, defaultVal int64) int64 {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
