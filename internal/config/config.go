// Package config loads and validates service configuration from the
// environment.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Default request limits. TF-IDF cost grows with corpus size, so the server
// bounds what a single scoring request may carry instead of bounding latency
// inside the engine.
const (
	DefaultMaxResumes       = 100
	DefaultMaxDocumentBytes = 1 << 20 // 1 MiB per document
)

// ServerConfig holds the HTTP service configuration.
type ServerConfig struct {
	Port             int
	DatabaseURL      string
	MaxResumes       int
	MaxDocumentBytes int
}

// NewServerConfig reads server configuration from the environment.
// DATABASE_URL is required; PORT, MATCH_MAX_RESUMES and
// MATCH_MAX_DOCUMENT_BYTES are optional.
func NewServerConfig() (*ServerConfig, error) {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required but not set")
	}

	port, err := getEnvInt("PORT", 8080)
	if err != nil {
		return nil, err
	}
	maxResumes, err := getEnvInt("MATCH_MAX_RESUMES", DefaultMaxResumes)
	if err != nil {
		return nil, err
	}
	maxDocumentBytes, err := getEnvInt("MATCH_MAX_DOCUMENT_BYTES", DefaultMaxDocumentBytes)
	if err != nil {
		return nil, err
	}

	cfg := &ServerConfig{
		Port:             port,
		DatabaseURL:      databaseURL,
		MaxResumes:       maxResumes,
		MaxDocumentBytes: maxDocumentBytes,
	}
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// normalize validates the configuration.
func (c *ServerConfig) normalize() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d", c.Port)
	}
	if c.MaxResumes < 1 {
		return fmt.Errorf("MATCH_MAX_RESUMES must be positive, got: %d", c.MaxResumes)
	}
	if c.MaxDocumentBytes < 1 {
		return fmt.Errorf("MATCH_MAX_DOCUMENT_BYTES must be positive, got: %d", c.MaxDocumentBytes)
	}
	return nil
}

// getEnvInt reads an integer environment variable with a default.
func getEnvInt(key string, defaultValue int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %v", key, err)
	}
	return value, nil
}
