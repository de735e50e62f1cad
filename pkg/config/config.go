// Package config holds runtime configuration resolved from flags,
// environment variables, and an optional YAML file.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all runtime configuration for the agent.
type Config struct {
	MaxIterations  int
	CommandTimeout time.Duration
	Verbose        bool

	APIKey  string
	BaseURL string
	Model   string
}

// DefaultConfig returns a baseline configuration without side effects.
func DefaultConfig() Config {
	return Config{
		MaxIterations:  5,
		CommandTimeout: 60 * time.Second,
		Model:          "gpt-3.5-turbo",
	}
}

// FileConfig mirrors the optional YAML config file. Pointer fields
// distinguish "unset" from an explicit zero.
type FileConfig struct {
	Model                 *string `yaml:"model"`
	BaseURL               *string `yaml:"base_url"`
	MaxIterations         *int    `yaml:"max_iterations"`
	CommandTimeoutSeconds *int    `yaml:"command_timeout_seconds"`
	Verbose               *bool   `yaml:"verbose"`
}

// LoadFile parses a YAML config file.
func LoadFile(path string) (FileConfig, error) {
	var fc FileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return fc, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return fc, nil
}

// Apply overlays the file values onto cfg and returns the result.
func (f FileConfig) Apply(cfg Config) Config {
	if f.Model != nil {
		cfg.Model = *f.Model
	}
	if f.BaseURL != nil {
		cfg.BaseURL = *f.BaseURL
	}
	if f.MaxIterations != nil {
		cfg.MaxIterations = *f.MaxIterations
	}
	if f.CommandTimeoutSeconds != nil {
		cfg.CommandTimeout = time.Duration(*f.CommandTimeoutSeconds) * time.Second
	}
	if f.Verbose != nil {
		cfg.Verbose = *f.Verbose
	}
	return cfg
}

// Normalize sanitizes configuration values and applies defaults.
func Normalize(cfg Config) Config {
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	cfg.BaseURL = strings.TrimSpace(cfg.BaseURL)
	cfg.Model = strings.TrimSpace(cfg.Model)

	if cfg.Model == "" {
		cfg.Model = DefaultConfig().Model
	}
	if cfg.MaxIterations <= 0 {
		cfg.MaxIterations = 1
	}
	if cfg.CommandTimeout <= 0 {
		cfg.CommandTimeout = DefaultConfig().CommandTimeout
	}
	return cfg
}

// Validate reports startup misconfiguration. A missing API key fails fast
// here instead of surfacing as a confusing downstream request failure.
func Validate(cfg Config) error {
	if cfg.APIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is not set")
	}
	return nil
}
