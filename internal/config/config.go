// Package config provides configuration management for the extraction tools.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"apiextract/internal/source"
)

// DefaultConfigPath is tried when no -config flag is given.
const DefaultConfigPath = "configs/apiextract.yaml"

const defaultLogLevel = "warn"

// Configuration validation errors.
var (
	ErrMissingInputPath = errors.New("input.path is required")
	ErrInvalidLogLevel  = errors.New("logging.level must be one of: debug, info, warn, error")
)

// Config represents the complete tool configuration.
type Config struct {
	Input   InputConfig   `yaml:"input"`
	Logging LoggingConfig `yaml:"logging"`
}

// InputConfig locates the exported collection.
type InputConfig struct {
	Path string `yaml:"path"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Input:   InputConfig{Path: source.DefaultPath},
		Logging: LoggingConfig{Level: defaultLogLevel},
	}
}

// LoadConfig loads configuration from YAML file.
// Keys missing from the file keep their defaults.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Resolve loads path, or DefaultConfigPath when path is empty and that file exists.
// With neither, it returns Default().
func Resolve(path string) (*Config, error) {
	if path == "" {
		if _, err := os.Stat(DefaultConfigPath); err != nil {
			return Default(), nil
		}

		path = DefaultConfigPath
	}

	return LoadConfig(path)
}

// ResolveOrDefault is Resolve that never leaves the caller without a config.
// On failure it returns Default() together with the error so the caller can report it.
func ResolveOrDefault(path string) (*Config, error) {
	cfg, err := Resolve(path)
	if err != nil {
		return Default(), err
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Input.Path == "" {
		return ErrMissingInputPath
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	return nil
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf("Config{Input: %s, LogLevel: %s}", c.Input.Path, c.Logging.Level)
}
