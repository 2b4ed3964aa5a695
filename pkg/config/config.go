// Package config provides configuration loading and management for volgrid.
// It handles loading configuration from YAML files and provides default values.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration loaded from YAML
type Config struct {
	// Ingestion parameters
	Ingest struct {
		// Format selects the source layout: "raw" or "ascii"
		Format string `yaml:"format"`

		// Encoding is the raw sample encoding: uint8, uint16, int16,
		// int32, float32 or float64
		Encoding string `yaml:"encoding"`

		// ByteOrder is the multi-byte assembly order: "big" or "little"
		ByteOrder string `yaml:"byteOrder"`
	} `yaml:"ingest"`

	// Container parameters
	Container struct {
		// Scheme selects the container payload layout when reading:
		// "current" or "legacy"
		Scheme string `yaml:"scheme"`
	} `yaml:"container"`

	// Output parameters
	Output struct {
		// Verbose controls the level of progress output
		Verbose bool `yaml:"verbose"`
	} `yaml:"output"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	cfg := &Config{}

	// Set default ingestion parameters
	cfg.Ingest.Format = "raw"
	cfg.Ingest.Encoding = "uint8"
	cfg.Ingest.ByteOrder = "big"

	// Set default container parameters
	cfg.Container.Scheme = "current"

	// Set default output parameters
	cfg.Output.Verbose = true

	return cfg
}

// LoadConfig loads configuration from a YAML file
// If the file doesn't exist, it returns the default configuration
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	// Read config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Parse YAML
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the configuration to a YAML file
func SaveConfig(cfg *Config, configPath string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	// Marshal config to YAML
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	// Write to file
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}
