/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds tool defaults that can be stored in a csftool.yaml file
// next to the input file. Command-line flags override every field.
type Config struct {
	// TextExtension replaces the input file's extension when deriving the
	// default text filename.
	TextExtension string `yaml:"text_extension"`
	// LanguageOverride, when set, replaces the table's language id before
	// saving. Must be within [-1, 9].
	LanguageOverride *int32 `yaml:"language_override"`
	// Debug enables debug-level logging.
	Debug bool `yaml:"debug"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		TextExtension: ".txt",
	}
}

// LoadConfig loads configuration from the specified path, applying file
// values on top of the defaults.
func LoadConfig(configPath string) (*Config, error) {
	if !filepath.IsAbs(configPath) {
		absPath, err := filepath.Abs(configPath)
		if err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		configPath = absPath
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// ConfigExists checks if a configuration file exists.
func ConfigExists(configPath string) bool {
	_, err := os.Stat(configPath)
	return !os.IsNotExist(err)
}
