package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/harrison/fatfilefinder/internal/logger"
	"github.com/harrison/fatfilefinder/internal/sizespec"
)

// Config represents fatfilefinder configuration options
type Config struct {
	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// LogDir enables a per-run log file in this directory (empty = disabled)
	LogDir string `yaml:"log_dir"`

	// SizeFormat selects how --size is parsed: "unit" (10MB) or "plain" (bytes only)
	SizeFormat string `yaml:"size_format"`

	// HoldingDir overrides the relocation destination (empty = <temp>/FatFileFinder)
	HoldingDir string `yaml:"holding_dir"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		LogLevel:   "info",
		LogDir:     "",
		SizeFormat: "unit",
		HoldingDir: "",
	}
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply non-zero values from file (merging with defaults)
	if fileCfg.LogLevel != "" {
		cfg.LogLevel = fileCfg.LogLevel
	}
	if fileCfg.LogDir != "" {
		cfg.LogDir = fileCfg.LogDir
	}
	if fileCfg.SizeFormat != "" {
		cfg.SizeFormat = fileCfg.SizeFormat
	}
	if fileCfg.HoldingDir != "" {
		cfg.HoldingDir = fileCfg.HoldingDir
	}

	return cfg, nil
}

// LoadConfigFromDir loads configuration from config.yaml in the specified directory
// If the directory or file doesn't exist, returns default configuration without error
func LoadConfigFromDir(dir string) (*Config, error) {
	return LoadConfig(filepath.Join(dir, ConfigFileName))
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values
func (c *Config) MergeWithFlags(logLevel *string, logDir *string, sizeFormat *string) {
	if logLevel != nil {
		c.LogLevel = *logLevel
	}
	if logDir != nil {
		c.LogDir = *logDir
	}
	if sizeFormat != nil {
		c.SizeFormat = *sizeFormat
	}
}

// SizeVariant returns the parser variant selected by SizeFormat.
func (c *Config) SizeVariant() (sizespec.Variant, error) {
	return sizespec.ParseVariant(c.SizeFormat)
}

// Validate validates the configuration values
// Returns an error if any values are invalid
func (c *Config) Validate() error {
	if !logger.IsValidLevel(c.LogLevel) {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	if _, err := c.SizeVariant(); err != nil {
		return fmt.Errorf("invalid size_format: %w", err)
	}

	return nil
}
