// Package config provides configuration management for the mot2coco
// converter. Configuration is loaded from environment variables with
// sensible defaults; command-line flags take their defaults from here so
// either surface can drive a run.
package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	// Default values
	DefaultLogLevel = "info"
	DefaultPreset   = "VisDrone"
	DefaultIndent   = 0

	// Environment variable names
	EnvLogLevel   = "MOT2COCO_LOG_LEVEL"
	EnvPreset     = "MOT2COCO_PRESET"
	EnvPresetFile = "MOT2COCO_PRESET_FILE"
	EnvIndent     = "MOT2COCO_INDENT"
)

// Config defines the application configuration interface
type Config interface {
	LogLevel() string
	PresetName() string
	PresetFile() string
	Indent() int
}

// EnvConfig reads configuration from environment variables
type EnvConfig struct {
	logLevel   string
	presetName string
	presetFile string
	indent     int
}

// New creates a new EnvConfig with defaults and environment variable overrides
func New() (*EnvConfig, error) {
	cfg := &EnvConfig{
		logLevel:   DefaultLogLevel,
		presetName: DefaultPreset,
		indent:     DefaultIndent,
	}

	if ll := os.Getenv(EnvLogLevel); ll != "" {
		cfg.logLevel = ll
	}

	if p := os.Getenv(EnvPreset); p != "" {
		cfg.presetName = p
	}

	if pf := os.Getenv(EnvPresetFile); pf != "" {
		cfg.presetFile = pf
	}

	if in := os.Getenv(EnvIndent); in != "" {
		indent, err := strconv.Atoi(in)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EnvIndent, err)
		}
		if indent < 0 || indent > 8 {
			return nil, fmt.Errorf("invalid %s: indent must be between 0 and 8", EnvIndent)
		}
		cfg.indent = indent
	}

	return cfg, nil
}

// LogLevel returns the log level (debug, info, warn, error)
func (c *EnvConfig) LogLevel() string {
	return c.logLevel
}

// PresetName returns the name of the dataset preset to convert with
func (c *EnvConfig) PresetName() string {
	return c.presetName
}

// PresetFile returns the path to a TOML preset file, or "" for built-ins
func (c *EnvConfig) PresetFile() string {
	return c.presetFile
}

// Indent returns the JSON indent width for the output document (0 = compact)
func (c *EnvConfig) Indent() int {
	return c.indent
}

// Version information (set at build time via ldflags)
var (
	Version   = "0.1.0"
	BuildTime = "unknown"
	GitCommit = "unknown"
)
