package app

import (
	"errors"
	"fmt"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Puzzles      []string // names given on the command line; empty means all
	InputPath    string   // input file, only valid with a single puzzle
	ManifestPath string   // hcl/yaml file or directory
	Sample       bool     // solve the embedded samples and verify their answers

	LogFormat string
	LogLevel  string
}

var validLogFormats = map[string]bool{"text": true, "json": true}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.InputPath != "" && len(cfg.Puzzles) != 1 {
		return nil, errors.New("an input file can only be used with exactly one puzzle")
	}
	if cfg.InputPath != "" && cfg.Sample {
		return nil, errors.New("an input file and sample mode are mutually exclusive")
	}
	if cfg.ManifestPath != "" && (len(cfg.Puzzles) > 0 || cfg.InputPath != "" || cfg.Sample) {
		return nil, errors.New("a manifest cannot be combined with puzzle names, an input file or sample mode")
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if !validLogFormats[cfg.LogFormat] {
		return nil, fmt.Errorf("invalid log format %q: must be 'text' or 'json'", cfg.LogFormat)
	}
	if _, ok := logLevels[cfg.LogLevel]; !ok {
		return nil, fmt.Errorf("invalid log level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}

	return &cfg, nil
}
