// Package config holds the process-wide runtime configuration. The
// configuration is assembled once at startup (defaults, then an optional
// YAML file, then NUMCTL_* environment variables, then leading CLI flags)
// and passed by reference into the shell, dispatcher, and serializer.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config is the runtime configuration. It is written only during startup
// and flag parsing; everything downstream only reads it.
type Config struct {
	// Warning enables WARNING output on stderr.
	Warning bool `yaml:"warning" env:"NUMCTL_WARNING"`
	// Quiet suppresses ERROR output on stderr (exit codes are unaffected).
	Quiet bool `yaml:"quiet" env:"NUMCTL_QUIET"`
	// Debug enables DEBUG output on stderr.
	Debug bool `yaml:"debug" env:"NUMCTL_DEBUG"`
	// Exceptions panics with the original failure instead of mapping it
	// to an exit code.
	Exceptions bool `yaml:"exceptions" env:"NUMCTL_EXCEPTIONS"`
	// Newline terminates each output record.
	Newline string `yaml:"newline" env:"NUMCTL_NEWLINE"`
	// Format renders each output number (fmt verb).
	Format string `yaml:"format" env:"NUMCTL_FORMAT"`
}

// Default returns the compiled-in defaults.
func Default() *Config {
	return &Config{
		Warning: true,
		Newline: "\n",
		Format:  "%.8g",
	}
}

// Load assembles the configuration: defaults, overlaid by the config file
// (if present), overlaid by environment variables.
func Load() (*Config, error) {
	cfg := Default()

	if path := filePath(); path != "" {
		if err := overlayFile(cfg, path); err != nil {
			return nil, err
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// filePath returns the config file location, or "" when none exists.
func filePath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	path := filepath.Join(dir, "numctl", "config.yaml")
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

func overlayFile(cfg *Config, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}
