// Package config loads the dwim configuration file and applies
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure loaded from YAML.
type Config struct {
	// Editor is the backend name (e.g. "sublime", "vim", "vscode").
	Editor string `yaml:"editor"`

	// Executable overrides the backend's default executable.
	Executable string `yaml:"executable,omitempty"`

	// Fallbacks are backend names tried in order when the primary
	// backend's executable is not on PATH.
	Fallbacks []string `yaml:"fallbacks,omitempty"`

	// LogFile overrides the default log file location.
	LogFile string `yaml:"log_file,omitempty"`

	// History toggles recording of opened targets.
	History bool `yaml:"history"`
}

// Load reads the configuration file at path, or the default location
// when path is empty. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		cfg.applyEnvironmentOverrides()
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks a configuration for errors.
func Validate(cfg *Config) error {
	if cfg.Editor == "" {
		return errors.New("editor: a backend name is required")
	}
	return nil
}

func (c *Config) applyEnvironmentOverrides() {
	if env := os.Getenv("DWIM_EDITOR"); env != "" {
		c.Editor = env
	}
	if env := os.Getenv("DWIM_EXECUTABLE"); env != "" {
		c.Executable = env
	}
	if env := os.Getenv("DWIM_LOG_FILE"); env != "" {
		c.LogFile = env
	}
}

// DefaultPath returns the config file location under the XDG config
// directory.
func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join("/etc", "dwim", "config.yaml")
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "dwim", "config.yaml")
}
