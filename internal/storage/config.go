package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"
)

const (
	// userConfigFile is the name of the user configuration file.
	userConfigFile = ".albumconfig.yaml"

	// Default configuration values
	DefaultAlbum    = "album.yaml"
	DefaultLogLevel = "info"
	DefaultUser     = "console"
)

// Config represents user configuration from .albumconfig.yaml.
// This file is user-managed and never written by album.
type Config struct {
	// Album is the album file, relative to the config directory unless absolute.
	Album string `yaml:"album"`

	// Seed makes draws reproducible when non-zero.
	Seed uint64 `yaml:"seed"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// Admins lists the console users allowed to run admin commands in
	// `album serve`. An empty list makes every user an admin.
	Admins []string `yaml:"admins"`

	// User is the identity `album serve` attaches to console messages.
	User string `yaml:"user"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Album:    DefaultAlbum,
		LogLevel: DefaultLogLevel,
		User:     DefaultUser,
	}
}

// IsAdmin reports whether user may run admin commands.
func (c *Config) IsAdmin(user string) bool {
	if len(c.Admins) == 0 {
		return true
	}
	return slices.Contains(c.Admins, user)
}

// LoadConfig loads .albumconfig.yaml if it exists, otherwise returns defaults.
// Partial config files are merged with defaults.
func (s *Storage) LoadConfig() (*Config, error) {
	configPath := s.ConfigPath()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// No config file - return defaults
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", userConfigFile, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", userConfigFile, err)
	}
	if cfg.Album == "" {
		cfg.Album = DefaultAlbum
	}

	return cfg, nil
}

// ConfigPath returns the path to the user config file.
func (s *Storage) ConfigPath() string {
	return filepath.Join(s.root, userConfigFile)
}
