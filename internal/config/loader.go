// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/coral-mesh/bix/internal/constants"
	"github.com/coral-mesh/bix/internal/safe"
)

// Loader handles loading and saving the configuration file.
type Loader struct {
	path string
}

// NewLoader creates a new config loader.
// The base directory is resolved in this order:
//  1. BIX_CONFIG environment variable.
//  2. User home directory (~/).
//  3. The working directory, when no home directory exists.
func NewLoader() *Loader {
	baseDir := os.Getenv("BIX_CONFIG")
	if baseDir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			baseDir = home
		}
	}
	return &Loader{
		path: filepath.Join(baseDir, constants.DefaultDir, constants.ConfigFile),
	}
}

// NewFileLoader creates a loader for an explicit config file path.
func NewFileLoader(path string) *Loader {
	return &Loader{path: path}
}

// Path returns the path to the config file.
func (l *Loader) Path() string {
	return l.path
}

// Load loads the configuration.
// Returns the defaults if the file doesn't exist. Fields missing from the
// file keep their default values. Environment variables are applied last.
func (l *Loader) Load() (*Config, error) {
	config := DefaultConfig()

	if _, err := os.Stat(l.path); err == nil {
		data, err := safe.ReadFile(l.path, &safe.ReadOptions{AllowSymlinks: true})
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}

		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", l.path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to stat config: %w", err)
	}

	if err := LoadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", l.path, err)
	}

	return config, nil
}

// Save writes the configuration file, creating its directory if needed.
func (l *Loader) Save(config *Config) error {
	if err := config.Validate(); err != nil {
		return err
	}

	//nolint:gosec // G301: Directory needs standard permissions for traversal
	if err := os.MkdirAll(filepath.Dir(l.path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	//nolint:gosec // G306: Config file is not sensitive
	if err := os.WriteFile(l.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
