package config

import (
	"github.com/coral-mesh/bix/internal/constants"
)

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: SchemaVersion,
		View: ViewConfig{
			Width:  constants.DefaultWidth,
			Color:  constants.DefaultColor,
			Format: constants.DefaultFormat,
		},
		Patch: PatchConfig{
			Growth: constants.DefaultGrowth,
		},
		Log: LogConfig{
			Level:  constants.DefaultLogLevel,
			Pretty: true,
		},
	}
}
