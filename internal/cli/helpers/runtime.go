package helpers

import (
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/coral-mesh/bix/internal/config"
	"github.com/coral-mesh/bix/internal/logging"
)

// ConfigLoader returns the loader selected by the global --config flag, or
// the default location.
func ConfigLoader(cmd *cobra.Command) *config.Loader {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return config.NewFileLoader(path)
	}
	return config.NewLoader()
}

// LoadConfig resolves the effective configuration for cmd, applying the
// global --log-level flag on top of the file and environment.
func LoadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := ConfigLoader(cmd).Load()
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("log-level") {
		level, err := cmd.Flags().GetString("log-level")
		if err != nil {
			return nil, err
		}
		if !slices.Contains(config.LogLevels, level) {
			return nil, fmt.Errorf("invalid --log-level %q, must be one of: %s",
				level, strings.Join(config.LogLevels, ", "))
		}
		cfg.Log.Level = level
	}
	return cfg, nil
}

// NewLogger creates the command logger. Logs go to the command's error
// stream so that standard output carries only results.
func NewLogger(cmd *cobra.Command, cfg *config.Config) zerolog.Logger {
	return logging.NewWithComponent(logging.Config{
		Level:  cfg.Log.Level,
		Pretty: cfg.Log.Pretty,
		Output: cmd.ErrOrStderr(),
	}, cmd.Name())
}
