// Package config implements the 'bix config' commands.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/coral-mesh/bix/internal/cli/helpers"
	"github.com/coral-mesh/bix/internal/config"
)

// NewConfigCmd creates the config command with subcommands.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage bix configuration",
		Long: `Inspect and initialize the bix configuration file.

The configuration lives in ~/.bix/config.yaml unless BIX_CONFIG points to a
different base directory or --config names a file. Values are resolved in
this order (highest first):
  1. Command-line flags
  2. Environment variables (BIX_*)
  3. Configuration file
  4. Built-in defaults`,
	}

	cmd.AddCommand(newViewCmd())
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newPathCmd())

	return cmd
}

// newViewCmd creates the 'config view' command.
func newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Show the effective configuration",
		Long: `Display the configuration after defaults, the config file and
environment variables are merged.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd)
		},
	}
}

func runView(cmd *cobra.Command) error {
	loader := helpers.ConfigLoader(cmd)
	cfg, err := helpers.LoadConfig(cmd)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "# Config file: %s (%s)\n", loader.Path(), presence(loader.Path()))
	_, err = out.Write(data)
	return err
}

func presence(path string) string {
	if _, err := os.Stat(path); err != nil {
		return "not present"
	}
	return "present"
}

// newInitCmd creates the 'config init' command.
func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing configuration file")

	return cmd
}

func runInit(cmd *cobra.Command, force bool) error {
	loader := helpers.ConfigLoader(cmd)

	if _, err := os.Stat(loader.Path()); err == nil && !force {
		return fmt.Errorf("config file %s already exists (use --force to overwrite)", loader.Path())
	}

	if err := loader.Save(config.DefaultConfig()); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", loader.Path())
	return nil
}

// newPathCmd creates the 'config path' command.
func newPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), helpers.ConfigLoader(cmd).Path())
		},
	}
}
