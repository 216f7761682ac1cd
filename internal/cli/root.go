// Package cli wires the bix command tree.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	configcmd "github.com/coral-mesh/bix/internal/cli/config"
	"github.com/coral-mesh/bix/internal/cli/set"
	"github.com/coral-mesh/bix/internal/cli/view"
	"github.com/coral-mesh/bix/internal/constants"
	"github.com/coral-mesh/bix/pkg/version"
)

// NewRootCmd builds the bix command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bix",
		Short: "bix - view and patch binary files",
		Long: `Inspect binary files as hex dumps and overwrite bytes in place.

  bix view FILE      Print a byte range as address, hex and ASCII columns
  bix set FILE B...  Overwrite bytes at an offset without truncating the file`,
		Version:       version.Short(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("config", "", "Path to the config file (default ~/.bix/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", constants.DefaultLogLevel, "Log level (trace, debug, info, warn, error)")

	rootCmd.AddCommand(view.NewViewCmd())
	rootCmd.AddCommand(set.NewSetCmd())
	rootCmd.AddCommand(configcmd.NewConfigCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "bix version %s\n", version.Version)
			_, _ = fmt.Fprintf(out, "Git commit: %s\n", version.GitCommit)
			_, _ = fmt.Fprintf(out, "Build date: %s\n", version.BuildDate)
			_, _ = fmt.Fprintf(out, "Go version: %s\n", version.GoVersion)
		},
	}
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
