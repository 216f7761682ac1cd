// Package set implements the 'bix set' command.
package set

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/coral-mesh/bix/internal/binfile"
	"github.com/coral-mesh/bix/internal/cli/helpers"
	"github.com/coral-mesh/bix/internal/errors"
	"github.com/coral-mesh/bix/internal/parse"
	"github.com/coral-mesh/bix/internal/patch"
)

type options struct {
	offset string
	grow   bool
	verify bool
}

// NewSetCmd creates the set command.
func NewSetCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "set FILE BYTE...",
		Short: "Overwrite bytes at an offset in a file",
		Long: `Overwrite bytes of an existing file in place, starting at --offset.

Bytes are given as hexadecimal tokens of one or two digits. The file is never
created or truncated. Offsets past the end of the file are rejected unless
--grow is set (or patch.growth is "zero-fill" in the config), in which case
the gap is filled with zeros.

There is no rollback: if a write fails partway, the bytes already written
stay written and the error reports how many there were.`,
		Example: `  bix set firmware.bin AA DD CC BA -o 0x10
  bix set firmware.bin 90 90 --offset 4096 --verify`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], args[1:], &opts)
		},
	}

	helpers.AddOffsetFlag(cmd, &opts.offset)
	cmd.Flags().BoolVar(&opts.grow, "grow", false, "Allow offsets past the end of the file, zero-filling the gap")
	cmd.Flags().BoolVar(&opts.verify, "verify", false, "Read the written bytes back and compare them with the payload")

	return cmd
}

func run(cmd *cobra.Command, path string, tokens []string, opts *options) error {
	cfg, err := helpers.LoadConfig(cmd)
	if err != nil {
		return err
	}
	logger := helpers.NewLogger(cmd, cfg)

	configured, err := patch.ParseGrowthPolicy(cfg.Patch.Growth)
	if err != nil {
		return err
	}
	if err := helpers.FillUnchanged(cmd.Flags(), map[string]string{
		"grow":   strconv.FormatBool(configured == patch.GrowthZeroFill),
		"verify": strconv.FormatBool(cfg.Patch.Verify),
	}); err != nil {
		return err
	}

	growth := patch.GrowthReject
	if opts.grow {
		growth = patch.GrowthZeroFill
	}

	offset, err := parse.Offset(opts.offset)
	if err != nil {
		return err
	}

	payload, err := parse.Bytes(tokens)
	if err != nil {
		return err
	}

	req, err := patch.NewRequest(offset, payload)
	if err != nil {
		return err
	}

	sink, err := binfile.OpenSink(path)
	if err != nil {
		return err
	}
	defer errors.DeferClose(logger, sink, "failed to close patched file")

	patcher := patch.New(logger, patch.WithGrowth(growth), patch.WithVerify(opts.verify))
	res, err := patcher.Apply(sink, req)
	if err != nil {
		return fmt.Errorf("failed to patch %s: %w", path, err)
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "Wrote %d bytes at 0x%X\n", res.Written, res.Offset)
	if opts.verify {
		_, _ = fmt.Fprintf(out, "Verified (xxh3 %016x)\n", res.Digest)
	}
	if res.Grew {
		logger.Info().Str("file", path).Msg("File was extended")
	}
	return nil
}
