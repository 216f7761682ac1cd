// Package view implements the 'bix view' command.
package view

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/coral-mesh/bix/internal/binfile"
	"github.com/coral-mesh/bix/internal/cli/helpers"
	"github.com/coral-mesh/bix/internal/config"
	"github.com/coral-mesh/bix/internal/errors"
	"github.com/coral-mesh/bix/internal/hexview"
	"github.com/coral-mesh/bix/internal/parse"
)

var supportedFormats = []helpers.OutputFormat{
	helpers.FormatText,
	helpers.FormatTable,
	helpers.FormatJSON,
	helpers.FormatYAML,
	helpers.FormatCSV,
}

type options struct {
	offset  string
	number  string
	width   int
	noGroup bool
	noAddr  bool
	noASCII bool
	raw     bool
	format  string
	color   string
}

// NewViewCmd creates the view command.
func NewViewCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "view FILE",
		Short: "Print the hexadecimal representation of a file",
		Long: `Print a byte range of a file as rows of address, hex and ASCII columns.

Defaults for width, columns, color and format are read from the config file
(~/.bix/config.yaml) and BIX_* environment variables. Flags win over both.`,
		Example: `  bix view firmware.bin
  bix view firmware.bin -o 0x10 -n 256
  bix view firmware.bin -w 8 --no-ascii
  bix view firmware.bin --raw
  bix view firmware.bin -n 64 -f json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], &opts)
		},
	}

	helpers.AddOffsetFlag(cmd, &opts.offset)
	cmd.Flags().StringVarP(&opts.number, "number", "n", "", "Number of bytes to print from the offset (default: rest of file)")
	cmd.Flags().IntVarP(&opts.width, "width", "w", 0, "Number of bytes per row (default 16)")
	cmd.Flags().BoolVar(&opts.noGroup, "no-group", false, "Do not separate the two halves of a row")
	cmd.Flags().BoolVar(&opts.noAddr, "no-addr", false, "Do not print the address column")
	cmd.Flags().BoolVar(&opts.noASCII, "no-ascii", false, "Do not print the ASCII column")
	cmd.Flags().BoolVar(&opts.raw, "raw", false, "Print a flat hex stream (same as --no-addr --no-group --no-ascii)")
	helpers.AddFormatFlag(cmd, &opts.format, helpers.FormatText, supportedFormats)
	helpers.AddColorFlag(cmd, &opts.color, config.ColorModes)

	return cmd
}

func run(cmd *cobra.Command, path string, opts *options) error {
	cfg, err := helpers.LoadConfig(cmd)
	if err != nil {
		return err
	}
	if err := helpers.FillUnchanged(cmd.Flags(), map[string]string{
		"width":    strconv.Itoa(cfg.View.Width),
		"no-group": strconv.FormatBool(cfg.View.NoGroup),
		"no-addr":  strconv.FormatBool(cfg.View.NoAddr),
		"no-ascii": strconv.FormatBool(cfg.View.NoASCII),
		"format":   cfg.View.Format,
		"color":    cfg.View.Color,
	}); err != nil {
		return err
	}

	logger := helpers.NewLogger(cmd, cfg)

	if err := helpers.ValidateFormat(opts.format, supportedFormats); err != nil {
		return err
	}

	offset, err := parse.Offset(opts.offset)
	if err != nil {
		return err
	}

	length := binfile.ToEnd
	if opts.number != "" {
		n, err := parse.Offset(opts.number)
		if err != nil {
			return fmt.Errorf("invalid number of bytes: %w", err)
		}
		if n > math.MaxInt32 {
			return fmt.Errorf("number of bytes %d exceeds the maximum of %d", n, math.MaxInt32)
		}
		length = int(n)
	}

	layout, err := hexview.LayoutFromFlags(opts.width, opts.noGroup, opts.noAddr, opts.noASCII, opts.raw)
	if err != nil {
		return err
	}

	src, err := binfile.OpenSource(path)
	if err != nil {
		return err
	}
	defer errors.DeferClose(logger, src, "failed to close source file")

	win, err := src.ReadWindow(offset, length)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	logger.Debug().
		Str("file", path).
		Uint64("offset", offset).
		Int("bytes", win.Len()).
		Int("width", layout.Width).
		Bool("raw", layout.IsRaw()).
		Msg("Rendering window")

	out := cmd.OutOrStdout()
	renderer := hexview.NewRenderer(layout)

	if opts.format != string(helpers.FormatText) {
		formatter, err := helpers.NewFormatter(helpers.OutputFormat(opts.format))
		if err != nil {
			return err
		}
		return formatter.Format(records(renderer, win), out)
	}

	if useColor(opts.color, out) {
		return renderStyled(out, renderer, win, opts.color == "always")
	}
	return renderer.Render(out, win)
}

// record is the machine-readable form of a row.
type record struct {
	Address string `json:"address" yaml:"address" header:"ADDRESS"`
	Hex     string `json:"hex" yaml:"hex" header:"HEX"`
	ASCII   string `json:"ascii,omitempty" yaml:"ascii,omitempty" header:"ASCII"`
}

// records converts win into one record per row, or a single record covering
// the whole window in raw mode. ASCII is left empty when the layout hides it.
func records(r *hexview.Renderer, win hexview.Window) []record {
	layout := r.Layout()
	width := layout.Width
	if layout.IsRaw() {
		width = max(win.Len(), 1)
	}

	out := []record{}
	for row := range hexview.Rows(win, width) {
		rec := record{
			Address: fmt.Sprintf("0x%08X", row.Address),
			Hex:     strings.TrimSpace(hexview.Hex(row)),
		}
		if mode, ok := layout.Mode.(hexview.Structured); ok && mode.ASCII {
			rec.ASCII = string(row.ASCII)
		}
		out = append(out, rec)
	}
	return out
}
