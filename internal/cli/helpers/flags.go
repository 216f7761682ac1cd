package helpers

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/coral-mesh/bix/internal/constants"
)

// AddFormatFlag adds a standard --format/-f flag to a command.
func AddFormatFlag(cmd *cobra.Command, formatVar *string, defaultFormat OutputFormat, supportedFormats []OutputFormat) {
	formatNames := make([]string, len(supportedFormats))
	for i, f := range supportedFormats {
		formatNames[i] = string(f)
	}

	description := fmt.Sprintf("Output format (%s)", strings.Join(formatNames, ", "))
	cmd.Flags().StringVarP(formatVar, "format", "f", string(defaultFormat), description)

	_ = cmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return formatNames, cobra.ShellCompDirectiveNoFileComp
	})
}

// AddOffsetFlag adds a standard --offset/-o flag. Offsets are hexadecimal
// with a 0x prefix, or decimal.
func AddOffsetFlag(cmd *cobra.Command, offsetVar *string) {
	cmd.Flags().StringVarP(offsetVar, "offset", "o", constants.DefaultOffset, "Offset in the file, hexadecimal with 0x prefix or decimal (e.g. 0x10, 16)")
}

// AddColorFlag adds a standard --color flag.
func AddColorFlag(cmd *cobra.Command, colorVar *string, modes []string) {
	cmd.Flags().StringVar(colorVar, "color", constants.DefaultColor, fmt.Sprintf("Colorize output (%s)", strings.Join(modes, ", ")))

	_ = cmd.RegisterFlagCompletionFunc("color", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return modes, cobra.ShellCompDirectiveNoFileComp
	})
}

// ValidateFormat checks if the format is in the supported list.
func ValidateFormat(format string, supported []OutputFormat) error {
	if slices.Contains(supported, OutputFormat(format)) {
		return nil
	}

	supportedNames := make([]string, len(supported))
	for i, s := range supported {
		supportedNames[i] = string(s)
	}

	return fmt.Errorf("unsupported format %q, must be one of: %s",
		format, strings.Join(supportedNames, ", "))
}

// FillUnchanged assigns configured values to the named flags that were not
// given on the command line. Flags that were set explicitly keep their value
// and stay the only ones reported as changed.
func FillUnchanged(flags *pflag.FlagSet, values map[string]string) error {
	for name, value := range values {
		f := flags.Lookup(name)
		if f == nil || f.Changed {
			continue
		}
		if err := f.Value.Set(value); err != nil {
			return fmt.Errorf("invalid configured value %q for --%s: %w", value, name, err)
		}
	}
	return nil
}
