// Package constants defines shared configuration constants and defaults.
package constants

var (
	ConfigFile = "config.yaml"

	DefaultDir = ".bix"

	// DefaultOffset is the view and set offset when none is given.
	DefaultOffset = "0x0"

	// DefaultWidth is the number of bytes rendered per row.
	DefaultWidth = 16

	DefaultColor = "auto"

	DefaultFormat = "text"

	// DefaultGrowth is the patch growth policy for offsets past the end of file.
	DefaultGrowth = "reject"

	DefaultLogLevel = "warn"
)
