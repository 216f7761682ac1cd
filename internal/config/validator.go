package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/coral-mesh/bix/internal/patch"
)

// ColorModes lists the accepted view.color values.
var ColorModes = []string{"auto", "always", "never"}

// Formats lists the accepted view.format values.
var Formats = []string{"text", "json", "yaml", "csv", "table"}

// LogLevels lists the accepted log.level values.
var LogLevels = []string{"trace", "debug", "info", "warn", "error"}

// ValidationError represents a single validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// MultiValidationError represents multiple validation errors.
type MultiValidationError struct {
	Errors []ValidationError
}

// Error implements the error interface.
func (e *MultiValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "no validation errors"
	}

	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("validation failed with %d errors:\n", len(e.Errors)))
	for i, err := range e.Errors {
		builder.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return builder.String()
}

// Validate validates Config.
func (c *Config) Validate() error {
	var errors []ValidationError

	if c.Version == "" {
		errors = append(errors, ValidationError{
			Field:   "version",
			Message: "version is required",
		})
	}

	if c.View.Width < 1 {
		errors = append(errors, ValidationError{
			Field:   "view.width",
			Message: fmt.Sprintf("width must be at least 1, got %d", c.View.Width),
		})
	}

	if !slices.Contains(ColorModes, c.View.Color) {
		errors = append(errors, ValidationError{
			Field:   "view.color",
			Message: "color must be one of: " + strings.Join(ColorModes, ", "),
		})
	}

	if !slices.Contains(Formats, c.View.Format) {
		errors = append(errors, ValidationError{
			Field:   "view.format",
			Message: "format must be one of: " + strings.Join(Formats, ", "),
		})
	}

	if _, err := patch.ParseGrowthPolicy(c.Patch.Growth); err != nil {
		errors = append(errors, ValidationError{
			Field:   "patch.growth",
			Message: err.Error(),
		})
	}

	if !slices.Contains(LogLevels, c.Log.Level) {
		errors = append(errors, ValidationError{
			Field:   "log.level",
			Message: "log level must be one of: " + strings.Join(LogLevels, ", "),
		})
	}

	if len(errors) > 0 {
		return &MultiValidationError{Errors: errors}
	}
	return nil
}
