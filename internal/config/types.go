// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"

	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"

	minMaxDepth = 4
	maxMaxDepth = 4096
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidLogLevel is returned when a LogLevel value is not recognized.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrInvalidDirectoryConfig is returned when directory settings are out of range.
	ErrInvalidDirectoryConfig = errors.New("invalid directory config")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorScheme selects the terminal palette.
	ColorScheme string

	// LogLevel is the minimum level written to stderr.
	LogLevel string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// InvalidLogLevelError is returned when a LogLevel value is not recognized.
	InvalidLogLevelError struct {
		Value LogLevel
	}

	// InvalidDirectoryConfigError describes an unusable directory setting.
	InvalidDirectoryConfigError struct {
		Field  string
		Reason string
	}

	// InvalidConfigError collects every field error of a Config.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// Directory configures directory reading.
		Directory DirectoryConfig `json:"directory" mapstructure:"directory" toml:"directory"`
		// Compare configures record comparison.
		Compare CompareConfig `json:"compare" mapstructure:"compare" toml:"compare"`
		// UI configures the user interface.
		UI UIConfig `json:"ui" mapstructure:"ui" toml:"ui"`
		// Log configures diagnostics on stderr.
		Log LogConfig `json:"log" mapstructure:"log" toml:"log"`

		// Source is the file the configuration was read from, or "" for defaults.
		Source string `json:"-" mapstructure:"-" toml:"-"`
	}

	// DirectoryConfig configures directory reading.
	DirectoryConfig struct {
		// ItemListKey names the array property that lists records.
		ItemListKey string `json:"item_list_key" mapstructure:"item_list_key" toml:"item_list_key"`
		// MaxDepth bounds JSON nesting.
		MaxDepth int `json:"max_depth" mapstructure:"max_depth" toml:"max_depth"`
	}

	// CompareConfig configures record comparison.
	CompareConfig struct {
		// RequireURLMatch makes a URL difference a mandatory mismatch.
		RequireURLMatch bool `json:"require_url_match" mapstructure:"require_url_match" toml:"require_url_match"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// ColorScheme sets the color scheme
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme" toml:"color_scheme"`
		// Verbose enables verbose output
		Verbose bool `json:"verbose" mapstructure:"verbose" toml:"verbose"`
	}

	// LogConfig configures diagnostics.
	LogConfig struct {
		Level LogLevel `json:"level" mapstructure:"level" toml:"level"`
	}
)

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Directory: DirectoryConfig{
			ItemListKey: "itemListElement",
			MaxDepth:    256,
		},
		Compare: CompareConfig{
			RequireURLMatch: false,
		},
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
		},
		Log: LogConfig{
			Level: LogLevelWarn,
		},
	}
}

// IsValid returns whether the Config has valid fields. Values from the
// environment bypass the CUE schema, so the rules are repeated here.
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.Directory.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.UI.ColorScheme.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.Log.Level.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// IsValid returns whether the DirectoryConfig has usable values.
func (c DirectoryConfig) IsValid() (bool, []error) {
	var errs []error
	if strings.TrimSpace(c.ItemListKey) == "" || strings.ContainsAny(c.ItemListKey, " \t\r\n") {
		errs = append(errs, &InvalidDirectoryConfigError{Field: "item_list_key", Reason: "must be a non-empty name without whitespace"})
	}
	if c.MaxDepth < minMaxDepth || c.MaxDepth > maxMaxDepth {
		errs = append(errs, &InvalidDirectoryConfigError{
			Field:  "max_depth",
			Reason: fmt.Sprintf("must be between %d and %d, got %d", minMaxDepth, maxMaxDepth, c.MaxDepth),
		})
	}
	if len(errs) > 0 {
		return false, errs
	}
	return true, nil
}

// String returns the string representation of the ColorScheme.
func (cs ColorScheme) String() string { return string(cs) }

// IsValid returns whether the ColorScheme is one of the defined color schemes,
// and a list of validation errors if it is not.
func (cs ColorScheme) IsValid() (bool, []error) {
	switch cs {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	default:
		return false, []error{&InvalidColorSchemeError{Value: cs}}
	}
}

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string { return string(l) }

// IsValid returns whether the LogLevel is one of the defined levels.
func (l LogLevel) IsValid() (bool, []error) {
	switch l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return true, nil
	default:
		return false, []error{&InvalidLogLevelError{Value: l}}
	}
}

// Error implements the error interface for InvalidColorSchemeError.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// Error implements the error interface for InvalidLogLevelError.
func (e *InvalidLogLevelError) Error() string {
	return fmt.Sprintf("invalid log level %q (valid: debug, info, warn, error)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidLogLevelError) Unwrap() error { return ErrInvalidLogLevel }

// Error implements the error interface for InvalidDirectoryConfigError.
func (e *InvalidDirectoryConfigError) Error() string {
	return fmt.Sprintf("directory.%s %s", e.Field, e.Reason)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidDirectoryConfigError) Unwrap() error { return ErrInvalidDirectoryConfig }

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	msgs := make([]string, len(e.FieldErrors))
	for i, err := range e.FieldErrors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("invalid config: %s", strings.Join(msgs, "; "))
}

// Unwrap returns ErrInvalidConfig followed by the field errors.
func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}
