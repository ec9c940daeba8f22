// SPDX-License-Identifier: MPL-2.0

// Package config handles codebit configuration using Viper with CUE as the file format.
//
// Configuration is loaded from ~/.config/codebit/config.cue (or the XDG equivalent on
// Linux, ~/Library/Application Support/codebit/config.cue on macOS, and
// %APPDATA%\codebit\config.cue on Windows), falling back to ./config.cue. Every key can
// be overridden from the environment with the CODEBIT_ prefix, e.g.
// CODEBIT_DIRECTORY_MAX_DEPTH=64.
//
// Files are validated against the embedded CUE schema (config_schema.cue) before they
// are merged over the defaults.
package config
