// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// NewRootCommand builds the codebit command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "codebit",
		Short: "Validate CodeBit metadata and read CodeBit directories",
		Long: TitleStyle.Render("codebit") + SubtitleStyle.Render(" - CodeBit metadata validation and directory discovery") + `

A CodeBit is a single source file published with schema.org
SoftwareSourceCode metadata. codebit checks that metadata against the
CodeBit rules, compares two copies of a record, and reads the JSON
directories that list the CodeBits published under a domain.

` + SubtitleStyle.Render("Examples:") + `
  codebit validate record.json               Validate a single record
  codebit compare local.json published.json  Compare two records
  codebit dir validate codebit.json          Validate every directory entry
  codebit dir find codebit.json example.com/a.go --version 1.2
  codebit semver parse v1.02                 Show how a version is read`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			app.loadConfig(cmd.Context())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.SetOut(app.stdout)
	rootCmd.SetErr(app.stderr)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&app.cfgFile, "config", "", "config file (default is $HOME/.config/codebit/config.cue)")

	rootCmd.AddCommand(newValidateCommand(app))
	rootCmd.AddCommand(newCompareCommand(app))
	rootCmd.AddCommand(newDirCommand(app))
	rootCmd.AddCommand(newSemverCommand(app))
	rootCmd.AddCommand(newHashCommand(app))
	rootCmd.AddCommand(newConfigCommand(app))

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute builds the command tree and runs it. This is called by main.main().
func Execute() {
	app := NewApp(Dependencies{})

	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		NewRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(handleError),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// handleError prints errors through fang, except ExitErrors whose command has
// already reported the failure.
func handleError(w io.Writer, styles fang.Styles, err error) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}
