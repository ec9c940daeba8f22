// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/filemeta/codebit/internal/config"
	"github.com/filemeta/codebit/internal/issue"
	"github.com/filemeta/codebit/pkg/codebit"
	"github.com/filemeta/codebit/pkg/directory"
)

type (
	// App wires CLI services and shared dependencies. Command handlers receive an
	// App reference; per-invocation state (configuration, logger) is filled in by
	// the root command before any subcommand runs.
	App struct {
		Config ConfigProvider
		stdout io.Writer
		stderr io.Writer

		verbose bool
		cfgFile string
		cfg     *config.Config
		logger  *log.Logger
	}

	// Dependencies defines the injection points for building an App. Nil fields are
	// replaced with production defaults by NewApp.
	Dependencies struct {
		Config ConfigProvider
		Stdout io.Writer
		Stderr io.Writer
	}

	// ConfigProvider loads configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) *App {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}

	return &App{
		Config: deps.Config,
		stdout: deps.Stdout,
		stderr: deps.Stderr,
		cfg:    config.DefaultConfig(),
		logger: log.New(io.Discard),
	}
}

// loadConfig reads the effective configuration and derives the logger from
// it. Load failures are reported as warnings and defaults are used instead.
func (a *App) loadConfig(ctx context.Context) {
	cfg, err := a.Config.Load(ctx, config.LoadOptions{ConfigFilePath: a.cfgFile})
	if err != nil {
		fmt.Fprintln(a.stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, a.verbose))
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	a.cfg = cfg

	// Apply verbose from config if not set via flag
	if !a.verbose {
		a.verbose = cfg.UI.Verbose
	}

	applyColorScheme(cfg.UI.ColorScheme)
	a.logger = newLogger(a.stderr, cfg.Log.Level, a.verbose)
	a.logger.Debug("configuration loaded", "source", sourceLabel(cfg.Source))
}

// newLogger builds the stderr logger. Verbose mode lowers the level to debug.
func newLogger(w io.Writer, level config.LogLevel, verbose bool) *log.Logger {
	lvl, err := log.ParseLevel(level.String())
	if err != nil {
		lvl = log.WarnLevel
	}
	if verbose {
		lvl = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: config.AppName,
		Level:  lvl,
	})
}

// parserOptions returns the directory parser options derived from configuration.
func (a *App) parserOptions() []directory.Option {
	return []directory.Option{
		directory.WithItemListKey(a.cfg.Directory.ItemListKey),
		directory.WithMaxDepth(a.cfg.Directory.MaxDepth),
		directory.WithLogger(a.logger),
	}
}

// openFile opens path for reading, mapping failures to an actionable error.
func openFile(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("open file").
			WithResource(path).
			WithSuggestion("Verify the file path is correct").
			WithSuggestion("Check that the file exists and is readable").
			WithIssue(issue.FileNotFoundId).
			Wrap(err).
			BuildError()
	}
	return f, nil
}

// loadRecord decodes a single CodeBit record stored as a JSON object.
func (a *App) loadRecord(path string) (*codebit.Record, error) {
	f, err := openFile(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	rec, err := directory.DecodeRecord(f, directory.WithMaxDepth(a.cfg.Directory.MaxDepth), directory.WithLogger(a.logger))
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("read record").
			WithResource(path).
			WithSuggestion("Check that the file holds a single JSON object").
			WithIssue(issue.RecordMalformedId).
			Wrap(err).
			BuildError()
	}
	a.logger.Debug("record loaded", "path", path, "name", rec.Name())
	return rec, nil
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// reportError prints err and, in verbose mode, the catalog guidance linked to
// it. The returned ExitError keeps Cobra from printing err a second time.
func (a *App) reportError(err error) error {
	fmt.Fprintf(a.stderr, "%s %s\n", errorIcon, formatErrorForDisplay(err, a.verbose))
	a.renderIssue(err)
	return &ExitError{Code: 1, Err: err}
}

// renderIssue writes the catalog guidance linked to err in verbose mode.
func (a *App) renderIssue(err error) {
	if !a.verbose {
		return
	}
	if iss := issue.IssueOf(err); iss != nil {
		if rendered, renderErr := iss.Render(glamourStyle(a.cfg.UI.ColorScheme)); renderErr == nil {
			fmt.Fprint(a.stderr, rendered)
		}
	}
}

func sourceLabel(source string) string {
	if source == "" {
		return "(defaults)"
	}
	return source
}
