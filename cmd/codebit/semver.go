// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/filemeta/codebit/internal/issue"
	"github.com/filemeta/codebit/pkg/semver"
)

// newSemverCommand creates the `codebit semver` command tree.
func newSemverCommand(app *App) *cobra.Command {
	semverCmd := &cobra.Command{
		Use:   "semver",
		Short: "Inspect semantic versions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	var strict bool
	parseCmd := &cobra.Command{
		Use:   "parse <version>...",
		Short: "Show how versions are read",
		Long: `Show the canonical form and conformance level of each version.

Imperfect versions such as "v1.02" are read tolerantly and reported with
a warning per deviation. Exit status is 1 when any version is invalid, or
with --strict, when any version is not fully valid.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSemverParse(cmd, args, strict)
		},
	}
	parseCmd.Flags().BoolVar(&strict, "strict", false, "fail on tolerable versions too")
	semverCmd.AddCommand(parseCmd)

	semverCmd.AddCommand(&cobra.Command{
		Use:   "compare <a> <b>",
		Short: "Compare two versions by precedence",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSemverCompare(cmd, app, args[0], args[1])
		},
	})

	return semverCmd
}

func runSemverParse(cmd *cobra.Command, inputs []string, strict bool) error {
	out := cmd.OutOrStdout()
	failed := false

	for _, input := range inputs {
		level, v, diags := semver.TryParse(input)

		var icon string
		switch level {
		case semver.Valid:
			icon = successIcon
		case semver.Tolerable:
			icon = warningIcon
			failed = failed || strict
		default:
			icon = errorIcon
			failed = true
		}

		if level == semver.Invalid {
			fmt.Fprintf(out, "%s %q %s\n", icon, input, SubtitleStyle.Render("("+level.String()+")"))
		} else {
			fmt.Fprintf(out, "%s %q -> %s %s\n", icon, input, HighlightStyle.Render(v.String()), SubtitleStyle.Render("("+level.String()+")"))
		}
		for _, d := range diags {
			fmt.Fprintf(out, "    %s\n", VerboseStyle.Render(d))
		}
	}

	if failed {
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return &ExitError{Code: 1}
	}
	return nil
}

func runSemverCompare(cmd *cobra.Command, app *App, a, b string) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	va, err := parseVersionArg(a)
	if err != nil {
		return app.reportError(err)
	}
	vb, err := parseVersionArg(b)
	if err != nil {
		return app.reportError(err)
	}

	op := "="
	switch c := semver.Compare(va, vb); {
	case c < 0:
		op = "<"
	case c > 0:
		op = ">"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", HighlightStyle.Render(va.String()), op, HighlightStyle.Render(vb.String()))
	return nil
}

func parseVersionArg(s string) (semver.Version, error) {
	v, err := semver.Parse(s)
	if err != nil {
		return semver.Zero, issue.NewErrorContext().
			WithOperation("parse version").
			WithResource(s).
			WithSuggestion("Use the form MAJOR.MINOR.PATCH, optionally followed by -PRERELEASE and +BUILD").
			WithIssue(issue.InvalidVersionId).
			Wrap(err).
			BuildError()
	}
	return v, nil
}
