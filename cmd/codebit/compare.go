// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/filemeta/codebit/internal/issue"
	"github.com/filemeta/codebit/pkg/codebit"
	"github.com/filemeta/codebit/pkg/validation"
)

// newCompareCommand creates the `codebit compare` command.
func newCompareCommand(app *App) *cobra.Command {
	var (
		labelA     string
		labelB     string
		requireURL bool
		allowDrift bool
	)

	cmd := &cobra.Command{
		Use:   "compare <a.json> <b.json>",
		Short: "Compare two copies of a CodeBit record",
		Long: `Compare two copies of a CodeBit record, typically the metadata embedded
in a local file against the entry published in a directory.

Differences in type, name, hash or version are mandatory mismatches and set
exit status 1. Other differences are reported as warnings. A URL difference
is mandatory only with --require-url (or compare.require_url_match).
With --allow-version-drift a version difference is only a warning.

Examples:
  codebit compare local.json published.json
  codebit compare a.json b.json --label-a local --label-b directory`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("require-url") {
				requireURL = app.cfg.Compare.RequireURLMatch
			}
			if labelA == "" {
				labelA = filepath.Base(args[0])
			}
			if labelB == "" {
				labelB = filepath.Base(args[1])
			}
			return runCompare(cmd, app, compareRequest{
				pathA: args[0], pathB: args[1],
				labelA: labelA, labelB: labelB,
				requireURL: requireURL, allowDrift: allowDrift,
			})
		},
	}

	cmd.Flags().StringVar(&labelA, "label-a", "", "label for the first record in messages (default: file name)")
	cmd.Flags().StringVar(&labelB, "label-b", "", "label for the second record in messages (default: file name)")
	cmd.Flags().BoolVar(&requireURL, "require-url", false, "treat a URL difference as a mandatory mismatch")
	cmd.Flags().BoolVar(&allowDrift, "allow-version-drift", false, "report a version difference as a warning only")

	return cmd
}

// compareRequest captures the inputs of one compare invocation.
type compareRequest struct {
	pathA, pathB   string
	labelA, labelB string
	requireURL     bool
	allowDrift     bool
}

func runCompare(cmd *cobra.Command, app *App, req compareRequest) error {
	out := cmd.OutOrStdout()
	cmd.SilenceUsage = true

	a, err := app.loadRecord(req.pathA)
	if err != nil {
		cmd.SilenceErrors = true
		return app.reportError(err)
	}
	b, err := app.loadRecord(req.pathB)
	if err != nil {
		cmd.SilenceErrors = true
		return app.reportError(err)
	}

	app.logger.Debug("comparing records", "a", req.labelA, "b", req.labelB, "require_url", req.requireURL)
	res := compareRecords(a, b, req)

	fmt.Fprintf(out, "%s %s vs %s\n", infoIcon, HighlightStyle.Render(req.labelA), HighlightStyle.Render(req.labelB))
	switch {
	case res.Severity.Unusable():
		fmt.Fprintf(out, "%s records do not match\n", errorIcon)
	case res.Severity.Failed():
		fmt.Fprintf(out, "%s records match with differences\n", warningIcon)
	default:
		fmt.Fprintf(out, "%s records match\n", successIcon)
	}
	for _, line := range res.Details {
		fmt.Fprintf(out, "    %s\n", VerboseStyle.Render(line))
	}

	return app.exitFor(cmd, res, "compare records", req.labelA+" vs "+req.labelB, issue.RecordMismatchId)
}

// compareRecords applies the strict comparison, or with allowDrift, the strict
// comparison on everything but the version plus a drift warning.
func compareRecords(a, b *codebit.Record, req compareRequest) validation.Result {
	if !req.allowDrift {
		return a.CompareTo(b, req.labelA, req.labelB, req.requireURL)
	}

	aligned := b.Clone()
	aligned.Set(codebit.KeyVersion, a.Value(codebit.KeyVersion))

	var rep validation.Report
	rep.Merge(a.CompareTo(aligned, req.labelA, req.labelB, req.requireURL))
	rep.Merge(codebit.VersionDrift(a, b, req.labelA, req.labelB))
	return rep.Result()
}
