// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/filemeta/codebit/internal/issue"
	"github.com/filemeta/codebit/pkg/codebit"
)

// newValidateCommand creates the `codebit validate` command.
func newValidateCommand(app *App) *cobra.Command {
	var filename string

	cmd := &cobra.Command{
		Use:   "validate <record.json>",
		Short: "Validate a CodeBit record",
		Long: `Validate a CodeBit record stored as a JSON object.

Mandatory failures make the record unusable and set exit status 1.
Recommended failures are reported but do not change the exit status.

With --filename, the last segment of the record's name must match the
given local file name exactly.

Examples:
  codebit validate record.json
  codebit validate record.json --filename a.go`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, app, args[0], filename)
		},
	}

	cmd.Flags().StringVar(&filename, "filename", "", "local file name the record must describe")

	return cmd
}

func runValidate(cmd *cobra.Command, app *App, path, filename string) error {
	out := cmd.OutOrStdout()

	rec, err := app.loadRecord(path)
	if err != nil {
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return app.reportError(err)
	}

	var opts []codebit.ValidateOption
	if filename != "" {
		opts = append(opts, codebit.WithLocalFilename(filename))
	}
	res := rec.Validate(opts...)

	fmt.Fprintf(out, "%s %s\n", infoIcon, HighlightStyle.Render(path))
	if app.verbose {
		printRecordDump(out, rec.String())
	}
	printResult(out, res, recordSubject(rec))

	return app.exitFor(cmd, res, "validate record", path, issue.RecordInvalidId)
}

// recordSubject names a record in status lines.
func recordSubject(rec *codebit.Record) string {
	name := rec.Name()
	if name == "" {
		return "record"
	}
	return fmt.Sprintf("%s %s", HighlightStyle.Render(name), rec.Version())
}
