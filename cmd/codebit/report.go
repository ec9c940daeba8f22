// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/filemeta/codebit/internal/issue"
	"github.com/filemeta/codebit/pkg/validation"
)

// statusLine summarizes a result on one styled line.
func statusLine(res validation.Result, subject string) string {
	switch {
	case res.Severity.Unusable():
		return fmt.Sprintf("%s %s fails mandatory requirements", errorIcon, subject)
	case res.Severity.Failed():
		return fmt.Sprintf("%s %s fails recommended requirements", warningIcon, subject)
	default:
		return fmt.Sprintf("%s %s passes all requirements", successIcon, subject)
	}
}

// printResult writes the status line followed by indented detail lines.
func printResult(w io.Writer, res validation.Result, subject string) {
	fmt.Fprintln(w, statusLine(res, subject))
	for _, line := range res.Details {
		fmt.Fprintf(w, "    %s\n", VerboseStyle.Render(line))
	}
}

// printRecordDump writes a record's text report, indented, for verbose output.
func printRecordDump(w io.Writer, dump string) {
	for line := range strings.Lines(dump) {
		fmt.Fprintf(w, "  %s\n", SubtitleStyle.Render(strings.TrimSuffix(line, "\n")))
	}
	fmt.Fprintln(w)
}

// exitFor converts an unusable result into an exit status of 1. The returned
// error links the catalog issue id; its guidance is shown in verbose mode only,
// since the report itself was already printed.
func (a *App) exitFor(cmd *cobra.Command, res validation.Result, operation, resource string, id issue.Id) error {
	if !res.Severity.Unusable() {
		return nil
	}
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := issue.NewErrorContext().
		WithOperation(operation).
		WithResource(resource).
		WithIssue(id).
		BuildError()
	a.renderIssue(err)
	return &ExitError{Code: 1, Err: err}
}
