// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/filemeta/codebit/internal/issue"
	"github.com/filemeta/codebit/pkg/codebit"
)

// newHashCommand creates the `codebit hash` command.
func newHashCommand(app *App) *cobra.Command {
	var recordPath string

	cmd := &cobra.Command{
		Use:   "hash <file>...",
		Short: "Compute CodeBit content hashes",
		Long: `Compute the CodeBit content hash of each file: SHA-256 over the content
with CRLF line endings read as LF, printed as "SHA256:" and upper-case hex.

With --record, the single file's hash must equal the record's hash
property; a mismatch sets exit status 1.

Examples:
  codebit hash a.go
  codebit hash a.go --record a.codebit.json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if recordPath != "" && len(args) != 1 {
				return fmt.Errorf("--record needs exactly one file, got %d", len(args))
			}
			return runHash(cmd, app, args, recordPath)
		},
	}

	cmd.Flags().StringVar(&recordPath, "record", "", "record whose hash property the file must match")

	return cmd
}

func runHash(cmd *cobra.Command, app *App, paths []string, recordPath string) error {
	out := cmd.OutOrStdout()
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	hashes := make([]string, 0, len(paths))
	for _, path := range paths {
		sum, err := hashFile(path)
		if err != nil {
			return app.reportError(err)
		}
		hashes = append(hashes, sum)
		fmt.Fprintf(out, "%s  %s\n", sum, path)
	}

	if recordPath == "" {
		return nil
	}

	rec, err := app.loadRecord(recordPath)
	if err != nil {
		return app.reportError(err)
	}
	if rec.Hash() == hashes[0] {
		fmt.Fprintf(out, "%s hash matches %s\n", successIcon, HighlightStyle.Render(recordPath))
		return nil
	}
	return app.reportError(issue.NewErrorContext().
		WithOperation("verify hash").
		WithResource(paths[0]).
		WithSuggestion("Republish the record with the new hash if the file changed intentionally").
		WithIssue(issue.RecordMismatchId).
		Wrap(fmt.Errorf("record hash %q does not match content hash %q", rec.Hash(), hashes[0])).
		BuildError())
}

func hashFile(path string) (string, error) {
	f, err := openFile(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	sum, err := codebit.HashNormalizedEOL(f)
	if err != nil {
		return "", fmt.Errorf("failed to hash %s: %w", path, err)
	}
	return sum, nil
}
