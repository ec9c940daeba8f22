// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/filemeta/codebit/internal/issue"
	"github.com/filemeta/codebit/pkg/codebit"
	"github.com/filemeta/codebit/pkg/directory"
	"github.com/filemeta/codebit/pkg/semver"
	"github.com/filemeta/codebit/pkg/validation"
)

// dirSummary counts directory entries by outcome.
type dirSummary struct {
	total       int
	valid       int
	recommended int
	unusable    int
}

// newDirCommand creates the `codebit dir` command tree.
func newDirCommand(app *App) *cobra.Command {
	dirCmd := &cobra.Command{
		Use:   "dir",
		Short: "Read CodeBit directories",
		Long: `Read CodeBit directories.

A directory is a JSON document with schema.org ItemList metadata whose
item list (itemListElement by default, see directory.item_list_key)
holds one object per published CodeBit version.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	dirCmd.AddCommand(&cobra.Command{
		Use:   "validate <directory.json>",
		Short: "Validate directory metadata and every entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDirValidate(cmd, app, args[0])
		},
	})

	dirCmd.AddCommand(&cobra.Command{
		Use:   "list <directory.json>",
		Short: "List directory entries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDirList(cmd, app, args[0])
		},
	})

	var version string
	findCmd := &cobra.Command{
		Use:   "find <directory.json> <name>",
		Short: "Find the best matching CodeBit in a directory",
		Long: `Find the highest version of a CodeBit that does not exceed --version.

The version is read as a search ceiling: components left out match any
value, so --version 1.2 selects the newest 1.2.x release. Without
--version the newest version is selected. The record is printed as JSON.

Examples:
  codebit dir find codebit.json example.com/tools/a.go
  codebit dir find codebit.json example.com/tools/a.go --version 1.2`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ceiling := semver.Max
			if version != "" {
				ceiling = semver.ParseForSearch(version)
			}
			return runDirFind(cmd, app, args[0], args[1], ceiling)
		},
	}
	findCmd.Flags().StringVar(&version, "version", "", "highest acceptable version (partial versions allowed)")
	dirCmd.AddCommand(findCmd)

	return dirCmd
}

// openDirectory opens a directory file and returns a parser that owns it.
func (a *App) openDirectory(path string) (*directory.Parser, error) {
	f, err := openFile(path)
	if err != nil {
		return nil, err
	}
	opts := append(a.parserOptions(), directory.WithOwnership(true))
	return directory.NewParser(f, opts...), nil
}

// directoryError wraps a parser failure as an actionable error.
func directoryError(path string, err error) error {
	return issue.NewErrorContext().
		WithOperation("read directory").
		WithResource(path).
		WithSuggestion("Check that the file is a JSON object with an item list array").
		WithSuggestion("Use --verbose to see where reading stopped").
		WithIssue(issue.DirectoryMalformedId).
		Wrap(err).
		BuildError()
}

func runDirValidate(cmd *cobra.Command, app *App, path string) error {
	out := cmd.OutOrStdout()
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	p, err := app.openDirectory(path)
	if err != nil {
		return app.reportError(err)
	}
	defer func() { _ = p.Close() }()

	fmt.Fprintln(out, TitleStyle.Render("Directory Validation"))
	fmt.Fprintf(out, "%s Path: %s\n", infoIcon, HighlightStyle.Render(path))
	fmt.Fprintln(out)

	md, err := p.ReadMetadata()
	if err != nil {
		return app.reportError(directoryError(path, err))
	}
	mdRes := md.Validate()
	printResult(out, mdRes, "directory metadata")

	var sum dirSummary
	for rec, err := range p.All() {
		if err != nil {
			return app.reportError(directoryError(path, err))
		}
		sum.total++
		res := rec.Validate()
		switch {
		case res.Severity.Unusable():
			sum.unusable++
		case res.Severity.Failed():
			sum.recommended++
		default:
			sum.valid++
		}
		if res.Severity.Failed() || app.verbose {
			printResult(out, res, entrySubject(rec, sum.total))
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "%d record(s): %s, %s, %s\n",
		sum.total,
		SuccessStyle.Render(fmt.Sprintf("%d valid", sum.valid)),
		WarningStyle.Render(fmt.Sprintf("%d with warnings", sum.recommended)),
		ErrorStyle.Render(fmt.Sprintf("%d unusable", sum.unusable)),
	)

	overall := validation.Result{Severity: mdRes.Severity}
	if sum.unusable > 0 {
		overall.Severity |= validation.FailMandatory
	}
	return app.exitFor(cmd, overall, "validate directory", path, issue.RecordInvalidId)
}

// entrySubject names a directory entry, falling back to its position.
func entrySubject(rec *codebit.Record, index int) string {
	if rec.Name() == "" {
		return fmt.Sprintf("entry %d", index)
	}
	return fmt.Sprintf("entry %d (%s)", index, recordSubject(rec))
}

func runDirList(cmd *cobra.Command, app *App, path string) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	p, err := app.openDirectory(path)
	if err != nil {
		return app.reportError(err)
	}
	defer func() { _ = p.Close() }()

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(SubtitleStyle).
		Headers("NAME", "VERSION", "DATE", "URL").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			return tableCellStyle
		})

	count := 0
	for rec, err := range p.All() {
		if err != nil {
			return app.reportError(directoryError(path, err))
		}
		count++
		t.Row(rec.Name(), rec.Version().String(), rec.DatePublishedRaw(), rec.URL())
	}

	out := cmd.OutOrStdout()
	if count == 0 {
		fmt.Fprintf(out, "%s no entries in %s\n", infoIcon, path)
		return nil
	}
	fmt.Fprintln(out, t.Render())
	return nil
}

func runDirFind(cmd *cobra.Command, app *App, path, name string, ceiling semver.Version) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	p, err := app.openDirectory(path)
	if err != nil {
		return app.reportError(err)
	}
	defer func() { _ = p.Close() }()

	app.logger.Debug("searching directory", "name", name, "ceiling", ceiling)
	rec, err := p.Find(name, ceiling)
	if err != nil {
		return app.reportError(directoryError(path, err))
	}
	if rec == nil {
		cause := fmt.Errorf("no CodeBit named %q", name)
		if !ceiling.Equal(semver.Max) {
			cause = fmt.Errorf("no CodeBit named %q at or below version %s", name, ceiling)
		}
		return app.reportError(issue.NewErrorContext().
			WithOperation("find " + name).
			WithResource(path).
			WithSuggestion("Check the name, including its domain").
			WithSuggestion("Relax --version or omit it to select the newest version").
			WithIssue(issue.RecordNotFoundId).
			Wrap(cause).
			BuildError())
	}

	return writeRecordJSON(cmd.OutOrStdout(), rec)
}

func writeRecordJSON(w io.Writer, rec *codebit.Record) error {
	if err := rec.WriteJSON(w); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	return nil
}

