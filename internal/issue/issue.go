// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

type (
	// Id identifies a catalog issue.
	Id int

	// MarkdownMsg is guidance text in Markdown.
	MarkdownMsg string

	// HttpLink is a documentation URL.
	HttpLink string

	// Issue is one entry of the catalog.
	Issue struct {
		id       Id
		mdMsg    MarkdownMsg
		docLinks []HttpLink
	}
)

const (
	FileNotFoundId Id = iota + 1
	RecordMalformedId
	DirectoryMalformedId
	RecordNotFoundId
	RecordInvalidId
	RecordMismatchId
	InvalidVersionId
	ConfigLoadFailedId
)

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

// Render renders the guidance for the terminal using the named Glamour style
// ("dark", "light", "notty", ...).
func (i *Issue) Render(stylePath string) (string, error) {
	var md strings.Builder
	md.WriteString(string(i.mdMsg))
	if len(i.docLinks) > 0 {
		md.WriteString("\n\n## See also\n")
		for _, link := range i.docLinks {
			md.WriteString("- <" + string(link) + ">\n")
		}
	}
	return render(md.String(), stylePath)
}

var (
	render = glamour.Render

	specLink HttpLink = "https://FileMeta.org/CodeBit"

	fileNotFoundIssue = &Issue{
		id: FileNotFoundId,
		mdMsg: `
# File not found!

The file you asked for does not exist or cannot be read.

## Things you can try:
- Check the path for typos
- Make sure the file is readable by your user`,
	}

	recordMalformedIssue = &Issue{
		id: RecordMalformedId,
		mdMsg: `
# Record could not be read!

A CodeBit record must be a single JSON object whose properties are strings or
arrays of strings.

## Example record:
~~~json
{
  "@type": "SoftwareSourceCode",
  "name": "example.com/tools/a.go",
  "version": "1.2.3",
  "url": "https://example.com/tools/a.go",
  "keywords": ["CodeBit"]
}
~~~`,
		docLinks: []HttpLink{specLink},
	}

	directoryMalformedIssue = &Issue{
		id: DirectoryMalformedId,
		mdMsg: `
# Directory could not be read!

A CodeBit directory is a JSON object with an ` + "`itemListElement`" + ` array of records.
Reading stopped at the first structural fault; records before it were read.

## Things you can try:
- Validate the document with a JSON linter
- Check that the item list is an array of objects
- Pass ` + "`--item-list-key`" + ` if the directory uses a different property name`,
		docLinks: []HttpLink{specLink},
	}

	recordNotFoundIssue = &Issue{
		id: RecordNotFoundId,
		mdMsg: `
# No matching directory entry!

The directory has no record with that name at or below the requested version.

## Things you can try:
- Names are case sensitive and include the domain: ` + "`example.com/path/file.ext`" + `
- Relax the version: ` + "`--version 1`" + ` accepts any 1.x.y
- List the directory with ` + "`codebit dir list`",
	}

	recordInvalidIssue = &Issue{
		id: RecordInvalidId,
		mdMsg: `
# Record failed mandatory rules!

The record cannot be used as a CodeBit. The report above lists every failed
rule; lines marked as warnings are recommendations only.

## Mandatory properties:
- ` + "`name`" + `: a domain name followed by a file path
- ` + "`version`" + `: a semantic version
- ` + "`url`" + `: an absolute http or https URL
- ` + "`keywords`" + `: must include ` + "`CodeBit`",
		docLinks: []HttpLink{specLink},
	}

	recordMismatchIssue = &Issue{
		id: RecordMismatchId,
		mdMsg: `
# Records do not match!

The two records differ in a property that must be identical: type, name,
version, content hash, or URL when ` + "`--require-url`" + ` is set.

## Things you can try:
- Recompute the hash with ` + "`codebit hash <file>`" + `
- Update the local copy to the published version`,
	}

	invalidVersionIssue = &Issue{
		id: InvalidVersionId,
		mdMsg: `
# Invalid semantic version!

Versions take the form ` + "`MAJOR.MINOR.PATCH[-PRERELEASE][+BUILD]`" + `.`,
		docLinks: []HttpLink{"https://semver.org"},
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Configuration could not be loaded!

## Things you can try:
- Check the file for CUE syntax errors
- Compare it with the output of ` + "`codebit config show`" + `
- Remove the file to fall back to the defaults`,
	}

	issues = []*Issue{
		fileNotFoundIssue,
		recordMalformedIssue,
		directoryMalformedIssue,
		recordNotFoundIssue,
		recordInvalidIssue,
		recordMismatchIssue,
		invalidVersionIssue,
		configLoadFailedIssue,
	}
)

// Values returns every catalog issue ordered by Id.
func Values() []*Issue {
	return slices.Clone(issues)
}

// Get returns the issue with the given Id, or nil.
func Get(id Id) *Issue {
	i, found := slices.BinarySearchFunc(issues, id, func(is *Issue, id Id) int {
		return int(is.id - id)
	})
	if !found {
		return nil
	}
	return issues[i]
}
