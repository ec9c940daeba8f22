// SPDX-License-Identifier: MPL-2.0

// Package codebit models CodeBit metadata: a named, versioned description of a
// single distributable source file addressable by a canonical URL.
//
// A Record is a metadata.Record with typed accessors for the well-known
// properties. Validate grades a record against the CodeBit rules and CompareTo
// grades the consistency of two records, for example a local copy against its
// directory entry. Neither mutates the records involved.
package codebit

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/filemeta/codebit/pkg/metadata"
	"github.com/filemeta/codebit/pkg/semver"
)

// Well-known property names.
const (
	KeyAtType        = "@type"
	KeyUnderType     = "_type"
	KeyName          = "name"
	KeyVersion       = "version"
	KeyURL           = "url"
	KeyKeywords      = "keywords"
	KeyDatePublished = "datePublished"
	KeyAuthor        = "author"
	KeyDescription   = "description"
	KeyLicense       = "license"
	KeyHash          = "hash"
)

const (
	// KeywordCodeBit must appear in keywords for a record to be a CodeBit.
	KeywordCodeBit = "CodeBit"
	// TypeSoftwareSourceCode is the linked-data type of a CodeBit.
	TypeSoftwareSourceCode = "SoftwareSourceCode"
)

// ErrNoDomain is returned by DomainName when the name has no domain separator.
var ErrNoDomain = errors.New("codebit name has no domain")

var standardKeys = []string{
	KeyUnderType, KeyAtType, KeyName, KeyVersion, KeyURL, KeyKeywords,
	KeyDatePublished, KeyAuthor, KeyDescription, KeyLicense, KeyHash,
}

// Record is CodeBit metadata. The zero value is an empty record.
type Record struct {
	metadata.Record
}

// New returns an empty Record.
func New() *Record {
	return &Record{}
}

// IsStandardKey reports whether key is one of the well-known CodeBit properties.
func IsStandardKey(key string) bool {
	return slices.Contains(standardKeys, key)
}

// AtType returns the linked-data type. "@type" is used by directories and
// "_type" by tags embedded in source files; "@type" wins when both are present.
func (r *Record) AtType() string {
	if v := r.Value(KeyAtType); v != "" {
		return v
	}
	return r.Value(KeyUnderType)
}

// SetAtType stores the type under "@type" and drops any "_type" value.
func (r *Record) SetAtType(v string) {
	r.Set(KeyAtType, v)
	r.Remove(KeyUnderType)
}

// typeValues returns the values of whichever type key AtType reads from.
func (r *Record) typeValues() []string {
	if r.Has(KeyAtType) {
		return r.Values(KeyAtType)
	}
	return r.Values(KeyUnderType)
}

// Name returns the CodeBit name: a domain followed by a file path.
func (r *Record) Name() string { return r.Value(KeyName) }

// SetName sets the name.
func (r *Record) SetName(v string) { r.Set(KeyName, v) }

// URL returns the canonical download URL.
func (r *Record) URL() string { return r.Value(KeyURL) }

// SetURL sets the URL.
func (r *Record) SetURL(v string) { r.Set(KeyURL, v) }

// Author returns the author, or "".
func (r *Record) Author() string { return r.Value(KeyAuthor) }

// Description returns the description, or "".
func (r *Record) Description() string { return r.Value(KeyDescription) }

// License returns the license URL, or "".
func (r *Record) License() string { return r.Value(KeyLicense) }

// Hash returns the content hash, or "". See HashNormalizedEOL.
func (r *Record) Hash() string { return r.Value(KeyHash) }

// SetHash sets the content hash.
func (r *Record) SetHash(v string) { r.Set(KeyHash, v) }

// Keywords returns a copy of the keywords.
func (r *Record) Keywords() []string { return r.Values(KeyKeywords) }

// DatePublishedRaw returns the publication date as stored.
func (r *Record) DatePublishedRaw() string { return r.Value(KeyDatePublished) }

// DatePublished returns the publication date, or the zero time when it is
// absent or unparsable.
func (r *Record) DatePublished() time.Time { return r.DateValue(KeyDatePublished) }

// SetDatePublished stores t in canonical form. A zero time removes the property.
func (r *Record) SetDatePublished(t time.Time) { r.SetDate(KeyDatePublished, t) }

// Version returns the tolerantly parsed version, or semver.Zero when the
// property is absent or invalid.
func (r *Record) Version() semver.Version {
	level, v, _ := semver.TryParse(r.Value(KeyVersion))
	if level == semver.Invalid {
		return semver.Zero
	}
	return v
}

// SetVersion stores v in canonical form.
func (r *Record) SetVersion(v semver.Version) { r.Set(KeyVersion, v.String()) }

// IsSoftwareSourceCode reports whether the type tag is SoftwareSourceCode.
func (r *Record) IsSoftwareSourceCode() bool {
	return r.AtType() == TypeSoftwareSourceCode
}

// IsCodeBit reports whether the record identifies itself as a CodeBit: the
// SoftwareSourceCode type and the CodeBit keyword.
func (r *Record) IsCodeBit() bool {
	return r.IsSoftwareSourceCode() && slices.Contains(r.Keywords(), KeywordCodeBit)
}

// FilenameFromName returns the final path segment of the name.
func (r *Record) FilenameFromName() string {
	return lastSegment(r.Name(), "/\\")
}

// DomainName returns the part of the name before the first slash.
func (r *Record) DomainName() (string, error) {
	name := r.Name()
	domain, _, ok := strings.Cut(name, "/")
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrNoDomain, name)
	}
	return domain, nil
}

// Extensions calls yield for every non-standard property in encounter order.
func (r *Record) Extensions(yield func(key string, values []string) bool) {
	r.All(func(key string, values []string) bool {
		if IsStandardKey(key) {
			return true
		}
		return yield(key, values)
	})
}

// Clone returns a deep copy of r.
func (r *Record) Clone() *Record {
	return &Record{Record: *r.Record.Clone()}
}

func lastSegment(s, delims string) string {
	if i := strings.LastIndexAny(s, delims); i >= 0 {
		return s[i+1:]
	}
	return s
}
