// SPDX-License-Identifier: MPL-2.0

package codebit

import (
	"errors"
	"testing"

	"github.com/filemeta/codebit/pkg/semver"
)

// newValidRecord returns a record that passes every validation rule.
func newValidRecord() *Record {
	r := New()
	r.Set(KeyAtType, TypeSoftwareSourceCode)
	r.Set(KeyName, "example.com/tools/a.go")
	r.Set(KeyVersion, "1.2.3")
	r.Set(KeyURL, "https://example.com/tools/a.go")
	r.Add(KeyKeywords, KeywordCodeBit)
	r.Add(KeyKeywords, "go")
	r.Set(KeyDatePublished, "2023-02-23")
	r.Set(KeyAuthor, "Ann Example")
	r.Set(KeyLicense, "https://opensource.org/licenses/MIT")
	r.Set(KeyHash, "SHA256:00")
	return r
}

func TestRecord_AtType(t *testing.T) {
	t.Parallel()

	r := New()
	r.Set(KeyUnderType, TypeSoftwareSourceCode)
	if got := r.AtType(); got != TypeSoftwareSourceCode {
		t.Errorf("AtType() from _type = %q", got)
	}

	r.Set(KeyAtType, "Other")
	if got := r.AtType(); got != "Other" {
		t.Errorf("AtType() should prefer @type, got %q", got)
	}

	r.SetAtType(TypeSoftwareSourceCode)
	if r.Has(KeyUnderType) {
		t.Error("SetAtType should drop _type")
	}
}

func TestRecord_IsCodeBit(t *testing.T) {
	t.Parallel()

	r := newValidRecord()
	if !r.IsCodeBit() || !r.IsSoftwareSourceCode() {
		t.Fatal("valid record should be a CodeBit")
	}

	r.Set(KeyKeywords, "go")
	if r.IsCodeBit() {
		t.Error("record without the CodeBit keyword is not a CodeBit")
	}
}

func TestRecord_Version(t *testing.T) {
	t.Parallel()

	r := New()
	if !r.Version().IsZero() {
		t.Error("absent version should read as zero")
	}
	r.Set(KeyVersion, "v2")
	if got := r.Version(); !got.Equal(semver.New(2, 0, 0)) {
		t.Errorf("Version() = %v, want 2.0.0", got)
	}
	r.Set(KeyVersion, "bogus")
	if !r.Version().IsZero() {
		t.Error("invalid version should read as zero")
	}
	r.SetVersion(semver.MustParse("1.0.0-beta.1"))
	if got := r.Value(KeyVersion); got != "1.0.0-beta.1" {
		t.Errorf("stored version = %q", got)
	}
}

func TestRecord_NameParts(t *testing.T) {
	t.Parallel()

	r := New()
	r.SetName("example.com/dir/sub/file.cs")
	if got := r.FilenameFromName(); got != "file.cs" {
		t.Errorf("FilenameFromName() = %q", got)
	}
	domain, err := r.DomainName()
	if err != nil || domain != "example.com" {
		t.Errorf("DomainName() = (%q, %v)", domain, err)
	}

	r.SetName("file.cs")
	if _, err := r.DomainName(); !errors.Is(err, ErrNoDomain) {
		t.Errorf("DomainName() error = %v, want ErrNoDomain", err)
	}
}

func TestRecord_Extensions(t *testing.T) {
	t.Parallel()

	r := newValidRecord()
	r.Add("x-b", "1")
	r.Add("x-a", "2")

	var keys []string
	r.Extensions(func(k string, _ []string) bool {
		keys = append(keys, k)
		return true
	})
	if len(keys) != 2 || keys[0] != "x-b" || keys[1] != "x-a" {
		t.Errorf("Extensions keys = %v, want [x-b x-a]", keys)
	}
}

func TestFromPairs(t *testing.T) {
	t.Parallel()

	r := FromPairs([]Pair{
		{KeyUnderType, TypeSoftwareSourceCode},
		{KeyName, "example.com/a.go"},
		{KeyKeywords, KeywordCodeBit},
		{KeyKeywords, "go"},
		{"", "ignored"},
		{KeyAuthor, ""},
	})
	if r.AtType() != TypeSoftwareSourceCode || r.Name() != "example.com/a.go" {
		t.Errorf("unexpected record:\n%s", r)
	}
	if got := r.Keywords(); len(got) != 2 {
		t.Errorf("Keywords() = %v", got)
	}
	if r.Has(KeyAuthor) {
		t.Error("empty values should be ignored")
	}
}
