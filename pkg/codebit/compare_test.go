// SPDX-License-Identifier: MPL-2.0

package codebit

import (
	"strings"
	"testing"
	"time"

	"github.com/filemeta/codebit/pkg/validation"
)

func TestCompareTo_Identical(t *testing.T) {
	t.Parallel()

	a, b := newValidRecord(), newValidRecord()
	b.Set(KeyUnderType, TypeSoftwareSourceCode)
	b.Remove(KeyAtType)
	if res := a.CompareTo(b, "local", "directory", true); !res.Passed() {
		t.Errorf("identical records: %v\n%s", res.Severity, res.Detail())
	}
}

func TestCompareTo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		mutate     func(b *Record)
		requireURL bool
		want       validation.Severity
		detail     string
	}{
		{"extra_keyword", func(b *Record) { b.Add(KeyKeywords, "extra") }, false, validation.FailRecommended, "Warning: directory 'keywords' includes 'extra' which local does not include."},
		{"missing_keyword", func(b *Record) { b.Set(KeyKeywords, KeywordCodeBit) }, false, validation.FailRecommended, "Warning: local 'keywords' includes 'go' which directory does not include."},
		{"hash", func(b *Record) { b.SetHash("SHA256:FF") }, false, validation.FailMandatory, "Error: local 'hash' (SHA256:00) does not match directory 'hash' (SHA256:FF)."},
		{"name", func(b *Record) { b.SetName("example.com/b.go") }, false, validation.FailMandatory, "'name'"},
		{"type", func(b *Record) { b.SetAtType("Thing") }, false, validation.FailMandatory, "'@type'"},
		{"older", func(b *Record) { b.Set(KeyVersion, "1.3.0") }, false, validation.FailMandatory, "Error: local 'version' (1.2.3) is older than directory (1.3.0)."},
		{"newer", func(b *Record) { b.Set(KeyVersion, "1.2.3-rc.1") }, false, validation.FailMandatory, "is newer than"},
		{"build_only", func(b *Record) { b.Set(KeyVersion, "1.2.3+build.7") }, false, validation.Pass, ""},
		{"url_ignored", func(b *Record) { b.SetURL("https://mirror.example.org/a.go") }, false, validation.Pass, ""},
		{"url_required", func(b *Record) { b.SetURL("https://mirror.example.org/a.go") }, true, validation.FailMandatory, "'url'"},
		{"date_within_tolerance", func(b *Record) { b.Set(KeyDatePublished, "2023-02-23T00:00:00.5Z") }, false, validation.Pass, ""},
		{"date_differs", func(b *Record) { b.Set(KeyDatePublished, "2023-02-24") }, false, validation.FailRecommended, "'datePublished'"},
		{"date_missing", func(b *Record) { b.Remove(KeyDatePublished) }, false, validation.FailRecommended, "'datePublished'"},
		{"author", func(b *Record) { b.Set(KeyAuthor, "Bob") }, false, validation.FailRecommended, "Warning: local 'author' (Ann Example) does not match directory 'author' (Bob)."},
		{"description", func(b *Record) { b.Set(KeyDescription, "tool") }, false, validation.FailRecommended, "'description'"},
		{"extension_added", func(b *Record) { b.Add("x-os", "linux") }, false, validation.FailRecommended, "Warning: local 'x-os' has no value but directory includes 'x-os' (linux)."},
		{"hash_and_keyword", func(b *Record) { b.SetHash("SHA256:FF"); b.Add(KeyKeywords, "x") }, false, validation.Fail, "'hash'"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a, b := newValidRecord(), newValidRecord()
			tt.mutate(b)
			res := a.CompareTo(b, "local", "directory", tt.requireURL)
			if res.Severity != tt.want {
				t.Errorf("severity = %v, want %v\n%s", res.Severity, tt.want, res.Detail())
			}
			if !strings.Contains(res.Detail(), tt.detail) {
				t.Errorf("detail %q does not contain %q", res.Detail(), tt.detail)
			}
		})
	}
}

func TestCompareTo_Extensions(t *testing.T) {
	t.Parallel()

	a, b := newValidRecord(), newValidRecord()
	a.Add("x-os", "linux")
	a.Add("x-os", "darwin")
	b.Add("x-os", "linux")
	b.Add("x-os", "darwin")
	if res := a.CompareTo(b, "a", "b", false); !res.Passed() {
		t.Errorf("equal extensions: %s", res.Detail())
	}

	b.Set("x-os", "linux")
	res := a.CompareTo(b, "a", "b", false)
	if res.Severity != validation.FailRecommended {
		t.Fatalf("severity = %v", res.Severity)
	}
	if want := "Warning: a 'x-os' (linux;darwin) does not match b 'x-os' (linux)."; res.Detail() != want+"\n" {
		t.Errorf("detail = %q, want %q", res.Detail(), want)
	}

	b.Remove("x-os")
	if res := a.CompareTo(b, "a", "b", false); !strings.Contains(res.Detail(), "contains value (linux;darwin) but b 'x-os' has no value") {
		t.Errorf("one-sided detail = %q", res.Detail())
	}
}

func TestVersionDrift(t *testing.T) {
	t.Parallel()

	a, b := newValidRecord(), newValidRecord()
	if res := VersionDrift(a, b, "a", "b"); !res.Passed() {
		t.Errorf("same version drift = %v", res.Severity)
	}
	b.Set(KeyVersion, "2.0.0")
	res := VersionDrift(a, b, "a", "b")
	if res.Severity != validation.FailRecommended || !strings.Contains(res.Detail(), "older") {
		t.Errorf("drift = %v %q", res.Severity, res.Detail())
	}
}

func TestCompareTo_OffsetMidnightDate(t *testing.T) {
	t.Parallel()

	when := time.Date(2023, 2, 23, 0, 0, 0, 0, time.FixedZone("", 5*3600))
	a, b := newValidRecord(), newValidRecord()
	a.SetDatePublished(when)
	b.Set(KeyDatePublished, when.UTC().Format(time.RFC3339))

	if res := a.CompareTo(b, "a", "b", false); !res.Passed() {
		t.Errorf("same instant in different offsets should match: %v\n%s", res.Severity, res.Detail())
	}
}
