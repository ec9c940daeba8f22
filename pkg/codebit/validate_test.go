// SPDX-License-Identifier: MPL-2.0

package codebit

import (
	"strings"
	"testing"

	"github.com/filemeta/codebit/pkg/validation"
)

func TestValidate_ValidRecord(t *testing.T) {
	t.Parallel()

	r := newValidRecord()
	res := r.Validate(WithLocalFilename(`C:\src\tools\a.go`))
	if !res.Passed() {
		t.Fatalf("Validate() = %v\n%s", res.Severity, res.Detail())
	}
	if r.Value(KeyName) != "example.com/tools/a.go" {
		t.Error("Validate must not modify the record")
	}
}

func TestValidate_MissingNameAndURL(t *testing.T) {
	t.Parallel()

	r := newValidRecord()
	r.Remove(KeyName)
	r.Remove(KeyURL)
	res := r.Validate()
	if res.Severity != validation.FailMandatory {
		t.Fatalf("severity = %v, want fail-mandatory\n%s", res.Severity, res.Detail())
	}
	if len(res.Details) != 2 || res.Details[0] == res.Details[1] {
		t.Errorf("want two distinct detail lines, got %q", res.Details)
	}
}

func TestValidate_Rules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(r *Record)
		want   validation.Severity
		detail string
	}{
		{"duplicate_date", func(r *Record) { r.Add(KeyDatePublished, "2023-02-24") }, validation.FailRecommended, "Multiple instances of property 'datePublished'"},
		{"bad_date", func(r *Record) { r.Set(KeyDatePublished, "garbage") }, validation.FailRecommended, "invalid format"},
		{"duplicate_author", func(r *Record) { r.Add(KeyAuthor, "Bob") }, validation.FailRecommended, "'author'"},
		{"duplicate_name", func(r *Record) { r.Add(KeyName, "example.com/b.go") }, validation.FailRecommended, "'name'"},
		{"wrong_type", func(r *Record) { r.Set(KeyAtType, "Thing") }, validation.FailRecommended, "should be 'SoftwareSourceCode' but is 'Thing'"},
		{"duplicate_type", func(r *Record) { r.Add(KeyAtType, TypeSoftwareSourceCode) }, validation.FailRecommended, "multiple values"},
		{"tolerable_version", func(r *Record) { r.Set(KeyVersion, "v2") }, validation.FailRecommended, "'version' property: Warning:"},
		{"invalid_version", func(r *Record) { r.Set(KeyVersion, "1.2.3.four") }, validation.FailMandatory, "'version' property: Error:"},
		{"missing_version", func(r *Record) { r.Remove(KeyVersion) }, validation.FailMandatory, "'version' is required"},
		{"single_label_domain", func(r *Record) { r.Set(KeyName, "localhost/a.go") }, validation.FailMandatory, "domain name followed by a file path"},
		{"name_without_path", func(r *Record) { r.Set(KeyName, "example.com") }, validation.FailMandatory, "domain name followed by a file path"},
		{"name_bad_char", func(r *Record) { r.Set(KeyName, "example.com/a|b.go") }, validation.FailMandatory, "domain name followed by a file path"},
		{"ftp_url", func(r *Record) { r.Set(KeyURL, "ftp://example.com/a.go") }, validation.FailMandatory, "scheme is not http or https"},
		{"relative_url", func(r *Record) { r.Set(KeyURL, "tools/a.go") }, validation.FailMandatory, "not a valid URL"},
		{"no_codebit_keyword", func(r *Record) { r.Set(KeyKeywords, "go") }, validation.FailMandatory, "must include 'CodeBit'"},
		{"mixed", func(r *Record) { r.Remove(KeyURL); r.Add(KeyLicense, "x") }, validation.Fail, "'url' is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := newValidRecord()
			tt.mutate(r)
			res := r.Validate()
			if res.Severity != tt.want {
				t.Errorf("severity = %v, want %v\n%s", res.Severity, tt.want, res.Detail())
			}
			if !strings.Contains(res.Detail(), tt.detail) {
				t.Errorf("detail %q does not mention %q", res.Detail(), tt.detail)
			}
		})
	}
}

func TestValidate_NameSegmentLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		file string
		want validation.Severity
	}{
		{"128_chars", strings.Repeat("a", 125) + ".go", validation.Pass},
		{"129_chars", strings.Repeat("a", 126) + ".go", validation.FailMandatory},
		{"129_char_directory", strings.Repeat("d", 129) + "/a.go", validation.FailMandatory},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := newValidRecord()
			r.SetName("example.com/" + tt.file)
			res := r.Validate()
			if res.Severity != tt.want {
				t.Errorf("severity = %v, want %v\n%s", res.Severity, tt.want, res.Detail())
			}
		})
	}
}

func TestValidate_LocalFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		file string
		pass bool
	}{
		{"a.go", true},
		{"/home/u/tools/a.go", true},
		{`D:a.go`, true},
		{"A.go", false},
		{"tools/b.go", false},
	}
	for _, tt := range tests {
		res := newValidRecord().Validate(WithLocalFilename(tt.file))
		if res.Passed() != tt.pass {
			t.Errorf("WithLocalFilename(%q) passed = %v, want %v\n%s", tt.file, res.Passed(), tt.pass, res.Detail())
		}
		if !tt.pass && res.Severity != validation.FailMandatory {
			t.Errorf("WithLocalFilename(%q) severity = %v, want fail-mandatory", tt.file, res.Severity)
		}
	}
}
