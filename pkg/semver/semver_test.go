// SPDX-License-Identifier: MPL-2.0

package semver

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestTryParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		wantLevel Level
		want      Version
		wantDiag  string // substring expected in some diagnostic; "" means none required
	}{
		{"full", "1.2.3", Valid, New(1, 2, 3), ""},
		{"prerelease_and_build", "1.2.3-alpha.1+build.7", Valid, Version{1, 2, 3, "alpha.1", "build.7"}, ""},
		{"hyphen_in_identifier", "1.0.0-x-y.0", Valid, Version{1, 0, 0, "x-y.0", ""}, ""},
		{"v_prefix_major_only", "v2", Tolerable, New(2, 0, 0), "'v' prefix"},
		{"capital_v_prefix", "V1.0.0", Tolerable, New(1, 0, 0), "'v' prefix"},
		{"major_minor", "1.2", Tolerable, New(1, 2, 0), "Patch version not found"},
		{"leading_zero_major", "01.2.3", Tolerable, New(1, 2, 3), "Leading zero(s) removed from Major"},
		{"leading_zero_patch", "1.2.03", Tolerable, New(1, 2, 3), "Leading zero(s) removed from Patch"},
		{"empty_minor", "1..3", Tolerable, New(1, 0, 3), "Empty Minor version"},
		{"prerelease_leading_zero", "1.0.0-alpha.01", Tolerable, Version{1, 0, 0, "alpha.1", ""}, "Leading zero(s) removed from Prerelease"},
		{"prerelease_empty_identifier", "1.0.0-alpha..beta", Tolerable, Version{1, 0, 0, "alpha.beta", ""}, "empty identifier"},
		{"prerelease_empty", "1.0.0-", Tolerable, New(1, 0, 0), "Prerelease is empty"},
		{"build_empty", "1.0.0+", Tolerable, New(1, 0, 0), "Build is empty"},
		{"zero_identifier_kept", "1.0.0-0", Valid, Version{1, 0, 0, "0", ""}, ""},
		{"fourth_component", "1.2.3.four", Invalid, Zero, "Unexpected text"},
		{"not_a_version", "abc", Invalid, Zero, "Invalid Semantic Versioning Format"},
		{"empty", "", Invalid, Zero, "Invalid Semantic Versioning Format"},
		{"v_only", "v", Invalid, Zero, "Invalid Semantic Versioning Format"},
		{"trailing_garbage", "1.2.3 ", Invalid, Zero, "position 5"},
		{"bad_prerelease_char", "1.2.3-beta_1", Invalid, Zero, "Unexpected text"},
		{"overflow", "99999999999.0.0", Invalid, Zero, "out of range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			level, got, diags := TryParse(tt.input)
			if level != tt.wantLevel {
				t.Fatalf("TryParse(%q) level = %v, want %v (diags: %v)", tt.input, level, tt.wantLevel, diags)
			}
			if got != tt.want {
				t.Errorf("TryParse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
			if tt.wantLevel == Valid && len(diags) != 0 {
				t.Errorf("TryParse(%q) returned diagnostics for a valid version: %v", tt.input, diags)
			}
			if tt.wantDiag != "" && !containsAny(diags, tt.wantDiag) {
				t.Errorf("TryParse(%q) diagnostics %v do not mention %q", tt.input, diags, tt.wantDiag)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	if _, err := Parse("1.2"); err != nil {
		t.Errorf("Parse(1.2) unexpected error: %v", err)
	}

	_, err := Parse("1.2.3.four")
	if !errors.Is(err, ErrInvalidSemVer) {
		t.Fatalf("Parse(1.2.3.four) error = %v, want ErrInvalidSemVer", err)
	}
	var semErr *InvalidSemVerError
	if !errors.As(err, &semErr) {
		t.Fatalf("error should be *InvalidSemVerError, got %T", err)
	}
	if semErr.Level != Invalid {
		t.Errorf("error level = %v, want invalid", semErr.Level)
	}

	_, err = ParseStrict("1.2")
	if !errors.As(err, &semErr) {
		t.Fatalf("ParseStrict(1.2) error = %v, want *InvalidSemVerError", err)
	}
	if semErr.Level != Tolerable {
		t.Errorf("ParseStrict(1.2) level = %v, want tolerable", semErr.Level)
	}
	if !strings.Contains(err.Error(), "Patch version not found") {
		t.Errorf("error message %q should carry the diagnostics", err.Error())
	}

	if _, err := ParseStrict("1.2.3-rc.1"); err != nil {
		t.Errorf("ParseStrict(1.2.3-rc.1) unexpected error: %v", err)
	}
}

func TestString_RoundTrip(t *testing.T) {
	t.Parallel()

	versions := []Version{
		Zero,
		New(1, 0, 0),
		New(0, 0, 1),
		New(10, 20, 30),
		New(2147483, 0, 99),
		{Major: 1, Minor: 2, Patch: 3, Prerelease: "alpha.1"},
		{Major: 1, Minor: 2, Patch: 3, Prerelease: "0.3.7", Build: "exp.sha.5114f85"},
		{Major: 4, Build: "20230223"},
	}

	for _, v := range versions {
		s := v.String()
		level, got, diags := TryParse(s)
		if level != Valid {
			t.Errorf("TryParse(%q) level = %v, want valid (diags: %v)", s, level, diags)
			continue
		}
		if got != v {
			t.Errorf("round trip of %+v produced %+v via %q", v, got, s)
		}
	}
}

func TestString_Ceiling(t *testing.T) {
	t.Parallel()

	tests := []struct {
		v    Version
		want string
	}{
		{Max, "2147483647"},
		{Version{Major: 1, Minor: MaxComponent, Patch: MaxComponent}, "1"},
		{Version{Major: 1, Minor: 2, Patch: MaxComponent}, "1.2"},
		{New(1, 2, 3), "1.2.3"},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("%+v.String() = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestWithPrereleaseAndBuild(t *testing.T) {
	t.Parallel()

	base := New(1, 0, 0)

	v, level, _ := base.WithPrerelease("rc.02")
	if level != Tolerable || v.Prerelease != "rc.2" {
		t.Errorf("WithPrerelease(rc.02) = (%q, %v), want (rc.2, tolerable)", v.Prerelease, level)
	}

	v, level, _ = v.WithPrerelease("bad!")
	if level != Invalid || v.Prerelease != "rc.2" {
		t.Errorf("WithPrerelease(bad!) = (%q, %v), want unchanged rc.2 and invalid", v.Prerelease, level)
	}

	v, level, _ = v.WithBuild("sha.abc")
	if level != Valid || v.Build != "sha.abc" {
		t.Errorf("WithBuild(sha.abc) = (%q, %v), want (sha.abc, valid)", v.Build, level)
	}

	v, level, _ = v.WithPrerelease("")
	if level != Valid || v.Prerelease != "" || v.Build != "sha.abc" {
		t.Errorf("WithPrerelease(\"\") should clear only the prerelease, got %+v (%v)", v, level)
	}
}

func TestTryParse_EmptyPrereleaseSingleWarning(t *testing.T) {
	t.Parallel()

	level, got, diags := TryParse("1.2.3-")
	if level != Tolerable || !got.Equal(New(1, 2, 3)) {
		t.Fatalf("TryParse(1.2.3-) = (%v, %v)", level, got)
	}
	if len(diags) != 1 || !strings.Contains(diags[0], "is empty") {
		t.Errorf("diagnostics = %v, want a single empty-prerelease warning", diags)
	}

	// An empty identifier between dots is still reported.
	_, _, diags = TryParse("1.2.3-rc..1")
	if !containsAny(diags, "empty identifier") {
		t.Errorf("diagnostics %v should mention the empty identifier", diags)
	}
}

func TestPrereleaseIdentifiers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want []string
	}{
		{"1.0.0", nil},
		{"1.0.0-alpha", []string{"alpha"}},
		{"1.0.0-alpha.1+build.9", []string{"alpha", "1"}},
	}
	for _, tt := range tests {
		got := MustParse(tt.in).PrereleaseIdentifiers()
		if !slices.Equal(got, tt.want) || (got == nil) != (tt.want == nil) {
			t.Errorf("%s.PrereleaseIdentifiers() = %#v, want %#v", tt.in, got, tt.want)
		}
	}
}

func containsAny(lines []string, substr string) bool {
	for _, l := range lines {
		if strings.Contains(l, substr) {
			return true
		}
	}
	return false
}
