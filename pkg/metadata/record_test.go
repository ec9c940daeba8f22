// SPDX-License-Identifier: MPL-2.0

package metadata

import (
	"errors"
	"slices"
	"testing"
	"time"
)

func TestRecord_SetAndGet(t *testing.T) {
	t.Parallel()

	r := New()
	r.Set("name", "example.com/a.go")
	r.Add("keywords", "CodeBit")
	r.Add("keywords", "go")

	if got := r.Value("name"); got != "example.com/a.go" {
		t.Errorf("Value(name) = %q", got)
	}
	if got := r.Values("keywords"); !slices.Equal(got, []string{"CodeBit", "go"}) {
		t.Errorf("Values(keywords) = %v", got)
	}
	if got := r.Value("missing"); got != "" {
		t.Errorf("Value(missing) = %q, want empty", got)
	}
	if got := r.Values("missing"); got != nil {
		t.Errorf("Values(missing) = %v, want nil", got)
	}
	if r.Has("missing") {
		t.Error("reading an absent key must not create it")
	}
	if got := r.Keys(); !slices.Equal(got, []string{"name", "keywords"}) {
		t.Errorf("Keys() = %v, want insertion order", got)
	}
}

func TestRecord_SetEmptyRemoves(t *testing.T) {
	t.Parallel()

	r := New()
	r.Set("author", "someone")
	r.Set("author", "")
	if r.Has("author") {
		t.Error("Set with empty value should remove the property")
	}

	r.SetValues("keywords", []string{"a", "b"})
	r.SetValues("keywords", nil)
	if r.Has("keywords") {
		t.Error("SetValues(nil) should remove the property")
	}
	if r.Len() != 0 {
		t.Errorf("Len() = %d, want 0", r.Len())
	}
}

func TestRecord_AddValues(t *testing.T) {
	t.Parallel()

	r := New()
	n, err := r.AddValues("k", []string{"a", "b"})
	if err != nil || n != 2 {
		t.Fatalf("AddValues = (%d, %v), want (2, nil)", n, err)
	}
	n, err = r.AddValues("k", nil)
	if !errors.Is(err, ErrNilValues) {
		t.Errorf("AddValues(nil) error = %v, want ErrNilValues", err)
	}
	if n != 2 {
		t.Errorf("AddValues(nil) count = %d, want unchanged 2", n)
	}
	if n := r.Add("k", "c"); n != 3 {
		t.Errorf("Add count = %d, want 3", n)
	}
}

func TestRecord_EnsureAndClone(t *testing.T) {
	t.Parallel()

	r := New()
	r.Ensure("keywords")
	if !r.Has("keywords") || r.Count("keywords") != 0 {
		t.Fatalf("Ensure should create an empty list")
	}
	list, ok := r.Lookup("keywords")
	if !ok || len(list) != 0 {
		t.Errorf("Lookup = (%v, %v), want (empty, true)", list, ok)
	}

	r.Add("keywords", "x")
	c := r.Clone()
	c.Add("keywords", "y")
	if r.Count("keywords") != 1 {
		t.Error("Clone must not share value slices")
	}

	vals := r.Values("keywords")
	vals[0] = "mutated"
	if r.Value("keywords") != "x" {
		t.Error("Values must return a copy")
	}
}

func TestRecord_RemovePreservesOrder(t *testing.T) {
	t.Parallel()

	var r Record
	r.Set("a", "1")
	r.Set("b", "2")
	r.Set("c", "3")
	r.Remove("b")
	r.Remove("nope")
	if got := r.Keys(); !slices.Equal(got, []string{"a", "c"}) {
		t.Errorf("Keys() = %v", got)
	}

	var seen []string
	r.All(func(k string, _ []string) bool {
		seen = append(seen, k)
		return false
	})
	if !slices.Equal(seen, []string{"a"}) {
		t.Errorf("All should stop when yield returns false, saw %v", seen)
	}
}

func TestFormatDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"midnight_utc", time.Date(2023, 2, 23, 0, 0, 0, 0, time.UTC), "2023-02-23"},
		{"midnight_offset", time.Date(2023, 2, 23, 0, 0, 0, 0, time.FixedZone("", -7*3600)), "2023-02-23T00:00:00-07:00"},
		{"timestamp", time.Date(2023, 2, 23, 14, 5, 9, 0, time.UTC), "2023-02-23T14:05:09+00:00"},
		{"fraction", time.Date(2023, 2, 23, 14, 5, 9, 120_000_000, time.FixedZone("", 3600)), "2023-02-23T14:05:09.12+01:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := FormatDate(tt.in); got != tt.want {
				t.Errorf("FormatDate = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in     string
		wantOK bool
		want   time.Time
	}{
		{"2023-02-23", true, time.Date(2023, 2, 23, 0, 0, 0, 0, time.UTC)},
		{"2023-02-23T14:05:09Z", true, time.Date(2023, 2, 23, 14, 5, 9, 0, time.UTC)},
		{"2023-02-23T14:05:09+01:00", true, time.Date(2023, 2, 23, 13, 5, 9, 0, time.UTC)},
		{"", false, time.Time{}},
		{"not a date", false, time.Time{}},
	}
	for _, tt := range tests {
		got, ok := ParseDate(tt.in)
		if ok != tt.wantOK {
			t.Errorf("ParseDate(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
			continue
		}
		if ok && !got.Equal(tt.want) {
			t.Errorf("ParseDate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRecord_Dates(t *testing.T) {
	t.Parallel()

	r := New()
	when := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	r.SetDate("datePublished", when)
	if got := r.Value("datePublished"); got != "2024-05-01" {
		t.Errorf("stored date = %q", got)
	}
	if got := r.DateValue("datePublished"); !got.Equal(when) {
		t.Errorf("DateValue = %v, want %v", got, when)
	}

	// A midnight in another zone keeps its offset and reads back as the same instant.
	offsetMidnight := time.Date(2023, 2, 23, 0, 0, 0, 0, time.FixedZone("", 5*3600))
	r.SetDate("datePublished", offsetMidnight)
	if got := r.Value("datePublished"); got != "2023-02-23T00:00:00+05:00" {
		t.Errorf("stored offset date = %q", got)
	}
	if got := r.DateValue("datePublished"); !got.Equal(offsetMidnight) {
		t.Errorf("DateValue = %v, want %v", got, offsetMidnight)
	}

	r.Set("datePublished", "garbage")
	if got := r.DateValue("datePublished"); !got.IsZero() {
		t.Errorf("DateValue(garbage) = %v, want zero time", got)
	}

	r.SetDate("datePublished", time.Time{})
	if r.Has("datePublished") {
		t.Error("SetDate(zero) should remove the property")
	}
}
