// SPDX-License-Identifier: MPL-2.0

package metadata

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

const (
	// DateLayout is used when the time of day is exactly midnight UTC.
	DateLayout = "2006-01-02"
	// TimestampLayout is used for every other instant; fractional seconds are
	// trimmed of trailing zeros.
	TimestampLayout = "2006-01-02T15:04:05.999-07:00"
)

// FormatDate renders t in one of the two canonical forms: date only when t is
// exactly midnight at a zero UTC offset, otherwise a full timestamp with offset.
// A date-only value reads back as midnight UTC, so any other offset must be kept.
func FormatDate(t time.Time) string {
	h, m, s := t.Clock()
	_, offset := t.Zone()
	if h == 0 && m == 0 && s == 0 && t.Nanosecond() == 0 && offset == 0 {
		return t.Format(DateLayout)
	}
	return t.Format(TimestampLayout)
}

// ParseDate parses s tolerantly (RFC 3339, date only, and other common layouts).
// Inputs without an offset are read as UTC. ok is false for empty or unparsable
// input, never an error.
func ParseDate(s string) (t time.Time, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, true
	}
	if t, err := time.ParseInLocation(DateLayout, s, time.UTC); err == nil {
		return t, true
	}
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// DateValue returns the first value of key as a time. The zero time signals a
// property that is absent or not a parsable date.
func (r *Record) DateValue(key string) time.Time {
	t, ok := ParseDate(r.Value(key))
	if !ok {
		return time.Time{}
	}
	return t
}

// SetDate stores t under key in canonical form. The zero time removes the property.
func (r *Record) SetDate(key string, t time.Time) {
	if t.IsZero() {
		r.Remove(key)
		return
	}
	r.Set(key, FormatDate(t))
}
