// SPDX-License-Identifier: MPL-2.0

package codebit

import (
	"slices"
	"strings"
	"time"

	"github.com/filemeta/codebit/pkg/validation"
)

const (
	// DateTolerance absorbs rounding when datePublished is reserialized.
	DateTolerance = time.Second

	extensionDelimiter = ";"
)

// CompareTo grades the consistency of r against other. labelA names r and
// labelB names other in the detail lines. URLs are compared only when
// requireURLMatch is set, since a directory entry may point at a different
// published copy than the file under test.
func (r *Record) CompareTo(other *Record, labelA, labelB string, requireURLMatch bool) validation.Result {
	c := comparison{a: labelA, b: labelB}

	c.required(KeyAtType, r.AtType(), other.AtType())
	c.required(KeyName, r.Name(), other.Name())
	if requireURLMatch {
		c.required(KeyURL, r.URL(), other.URL())
	}

	va, vb := r.Version(), other.Version()
	switch cmp := va.Compare(vb); {
	case cmp < 0:
		c.rep.Mandatory("Error: %s 'version' (%s) is older than %s (%s).", labelA, va, labelB, vb)
	case cmp > 0:
		c.rep.Mandatory("Error: %s 'version' (%s) is newer than %s (%s).", labelA, va, labelB, vb)
	}

	ka, kb := r.Keywords(), other.Keywords()
	for _, kw := range ka {
		if !slices.Contains(kb, kw) {
			c.rep.Recommended("Warning: %s 'keywords' includes '%s' which %s does not include.", labelA, kw, labelB)
		}
	}
	for _, kw := range kb {
		if !slices.Contains(ka, kw) {
			c.rep.Recommended("Warning: %s 'keywords' includes '%s' which %s does not include.", labelB, kw, labelA)
		}
	}

	if d := r.DatePublished().Sub(other.DatePublished()).Abs(); d > DateTolerance {
		c.rep.Recommended("Warning: %s 'datePublished' (%s) doesn't match %s (%s).",
			labelA, r.DatePublishedRaw(), labelB, other.DatePublishedRaw())
	}

	c.required(KeyHash, r.Hash(), other.Hash())

	c.optional(KeyAuthor, r.Author(), other.Author())
	c.optional(KeyDescription, r.Description(), other.Description())
	c.optional(KeyLicense, r.License(), other.License())

	r.Extensions(func(key string, values []string) bool {
		mine := strings.Join(values, extensionDelimiter)
		theirs, ok := other.Lookup(key)
		if !ok {
			c.rep.Recommended("Warning: %s '%s' contains value (%s) but %s '%s' has no value.", labelA, key, mine, labelB, key)
			return true
		}
		c.optional(key, mine, strings.Join(theirs, extensionDelimiter))
		return true
	})
	other.Extensions(func(key string, values []string) bool {
		if !r.Has(key) {
			c.rep.Recommended("Warning: %s '%s' has no value but %s includes '%s' (%s).",
				labelA, key, labelB, key, strings.Join(values, extensionDelimiter))
		}
		return true
	})

	return c.rep.Result()
}

// VersionDrift reports a version difference between a and b as a recommended
// warning only. CompareTo treats any difference as mandatory; VersionDrift
// serves callers that want to display drift without failing on it.
func VersionDrift(a, b *Record, labelA, labelB string) validation.Result {
	var rep validation.Report
	va, vb := a.Version(), b.Version()
	switch cmp := va.Compare(vb); {
	case cmp < 0:
		rep.Recommended("Warning: %s 'version' (%s) is older than %s (%s).", labelA, va, labelB, vb)
	case cmp > 0:
		rep.Recommended("Warning: %s 'version' (%s) is newer than %s (%s).", labelA, va, labelB, vb)
	}
	return rep.Result()
}

type comparison struct {
	a, b string
	rep  validation.Report
}

func (c *comparison) required(key, x, y string) {
	if x != y {
		c.rep.Mandatory("Error: %s '%s' (%s) does not match %s '%s' (%s).", c.a, key, x, c.b, key, y)
	}
}

func (c *comparison) optional(key, x, y string) {
	if x != y {
		c.rep.Recommended("Warning: %s '%s' (%s) does not match %s '%s' (%s).", c.a, key, x, c.b, key, y)
	}
}
