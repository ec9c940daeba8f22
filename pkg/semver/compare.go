// SPDX-License-Identifier: MPL-2.0

package semver

import (
	"cmp"
	"strings"
)

// Compare orders a and b per Semantic Versioning 2.0.0 precedence.
// It returns -1 if a < b, 0 if a == b, and 1 if a > b. Build metadata is ignored.
func Compare(a, b Version) int {
	if c := cmp.Compare(a.Major, b.Major); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Minor, b.Minor); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Patch, b.Patch); c != 0 {
		return c
	}
	return comparePrerelease(a, b)
}

// Compare orders v relative to other. See Compare.
func (v Version) Compare(other Version) int { return Compare(v, other) }

// Equal reports whether v and other have the same precedence.
func (v Version) Equal(other Version) bool { return Compare(v, other) == 0 }

// Less reports whether v ranks strictly below other.
func (v Version) Less(other Version) bool { return Compare(v, other) < 0 }

// comparePrerelease compares the normalized prerelease tails of a and b. A
// release (empty tail) outranks every prerelease of the same version.
func comparePrerelease(a, b Version) int {
	as, bs := a.PrereleaseIdentifiers(), b.PrereleaseIdentifiers()
	switch {
	case as == nil && bs == nil:
		return 0
	case as == nil:
		return 1
	case bs == nil:
		return -1
	}

	for i := 0; i < len(as) && i < len(bs); i++ {
		if c := compareIdentifier(as[i], bs[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(as), len(bs))
}

// compareIdentifier orders two prerelease identifiers: numeric ones compare
// numerically and always rank below alphanumeric ones, which compare by byte.
func compareIdentifier(a, b string) int {
	an, bn := isNumeric(a), isNumeric(b)
	switch {
	case an && bn:
		return compareDigits(a, b)
	case an:
		return -1
	case bn:
		return 1
	default:
		return strings.Compare(a, b)
	}
}

// compareDigits compares decimal digit strings of any length without overflow.
func compareDigits(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if c := cmp.Compare(len(a), len(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}
