// SPDX-License-Identifier: MPL-2.0

package semver

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	// Invalid means the input could not be parsed as a semantic version.
	Invalid Level = iota
	// Tolerable means the input was parsed but deviates from the grammar;
	// diagnostics describe each deviation.
	Tolerable
	// Valid means the input is a fully compliant semantic version.
	Valid
)

// MaxComponent is the largest value a numeric component may hold. Ceiling
// versions use it for every component the search string left unspecified.
const MaxComponent = math.MaxInt32

const (
	partMajor      = "Major"
	partMinor      = "Minor"
	partPatch      = "Patch"
	partPrerelease = "Prerelease"
	partBuild      = "Build"
)

// ErrInvalidSemVer is the sentinel error wrapped by InvalidSemVerError.
var ErrInvalidSemVer = errors.New("invalid semver")

var (
	// Zero is 0.0.0, used where a version is absent or unparsable.
	Zero = Version{}
	// Max is the greatest version; it matches everything as a search ceiling.
	Max = Version{Major: MaxComponent, Minor: MaxComponent, Patch: MaxComponent}
)

type (
	// Level grades how well an input string conforms to the grammar.
	Level int

	// Version is a parsed semantic version. Prerelease and Build hold the
	// normalized dot-separated identifier lists without their '-' / '+' markers.
	Version struct {
		Major      int
		Minor      int
		Patch      int
		Prerelease string
		Build      string
	}

	// InvalidSemVerError is returned by Parse and ParseStrict when the input does
	// not reach the required Level.
	InvalidSemVerError struct {
		Value       string
		Level       Level
		Diagnostics []string
	}
)

// String returns the level name.
func (l Level) String() string {
	switch l {
	case Invalid:
		return "invalid"
	case Tolerable:
		return "tolerable"
	case Valid:
		return "valid"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// Error implements the error interface.
func (e *InvalidSemVerError) Error() string {
	if len(e.Diagnostics) == 0 {
		return fmt.Sprintf("invalid semver %q", e.Value)
	}
	return fmt.Sprintf("invalid semver %q: %s", e.Value, strings.Join(e.Diagnostics, "; "))
}

// Unwrap returns ErrInvalidSemVer so callers can use errors.Is for programmatic detection.
func (e *InvalidSemVerError) Unwrap() error { return ErrInvalidSemVer }

// New returns a version with the given numeric parts and no tails.
func New(major, minor, patch int) Version {
	return Version{Major: major, Minor: minor, Patch: patch}
}

// Parse performs a best-effort parse. Tolerable inputs such as "4" (read as 4.0.0)
// succeed; use ParseStrict or TryParse to insist on full compliance.
func Parse(s string) (Version, error) {
	level, v, diags := TryParse(s)
	if level < Tolerable {
		return Zero, &InvalidSemVerError{Value: s, Level: level, Diagnostics: diags}
	}
	return v, nil
}

// ParseStrict parses s and fails unless it is fully Valid.
func ParseStrict(s string) (Version, error) {
	level, v, diags := TryParse(s)
	if level < Valid {
		return Zero, &InvalidSemVerError{Value: s, Level: level, Diagnostics: diags}
	}
	return v, nil
}

// MustParse is like Parse but panics on error. Intended for tests and constants.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// TryParse parses s, degrading gracefully when the format is imperfect.
//
// On Invalid the returned value is Zero. On Tolerable the value holds every part
// that was recognized and diags lists one warning per deviation. On Valid diags
// is empty.
func TryParse(s string) (Level, Version, []string) {
	sc := scanner{s: s}

	if sc.peekVPrefix() {
		sc.warnf("Warning: 'v' prefix to version is not expected.")
		sc.pos++
	}

	if !sc.atDigit() {
		return Invalid, Zero, []string{"Error: Invalid Semantic Versioning Format."}
	}

	var v Version
	var ok bool
	if v.Major, ok = sc.intComponent(partMajor); !ok {
		return Invalid, Zero, sc.overflow(partMajor)
	}

	if sc.term() == '.' {
		sc.pos++
		if v.Minor, ok = sc.intComponent(partMinor); !ok {
			return Invalid, Zero, sc.overflow(partMinor)
		}
	} else {
		sc.warnf("Warning: Minor version not found.")
	}

	if sc.term() == '.' {
		sc.pos++
		if v.Patch, ok = sc.intComponent(partPatch); !ok {
			return Invalid, Zero, sc.overflow(partPatch)
		}
	} else {
		sc.warnf("Warning: Patch version not found.")
	}

	if sc.term() == '-' {
		sc.pos++
		v.Prerelease = sc.tailComponent(partPrerelease)
	}

	if sc.term() == '+' {
		sc.pos++
		v.Build = sc.tailComponent(partBuild)
	}

	if sc.pos < len(s) {
		return Invalid, Zero, []string{fmt.Sprintf("Error: Unexpected text in semantic version at position %d.", sc.pos)}
	}

	if len(sc.diags) == 0 {
		return Valid, v, nil
	}
	return Tolerable, v, sc.diags
}

// WithPrerelease returns a copy of v with its prerelease set from s using the
// tolerant identifier rules. An empty s clears the prerelease. On Invalid, v is
// returned unchanged.
func (v Version) WithPrerelease(s string) (Version, Level, []string) {
	tail, level, diags := parseTail(s, partPrerelease)
	if level == Invalid {
		return v, level, diags
	}
	v.Prerelease = tail
	return v, level, diags
}

// WithBuild returns a copy of v with its build metadata set from s using the
// tolerant identifier rules. An empty s clears the build. On Invalid, v is
// returned unchanged.
func (v Version) WithBuild(s string) (Version, Level, []string) {
	tail, level, diags := parseTail(s, partBuild)
	if level == Invalid {
		return v, level, diags
	}
	v.Build = tail
	return v, level, diags
}

func parseTail(s, part string) (string, Level, []string) {
	if s == "" {
		return "", Valid, nil
	}
	sc := scanner{s: s}
	tail := sc.tailComponent(part)
	if sc.pos < len(s) {
		return "", Invalid, []string{fmt.Sprintf("Error: %s includes invalid characters.", part)}
	}
	if len(sc.diags) > 0 {
		return tail, Tolerable, sc.diags
	}
	return tail, Valid, nil
}

// ParseForSearch parses s as a search ceiling. The first numeric component that is
// missing or does not start with a digit, and every component after it, is set to
// MaxComponent. Because a release outranks its prereleases, "1.2" yields a ceiling
// that admits every 1.2.x release and prerelease but not 1.3.0. Never fails.
func ParseForSearch(s string) Version {
	sc := scanner{s: s}
	if sc.peekVPrefix() {
		sc.pos++
	}

	if !sc.atDigit() {
		return Max
	}
	major, ok := sc.intComponent(partMajor)
	if !ok {
		return Max
	}

	if sc.term() != '.' {
		return Version{Major: major, Minor: MaxComponent, Patch: MaxComponent}
	}
	sc.pos++
	if !sc.atDigit() {
		return Version{Major: major, Minor: MaxComponent, Patch: MaxComponent}
	}
	minor, ok := sc.intComponent(partMinor)
	if !ok {
		return Version{Major: major, Minor: MaxComponent, Patch: MaxComponent}
	}

	if sc.term() != '.' {
		return Version{Major: major, Minor: minor, Patch: MaxComponent}
	}
	sc.pos++
	if !sc.atDigit() {
		return Version{Major: major, Minor: minor, Patch: MaxComponent}
	}
	patch, ok := sc.intComponent(partPatch)
	if !ok {
		return Version{Major: major, Minor: minor, Patch: MaxComponent}
	}

	v := Version{Major: major, Minor: minor, Patch: patch}
	if sc.term() == '-' {
		sc.pos++
		v.Prerelease = sc.tailComponent(partPrerelease)
	}
	if sc.term() == '+' {
		sc.pos++
		v.Build = sc.tailComponent(partBuild)
	}
	return v
}

// String formats v per Semantic Versioning 2.0.0. Components holding MaxComponent
// are omitted along with everything after them, so ceilings print as "1.2".
func (v Version) String() string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(v.Major))
	if v.Minor >= MaxComponent {
		return sb.String()
	}
	sb.WriteByte('.')
	sb.WriteString(strconv.Itoa(v.Minor))
	if v.Patch >= MaxComponent {
		return sb.String()
	}
	sb.WriteByte('.')
	sb.WriteString(strconv.Itoa(v.Patch))
	if v.Prerelease != "" {
		sb.WriteByte('-')
		sb.WriteString(v.Prerelease)
	}
	if v.Build != "" {
		sb.WriteByte('+')
		sb.WriteString(v.Build)
	}
	return sb.String()
}

// IsZero reports whether v equals Zero (build metadata ignored).
func (v Version) IsZero() bool { return v.Equal(Zero) }

// IsCeiling reports whether any numeric component was left maximal by ParseForSearch.
func (v Version) IsCeiling() bool {
	return v.Major >= MaxComponent || v.Minor >= MaxComponent || v.Patch >= MaxComponent
}

// PrereleaseIdentifiers returns the dot-separated prerelease identifiers, or nil.
func (v Version) PrereleaseIdentifiers() []string {
	if v.Prerelease == "" {
		return nil
	}
	return strings.Split(v.Prerelease, ".")
}
