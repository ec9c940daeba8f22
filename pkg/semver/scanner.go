// SPDX-License-Identifier: MPL-2.0

package semver

import (
	"fmt"
	"strings"
)

// scanner walks a version string left to right, collecting diagnostics.
type scanner struct {
	s     string
	pos   int
	diags []string
}

func (sc *scanner) warnf(format string, args ...any) {
	sc.diags = append(sc.diags, fmt.Sprintf(format, args...))
}

// term returns the byte at the cursor, or 0 at end of input.
func (sc *scanner) term() byte {
	if sc.pos < len(sc.s) {
		return sc.s[sc.pos]
	}
	return 0
}

func (sc *scanner) atDigit() bool {
	return sc.pos < len(sc.s) && isDigit(sc.s[sc.pos])
}

func (sc *scanner) peekVPrefix() bool {
	return sc.pos < len(sc.s) && (sc.s[sc.pos] == 'v' || sc.s[sc.pos] == 'V')
}

func (sc *scanner) overflow(part string) []string {
	return []string{fmt.Sprintf("Error: %s version is out of range.", part)}
}

// intComponent reads a run of digits. An empty run yields zero with a warning.
// ok is false when the value reaches MaxComponent.
func (sc *scanner) intComponent(part string) (n int, ok bool) {
	if !sc.atDigit() {
		sc.warnf("Warning: Empty %s version; using zero.", part)
		return 0, true
	}

	if sc.s[sc.pos] == '0' && sc.pos+1 < len(sc.s) && isDigit(sc.s[sc.pos+1]) {
		sc.warnf("Warning: Leading zero(s) removed from %s version.", part)
	}

	for sc.atDigit() {
		n = n*10 + int(sc.s[sc.pos]-'0')
		if n >= MaxComponent {
			return 0, false
		}
		sc.pos++
	}
	return n, true
}

// tailComponent reads dot-separated identifiers for a prerelease or build tail and
// returns their normalized form. Empty identifiers are dropped and numeric
// identifiers lose leading zeros, each with a warning. Scanning stops at the first
// byte that is neither an identifier character nor a separating dot.
func (sc *scanner) tailComponent(part string) string {
	start := sc.pos
	emptyID := false
	leadingZero := false
	var sb strings.Builder

	for {
		id, numeric := sc.nextIdentifier()
		switch {
		case id == "":
			emptyID = true
		case numeric:
			trimmed := strings.TrimLeft(id, "0")
			if trimmed == "" {
				trimmed = "0"
			}
			if trimmed != id {
				leadingZero = true
			}
			if sb.Len() > 0 {
				sb.WriteByte('.')
			}
			sb.WriteString(trimmed)
		default:
			if sb.Len() > 0 {
				sb.WriteByte('.')
			}
			sb.WriteString(id)
		}

		if sc.term() != '.' {
			break
		}
		sc.pos++
	}

	if emptyID && sc.pos != start {
		sc.warnf("Warning: %s version includes at least one empty identifier.", part)
	}
	if leadingZero {
		sc.warnf("Warning: Leading zero(s) removed from %s version.", part)
	}
	if sc.pos == start {
		sc.warnf("Warning: %s is empty.", part)
	}
	return sb.String()
}

// nextIdentifier consumes identifier characters at the cursor.
func (sc *scanner) nextIdentifier() (id string, numeric bool) {
	start := sc.pos
	numeric = true
	for sc.pos < len(sc.s) && isIdentChar(sc.s[sc.pos]) {
		if !isDigit(sc.s[sc.pos]) {
			numeric = false
		}
		sc.pos++
	}
	id = sc.s[start:sc.pos]
	return id, numeric && id != ""
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isIdentChar(c byte) bool {
	return isDigit(c) || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || c == '-'
}
