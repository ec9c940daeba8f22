// SPDX-License-Identifier: MPL-2.0

// Package validation defines the graded outcome shared by record validation,
// record comparison, and directory metadata validation.
//
// A Severity tracks two independent flags: at least one recommended rule failed,
// and at least one mandatory rule failed. Rule evaluations are folded into a
// Report, which ORs the flags and collects one detail line per finding.
package validation

import (
	"fmt"
	"strings"
)

const (
	// Pass meets every mandatory and recommended requirement.
	Pass Severity = 0
	// FailRecommended fails at least one recommended requirement.
	FailRecommended Severity = 1
	// FailMandatory fails at least one mandatory requirement.
	FailMandatory Severity = 2
	// Fail fails at least one mandatory and one recommended requirement.
	Fail = FailRecommended | FailMandatory
)

type (
	// Severity is a two-bit flag set; compose with bitwise OR.
	Severity uint8

	// Result is the outcome of a validation or comparison: the composed severity
	// plus human-readable detail lines intended for direct display.
	Result struct {
		Severity Severity
		Details  []string
	}

	// Report accumulates rule outcomes. The zero value is a passing report.
	Report struct {
		failedRecommended bool
		failedMandatory   bool
		details           []string
	}
)

// String returns the severity name.
func (s Severity) String() string {
	switch s {
	case Pass:
		return "pass"
	case FailRecommended:
		return "fail-recommended"
	case FailMandatory:
		return "fail-mandatory"
	case Fail:
		return "fail"
	default:
		return fmt.Sprintf("Severity(%d)", uint8(s))
	}
}

// Unusable reports whether a mandatory rule failed. Callers stop on this.
func (s Severity) Unusable() bool { return s > FailRecommended }

// Failed reports whether any rule failed.
func (s Severity) Failed() bool { return s != Pass }

// Recommended records a failed recommended rule.
func (r *Report) Recommended(format string, args ...any) {
	r.failedRecommended = true
	r.details = append(r.details, fmt.Sprintf(format, args...))
}

// Mandatory records a failed mandatory rule.
func (r *Report) Mandatory(format string, args ...any) {
	r.failedMandatory = true
	r.details = append(r.details, fmt.Sprintf(format, args...))
}

// Note records an informational line without failing any rule.
func (r *Report) Note(format string, args ...any) {
	r.details = append(r.details, fmt.Sprintf(format, args...))
}

// Merge folds another result into the report.
func (r *Report) Merge(res Result) {
	r.failedRecommended = r.failedRecommended || res.Severity&FailRecommended != 0
	r.failedMandatory = r.failedMandatory || res.Severity&FailMandatory != 0
	r.details = append(r.details, res.Details...)
}

// Result returns the composed outcome.
func (r *Report) Result() Result {
	var s Severity
	if r.failedRecommended {
		s |= FailRecommended
	}
	if r.failedMandatory {
		s |= FailMandatory
	}
	return Result{Severity: s, Details: append([]string(nil), r.details...)}
}

// Passed reports whether no rule failed.
func (r Result) Passed() bool { return r.Severity == Pass }

// Detail returns the detail lines joined by newlines, with a trailing newline
// when not empty.
func (r Result) Detail() string {
	if len(r.Details) == 0 {
		return ""
	}
	return strings.Join(r.Details, "\n") + "\n"
}
