// SPDX-License-Identifier: MPL-2.0

package validation

import "testing"

func TestSeverity_Codes(t *testing.T) {
	t.Parallel()

	if Pass != 0 || FailRecommended != 1 || FailMandatory != 2 || Fail != 3 {
		t.Fatalf("severity codes changed: %d %d %d %d", Pass, FailRecommended, FailMandatory, Fail)
	}
	if FailRecommended|FailMandatory != Fail {
		t.Error("Fail must be the OR of both flags")
	}
}

func TestSeverity_Unusable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		s    Severity
		want bool
	}{
		{Pass, false},
		{FailRecommended, false},
		{FailMandatory, true},
		{Fail, true},
	}
	for _, tt := range tests {
		if got := tt.s.Unusable(); got != tt.want {
			t.Errorf("%v.Unusable() = %v, want %v", tt.s, got, tt.want)
		}
	}
}

func TestReport_Fold(t *testing.T) {
	t.Parallel()

	var r Report
	if got := r.Result(); !got.Passed() || got.Detail() != "" {
		t.Fatalf("empty report = %+v, want pass with no detail", got)
	}

	r.Recommended("Warning: %s", "one")
	if got := r.Result().Severity; got != FailRecommended {
		t.Errorf("after recommended = %v", got)
	}

	r.Mandatory("Error: %s", "two")
	r.Recommended("Warning: three")
	res := r.Result()
	if res.Severity != Fail {
		t.Errorf("after both = %v, want fail", res.Severity)
	}
	if len(res.Details) != 3 {
		t.Errorf("details = %v, want 3 lines", res.Details)
	}
	if want := "Warning: one\nError: two\nWarning: three\n"; res.Detail() != want {
		t.Errorf("Detail() = %q, want %q", res.Detail(), want)
	}
}

func TestReport_Merge(t *testing.T) {
	t.Parallel()

	var r Report
	r.Merge(Result{Severity: FailMandatory, Details: []string{"x"}})
	r.Merge(Result{})
	res := r.Result()
	if res.Severity != FailMandatory || len(res.Details) != 1 {
		t.Errorf("merged = %+v", res)
	}
}

func TestReport_Note(t *testing.T) {
	t.Parallel()

	var r Report
	r.Note("checked %d properties", 4)
	res := r.Result()
	if !res.Passed() {
		t.Errorf("Note must not fail the report, got %v", res.Severity)
	}
	if res.Detail() != "checked 4 properties\n" {
		t.Errorf("Detail() = %q", res.Detail())
	}
}
