package helper

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/jokarl/lintconflict/lint"
	"github.com/jokarl/lintconflict/runner"
)

// Issue is a finding from a rule for test assertions.
type Issue = runner.Issue

// Issues is a slice of Issue for convenience.
type Issues []Issue

func lessMessage(a, b lint.Message) bool {
	if a.Text != b.Text {
		return a.Text < b.Text
	}
	if a.Severity != b.Severity {
		return a.Severity < b.Severity
	}
	return a.Category < b.Category
}

// AssertIssues compares expected and actual issues, ignoring order.
// Rules are compared by name.
//
// Example:
//
//	helper.AssertIssues(t, helper.Issues{
//	    {Rule: rule, Message: lint.Message{Text: "...", Severity: lint.WARN}},
//	}, runner.Issues)
func AssertIssues(t *testing.T, want, got Issues) {
	t.Helper()

	opts := []cmp.Option{
		cmpopts.EquateEmpty(),
		cmpopts.SortSlices(func(a, b Issue) bool {
			if a.Message != b.Message {
				return lessMessage(a.Message, b.Message)
			}
			return ruleName(a.Rule) < ruleName(b.Rule)
		}),
		cmp.Comparer(func(a, b lint.Rule) bool {
			if a == nil || b == nil {
				return a == nil && b == nil
			}
			return a.Name() == b.Name()
		}),
	}

	if diff := cmp.Diff(want, got, opts...); diff != "" {
		t.Errorf("issues mismatch (-want +got):\n%s", diff)
	}
}

// AssertNoIssues verifies that no issues were emitted.
func AssertNoIssues(t *testing.T, got Issues) {
	t.Helper()
	if len(got) > 0 {
		t.Errorf("expected no issues, got %d:", len(got))
		for i, issue := range got {
			t.Errorf("  [%d] %s: %s", i, ruleName(issue.Rule), issue.Message.Text)
		}
	}
}

// AssertMessages compares expected and actual messages, ignoring order.
func AssertMessages(t *testing.T, want, got []lint.Message) {
	t.Helper()

	opts := []cmp.Option{
		cmpopts.EquateEmpty(),
		cmpopts.SortSlices(lessMessage),
	}

	if diff := cmp.Diff(want, got, opts...); diff != "" {
		t.Errorf("messages mismatch (-want +got):\n%s", diff)
	}
}

// AssertNoMessages verifies that got is empty.
func AssertNoMessages(t *testing.T, got []lint.Message) {
	t.Helper()
	if len(got) > 0 {
		t.Errorf("expected no messages, got %d:", len(got))
		for i, msg := range got {
			t.Errorf("  [%d] %s %s: %s", i, msg.Severity, msg.Category, msg.Text)
		}
	}
}

func ruleName(r lint.Rule) string {
	if r == nil {
		return ""
	}
	return r.Name()
}
