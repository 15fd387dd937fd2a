// Package helper provides testing utilities for lintconflict rules.
// Use TestRunner to run a rule against in-memory configuration.
//
// Example:
//
//	func TestMyRule(t *testing.T) {
//	    runner := helper.TestRunner(t, helper.Input{
//	        ESLint:        lint.Configuration{"extends": []any{"prettier", "eslint:recommended"}},
//	        UsingPrettier: true,
//	    }, "")
//
//	    rule := &MyRule{}
//	    if err := rule.Check(runner); err != nil {
//	        t.Fatal(err)
//	    }
//
//	    helper.AssertIssues(t, helper.Issues{
//	        {Rule: rule, Message: lint.Message{Text: "...", Severity: lint.ERROR}},
//	    }, runner.Issues)
//	}
package helper

import (
	"testing"

	"github.com/jokarl/lintconflict/lint"
	"github.com/jokarl/lintconflict/runner"
	"github.com/jokarl/lintconflict/settings"
)

// Input is the configuration the test runner exposes to rules.
type Input = runner.Input

// Runner is a lint.Runner for tests. Use TestRunner to create an instance.
type Runner struct {
	*runner.Runner
}

var _ lint.Runner = (*Runner)(nil)

// TestRunner creates a Runner over input. settingsSrc is the content of a
// .lintconflict.hcl file; pass "" for none. Invalid settings fail the test.
func TestRunner(t *testing.T, input Input, settingsSrc string) *Runner {
	t.Helper()

	f := &settings.File{}
	if settingsSrc != "" {
		parsed, err := settings.Parse([]byte(settingsSrc), settings.FileName)
		if err != nil {
			t.Fatalf("failed to parse settings: %s", err)
		}
		f = parsed
	}

	return &Runner{Runner: runner.New(input, f, nil)}
}

// Messages returns the emitted messages without their rules.
func (r *Runner) Messages() []lint.Message {
	msgs := make([]lint.Message, len(r.Issues))
	for i, issue := range r.Issues {
		msgs[i] = issue.Message
	}
	return msgs
}
