package helper

import (
	"testing"

	"github.com/jokarl/lintconflict/lint"
)

// configRule emits the decoded setting as a message.
type configRule struct {
	lint.DefaultRule
}

func (r *configRule) Name() string { return "config_rule" }
func (r *configRule) Link() string { return "" }
func (r *configRule) Check(runner lint.Runner) error {
	var config struct {
		Text string `hcl:"text,optional"`
	}
	if err := runner.DecodeRuleConfig(r.Name(), &config); err != nil {
		return err
	}
	return runner.EmitIssue(r, lint.Message{Text: config.Text, Severity: lint.INFO})
}

func TestTestRunner_ExposesInput(t *testing.T) {
	input := Input{
		ESLint:        lint.Configuration{"extends": []any{"eslint:recommended"}},
		UsingPrettier: true,
		Editor:        &lint.EditorSettings{Global: map[string]any{"eslint.enabled": false}},
	}
	runner := TestRunner(t, input, "")

	config, err := runner.GetESLintConfig()
	if err != nil {
		t.Fatal(err)
	}
	if entries, ok := config.Extends(); !ok || len(entries) != 1 {
		t.Errorf("Extends() = %v, %v; want one entry", entries, ok)
	}
	if !runner.UsingPrettier() {
		t.Error("UsingPrettier() = false, want true")
	}
	editor, err := runner.GetEditorSettings()
	if err != nil {
		t.Fatal(err)
	}
	if editor.Global["eslint.enabled"] != false {
		t.Errorf("Global settings = %v", editor.Global)
	}
}

func TestTestRunner_EmptyInput(t *testing.T) {
	runner := TestRunner(t, Input{}, "")

	config, err := runner.GetESLintConfig()
	if err != nil || config != nil {
		t.Errorf("GetESLintConfig() = %v, %v; want nil, nil", config, err)
	}
	editor, err := runner.GetEditorSettings()
	if err != nil || editor != nil {
		t.Errorf("GetEditorSettings() = %v, %v; want nil, nil", editor, err)
	}
}

func TestTestRunner_Settings(t *testing.T) {
	runner := TestRunner(t, Input{}, `
rule "config_rule" {
  text = "configured"
}
`)

	rule := &configRule{}
	if err := rule.Check(runner); err != nil {
		t.Fatal(err)
	}

	AssertIssues(t, Issues{
		{Rule: rule, Message: lint.Message{Text: "configured", Severity: lint.INFO}},
	}, runner.Issues)
	AssertMessages(t, []lint.Message{{Text: "configured", Severity: lint.INFO}}, runner.Messages())
}

func TestRunner_EmitIssue(t *testing.T) {
	runner := TestRunner(t, Input{}, "")
	rule := &testRuleForIssue{name: "test_rule"}

	first := lint.Message{Text: "first", Severity: lint.ERROR}
	second := lint.Message{Text: "second", Severity: lint.WARN}
	if err := runner.EmitIssue(rule, first); err != nil {
		t.Fatal(err)
	}
	if err := runner.EmitIssue(rule, second); err != nil {
		t.Fatal(err)
	}

	if len(runner.Issues) != 2 {
		t.Fatalf("expected 2 issues, got %d", len(runner.Issues))
	}
	if runner.Issues[0].Message != first || runner.Issues[1].Message != second {
		t.Errorf("issues out of emission order: %+v", runner.Issues)
	}
}
