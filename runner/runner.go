// Package runner executes rule sets against a project's loaded
// configuration. Runner is the lint.Runner handed to every rule; Run applies
// the settings file's rule selection and checks each enabled rule in turn.
package runner

import (
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/jokarl/lintconflict/lint"
	"github.com/jokarl/lintconflict/settings"
)

// Input is the configuration the rules inspect. A nil ESLint or Editor
// means the project has none.
type Input struct {
	ESLint        lint.Configuration   `json:"eslint,omitempty"`
	UsingPrettier bool                 `json:"using_prettier"`
	Editor        *lint.EditorSettings `json:"editor,omitempty"`
}

// Issue is a message together with the rule that emitted it.
type Issue struct {
	Rule    lint.Rule
	Message lint.Message
}

// Runner implements lint.Runner over an Input.
type Runner struct {
	input    Input
	settings *settings.File
	logger   hclog.Logger

	// Issues holds every emitted message in emission order.
	Issues []Issue
}

var _ lint.Runner = (*Runner)(nil)

// New returns a Runner over input. A nil settings file means no settings;
// a nil logger discards output.
func New(input Input, s *settings.File, logger hclog.Logger) *Runner {
	if s == nil {
		s = &settings.File{}
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Runner{input: input, settings: s, logger: logger}
}

// GetESLintConfig returns the ESLint configuration, nil if there is none.
func (r *Runner) GetESLintConfig() (lint.Configuration, error) {
	return r.input.ESLint, nil
}

// UsingPrettier reports whether a Prettier configuration was found.
func (r *Runner) UsingPrettier() bool {
	return r.input.UsingPrettier
}

// GetEditorSettings returns the VS Code settings, nil if there are none.
func (r *Runner) GetEditorSettings() (*lint.EditorSettings, error) {
	return r.input.Editor, nil
}

// EmitIssue records msg for rule.
func (r *Runner) EmitIssue(rule lint.Rule, msg lint.Message) error {
	r.logger.Debug("issue emitted", "rule", rule.Name(), "severity", msg.Severity, "category", msg.Category)
	r.Issues = append(r.Issues, Issue{Rule: rule, Message: msg})
	return nil
}

// DecodeRuleConfig decodes the rule's block from the settings file.
func (r *Runner) DecodeRuleConfig(ruleName string, target any) error {
	if err := r.settings.DecodeRuleConfig(ruleName, target); err != nil {
		return fmt.Errorf("decode settings for rule %s: %w", ruleName, err)
	}
	return nil
}

// Collect adds the emitted messages to c, keyed by rule name.
func (r *Runner) Collect(c *lint.Collector) {
	for _, issue := range r.Issues {
		c.Add(issue.Rule.Name(), issue.Message)
	}
}

// Run applies the settings to rs and checks every enabled rule with r.
func Run(rs lint.RuleSet, r *Runner) error {
	if err := rs.ApplyGlobalConfig(r.settings.GlobalConfig()); err != nil {
		return fmt.Errorf("apply settings to rule set %s: %w", rs.RuleSetName(), err)
	}

	wrapped, err := rs.NewRunner(r)
	if err != nil {
		return fmt.Errorf("rule set %s: %w", rs.RuleSetName(), err)
	}

	for _, rule := range rs.BuiltinImpl().EnabledRules() {
		r.logger.Debug("running rule", "ruleset", rs.RuleSetName(), "rule", rule.Name())
		if err := rule.Check(wrapped); err != nil {
			return fmt.Errorf("rule %s: %w", rule.Name(), err)
		}
	}
	return nil
}
