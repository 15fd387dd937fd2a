package rules

import "github.com/jokarl/lintconflict/lint"

// RuleSetName is the name of the built-in rule set.
const RuleSetName = "builtin"

// NewRuleSet returns the built-in rule set.
func NewRuleSet(version string) *lint.BuiltinRuleSet {
	return &lint.BuiltinRuleSet{
		Name:    RuleSetName,
		Version: version,
		Rules: []lint.Rule{
			&ESLintPrettierRule{},
			&VSCodeESLintEnabledRule{},
			&VSCodeFixOnSaveRule{},
		},
	}
}
