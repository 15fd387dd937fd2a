package rules

import (
	"fmt"
	"slices"

	"github.com/jokarl/lintconflict/extends"
	"github.com/jokarl/lintconflict/lint"
)

// ApplyNoFormattingOverrideRule reports rule overrides that re-enable a rule
// switched off by an extended Prettier compatibility configuration. Only the
// keys of overrides are inspected. A rule listed in both tables for the same
// plugin yields both a WARN and an ERROR.
func ApplyNoFormattingOverrideRule(m *extends.Mapping, overrides map[string]any, warningRules, errorRules RuleTable) []lint.Message {
	names := make([]string, 0, len(overrides))
	for name := range overrides {
		names = append(names, name)
	}
	slices.Sort(names)

	var msgs []lint.Message
	m.Each(func(key string, r extends.Record) {
		if !r.HasPrettier() {
			return
		}
		for _, name := range names {
			if warningRules.Contains(key, name) {
				msgs = append(msgs, overrideMessage(name, r, lint.WARN))
			}
			if errorRules.Contains(key, name) {
				msgs = append(msgs, overrideMessage(name, r, lint.ERROR))
			}
		}
	})
	return msgs
}

func overrideMessage(rule string, r extends.Record, severity lint.Severity) lint.Message {
	return lint.Message{
		Text:     fmt.Sprintf("%s is overridden in your ESLint config but was disabled by %s", rule, r.PrettierPluginName),
		Severity: severity,
		Category: lint.OverrideConflict,
	}
}
