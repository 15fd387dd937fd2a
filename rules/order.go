// Package rules implements lintconflict's checks: the pure functions that
// derive messages from parsed configuration, and the lint.Rule values that
// run them against a lint.Runner.
package rules

import (
	"fmt"
	"strings"

	"github.com/jokarl/lintconflict/extends"
	"github.com/jokarl/lintconflict/lint"
)

// ApplyExtendsOrderRule reports Prettier compatibility entries extended
// before the plugin they patch, and formatter-sensitive plugins extended
// without one. plugins holds key fragments matched by substring.
func ApplyExtendsOrderRule(m *extends.Mapping, plugins []string) []lint.Message {
	var msgs []lint.Message
	m.Each(func(key string, r extends.Record) {
		if r.HasPrettier() && r.HasBase() && r.PrettierPosition < r.Position {
			msgs = append(msgs, lint.Message{
				Text: fmt.Sprintf(
					"%s is extended before the %s plugin in the ESLint extends array; it must come after the plugin it disables rules for",
					r.PrettierPluginName, r.PluginName,
				),
				Severity: lint.ERROR,
				Category: lint.ExtendsOrderViolation,
			})
			return
		}

		if !r.HasPrettier() && matchesAny(key, plugins) {
			msgs = append(msgs, lint.Message{
				Text: fmt.Sprintf(
					"The rules of the ESLint %s plugin may conflict with Prettier. Extend the %s configuration to disable them",
					r.PluginName, prettierEntryFor(key),
				),
				Severity: lint.ERROR,
				Category: lint.MissingFormatterCounterpart,
			})
		}
	})
	return msgs
}

func matchesAny(key string, fragments []string) bool {
	for _, f := range fragments {
		if strings.Contains(key, f) {
			return true
		}
	}
	return false
}

// prettierEntryFor returns the extends entry that pairs with key.
func prettierEntryFor(key string) string {
	if key == extends.BaseKey {
		return extends.FormatterToken
	}
	return extends.FormatterPrefix + key
}
