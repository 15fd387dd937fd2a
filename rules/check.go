package rules

import (
	"github.com/jokarl/lintconflict/extends"
	"github.com/jokarl/lintconflict/lint"
)

// CheckParams holds the inputs of CheckConfiguration. Nil lookup data falls
// back to the package defaults; a non-nil empty value is used as given.
type CheckParams struct {
	Configuration lint.Configuration
	UsingPrettier bool

	Plugins      []string
	WarningRules RuleTable
	ErrorRules   RuleTable
	Normalizer   *extends.Normalizer
}

func (p CheckParams) withDefaults() CheckParams {
	if p.Plugins == nil {
		p.Plugins = DefaultPlugins
	}
	if p.WarningRules == nil {
		p.WarningRules = DefaultWarningRules
	}
	if p.ErrorRules == nil {
		p.ErrorRules = DefaultErrorRules
	}
	if p.Normalizer == nil {
		p.Normalizer = extends.DefaultNormalizer()
	}
	return p
}

// CheckConfiguration checks an ESLint configuration for conflicts with
// Prettier. Without an extends array, or when Prettier is not in use, there
// is nothing to check and the result is empty.
func CheckConfiguration(p CheckParams) []lint.Message {
	msgs := []lint.Message{}

	entries, ok := p.Configuration.Extends()
	if !ok || !p.UsingPrettier {
		return msgs
	}
	p = p.withDefaults()

	m := p.Normalizer.MapValues(entries)
	msgs = append(msgs, ApplyExtendsOrderRule(m, p.Plugins)...)

	overrides, ok := p.Configuration.RuleOverrides()
	if !ok {
		return msgs
	}
	return append(msgs, ApplyNoFormattingOverrideRule(m, overrides, p.WarningRules, p.ErrorRules)...)
}
