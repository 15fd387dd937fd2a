package lint

import "github.com/hashicorp/hcl/v2"

// Config represents the global rule selection read from the settings file.
type Config struct {
	// Rules maps rule names to their configuration.
	Rules map[string]*RuleConfig
	// DisabledByDefault indicates if rules are disabled by default.
	// When true, rules must be explicitly enabled.
	DisabledByDefault bool
	// Only enables only these rules if set.
	// Rule blocks are applied after this filter.
	Only []string
}

// RuleConfig represents configuration for a single rule.
type RuleConfig struct {
	// Name is the rule name.
	Name string
	// Enabled indicates if the rule is enabled.
	Enabled bool
	// Body is the raw HCL body for rule-specific configuration.
	// Rules decode it through Runner.DecodeRuleConfig().
	Body hcl.Body
}
