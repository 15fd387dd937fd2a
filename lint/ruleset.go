package lint

// BuiltinRuleSet provides default implementations for the RuleSet interface.
// Rule set authors embed this struct and override methods as needed.
//
// Example:
//
//	rs := &lint.BuiltinRuleSet{
//	    Name:    "builtin",
//	    Version: "0.1.0",
//	    Rules:   []lint.Rule{&ESLintPrettierRule{}},
//	}
type BuiltinRuleSet struct {
	// Name is the ruleset name (e.g., "builtin").
	Name string
	// Version is the ruleset version (e.g., "0.1.0").
	Version string
	// Rules is the list of rules in this ruleset.
	Rules []Rule
	// enabledRules tracks which rules are enabled after configuration.
	enabledRules map[string]bool
}

// RuleSetName returns the name of the ruleset.
func (rs *BuiltinRuleSet) RuleSetName() string {
	return rs.Name
}

// RuleSetVersion returns the version of the ruleset.
func (rs *BuiltinRuleSet) RuleSetVersion() string {
	return rs.Version
}

// RuleNames returns the names of all rules in this ruleset.
func (rs *BuiltinRuleSet) RuleNames() []string {
	names := make([]string, len(rs.Rules))
	for i, rule := range rs.Rules {
		names[i] = rule.Name()
	}
	return names
}

// ApplyGlobalConfig applies the global rule selection.
// Handles DisabledByDefault, Only and per-rule enabled flags, in that order.
func (rs *BuiltinRuleSet) ApplyGlobalConfig(config *Config) error {
	rs.enabledRules = make(map[string]bool)

	for _, rule := range rs.Rules {
		rs.enabledRules[rule.Name()] = rule.Enabled()
	}

	if config == nil {
		return nil
	}

	if config.DisabledByDefault {
		for name := range rs.enabledRules {
			rs.enabledRules[name] = false
		}
	}

	if len(config.Only) > 0 {
		for name := range rs.enabledRules {
			rs.enabledRules[name] = false
		}
		for _, name := range config.Only {
			if _, ok := rs.enabledRules[name]; ok {
				rs.enabledRules[name] = true
			}
		}
	}

	for name, ruleConfig := range config.Rules {
		if _, ok := rs.enabledRules[name]; ok {
			rs.enabledRules[name] = ruleConfig.Enabled
		}
	}

	return nil
}

// NewRunner returns the runner unchanged by default.
// Override this method to wrap the runner with custom behavior.
func (rs *BuiltinRuleSet) NewRunner(runner Runner) (Runner, error) {
	return runner, nil
}

// BuiltinImpl returns the BuiltinRuleSet itself.
func (rs *BuiltinRuleSet) BuiltinImpl() *BuiltinRuleSet {
	return rs
}

// IsRuleEnabled returns whether a rule is enabled.
// Call this after ApplyGlobalConfig.
func (rs *BuiltinRuleSet) IsRuleEnabled(name string) bool {
	if rs.enabledRules == nil {
		// Not yet configured; use rule default
		for _, rule := range rs.Rules {
			if rule.Name() == name {
				return rule.Enabled()
			}
		}
		return false
	}
	return rs.enabledRules[name]
}

// GetRule returns a rule by name, or nil if not found.
func (rs *BuiltinRuleSet) GetRule(name string) Rule {
	for _, rule := range rs.Rules {
		if rule.Name() == name {
			return rule
		}
	}
	return nil
}

// EnabledRules returns all currently enabled rules.
func (rs *BuiltinRuleSet) EnabledRules() []Rule {
	var enabled []Rule
	for _, rule := range rs.Rules {
		if rs.IsRuleEnabled(rule.Name()) {
			enabled = append(enabled, rule)
		}
	}
	return enabled
}
