package lint

// Rule is the interface that all lintconflict rules implement.
//
// Rule authors typically embed DefaultRule to get default implementations
// for Enabled() and Severity(), then implement the remaining methods.
//
// Example:
//
//	type MyRule struct {
//	    lint.DefaultRule
//	}
//
//	func (r *MyRule) Name() string { return "my_rule" }
//	func (r *MyRule) Link() string { return "https://example.com/my_rule" }
//	func (r *MyRule) Check(runner lint.Runner) error {
//	    config, err := runner.GetESLintConfig()
//	    if err != nil || config == nil {
//	        return err
//	    }
//	    // Inspect config and emit messages
//	    return nil
//	}
type Rule interface {
	// Name returns the unique name of the rule.
	// Convention: lowercase with underscores (e.g., "eslint_prettier_config").
	Name() string

	// Enabled returns whether the rule is enabled by default.
	Enabled() bool

	// Severity returns the highest severity the rule emits.
	Severity() Severity

	// Link returns a URL to documentation about the rule.
	Link() string

	// Check executes the rule against the configuration accessible via runner.
	// Call runner.EmitIssue() for each finding.
	// Return an error only for unexpected failures, not for findings.
	Check(runner Runner) error
}

// RuleSet is implemented by plugins to provide a collection of rules.
// Implementations typically embed BuiltinRuleSet and override methods as needed.
type RuleSet interface {
	// RuleSetName returns the name of the ruleset (e.g., "builtin").
	RuleSetName() string

	// RuleSetVersion returns the version of the ruleset (e.g., "0.1.0").
	RuleSetVersion() string

	// RuleNames returns the names of all rules in this ruleset.
	RuleNames() []string

	// ApplyGlobalConfig applies the global rule selection from the settings file.
	ApplyGlobalConfig(*Config) error

	// NewRunner optionally wraps the runner with custom behavior.
	// Return the runner unchanged if no customization is needed.
	NewRunner(Runner) (Runner, error)

	// BuiltinImpl returns the embedded BuiltinRuleSet.
	// Used internally for rule iteration.
	BuiltinImpl() *BuiltinRuleSet
}

// Runner provides access to the project's parsed configuration files during
// rule execution and records the messages rules emit.
type Runner interface {
	// GetESLintConfig returns the project's ESLint configuration,
	// or nil if the project has none.
	GetESLintConfig() (Configuration, error)

	// UsingPrettier reports whether the project has a Prettier configuration.
	UsingPrettier() bool

	// GetEditorSettings returns the local and global VS Code settings,
	// or nil if none were loaded.
	GetEditorSettings() (*EditorSettings, error)

	// EmitIssue records a message emitted by rule.
	EmitIssue(rule Rule, msg Message) error

	// DecodeRuleConfig retrieves and decodes the rule's configuration from
	// the settings file. The target should be a pointer to a struct with hcl tags.
	// Returns nil and leaves target untouched if the rule has no configuration.
	//
	// Example:
	//
	//	type MyRuleConfig struct {
	//	    Plugins []string `hcl:"plugins,optional"`
	//	}
	//	var config MyRuleConfig
	//	if err := runner.DecodeRuleConfig("my_rule", &config); err != nil {
	//	    return err
	//	}
	DecodeRuleConfig(ruleName string, target any) error
}
