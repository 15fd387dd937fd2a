package rules

import (
	"github.com/jokarl/lintconflict/extends"
	"github.com/jokarl/lintconflict/lint"
)

// ESLintPrettierRule checks the ESLint extends array and rule overrides
// against the Prettier compatibility configurations.
type ESLintPrettierRule struct {
	lint.DefaultRule
}

// ESLintPrettierConfig is the rule's settings block:
//
//	rule "eslint_prettier_config" {
//	  enabled = true
//	  plugins = ["react", "vue"]
//	  error_rules = { react = ["react/jsx-indent"] }
//	  aliases = { airbnb = "react" }
//	}
//
// Plugins replaces the default list. Table entries replace the default
// list of the same key. Aliases are added to the default aliases.
type ESLintPrettierConfig struct {
	Plugins      []string            `hcl:"plugins,optional"`
	WarningRules map[string][]string `hcl:"warning_rules,optional"`
	ErrorRules   map[string][]string `hcl:"error_rules,optional"`
	Aliases      map[string]string   `hcl:"aliases,optional"`
}

// Params builds CheckParams for config from the rule settings.
func (c ESLintPrettierConfig) Params(config lint.Configuration, usingPrettier bool) CheckParams {
	p := CheckParams{
		Configuration: config,
		UsingPrettier: usingPrettier,
		Plugins:       c.Plugins,
	}
	if c.WarningRules != nil {
		p.WarningRules = DefaultWarningRules.Merge(c.WarningRules)
	}
	if c.ErrorRules != nil {
		p.ErrorRules = DefaultErrorRules.Merge(c.ErrorRules)
	}
	if c.Aliases != nil {
		p.Normalizer = extends.NewNormalizer(extends.MergeAliases(extends.DefaultAliases, c.Aliases))
	}
	return p
}

// Name returns the rule name.
func (r *ESLintPrettierRule) Name() string {
	return "eslint_prettier_config"
}

// Link returns the rule documentation.
func (r *ESLintPrettierRule) Link() string {
	return "https://github.com/prettier/eslint-config-prettier#installation"
}

// Check runs CheckConfiguration on the project's ESLint configuration.
func (r *ESLintPrettierRule) Check(runner lint.Runner) error {
	config, err := runner.GetESLintConfig()
	if err != nil {
		return err
	}
	if config == nil {
		return nil
	}

	var settings ESLintPrettierConfig
	if err := runner.DecodeRuleConfig(r.Name(), &settings); err != nil {
		return err
	}

	for _, msg := range CheckConfiguration(settings.Params(config, runner.UsingPrettier())) {
		if err := runner.EmitIssue(r, msg); err != nil {
			return err
		}
	}
	return nil
}
