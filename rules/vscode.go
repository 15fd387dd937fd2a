package rules

import (
	"github.com/jokarl/lintconflict/lint"
)

const (
	eslintEnabledSetting = "eslint.enabled"
	codeActionsSetting   = "editor.codeActionsOnSave"
)

// fixAllActions are the code actions that run ESLint fixes on save.
var fixAllActions = []string{"source.fixAll.eslint", "source.fixAll"}

func boolSetting(settings map[string]any, key string) (value, set bool) {
	value, set = settings[key].(bool)
	return value, set
}

// ApplyESLintEnabledRule warns when the ESLint extension is disabled either
// in the user settings or in the workspace settings.
func ApplyESLintEnabledRule(s lint.EditorSettings) []lint.Message {
	local, localSet := boolSetting(s.Local, eslintEnabledSetting)
	global, globalSet := boolSetting(s.Global, eslintEnabledSetting)

	switch {
	case !local && globalSet && !global:
		return []lint.Message{{
			Text:     "Your ESLint extension is disabled in your user settings. Consider enabling it for this project or change the global setting.",
			Severity: lint.WARN,
			Category: lint.ESLintDisabledInIDE,
		}}
	case localSet && !local:
		return []lint.Message{{
			Text:     "ESLint is disabled in your IDE because of the 'eslint.enabled' property in your VS Code workspace settings. Consider removing it or setting it to true.",
			Severity: lint.WARN,
			Category: lint.ESLintDisabledInIDE,
		}}
	}
	return nil
}

type fixState int

const (
	fixUnset fixState = iota
	fixOn
	fixOff
)

func actionState(v any) fixState {
	switch v := v.(type) {
	case bool:
		if v {
			return fixOn
		}
		return fixOff
	case string:
		// VS Code also accepts "explicit", "always" and "never".
		if v == "never" {
			return fixOff
		}
		return fixOn
	}
	return fixUnset
}

// fixOnSave reads whether ESLint fixes run on save. Either action being on
// wins over the other being off.
func fixOnSave(settings map[string]any) fixState {
	switch actions := settings[codeActionsSetting].(type) {
	case map[string]any:
		state := fixUnset
		for _, name := range fixAllActions {
			switch actionState(actions[name]) {
			case fixOn:
				return fixOn
			case fixOff:
				state = fixOff
			}
		}
		return state
	case []any:
		for _, a := range actions {
			for _, name := range fixAllActions {
				if a == name {
					return fixOn
				}
			}
		}
	}
	return fixUnset
}

// ApplyFixOnSaveRule reports whether ESLint fixes are applied on save by
// the workspace settings.
func ApplyFixOnSaveRule(s lint.EditorSettings) []lint.Message {
	local := fixOnSave(s.Local)
	global := fixOnSave(s.Global)

	switch {
	case global == fixOn && local == fixUnset:
		return []lint.Message{{
			Text:     "Your ESLint errors will be fixed in VS Code on save because of the 'editor.codeActionsOnSave' property in your user settings. Consider adding it to the workspace settings so other developers also benefit from it.",
			Severity: lint.WARN,
			Category: lint.NoLocalESLintIDESaveConfig,
		}}
	case local == fixOn:
		return []lint.Message{{
			Text:     "Your IDE will fix your ESLint errors on save.",
			Severity: lint.INFO,
			Category: lint.IDEInfo,
		}}
	case local == fixOff:
		return []lint.Message{{
			Text:     "Your ESLint errors will not be fixed automatically on save because 'editor.codeActionsOnSave' disables it in your workspace settings.",
			Severity: lint.WARN,
			Category: lint.NoLocalESLintIDESaveConfig,
		}}
	default:
		return []lint.Message{{
			Text:     "Your ESLint errors will not be fixed automatically on save. Consider adding the 'editor.codeActionsOnSave' property to your workspace settings.",
			Severity: lint.WARN,
			Category: lint.NoLocalESLintIDESaveConfig,
		}}
	}
}

// VSCodeESLintEnabledRule runs ApplyESLintEnabledRule.
type VSCodeESLintEnabledRule struct {
	lint.DefaultRule
}

// Name returns the rule name.
func (r *VSCodeESLintEnabledRule) Name() string { return "vscode_eslint_enabled" }

// Severity returns WARN.
func (r *VSCodeESLintEnabledRule) Severity() lint.Severity { return lint.WARN }

// Link returns the rule documentation.
func (r *VSCodeESLintEnabledRule) Link() string {
	return "https://github.com/microsoft/vscode-eslint#settings-options"
}

// Check runs the rule against the editor settings.
func (r *VSCodeESLintEnabledRule) Check(runner lint.Runner) error {
	return checkEditor(runner, r, ApplyESLintEnabledRule)
}

// VSCodeFixOnSaveRule runs ApplyFixOnSaveRule.
type VSCodeFixOnSaveRule struct {
	lint.DefaultRule
}

// Name returns the rule name.
func (r *VSCodeFixOnSaveRule) Name() string { return "vscode_fix_on_save" }

// Severity returns WARN.
func (r *VSCodeFixOnSaveRule) Severity() lint.Severity { return lint.WARN }

// Link returns the rule documentation.
func (r *VSCodeFixOnSaveRule) Link() string {
	return "https://github.com/microsoft/vscode-eslint#settings-options"
}

// Check runs the rule against the editor settings.
func (r *VSCodeFixOnSaveRule) Check(runner lint.Runner) error {
	return checkEditor(runner, r, ApplyFixOnSaveRule)
}

func checkEditor(runner lint.Runner, rule lint.Rule, apply func(lint.EditorSettings) []lint.Message) error {
	settings, err := runner.GetEditorSettings()
	if err != nil {
		return err
	}
	if settings == nil {
		return nil
	}
	for _, msg := range apply(*settings) {
		if err := runner.EmitIssue(rule, msg); err != nil {
			return err
		}
	}
	return nil
}
