package lint

// Category identifies the kind of conflict a Message reports.
type Category string

const (
	// ExtendsOrderViolation: a formatter-compatibility entry is extended
	// before the plugin it is meant to patch.
	ExtendsOrderViolation Category = "extendsOrderViolation"
	// MissingFormatterCounterpart: a formatter-sensitive plugin is extended
	// without its formatter-compatibility entry.
	MissingFormatterCounterpart Category = "missingFormatterCounterpart"
	// OverrideConflict: a rule override re-enables a rule that a
	// formatter-compatibility entry switched off.
	OverrideConflict Category = "overrideConflict"

	// ESLintDisabledInIDE: the editor's ESLint extension is disabled.
	ESLintDisabledInIDE Category = "eslintDisabledInIDE"
	// NoLocalESLintIDESaveConfig: fix-on-save is missing from the workspace settings.
	NoLocalESLintIDESaveConfig Category = "noLocalESLintIDESaveConfig"
	// IDEInfo carries informational editor findings.
	IDEInfo Category = "ideInfo"
)

// Message is a single diagnostic. Messages are plain values; two messages
// with the same content are equal.
type Message struct {
	Text     string
	Severity Severity
	Category Category
}
