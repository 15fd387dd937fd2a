// Package lint provides the rule model shared by lintconflict's built-in
// rules, its runner and external rule set plugins.
//
// The naming and structure follow tflint-plugin-sdk: rules are small values
// implementing Rule, grouped in a RuleSet, and executed against a Runner
// which hands out parsed configuration and records emitted messages.
//
// Key types:
//   - Severity: message severity levels (ERROR, WARN, INFO)
//   - Category: the kind of conflict a message reports
//   - Message: a single diagnostic, pure data
//   - Configuration: a parsed ESLint configuration object
//   - Collector: messages grouped under caller-chosen keys
//   - Rule, RuleSet, Runner: the rule execution contract
package lint

// Severity represents the severity level of a message.
type Severity int

const (
	// ERROR indicates a conflict that breaks formatting or linting.
	ERROR Severity = iota + 1
	// WARN indicates a setup that probably needs attention.
	WARN
	// INFO indicates an informational finding.
	INFO
)

// String returns the string representation of the severity.
func (s Severity) String() string {
	switch s {
	case ERROR:
		return "ERROR"
	case WARN:
		return "WARN"
	case INFO:
		return "INFO"
	default:
		return "UNKNOWN"
	}
}

// ParseSeverity returns the severity named by s, or false if s names none.
func ParseSeverity(s string) (Severity, bool) {
	switch s {
	case "ERROR", "error":
		return ERROR, true
	case "WARN", "warn", "WARNING", "warning":
		return WARN, true
	case "INFO", "info":
		return INFO, true
	}
	return 0, false
}
