package lint

// DefaultRule provides default implementations for optional Rule interface methods.
// Rule authors embed this struct to get sensible defaults for Enabled() and Severity().
//
// Example:
//
//	type MyRule struct {
//	    lint.DefaultRule
//	}
//
//	func (r *MyRule) Name() string { return "my_rule" }
//	func (r *MyRule) Link() string { return "https://example.com/my_rule" }
//	func (r *MyRule) Check(runner lint.Runner) error { ... }
//
// With DefaultRule embedded, MyRule automatically gets:
//   - Enabled() returning true (rules are enabled by default)
//   - Severity() returning ERROR (the default severity)
type DefaultRule struct{}

// Enabled returns true, indicating rules are enabled by default.
func (r DefaultRule) Enabled() bool {
	return true
}

// Severity returns ERROR, the default severity for rules.
func (r DefaultRule) Severity() Severity {
	return ERROR
}
