package plugin

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jokarl/lintconflict/lint"
)

// testRule is a minimal rule for testing.
type testRule struct {
	lint.DefaultRule
	name string
}

func (r *testRule) Name() string              { return r.name }
func (r *testRule) Link() string              { return "" }
func (r *testRule) Check(_ lint.Runner) error { return nil }

func TestServe_NilOpts(t *testing.T) {
	// Should not panic with nil opts
	Serve(nil)
}

func TestServe_NilRuleSet(t *testing.T) {
	Serve(&ServeOpts{RuleSet: nil})
}

func TestServe_DirectInvocation(t *testing.T) {
	t.Setenv(MagicCookieKey, "")

	rs := &lint.BuiltinRuleSet{
		Name:    "test",
		Version: "1.0.0",
		Rules:   []lint.Rule{&testRule{name: "test_rule"}},
	}

	// Returns instead of serving without the magic cookie.
	Serve(&ServeOpts{RuleSet: rs})
}

func TestPrintDirectInvocationMessage(t *testing.T) {
	rs := &lint.BuiltinRuleSet{
		Name:    "validation-test",
		Version: "0.1.0",
		Rules: []lint.Rule{
			&testRule{name: "rule1"},
			&testRule{name: "rule2"},
		},
	}

	var out bytes.Buffer
	printDirectInvocationMessage(&out, rs)

	for _, want := range []string{"Plugin: validation-test", "Version: 0.1.0", "  - rule1", "  - rule2", "lintconflict --plugin"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}
