package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jokarl/lintconflict/lint"
)

func sampleCollector() *lint.Collector {
	var c lint.Collector
	c.Add("eslint_prettier_config", lint.Message{
		Text:     "prettier/react is extended before the react plugin",
		Severity: lint.ERROR,
		Category: lint.ExtendsOrderViolation,
	})
	c.Add("vscode_fix_on_save", lint.Message{
		Text:     "Your IDE will fix your ESLint errors on save.",
		Severity: lint.INFO,
		Category: lint.IDEInfo,
	})
	return &c
}

func TestPrinter_Print(t *testing.T) {
	var out bytes.Buffer
	p := &Printer{Out: &out}

	if err := p.Print(sampleCollector()); err != nil {
		t.Fatalf("Print() error = %v", err)
	}

	want := `
-------------eslint_prettier_config----------

extendsOrderViolation:
prettier/react is extended before the react plugin

-------------vscode_fix_on_save----------

ideInfo:
Your IDE will fix your ESLint errors on save.

`
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("Print() mismatch (-want +got):\n%s", diff)
	}
}

func TestPrinter_PrintEmpty(t *testing.T) {
	var out bytes.Buffer
	if err := (&Printer{Out: &out}).Print(&lint.Collector{}); err != nil {
		t.Fatal(err)
	}
	if out.String() != "\n" {
		t.Errorf("Print() = %q, want a single newline", out.String())
	}
}

func TestPrinter_PrintColor(t *testing.T) {
	var out bytes.Buffer
	if err := (&Printer{Out: &out, Color: true}).Print(sampleCollector()); err != nil {
		t.Fatal(err)
	}

	// A buffer is not a terminal, so the renderer drops color codes.
	for _, s := range []string{"eslint_prettier_config", "extendsOrderViolation:", "ideInfo:"} {
		if !strings.Contains(out.String(), s) {
			t.Errorf("output missing %q:\n%s", s, out.String())
		}
	}
}

func TestExitCode(t *testing.T) {
	if got := ExitCode(sampleCollector()); got != 1 {
		t.Errorf("ExitCode() with errors = %d, want 1", got)
	}

	var c lint.Collector
	c.Add("vscode_eslint_enabled", lint.Message{Text: "disabled", Severity: lint.WARN})
	if got := ExitCode(&c); got != 0 {
		t.Errorf("ExitCode() with warnings = %d, want 0", got)
	}
	if got := ExitCode(&lint.Collector{}); got != 0 {
		t.Errorf("ExitCode() empty = %d, want 0", got)
	}
}
