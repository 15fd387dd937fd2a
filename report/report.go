// Package report prints collected messages for a terminal.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jokarl/lintconflict/lint"
)

// Printer writes a Collector's messages to Out. Messages are grouped under
// a header per key:
//
//	-------------eslint_prettier_config----------
//
//	extendsOrderViolation:
//	prettier/react is extended before the react plugin ...
//
// With Color set, categories are colored by severity when Out is a terminal.
type Printer struct {
	Out   io.Writer
	Color bool
}

type styles struct {
	header   lipgloss.Style
	severity map[lint.Severity]lipgloss.Style
}

func (p *Printer) styles() *styles {
	if !p.Color {
		return nil
	}
	r := lipgloss.NewRenderer(p.Out)
	return &styles{
		header: r.NewStyle().Bold(true),
		severity: map[lint.Severity]lipgloss.Style{
			lint.ERROR: r.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
			lint.WARN:  r.NewStyle().Foreground(lipgloss.Color("220")),
			lint.INFO:  r.NewStyle().Foreground(lipgloss.Color("69")),
		},
	}
}

func (s *styles) renderHeader(text string) string {
	if s == nil {
		return text
	}
	return s.header.Render(text)
}

func (s *styles) renderCategory(sev lint.Severity, text string) string {
	if s == nil {
		return text
	}
	style, ok := s.severity[sev]
	if !ok {
		return text
	}
	return style.Render(text)
}

// Print writes every message in c, keys in the order they were added.
func (p *Printer) Print(c *lint.Collector) error {
	s := p.styles()

	var b strings.Builder
	for _, key := range c.Keys() {
		b.WriteString("\n")
		b.WriteString(s.renderHeader(fmt.Sprintf("-------------%s----------", key)))
		b.WriteString("\n")
		for _, msg := range c.Messages(key) {
			b.WriteString("\n")
			b.WriteString(s.renderCategory(msg.Severity, string(msg.Category)+":"))
			b.WriteString("\n")
			b.WriteString(msg.Text)
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")

	_, err := io.WriteString(p.Out, b.String())
	return err
}

// ExitCode returns 1 when c holds an ERROR message and 0 otherwise.
func ExitCode(c *lint.Collector) int {
	if c.HasErrors() {
		return 1
	}
	return 0
}
