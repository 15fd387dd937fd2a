// Package settings reads lintconflict's own settings file, .lintconflict.hcl.
//
// The file selects which rules run and carries rule-specific configuration:
//
//	disabled_by_default = false
//	only                = ["eslint_prettier_config"]
//
//	rule "vscode_fix_on_save" {
//	  enabled = false
//	}
//
//	rule "eslint_prettier_config" {
//	  plugins = ["react", "vue"]
//	}
//
// Everything in a rule block other than enabled is left undecoded until the
// rule asks for it through lint.Runner.DecodeRuleConfig.
package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/jokarl/lintconflict/lint"
)

// FileName is the settings file looked up in the project directory.
const FileName = ".lintconflict.hcl"

type fileSchema struct {
	DisabledByDefault bool        `hcl:"disabled_by_default,optional"`
	Only              []string    `hcl:"only,optional"`
	Rules             []ruleBlock `hcl:"rule,block"`
}

type ruleBlock struct {
	Name    string   `hcl:"name,label"`
	Enabled *bool    `hcl:"enabled,optional"`
	Remain  hcl.Body `hcl:",remain"`
}

// File is a parsed settings file. The zero value means "no settings".
type File struct {
	filename string
	src      []byte

	disabledByDefault bool
	only              []string
	rules             []ruleBlock
}

// Parse parses settings source. filename is used in diagnostics only.
func Parse(src []byte, filename string) (*File, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, diags
	}

	var raw fileSchema
	if diags := gohcl.DecodeBody(f.Body, nil, &raw); diags.HasErrors() {
		return nil, diags
	}

	seen := make(map[string]bool, len(raw.Rules))
	for _, rb := range raw.Rules {
		if seen[rb.Name] {
			return nil, fmt.Errorf("%s: duplicate rule block %q", filename, rb.Name)
		}
		seen[rb.Name] = true
	}

	return &File{
		filename:          filename,
		src:               src,
		disabledByDefault: raw.DisabledByDefault,
		only:              raw.Only,
		rules:             raw.Rules,
	}, nil
}

// Load reads FileName from dir. A missing file yields empty settings.
func Load(dir string) (*File, error) {
	path := filepath.Join(dir, FileName)
	src, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &File{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}
	return Parse(src, path)
}

// Source returns the raw settings source and its file name. Both are empty
// for the zero File.
func (f *File) Source() ([]byte, string) {
	if f == nil {
		return nil, ""
	}
	return f.src, f.filename
}

// GlobalConfig returns the rule selection. A rule block without an enabled
// attribute enables the rule.
func (f *File) GlobalConfig() *lint.Config {
	config := &lint.Config{Rules: make(map[string]*lint.RuleConfig)}
	if f == nil {
		return config
	}
	config.DisabledByDefault = f.disabledByDefault
	config.Only = f.only
	for _, rb := range f.rules {
		enabled := true
		if rb.Enabled != nil {
			enabled = *rb.Enabled
		}
		config.Rules[rb.Name] = &lint.RuleConfig{
			Name:    rb.Name,
			Enabled: enabled,
			Body:    rb.Remain,
		}
	}
	return config
}

// DecodeRuleConfig decodes the body of the named rule block into target,
// a pointer to a struct with hcl tags. Without a block target is untouched.
func (f *File) DecodeRuleConfig(ruleName string, target any) error {
	if f == nil {
		return nil
	}
	for _, rb := range f.rules {
		if rb.Name != ruleName || rb.Remain == nil {
			continue
		}
		if diags := gohcl.DecodeBody(rb.Remain, nil, target); diags.HasErrors() {
			return diags
		}
		return nil
	}
	return nil
}
