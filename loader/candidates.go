package loader

import "path/filepath"

// Format is the syntax a candidate file is written in.
type Format int

const (
	// FormatNone is an extension-less rc file, read as JSON.
	FormatNone Format = iota
	// FormatJSON is JSON, comments and trailing commas allowed.
	FormatJSON
	// FormatYAML has no parser.
	FormatYAML
	// FormatJS has no parser.
	FormatJS
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatNone:
		return "rc"
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	case FormatJS:
		return "js"
	default:
		return "unknown"
	}
}

// Candidate is a place a configuration may live. Relative names are
// resolved against the loader's directory. When Attribute is set the
// configuration is that field of the file's top-level object.
type Candidate struct {
	Name      string
	Format    Format
	Attribute string

	// AnyValue accepts a truthy Attribute of any type, such as the name of
	// a shared configuration package. The container's Config is then nil.
	AnyValue bool
}

// ESLintCandidates are the ESLint configuration locations.
var ESLintCandidates = []Candidate{
	{Name: ".eslintrc", Format: FormatNone},
	{Name: ".eslintrc.json", Format: FormatJSON},
	{Name: ".eslintrc.yaml", Format: FormatYAML},
	{Name: ".eslintrc.yml", Format: FormatYAML},
	{Name: ".eslintrc.js", Format: FormatJS},
	{Name: ".eslintrc.cjs", Format: FormatJS},
	{Name: "package.json", Format: FormatJSON, Attribute: "eslintConfig"},
}

// PrettierCandidates are the Prettier configuration locations.
var PrettierCandidates = []Candidate{
	{Name: ".prettierrc", Format: FormatNone},
	{Name: ".prettierrc.json", Format: FormatJSON},
	{Name: ".prettierrc.yaml", Format: FormatYAML},
	{Name: ".prettierrc.yml", Format: FormatYAML},
	{Name: ".prettierrc.js", Format: FormatJS},
	{Name: "prettier.config.js", Format: FormatJS},
	{Name: "package.json", Format: FormatJSON, Attribute: "prettier", AnyValue: true},
}

// EditorLocalCandidates are the VS Code workspace settings locations.
var EditorLocalCandidates = []Candidate{
	{Name: filepath.Join(".vscode", "settings.json"), Format: FormatJSON},
}

// EditorGlobalCandidates returns the VS Code user settings locations under home.
func EditorGlobalCandidates(home string) []Candidate {
	return []Candidate{
		{Name: filepath.Join(home, "Library", "Application Support", "Code", "User", "settings.json"), Format: FormatJSON},
		{Name: filepath.Join(home, "Library", "Application Support", "Code - Insiders", "User", "settings.json"), Format: FormatJSON},
		{Name: filepath.Join(home, ".config", "Code", "User", "settings.json"), Format: FormatJSON},
		{Name: filepath.Join(home, ".config", "Code - Insiders", "User", "settings.json"), Format: FormatJSON},
	}
}
