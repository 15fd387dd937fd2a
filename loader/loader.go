// Package loader locates and reads the configuration files lintconflict
// inspects: ESLint and Prettier configuration (rc files or package.json
// fields) and VS Code settings.
//
// Only JSON is parsed, with comments and trailing commas allowed. A YAML or
// JavaScript configuration that exists fails with ErrNoParser, which is
// distinct from finding no configuration at all.
package loader

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/tailscale/hujson"

	"github.com/jokarl/lintconflict/lint"
)

var (
	// ErrNoParser is returned for configuration files in an unsupported syntax.
	ErrNoParser = errors.New("no parser available")
	// ErrMultipleConfigs is returned when more than one file holds the same configuration.
	ErrMultipleConfigs = errors.New("multiple configurations found")
)

// ParseError reports a configuration file that could not be used.
type ParseError struct {
	FileName string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %v", e.FileName, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

//go:embed eslintrc.schema.json
var eslintSchemaSource string

var eslintSchema = jsonschema.MustCompileString("eslintrc.schema.json", eslintSchemaSource)

// Container is one configuration found in a file.
type Container struct {
	FileName string
	Config   map[string]any
}

// Loader reads configuration relative to a project directory.
type Loader struct {
	Dir    string
	Logger hclog.Logger
}

// New returns a Loader for dir. A nil logger discards output.
func New(dir string, logger hclog.Logger) *Loader {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Loader{Dir: dir, Logger: logger}
}

func (l *Loader) path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(l.Dir, name)
}

// Find returns a container for every candidate that exists and holds a
// configuration, in candidate order.
func (l *Loader) Find(candidates []Candidate) ([]Container, error) {
	var found []Container
	for _, c := range candidates {
		path := l.path(c.Name)
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			continue
		} else if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}

		if c.Format == FormatYAML || c.Format == FormatJS {
			return nil, &ParseError{FileName: path, Err: fmt.Errorf("%w for %s files", ErrNoParser, c.Format)}
		}

		doc, err := readJSON(path)
		if err != nil {
			return nil, &ParseError{FileName: path, Err: err}
		}

		config := doc
		if c.Attribute != "" {
			v := doc[c.Attribute]
			sub, ok := v.(map[string]any)
			if !ok && !(c.AnyValue && truthy(v)) {
				l.Logger.Debug("no configuration field in file", "file", path, "field", c.Attribute)
				continue
			}
			config = sub
		}
		found = append(found, Container{FileName: path, Config: config})
	}
	return found, nil
}

// truthy reports whether a decoded JSON value counts as set: anything but
// null, false, zero or the empty string.
func truthy(v any) bool {
	switch v := v.(type) {
	case nil:
		return false
	case bool:
		return v
	case float64:
		return v != 0
	case string:
		return v != ""
	default:
		return true
	}
}

func readJSON(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	std, err := hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	var doc any
	if err := json.Unmarshal(std, &doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	obj, ok := doc.(map[string]any)
	if !ok {
		return nil, errors.New("top-level value is not an object")
	}
	return obj, nil
}

// single returns the only configuration among candidates, nil if there is
// none, or ErrMultipleConfigs.
func (l *Loader) single(kind string, candidates []Candidate) (*Container, error) {
	found, err := l.Find(candidates)
	if err != nil {
		return nil, err
	}
	switch len(found) {
	case 0:
		l.Logger.Info("skipping configuration, no files found", "kind", kind)
		return nil, nil
	case 1:
		return &found[0], nil
	default:
		names := make([]string, len(found))
		for i, c := range found {
			names[i] = c.FileName
		}
		l.Logger.Error("multiple configurations detected", "kind", kind, "count", len(found), "files", names)
		return nil, fmt.Errorf("%s: %w in %s", kind, ErrMultipleConfigs, strings.Join(names, ", "))
	}
}

// LoadESLint returns the project's ESLint configuration, or nil if it has none.
func (l *Loader) LoadESLint() (lint.Configuration, string, error) {
	c, err := l.single("ESLint", ESLintCandidates)
	if err != nil || c == nil {
		return nil, "", err
	}
	if err := eslintSchema.Validate(c.Config); err != nil {
		return nil, "", &ParseError{FileName: c.FileName, Err: err}
	}
	l.Logger.Debug("loaded ESLint configuration", "file", c.FileName)
	return lint.Configuration(c.Config), c.FileName, nil
}

// LoadPrettier reports whether the project has a Prettier configuration.
func (l *Loader) LoadPrettier() (bool, error) {
	c, err := l.single("Prettier", PrettierCandidates)
	if err != nil {
		return false, err
	}
	if c != nil {
		l.Logger.Debug("found Prettier configuration", "file", c.FileName)
	}
	return c != nil, nil
}

// LoadEditor returns the workspace and user VS Code settings, or nil if
// neither exists. The first user settings file found is used.
func (l *Loader) LoadEditor(home string) (*lint.EditorSettings, error) {
	local, err := l.single("VS Code workspace", EditorLocalCandidates)
	if err != nil {
		return nil, err
	}
	var global []Container
	if home != "" {
		if global, err = l.Find(EditorGlobalCandidates(home)); err != nil {
			return nil, err
		}
	}

	if local == nil && len(global) == 0 {
		return nil, nil
	}
	settings := &lint.EditorSettings{}
	if local != nil {
		settings.Local = local.Config
	}
	if len(global) > 0 {
		settings.Global = global[0].Config
	}
	return settings, nil
}
