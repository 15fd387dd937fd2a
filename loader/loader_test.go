package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jokarl/lintconflict/lint"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadESLint(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
		want  lint.Configuration
		file  string
	}{
		{
			name: "no configuration",
		},
		{
			name: "rc file with comments",
			files: map[string]string{
				".eslintrc": `{
  // base first
  "extends": ["eslint:recommended", "prettier",],
}`,
			},
			want: lint.Configuration{"extends": []any{"eslint:recommended", "prettier"}},
			file: ".eslintrc",
		},
		{
			name: "json file",
			files: map[string]string{
				".eslintrc.json": `{"extends": "eslint:recommended", "rules": {"semi": "error"}}`,
			},
			want: lint.Configuration{"extends": "eslint:recommended", "rules": map[string]any{"semi": "error"}},
			file: ".eslintrc.json",
		},
		{
			name: "package.json field",
			files: map[string]string{
				"package.json": `{"name": "app", "eslintConfig": {"extends": ["react-app"]}}`,
			},
			want: lint.Configuration{"extends": []any{"react-app"}},
			file: "package.json",
		},
		{
			name: "package.json without field",
			files: map[string]string{
				"package.json": `{"name": "app"}`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for name, content := range tt.files {
				writeFile(t, dir, name, content)
			}

			got, file, err := New(dir, nil).LoadESLint()
			if err != nil {
				t.Fatalf("LoadESLint() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("LoadESLint() mismatch (-want +got):\n%s", diff)
			}
			wantFile := ""
			if tt.file != "" {
				wantFile = filepath.Join(dir, tt.file)
			}
			if file != wantFile {
				t.Errorf("file = %q, want %q", file, wantFile)
			}
		})
	}
}

func TestLoadESLint_Errors(t *testing.T) {
	tests := []struct {
		name    string
		files   map[string]string
		wantErr error
	}{
		{
			name:    "yaml",
			files:   map[string]string{".eslintrc.yaml": "extends: prettier\n"},
			wantErr: ErrNoParser,
		},
		{
			name:    "javascript",
			files:   map[string]string{".eslintrc.js": "module.exports = {}\n"},
			wantErr: ErrNoParser,
		},
		{
			name: "rc file and package.json field",
			files: map[string]string{
				".eslintrc.json": `{}`,
				"package.json":   `{"eslintConfig": {}}`,
			},
			wantErr: ErrMultipleConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for name, content := range tt.files {
				writeFile(t, dir, name, content)
			}

			_, _, err := New(dir, nil).LoadESLint()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("LoadESLint() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadESLint_ParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"invalid json", `{"extends": [`},
		{"not an object", `["prettier"]`},
		{"extends of wrong type", `{"extends": 3}`},
		{"extends array of objects", `{"extends": [{"name": "prettier"}]}`},
		{"rules not an object", `{"rules": ["semi"]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := writeFile(t, dir, ".eslintrc.json", tt.content)

			_, _, err := New(dir, nil).LoadESLint()
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("LoadESLint() error = %v, want *ParseError", err)
			}
			if parseErr.FileName != path {
				t.Errorf("FileName = %q, want %q", parseErr.FileName, path)
			}
		})
	}
}

func TestLoadPrettier(t *testing.T) {
	tests := []struct {
		name    string
		files   map[string]string
		want    bool
		wantErr error
	}{
		{name: "none"},
		{
			name:  "rc file",
			files: map[string]string{".prettierrc": `{"semi": false}`},
			want:  true,
		},
		{
			name:  "package.json field",
			files: map[string]string{"package.json": `{"prettier": {"singleQuote": true}}`},
			want:  true,
		},
		{
			name:  "package.json shared configuration",
			files: map[string]string{"package.json": `{"prettier": "@company/prettier-config"}`},
			want:  true,
		},
		{
			name:  "package.json field false",
			files: map[string]string{"package.json": `{"prettier": false}`},
		},
		{
			name:  "package.json field empty string",
			files: map[string]string{"package.json": `{"prettier": ""}`},
		},
		{
			name:  "package.json field null",
			files: map[string]string{"package.json": `{"prettier": null}`},
		},
		{
			name: "shared configuration and rc file",
			files: map[string]string{
				".prettierrc":  `{}`,
				"package.json": `{"prettier": "@company/prettier-config"}`,
			},
			wantErr: ErrMultipleConfigs,
		},
		{
			name:    "yaml",
			files:   map[string]string{".prettierrc.yml": "semi: false\n"},
			wantErr: ErrNoParser,
		},
		{
			name: "two configurations",
			files: map[string]string{
				".prettierrc.json": `{}`,
				"package.json":     `{"prettier": {}}`,
			},
			wantErr: ErrMultipleConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for name, content := range tt.files {
				writeFile(t, dir, name, content)
			}

			got, err := New(dir, nil).LoadPrettier()
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("LoadPrettier() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("LoadPrettier() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoadEditor(t *testing.T) {
	t.Run("none", func(t *testing.T) {
		got, err := New(t.TempDir(), nil).LoadEditor(t.TempDir())
		if err != nil {
			t.Fatal(err)
		}
		if got != nil {
			t.Errorf("LoadEditor() = %+v, want nil", got)
		}
	})

	t.Run("workspace and user settings", func(t *testing.T) {
		dir := t.TempDir()
		home := t.TempDir()
		writeFile(t, dir, filepath.Join(".vscode", "settings.json"), `{
  "eslint.enabled": true, // project
}`)
		writeFile(t, home, filepath.Join(".config", "Code", "User", "settings.json"), `{"eslint.enabled": false}`)
		writeFile(t, home, filepath.Join(".config", "Code - Insiders", "User", "settings.json"), `{"eslint.enabled": true}`)

		got, err := New(dir, nil).LoadEditor(home)
		if err != nil {
			t.Fatal(err)
		}
		want := &lint.EditorSettings{
			Local:  map[string]any{"eslint.enabled": true},
			Global: map[string]any{"eslint.enabled": false},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("LoadEditor() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("user settings only", func(t *testing.T) {
		home := t.TempDir()
		writeFile(t, home, filepath.Join("Library", "Application Support", "Code", "User", "settings.json"), `{"editor.formatOnSave": true}`)

		got, err := New(t.TempDir(), nil).LoadEditor(home)
		if err != nil {
			t.Fatal(err)
		}
		if got == nil || got.Local != nil || got.Global["editor.formatOnSave"] != true {
			t.Errorf("LoadEditor() = %+v", got)
		}
	})

	t.Run("no home directory", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, filepath.Join(".vscode", "settings.json"), `{}`)

		got, err := New(dir, nil).LoadEditor("")
		if err != nil {
			t.Fatal(err)
		}
		if got == nil || got.Global != nil {
			t.Errorf("LoadEditor() = %+v, want local settings only", got)
		}
	})

	t.Run("invalid workspace settings", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, filepath.Join(".vscode", "settings.json"), `{`)

		_, err := New(dir, nil).LoadEditor("")
		var parseErr *ParseError
		if !errors.As(err, &parseErr) {
			t.Errorf("LoadEditor() error = %v, want *ParseError", err)
		}
	})
}

func TestFind_KeepsCandidateOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.json", `{"n": 2}`)
	writeFile(t, dir, "a.json", `{"n": 1}`)

	got, err := New(dir, nil).Find([]Candidate{
		{Name: "missing.json", Format: FormatJSON},
		{Name: "b.json", Format: FormatJSON},
		{Name: "a.json", Format: FormatJSON},
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []Container{
		{FileName: filepath.Join(dir, "b.json"), Config: map[string]any{"n": 2.0}},
		{FileName: filepath.Join(dir, "a.json"), Config: map[string]any{"n": 1.0}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Find() mismatch (-want +got):\n%s", diff)
	}
}

func TestFind_AnyValueAttribute(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "package.json", `{"eslintConfig": "shared", "prettier": "@company/prettier-config"}`)

	got, err := New(dir, nil).Find([]Candidate{
		{Name: "package.json", Format: FormatJSON, Attribute: "eslintConfig"},
		{Name: "package.json", Format: FormatJSON, Attribute: "prettier", AnyValue: true},
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []Container{{FileName: filepath.Join(dir, "package.json")}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Find() mismatch (-want +got):\n%s", diff)
	}
}

func TestFormat_String(t *testing.T) {
	for f, want := range map[Format]string{
		FormatNone: "rc",
		FormatJSON: "json",
		FormatYAML: "yaml",
		FormatJS:   "js",
		Format(99): "unknown",
	} {
		if got := f.String(); got != want {
			t.Errorf("Format(%d).String() = %q, want %q", int(f), got, want)
		}
	}
}
