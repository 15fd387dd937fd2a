package lint

// Configuration is a parsed ESLint configuration object as produced by
// decoding .eslintrc JSON or the eslintConfig field of package.json.
type Configuration map[string]any

// Extends returns the extends entries when the configuration extends a
// list of configurations. It returns false when extends is absent or is a
// single string: a single inheritance target cannot be out of order.
//
// Elements are returned as decoded, including ones that are not strings, so
// an entry's index is its position in the configuration.
func (c Configuration) Extends() ([]any, bool) {
	switch v := c["extends"].(type) {
	case []string:
		entries := make([]any, len(v))
		for i, e := range v {
			entries[i] = e
		}
		return entries, true
	case []any:
		entries := make([]any, len(v))
		copy(entries, v)
		return entries, true
	default:
		return nil, false
	}
}

// RuleOverrides returns the rules block. Only the keys matter to callers;
// the severity values are passed through untouched.
func (c Configuration) RuleOverrides() (map[string]any, bool) {
	switch v := c["rules"].(type) {
	case map[string]any:
		return v, true
	case Configuration:
		return v, true
	default:
		return nil, false
	}
}

// EditorSettings holds VS Code settings objects. Either side may be nil
// when no settings file was found.
type EditorSettings struct {
	Local  map[string]any
	Global map[string]any
}
