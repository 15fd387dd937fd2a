// Package extends turns an ESLint extends array into per-plugin pairing
// records: where each plugin's base configuration was extended and where its
// Prettier compatibility configuration (eslint-config-prettier) was.
//
// Raw entries are canonicalized by a Normalizer, an ordered table of small
// string rewriting steps. The canonical key is what groups
// "plugin:react/recommended" with "prettier/react".
package extends

import "strings"

const (
	// PluginPrefix marks a configuration shipped inside an ESLint plugin.
	PluginPrefix = "plugin:"
	// FormatterToken identifies Prettier compatibility entries.
	FormatterToken = "prettier"
	// FormatterPrefix prefixes a per-plugin Prettier compatibility entry.
	FormatterPrefix = FormatterToken + "/"
	// BaseKey is the key of ESLint's own rules. A bare "prettier" entry
	// pairs with it.
	BaseKey = "eslint"
)

// DefaultAliases maps legacy preset names to the plugin key they bundle.
var DefaultAliases = map[string]string{
	"react-app": "react",
}

// Step is one canonicalization rule. Apply must be total.
type Step struct {
	Name  string
	Apply func(string) string
}

// StripPluginPrefix removes a leading "plugin:".
var StripPluginPrefix = Step{
	Name: "strip-plugin-prefix",
	Apply: func(s string) string {
		return strings.TrimPrefix(s, PluginPrefix)
	},
}

// StripRecommended removes a trailing ":recommended" or "/recommended".
var StripRecommended = Step{
	Name: "strip-recommended",
	Apply: func(s string) string {
		if t, ok := strings.CutSuffix(s, ":recommended"); ok {
			return t
		}
		return strings.TrimSuffix(s, "/recommended")
	},
}

// CollapseScope reduces a sub-configuration reference such as
// "@typescript-eslint/typings" to its scope. Entries starting with
// FormatterPrefix are left for StripFormatterPrefix.
var CollapseScope = Step{
	Name: "collapse-scope",
	Apply: func(s string) string {
		if strings.HasPrefix(s, FormatterPrefix) {
			return s
		}
		if i := strings.Index(s, "/"); i >= 0 {
			return s[:i]
		}
		return s
	},
}

// BareFormatter maps the bare "prettier" entry to BaseKey.
var BareFormatter = Step{
	Name: "bare-formatter",
	Apply: func(s string) string {
		if s == FormatterToken {
			return BaseKey
		}
		return s
	},
}

// StripFormatterPrefix removes a leading "prettier/".
var StripFormatterPrefix = Step{
	Name: "strip-formatter-prefix",
	Apply: func(s string) string {
		return strings.TrimPrefix(s, FormatterPrefix)
	},
}

// Alias returns a step remapping keys found in aliases.
func Alias(aliases map[string]string) Step {
	table := make(map[string]string, len(aliases))
	for from, to := range aliases {
		table[from] = to
	}
	return Step{
		Name: "alias",
		Apply: func(s string) string {
			if to, ok := table[s]; ok {
				return to
			}
			return s
		},
	}
}

// MergeAliases returns a new table holding base overlaid with extra.
func MergeAliases(base, extra map[string]string) map[string]string {
	merged := make(map[string]string, len(base)+len(extra))
	for from, to := range base {
		merged[from] = to
	}
	for from, to := range extra {
		merged[from] = to
	}
	return merged
}

// Normalizer canonicalizes raw extends entries. Prepare runs before
// Prettier detection, Resolve after it.
type Normalizer struct {
	Prepare []Step
	Resolve []Step
}

// NewNormalizer returns the standard pipeline using the given alias table.
func NewNormalizer(aliases map[string]string) *Normalizer {
	return &Normalizer{
		Prepare: []Step{StripPluginPrefix, StripRecommended, CollapseScope},
		Resolve: []Step{BareFormatter, StripFormatterPrefix, Alias(aliases)},
	}
}

// DefaultNormalizer returns the standard pipeline with DefaultAliases.
func DefaultNormalizer() *Normalizer {
	return NewNormalizer(DefaultAliases)
}

// Normalize returns the canonical plugin key of raw and whether raw is a
// Prettier compatibility entry.
func (n *Normalizer) Normalize(raw string) (key string, isFormatter bool) {
	key = raw
	for _, step := range n.Prepare {
		key = step.Apply(key)
	}
	isFormatter = strings.Contains(key, FormatterToken)
	for _, step := range n.Resolve {
		key = step.Apply(key)
	}
	return key, isFormatter
}
