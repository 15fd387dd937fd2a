package rules

import "slices"

// RuleTable maps a canonical plugin key to rule names.
type RuleTable map[string][]string

// Contains reports whether rule is listed under key. A missing key is an
// empty set.
func (t RuleTable) Contains(key, rule string) bool {
	return slices.Contains(t[key], rule)
}

// Merge returns a new table holding t overlaid with other. A key present
// in other replaces the key's list in t.
func (t RuleTable) Merge(other RuleTable) RuleTable {
	merged := make(RuleTable, len(t)+len(other))
	for key, names := range t {
		merged[key] = names
	}
	for key, names := range other {
		merged[key] = names
	}
	return merged
}

// DefaultPlugins lists the plugin keys eslint-config-prettier ships a
// compatibility configuration for. Entries are matched as substrings of
// canonical keys.
var DefaultPlugins = []string{
	"eslint",
	"@typescript-eslint",
	"babel",
	"flowtype",
	"react",
	"standard",
	"unicorn",
	"vue",
}

// DefaultWarningRules lists the rules each Prettier compatibility
// configuration turns off that can still be enabled with care.
var DefaultWarningRules = RuleTable{
	"eslint": {
		"curly",
		"lines-around-comment",
		"max-len",
		"no-confusing-arrow",
		"no-mixed-operators",
		"no-tabs",
		"no-unexpected-multiline",
		"quotes",
	},
	"@typescript-eslint": {"@typescript-eslint/quotes"},
	"babel":              {"babel/quotes"},
	"vue":                {"vue/html-self-closing", "vue/max-len"},
}

// DefaultErrorRules lists the rules each Prettier compatibility
// configuration turns off because they always fight with Prettier.
var DefaultErrorRules = RuleTable{
	"eslint": {
		"array-bracket-newline",
		"array-bracket-spacing",
		"array-element-newline",
		"arrow-parens",
		"arrow-spacing",
		"block-spacing",
		"brace-style",
		"comma-dangle",
		"comma-spacing",
		"comma-style",
		"computed-property-spacing",
		"dot-location",
		"eol-last",
		"func-call-spacing",
		"function-call-argument-newline",
		"function-paren-newline",
		"generator-star-spacing",
		"implicit-arrow-linebreak",
		"indent",
		"jsx-quotes",
		"key-spacing",
		"keyword-spacing",
		"linebreak-style",
		"max-statements-per-line",
		"multiline-ternary",
		"new-parens",
		"newline-per-chained-call",
		"no-extra-parens",
		"no-extra-semi",
		"no-floating-decimal",
		"no-mixed-spaces-and-tabs",
		"no-multi-spaces",
		"no-multiple-empty-lines",
		"no-trailing-spaces",
		"no-whitespace-before-property",
		"nonblock-statement-body-position",
		"object-curly-newline",
		"object-curly-spacing",
		"object-property-newline",
		"one-var-declaration-per-line",
		"operator-linebreak",
		"padded-blocks",
		"quote-props",
		"rest-spread-spacing",
		"semi",
		"semi-spacing",
		"semi-style",
		"space-before-blocks",
		"space-before-function-paren",
		"space-in-parens",
		"space-infix-ops",
		"space-unary-ops",
		"switch-colon-spacing",
		"template-curly-spacing",
		"template-tag-spacing",
		"unicode-bom",
		"wrap-iife",
		"wrap-regex",
		"yield-star-spacing",
	},
	"@typescript-eslint": {
		"@typescript-eslint/brace-style",
		"@typescript-eslint/comma-spacing",
		"@typescript-eslint/func-call-spacing",
		"@typescript-eslint/indent",
		"@typescript-eslint/member-delimiter-style",
		"@typescript-eslint/no-extra-parens",
		"@typescript-eslint/no-extra-semi",
		"@typescript-eslint/semi",
		"@typescript-eslint/space-before-function-paren",
		"@typescript-eslint/type-annotation-spacing",
	},
	"babel": {
		"babel/object-curly-spacing",
		"babel/semi",
	},
	"flowtype": {
		"flowtype/boolean-style",
		"flowtype/delimiter-dangle",
		"flowtype/generic-spacing",
		"flowtype/object-type-curly-spacing",
		"flowtype/object-type-delimiter",
		"flowtype/quotes",
		"flowtype/semi",
		"flowtype/space-after-type-colon",
		"flowtype/space-before-generic-bracket",
		"flowtype/space-before-type-colon",
		"flowtype/union-intersection-spacing",
	},
	"react": {
		"react/jsx-child-element-spacing",
		"react/jsx-closing-bracket-location",
		"react/jsx-closing-tag-location",
		"react/jsx-curly-newline",
		"react/jsx-curly-spacing",
		"react/jsx-equals-spacing",
		"react/jsx-first-prop-new-line",
		"react/jsx-indent",
		"react/jsx-indent-props",
		"react/jsx-max-props-per-line",
		"react/jsx-newline",
		"react/jsx-one-expression-per-line",
		"react/jsx-props-no-multi-spaces",
		"react/jsx-tag-spacing",
		"react/jsx-wrap-multilines",
	},
	"standard": {
		"standard/array-bracket-even-spacing",
		"standard/computed-property-even-spacing",
		"standard/object-curly-even-spacing",
	},
	"unicorn": {
		"unicorn/empty-brace-spaces",
		"unicorn/no-nested-ternary",
		"unicorn/number-literal-case",
	},
	"vue": {
		"vue/array-bracket-newline",
		"vue/array-bracket-spacing",
		"vue/arrow-spacing",
		"vue/block-spacing",
		"vue/block-tag-newline",
		"vue/brace-style",
		"vue/comma-dangle",
		"vue/comma-spacing",
		"vue/comma-style",
		"vue/dot-location",
		"vue/func-call-spacing",
		"vue/html-closing-bracket-newline",
		"vue/html-closing-bracket-spacing",
		"vue/html-end-tags",
		"vue/html-indent",
		"vue/html-quotes",
		"vue/key-spacing",
		"vue/keyword-spacing",
		"vue/max-attributes-per-line",
		"vue/multiline-html-element-content-newline",
		"vue/mustache-interpolation-spacing",
		"vue/no-extra-parens",
		"vue/no-multi-spaces",
		"vue/no-spaces-around-equal-signs-in-attribute",
		"vue/object-curly-newline",
		"vue/object-curly-spacing",
		"vue/object-property-newline",
		"vue/operator-linebreak",
		"vue/quote-props",
		"vue/script-indent",
		"vue/singleline-html-element-content-newline",
		"vue/space-in-parens",
		"vue/space-infix-ops",
		"vue/space-unary-ops",
		"vue/template-curly-spacing",
	},
}
