// Package export renders a validated, canonically ordered token list to
// the target artifact formats: CSS custom properties, an ES module, a
// Tailwind theme config, and a JSON snapshot document. Renderers are
// pure functions of their input; grouping relies on the store's
// (category, name) ordering.
package export

import (
	"fmt"
	"sort"
	"strings"

	"github.com/BlackRoad-Studio/design-tokens/pkg/types"
)

// DefaultCSSPrefix is the custom-property prefix used when the caller
// supplies none.
const DefaultCSSPrefix = "--br"

// CSS renders tokens as CSS custom properties in a :root block, grouped
// by category. Deprecated tokens carry a marker comment; aliases are
// emitted as var() references to their primary property.
func CSS(tokens []types.Token, prefix string) string {
	if prefix == "" {
		prefix = DefaultCSSPrefix
	}
	if len(tokens) == 0 {
		return "/* No tokens found */"
	}

	byCat := groupByCategory(tokens)

	var lines []string
	lines = append(lines, ":root {")
	for _, cat := range sortedCategories(byCat) {
		lines = append(lines, fmt.Sprintf("  /* %s */", strings.ToUpper(cat)))
		for _, t := range byCat[cat] {
			if t.Description != "" {
				lines = append(lines, fmt.Sprintf("  /* %s */", t.Description))
			}
			cssVar := t.CSSVar(prefix)
			dep := ""
			if t.Deprecated {
				dep = "  /* @deprecated */"
			}
			lines = append(lines, fmt.Sprintf("  %s: %s;%s", cssVar, t.Value, dep))
			for _, alias := range t.Aliases {
				lines = append(lines, fmt.Sprintf("  %s-%s: var(%s); /* alias */", prefix, types.Slug(alias), cssVar))
			}
		}
		lines = append(lines, "")
	}
	lines = append(lines, "}")
	return strings.Join(lines, "\n")
}

// groupByCategory buckets tokens by category, preserving the incoming
// per-category order.
func groupByCategory(tokens []types.Token) map[string][]types.Token {
	byCat := make(map[string][]types.Token)
	for _, t := range tokens {
		byCat[t.Category] = append(byCat[t.Category], t)
	}
	return byCat
}

// sortedCategories returns the group keys in ascending order.
func sortedCategories(byCat map[string][]types.Token) []string {
	cats := make([]string, 0, len(byCat))
	for cat := range byCat {
		cats = append(cats, cat)
	}
	sort.Strings(cats)
	return cats
}
