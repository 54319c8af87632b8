package export

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/BlackRoad-Studio/design-tokens/pkg/types"
)

// tailwindSections maps each token category to its theme.extend section.
// The border category has no Tailwind counterpart and is left out.
var tailwindSections = map[string]string{
	types.CategoryColor:      "colors",
	types.CategorySpacing:    "spacing",
	types.CategoryTypography: "fontSize",
	types.CategoryRadius:     "borderRadius",
	types.CategoryShadow:     "boxShadow",
	types.CategoryOpacity:    "opacity",
	types.CategoryZIndex:     "zIndex",
	types.CategoryBreakpoint: "screens",
	types.CategoryMotion:     "transitionDuration",
}

// tailwindSectionOrder fixes the emitted section order.
var tailwindSectionOrder = []string{
	"colors", "spacing", "fontSize", "borderRadius", "boxShadow",
	"opacity", "zIndex", "screens", "transitionDuration",
}

// TailwindConfig renders tokens as a Tailwind theme.extend config. The
// last slug segment of each token name becomes its key within the
// section; empty sections are dropped.
func TailwindConfig(tokens []types.Token) string {
	sections := make(map[string]map[string]string)
	for _, t := range tokens {
		section, ok := tailwindSections[t.Category]
		if !ok {
			continue
		}
		if sections[section] == nil {
			sections[section] = make(map[string]string)
		}
		parts := strings.Split(types.Slug(t.Name), "-")
		key := parts[len(parts)-1]
		sections[section][key] = t.Value
	}

	var lines []string
	lines = append(lines,
		"/** @type {import('tailwindcss').Config} */",
		"/** Generated by the BlackRoad Studio design token manager */",
		fmt.Sprintf("/** %s */", time.Now().UTC().Format(time.RFC3339)),
		"module.exports = {",
		"  theme: {",
		"    extend: {",
	)
	for _, section := range tailwindSectionOrder {
		vals, ok := sections[section]
		if !ok {
			continue
		}
		lines = append(lines, fmt.Sprintf("      %s: {", section))
		keys := make([]string, 0, len(vals))
		for k := range vals {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			lines = append(lines, fmt.Sprintf("        '%s': '%s',", k, vals[k]))
		}
		lines = append(lines, "      },")
	}
	lines = append(lines, "    },", "  },", "};")
	return strings.Join(lines, "\n")
}
