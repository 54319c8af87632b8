package export

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/BlackRoad-Studio/design-tokens/pkg/types"
)

// JSModule renders tokens as an ES module: one exported const per token
// plus a grouped object keyed by category. Callers pass the
// deprecated-excluded token list; the renderer does no filtering of its
// own.
func JSModule(tokens []types.Token) string {
	byCat := groupByCategory(tokens)
	cats := sortedCategories(byCat)

	var lines []string
	lines = append(lines,
		fmt.Sprintf("// Design Tokens – generated %s", time.Now().UTC().Format(time.RFC3339)),
		"// DO NOT EDIT – regenerate with tokens export-js",
		"",
	)

	for _, cat := range cats {
		lines = append(lines, fmt.Sprintf("// %s", strings.ToUpper(cat)))
		for _, t := range byCat[cat] {
			if t.Description != "" {
				lines = append(lines, fmt.Sprintf("/** %s */", t.Description))
			}
			lines = append(lines, fmt.Sprintf("export const %s = %s;", t.JSKey(), jsString(t.Value)))
		}
		lines = append(lines, "")
	}

	lines = append(lines, "/** All tokens grouped by category */", "export const tokens = {")
	for _, cat := range cats {
		lines = append(lines, fmt.Sprintf("  %s: {", objectKey(cat)))
		for _, t := range byCat[cat] {
			lines = append(lines, fmt.Sprintf("    %s: %s,", t.JSKey(), jsString(t.Value)))
		}
		lines = append(lines, "  },")
	}
	lines = append(lines, "};")
	return strings.Join(lines, "\n")
}

// objectKey renders a JS object key, quoting it when it is not a plain
// identifier (e.g. "z-index").
func objectKey(k string) string {
	for i, r := range k {
		alpha := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_' || r == '$'
		digit := r >= '0' && r <= '9'
		if !alpha && !(digit && i > 0) {
			return jsString(k)
		}
	}
	return k
}

// jsString renders a value as a JavaScript string literal.
func jsString(v string) string {
	data, err := json.Marshal(v)
	if err != nil {
		// Marshaling a string cannot fail; keep the renderer total anyway.
		return fmt.Sprintf("%q", v)
	}
	return string(data)
}
