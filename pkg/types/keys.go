package types

import (
	"regexp"
	"strings"
)

// keySplitRe splits a token name into segments on runs of separators.
var keySplitRe = regexp.MustCompile(`[-/. ]+`)

// Slug lowercases a token name and replaces slashes, dots, and spaces
// with hyphens, yielding a CSS-safe identifier segment.
func Slug(name string) string {
	s := strings.ToLower(name)
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, ".", "-")
	s = strings.ReplaceAll(s, " ", "-")
	return s
}

// CamelKey converts a token name into a camel-cased identifier: the
// first segment is lowercased and each following segment has its first
// letter upper-cased, e.g. "color/brand/primary" -> "colorBrandPrimary".
func CamelKey(name string) string {
	parts := keySplitRe.Split(name, -1)
	var b strings.Builder
	for i, p := range parts {
		if p == "" {
			continue
		}
		if b.Len() == 0 && i == 0 {
			b.WriteString(strings.ToLower(p))
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		if len(p) > 1 {
			b.WriteString(p[1:])
		}
	}
	return b.String()
}
