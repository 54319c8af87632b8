package types

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Token categories. The set is closed: a token's category constrains the
// shape its value is allowed to take.
const (
	CategoryColor      = "color"
	CategorySpacing    = "spacing"
	CategoryTypography = "typography"
	CategoryShadow     = "shadow"
	CategoryRadius     = "radius"
	CategoryOpacity    = "opacity"
	CategoryZIndex     = "z-index"
	CategoryBreakpoint = "breakpoint"
	CategoryMotion     = "motion"
	CategoryBorder     = "border"
)

// Categories lists all recognized token categories for enumeration.
var Categories = []string{
	CategoryColor,
	CategorySpacing,
	CategoryTypography,
	CategoryShadow,
	CategoryRadius,
	CategoryOpacity,
	CategoryZIndex,
	CategoryBreakpoint,
	CategoryMotion,
	CategoryBorder,
}

// validCategories is the set of recognized category values.
var validCategories = map[string]bool{
	CategoryColor:      true,
	CategorySpacing:    true,
	CategoryTypography: true,
	CategoryShadow:     true,
	CategoryRadius:     true,
	CategoryOpacity:    true,
	CategoryZIndex:     true,
	CategoryBreakpoint: true,
	CategoryMotion:     true,
	CategoryBorder:     true,
}

// IsValidCategory reports whether the given string is a recognized category.
func IsValidCategory(c string) bool {
	return validCategories[c]
}

// Token is a single named design value with category-constrained shape.
// Name is unique across the store; ID is the immutable generated identity.
type Token struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Category         string    `json:"category"`
	Value            string    `json:"value"`
	Description      string    `json:"description"`
	Aliases          []string  `json:"aliases"`
	Deprecated       bool      `json:"deprecated"`
	DeprecatedReason string    `json:"deprecated_reason"`
	Tags             []string  `json:"tags"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
	Version          int       `json:"version"`
}

// nameRe is the token name grammar, checked against the case-folded name.
var nameRe = regexp.MustCompile(`^[a-z0-9][a-z0-9\-./]*$`)

// spacingRe requires spacing values to carry a unit.
var spacingRe = regexp.MustCompile(`^[\d.]+(?:px|rem|em|%|vw|vh)$`)

// colorRes are the accepted color value shapes: hex forms, functional
// notations, var() references, and the CSS keyword literals.
var colorRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^#([0-9a-f]{3}){1,2}$`),
	regexp.MustCompile(`(?i)^#[0-9a-f]{4}$`),
	regexp.MustCompile(`(?i)^#[0-9a-f]{8}$`),
	regexp.MustCompile(`(?i)^rgb\(`),
	regexp.MustCompile(`(?i)^rgba\(`),
	regexp.MustCompile(`(?i)^hsl\(`),
	regexp.MustCompile(`(?i)^hsla\(`),
	regexp.MustCompile(`(?i)^oklch\(`),
	regexp.MustCompile(`(?i)^color\(`),
	regexp.MustCompile(`(?i)^var\(--`),
	regexp.MustCompile(`(?i)^transparent$`),
	regexp.MustCompile(`(?i)^currentColor$`),
	regexp.MustCompile(`(?i)^inherit$`),
}

// IsValidColor reports whether the value matches one of the accepted
// color shapes.
func IsValidColor(value string) bool {
	v := strings.TrimSpace(value)
	for _, re := range colorRes {
		if re.MatchString(v) {
			return true
		}
	}
	return false
}

// Validate checks the token and returns the collected error messages.
// All checks run independently; nothing short-circuits, so a token may
// report several errors at once. An empty slice means the token is
// well-formed.
func (t *Token) Validate() []string {
	var errs []string
	if t.Name == "" {
		errs = append(errs, "name is required")
	}
	if !nameRe.MatchString(strings.ToLower(t.Name)) {
		errs = append(errs, fmt.Sprintf("name %q must be lowercase, digits, hyphens, dots or slashes", t.Name))
	}
	if !validCategories[t.Category] {
		errs = append(errs, fmt.Sprintf("category %q must be one of %s", t.Category, strings.Join(Categories, ", ")))
	}
	if t.Value == "" {
		errs = append(errs, "value is required")
	}
	if t.Category == CategoryColor && !IsValidColor(t.Value) {
		errs = append(errs, fmt.Sprintf("value %q doesn't look like a valid color", t.Value))
	}
	if t.Category == CategorySpacing {
		v := strings.TrimSpace(t.Value)
		if !spacingRe.MatchString(v) && !strings.HasPrefix(v, "var(") {
			errs = append(errs, fmt.Sprintf("spacing value %q should include a unit (px/rem/em)", t.Value))
		}
	}
	return errs
}

// CSSVar returns the CSS custom property name for this token, e.g.
// "--br-color-brand-primary" for name "color/brand/primary".
func (t *Token) CSSVar(prefix string) string {
	return prefix + "-" + Slug(t.Name)
}

// JSKey returns the camel-cased identifier used for JavaScript exports.
func (t *Token) JSKey() string {
	return CamelKey(t.Name)
}
