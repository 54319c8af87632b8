// Default catalogue seeding: the BlackRoad design-system base set.
package catalog

import (
	"errors"

	"github.com/BlackRoad-Studio/design-tokens/pkg/types"
)

// seedToken describes one built-in default token.
type seedToken struct {
	name        string
	category    string
	value       string
	description string
}

// seedTokens is the fixed default catalogue seeded by SeedDefaults.
var seedTokens = []seedToken{
	// Colors, brand palette.
	{"color/brand/primary", types.CategoryColor, "#FF1D6C", "Hot Pink, primary brand"},
	{"color/brand/secondary", types.CategoryColor, "#2979FF", "Electric Blue"},
	{"color/brand/accent", types.CategoryColor, "#F5A623", "Amber"},
	{"color/brand/violet", types.CategoryColor, "#9C27B0", "Violet"},
	{"color/text/primary", types.CategoryColor, "#0F0F0F", "Near-black body text"},
	{"color/text/secondary", types.CategoryColor, "#4B5563", "Muted text"},
	{"color/bg/base", types.CategoryColor, "#FFFFFF", "Page background"},
	{"color/bg/surface", types.CategoryColor, "#F9FAFB", "Card / panel background"},
	{"color/semantic/success", types.CategoryColor, "#16A34A", "Success green"},
	{"color/semantic/error", types.CategoryColor, "#DC2626", "Error red"},
	{"color/semantic/warning", types.CategoryColor, "#D97706", "Warning amber"},
	// Spacing, 8pt grid.
	{"spacing/1", types.CategorySpacing, "4px", "4px = half-unit"},
	{"spacing/2", types.CategorySpacing, "8px", "8px = 1 unit"},
	{"spacing/3", types.CategorySpacing, "12px", "12px"},
	{"spacing/4", types.CategorySpacing, "16px", "16px = 2 units"},
	{"spacing/6", types.CategorySpacing, "24px", "24px"},
	{"spacing/8", types.CategorySpacing, "32px", "32px = 4 units"},
	{"spacing/12", types.CategorySpacing, "48px", "48px"},
	{"spacing/16", types.CategorySpacing, "64px", "64px"},
	// Radius.
	{"radius/sm", types.CategoryRadius, "4px", "Small radius"},
	{"radius/md", types.CategoryRadius, "8px", "Medium radius"},
	{"radius/lg", types.CategoryRadius, "12px", "Large radius"},
	{"radius/xl", types.CategoryRadius, "16px", "XL radius"},
	{"radius/full", types.CategoryRadius, "9999px", "Pill / full round"},
	// Typography.
	{"typography/size/xs", types.CategoryTypography, "0.75rem", "12px"},
	{"typography/size/sm", types.CategoryTypography, "0.875rem", "14px"},
	{"typography/size/md", types.CategoryTypography, "1rem", "16px base"},
	{"typography/size/lg", types.CategoryTypography, "1.125rem", "18px"},
	{"typography/size/xl", types.CategoryTypography, "1.25rem", "20px"},
	{"typography/size/2xl", types.CategoryTypography, "1.5rem", "24px"},
	{"typography/size/4xl", types.CategoryTypography, "2.25rem", "36px"},
	// Shadow.
	{"shadow/sm", types.CategoryShadow, "0 1px 2px rgba(0,0,0,0.05)", "Subtle shadow"},
	{"shadow/md", types.CategoryShadow, "0 4px 6px -1px rgba(0,0,0,0.1)", "Card shadow"},
	{"shadow/lg", types.CategoryShadow, "0 10px 15px -3px rgba(0,0,0,0.1)", "Modal shadow"},
	{"shadow/xl", types.CategoryShadow, "0 20px 25px -5px rgba(0,0,0,0.1)", "Overlay shadow"},
}

// SeedDefaults inserts the built-in default catalogue and returns how
// many tokens were added. Names that already exist are skipped, so
// seeding is idempotent: a second run adds nothing.
func (c *Catalog) SeedDefaults() (int, error) {
	added := 0
	for _, seed := range seedTokens {
		t := &types.Token{
			ID:          newID(),
			Name:        seed.name,
			Category:    seed.category,
			Value:       seed.value,
			Description: seed.description,
		}
		_, err := c.Add(t)
		if errors.Is(err, types.ErrDuplicateName) {
			continue
		}
		if err != nil {
			return added, err
		}
		added++
	}

	c.log.Info("seeded default catalogue", "added", added)
	return added, nil
}
