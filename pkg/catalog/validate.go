// The validate-all sweep over the live store.
package catalog

import (
	"github.com/BlackRoad-Studio/design-tokens/pkg/types"
)

// ValidateAll sweeps the live store once and partitions tokens into
// valid, invalid, and deprecated. The classifications are orthogonal:
// a deprecated token with validation errors appears in both the invalid
// and deprecated lists.
func (c *Catalog) ValidateAll() (*types.ValidationReport, error) {
	tokens, err := c.store.ScanTokens("", true)
	if err != nil {
		return nil, err
	}

	report := &types.ValidationReport{
		Valid:      []string{},
		Invalid:    []types.InvalidToken{},
		Deprecated: []types.DeprecatedToken{},
	}
	for _, t := range tokens {
		if t.Deprecated {
			report.Deprecated = append(report.Deprecated, types.DeprecatedToken{
				Name:   t.Name,
				Reason: t.DeprecatedReason,
			})
		}
		if errs := t.Validate(); len(errs) > 0 {
			report.Invalid = append(report.Invalid, types.InvalidToken{
				Name:   t.Name,
				Errors: errs,
			})
		} else {
			report.Valid = append(report.Valid, t.Name)
		}
	}

	report.Summary = types.ReportSummary{
		Total:      len(tokens),
		Valid:      len(report.Valid),
		Invalid:    len(report.Invalid),
		Deprecated: len(report.Deprecated),
	}
	return report, nil
}
