package types

// InvalidToken pairs a token with the validation errors found on it.
type InvalidToken struct {
	Name   string   `json:"name"`
	Errors []string `json:"errors"`
}

// DeprecatedToken pairs a deprecated token with its stated reason.
type DeprecatedToken struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// ReportSummary totals a validation sweep.
type ReportSummary struct {
	Total      int `json:"total"`
	Valid      int `json:"valid"`
	Invalid    int `json:"invalid"`
	Deprecated int `json:"deprecated"`
}

// ValidationReport is the result of sweeping the live store. Invalid and
// Deprecated are orthogonal classifications: a deprecated token with
// validation errors appears in both.
type ValidationReport struct {
	Valid      []string          `json:"valid"`
	Invalid    []InvalidToken    `json:"invalid"`
	Deprecated []DeprecatedToken `json:"deprecated"`
	Summary    ReportSummary     `json:"summary"`
}
