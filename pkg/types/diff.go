package types

// RefCurrent is the diff reference that resolves to the live store's
// present contents instead of a stored snapshot.
const RefCurrent = "current"

// TokenFields holds the three fields the diff engine tracks. Description,
// alias, and tag edits are deliberately not part of a diff; see DiffReport.
type TokenFields struct {
	Value      string `json:"value"`
	Category   string `json:"category"`
	Deprecated bool   `json:"deprecated"`
}

// FieldChange records the tracked fields of a token before and after.
type FieldChange struct {
	Before TokenFields `json:"before"`
	After  TokenFields `json:"after"`
}

// DiffSummary counts the outcome of a diff.
type DiffSummary struct {
	Added     int `json:"added"`
	Removed   int `json:"removed"`
	Changed   int `json:"changed"`
	Unchanged int `json:"unchanged"`
}

// DiffReport is the result of diffing two token collections. A and B echo
// the references the caller passed. A token counts as changed only when
// its value, category, or deprecated flag differ between the two sides;
// tokens that differ only in description, aliases, or tags count as
// unchanged.
type DiffReport struct {
	A       string                 `json:"a"`
	B       string                 `json:"b"`
	Summary DiffSummary            `json:"summary"`
	Added   map[string]Token       `json:"added"`
	Removed map[string]Token       `json:"removed"`
	Changed map[string]FieldChange `json:"changed"`
}

// Fields extracts the diff-tracked fields of a token.
func (t Token) Fields() TokenFields {
	return TokenFields{Value: t.Value, Category: t.Category, Deprecated: t.Deprecated}
}
