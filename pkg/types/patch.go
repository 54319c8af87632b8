package types

// TokenPatch describes a partial update to a token. Nil fields are left
// untouched. Identity (ID, Name) and Category have no patch fields and
// cannot be changed through an update.
type TokenPatch struct {
	Value            *string  `json:"value,omitempty"`
	Description      *string  `json:"description,omitempty"`
	Aliases          []string `json:"aliases,omitempty"`
	Deprecated       *bool    `json:"deprecated,omitempty"`
	DeprecatedReason *string  `json:"deprecated_reason,omitempty"`
	Tags             []string `json:"tags,omitempty"`
}

// IsZero reports whether the patch carries no changes.
func (p TokenPatch) IsZero() bool {
	return p.Value == nil && p.Description == nil && p.Aliases == nil &&
		p.Deprecated == nil && p.DeprecatedReason == nil && p.Tags == nil
}

// ApplyPatch copies the set patch fields onto the token. Each mutable
// field is handled explicitly; there is no reflective fallthrough.
func (t *Token) ApplyPatch(p TokenPatch) {
	if p.Value != nil {
		t.Value = *p.Value
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Aliases != nil {
		t.Aliases = p.Aliases
	}
	if p.Deprecated != nil {
		t.Deprecated = *p.Deprecated
	}
	if p.DeprecatedReason != nil {
		t.DeprecatedReason = *p.DeprecatedReason
	}
	if p.Tags != nil {
		t.Tags = p.Tags
	}
}
