package types

import "time"

// TokenSet is an immutable, versioned snapshot of the full catalogue.
// Once captured it is never mutated; the tokens are deep copies owned by
// the set, so later edits to the live store do not reach into it.
type TokenSet struct {
	Version     string      `json:"version"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	CreatedAt   time.Time   `json:"created_at"`
	Tokens      []Token     `json:"tokens"`
	Metadata    SetMetadata `json:"metadata"`
}

// SetMetadata summarizes a token set at the time it was captured. It is
// stored with the snapshot and read back as-is, never recomputed.
type SetMetadata struct {
	Count           int            `json:"count"`
	Categories      map[string]int `json:"categories"`
	DeprecatedCount int            `json:"deprecated_count"`
}

// SnapshotHeader identifies a stored snapshot without its token payload.
type SnapshotHeader struct {
	ID          string    `json:"id"`
	Version     string    `json:"version"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewTokenSet builds a TokenSet over the given tokens, computing the
// capture-time metadata.
func NewTokenSet(version, name, description string, tokens []Token) TokenSet {
	return TokenSet{
		Version:     version,
		Name:        name,
		Description: description,
		CreatedAt:   time.Now().UTC(),
		Tokens:      tokens,
		Metadata: SetMetadata{
			Count:           len(tokens),
			Categories:      CountCategories(tokens),
			DeprecatedCount: countDeprecated(tokens),
		},
	}
}

// ByName returns the set's tokens keyed by name.
func (s TokenSet) ByName() map[string]Token {
	m := make(map[string]Token, len(s.Tokens))
	for _, t := range s.Tokens {
		m[t.Name] = t
	}
	return m
}

// CountCategories returns the number of tokens per category.
func CountCategories(tokens []Token) map[string]int {
	counts := make(map[string]int)
	for _, t := range tokens {
		counts[t.Category]++
	}
	return counts
}

func countDeprecated(tokens []Token) int {
	n := 0
	for _, t := range tokens {
		if t.Deprecated {
			n++
		}
	}
	return n
}
