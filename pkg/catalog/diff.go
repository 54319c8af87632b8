// The diff engine. Compares two named token collections (snapshots or
// the live store) and partitions names into added, removed, changed, and
// unchanged.
package catalog

import (
	"fmt"

	"github.com/BlackRoad-Studio/design-tokens/pkg/types"
)

// Diff resolves both references and diffs them. Each ref is a snapshot
// id, a snapshot version label, or types.RefCurrent for the live store's
// present contents. Resolution failures surface ErrNotFound; the diff
// itself has no side effects.
func (c *Catalog) Diff(refA, refB string) (*types.DiffReport, error) {
	a, err := c.resolveRef(refA)
	if err != nil {
		return nil, fmt.Errorf("resolving %q: %w", refA, err)
	}
	b, err := c.resolveRef(refB)
	if err != nil {
		return nil, fmt.Errorf("resolving %q: %w", refB, err)
	}

	report := DiffSets(a, b)
	report.A = refA
	report.B = refB
	return report, nil
}

// resolveRef turns a diff reference into a name-to-token mapping.
func (c *Catalog) resolveRef(ref string) (map[string]types.Token, error) {
	if ref == types.RefCurrent {
		tokens, err := c.store.ScanTokens("", true)
		if err != nil {
			return nil, err
		}
		m := make(map[string]types.Token, len(tokens))
		for _, t := range tokens {
			m[t.Name] = t
		}
		return m, nil
	}
	return c.ResolveSnapshot(ref)
}

// DiffSets diffs two name-to-token mappings. Pure and deterministic:
// the same inputs always produce the same report. Only value, category,
// and deprecated are compared for names present on both sides;
// description, alias, and tag edits count as unchanged.
func DiffSets(a, b map[string]types.Token) *types.DiffReport {
	report := &types.DiffReport{
		Added:   make(map[string]types.Token),
		Removed: make(map[string]types.Token),
		Changed: make(map[string]types.FieldChange),
	}

	for name, t := range b {
		if _, ok := a[name]; !ok {
			report.Added[name] = t
		}
	}
	for name, t := range a {
		if _, ok := b[name]; !ok {
			report.Removed[name] = t
		}
	}
	for name, ta := range a {
		tb, ok := b[name]
		if !ok {
			continue
		}
		if ta.Value != tb.Value || ta.Category != tb.Category || ta.Deprecated != tb.Deprecated {
			report.Changed[name] = types.FieldChange{
				Before: ta.Fields(),
				After:  tb.Fields(),
			}
		} else {
			report.Summary.Unchanged++
		}
	}

	report.Summary.Added = len(report.Added)
	report.Summary.Removed = len(report.Removed)
	report.Summary.Changed = len(report.Changed)
	return report
}
