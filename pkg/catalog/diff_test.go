// Tests for the diff engine.
package catalog

import (
	"testing"

	"github.com/BlackRoad-Studio/design-tokens/pkg/types"
)

func TestDiffSets_Identical(t *testing.T) {
	set := map[string]types.Token{
		"color/a": {Name: "color/a", Category: "color", Value: "#111"},
		"color/b": {Name: "color/b", Category: "color", Value: "#222"},
	}

	report := DiffSets(set, set)
	if report.Summary.Added != 0 || report.Summary.Removed != 0 || report.Summary.Changed != 0 {
		t.Errorf("self-diff must be empty: %+v", report.Summary)
	}
	if report.Summary.Unchanged != len(set) {
		t.Errorf("expected unchanged == %d, got %d", len(set), report.Summary.Unchanged)
	}
}

func TestDiffSets_AddedRemovedChanged(t *testing.T) {
	a := map[string]types.Token{
		"color/kept": {Name: "color/kept", Category: "color", Value: "#111"},
		"color/chg":  {Name: "color/chg", Category: "color", Value: "#111"},
		"color/gone": {Name: "color/gone", Category: "color", Value: "#333"},
	}
	b := map[string]types.Token{
		"color/kept": {Name: "color/kept", Category: "color", Value: "#111"},
		"color/chg":  {Name: "color/chg", Category: "color", Value: "#999"},
		"color/new":  {Name: "color/new", Category: "color", Value: "#222"},
	}

	report := DiffSets(a, b)

	if report.Summary.Added != 1 {
		t.Errorf("expected 1 added, got %d", report.Summary.Added)
	}
	if _, ok := report.Added["color/new"]; !ok {
		t.Error("color/new missing from added")
	}
	if report.Summary.Removed != 1 {
		t.Errorf("expected 1 removed, got %d", report.Summary.Removed)
	}
	if _, ok := report.Removed["color/gone"]; !ok {
		t.Error("color/gone missing from removed")
	}

	change, ok := report.Changed["color/chg"]
	if !ok {
		t.Fatal("color/chg missing from changed")
	}
	if change.Before.Value != "#111" || change.After.Value != "#999" {
		t.Errorf("change payload wrong: %+v", change)
	}
	if report.Summary.Unchanged != 1 {
		t.Errorf("expected 1 unchanged, got %d", report.Summary.Unchanged)
	}
}

func TestDiffSets_DeprecationIsTracked(t *testing.T) {
	a := map[string]types.Token{
		"color/a": {Name: "color/a", Category: "color", Value: "#111"},
	}
	b := map[string]types.Token{
		"color/a": {Name: "color/a", Category: "color", Value: "#111", Deprecated: true},
	}

	report := DiffSets(a, b)
	change, ok := report.Changed["color/a"]
	if !ok {
		t.Fatal("deprecation flip must count as changed")
	}
	if change.Before.Deprecated || !change.After.Deprecated {
		t.Errorf("change payload wrong: %+v", change)
	}
}

// Diff deliberately tracks only value, category, and deprecated:
// description, alias, and tag edits count as unchanged. Widening that
// definition should be a conscious change to this test.
func TestDiffSets_DescriptionOnlyEditIsUnchanged(t *testing.T) {
	a := map[string]types.Token{
		"color/a": {Name: "color/a", Category: "color", Value: "#111", Description: "old", Tags: []string{"x"}},
	}
	b := map[string]types.Token{
		"color/a": {Name: "color/a", Category: "color", Value: "#111", Description: "new", Tags: []string{"y"}},
	}

	report := DiffSets(a, b)
	if report.Summary.Changed != 0 {
		t.Errorf("description/tag edits must not count as changed: %+v", report.Changed)
	}
	if report.Summary.Unchanged != 1 {
		t.Errorf("expected 1 unchanged, got %d", report.Summary.Unchanged)
	}
}

func TestDiff_SnapshotAgainstCurrent(t *testing.T) {
	c, _ := newTestCatalog(t)

	if _, err := c.Add(colorToken("color/pre", "#111")); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if _, err := c.Snapshot("v1", "before", ""); err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}

	// Mutate the live store after the snapshot.
	if _, err := c.Add(colorToken("color/new", "#222")); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	value := "#999"
	if _, err := c.Update("color/pre", types.TokenPatch{Value: &value}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	report, err := c.Diff("v1", types.RefCurrent)
	if err != nil {
		t.Fatalf("Diff failed: %v", err)
	}

	if report.A != "v1" || report.B != types.RefCurrent {
		t.Errorf("refs not echoed: %q %q", report.A, report.B)
	}
	if report.Summary.Added < 1 {
		t.Errorf("expected at least 1 added, got %d", report.Summary.Added)
	}
	if _, ok := report.Added["color/new"]; !ok {
		t.Error("color/new missing from added")
	}
	change, ok := report.Changed["color/pre"]
	if !ok {
		t.Fatal("color/pre missing from changed")
	}
	if change.Before.Value != "#111" || change.After.Value != "#999" {
		t.Errorf("change payload wrong: %+v", change)
	}
}

func TestDiff_UnknownRef(t *testing.T) {
	c, _ := newTestCatalog(t)

	if _, err := c.Diff("no-such-snapshot", types.RefCurrent); err == nil {
		t.Error("expected error for unknown snapshot ref")
	}
}
