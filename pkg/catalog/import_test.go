// Tests for batch import parsing and semantics.
package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/BlackRoad-Studio/design-tokens/pkg/types"
)

func TestParseImportSource_DollarAndPlainKeys(t *testing.T) {
	data := []byte(`{
		"color/one": {"$value": "#111", "$type": "color", "$description": "first"},
		"color/two": {"value": "#222", "category": "color", "description": "second", "tags": ["a", "b"]}
	}`)

	specs, err := ParseImportSource(data)
	if err != nil {
		t.Fatalf("ParseImportSource failed: %v", err)
	}
	if len(specs) != 2 {
		t.Fatalf("expected 2 specs, got %d", len(specs))
	}

	one := specs["color/one"]
	if one.Value != "#111" || one.Category != "color" || one.Description != "first" {
		t.Errorf("dollar keys not read: %+v", one)
	}
	two := specs["color/two"]
	if two.Value != "#222" || two.Description != "second" || len(two.Tags) != 2 {
		t.Errorf("plain keys not read: %+v", two)
	}
}

func TestParseImportSource_WrappedAndFlat(t *testing.T) {
	wrapped := []byte(`{"tokens": {"color/a": {"$value": "#111", "$type": "color"}}}`)
	flat := []byte(`{"color/a": {"$value": "#111", "$type": "color"}}`)

	for _, data := range [][]byte{wrapped, flat} {
		specs, err := ParseImportSource(data)
		if err != nil {
			t.Fatalf("ParseImportSource failed: %v", err)
		}
		if _, ok := specs["color/a"]; !ok {
			t.Errorf("expected color/a in %s", data)
		}
	}
}

func TestParseImportSource_SkipsNonObjects(t *testing.T) {
	data := []byte(`{"$schema": "something", "color/a": {"$value": "#111", "$type": "color"}}`)
	specs, err := ParseImportSource(data)
	if err != nil {
		t.Fatalf("ParseImportSource failed: %v", err)
	}
	if len(specs) != 1 {
		t.Errorf("expected non-object entries skipped, got %v", specs)
	}
}

func TestParseImportSource_StringifiesNumbers(t *testing.T) {
	data := []byte(`{"z-index/modal": {"$value": 100, "$type": "z-index"}}`)
	specs, err := ParseImportSource(data)
	if err != nil {
		t.Fatalf("ParseImportSource failed: %v", err)
	}
	if specs["z-index/modal"].Value != "100" {
		t.Errorf("expected stringified value, got %q", specs["z-index/modal"].Value)
	}
}

func TestImportBatch_AddsNewEntries(t *testing.T) {
	c, _ := newTestCatalog(t)

	specs := map[string]ImportSpec{
		"color/brand/blue": {Value: "#3b82f6", Category: "color", Description: "Blue 500"},
		"spacing/5":        {Value: "20px", Category: "spacing"},
	}

	result := c.ImportBatch(specs)
	if result.Added != 2 || result.Skipped != 0 || len(result.Errors) != 0 {
		t.Fatalf("expected (2, 0, []), got (%d, %d, %v)", result.Added, result.Skipped, result.Errors)
	}

	// Re-importing the same batch skips every duplicate.
	again := c.ImportBatch(specs)
	if again.Added != 0 || again.Skipped != 2 || len(again.Errors) != 0 {
		t.Errorf("expected (0, 2, []), got (%d, %d, %v)", again.Added, again.Skipped, again.Errors)
	}
}

func TestImportBatch_CollectsErrorsAndContinues(t *testing.T) {
	c, _ := newTestCatalog(t)

	specs := map[string]ImportSpec{
		"color/ok":  {Value: "#111", Category: "color"},
		"color/bad": {Value: "not-a-color", Category: "color"},
		"spacing/9": {Value: "36px", Category: "spacing"},
	}

	result := c.ImportBatch(specs)
	if result.Added != 2 {
		t.Errorf("expected 2 added despite the bad entry, got %d", result.Added)
	}
	if len(result.Errors) != 1 {
		t.Errorf("expected 1 collected error, got %v", result.Errors)
	}
}

func TestImportBatch_UnknownCategoryFallsBackToColor(t *testing.T) {
	c, _ := newTestCatalog(t)

	result := c.ImportBatch(map[string]ImportSpec{
		"color/mystery": {Value: "#333", Category: "gradient"},
	})
	if result.Added != 1 {
		t.Fatalf("expected 1 added, got %+v", result)
	}

	got, err := c.Get("color/mystery")
	if err != nil || got == nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Category != types.CategoryColor {
		t.Errorf("expected color fallback, got %q", got.Category)
	}
}

func TestImportFile(t *testing.T) {
	c, _ := newTestCatalog(t)

	path := filepath.Join(t.TempDir(), "tokens.json")
	content := `{
		"tokens": {
			"color/imported": {"$value": "#abcdef", "$type": "color"},
			"radius/imported": {"$value": "6px", "$type": "radius"}
		}
	}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	result, err := c.ImportFile(path)
	if err != nil {
		t.Fatalf("ImportFile failed: %v", err)
	}
	if result.Added != 2 || result.Skipped != 0 || len(result.Errors) != 0 {
		t.Errorf("expected (2, 0, []), got (%d, %d, %v)", result.Added, result.Skipped, result.Errors)
	}
}

func TestImportFile_MissingFile(t *testing.T) {
	c, _ := newTestCatalog(t)

	if _, err := c.ImportFile(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
