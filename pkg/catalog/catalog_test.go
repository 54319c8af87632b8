// Tests for catalogue CRUD, versioning, and the validation sweep.
package catalog

import (
	"errors"
	"testing"

	"github.com/BlackRoad-Studio/design-tokens/internal/sqlite"
	"github.com/BlackRoad-Studio/design-tokens/pkg/types"
)

// newTestCatalog returns a catalog over a fresh attached store. The
// underlying store is returned too, for tests that need to bypass the
// validation gate.
func newTestCatalog(t *testing.T) (*Catalog, *sqlite.Store) {
	t.Helper()
	store := sqlite.NewStore()
	config := types.Config{
		Backend: types.BackendSQLite,
		DataDir: t.TempDir(),
	}
	if err := store.Attach(config); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}
	t.Cleanup(func() { store.Detach() })
	return New(store, nil), store
}

func colorToken(name, value string) *types.Token {
	return &types.Token{
		Name:     name,
		Category: types.CategoryColor,
		Value:    value,
	}
}

func TestAdd_SetsDefaults(t *testing.T) {
	c, _ := newTestCatalog(t)

	added, err := c.Add(colorToken("color/brand/primary", "#FF1D6C"))
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if added.ID == "" {
		t.Error("expected generated id")
	}
	if added.Version != 1 {
		t.Errorf("expected version 1, got %d", added.Version)
	}
	if added.CreatedAt.IsZero() || added.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}
}

func TestAdd_RoundTrip(t *testing.T) {
	c, _ := newTestCatalog(t)

	tok := colorToken("color/brand/primary", "#FF1D6C")
	tok.Description = "Hot Pink"
	tok.Aliases = []string{"color/primary"}
	tok.Tags = []string{"brand"}

	added, err := c.Add(tok)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	got, err := c.Get(added.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got == nil {
		t.Fatal("Get returned nil for existing token")
	}
	if got.ID != added.ID || got.Name != added.Name || got.Category != added.Category ||
		got.Value != added.Value || got.Description != added.Description ||
		got.Version != added.Version {
		t.Errorf("round trip mismatch:\nadded %+v\ngot   %+v", added, got)
	}
	if !got.CreatedAt.Equal(added.CreatedAt) || !got.UpdatedAt.Equal(added.UpdatedAt) {
		t.Errorf("timestamp mismatch: %v/%v vs %v/%v",
			got.CreatedAt, got.UpdatedAt, added.CreatedAt, added.UpdatedAt)
	}
	if len(got.Aliases) != 1 || got.Aliases[0] != "color/primary" {
		t.Errorf("aliases mismatch: %v", got.Aliases)
	}
	if len(got.Tags) != 1 || got.Tags[0] != "brand" {
		t.Errorf("tags mismatch: %v", got.Tags)
	}
}

func TestAdd_RejectsInvalid(t *testing.T) {
	c, _ := newTestCatalog(t)

	_, err := c.Add(colorToken("color/bad", "not-a-color"))
	if !types.IsValidationError(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	// Nothing was stored.
	got, err := c.Get("color/bad")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != nil {
		t.Error("rejected token must not be stored")
	}
}

func TestAdd_DuplicateName(t *testing.T) {
	c, _ := newTestCatalog(t)

	if _, err := c.Add(colorToken("color/dupe", "#111")); err != nil {
		t.Fatalf("first Add failed: %v", err)
	}
	_, err := c.Add(colorToken("color/dupe", "#222"))
	if !errors.Is(err, types.ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}

	tokens, err := c.List("", true)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(tokens) != 1 {
		t.Errorf("expected exactly one stored token, got %d", len(tokens))
	}
}

func TestUpdate_IncrementsVersion(t *testing.T) {
	c, _ := newTestCatalog(t)

	added, err := c.Add(colorToken("color/chg", "#111"))
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	value := "#999"
	updated, err := c.Update("color/chg", types.TokenPatch{Value: &value})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Version != 2 {
		t.Errorf("expected version 2, got %d", updated.Version)
	}
	if updated.Value != "#999" {
		t.Errorf("expected patched value, got %q", updated.Value)
	}
	if updated.UpdatedAt.Before(added.CreatedAt) {
		t.Errorf("UpdatedAt %v must not precede CreatedAt %v", updated.UpdatedAt, added.CreatedAt)
	}

	// The update is visible on lookup by id as well.
	got, err := c.Get(added.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Version != 2 || got.Value != "#999" {
		t.Errorf("update not committed: %+v", got)
	}
}

func TestUpdate_AllOrNothing(t *testing.T) {
	c, _ := newTestCatalog(t)

	if _, err := c.Add(colorToken("color/keep", "#111")); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	bad := "not-a-color"
	_, err := c.Update("color/keep", types.TokenPatch{Value: &bad})
	if !types.IsValidationError(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	// The stored token is untouched: old value, old version.
	got, err := c.Get("color/keep")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Value != "#111" || got.Version != 1 {
		t.Errorf("failed update must not change state: %+v", got)
	}
}

func TestUpdate_Missing(t *testing.T) {
	c, _ := newTestCatalog(t)

	value := "#fff"
	_, err := c.Update("no/such/token", types.TokenPatch{Value: &value})
	if !errors.Is(err, types.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdate_Deprecation(t *testing.T) {
	c, _ := newTestCatalog(t)

	if _, err := c.Add(colorToken("color/old", "#111")); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	deprecated := true
	reason := "use color/new"
	updated, err := c.Update("color/old", types.TokenPatch{
		Deprecated:       &deprecated,
		DeprecatedReason: &reason,
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if !updated.Deprecated || updated.DeprecatedReason != reason {
		t.Errorf("deprecation not applied: %+v", updated)
	}

	// Deprecated tokens drop out of List when excluded.
	current, err := c.List("", false)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(current) != 0 {
		t.Errorf("expected no current tokens, got %d", len(current))
	}
}

func TestGet_MissIsNotAnError(t *testing.T) {
	c, _ := newTestCatalog(t)

	got, err := c.Get("no/such/token")
	if err != nil {
		t.Fatalf("Get miss must not error, got %v", err)
	}
	if got != nil {
		t.Errorf("expected nil token, got %+v", got)
	}
}

func TestDelete(t *testing.T) {
	c, _ := newTestCatalog(t)

	if _, err := c.Add(colorToken("color/gone", "#111")); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	removed, err := c.Delete("color/gone")
	if err != nil || !removed {
		t.Fatalf("Delete: removed=%v err=%v", removed, err)
	}

	removed, err = c.Delete("color/gone")
	if err != nil {
		t.Fatalf("Delete of missing token must not error, got %v", err)
	}
	if removed {
		t.Error("expected removed=false")
	}
}

func TestValidateAll(t *testing.T) {
	c, store := newTestCatalog(t)

	if _, err := c.Add(colorToken("color/good", "#111")); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	// Deprecate one valid token.
	if _, err := c.Add(colorToken("color/old", "#222")); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	deprecated := true
	reason := "superseded"
	if _, err := c.Update("color/old", types.TokenPatch{Deprecated: &deprecated, DeprecatedReason: &reason}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	// Slip an invalid token past the gate, straight into the store, to
	// exercise the invalid partition.
	bad := colorToken("color/bad", "not-a-color")
	bad.ID = "bad-id"
	bad.Deprecated = true
	bad.DeprecatedReason = "also old"
	bad.Version = 1
	if err := store.InsertToken(bad); err != nil {
		t.Fatalf("InsertToken failed: %v", err)
	}

	report, err := c.ValidateAll()
	if err != nil {
		t.Fatalf("ValidateAll failed: %v", err)
	}

	if report.Summary.Total != 3 {
		t.Errorf("expected total 3, got %d", report.Summary.Total)
	}
	if len(report.Valid) != 2 {
		t.Errorf("expected 2 valid, got %v", report.Valid)
	}
	if len(report.Invalid) != 1 || report.Invalid[0].Name != "color/bad" {
		t.Errorf("expected color/bad invalid, got %v", report.Invalid)
	}
	// color/bad is deprecated AND invalid: both classifications apply.
	if len(report.Deprecated) != 2 {
		t.Errorf("expected 2 deprecated, got %v", report.Deprecated)
	}
}

func TestSeedDefaults_Idempotent(t *testing.T) {
	c, _ := newTestCatalog(t)

	added, err := c.SeedDefaults()
	if err != nil {
		t.Fatalf("SeedDefaults failed: %v", err)
	}
	if added != len(seedTokens) {
		t.Errorf("expected %d seeded, got %d", len(seedTokens), added)
	}

	// Second run adds nothing: every default name already exists.
	again, err := c.SeedDefaults()
	if err != nil {
		t.Fatalf("second SeedDefaults failed: %v", err)
	}
	if again != 0 {
		t.Errorf("expected 0 on re-seed, got %d", again)
	}

	tokens, err := c.List("", true)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(tokens) != len(seedTokens) {
		t.Errorf("expected %d tokens, got %d", len(seedTokens), len(tokens))
	}
}
