// Package catalog implements the versioned design-token catalogue over a
// persistence store: validated CRUD with a version counter, batch import,
// snapshot capture and resolution, the diff engine, and the
// validation sweep.
package catalog

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/BlackRoad-Studio/design-tokens/pkg/types"
)

// Catalog is the live, mutable token collection. All operations are
// synchronous and single-writer; they validate before every write and
// keep the token version counter in step.
type Catalog struct {
	store types.Store
	log   *slog.Logger
}

// New creates a Catalog over an attached store. A nil logger falls back
// to slog.Default().
func New(store types.Store, log *slog.Logger) *Catalog {
	if log == nil {
		log = slog.Default()
	}
	return &Catalog{store: store, log: log}
}

// now returns the catalogue's notion of the current instant. Truncated
// to seconds so timestamps round-trip through the store's RFC3339 text
// columns unchanged.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

// newID generates a fresh token or snapshot identity (UUID v7, v4
// fallback).
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// Add validates the token and persists it with version 1. The caller's
// id is preserved; timestamps are set here unless the caller supplied a
// creation time. Fails with a ValidationError or, on a name collision,
// an error wrapping ErrDuplicateName; either way no state changes.
func (c *Catalog) Add(t *types.Token) (*types.Token, error) {
	if errs := t.Validate(); len(errs) > 0 {
		return nil, types.NewValidationError(errs)
	}

	if t.ID == "" {
		t.ID = newID()
	}
	ts := now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = ts
	}
	t.UpdatedAt = ts
	if t.Version == 0 {
		t.Version = 1
	}

	if err := c.store.InsertToken(t); err != nil {
		return nil, err
	}
	return t, nil
}

// Update applies a partial update to the token found by id or name.
// The patch is applied to a copy, re-validated, and committed with
// version+1 and a refreshed UpdatedAt; on validation failure the stored
// token is left untouched. Returns ErrNotFound if nothing matches.
func (c *Catalog) Update(idOrName string, patch types.TokenPatch) (*types.Token, error) {
	t, err := c.store.FindToken(idOrName)
	if err != nil {
		return nil, err
	}

	updated := *t
	updated.ApplyPatch(patch)
	updated.Version = t.Version + 1
	updated.UpdatedAt = now()

	if errs := updated.Validate(); len(errs) > 0 {
		return nil, types.NewValidationError(errs)
	}

	if err := c.store.UpdateToken(updated.ID, &updated); err != nil {
		return nil, fmt.Errorf("committing update for %s: %w", idOrName, err)
	}
	return &updated, nil
}

// Get returns the token matching the id or name, or nil when nothing
// matches. A lookup miss is a normal outcome, not an error.
func (c *Catalog) Get(idOrName string) (*types.Token, error) {
	t, err := c.store.FindToken(idOrName)
	if err == types.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Delete removes the token matching the id or name and reports whether
// one was removed. Deleting a missing token is not an error. Snapshots
// already taken keep their copy of the token.
func (c *Catalog) Delete(idOrName string) (bool, error) {
	return c.store.DeleteToken(idOrName)
}

// List returns tokens in the canonical (category, name) order,
// optionally filtered to one category. Deprecated tokens are included
// unless includeDeprecated is false.
func (c *Catalog) List(category string, includeDeprecated bool) ([]types.Token, error) {
	return c.store.ScanTokens(category, includeDeprecated)
}
