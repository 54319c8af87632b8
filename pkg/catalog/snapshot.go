// Snapshot capture and resolution. A snapshot is an immutable deep copy
// of the full catalogue at one instant; later edits and deletes in the
// live store never reach into it.
package catalog

import (
	"fmt"
	"time"

	"github.com/BlackRoad-Studio/design-tokens/pkg/types"
)

// versionTimeLayout derives a version label from the capture time when
// the caller supplies none, e.g. "20260829143000".
const versionTimeLayout = "20060102150405"

// Snapshot captures the full current store contents (deprecated tokens
// included) as a new immutable token set and returns its id. An empty
// version gets a UTC-timestamp-derived label.
func (c *Catalog) Snapshot(version, name, description string) (string, error) {
	tokens, err := c.store.ScanTokens("", true)
	if err != nil {
		return "", fmt.Errorf("capturing snapshot: %w", err)
	}

	if version == "" {
		version = time.Now().UTC().Format(versionTimeLayout)
	}

	set := types.NewTokenSet(version, name, description, tokens)
	id := newID()
	if err := c.store.InsertSnapshot(id, set); err != nil {
		return "", fmt.Errorf("storing snapshot %s: %w", version, err)
	}

	c.log.Info("snapshot saved", "id", id, "version", version, "count", set.Metadata.Count)
	return id, nil
}

// Snapshots returns all stored snapshot headers, newest first.
func (c *Catalog) Snapshots() ([]types.SnapshotHeader, error) {
	return c.store.ListSnapshots()
}

// ResolveSnapshot loads a snapshot by id or version label and returns
// its tokens keyed by name. Returns ErrNotFound for an unknown
// reference.
func (c *Catalog) ResolveSnapshot(idOrVersion string) (map[string]types.Token, error) {
	set, err := c.store.FindSnapshot(idOrVersion)
	if err != nil {
		return nil, err
	}
	return set.ByName(), nil
}

// ExportSet builds a TokenSet over the current store contents without
// persisting it, for JSON snapshot export.
func (c *Catalog) ExportSet(version, name, description string) (types.TokenSet, error) {
	tokens, err := c.store.ScanTokens("", true)
	if err != nil {
		return types.TokenSet{}, fmt.Errorf("exporting snapshot: %w", err)
	}
	if version == "" {
		version = time.Now().UTC().Format(versionTimeLayout)
	}
	return types.NewTokenSet(version, name, description, tokens), nil
}
