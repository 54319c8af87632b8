// Package sqlite provides the public API for the SQLite token store.
// It exposes the factory function while keeping the implementation
// internal.
package sqlite

import (
	"github.com/BlackRoad-Studio/design-tokens/internal/sqlite"
	"github.com/BlackRoad-Studio/design-tokens/pkg/types"
)

// NewStore creates a new SQLite store instance. The store is not
// attached; call Attach with a Config to initialize.
//
// Example:
//
//	store := sqlite.NewStore()
//	err := store.Attach(types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: ".tokens-db",
//	})
//	defer store.Detach()
func NewStore() types.Store {
	return sqlite.NewStore()
}
