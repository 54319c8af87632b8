// Package sqlite implements the SQLite persistence layer for the
// design-tokens catalogue: a durable token mapping with a unique-name
// constraint, plus an append-only snapshot store.
package sqlite

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/BlackRoad-Studio/design-tokens/pkg/types"
)

// DBFileName is the SQLite database file created inside DataDir.
const DBFileName = "tokens.db"

// Compile-time interface check: Store must implement types.Store.
var _ types.Store = (*Store)(nil)

// Store persists tokens and snapshots in a single SQLite database file.
// It is a single-writer store: no cross-process coordination is provided.
type Store struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
}

// NewStore creates a new SQLite store instance. The store is not
// attached; call Attach with a Config to initialize.
func NewStore() *Store {
	return &Store{}
}

// Attach opens (or creates) the database under config.DataDir and
// ensures the schema exists. The catalogue survives across runs, so the
// schema uses CREATE TABLE IF NOT EXISTS rather than rebuilding.
// Returns ErrAlreadyAttached if already attached.
func (s *Store) Attach(config types.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.attached {
		return types.ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, DBFileName))
	if err != nil {
		return err
	}

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return err
		}
	}

	s.db = db
	s.config = config
	s.attached = true
	return nil
}

// Detach closes the database connection. After Detach, all operations
// return ErrStoreClosed. Detach is idempotent.
func (s *Store) Detach() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return nil // idempotent
	}

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			return err
		}
		s.db = nil
	}

	s.attached = false
	return nil
}

// conn returns the open database handle, or ErrStoreClosed when the
// store is not attached.
func (s *Store) conn() (*sql.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return nil, types.ErrStoreClosed
	}
	return s.db, nil
}

// NewID generates a fresh token or snapshot identity (UUID v7, with a
// v4 fallback if v7 generation fails).
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
