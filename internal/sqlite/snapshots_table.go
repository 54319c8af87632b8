// This file implements the token_snapshots table: an append-only keyed
// store of serialized TokenSet payloads. Snapshots are never updated or
// deleted once written.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/BlackRoad-Studio/design-tokens/pkg/types"
)

// InsertSnapshot persists a captured token set under the given id. The
// payload is the full serialized TokenSet, metadata included, so a later
// resolve reads it back without recomputation.
func (s *Store) InsertSnapshot(id string, set types.TokenSet) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	data, err := json.Marshal(set)
	if err != nil {
		return fmt.Errorf("encoding snapshot %s: %w", set.Version, err)
	}

	_, err = db.Exec(
		"INSERT INTO token_snapshots (id, version, name, description, data, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		id, set.Version, set.Name, set.Description, string(data),
		set.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting snapshot %s: %w", set.Version, err)
	}
	return nil
}

// FindSnapshot looks a snapshot up by id or by version label and
// deserializes its payload. Returns ErrNotFound when neither matches.
func (s *Store) FindSnapshot(idOrVersion string) (*types.TokenSet, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	var data string
	err = db.QueryRow(
		"SELECT data FROM token_snapshots WHERE id = ? OR version = ?",
		idOrVersion, idOrVersion,
	).Scan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("finding snapshot %s: %w", idOrVersion, err)
	}

	var set types.TokenSet
	if err := json.Unmarshal([]byte(data), &set); err != nil {
		return nil, fmt.Errorf("decoding snapshot %s: %w", idOrVersion, err)
	}
	return &set, nil
}

// ListSnapshots returns all snapshot headers, newest first.
func (s *Store) ListSnapshots() ([]types.SnapshotHeader, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(
		"SELECT id, version, name, description, created_at FROM token_snapshots ORDER BY created_at DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("listing snapshots: %w", err)
	}
	defer rows.Close()

	var headers []types.SnapshotHeader
	for rows.Next() {
		var h types.SnapshotHeader
		var createdAt string
		if err := rows.Scan(&h.ID, &h.Version, &h.Name, &h.Description, &createdAt); err != nil {
			return nil, fmt.Errorf("listing snapshots: %w", err)
		}
		if h.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
			return nil, fmt.Errorf("parsing snapshot created_at: %w", err)
		}
		headers = append(headers, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing snapshots: %w", err)
	}
	return headers, nil
}
