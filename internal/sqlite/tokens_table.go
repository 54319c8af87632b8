// This file implements the tokens table: insert with unique-name
// enforcement, update by id, lookup by id or name, delete, and the
// canonically ordered scan that exporters rely on.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/BlackRoad-Studio/design-tokens/pkg/types"
)

const tokenColumns = "id, name, category, value, description, aliases, deprecated, deprecated_reason, tags, created_at, updated_at, version"

// scanner abstracts *sql.Row and *sql.Rows for hydration.
type scanner interface {
	Scan(dest ...any) error
}

// hydrateToken scans a tokens row into a types.Token.
func hydrateToken(row scanner) (*types.Token, error) {
	var t types.Token
	var aliases, tags, createdAt, updatedAt string
	var deprecated int
	err := row.Scan(
		&t.ID, &t.Name, &t.Category, &t.Value, &t.Description,
		&aliases, &deprecated, &t.DeprecatedReason, &tags,
		&createdAt, &updatedAt, &t.Version,
	)
	if err != nil {
		return nil, err
	}
	t.Deprecated = deprecated != 0
	if err := json.Unmarshal([]byte(aliases), &t.Aliases); err != nil {
		return nil, fmt.Errorf("decoding aliases for %s: %w", t.ID, err)
	}
	if err := json.Unmarshal([]byte(tags), &t.Tags); err != nil {
		return nil, fmt.Errorf("decoding tags for %s: %w", t.ID, err)
	}
	if t.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at for %s: %w", t.ID, err)
	}
	if t.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at for %s: %w", t.ID, err)
	}
	return &t, nil
}

// dehydrate encodes the list-valued fields for storage.
func dehydrate(t *types.Token) (aliases, tags string, err error) {
	a := t.Aliases
	if a == nil {
		a = []string{}
	}
	g := t.Tags
	if g == nil {
		g = []string{}
	}
	ab, err := json.Marshal(a)
	if err != nil {
		return "", "", fmt.Errorf("encoding aliases: %w", err)
	}
	gb, err := json.Marshal(g)
	if err != nil {
		return "", "", fmt.Errorf("encoding tags: %w", err)
	}
	return string(ab), string(gb), nil
}

// isUniqueNameViolation reports whether err is the tokens.name unique
// constraint firing.
func isUniqueNameViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed: tokens.name")
}

// InsertToken persists a new token. The unique-name constraint rejects
// the whole write on collision; that case surfaces as a
// DuplicateNameError wrapping types.ErrDuplicateName.
func (s *Store) InsertToken(t *types.Token) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	aliases, tags, err := dehydrate(t)
	if err != nil {
		return err
	}

	_, err = db.Exec(
		"INSERT INTO tokens ("+tokenColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		t.ID, t.Name, t.Category, t.Value, t.Description,
		aliases, boolToInt(t.Deprecated), t.DeprecatedReason, tags,
		t.CreatedAt.Format(time.RFC3339), t.UpdatedAt.Format(time.RFC3339), t.Version,
	)
	if err != nil {
		if isUniqueNameViolation(err) {
			return &types.DuplicateNameError{Name: t.Name}
		}
		return fmt.Errorf("inserting token %s: %w", t.Name, err)
	}
	return nil
}

// UpdateToken overwrites the mutable columns of the token with the given
// id. Identity and category columns are written as-is from the token;
// callers guard what may actually change.
func (s *Store) UpdateToken(id string, t *types.Token) error {
	if id == "" {
		return types.ErrInvalidID
	}
	db, err := s.conn()
	if err != nil {
		return err
	}

	aliases, tags, err := dehydrate(t)
	if err != nil {
		return err
	}

	res, err := db.Exec(
		`UPDATE tokens SET value = ?, description = ?, aliases = ?,
		 deprecated = ?, deprecated_reason = ?, tags = ?,
		 updated_at = ?, version = ? WHERE id = ?`,
		t.Value, t.Description, aliases,
		boolToInt(t.Deprecated), t.DeprecatedReason, tags,
		t.UpdatedAt.Format(time.RFC3339), t.Version, id,
	)
	if err != nil {
		return fmt.Errorf("updating token %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating token %s: %w", id, err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}

// FindToken looks a token up by id or by name. Returns ErrNotFound when
// neither matches. IDs are UUIDs and names follow the name grammar, so
// the two namespaces cannot collide.
func (s *Store) FindToken(idOrName string) (*types.Token, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	row := db.QueryRow(
		"SELECT "+tokenColumns+" FROM tokens WHERE id = ? OR name = ?",
		idOrName, idOrName,
	)
	t, err := hydrateToken(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("finding token %s: %w", idOrName, err)
	}
	return t, nil
}

// DeleteToken removes a token by id or name and reports whether a row
// was removed. A miss is not an error.
func (s *Store) DeleteToken(idOrName string) (bool, error) {
	db, err := s.conn()
	if err != nil {
		return false, err
	}

	res, err := db.Exec("DELETE FROM tokens WHERE id = ? OR name = ?", idOrName, idOrName)
	if err != nil {
		return false, fmt.Errorf("deleting token %s: %w", idOrName, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("deleting token %s: %w", idOrName, err)
	}
	return n > 0, nil
}

// ScanTokens returns tokens ordered by (category, name), optionally
// filtered by category and by deprecation state. Exporters depend on
// this ordering for deterministic grouped output.
func (s *Store) ScanTokens(category string, includeDeprecated bool) ([]types.Token, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	query := "SELECT " + tokenColumns + " FROM tokens"
	var conditions []string
	var args []any
	if category != "" {
		conditions = append(conditions, "category = ?")
		args = append(args, category)
	}
	if !includeDeprecated {
		conditions = append(conditions, "deprecated = 0")
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY category, name"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("scanning tokens: %w", err)
	}
	defer rows.Close()

	var tokens []types.Token
	for rows.Next() {
		t, err := hydrateToken(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning tokens: %w", err)
		}
		tokens = append(tokens, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scanning tokens: %w", err)
	}
	return tokens, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
