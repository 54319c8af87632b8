package sqlite

// Schema DDL. Aliases and tags are stored as JSON arrays in TEXT columns;
// timestamps are RFC3339 TEXT. The unique index on tokens.name is what
// enforces the catalogue's unique-name invariant: an insert that collides
// is rejected whole.
const (
	createTokens = `CREATE TABLE IF NOT EXISTS tokens (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    category TEXT NOT NULL,
    value TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    aliases TEXT NOT NULL DEFAULT '[]',
    deprecated INTEGER NOT NULL DEFAULT 0,
    deprecated_reason TEXT NOT NULL DEFAULT '',
    tags TEXT NOT NULL DEFAULT '[]',
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL,
    version INTEGER NOT NULL DEFAULT 1
);`

	createSnapshots = `CREATE TABLE IF NOT EXISTS token_snapshots (
    id TEXT PRIMARY KEY,
    version TEXT NOT NULL,
    name TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    data TEXT NOT NULL,
    created_at TEXT NOT NULL
);`
)

// Index DDL for common queries.
const (
	idxTokensCategory    = `CREATE INDEX IF NOT EXISTS idx_tokens_category ON tokens(category);`
	idxTokensDeprecated  = `CREATE INDEX IF NOT EXISTS idx_tokens_deprecated ON tokens(deprecated);`
	idxSnapshotsVersion  = `CREATE INDEX IF NOT EXISTS idx_snapshots_version ON token_snapshots(version);`
	idxSnapshotsCreated  = `CREATE INDEX IF NOT EXISTS idx_snapshots_created ON token_snapshots(created_at);`
)

// schemaDDL lists all schema statements in execution order.
var schemaDDL = []string{
	createTokens,
	createSnapshots,
	idxTokensCategory,
	idxTokensDeprecated,
	idxSnapshotsVersion,
	idxSnapshotsCreated,
}
