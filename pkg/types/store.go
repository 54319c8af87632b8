package types

// Store is the persistence contract the catalogue is built on: a durable
// token mapping with atomic unique-name enforcement on insert, plus an
// append-only keyed snapshot store. Implementations provide
// read-your-writes consistency within a single process; cross-process
// coordination is out of scope.
type Store interface {
	// Attach connects the store to the location described by config,
	// creating the data directory if needed. Returns ErrAlreadyAttached
	// if called while already attached.
	Attach(config Config) error

	// Detach releases store resources. Idempotent: multiple calls
	// succeed. After Detach, operations return ErrStoreClosed.
	Detach() error

	// InsertToken persists a new token. A name collision rejects the
	// whole write with an error wrapping ErrDuplicateName.
	InsertToken(t *Token) error

	// UpdateToken overwrites the mutable columns of the token with the
	// given id. Returns ErrNotFound if the id does not exist.
	UpdateToken(id string, t *Token) error

	// FindToken looks a token up by id or name.
	// Returns ErrNotFound on a miss.
	FindToken(idOrName string) (*Token, error)

	// DeleteToken removes a token by id or name and reports whether a
	// row was removed. A miss is not an error.
	DeleteToken(idOrName string) (bool, error)

	// ScanTokens returns tokens ordered by (category, name), optionally
	// filtered by category and deprecation state.
	ScanTokens(category string, includeDeprecated bool) ([]Token, error)

	// InsertSnapshot persists a captured token set under the given id.
	InsertSnapshot(id string, set TokenSet) error

	// FindSnapshot looks a snapshot up by id or version label.
	// Returns ErrNotFound on a miss.
	FindSnapshot(idOrVersion string) (*TokenSet, error)

	// ListSnapshots returns all snapshot headers, newest first.
	ListSnapshots() ([]SnapshotHeader, error)
}
