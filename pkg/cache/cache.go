// Package cache persists lint results between runs. Results are keyed
// by file content (git-style blob ID) and configuration fingerprint, so
// a cached entry is replayed only when neither the file nor anything
// that affects linting has changed.
package cache

import (
	"github.com/alexdonduk/SwiftLint/pkg/types"
)

// Cache stores and retrieves lint results.
// This interface abstracts the underlying storage, allowing an on-disk
// database for real runs and an in-memory map for tests and one-shot
// invocations.
type Cache interface {
	// Get retrieves the violations cached for a blob under the given
	// configuration fingerprint. The second result is false on a miss.
	Get(id types.BlobID, fingerprint string) ([]types.Violation, bool, error)

	// Put stores the violations for a blob under the given
	// configuration fingerprint, replacing any previous entry.
	Put(id types.BlobID, fingerprint string, violations []types.Violation) error

	// Close releases the underlying storage.
	Close() error
}

// Config for cache initialization.
type Config struct {
	// Path is the database file path.
	// Use ":memory:" or leave empty for an in-memory cache.
	Path string
}

// New creates a Cache. File paths get the SQLite backend; ":memory:"
// and the empty path get the in-memory backend.
func New(cfg Config) (Cache, error) {
	if cfg.Path == "" || cfg.Path == ":memory:" {
		return NewMemory(), nil
	}
	return NewSQLite(cfg.Path)
}
