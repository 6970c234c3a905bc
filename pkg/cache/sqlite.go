package cache

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/alexdonduk/SwiftLint/pkg/types"
)

// SQLiteCache implements Cache on a SQLite database file. The driver is
// pure Go (modernc.org/sqlite), so the cache works without CGO.
type SQLiteCache struct {
	db *sql.DB
}

// NewSQLite opens (creating if necessary) a SQLite-backed cache.
func NewSQLite(path string) (*SQLiteCache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening cache database: %w", err)
	}

	if err := CreateSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating cache schema: %w", err)
	}

	return &SQLiteCache{db: db}, nil
}

// Get retrieves cached violations.
func (s *SQLiteCache) Get(id types.BlobID, fingerprint string) ([]types.Violation, bool, error) {
	var payload string
	err := s.db.QueryRow(
		"SELECT violations_json FROM results WHERE blob_id = ? AND fingerprint = ?",
		id, fingerprint,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("querying cache: %w", err)
	}

	var violations []types.Violation
	if err := json.Unmarshal([]byte(payload), &violations); err != nil {
		// A corrupt entry is treated as a miss; the engine relints and
		// overwrites it.
		return nil, false, nil
	}
	return violations, true, nil
}

// Put stores violations, replacing any previous entry for the key.
func (s *SQLiteCache) Put(id types.BlobID, fingerprint string, violations []types.Violation) error {
	payload, err := json.Marshal(violations)
	if err != nil {
		return fmt.Errorf("marshaling violations: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT OR REPLACE INTO results (blob_id, fingerprint, violations_json)
		VALUES (?, ?, ?)
	`, id, fingerprint, string(payload))
	if err != nil {
		return fmt.Errorf("inserting cache entry: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteCache) Close() error {
	return s.db.Close()
}
