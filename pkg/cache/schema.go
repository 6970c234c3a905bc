package cache

import (
	"database/sql"
	"fmt"
)

// SchemaVersion is the current cache schema version. A cache file with
// a different version is cleared rather than migrated; cached lint
// results are always recomputable.
const SchemaVersion = 1

// CreateSchema initializes the cache schema, clearing any tables left
// by an incompatible older version.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}

	var version int
	err = db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&version)
	switch {
	case err == sql.ErrNoRows:
		if _, err := db.Exec("INSERT INTO schema_version (version) VALUES (?)", SchemaVersion); err != nil {
			return fmt.Errorf("recording schema version: %w", err)
		}
	case err != nil:
		return fmt.Errorf("reading schema version: %w", err)
	case version != SchemaVersion:
		if _, err := db.Exec("DROP TABLE IF EXISTS results"); err != nil {
			return fmt.Errorf("dropping outdated results table: %w", err)
		}
		if _, err := db.Exec("UPDATE schema_version SET version = ?", SchemaVersion); err != nil {
			return fmt.Errorf("updating schema version: %w", err)
		}
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS results (
			blob_id TEXT NOT NULL,
			fingerprint TEXT NOT NULL,
			violations_json TEXT NOT NULL,
			PRIMARY KEY (blob_id, fingerprint)
		)
	`)
	if err != nil {
		return fmt.Errorf("creating results table: %w", err)
	}

	return nil
}
