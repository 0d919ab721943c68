// Package db opens the SQLite content bundle and owns its schema.
package db

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// ErrNoBundle is returned by OpenBundle when the file does not exist.
var ErrNoBundle = errors.New("content bundle not found")

// ErrStaleBundle is returned by OpenBundle for a bundle written with an
// older schema. Read-only handles cannot migrate it.
var ErrStaleBundle = errors.New("content bundle uses an older schema")

// OpenDB opens a writable SQLite database at the given path.
// If path is ":memory:", uses an in-memory database.
// Sets WAL mode and enables foreign keys.
// Runs migrations automatically.
func OpenDB(path string) (*sql.DB, error) {
	if path != ":memory:" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if path == ":memory:" {
		// Every pooled connection would otherwise see its own empty database.
		db.SetMaxOpenConns(1)
	}

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	if err := Migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return db, nil
}

// OpenBundle opens an existing bundle for reading. Writes through the
// returned handle fail. The bundle must carry exactly the schema version
// this build writes.
func OpenBundle(path string) (*sql.DB, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNoBundle, path)
		}
		return nil, fmt.Errorf("checking bundle: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening bundle: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA query_only = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting read-only mode: %w", err)
	}

	version, err := SchemaVersion(db)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("%s is not a folio content bundle: %w", path, err)
	}
	if version > CurrentSchemaVersion {
		db.Close()
		return nil, fmt.Errorf("bundle schema version %d is newer than supported version %d", version, CurrentSchemaVersion)
	}
	if version < CurrentSchemaVersion {
		db.Close()
		return nil, fmt.Errorf("%w: %s has version %d, want %d (re-run `folio content bundle --force`)",
			ErrStaleBundle, path, version, CurrentSchemaVersion)
	}
	return db, nil
}

// Seal checkpoints the write-ahead log and switches the file back to a
// rollback journal, so the bundle is a single self-contained file.
func Seal(db *sql.DB) error {
	if _, err := db.Exec("PRAGMA wal_checkpoint(TRUNCATE)"); err != nil {
		return fmt.Errorf("checkpointing bundle: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode = DELETE"); err != nil {
		return fmt.Errorf("leaving WAL mode: %w", err)
	}
	return nil
}
