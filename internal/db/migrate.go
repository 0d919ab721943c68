package db

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
)

// CurrentSchemaVersion is written to bundle_meta by Migrate.
const CurrentSchemaVersion = 2

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if _, err := db.Exec(
		`INSERT INTO bundle_meta (key, value) VALUES ('schema_version', ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		strconv.Itoa(CurrentSchemaVersion),
	); err != nil {
		return fmt.Errorf("recording schema version: %w", err)
	}
	return nil
}

// SchemaVersion reads the version recorded in bundle_meta.
func SchemaVersion(db *sql.DB) (int, error) {
	var raw string
	if err := db.QueryRow(`SELECT value FROM bundle_meta WHERE key = 'schema_version'`).Scan(&raw); err != nil {
		return 0, fmt.Errorf("reading schema version: %w", err)
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parsing schema version %q: %w", raw, err)
	}
	return v, nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS bundle_meta (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS profile (
		id             INTEGER PRIMARY KEY CHECK(id = 1),
		name           TEXT NOT NULL,
		role           TEXT NOT NULL DEFAULT '',
		badge          TEXT NOT NULL DEFAULT '',
		subtext        TEXT NOT NULL DEFAULT '',
		about_title    TEXT NOT NULL DEFAULT '',
		about_subtitle TEXT NOT NULL DEFAULT '',
		contact_title  TEXT NOT NULL DEFAULT '',
		email          TEXT NOT NULL DEFAULT '',
		linkedin_url   TEXT NOT NULL DEFAULT '',
		github_url     TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE TABLE IF NOT EXISTS profile_items (
		section  TEXT NOT NULL CHECK(section IN ('headline','about','focus','pitch')),
		position INTEGER NOT NULL,
		text     TEXT NOT NULL,
		PRIMARY KEY (section, position)
	)`,

	`CREATE TABLE IF NOT EXISTS case_studies (
		id            TEXT PRIMARY KEY,
		seq           INTEGER NOT NULL UNIQUE,
		slug          TEXT NOT NULL UNIQUE,
		title         TEXT NOT NULL,
		tagline       TEXT NOT NULL,
		problem       TEXT NOT NULL,
		solution      TEXT NOT NULL,
		feature_title TEXT,
		repo_url      TEXT NOT NULL DEFAULT '',
		image         TEXT NOT NULL DEFAULT '',
		featured      INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS case_study_items (
		case_study_id TEXT NOT NULL REFERENCES case_studies(id) ON DELETE CASCADE,
		section       TEXT NOT NULL
		              CHECK(section IN ('why_fails','workflow','decisions','features','outcomes','learnings','tech_stack')),
		position      INTEGER NOT NULL,
		text          TEXT NOT NULL,
		PRIMARY KEY (case_study_id, section, position)
	)`,

	`CREATE TABLE IF NOT EXISTS skills (
		seq       INTEGER PRIMARY KEY,
		name      TEXT NOT NULL UNIQUE,
		category  TEXT NOT NULL CHECK(category IN ('security','frontend','backend','tools')),
		highlight INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS achievements (
		id           TEXT PRIMARY KEY,
		seq          INTEGER NOT NULL UNIQUE,
		title        TEXT NOT NULL,
		organization TEXT NOT NULL,
		date_label   TEXT NOT NULL,
		description  TEXT NOT NULL DEFAULT '',
		icon         TEXT NOT NULL CHECK(icon IN ('trophy','certificate','briefcase'))
	)`,

	// v2: live demo links.
	`ALTER TABLE case_studies ADD COLUMN demo_url TEXT NOT NULL DEFAULT ''`,
}
