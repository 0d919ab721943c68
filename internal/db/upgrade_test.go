package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A v1 bundle has no demo_url column. Migrating it keeps existing rows and
// fills the new column with its default.
func TestMigrate_UpgradePath_V1BundleGainsDemoURL(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	legacy := []string{
		`CREATE TABLE bundle_meta (key TEXT PRIMARY KEY, value TEXT NOT NULL)`,
		`INSERT INTO bundle_meta (key, value) VALUES ('schema_version', '1')`,
		`CREATE TABLE case_studies (
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
		`INSERT INTO case_studies (id, seq, slug, title, tagline, problem, solution, featured)
		 VALUES ('1', 0, 'safe-docs', 'Safe Docs', 't', 'p', 's', 1)`,
	}
	for _, stmt := range legacy {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}

	v, err := SchemaVersion(db)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	require.NoError(t, Migrate(db))

	var slug, demo string
	require.NoError(t, db.QueryRow(`SELECT slug, demo_url FROM case_studies WHERE id = '1'`).Scan(&slug, &demo))
	assert.Equal(t, "safe-docs", slug)
	assert.Equal(t, "", demo)

	v, err = SchemaVersion(db)
	require.NoError(t, err)
	assert.Equal(t, CurrentSchemaVersion, v)
}
