package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/amandev/folio/internal/db"
	"github.com/stretchr/testify/require"
)

// NewTestDB opens an empty, migrated in-memory bundle that is closed with
// the test.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err, "opening in-memory bundle")
	t.Cleanup(func() { _ = database.Close() })
	return database
}

// TempBundlePath returns a path for a bundle file that does not exist yet.
func TempBundlePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "folio.db")
}
