package db_test

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"

	"github.com/amandev/folio/internal/db"
	"github.com/amandev/folio/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openUoW(t *testing.T) (*sql.DB, *db.SQLiteUnitOfWork) {
	t.Helper()
	database := testutil.NewTestDB(t)
	return database, db.NewSQLiteUnitOfWork(database)
}

const (
	insertStudy = `INSERT INTO case_studies (id, seq, slug, title, tagline, problem, solution)
		VALUES (?, ?, ?, 'T', 'tag', 'p', 's')`
	insertItem = `INSERT INTO case_study_items (case_study_id, section, position, text)
		VALUES (?, 'outcomes', 0, 'shipped')`
)

func countRows(t *testing.T, database *sql.DB, table string) int {
	t.Helper()
	var n int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM `+table).Scan(&n))
	return n
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	database, uow := openUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		_, err := tx.ExecContext(ctx, insertStudy, "cs1", 1, "vault")
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, 1, countRows(t, database, "case_studies"))
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	database, uow := openUoW(t)
	boom := errors.New("deliberate failure")

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if _, err := tx.ExecContext(ctx, insertStudy, "cs1", 1, "vault"); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)
	assert.Zero(t, countRows(t, database, "case_studies"))
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	database, uow := openUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_, _ = tx.ExecContext(ctx, insertStudy, "cs1", 1, "vault")
			panic("boom")
		})
	})
	assert.Zero(t, countRows(t, database, "case_studies"))
}

func TestWithinTx_ChildrenMayPrecedeParents(t *testing.T) {
	database, uow := openUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if _, err := tx.ExecContext(ctx, insertItem, "cs1"); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, insertStudy, "cs1", 1, "vault")
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, 1, countRows(t, database, "case_study_items"))
}

func TestWithinTx_RejectsDanglingRows(t *testing.T) {
	database, uow := openUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		_, err := tx.ExecContext(ctx, insertItem, "missing")
		return err
	})
	require.ErrorIs(t, err, db.ErrDanglingRows)
	assert.Contains(t, err.Error(), "case_study_items (1)")
	assert.Zero(t, countRows(t, database, "case_study_items"))
}

func TestWithinTx_SealLeavesSingleFile(t *testing.T) {
	path := testutil.TempBundlePath(t)
	database, err := db.OpenDB(path)
	require.NoError(t, err)
	defer database.Close()

	uow := db.NewSQLiteUnitOfWork(database, db.WithSeal())
	err = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		_, err := tx.ExecContext(ctx, insertStudy, "cs1", 1, "vault")
		return err
	})
	require.NoError(t, err)

	var mode string
	require.NoError(t, database.QueryRow("PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "delete", mode)
	_, statErr := os.Stat(path + "-wal")
	assert.True(t, os.IsNotExist(statErr), "write-ahead log is folded into the bundle")
}
