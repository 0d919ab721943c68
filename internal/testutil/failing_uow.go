package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/amandev/folio/internal/db"
)

// FailingInsertUoW is a UnitOfWork whose transaction fails the Nth insert
// into Table with Err, for rollback tests of multi-table bundle writes.
// Inserts are counted from 1; other statements pass through.
type FailingInsertUoW struct {
	DB    *sql.DB
	Table string
	Nth   int
	Err   error
}

func (u *FailingInsertUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	wrapped := &failingInsert{DBTX: tx, match: "INSERT INTO " + u.Table + " ", nth: u.Nth, err: u.Err}
	if err := fn(ctx, wrapped); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

type failingInsert struct {
	db.DBTX
	match string
	seen  int
	nth   int
	err   error
}

func (f *failingInsert) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if strings.Contains(query, f.match) {
		f.seen++
		if f.seen == f.nth {
			return nil, f.err
		}
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
