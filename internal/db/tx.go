package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// DBTX is what repositories need from a connection. Both *sql.DB and
// *sql.Tx provide it, so a repository reads a sealed bundle and writes
// inside a bundle transaction with the same code.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)

// ErrDanglingRows is returned when a write leaves child rows whose parent
// was never written.
var ErrDanglingRows = errors.New("bundle has rows without a parent")

// UnitOfWork runs one bundle write.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx DBTX) error) error
}

// SQLiteUnitOfWork commits the writes of fn only when fn succeeds and every
// row it wrote has its parent. Foreign keys are checked at the end of the
// transaction, so fn may write children before parents.
type SQLiteUnitOfWork struct {
	db   *sql.DB
	seal bool
}

// UoWOption configures a SQLiteUnitOfWork.
type UoWOption func(*SQLiteUnitOfWork)

// WithSeal folds the database back into a single file after each commit.
func WithSeal() UoWOption {
	return func(u *SQLiteUnitOfWork) { u.seal = true }
}

func NewSQLiteUnitOfWork(db *sql.DB, opts ...UoWOption) *SQLiteUnitOfWork {
	u := &SQLiteUnitOfWork{db: db}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *SQLiteUnitOfWork) WithinTx(ctx context.Context, fn func(ctx context.Context, tx DBTX) error) error {
	tx, err := u.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning bundle write: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.ExecContext(ctx, "PRAGMA defer_foreign_keys = ON"); err != nil {
		return fmt.Errorf("deferring foreign keys: %w", err)
	}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	if err := checkForeignKeys(ctx, tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing bundle write: %w", err)
	}
	committed = true

	if u.seal {
		return Seal(u.db)
	}
	return nil
}

// checkForeignKeys reports dangling rows per table.
func checkForeignKeys(ctx context.Context, conn DBTX) error {
	rows, err := conn.QueryContext(ctx, "PRAGMA foreign_key_check")
	if err != nil {
		return fmt.Errorf("checking foreign keys: %w", err)
	}
	defer rows.Close()

	dangling := make(map[string]int)
	for rows.Next() {
		var table, parent string
		var rowid sql.NullInt64
		var fkid int
		if err := rows.Scan(&table, &rowid, &parent, &fkid); err != nil {
			return fmt.Errorf("checking foreign keys: %w", err)
		}
		dangling[table]++
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("checking foreign keys: %w", err)
	}
	if len(dangling) == 0 {
		return nil
	}

	var parts []string
	for _, table := range slices.Sorted(maps.Keys(dangling)) {
		parts = append(parts, fmt.Sprintf("%s (%d)", table, dangling[table]))
	}
	return fmt.Errorf("%w: %s", ErrDanglingRows, strings.Join(parts, ", "))
}
