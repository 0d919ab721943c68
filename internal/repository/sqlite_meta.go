package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/amandev/folio/internal/db"
)

// Keys written to bundle_meta besides the schema version.
const (
	MetaSource    = "source"
	MetaCreatedAt = "created_at"
)

type SQLiteMetaRepo struct {
	db db.DBTX
}

func NewSQLiteMetaRepo(conn db.DBTX) *SQLiteMetaRepo {
	return &SQLiteMetaRepo{db: conn}
}

func (r *SQLiteMetaRepo) Get(ctx context.Context, key string) (string, error) {
	var v string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM bundle_meta WHERE key = ?`, key).Scan(&v)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", fmt.Errorf("bundle meta %q: %w", key, ErrNotFound)
		}
		return "", fmt.Errorf("reading bundle meta %q: %w", key, err)
	}
	return v, nil
}

func (r *SQLiteMetaRepo) Set(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO bundle_meta (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value)
	if err != nil {
		return fmt.Errorf("writing bundle meta %q: %w", key, err)
	}
	return nil
}

// Stamp records when the bundle was written.
func (r *SQLiteMetaRepo) Stamp(ctx context.Context) error {
	return r.Set(ctx, MetaCreatedAt, nowUTC())
}
