package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/amandev/folio/internal/db"
)

// boolToInt converts a Go bool to an integer (0 or 1) for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// intToBool converts a SQLite integer (0 or 1) to a Go bool.
func intToBool(i int) bool {
	return i != 0
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// listItem is one ordered text row of a list-valued field.
type listItem struct {
	section string
	text    string
}

// listSection names the items of one list-valued field.
type listSection struct {
	name  string
	items []string
}

// insertList writes items as consecutive positions of one section. The
// statement must take (section, position, text) as its last three
// parameters after any leading owner arguments.
func insertList(ctx context.Context, conn db.DBTX, stmt string, owner []any, section string, items []string) error {
	for i, text := range items {
		args := append(append([]any{}, owner...), section, i, text)
		if _, err := conn.ExecContext(ctx, stmt, args...); err != nil {
			return fmt.Errorf("inserting %s item %d: %w", section, i, err)
		}
	}
	return nil
}

func scanRowsClose(rows *sql.Rows, scan func(*sql.Rows) error) error {
	defer rows.Close()
	for rows.Next() {
		if err := scan(rows); err != nil {
			return err
		}
	}
	return rows.Err()
}
