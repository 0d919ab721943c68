package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/amandev/folio/internal/db"
	"github.com/amandev/folio/internal/domain"
)

type SQLiteAchievementRepo struct {
	db db.DBTX
}

func NewSQLiteAchievementRepo(conn db.DBTX) *SQLiteAchievementRepo {
	return &SQLiteAchievementRepo{db: conn}
}

func (r *SQLiteAchievementRepo) Create(ctx context.Context, a *domain.Achievement) error {
	query := `INSERT INTO achievements (id, seq, title, organization, date_label, description, icon)
		VALUES (?, (SELECT COALESCE(MAX(seq), -1) + 1 FROM achievements), ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		a.Title,
		a.Organization,
		a.Date,
		a.Description,
		string(a.Icon),
	)
	if err != nil {
		return fmt.Errorf("inserting achievement %q: %w", a.Title, err)
	}
	return nil
}

func (r *SQLiteAchievementRepo) List(ctx context.Context) ([]domain.Achievement, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, title, organization, date_label, description, icon
		FROM achievements ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("listing achievements: %w", err)
	}
	var out []domain.Achievement
	err = scanRowsClose(rows, func(rows *sql.Rows) error {
		var a domain.Achievement
		var icon string
		if err := rows.Scan(&a.ID, &a.Title, &a.Organization, &a.Date, &a.Description, &icon); err != nil {
			return fmt.Errorf("scanning achievement: %w", err)
		}
		parsed, err := domain.ParseAchievementIcon(icon)
		if err != nil {
			return fmt.Errorf("achievement %q: %w", a.Title, err)
		}
		a.Icon = parsed
		out = append(out, a)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
