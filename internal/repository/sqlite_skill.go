package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/amandev/folio/internal/db"
	"github.com/amandev/folio/internal/domain"
)

type SQLiteSkillRepo struct {
	db db.DBTX
}

func NewSQLiteSkillRepo(conn db.DBTX) *SQLiteSkillRepo {
	return &SQLiteSkillRepo{db: conn}
}

func (r *SQLiteSkillRepo) Create(ctx context.Context, s *domain.Skill) error {
	query := `INSERT INTO skills (seq, name, category, highlight)
		VALUES ((SELECT COALESCE(MAX(seq), -1) + 1 FROM skills), ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, s.Name, s.Category.Key(), boolToInt(s.Highlight)); err != nil {
		return fmt.Errorf("inserting skill %q: %w", s.Name, err)
	}
	return nil
}

func (r *SQLiteSkillRepo) List(ctx context.Context) ([]domain.Skill, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name, category, highlight FROM skills ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("listing skills: %w", err)
	}
	var out []domain.Skill
	err = scanRowsClose(rows, func(rows *sql.Rows) error {
		var s domain.Skill
		var category string
		var highlight int
		if err := rows.Scan(&s.Name, &category, &highlight); err != nil {
			return fmt.Errorf("scanning skill: %w", err)
		}
		cat, err := domain.ParseSkillCategory(category)
		if err != nil {
			return fmt.Errorf("skill %q: %w", s.Name, err)
		}
		s.Category = cat
		s.Highlight = intToBool(highlight)
		out = append(out, s)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
