package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/amandev/folio/internal/db"
	"github.com/amandev/folio/internal/domain"
)

// SQLiteProfileRepo implements ProfileRepo. The bundle holds exactly one
// profile row.
type SQLiteProfileRepo struct {
	db db.DBTX
}

func NewSQLiteProfileRepo(conn db.DBTX) *SQLiteProfileRepo {
	return &SQLiteProfileRepo{db: conn}
}

func (r *SQLiteProfileRepo) Get(ctx context.Context) (*domain.Profile, error) {
	query := `SELECT name, role, badge, subtext, about_title, about_subtitle,
		contact_title, email, linkedin_url, github_url
		FROM profile WHERE id = 1`
	var p domain.Profile
	err := r.db.QueryRowContext(ctx, query).Scan(
		&p.Name,
		&p.Role,
		&p.Badge,
		&p.Subtext,
		&p.AboutTitle,
		&p.AboutSubtitle,
		&p.ContactTitle,
		&p.Email,
		&p.LinkedInURL,
		&p.GitHubURL,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("profile: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning profile: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, `SELECT section, text FROM profile_items ORDER BY section, position`)
	if err != nil {
		return nil, fmt.Errorf("loading profile items: %w", err)
	}
	err = scanRowsClose(rows, func(rows *sql.Rows) error {
		var item listItem
		if err := rows.Scan(&item.section, &item.text); err != nil {
			return fmt.Errorf("scanning profile item: %w", err)
		}
		switch item.section {
		case "headline":
			p.Headline = append(p.Headline, item.text)
		case "about":
			p.About = append(p.About, item.text)
		case "focus":
			p.FocusAreas = append(p.FocusAreas, item.text)
		case "pitch":
			p.ContactPitch = append(p.ContactPitch, item.text)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Put replaces the stored profile and its list items.
func (r *SQLiteProfileRepo) Put(ctx context.Context, p *domain.Profile) error {
	query := `INSERT OR REPLACE INTO profile (id, name, role, badge, subtext, about_title,
		about_subtitle, contact_title, email, linkedin_url, github_url)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.Name,
		p.Role,
		p.Badge,
		p.Subtext,
		p.AboutTitle,
		p.AboutSubtitle,
		p.ContactTitle,
		p.Email,
		p.LinkedInURL,
		p.GitHubURL,
	)
	if err != nil {
		return fmt.Errorf("upserting profile: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM profile_items`); err != nil {
		return fmt.Errorf("clearing profile items: %w", err)
	}
	stmt := `INSERT INTO profile_items (section, position, text) VALUES (?, ?, ?)`
	for _, s := range []listSection{
		{"headline", p.Headline},
		{"about", p.About},
		{"focus", p.FocusAreas},
		{"pitch", p.ContactPitch},
	} {
		if err := insertList(ctx, r.db, stmt, nil, s.name, s.items); err != nil {
			return fmt.Errorf("profile: %w", err)
		}
	}
	return nil
}
