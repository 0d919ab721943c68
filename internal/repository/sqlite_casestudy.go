package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/amandev/folio/internal/db"
	"github.com/amandev/folio/internal/domain"
)

const (
	sectionWhyFails  = "why_fails"
	sectionWorkflow  = "workflow"
	sectionDecisions = "decisions"
	sectionFeatures  = "features"
	sectionOutcomes  = "outcomes"
	sectionLearnings = "learnings"
	sectionTechStack = "tech_stack"
)

// SQLiteCaseStudyRepo implements CaseStudyRepo. List-valued fields live in
// case_study_items, one row per entry.
type SQLiteCaseStudyRepo struct {
	db db.DBTX
}

func NewSQLiteCaseStudyRepo(conn db.DBTX) *SQLiteCaseStudyRepo {
	return &SQLiteCaseStudyRepo{db: conn}
}

func caseStudySections(cs *domain.CaseStudy) []listSection {
	sections := []listSection{
		{sectionWhyFails, cs.WhyFails},
		{sectionWorkflow, cs.Workflow},
		{sectionDecisions, cs.TechnicalDecisions},
		{sectionOutcomes, cs.Outcomes},
		{sectionLearnings, cs.Learnings},
		{sectionTechStack, cs.TechStack},
	}
	if cs.Features != nil {
		sections = append(sections, listSection{sectionFeatures, cs.Features.Items})
	}
	return sections
}

func (r *SQLiteCaseStudyRepo) Create(ctx context.Context, cs *domain.CaseStudy) error {
	var featureTitle interface{}
	if cs.Features != nil {
		featureTitle = cs.Features.Title
	}
	query := `INSERT INTO case_studies (id, seq, slug, title, tagline, problem, solution,
		feature_title, repo_url, demo_url, image, featured)
		VALUES (?, (SELECT COALESCE(MAX(seq), -1) + 1 FROM case_studies), ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		cs.ID,
		cs.Slug,
		cs.Title,
		cs.Tagline,
		cs.Problem,
		cs.Solution,
		featureTitle,
		cs.RepoURL,
		cs.DemoURL,
		cs.ImagePlaceholder,
		boolToInt(cs.Featured),
	)
	if err != nil {
		return fmt.Errorf("inserting case study %q: %w", cs.Slug, err)
	}

	itemStmt := `INSERT INTO case_study_items (case_study_id, section, position, text) VALUES (?, ?, ?, ?)`
	for _, s := range caseStudySections(cs) {
		if err := insertList(ctx, r.db, itemStmt, []any{cs.ID}, s.name, s.items); err != nil {
			return fmt.Errorf("case study %q: %w", cs.Slug, err)
		}
	}
	return nil
}

const caseStudyColumns = `id, slug, title, tagline, problem, solution, feature_title,
	repo_url, demo_url, image, featured`

func scanCaseStudy(scanner interface{ Scan(...any) error }) (*domain.CaseStudy, error) {
	var cs domain.CaseStudy
	var featureTitle sql.NullString
	var featured int
	err := scanner.Scan(
		&cs.ID,
		&cs.Slug,
		&cs.Title,
		&cs.Tagline,
		&cs.Problem,
		&cs.Solution,
		&featureTitle,
		&cs.RepoURL,
		&cs.DemoURL,
		&cs.ImagePlaceholder,
		&featured,
	)
	if err != nil {
		return nil, err
	}
	cs.Featured = intToBool(featured)
	if featureTitle.Valid {
		cs.Features = &domain.FeatureSection{Title: featureTitle.String}
	}
	return &cs, nil
}

func (r *SQLiteCaseStudyRepo) GetBySlug(ctx context.Context, slug string) (*domain.CaseStudy, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+caseStudyColumns+` FROM case_studies WHERE slug = ?`, slug)
	cs, err := scanCaseStudy(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("case study %q: %w", slug, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning case study: %w", err)
	}
	if err := r.attachItems(ctx, map[string]*domain.CaseStudy{cs.ID: cs}, `WHERE case_study_id = ?`, cs.ID); err != nil {
		return nil, err
	}
	return cs, nil
}

func (r *SQLiteCaseStudyRepo) List(ctx context.Context) ([]*domain.CaseStudy, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+caseStudyColumns+` FROM case_studies ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("listing case studies: %w", err)
	}
	var out []*domain.CaseStudy
	byID := make(map[string]*domain.CaseStudy)
	err = scanRowsClose(rows, func(rows *sql.Rows) error {
		cs, err := scanCaseStudy(rows)
		if err != nil {
			return fmt.Errorf("scanning case study: %w", err)
		}
		out = append(out, cs)
		byID[cs.ID] = cs
		return nil
	})
	if err != nil {
		return nil, err
	}
	if err := r.attachItems(ctx, byID, ""); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *SQLiteCaseStudyRepo) attachItems(ctx context.Context, byID map[string]*domain.CaseStudy, where string, args ...any) error {
	query := `SELECT case_study_id, section, text FROM case_study_items ` + where + ` ORDER BY case_study_id, section, position`
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("loading case study items: %w", err)
	}
	return scanRowsClose(rows, func(rows *sql.Rows) error {
		var id string
		var item listItem
		if err := rows.Scan(&id, &item.section, &item.text); err != nil {
			return fmt.Errorf("scanning case study item: %w", err)
		}
		cs, ok := byID[id]
		if !ok {
			return nil
		}
		switch item.section {
		case sectionWhyFails:
			cs.WhyFails = append(cs.WhyFails, item.text)
		case sectionWorkflow:
			cs.Workflow = append(cs.Workflow, item.text)
		case sectionDecisions:
			cs.TechnicalDecisions = append(cs.TechnicalDecisions, item.text)
		case sectionOutcomes:
			cs.Outcomes = append(cs.Outcomes, item.text)
		case sectionLearnings:
			cs.Learnings = append(cs.Learnings, item.text)
		case sectionTechStack:
			cs.TechStack = append(cs.TechStack, item.text)
		case sectionFeatures:
			if cs.Features == nil {
				return fmt.Errorf("case study %q has feature items but no feature title", cs.Slug)
			}
			cs.Features.Items = append(cs.Features.Items, item.text)
		}
		return nil
	})
}
