package repository

import (
	"context"

	"github.com/amandev/folio/internal/domain"
)

// Bundle repositories. Create appends after the existing rows; List returns
// rows in insertion order.

type ProfileRepo interface {
	Get(ctx context.Context) (*domain.Profile, error)
	Put(ctx context.Context, p *domain.Profile) error
}

type CaseStudyRepo interface {
	Create(ctx context.Context, cs *domain.CaseStudy) error
	GetBySlug(ctx context.Context, slug string) (*domain.CaseStudy, error)
	List(ctx context.Context) ([]*domain.CaseStudy, error)
}

type SkillRepo interface {
	Create(ctx context.Context, s *domain.Skill) error
	List(ctx context.Context) ([]domain.Skill, error)
}

type AchievementRepo interface {
	Create(ctx context.Context, a *domain.Achievement) error
	List(ctx context.Context) ([]domain.Achievement, error)
}

type MetaRepo interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
