// Package content is the read-only store of portfolio content: case
// studies, skills, achievements and the owner profile. It is loaded once
// at start and never mutated; every accessor returns a copy.
package content

import (
	"errors"

	"github.com/amandev/folio/internal/domain"
)

// ErrNotFound is returned when a lookup matches no entry.
var ErrNotFound = errors.New("not found")

// SourceBuiltin names the content compiled into the binary.
const SourceBuiltin = "builtin"

type Store struct {
	source       string
	profile      domain.Profile
	caseStudies  []*domain.CaseStudy
	skills       []domain.Skill
	achievements []domain.Achievement
}

// NewStore copies its inputs, so later changes by the caller do not reach
// the store.
func NewStore(source string, profile domain.Profile, caseStudies []*domain.CaseStudy, skills []domain.Skill, achievements []domain.Achievement) *Store {
	s := &Store{
		source:       source,
		profile:      profile.Clone(),
		caseStudies:  make([]*domain.CaseStudy, 0, len(caseStudies)),
		skills:       append([]domain.Skill(nil), skills...),
		achievements: append([]domain.Achievement(nil), achievements...),
	}
	for _, cs := range caseStudies {
		s.caseStudies = append(s.caseStudies, cs.Clone())
	}
	return s
}

// Source describes where the content came from: "builtin" or a file path.
func (s *Store) Source() string { return s.source }

func (s *Store) Profile() domain.Profile { return s.profile.Clone() }

// CaseStudies returns every case study in content order.
func (s *Store) CaseStudies() []*domain.CaseStudy {
	return cloneStudies(s.caseStudies, func(*domain.CaseStudy) bool { return true })
}

// FeaturedCaseStudies returns the case studies shown in the carousel.
func (s *Store) FeaturedCaseStudies() []*domain.CaseStudy {
	return cloneStudies(s.caseStudies, func(cs *domain.CaseStudy) bool { return cs.Featured })
}

func cloneStudies(in []*domain.CaseStudy, keep func(*domain.CaseStudy) bool) []*domain.CaseStudy {
	out := make([]*domain.CaseStudy, 0, len(in))
	for _, cs := range in {
		if keep(cs) {
			out = append(out, cs.Clone())
		}
	}
	return out
}

// CaseStudyBySlug finds a case study by its slug.
func (s *Store) CaseStudyBySlug(slug string) (*domain.CaseStudy, error) {
	for _, cs := range s.caseStudies {
		if cs.Slug == slug {
			return cs.Clone(), nil
		}
	}
	return nil, ErrNotFound
}

func (s *Store) Skills() []domain.Skill {
	return append([]domain.Skill(nil), s.skills...)
}

// SkillsByCategory groups skills in the fixed category order. Categories
// with no skills are present with an empty slice.
func (s *Store) SkillsByCategory() map[domain.SkillCategory][]domain.Skill {
	out := make(map[domain.SkillCategory][]domain.Skill, len(domain.SkillCategories))
	for _, c := range domain.SkillCategories {
		out[c] = []domain.Skill{}
	}
	for _, sk := range s.skills {
		out[sk.Category] = append(out[sk.Category], sk)
	}
	return out
}

func (s *Store) Achievements() []domain.Achievement {
	return append([]domain.Achievement(nil), s.achievements...)
}

// Counts summarises the store for logs and `content inspect`.
type Counts struct {
	CaseStudies  int
	Featured     int
	Skills       int
	Achievements int
}

func (s *Store) Counts() Counts {
	c := Counts{
		CaseStudies:  len(s.caseStudies),
		Skills:       len(s.skills),
		Achievements: len(s.achievements),
	}
	for _, cs := range s.caseStudies {
		if cs.Featured {
			c.Featured++
		}
	}
	return c
}
