package content

import (
	"fmt"

	"github.com/amandev/folio/internal/domain"
	"github.com/google/uuid"
)

// Convert turns a validated document into a Store. Entries without an id
// get a fresh UUID. Call Validate first; Convert only fails on values it
// cannot map at all.
func Convert(doc *Document, source string) (*Store, error) {
	profile := domain.Profile{
		Name:          doc.Profile.Name,
		Role:          doc.Profile.Role,
		Badge:         doc.Profile.Badge,
		Headline:      doc.Profile.Headline,
		Subtext:       doc.Profile.Subtext,
		AboutTitle:    doc.Profile.About.Title,
		AboutSubtitle: doc.Profile.About.Subtitle,
		About:         doc.Profile.About.Paragraphs,
		FocusAreas:    doc.Profile.About.FocusAreas,
		ContactTitle:  doc.Profile.Contact.Title,
		ContactPitch:  doc.Profile.Contact.Pitch,
		Email:         doc.Profile.Contact.Email,
		LinkedInURL:   doc.Profile.Contact.LinkedIn,
		GitHubURL:     doc.Profile.Contact.GitHub,
	}

	skills := make([]domain.Skill, 0, len(doc.Skills))
	for _, s := range doc.Skills {
		cat, err := domain.ParseSkillCategory(s.Category)
		if err != nil {
			return nil, fmt.Errorf("skill %q: %w", s.Name, err)
		}
		skills = append(skills, domain.Skill{Name: s.Name, Category: cat, Highlight: s.Highlight})
	}

	studies := make([]*domain.CaseStudy, 0, len(doc.CaseStudies))
	for _, c := range doc.CaseStudies {
		cs := &domain.CaseStudy{
			ID:                 idOrNew(c.ID),
			Slug:               c.Slug,
			Title:              c.Title,
			Tagline:            c.Tagline,
			Problem:            c.Problem,
			WhyFails:           c.WhyFails,
			Solution:           c.Solution,
			Workflow:           c.Workflow,
			TechnicalDecisions: c.TechnicalDecisions,
			Outcomes:           c.Outcomes,
			Learnings:          c.Learnings,
			TechStack:          c.TechStack,
			RepoURL:            c.RepoURL,
			DemoURL:            c.DemoURL,
			ImagePlaceholder:   c.Image,
			Featured:           c.Featured,
		}
		if c.Features != nil {
			cs.Features = &domain.FeatureSection{Title: c.Features.Title, Items: c.Features.Items}
		}
		studies = append(studies, cs)
	}

	achievements := make([]domain.Achievement, 0, len(doc.Achievements))
	for _, a := range doc.Achievements {
		icon, err := domain.ParseAchievementIcon(a.Icon)
		if err != nil {
			return nil, fmt.Errorf("achievement %q: %w", a.Title, err)
		}
		achievements = append(achievements, domain.Achievement{
			ID:           idOrNew(a.ID),
			Title:        a.Title,
			Organization: a.Organization,
			Date:         a.Date,
			Description:  a.Description,
			Icon:         icon,
		})
	}

	return NewStore(source, profile, studies, skills, achievements), nil
}

func idOrNew(id string) string {
	if id != "" {
		return id
	}
	return uuid.New().String()
}

// ToDocument is the inverse of Convert, used by export.
func ToDocument(s *Store) *Document {
	p := s.Profile()
	doc := &Document{
		Profile: ProfileDoc{
			Name:     p.Name,
			Role:     p.Role,
			Badge:    p.Badge,
			Headline: p.Headline,
			Subtext:  p.Subtext,
			About: AboutDoc{
				Title:      p.AboutTitle,
				Subtitle:   p.AboutSubtitle,
				Paragraphs: p.About,
				FocusAreas: p.FocusAreas,
			},
			Contact: ContactDoc{
				Title:    p.ContactTitle,
				Pitch:    p.ContactPitch,
				Email:    p.Email,
				LinkedIn: p.LinkedInURL,
				GitHub:   p.GitHubURL,
			},
		},
	}
	for _, sk := range s.Skills() {
		doc.Skills = append(doc.Skills, SkillDoc{Name: sk.Name, Category: sk.Category.Key(), Highlight: sk.Highlight})
	}
	for _, c := range s.CaseStudies() {
		cd := CaseStudyDoc{
			ID:                 c.ID,
			Slug:               c.Slug,
			Title:              c.Title,
			Tagline:            c.Tagline,
			Problem:            c.Problem,
			WhyFails:           c.WhyFails,
			Solution:           c.Solution,
			Workflow:           c.Workflow,
			TechnicalDecisions: c.TechnicalDecisions,
			Outcomes:           c.Outcomes,
			Learnings:          c.Learnings,
			TechStack:          c.TechStack,
			RepoURL:            c.RepoURL,
			DemoURL:            c.DemoURL,
			Image:              c.ImagePlaceholder,
			Featured:           c.Featured,
		}
		if c.Features != nil {
			cd.Features = &FeatureDoc{Title: c.Features.Title, Items: c.Features.Items}
		}
		doc.CaseStudies = append(doc.CaseStudies, cd)
	}
	for _, a := range s.Achievements() {
		doc.Achievements = append(doc.Achievements, AchievementDoc{
			ID:           a.ID,
			Title:        a.Title,
			Organization: a.Organization,
			Date:         a.Date,
			Description:  a.Description,
			Icon:         string(a.Icon),
		})
	}
	return doc
}
