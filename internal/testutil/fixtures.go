package testutil

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/amandev/folio/internal/domain"
	"github.com/google/uuid"
)

var testSeqCounter atomic.Int64

// Case study options
type CaseStudyOption func(*domain.CaseStudy)

func WithFeatures(title string, items ...string) CaseStudyOption {
	return func(cs *domain.CaseStudy) {
		cs.Features = &domain.FeatureSection{Title: title, Items: items}
	}
}

func WithoutFeatures() CaseStudyOption {
	return func(cs *domain.CaseStudy) {
		cs.Features = nil
	}
}

func WithDemoURL(url string) CaseStudyOption {
	return func(cs *domain.CaseStudy) {
		cs.DemoURL = url
	}
}

func WithRepoURL(url string) CaseStudyOption {
	return func(cs *domain.CaseStudy) {
		cs.RepoURL = url
	}
}

func WithTechStack(tags ...string) CaseStudyOption {
	return func(cs *domain.CaseStudy) {
		cs.TechStack = tags
	}
}

func NotFeatured() CaseStudyOption {
	return func(cs *domain.CaseStudy) {
		cs.Featured = false
	}
}

// NewTestCaseStudy returns a featured case study with every section filled.
func NewTestCaseStudy(slug string, opts ...CaseStudyOption) *domain.CaseStudy {
	title := strings.ReplaceAll(slug, "-", " ")
	cs := &domain.CaseStudy{
		ID:                 uuid.New().String(),
		Slug:               slug,
		Title:              title,
		Tagline:            "Tagline for " + title,
		Problem:            "The problem " + title + " solves.",
		WhyFails:           []string{"Existing tools miss it"},
		Solution:           "How " + title + " solves it.",
		Workflow:           []string{"Collect", "Analyse", "Report"},
		TechnicalDecisions: []string{"Go for the core"},
		Features:           &domain.FeatureSection{Title: "Security Focus", Items: []string{"No data leaves the device"}},
		Outcomes:           []string{"It works"},
		Learnings:          []string{"Keep it simple"},
		TechStack:          []string{"Go", "SQLite"},
		RepoURL:            "https://github.com/example/" + slug,
		ImagePlaceholder:   "https://picsum.photos/seed/" + slug + "/800/600",
		Featured:           true,
	}
	for _, opt := range opts {
		opt(cs)
	}
	return cs
}

// NewTestSkill returns a skill with a unique name in the given category.
func NewTestSkill(category domain.SkillCategory, highlight bool) *domain.Skill {
	n := testSeqCounter.Add(1)
	return &domain.Skill{
		Name:      fmt.Sprintf("Skill %02d", n),
		Category:  category,
		Highlight: highlight,
	}
}

func NewTestAchievement(title string, icon domain.AchievementIcon) *domain.Achievement {
	return &domain.Achievement{
		ID:           uuid.New().String(),
		Title:        title,
		Organization: "Test Org",
		Date:         "2025",
		Description:  "Did " + title + ".",
		Icon:         icon,
	}
}

func NewTestProfile() *domain.Profile {
	return &domain.Profile{
		Name:          "Test Owner",
		Role:          "Engineer",
		Badge:         "OPEN TO WORK",
		Headline:      []string{"First line.", "Second line."},
		Subtext:       "Builds things.",
		AboutTitle:    "About Me",
		AboutSubtitle: "Systems",
		About:         []string{"Paragraph one.", "Paragraph two."},
		FocusAreas:    []string{"Security", "AI/ML"},
		ContactTitle:  "Ready to Collaborate?",
		ContactPitch:  []string{"Open to roles."},
		Email:         "owner@example.com",
		LinkedInURL:   "https://www.linkedin.com/in/owner/",
		GitHubURL:     "https://github.com/owner",
	}
}
