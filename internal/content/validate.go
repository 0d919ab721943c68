package content

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/amandev/folio/internal/domain"
)

// ValidationError carries every problem found in a content document.
type ValidationError struct {
	Errs []error
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("content validation failed (%d errors):", len(e.Errs))
	for _, err := range e.Errs {
		msg += "\n  - " + err.Error()
	}
	return msg
}

func (e *ValidationError) Unwrap() []error { return e.Errs }

// Validate checks that a document has the shape the views rely on. It
// returns every error found rather than stopping at the first.
func Validate(doc *Document) []error {
	var errs []error
	errs = append(errs, validateProfile(&doc.Profile)...)
	errs = append(errs, validateSkills(doc.Skills)...)
	errs = append(errs, validateCaseStudies(doc.CaseStudies)...)
	errs = append(errs, validateAchievements(doc.Achievements)...)
	return errs
}

func validateProfile(p *ProfileDoc) []error {
	var errs []error
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, fmt.Errorf("profile.name is required"))
	}
	if len(p.Headline) == 0 {
		errs = append(errs, fmt.Errorf("profile.headline needs at least one line"))
	}
	if len(p.About.Paragraphs) == 0 {
		errs = append(errs, fmt.Errorf("profile.about.paragraphs needs at least one paragraph"))
	}
	if p.Contact.Email != "" && !strings.Contains(p.Contact.Email, "@") {
		errs = append(errs, fmt.Errorf("profile.contact.email %q is not an address", p.Contact.Email))
	}
	errs = append(errs, validateURL("profile.contact.linkedin", p.Contact.LinkedIn)...)
	errs = append(errs, validateURL("profile.contact.github", p.Contact.GitHub)...)
	return errs
}

func validateSkills(skills []SkillDoc) []error {
	var errs []error
	if len(skills) == 0 {
		errs = append(errs, fmt.Errorf("skills must not be empty"))
	}
	seen := make(map[string]bool)
	for i, s := range skills {
		prefix := fmt.Sprintf("skills[%d]", i)
		if strings.TrimSpace(s.Name) == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		} else if seen[s.Name] {
			errs = append(errs, fmt.Errorf("%s.name %q is duplicated", prefix, s.Name))
		}
		seen[s.Name] = true
		if _, err := domain.ParseSkillCategory(s.Category); err != nil {
			errs = append(errs, fmt.Errorf("%s.category: %w", prefix, err))
		}
	}
	return errs
}

func validateCaseStudies(items []CaseStudyDoc) []error {
	var errs []error
	if len(items) == 0 {
		errs = append(errs, fmt.Errorf("case_studies must not be empty"))
	}
	slugs := make(map[string]bool)
	ids := make(map[string]bool)
	for i, c := range items {
		prefix := fmt.Sprintf("case_studies[%d]", i)
		if c.Slug != "" {
			prefix = fmt.Sprintf("case_studies[%s]", c.Slug)
		}

		cs := domain.CaseStudy{Slug: c.Slug}
		if err := cs.ValidateSlug(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", prefix, err))
		} else if slugs[c.Slug] {
			errs = append(errs, fmt.Errorf("%s: slug is duplicated", prefix))
		}
		slugs[c.Slug] = true

		if c.ID != "" {
			if ids[c.ID] {
				errs = append(errs, fmt.Errorf("%s: id %q is duplicated", prefix, c.ID))
			}
			ids[c.ID] = true
		}

		required := map[string]string{
			"title":    c.Title,
			"tagline":  c.Tagline,
			"problem":  c.Problem,
			"solution": c.Solution,
		}
		for _, field := range []string{"title", "tagline", "problem", "solution"} {
			if strings.TrimSpace(required[field]) == "" {
				errs = append(errs, fmt.Errorf("%s.%s is required", prefix, field))
			}
		}
		if len(c.Workflow) == 0 {
			errs = append(errs, fmt.Errorf("%s.workflow needs at least one step", prefix))
		}
		if len(c.TechStack) == 0 {
			errs = append(errs, fmt.Errorf("%s.tech_stack needs at least one tag", prefix))
		}
		if c.Features != nil {
			if strings.TrimSpace(c.Features.Title) == "" {
				errs = append(errs, fmt.Errorf("%s.features.title is required when features are present", prefix))
			}
			if len(c.Features.Items) == 0 {
				errs = append(errs, fmt.Errorf("%s.features.items must not be empty", prefix))
			}
		}
		errs = append(errs, validateURL(prefix+".repo_url", c.RepoURL)...)
		errs = append(errs, validateURL(prefix+".demo_url", c.DemoURL)...)
	}
	return errs
}

func validateAchievements(items []AchievementDoc) []error {
	var errs []error
	ids := make(map[string]bool)
	for i, a := range items {
		prefix := fmt.Sprintf("achievements[%d]", i)
		if strings.TrimSpace(a.Title) == "" {
			errs = append(errs, fmt.Errorf("%s.title is required", prefix))
		}
		if strings.TrimSpace(a.Organization) == "" {
			errs = append(errs, fmt.Errorf("%s.organization is required", prefix))
		}
		if strings.TrimSpace(a.Date) == "" {
			errs = append(errs, fmt.Errorf("%s.date is required", prefix))
		}
		if _, err := domain.ParseAchievementIcon(a.Icon); err != nil {
			errs = append(errs, fmt.Errorf("%s.icon: %w", prefix, err))
		}
		if a.ID != "" {
			if ids[a.ID] {
				errs = append(errs, fmt.Errorf("%s: id %q is duplicated", prefix, a.ID))
			}
			ids[a.ID] = true
		}
	}
	return errs
}

func validateURL(field, raw string) []error {
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return []error{fmt.Errorf("%s: %w", field, err)}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return []error{fmt.Errorf("%s %q must be an http(s) URL", field, raw)}
	}
	if u.Host == "" {
		return []error{fmt.Errorf("%s %q has no host", field, raw)}
	}
	return nil
}
