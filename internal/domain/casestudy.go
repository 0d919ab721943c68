package domain

import (
	"fmt"
	"regexp"
	"strings"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// FeatureSection is the optional, named list a case study can carry
// (e.g. "Security Focus" or "ML Pipeline").
type FeatureSection struct {
	Title string
	Items []string
}

type CaseStudy struct {
	ID                 string
	Slug               string
	Title              string
	Tagline            string
	Problem            string
	WhyFails           []string
	Solution           string
	Workflow           []string
	TechnicalDecisions []string
	Features           *FeatureSection
	Outcomes           []string
	Learnings          []string
	TechStack          []string
	RepoURL            string
	DemoURL            string
	ImagePlaceholder   string
	Featured           bool
}

// ValidateSlug checks that Slug is a lowercase, hyphen-separated token
// that can be used as a URL fragment or CLI argument.
func (c *CaseStudy) ValidateSlug() error {
	if c.Slug == "" {
		return fmt.Errorf("slug is required")
	}
	if !slugPattern.MatchString(c.Slug) {
		return fmt.Errorf("slug %q must be lowercase letters and digits separated by single hyphens", c.Slug)
	}
	return nil
}

// DisplaySlug is the upper-cased slug shown in the detail header.
func (c *CaseStudy) DisplaySlug() string {
	return strings.ToUpper(c.Slug)
}

// Links returns the outbound links of the case study in display order.
func (c *CaseStudy) Links() []Link {
	var links []Link
	if c.RepoURL != "" {
		links = append(links, Link{Kind: LinkRepo, Label: "View Code", URL: c.RepoURL})
	}
	if c.DemoURL != "" {
		links = append(links, Link{Kind: LinkDemo, Label: "Live Demo", URL: c.DemoURL})
	}
	return links
}

// Clone returns a deep copy so callers can never mutate shared content.
func (c *CaseStudy) Clone() *CaseStudy {
	if c == nil {
		return nil
	}
	out := *c
	out.WhyFails = cloneStrings(c.WhyFails)
	out.Workflow = cloneStrings(c.Workflow)
	out.TechnicalDecisions = cloneStrings(c.TechnicalDecisions)
	out.Outcomes = cloneStrings(c.Outcomes)
	out.Learnings = cloneStrings(c.Learnings)
	out.TechStack = cloneStrings(c.TechStack)
	if c.Features != nil {
		out.Features = &FeatureSection{
			Title: c.Features.Title,
			Items: cloneStrings(c.Features.Items),
		}
	}
	return &out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
