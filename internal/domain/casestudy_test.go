package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSlug_Valid(t *testing.T) {
	cases := []string{"safe-docs", "carbon-auditor", "a1", "spam-detection-web-app"}
	for _, slug := range cases {
		c := &CaseStudy{Slug: slug}
		assert.NoError(t, c.ValidateSlug(), "should accept %q", slug)
	}
}

func TestValidateSlug_Empty(t *testing.T) {
	c := &CaseStudy{}
	err := c.ValidateSlug()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required")
}

func TestValidateSlug_Invalid(t *testing.T) {
	cases := []string{"Safe-Docs", "safe docs", "-safe", "safe--docs", "safe_docs", "safe-"}
	for _, slug := range cases {
		c := &CaseStudy{Slug: slug}
		assert.Error(t, c.ValidateSlug(), "should reject %q", slug)
	}
}

func TestCaseStudyLinks_OrderAndOptional(t *testing.T) {
	c := &CaseStudy{RepoURL: "https://example.com/repo"}
	links := c.Links()
	require.Len(t, links, 1)
	assert.Equal(t, LinkRepo, links[0].Kind)

	c.DemoURL = "https://example.com/demo"
	links = c.Links()
	require.Len(t, links, 2)
	assert.Equal(t, LinkRepo, links[0].Kind)
	assert.Equal(t, LinkDemo, links[1].Kind)

	assert.Empty(t, (&CaseStudy{}).Links())
}

func TestCaseStudyClone_IsDeep(t *testing.T) {
	orig := &CaseStudy{
		Slug:      "safe-docs",
		WhyFails:  []string{"a"},
		TechStack: []string{"Go"},
		Features:  &FeatureSection{Title: "Security", Items: []string{"x"}},
	}
	cp := orig.Clone()
	cp.WhyFails[0] = "changed"
	cp.TechStack[0] = "Rust"
	cp.Features.Items[0] = "y"
	cp.Features.Title = "Other"

	assert.Equal(t, "a", orig.WhyFails[0])
	assert.Equal(t, "Go", orig.TechStack[0])
	assert.Equal(t, "x", orig.Features.Items[0])
	assert.Equal(t, "Security", orig.Features.Title)
}

func TestCaseStudyClone_Nil(t *testing.T) {
	var c *CaseStudy
	assert.Nil(t, c.Clone())
}

func TestDisplaySlug(t *testing.T) {
	c := &CaseStudy{Slug: "safe-docs"}
	assert.Equal(t, "SAFE-DOCS", c.DisplaySlug())
}
