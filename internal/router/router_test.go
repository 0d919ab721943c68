package router

import (
	"testing"

	"github.com/amandev/folio/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func caseStudy(slug string) *domain.CaseStudy {
	return &domain.CaseStudy{ID: "id-" + slug, Slug: slug, Title: slug}
}

func TestNew_StartsHome(t *testing.T) {
	s := New()
	assert.Equal(t, Home, s.Screen())
	assert.Nil(t, s.Selected())
	assert.False(t, s.AboutOpen())
}

func TestNavigate_DetailWithoutSelectionFallsBackToList(t *testing.T) {
	s := New()
	got := s.Navigate(ProjectDetail)

	assert.Equal(t, ProjectList, got)
	assert.Equal(t, ProjectList, s.Screen())
	assert.Nil(t, s.Selected())
}

func TestOpen_NilFallsBackToList(t *testing.T) {
	s := New()
	assert.Equal(t, ProjectList, s.Open(nil))
}

func TestOpen_SelectsAndShowsDetail(t *testing.T) {
	s := New()
	s.Navigate(ProjectList)

	got := s.Open(caseStudy("safe-docs"))

	assert.Equal(t, ProjectDetail, got)
	require.NotNil(t, s.Selected())
	assert.Equal(t, "safe-docs", s.Selected().Slug)
}

func TestLeavingDetailClearsSelection(t *testing.T) {
	for _, to := range []Screen{Home, ProjectList, SkillsPage, ExperiencePage} {
		s := New()
		s.Open(caseStudy("safe-docs"))
		s.Navigate(to)
		assert.Equal(t, to, s.Screen())
		assert.Nil(t, s.Selected(), "leaving detail for %s", to)
	}
}

func TestBack(t *testing.T) {
	s := New()
	s.Open(caseStudy("safe-docs"))
	assert.Equal(t, ProjectList, s.Back())
	assert.Nil(t, s.Selected())
	assert.Equal(t, Home, s.Back())
	assert.Equal(t, Home, s.Back())

	s.Navigate(SkillsPage)
	s.OpenAbout()
	assert.Equal(t, SkillsPage, s.Back(), "first escape closes the modal")
	assert.False(t, s.AboutOpen())
	assert.Equal(t, Home, s.Back())
}

func TestFragment_ConsumedOnceOnHome(t *testing.T) {
	s := New()
	s.SetFragment("#contact")
	s.Navigate(ProjectList)

	_, ok := s.TakeFragment()
	assert.False(t, ok, "fragment must wait for home")
	assert.Equal(t, "contact", s.PendingFragment())

	s.Navigate(Home)
	f, ok := s.TakeFragment()
	require.True(t, ok)
	assert.Equal(t, "contact", f)

	_, ok = s.TakeFragment()
	assert.False(t, ok, "fragment fires only once")
}

func TestFragment_RemovedSectionsIgnored(t *testing.T) {
	for _, f := range []string{"about", "skills", "experience", "#About"} {
		s := New()
		s.SetFragment(f)
		_, ok := s.TakeFragment()
		assert.False(t, ok, f)
		assert.Empty(t, s.PendingFragment(), "%s is dropped, not retried", f)
	}
}

func TestResolve_NavItems(t *testing.T) {
	want := map[string]Screen{
		"Home":       Home,
		"Skills":     SkillsPage,
		"Projects":   ProjectList,
		"Experience": ExperiencePage,
	}
	for _, item := range domain.NavItems {
		s := New()
		s.Navigate(ExperiencePage)
		got := s.Resolve(item)
		if item.Fragment == "about" {
			assert.True(t, s.AboutOpen())
			assert.Equal(t, ExperiencePage, got, "about keeps the current screen")
			continue
		}
		assert.Equal(t, want[item.Label], got, item.Label)
	}
}

func TestParseScreen(t *testing.T) {
	for _, sc := range Screens() {
		got, err := ParseScreen(sc.String())
		require.NoError(t, err)
		assert.Equal(t, sc, got)
	}
	got, err := ParseScreen("Projects")
	require.NoError(t, err)
	assert.Equal(t, ProjectList, got)

	_, err = ParseScreen("settings")
	assert.Error(t, err)
}
