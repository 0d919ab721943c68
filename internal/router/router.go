// Package router holds the view state of the portfolio: which screen is
// showing, which case study is selected, whether the about-modal is open,
// and any deep-link fragment still waiting to be scrolled to.
package router

import (
	"fmt"
	"strings"

	"github.com/amandev/folio/internal/domain"
)

// Screen is one of the named top-level screens.
type Screen int

const (
	Home Screen = iota
	ProjectList
	ProjectDetail
	SkillsPage
	ExperiencePage
)

var screenNames = map[Screen]string{
	Home:           "home",
	ProjectList:    "projectList",
	ProjectDetail:  "projectDetail",
	SkillsPage:     "skillsPage",
	ExperiencePage: "experiencePage",
}

func (s Screen) String() string {
	if n, ok := screenNames[s]; ok {
		return n
	}
	return fmt.Sprintf("Screen(%d)", int(s))
}

// Screens lists every screen in declaration order.
func Screens() []Screen {
	return []Screen{Home, ProjectList, ProjectDetail, SkillsPage, ExperiencePage}
}

// ParseScreen accepts a screen name case-insensitively, plus the short
// aliases used by the command bar.
func ParseScreen(s string) (Screen, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "home", "":
		return Home, nil
	case "projectlist", "projects", "list":
		return ProjectList, nil
	case "projectdetail", "detail":
		return ProjectDetail, nil
	case "skillspage", "skills":
		return SkillsPage, nil
	case "experiencepage", "experience":
		return ExperiencePage, nil
	}
	return Home, fmt.Errorf("unknown screen %q", s)
}

// removedSections are the in-page anchors that no longer exist on the home
// screen because their content moved to its own screen or to the modal.
var removedSections = map[string]bool{
	"about":      true,
	"skills":     true,
	"experience": true,
}

// State is the single view-state container. The zero value is not usable;
// call New.
type State struct {
	screen    Screen
	selected  *domain.CaseStudy
	fragment  string
	aboutOpen bool
}

// New returns a state on the home screen with nothing selected.
func New() *State {
	return &State{screen: Home}
}

func (s *State) Screen() Screen  { return s.screen }
func (s *State) AboutOpen() bool { return s.aboutOpen }

// Selected returns the case study shown on the detail screen, or nil.
func (s *State) Selected() *domain.CaseStudy { return s.selected }

// Navigate switches to screen to. Entering ProjectDetail without a
// selection lands on ProjectList instead. Leaving ProjectDetail clears the
// selection. It returns the screen actually entered.
func (s *State) Navigate(to Screen) Screen {
	if to == ProjectDetail && s.selected == nil {
		to = ProjectList
	}
	if to != ProjectDetail {
		s.selected = nil
	}
	s.screen = to
	return to
}

// Open selects cs and shows its detail screen. A nil case study falls back
// to the project list.
func (s *State) Open(cs *domain.CaseStudy) Screen {
	s.selected = cs
	return s.Navigate(ProjectDetail)
}

// BackToList leaves the detail screen for the project list.
func (s *State) BackToList() Screen {
	return s.Navigate(ProjectList)
}

// Back is the escape action: detail returns to the list, every other
// screen returns home. An open modal is closed first and nothing else
// changes.
func (s *State) Back() Screen {
	if s.aboutOpen {
		s.aboutOpen = false
		return s.screen
	}
	switch s.screen {
	case ProjectDetail:
		return s.BackToList()
	case Home:
		return Home
	default:
		return s.Navigate(Home)
	}
}

// SetFragment records a deep-link anchor to scroll to once home is shown.
// Leading '#' characters are ignored.
func (s *State) SetFragment(fragment string) {
	s.fragment = strings.TrimLeft(strings.TrimSpace(fragment), "#")
}

// PendingFragment reports the recorded anchor without consuming it.
func (s *State) PendingFragment() string { return s.fragment }

// TakeFragment consumes the pending anchor. It only fires on the home
// screen, and anchors naming a removed section are dropped without firing.
func (s *State) TakeFragment() (string, bool) {
	if s.screen != Home || s.fragment == "" {
		return "", false
	}
	f := s.fragment
	s.fragment = ""
	if removedSections[strings.ToLower(f)] {
		return "", false
	}
	return f, true
}

func (s *State) OpenAbout()  { s.aboutOpen = true }
func (s *State) CloseAbout() { s.aboutOpen = false }

// Resolve maps a navigation bar item to its effect. About Me opens the
// modal; the rest switch screens. Projects has no dedicated fragment
// handling beyond switching to the list.
func (s *State) Resolve(item domain.NavItem) Screen {
	switch item.Fragment {
	case "about":
		s.OpenAbout()
		return s.screen
	case "skills":
		return s.Navigate(SkillsPage)
	case "projects":
		return s.Navigate(ProjectList)
	case "experience":
		return s.Navigate(ExperiencePage)
	default:
		return s.Navigate(Home)
	}
}
