package cli

import (
	"github.com/amandev/folio/internal/router"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewID identifies each type of view in the TUI.
type ViewID int

const (
	ViewHome ViewID = iota
	ViewProjectList
	ViewProjectDetail
	ViewSkills
	ViewExperience
	ViewForm
)

// View is the interface that all TUI views must implement.
// It extends tea.Model with navigation and help metadata.
type View interface {
	tea.Model
	ID() ViewID
	ShortHelp() []key.Binding // key hints shown in the bottom bar
	Title() string            // breadcrumb segment for this view
}

// viewForScreen builds a fresh view for the router screen. gen tags the
// view's timers so that ticks outliving it are dropped.
func viewForScreen(state *SharedState, screen router.Screen, gen int) View {
	switch screen {
	case router.ProjectList:
		return newProjectListView(state, gen)
	case router.ProjectDetail:
		return newDetailView(state, state.Router.Selected())
	case router.SkillsPage:
		return newSkillsView(state)
	case router.ExperiencePage:
		return newExperienceView(state)
	default:
		return newHomeView(state, gen)
	}
}

// navIndex is the navbar item highlighted for a screen.
func navIndex(screen router.Screen) int {
	switch screen {
	case router.SkillsPage:
		return 2
	case router.ProjectList, router.ProjectDetail:
		return 3
	case router.ExperiencePage:
		return 4
	}
	return 0
}
