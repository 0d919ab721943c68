package cli

import (
	"time"

	"github.com/amandev/folio/internal/domain"
	"github.com/amandev/folio/internal/router"
	tea "github.com/charmbracelet/bubbletea"
)

// Navigation messages used by views to request screen transitions.
// The appModel applies them to the router and swaps the active view.

// navigateMsg switches to a top-level screen.
type navigateMsg struct {
	screen router.Screen
}

// openCaseStudyMsg selects a case study and shows its detail page.
type openCaseStudyMsg struct {
	cs *domain.CaseStudy
}

// backMsg follows the router's back rule.
type backMsg struct{}

// openAboutMsg opens the about modal.
type openAboutMsg struct{}

// pushFormMsg shows a form over the active view.
type pushFormMsg struct {
	view View
}

// formDoneMsg closes the form overlay and runs nextCmd.
type formDoneMsg struct {
	nextCmd tea.Cmd
}

// cmdOutputMsg carries text output from a command execution
// to be displayed transiently in the current view.
type cmdOutputMsg struct {
	output string
}

// noteMsg shows a one-line transient note in the status bar.
type noteMsg struct {
	text string
}

// quitMsg signals the app to quit.
type quitMsg struct{}

// timerMsg is implemented by every delayed message. The appModel drops
// timer messages whose generation is not the current one.
type timerMsg interface {
	generation() int
}

func navigate(screen router.Screen) tea.Cmd {
	return func() tea.Msg { return navigateMsg{screen: screen} }
}

func openCaseStudy(cs *domain.CaseStudy) tea.Cmd {
	return func() tea.Msg { return openCaseStudyMsg{cs: cs} }
}

func back() tea.Cmd {
	return func() tea.Msg { return backMsg{} }
}

func note(text string) tea.Cmd {
	return func() tea.Msg { return noteMsg{text: text} }
}

// outputCmd returns a tea.Cmd that sends a cmdOutputMsg.
func outputCmd(s string) tea.Cmd {
	if s == "" {
		return nil
	}
	return func() tea.Msg { return cmdOutputMsg{output: s} }
}

// after delivers msg once d has elapsed. A zero delay delivers it on the
// next turn of the event loop.
func after(d time.Duration, msg tea.Msg) tea.Cmd {
	if d <= 0 {
		return func() tea.Msg { return msg }
	}
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}
