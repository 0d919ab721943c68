package cli

import (
	"github.com/amandev/folio/internal/router"
)

// Lines taken by the chrome around the content area: navbar and separator
// on top, separator and hints below, then the command bar.
const (
	headerLines = 2
	footerLines = 3
)

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App    *App
	Router *router.State

	// Terminal dimensions
	Width  int
	Height int

	// Transient one-line note for the status bar.
	Note string
}

// ContentHeight returns the available height for view content.
func (s *SharedState) ContentHeight() int {
	h := s.Height - headerLines - footerLines
	if h < 1 {
		return 1
	}
	return h
}

// ContentWidth is the terminal width, never below a usable minimum.
func (s *SharedState) ContentWidth() int {
	if s.Width < 20 {
		return 20
	}
	return s.Width
}
