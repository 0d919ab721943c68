package cli

import (
	"github.com/amandev/folio/internal/cli/formatter"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// openLink hands link to the opener. When opening fails the link is copied
// to the clipboard instead, and the outcome is shown as a note.
func openLink(state *SharedState, link string) tea.Cmd {
	return func() tea.Msg {
		app := state.App
		err := app.Links.Open(link)
		if err == nil {
			return noteMsg{text: "Opened " + link}
		}
		app.logger().Warn("opening link", zap.String("url", link), zap.Error(err))
		if cerr := app.Links.Copy(link); cerr != nil {
			app.logger().Warn("copying link", zap.String("url", link), zap.Error(cerr))
			return noteMsg{text: formatter.StyleRed.Render("Could not open " + link)}
		}
		return noteMsg{text: "Could not open link; copied " + link}
	}
}

// copyLink puts link on the clipboard.
func copyLink(state *SharedState, link string) tea.Cmd {
	return func() tea.Msg {
		if err := state.App.Links.Copy(link); err != nil {
			state.App.logger().Warn("copying link", zap.String("url", link), zap.Error(err))
			return noteMsg{text: formatter.StyleRed.Render("Could not copy " + link)}
		}
		return noteMsg{text: "Copied " + link}
	}
}
