package cli

import (
	"github.com/amandev/folio/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// pageView is a static, scrollable page whose content is re-rendered on
// every resize.
type pageView struct {
	state  *SharedState
	id     ViewID
	title  string
	render func(width int) string
	vp     viewport.Model
}

func newPageView(state *SharedState, id ViewID, title string, render func(width int) string) *pageView {
	v := &pageView{state: state, id: id, title: title, render: render, vp: viewport.New(0, 0)}
	v.vp.MouseWheelEnabled = true
	v.vp.MouseWheelDelta = 3
	v.layout()
	return v
}

func newSkillsView(state *SharedState) *pageView {
	return newPageView(state, ViewSkills, "skills", func(width int) string {
		return formatter.FormatSkills(state.App.Store.SkillsByCategory(), width)
	})
}

func newExperienceView(state *SharedState) *pageView {
	return newPageView(state, ViewExperience, "experience", func(width int) string {
		return formatter.FormatTimeline(state.App.Store.Achievements(), width)
	})
}

func (v *pageView) layout() {
	width := v.state.ContentWidth()
	v.vp.Width = width
	v.vp.Height = v.state.ContentHeight()
	v.vp.SetContent("\n" + v.render(width))
}

func (v *pageView) Init() tea.Cmd { return nil }

func (v *pageView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.WindowSizeMsg); ok {
		v.layout()
		return v, nil
	}
	var cmd tea.Cmd
	v.vp, cmd = v.vp.Update(msg)
	return v, cmd
}

func (v *pageView) View() string  { return v.vp.View() }
func (v *pageView) ID() ViewID    { return v.id }
func (v *pageView) Title() string { return v.title }
func (v *pageView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "scroll")),
	}
}
