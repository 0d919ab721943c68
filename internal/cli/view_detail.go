package cli

import (
	"github.com/amandev/folio/internal/cli/formatter"
	"github.com/amandev/folio/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// detailView is the case study page, rendered from markdown into a
// scrollable viewport.
type detailView struct {
	state *SharedState
	cs    *domain.CaseStudy
	vp    viewport.Model
}

func newDetailView(state *SharedState, cs *domain.CaseStudy) *detailView {
	v := &detailView{state: state, cs: cs, vp: viewport.New(0, 0)}
	v.vp.MouseWheelEnabled = true
	v.vp.MouseWheelDelta = 3
	v.layout()
	return v
}

func (v *detailView) layout() {
	width := v.state.ContentWidth()
	v.vp.Width = width
	v.vp.Height = max(v.state.ContentHeight()-1, 1)
	if v.cs == nil {
		v.vp.SetContent("")
		return
	}
	body, err := formatter.RenderMarkdown(
		formatter.CaseStudyMarkdown(v.cs),
		v.state.App.markdownStyle(),
		min(width, 100),
	)
	if err != nil {
		v.state.App.logger().Warn("rendering case study", zap.String("slug", v.cs.Slug), zap.Error(err))
		body = formatter.CaseStudyMarkdown(v.cs)
	}
	v.vp.SetContent(body)
}

func (v *detailView) Init() tea.Cmd { return nil }

func (v *detailView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.layout()
		return v, nil
	case tea.KeyMsg:
		if v.cs == nil {
			return v, nil
		}
		switch msg.String() {
		case "backspace", "b":
			return v, back()
		case "o":
			return v, v.follow(domain.LinkRepo, false)
		case "d":
			return v, v.follow(domain.LinkDemo, false)
		case "y":
			return v, v.follow(domain.LinkRepo, true)
		}
	case tea.MouseMsg:
		if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress && msg.Y == 0 {
			return v, back()
		}
	}
	var cmd tea.Cmd
	v.vp, cmd = v.vp.Update(msg)
	return v, cmd
}

func (v *detailView) follow(kind domain.LinkKind, copyOnly bool) tea.Cmd {
	for _, l := range v.cs.Links() {
		if l.Kind != kind {
			continue
		}
		if copyOnly {
			return copyLink(v.state, l.URL)
		}
		return openLink(v.state, l.URL)
	}
	return note("No " + string(kind) + " link for this project.")
}

func (v *detailView) View() string {
	if v.cs == nil {
		return ""
	}
	return formatter.CaseStudyHeader(v.cs, v.state.ContentWidth()) + "\n" + v.vp.View()
}

func (v *detailView) ID() ViewID { return ViewProjectDetail }
func (v *detailView) Title() string {
	if v.cs == nil {
		return "case study"
	}
	return v.cs.Slug
}
func (v *detailView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "view code")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "live demo")),
		key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy repo link")),
	}
}
