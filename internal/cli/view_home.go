package cli

import (
	"strings"

	"github.com/amandev/folio/internal/cli/formatter"
	"github.com/amandev/folio/internal/router"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// fragmentMsg asks the home view to scroll to an in-page anchor.
type fragmentMsg struct {
	gen      int
	fragment string
}

func (m fragmentMsg) generation() int { return m.gen }

// homeView shows the hero banner and the contact section.
type homeView struct {
	state   *SharedState
	gen     int
	vp      viewport.Model
	anchors map[string]int
}

func newHomeView(state *SharedState, gen int) *homeView {
	v := &homeView{state: state, gen: gen, vp: viewport.New(0, 0)}
	v.vp.MouseWheelEnabled = true
	v.layout()
	return v
}

func (v *homeView) layout() {
	width := v.state.ContentWidth()
	p := v.state.App.Store.Profile()
	hero := formatter.FormatHero(p, width)
	contact := formatter.FormatContact(p, width)

	heroLines := strings.Count(hero, "\n") + 1
	v.anchors = map[string]int{
		"home":    0,
		"top":     0,
		"contact": heroLines + 2,
	}
	v.vp.Width = width
	v.vp.Height = v.state.ContentHeight()
	v.vp.SetContent("\n" + hero + "\n\n" + contact)
}

func (v *homeView) Init() tea.Cmd { return nil }

func (v *homeView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.layout()
		return v, nil

	case fragmentMsg:
		if line, ok := v.anchors[strings.ToLower(msg.fragment)]; ok {
			v.vp.SetYOffset(line)
		} else {
			v.state.App.logger().Debug("unknown fragment", zap.String("fragment", msg.fragment))
		}
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "p":
			return v, navigate(router.ProjectList)
		case "m":
			return v, pushComposeForm(v.state)
		case "e", "l", "g":
			return v, v.openContact(msg.String())
		}
	}

	var cmd tea.Cmd
	v.vp, cmd = v.vp.Update(msg)
	return v, cmd
}

func (v *homeView) openContact(k string) tea.Cmd {
	links := v.state.App.Store.Profile().ContactLinks()
	want := map[string]string{"e": "email", "l": "linkedin", "g": "github"}[k]
	for _, l := range links {
		if string(l.Kind) == want {
			return openLink(v.state, l.URL)
		}
	}
	return nil
}

func (v *homeView) View() string { return v.vp.View() }

// ScrollOffset is the first visible line, for tests.
func (v *homeView) ScrollOffset() int { return v.vp.YOffset }

func (v *homeView) ID() ViewID    { return ViewHome }
func (v *homeView) Title() string { return "home" }
func (v *homeView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "view projects")),
		key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "compose email")),
		key.NewBinding(key.WithKeys("e", "l", "g"), key.WithHelp("e/l/g", "email/linkedin/github")),
	}
}
