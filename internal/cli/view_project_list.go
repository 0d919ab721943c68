package cli

import (
	"math"
	"strings"

	"github.com/amandev/folio/internal/carousel"
	"github.com/amandev/folio/internal/cli/formatter"
	"github.com/amandev/folio/internal/domain"
	"github.com/amandev/folio/internal/geom"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

const (
	subtitleLoading = "Loading projects..."
	subtitleReady   = "Scroll or click a card to bring it into focus."

	// stripTop is the first content line of the card strip.
	stripTop = 3

	skeletonCards = 3
	wheelStep     = 4
)

// projectsLoadedMsg ends the simulated loading delay.
type projectsLoadedMsg struct{ gen int }

// settleMsg fires once the strip has been laid out after loading.
type settleMsg struct{ gen int }

func (m projectsLoadedMsg) generation() int { return m.gen }
func (m settleMsg) generation() int         { return m.gen }

// projectListView is the carousel of featured case studies.
type projectListView struct {
	state   *SharedState
	gen     int
	studies []*domain.CaseStudy
	loading bool
	spin    spinner.Model
	car     *carousel.State
}

func newProjectListView(state *SharedState, gen int) *projectListView {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	s.Style = formatter.StyleAccent
	return &projectListView{
		state:   state,
		gen:     gen,
		studies: state.App.Store.FeaturedCaseStudies(),
		loading: true,
		spin:    s,
		car:     carousel.NewState(),
	}
}

func (v *projectListView) Init() tea.Cmd {
	delay := v.state.App.Config.GetLoadDelay()
	return tea.Batch(v.spin.Tick, after(delay, projectsLoadedMsg{gen: v.gen}))
}

// layout returns the strip geometry for the current terminal width.
func (v *projectListView) layout() carousel.Layout {
	ui := v.state.App.Config.UI
	w := ui.CardWidth
	if maxW := v.state.ContentWidth() - 4; w > maxW {
		w = max(maxW, 12)
	}
	return carousel.Layout{
		CardWidth:  float64(w),
		CardHeight: float64(ui.CardHeight),
		Gap:        float64(ui.CardGap),
	}
}

// viewport is the strip width View draws against. It stays zero until the
// terminal reports a size, so focus detection is skipped until then.
func (v *projectListView) viewport() float64 {
	if v.state.Width == 0 {
		return 0
	}
	return float64(v.state.ContentWidth())
}

func (v *projectListView) rects() []geom.Rect {
	return v.layout().Rects(v.viewport(), v.car.Scroll(), stripTop, v.car.Count())
}

func (v *projectListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case projectsLoadedMsg:
		v.loading = false
		v.car.SetCount(len(v.studies))
		v.car.SetScroll(v.layout().ScrollIntoView(0, v.viewport(), v.car.Count()))
		return v, after(v.state.App.Config.GetSettleDelay(), settleMsg{gen: v.gen})

	case settleMsg:
		v.recompute()
		return v, nil

	case tea.WindowSizeMsg:
		if !v.loading {
			l := v.layout()
			v.car.SetScroll(l.Clamp(v.car.Scroll(), v.viewport(), v.car.Count()))
			v.recompute()
		}
		return v, nil

	case spinner.TickMsg:
		if !v.loading {
			return v, nil
		}
		var cmd tea.Cmd
		v.spin, cmd = v.spin.Update(msg)
		return v, cmd

	case tea.KeyMsg:
		if v.loading {
			return v, nil
		}
		switch msg.String() {
		case "left", "h":
			v.scrollTo(v.car.Focal() - 1)
		case "right", "l":
			v.scrollTo(v.car.Focal() + 1)
		case "home":
			v.scrollTo(0)
		case "end":
			v.scrollTo(v.car.Count() - 1)
		case "enter":
			return v, v.selectCard(v.car.Focal())
		}
		return v, nil

	case tea.MouseMsg:
		if v.loading {
			return v, nil
		}
		return v, v.handleMouse(msg)
	}
	return v, nil
}

func (v *projectListView) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Button {
	case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
		v.scrollBy(wheelStep)
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
		v.scrollBy(-wheelStep)
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return nil
		}
		idx := carousel.HitTest(v.rects(), float64(msg.X), float64(msg.Y))
		if idx >= 0 {
			return v.selectCard(idx)
		}
	}
	return nil
}

// selectCard opens the focal card and scrolls any other card into focus.
func (v *projectListView) selectCard(idx int) tea.Cmd {
	if idx < 0 || idx >= len(v.studies) {
		return nil
	}
	if carousel.SelectOrNavigate(idx, v.car.Focal()) == carousel.Activate {
		return openCaseStudy(v.studies[idx])
	}
	v.scrollTo(idx)
	return nil
}

func (v *projectListView) scrollTo(idx int) {
	n := v.car.Count()
	if n == 0 {
		return
	}
	idx = max(0, min(idx, n-1))
	v.car.SetScroll(v.layout().ScrollIntoView(idx, v.viewport(), n))
	v.recompute()
}

func (v *projectListView) scrollBy(dx float64) {
	l := v.layout()
	v.car.SetScroll(l.Clamp(v.car.Scroll()+dx, v.viewport(), v.car.Count()))
	v.recompute()
}

// recompute runs the focal detection against the current strip.
func (v *projectListView) recompute() {
	l := v.layout()
	container := geom.Rect{X: 0, Y: stripTop, W: v.viewport(), H: l.CardHeight}
	if v.car.Recompute(container, v.rects()) {
		v.state.App.logger().Debug("focal changed", zap.Int("index", v.car.Focal()))
	}
}

func (v *projectListView) View() string {
	width := v.state.ContentWidth()
	l := v.layout()
	cardW, cardH := int(l.CardWidth), int(l.CardHeight)

	var b strings.Builder
	b.WriteString(formatter.Center(formatter.StyleHeader.Render("FEATURED PROJECTS"), width) + "\n")
	subtitle := subtitleReady
	if v.loading {
		subtitle = subtitleLoading
	}
	b.WriteString(formatter.Center(formatter.Dim(subtitle), width) + "\n\n")

	if v.loading {
		cards := make([]string, skeletonCards)
		for i := range cards {
			cards[i] = formatter.RenderSkeletonCard(cardW, cardH, v.spin.View())
		}
		total := skeletonCards*cardW + (skeletonCards-1)*int(l.Gap)
		b.WriteString(formatter.RenderStrip(cards, formatter.Strip{
			Padding:  max((width-total)/2, 0),
			Gap:      int(l.Gap),
			Viewport: width,
			Height:   cardH,
		}))
		return b.String()
	}

	if len(v.studies) == 0 {
		b.WriteString(formatter.Center(formatter.Dim("No featured projects."), width))
		return b.String()
	}

	cards := make([]string, len(v.studies))
	for i, cs := range v.studies {
		cards[i] = formatter.RenderCard(cs, cardW, cardH, carousel.TransformFor(i, v.car.Focal()))
	}
	b.WriteString(formatter.RenderStrip(cards, formatter.Strip{
		Padding:  int(math.Round(l.Padding(float64(width)))),
		Gap:      int(l.Gap),
		Scroll:   int(math.Round(v.car.Scroll())),
		Viewport: width,
		Height:   cardH,
	}))
	b.WriteString("\n\n" + formatter.Center(v.dots(), width))
	return b.String()
}

// dots is the position indicator under the strip.
func (v *projectListView) dots() string {
	parts := make([]string, len(v.studies))
	for i := range v.studies {
		if i == v.car.Focal() {
			parts[i] = formatter.Accent("●")
		} else {
			parts[i] = formatter.Dim("○")
		}
	}
	return strings.Join(parts, " ")
}

// Focal is the focal card index, for tests.
func (v *projectListView) Focal() int { return v.car.Focal() }

// Loading reports whether the simulated load is still running.
func (v *projectListView) Loading() bool { return v.loading }

func (v *projectListView) ID() ViewID    { return ViewProjectList }
func (v *projectListView) Title() string { return "projects" }
func (v *projectListView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "focus")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "read case study")),
	}
}
