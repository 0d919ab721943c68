package cli

import (
	"fmt"
	"strings"

	"github.com/amandev/folio/internal/cli/formatter"
	"github.com/amandev/folio/internal/domain"
	"github.com/amandev/folio/internal/geom"
	"github.com/amandev/folio/internal/router"
	"github.com/amandev/folio/internal/tilt"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// tiltSpan is how many cells a full tilt moves the about card.
const tiltSpan = 2

// appModel is the root bubbletea Model for the TUI. It owns the router,
// the single active screen view, an optional form overlay and the
// persistent command bar.
type appModel struct {
	state    *SharedState
	active   View
	screen   router.Screen
	form     View
	cmdBar   commandBar
	tilt     *tilt.Tracker
	quitting bool

	// gen is bumped on every screen switch; timer messages carrying an
	// older generation are dropped.
	gen int

	// Transient output from the command bar, displayed in content area.
	lastOutput string

	// Scrollable viewport for command output that exceeds terminal height.
	outputVP     viewport.Model
	outputActive bool
}

func newAppModel(app *App, fragment string) appModel {
	state := &SharedState{App: app, Router: router.New()}
	state.Router.SetFragment(fragment)

	vp := viewport.New(0, 0)
	vp.KeyMap = outputViewportKeyMap()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	return appModel{
		state:    state,
		active:   viewForScreen(state, router.Home, 0),
		screen:   router.Home,
		cmdBar:   newCommandBar(state),
		tilt:     tilt.NewTracker(tilt.DefaultMax),
		outputVP: vp,
	}
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.active.Init(), m.fragmentCmd())
}

// fragmentCmd schedules the pending deep-link scroll once home is showing.
func (m *appModel) fragmentCmd() tea.Cmd {
	f, ok := m.state.Router.TakeFragment()
	if !ok {
		return nil
	}
	return after(m.state.App.Config.GetFragmentDelay(), fragmentMsg{gen: m.gen, fragment: f})
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if tm, ok := msg.(timerMsg); ok && tm.generation() != m.gen {
		m.state.App.logger().Debug("dropping stale timer",
			zap.String("msg", fmt.Sprintf("%T", msg)), zap.Int("gen", tm.generation()), zap.Int("current", m.gen))
		return m, nil
	}

	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.cmdBar.SetWidth(msg.Width)
		if m.outputActive {
			m.outputVP.Width = msg.Width
			m.outputVP.Height = m.state.ContentHeight()
		}
		var cmds []tea.Cmd
		if m.form != nil {
			updated, cmd := m.form.Update(msg)
			m.form = updated.(View)
			cmds = append(cmds, cmd)
		}
		updated, cmd := m.active.Update(msg)
		m.active = updated.(View)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		m.state.Note = ""
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case navigateMsg:
		return m, m.switchTo(m.state.Router.Navigate(msg.screen))

	case openCaseStudyMsg:
		return m, m.switchTo(m.state.Router.Open(msg.cs))

	case backMsg:
		return m, m.goBack()

	case openAboutMsg:
		m.openAbout()
		return m, nil

	case pushFormMsg:
		m.cmdBar.Blur()
		m.clearOutput()
		m.form = msg.view
		return m, msg.view.Init()

	case formDoneMsg:
		m.form = nil
		return m, msg.nextCmd

	case cmdOutputMsg:
		m.lastOutput = msg.output
		m.outputActive = true
		m.outputVP.SetContent(msg.output)
		m.outputVP.Width = m.state.Width
		m.outputVP.Height = m.state.ContentHeight()
		m.outputVP.GotoTop()
		return m, nil

	case noteMsg:
		m.state.Note = msg.text
		return m, nil

	case quitMsg:
		m.quitting = true
		return m, tea.Quit
	}

	// Forward other messages to command bar (e.g., cursor blink)
	if m.cmdBar.Focused() {
		return m, m.cmdBar.UpdateNonKey(msg)
	}
	if m.form != nil {
		updated, cmd := m.form.Update(msg)
		m.form = updated.(View)
		return m, cmd
	}

	updated, cmd := m.active.Update(msg)
	m.active = updated.(View)
	return m, cmd
}

// switchTo mounts a fresh view for screen. Re-selecting the current
// screen is a no-op except for the detail page, whose selection may differ.
func (m *appModel) switchTo(screen router.Screen) tea.Cmd {
	if screen == m.screen && screen != router.ProjectDetail {
		return nil
	}
	m.state.App.logger().Info("screen change",
		zap.Stringer("from", m.screen), zap.Stringer("to", screen))

	m.gen++
	m.clearOutput()
	m.cmdBar.Blur()
	m.screen = screen
	m.active = viewForScreen(m.state, screen, m.gen)

	cmds := []tea.Cmd{m.active.Init()}
	if screen == router.Home {
		cmds = append(cmds, m.fragmentCmd())
	}
	return tea.Batch(cmds...)
}

func (m *appModel) goBack() tea.Cmd {
	if m.state.Router.AboutOpen() {
		m.closeAbout()
		return nil
	}
	return m.switchTo(m.state.Router.Back())
}

func (m *appModel) openAbout() {
	m.state.Router.OpenAbout()
	m.tilt.Leave()
	m.clearOutput()
}

func (m *appModel) closeAbout() {
	m.state.Router.CloseAbout()
	m.tilt.Leave()
}

// resolveNav applies navbar item i.
func (m *appModel) resolveNav(i int) tea.Cmd {
	if i < 0 || i >= len(domain.NavItems) {
		return nil
	}
	item := domain.NavItems[i]
	if item.Fragment == "about" {
		m.openAbout()
		return nil
	}
	m.closeAbout()
	return m.switchTo(m.state.Router.Resolve(item))
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global quit
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	// An open form receives every key.
	if m.form != nil {
		updated, cmd := m.form.Update(msg)
		m.form = updated.(View)
		return m, cmd
	}

	// If command bar is focused, route keys there
	if m.cmdBar.Focused() {
		if msg.Type == tea.KeyEnter {
			m.clearOutput()
		}
		return m, m.cmdBar.Update(msg)
	}

	// When output is displayed, intercept scroll keys for the viewport.
	// Non-scroll keys dismiss the output, then fall through to normal handling.
	if m.outputActive {
		if isOutputScrollKey(msg) {
			var cmd tea.Cmd
			m.outputVP, cmd = m.outputVP.Update(msg)
			return m, cmd
		}
		m.clearOutput()
		if msg.Type == tea.KeyEsc {
			return m, nil
		}
	}

	if m.state.Router.AboutOpen() {
		switch msg.String() {
		case "esc", "enter", "q", "a":
			m.closeAbout()
		}
		return m, nil
	}

	switch s := msg.String(); {
	case s == ":":
		m.cmdBar.Focus()
		return m, nil

	case s == "q":
		m.quitting = true
		return m, tea.Quit

	case len(s) == 1 && s[0] >= '1' && s[0] <= '9':
		return m, m.resolveNav(int(s[0] - '1'))

	case s == "a":
		m.openAbout()
		return m, nil

	case s == "?":
		return m, outputCmd(shellHelp())

	case msg.Type == tea.KeyEsc:
		return m, m.goBack()
	}

	updated, cmd := m.active.Update(msg)
	m.active = updated.(View)
	return m, cmd
}

func (m appModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.form != nil {
		updated, cmd := m.form.Update(msg)
		m.form = updated.(View)
		return m, cmd
	}

	if m.state.Router.AboutOpen() {
		card := m.aboutRect()
		switch msg.Action {
		case tea.MouseActionMotion:
			if m.tilt.Move(card, float64(msg.X), float64(msg.Y)) {
				m.state.App.logger().Debug("tilt",
					zap.Float64("rotateX", m.tilt.Angles().RotateX), zap.Float64("rotateY", m.tilt.Angles().RotateY))
			}
		case tea.MouseActionPress:
			if msg.Button == tea.MouseButtonLeft && !card.Contains(float64(msg.X), float64(msg.Y)) {
				m.closeAbout()
			}
		}
		return m, nil
	}

	if m.outputActive {
		var cmd tea.Cmd
		m.outputVP, cmd = m.outputVP.Update(msg)
		return m, cmd
	}

	if msg.Y == 0 {
		if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress {
			_, zones := m.navbar()
			return m, m.resolveNav(formatter.NavHit(zones, msg.X))
		}
		return m, nil
	}

	if msg.Y < headerLines || msg.Y >= headerLines+m.state.ContentHeight() {
		return m, nil
	}
	msg.Y -= headerLines
	updated, cmd := m.active.Update(msg)
	m.active = updated.(View)
	return m, cmd
}

// aboutRect is the on-screen box of the unshifted about card.
func (m *appModel) aboutRect() geom.Rect {
	card := formatter.FormatAbout(m.state.App.Store.Profile(), m.state.ContentWidth(), 0)
	lines := strings.Split(card, "\n")
	first := lines[0]
	left := len(first) - len(strings.TrimLeft(first, " "))
	return geom.Rect{
		X: float64(left),
		Y: float64(headerLines),
		W: float64(lipgloss.Width(card) - left),
		H: float64(len(lines)),
	}
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	var sections []string
	sections = append(sections, m.renderHeader())

	switch {
	case m.form != nil:
		sections = append(sections, m.form.View())
	case m.lastOutput != "":
		if m.outputActive && m.state.Height > 0 {
			sections = append(sections, m.outputVP.View())
		} else {
			sections = append(sections, m.lastOutput)
		}
	case m.state.Router.AboutOpen():
		shift := m.tilt.Angles().Shift(m.tilt.Max, tiltSpan)
		sections = append(sections, formatter.FormatAbout(m.state.App.Store.Profile(), m.state.ContentWidth(), shift))
	default:
		sections = append(sections, m.active.View())
	}

	body := strings.Join(sections, "\n")
	if m.state.Height > 0 {
		lines := strings.Count(body, "\n") + 1
		want := headerLines + m.state.ContentHeight()
		if lines < want {
			body += strings.Repeat("\n", want-lines)
		}
	}

	result := body + "\n" + m.renderStatusBar() + "\n" + m.cmdBar.View()

	// Pad to terminal height to prevent stale line artifacts from
	// bubbletea's line-diff renderer in alt-screen mode.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}
	return result
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m *appModel) navbar() (string, []formatter.NavZone) {
	active := navIndex(m.screen)
	if m.state.Router.AboutOpen() {
		active = 1
	}
	return formatter.RenderNavbar("folio", domain.NavItems, active)
}

func (m *appModel) renderHeader() string {
	bar, _ := m.navbar()
	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return bar + "\n" + sep
}

func (m *appModel) renderStatusBar() string {
	var hints []string

	switch {
	case m.outputActive && m.outputVP.TotalLineCount() > m.outputVP.Height:
		hints = append(hints, scrollIndicator(m.outputVP))
		hints = append(hints, formatter.Dim("↑↓ pgup/pgdn: scroll"))
		hints = append(hints, formatter.Dim("esc: dismiss"))
	case m.form != nil:
		hints = append(hints, helpHints(m.form.ShortHelp())...)
	case m.state.Router.AboutOpen():
		hints = append(hints, formatter.Dim("move the mouse over the card"), formatter.Dim("esc: close"))
	case !m.outputActive:
		hints = append(hints, helpHints(m.active.ShortHelp())...)
	}

	if !m.cmdBar.Focused() && !m.outputActive && m.form == nil {
		hints = append(hints, formatter.Dim("1-5: navigate"))
		if m.screen != router.Home {
			hints = append(hints, formatter.Dim("esc: back"))
		}
		hints = append(hints, formatter.Dim(": command"))
	}

	bar := strings.Join(hints, "  ")
	if m.state.Note != "" {
		bar = m.state.Note + "  " + bar
	}
	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return sep + "\n" + bar
}

func helpHints(bindings []key.Binding) []string {
	out := make([]string, 0, len(bindings))
	for _, b := range bindings {
		out = append(out, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
	}
	return out
}

// clearOutput dismisses the transient command output and deactivates the viewport.
func (m *appModel) clearOutput() {
	m.lastOutput = ""
	m.outputActive = false
}

// outputViewportKeyMap returns a restricted keymap for the output viewport.
// Only arrow/page keys scroll; letter keys stay free so they can dismiss
// the output or trigger global shortcuts.
func outputViewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		Up:           key.NewBinding(key.WithKeys("up")),
		Down:         key.NewBinding(key.WithKeys("down")),
	}
}

// isOutputScrollKey returns true if the key should scroll the output viewport
// rather than dismissing the output.
func isOutputScrollKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown,
		tea.KeyHome, tea.KeyEnd, tea.KeyCtrlU, tea.KeyCtrlD:
		return true
	}
	return false
}

// scrollIndicator returns a dim scroll position string for the status bar.
func scrollIndicator(vp viewport.Model) string {
	if vp.AtTop() {
		return formatter.Dim("[TOP]")
	}
	if vp.AtBottom() {
		return formatter.Dim("[END]")
	}
	pct := int(vp.ScrollPercent() * 100)
	return formatter.Dim(fmt.Sprintf("[%d%%]", pct))
}
