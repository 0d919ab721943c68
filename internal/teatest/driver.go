// Package teatest drives a bubbletea model synchronously in tests.
//
// The driver calls Update directly and runs every returned Cmd inline,
// feeding the resulting messages back until nothing is left. A Cmd that does
// not return within the driver's timeout (a cursor blink, a tick scheduled in
// the future) is dropped and counted in Skipped. A model configured with
// zero delays therefore runs to completion while real timers stay pending.
package teatest

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultCmdTimeout separates message factories and zero-delay ticks, which
// return in microseconds, from cursor blinks (~530ms) and real timers.
const DefaultCmdTimeout = 10 * time.Millisecond

// maxDepth bounds chains of Cmds that keep producing Cmds.
const maxDepth = 100

// Driver runs a tea.Model without a terminal.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting is set once tea.Quit has run. The runtime normally swallows
	// tea.QuitMsg, so the driver records it itself and ignores later input.
	Quitting bool

	// Skipped counts Cmds dropped because they did not return in time.
	Skipped int

	timeout time.Duration
}

// Option configures a Driver.
type Option func(*Driver)

// WithSize delivers a WindowSizeMsg before anything else.
func WithSize(w, h int) Option {
	return func(d *Driver) {
		d.Model, _ = d.Model.Update(tea.WindowSizeMsg{Width: w, Height: h})
	}
}

// WithCmdTimeout changes how long a Cmd may block before it is dropped.
func WithCmdTimeout(timeout time.Duration) Option {
	return func(d *Driver) { d.timeout = timeout }
}

// New wraps model. Call DrainInit to run the model's Init command.
func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model, timeout: DefaultCmdTimeout}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DrainInit runs Init and everything it leads to.
func (d *Driver) DrainInit() {
	d.T.Helper()
	d.run(d.Model.Init(), 0)
}

// Send delivers msg and runs everything it leads to. Input after a quit is
// ignored.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	var cmd tea.Cmd
	d.Model, cmd = d.Model.Update(msg)
	d.run(cmd, 0)
}

// View renders the model.
func (d *Driver) View() string {
	return d.Model.View()
}

// ── keyboard ─────────────────────────────────────────────────────────────────

var namedKeys = map[string]tea.KeyType{
	"enter":     tea.KeyEnter,
	"esc":       tea.KeyEsc,
	"tab":       tea.KeyTab,
	"backspace": tea.KeyBackspace,
	"ctrl+c":    tea.KeyCtrlC,
	"up":        tea.KeyUp,
	"down":      tea.KeyDown,
	"left":      tea.KeyLeft,
	"right":     tea.KeyRight,
	"home":      tea.KeyHome,
	"end":       tea.KeyEnd,
	"pgup":      tea.KeyPgUp,
	"pgdown":    tea.KeyPgDown,
}

// Press sends each key in turn. Names such as "enter", "esc", "left" or
// "ctrl+c" are special keys; any other string is sent as one rune event.
func (d *Driver) Press(keys ...string) {
	d.T.Helper()
	for _, k := range keys {
		if kt, ok := namedKeys[k]; ok {
			d.Send(tea.KeyMsg{Type: kt})
			continue
		}
		d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
	}
}

// PressKey sends a single rune.
func (d *Driver) PressKey(r rune) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

// Type sends s one rune at a time, as a user typing it.
func (d *Driver) Type(s string) {
	d.T.Helper()
	for _, r := range s {
		d.PressKey(r)
	}
}

// ── pointer and terminal ─────────────────────────────────────────────────────

// Click presses the left button at cell (x, y).
func (d *Driver) Click(x, y int) {
	d.T.Helper()
	d.Send(tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
}

// MoveMouse moves the pointer to cell (x, y) with no button held.
func (d *Driver) MoveMouse(x, y int) {
	d.T.Helper()
	d.Send(tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonNone, Action: tea.MouseActionMotion})
}

// Wheel turns the wheel at cell (x, y); button is one of the tea wheel
// buttons, e.g. tea.MouseButtonWheelDown.
func (d *Driver) Wheel(x, y int, button tea.MouseButton) {
	d.T.Helper()
	d.Send(tea.MouseMsg{X: x, Y: y, Button: button, Action: tea.MouseActionPress})
}

// Resize changes the terminal size.
func (d *Driver) Resize(w, h int) {
	d.T.Helper()
	d.Send(tea.WindowSizeMsg{Width: w, Height: h})
}

// ── command loop ─────────────────────────────────────────────────────────────

func (d *Driver) run(cmd tea.Cmd, depth int) {
	d.T.Helper()
	if cmd == nil {
		return
	}
	if depth >= maxDepth {
		d.T.Logf("teatest: stopped after %d chained commands", maxDepth)
		return
	}

	msg, ok := d.exec(cmd)
	if !ok {
		d.Skipped++
		return
	}
	switch msg := msg.(type) {
	case nil:
		return
	case tea.BatchMsg:
		for _, sub := range msg {
			d.run(sub, depth+1)
		}
		return
	case tea.QuitMsg:
		d.Quitting = true
		d.Model, _ = d.Model.Update(msg)
		return
	}
	if isBlink(msg) {
		return
	}

	var next tea.Cmd
	d.Model, next = d.Model.Update(msg)
	d.run(next, depth+1)
}

// exec runs cmd on its own goroutine and reports false when it does not
// return within the timeout. The goroutine of a dropped Cmd finishes on its
// own into a buffered channel.
func (d *Driver) exec(cmd tea.Cmd) (tea.Msg, bool) {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg, true
	case <-time.After(d.timeout):
		return nil, false
	}
}

// isBlink matches the unexported blink messages of bubbles/cursor, which
// chain into further blocking Cmds.
func isBlink(msg tea.Msg) bool {
	return strings.Contains(strings.ToLower(fmt.Sprintf("%T", msg)), "blink")
}
