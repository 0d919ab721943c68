package cli

import (
	"bytes"
	"strings"

	"github.com/amandev/folio/internal/cli/formatter"
	"github.com/amandev/folio/internal/router"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// commandBar is the persistent text input at the bottom of the TUI.
// It handles command entry, autocomplete suggestions, and history navigation.
type commandBar struct {
	input   textinput.Model
	state   *SharedState
	focused bool

	// history, kept for the session only
	history    []string
	historyIdx int
}

func newCommandBar(state *SharedState) commandBar {
	ti := textinput.New()
	ti.Prompt = ""
	ti.ShowSuggestions = true
	ti.CharLimit = 200
	ti.KeyMap.NextSuggestion = key.NewBinding(key.WithKeys("ctrl+n"))
	ti.KeyMap.PrevSuggestion = key.NewBinding(key.WithKeys("ctrl+p"))
	return commandBar{input: ti, state: state}
}

// Focus gives focus to the command bar.
func (c *commandBar) Focus() {
	c.focused = true
	c.input.Focus()
}

// Blur removes focus from the command bar.
func (c *commandBar) Blur() {
	c.focused = false
	c.input.Blur()
}

// Focused returns whether the command bar has focus.
func (c *commandBar) Focused() bool {
	return c.focused
}

// SetWidth updates the input width for terminal resizing.
func (c *commandBar) SetWidth(w int) {
	c.input.Width = w - len(promptPlain) - 1
}

// Update handles key messages when the command bar is focused.
func (c *commandBar) Update(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter:
		input := strings.TrimSpace(c.input.Value())
		c.input.Reset()
		c.input.SetSuggestions(nil)
		if input == "" {
			return nil
		}
		c.addHistory(input)
		return c.executeCommand(input)

	case tea.KeyUp:
		c.historyUp()
		return nil

	case tea.KeyDown:
		c.historyDown()
		return nil

	case tea.KeyEsc:
		c.Blur()
		return nil

	default:
		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		c.updateSuggestions()
		return cmd
	}
}

// UpdateNonKey handles non-key messages (e.g., cursor blink).
func (c *commandBar) UpdateNonKey(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return cmd
}

const promptPlain = "folio > "

// View renders the command bar.
func (c *commandBar) View() string {
	prompt := formatter.Accent("folio") + " " + formatter.Dim("❯") + " "
	if !c.focused {
		return prompt + formatter.Dim("press : to type a command")
	}
	return prompt + c.input.View()
}

// ── commands ─────────────────────────────────────────────────────────────────

// executeCommand dispatches a command line. Navigation commands are handled
// here; everything else runs through the cobra tree and its output is shown
// in the content area.
func (c *commandBar) executeCommand(input string) tea.Cmd {
	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "home", "projects", "skills", "experience":
		if len(args) == 0 {
			screen, _ := router.ParseScreen(cmd)
			return navigate(screen)
		}
	case "about":
		return func() tea.Msg { return openAboutMsg{} }
	case "open":
		if len(args) != 1 {
			return outputCmd(formatter.StyleYellow.Render("Usage: open <slug>"))
		}
		cs, err := c.state.App.Store.CaseStudyBySlug(args[0])
		if err != nil {
			return outputCmd(shellError(err))
		}
		return openCaseStudy(cs)
	case "back":
		return back()
	case "compose":
		return pushComposeForm(c.state)
	case "help":
		if len(args) == 0 {
			return outputCmd(shellHelp())
		}
	case "clear":
		return nil
	case "exit", "quit":
		return func() tea.Msg { return quitMsg{} }
	}

	if strings.HasPrefix(cmd, "-") {
		return outputCmd(shellError(errUnknownCommand(cmd)))
	}
	for _, a := range args {
		if a == "--watch" || a == "-w" {
			return outputCmd(formatter.StyleYellow.Render("--watch runs until interrupted; use it from a shell."))
		}
	}
	app := c.state.App
	return func() tea.Msg {
		return cmdOutputMsg{output: captureCobraOutput(app, parts)}
	}
}

// captureCobraOutput runs a command through the cobra tree and returns its
// output, or the error it failed with.
func captureCobraOutput(app *App, args []string) string {
	root := NewRootCmd(app)
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	root.SilenceUsage = true
	root.SilenceErrors = true
	if err := root.Execute(); err != nil {
		return strings.TrimRight(buf.String()+shellError(err), "\n")
	}
	return strings.TrimRight(buf.String(), "\n")
}

func shellError(err error) string {
	return formatter.StyleRed.Render("Error: ") + err.Error()
}

type errUnknownCommand string

func (e errUnknownCommand) Error() string {
	return "unknown command " + string(e) + "; type 'help' for available commands"
}

func shellHelp() string {
	rows := [][]string{
		{"home | projects | skills | experience", "switch screen"},
		{"about", "open the about card"},
		{"open <slug>", "read a case study"},
		{"back", "go back"},
		{"compose", "write an email"},
		{"projects list | projects show <slug>", "print content"},
		{"content validate | export | inspect", "content tools"},
		{"quit", "leave"},
	}
	return formatter.RenderBox("Commands", strings.TrimRight(formatter.RenderTable(formatter.Cols("COMMAND", "DOES"), rows), "\n"))
}

// ── history ──────────────────────────────────────────────────────────────────

func (c *commandBar) addHistory(line string) {
	c.history = append(c.history, line)
	c.historyIdx = len(c.history)
}

func (c *commandBar) historyUp() {
	if c.historyIdx > 0 {
		c.historyIdx--
		c.input.SetValue(c.history[c.historyIdx])
		c.input.CursorEnd()
	}
}

func (c *commandBar) historyDown() {
	if c.historyIdx < len(c.history)-1 {
		c.historyIdx++
		c.input.SetValue(c.history[c.historyIdx])
		c.input.CursorEnd()
	} else {
		c.historyIdx = len(c.history)
		c.input.SetValue("")
	}
}

// ── suggestions ──────────────────────────────────────────────────────────────

var commandNames = []string{
	"about", "back", "clear", "compose", "config", "content", "experience", "exit",
	"help", "home", "open", "projects", "quit", "skills",
}

func (c *commandBar) updateSuggestions() {
	text := c.input.Value()
	if text == "" {
		c.input.SetSuggestions(nil)
		return
	}
	parts := strings.Fields(text)
	trailingSpace := strings.HasSuffix(text, " ")

	if len(parts) == 1 && !trailingSpace {
		c.input.SetSuggestions(filterSuggestions(commandNames, parts[0]))
		return
	}

	prefix := ""
	if len(parts) == 2 && !trailingSpace {
		prefix = parts[1]
	} else if len(parts) > 1 {
		c.input.SetSuggestions(nil)
		return
	}

	var opts []string
	switch strings.ToLower(parts[0]) {
	case "open":
		for _, cs := range c.state.App.Store.CaseStudies() {
			opts = append(opts, cs.Slug)
		}
	case "projects":
		opts = []string{"list", "show"}
	case "content":
		opts = []string{"validate", "export", "inspect"}
	}
	full := make([]string, 0, len(opts))
	for _, o := range filterSuggestions(opts, prefix) {
		full = append(full, parts[0]+" "+o)
	}
	c.input.SetSuggestions(full)
}

func filterSuggestions(options []string, prefix string) []string {
	prefix = strings.ToLower(prefix)
	var out []string
	for _, o := range options {
		if strings.HasPrefix(strings.ToLower(o), prefix) {
			out = append(out, o)
		}
	}
	return out
}
