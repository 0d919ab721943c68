package cli

import (
	"github.com/amandev/folio/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// folioHuhTheme returns a huh theme in the emerald palette.
func folioHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorAccent).Bold(true)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(lipgloss.Color("#0f172a")).Background(formatter.ColorAccent).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorAccent)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorAccent)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// formView wraps a huh.Form shown over the active screen. When the form
// completes it sends a formDoneMsg carrying the done callback's result.
type formView struct {
	state    *SharedState
	form     *huh.Form
	titleStr string
	done     func() tea.Cmd
}

func newFormView(state *SharedState, title string, form *huh.Form, done func() tea.Cmd) *formView {
	return &formView{state: state, form: form, titleStr: title, done: done}
}

func (v *formView) Init() tea.Cmd {
	return v.form.Init()
}

func (v *formView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Escape cancels the form.
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return v, func() tea.Msg { return formDoneMsg{nextCmd: note("Cancelled.")} }
	}

	form, cmd := v.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		v.form = f
	}

	switch v.form.State {
	case huh.StateCompleted:
		var doneCmd tea.Cmd
		if v.done != nil {
			doneCmd = v.done()
		}
		return v, func() tea.Msg { return formDoneMsg{nextCmd: doneCmd} }
	case huh.StateAborted:
		return v, func() tea.Msg { return formDoneMsg{nextCmd: note("Cancelled.")} }
	}
	return v, cmd
}

func (v *formView) View() string {
	return "\n" + formatter.Header(v.titleStr) + "\n\n" + v.form.View()
}

func (v *formView) ID() ViewID    { return ViewForm }
func (v *formView) Title() string { return v.titleStr }
func (v *formView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// composeDraft holds the answers of the compose form.
type composeDraft struct {
	Subject string
	Body    string
}

// composeForm asks for a subject and message for the contact email.
func composeForm(d *composeDraft) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Subject").
				Placeholder("Internship opportunity").
				Value(&d.Subject),
			huh.NewText().
				Title("Message").
				Value(&d.Body),
		),
	).WithTheme(folioHuhTheme()).WithShowHelp(false)
}

// pushComposeForm shows the compose form; on completion the drafted email
// is handed to the link opener as a mailto URL.
func pushComposeForm(state *SharedState) tea.Cmd {
	email := state.App.Store.Profile().Email
	if email == "" {
		return note("No contact email configured.")
	}
	d := &composeDraft{}
	form := composeForm(d).WithWidth(min(state.ContentWidth(), 72))
	v := newFormView(state, "Compose Email", form, func() tea.Cmd {
		return openLink(state, mailtoURL(email, d.Subject, d.Body))
	})
	return func() tea.Msg { return pushFormMsg{view: v} }
}
