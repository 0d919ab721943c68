package cli

import (
	"errors"
	"testing"

	"github.com/amandev/folio/internal/config"
	"github.com/amandev/folio/internal/content"
	"github.com/amandev/folio/internal/domain"
	"github.com/amandev/folio/internal/router"
	"github.com/amandev/folio/internal/service"
	"github.com/amandev/folio/internal/teatest"
	"github.com/amandev/folio/internal/tilt"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeLinks records outbound links instead of launching anything.
type fakeLinks struct {
	opened  []string
	copied  []string
	openErr error
	copyErr error
}

func (f *fakeLinks) Open(link string) error {
	if f.openErr != nil {
		return f.openErr
	}
	f.opened = append(f.opened, link)
	return nil
}

func (f *fakeLinks) Copy(text string) error {
	if f.copyErr != nil {
		return f.copyErr
	}
	f.copied = append(f.copied, text)
	return nil
}

var errNoDisplay = errors.New("no display")

// testConfig is the default config with every delay at zero, so the
// synchronous driver fires timers immediately.
func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.UI.LoadDelay = "0s"
	cfg.UI.SettleDelay = "0s"
	cfg.UI.FragmentDelay = "0s"
	cfg.UI.MarkdownStyle = "notty"
	return cfg
}

// testApp wires an App over the built-in content with a recording link
// opener.
func testApp(t *testing.T) (*App, *fakeLinks) {
	t.Helper()
	store, err := content.Default()
	require.NoError(t, err)
	links := &fakeLinks{}
	return &App{
		Config:        testConfig(),
		Logger:        zap.NewNop(),
		Content:       service.NewContentService(),
		Store:         store,
		Links:         links,
		IsInteractive: func() bool { return false },
	}, links
}

// TestDriver wraps teatest.Driver with folio-specific inspection methods.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver builds the appModel at 120x40 and drains Init().
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()
	return newTestDriverAt(t, app, "", 120, 40)
}

func newTestDriverAt(t *testing.T, app *App, fragment string, w, h int) *TestDriver {
	t.Helper()
	m := newAppModel(app, fragment)
	d := teatest.New(t, m, teatest.WithSize(w, h))
	d.DrainInit()
	return &TestDriver{Driver: d}
}

// Command focuses the command bar with ':', types the command, and presses
// Enter. It blurs the bar afterwards if the command left it focused.
func (d *TestDriver) Command(input string) {
	d.T.Helper()
	d.PressKey(':')
	d.Type(input)
	d.Press("enter")
	if d.CmdBarFocused() {
		d.Press("esc")
	}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

func (d *TestDriver) Screen() router.Screen {
	return d.appModel().state.Router.Screen()
}

func (d *TestDriver) ActiveViewID() ViewID {
	return d.appModel().active.ID()
}

func (d *TestDriver) Selected() *domain.CaseStudy {
	return d.appModel().state.Router.Selected()
}

func (d *TestDriver) AboutOpen() bool {
	return d.appModel().state.Router.AboutOpen()
}

func (d *TestDriver) Tilt() tilt.Angles {
	return d.appModel().tilt.Angles()
}

func (d *TestDriver) Generation() int {
	return d.appModel().gen
}

func (d *TestDriver) FormOpen() bool {
	return d.appModel().form != nil
}

func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

func (d *TestDriver) Note() string {
	return d.appModel().state.Note
}

// IsQuitting returns whether the app has signaled a quit.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}

func (d *TestDriver) CmdBarFocused() bool {
	m := d.appModel()
	return m.cmdBar.Focused()
}

// LastOutput returns the last command output displayed in the content area.
func (d *TestDriver) LastOutput() string {
	return d.appModel().lastOutput
}

// Carousel returns the active project list view. It fails the test when
// another screen is showing.
func (d *TestDriver) Carousel() *projectListView {
	d.T.Helper()
	v, ok := d.appModel().active.(*projectListView)
	require.True(d.T, ok, "active view is %T", d.appModel().active)
	return v
}

// Home returns the active home view.
func (d *TestDriver) Home() *homeView {
	d.T.Helper()
	v, ok := d.appModel().active.(*homeView)
	require.True(d.T, ok, "active view is %T", d.appModel().active)
	return v
}
