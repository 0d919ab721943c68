package cli

import (
	"strings"
	"testing"

	"github.com/amandev/folio/internal/cli/formatter"
	"github.com/amandev/folio/internal/domain"
	"github.com/amandev/folio/internal/router"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stripY is the absolute row of the card strip's second line at 120x40.
const stripY = headerLines + stripTop + 1

func TestTUI_StartsOnHome(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app)

	assert.Equal(t, router.Home, d.Screen())
	assert.Equal(t, ViewHome, d.ActiveViewID())
	view := d.View()
	assert.Contains(t, view, "OPEN TO WORK")
	assert.Contains(t, view, "Securing the Future.")
	for _, item := range domain.NavItems {
		assert.Contains(t, view, item.Label)
	}
}

func TestTUI_QuitWithQ(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app)
	d.PressKey('q')
	assert.True(t, d.IsQuitting())
}

func TestTUI_QuitWithCtrlC(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app)
	d.Press("ctrl+c")
	assert.True(t, d.IsQuitting())
}

func TestTUI_NumberKeysFollowNavbar(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app)

	d.PressKey('3')
	assert.Equal(t, router.SkillsPage, d.Screen())
	assert.Contains(t, d.View(), "TECHNICAL ARSENAL")

	d.PressKey('5')
	assert.Equal(t, router.ExperiencePage, d.Screen())
	assert.Contains(t, d.View(), "EXPERIENCE & ACHIEVEMENTS")

	d.PressKey('4')
	assert.Equal(t, router.ProjectList, d.Screen())

	d.PressKey('1')
	assert.Equal(t, router.Home, d.Screen())
}

func TestTUI_CarouselLoadsAndFocusesFirstCard(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app)
	d.PressKey('4')

	c := d.Carousel()
	assert.False(t, c.Loading())
	assert.Equal(t, 0, c.Focal())
	view := d.View()
	assert.Contains(t, view, subtitleReady)
	assert.Contains(t, view, "Read Case Study")
	assert.Contains(t, view, "View Project")
}

func TestTUI_CarouselShowsSkeletonsWhileLoading(t *testing.T) {
	app, _ := testApp(t)
	app.Config.UI.LoadDelay = "1h"
	d := NewTestDriver(t, app)
	d.PressKey('4')

	c := d.Carousel()
	assert.True(t, c.Loading())
	view := d.View()
	assert.Contains(t, view, subtitleLoading)
	assert.NotContains(t, view, "Read Case Study")
	assert.Contains(t, view, "░")

	// Keys are ignored until the cards exist.
	d.Press("right")
	assert.Equal(t, 0, c.Focal())
}

func TestTUI_StaleLoadTickIsIgnored(t *testing.T) {
	app, _ := testApp(t)
	app.Config.UI.LoadDelay = "1h"
	d := NewTestDriver(t, app)

	d.PressKey('4')
	first := d.Generation()
	d.Send(projectsLoadedMsg{gen: first - 1})
	assert.True(t, d.Carousel().Loading(), "tick from an older mount")

	// Leave and come back: the first mount's tick is now stale too.
	d.PressKey('1')
	d.PressKey('4')
	require.Greater(t, d.Generation(), first)
	d.Send(projectsLoadedMsg{gen: first})
	assert.True(t, d.Carousel().Loading(), "tick from a torn-down mount")

	d.Send(projectsLoadedMsg{gen: d.Generation()})
	assert.False(t, d.Carousel().Loading())
}

func TestTUI_ArrowKeysMoveFocus(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app)
	d.PressKey('4')

	d.Press("right")
	assert.Equal(t, 1, d.Carousel().Focal())
	d.Press("right")
	d.Press("right")
	assert.Equal(t, 3, d.Carousel().Focal())
	d.Press("left")
	assert.Equal(t, 2, d.Carousel().Focal())

	// Past the end stays on the last card.
	for i := 0; i < 10; i++ {
		d.Press("right")
	}
	assert.Equal(t, len(app.Store.FeaturedCaseStudies())-1, d.Carousel().Focal())
}

func TestTUI_EnterOpensFocalCaseStudy(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app)
	d.PressKey('4')
	d.Press("right")
	d.Press("enter")

	assert.Equal(t, router.ProjectDetail, d.Screen())
	require.NotNil(t, d.Selected())
	assert.Equal(t, "cloud-file-sharing", d.Selected().Slug)
	view := d.View()
	assert.Contains(t, view, "CASE STUDY: CLOUD-FILE-SHARING")
	assert.Contains(t, view, "Back to Projects")
}

func TestTUI_BackFromDetailClearsSelection(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app)
	d.PressKey('4')
	d.Press("enter")
	require.Equal(t, router.ProjectDetail, d.Screen())

	d.Press("esc")
	assert.Equal(t, router.ProjectList, d.Screen())
	assert.Nil(t, d.Selected())

	d.Press("esc")
	assert.Equal(t, router.Home, d.Screen())
}

func TestTUI_ClickRefocusesThenActivates(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app)
	d.PressKey('4')

	// At 120 columns card 0 spans [45,75) and card 1 spans [77,107).
	d.Click(80, stripY)
	assert.Equal(t, router.ProjectList, d.Screen(), "non-focal click only refocuses")
	assert.Equal(t, 1, d.Carousel().Focal())

	// Card 1 is now centred at [45,75).
	d.Click(50, stripY)
	assert.Equal(t, router.ProjectDetail, d.Screen())
	assert.Equal(t, "cloud-file-sharing", d.Selected().Slug)
}

func TestTUI_WheelScrollRecomputesFocus(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app)
	d.PressKey('4')

	// Four steps leave card 0 and card 1 equidistant: the lower index wins.
	for i := 0; i < 4; i++ {
		d.Wheel(60, stripY, tea.MouseButtonWheelDown)
	}
	assert.Equal(t, 0, d.Carousel().Focal())

	d.Wheel(60, stripY, tea.MouseButtonWheelDown)
	assert.Equal(t, 1, d.Carousel().Focal())

	for i := 0; i < 10; i++ {
		d.Wheel(60, stripY, tea.MouseButtonWheelUp)
	}
	assert.Equal(t, 0, d.Carousel().Focal())
}

func TestTUI_DetailWithoutSelectionFallsBackToList(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app)
	d.Send(navigateMsg{screen: router.ProjectDetail})
	assert.Equal(t, router.ProjectList, d.Screen())
	assert.Equal(t, ViewProjectList, d.ActiveViewID())
}

func TestTUI_AboutModalOpensAndCloses(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app)
	d.PressKey('4')

	d.PressKey('2')
	assert.True(t, d.AboutOpen())
	assert.Equal(t, router.ProjectList, d.Screen(), "the modal does not change screen")
	assert.Contains(t, d.View(), "ABOUT ME")

	d.Press("esc")
	assert.False(t, d.AboutOpen())
	assert.Equal(t, router.ProjectList, d.Screen())
}

func TestTUI_AboutCardTiltsUnderPointer(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app)
	d.PressKey('a')
	require.True(t, d.AboutOpen())

	m := d.appModel()
	card := m.aboutRect()
	right := int(card.X + card.W - 1)
	mid := int(card.CenterY())

	d.MoveMouse(right, mid)
	assert.Greater(t, d.Tilt().RotateY, 0.0)
	assert.LessOrEqual(t, d.Tilt().RotateY, 10.0)

	d.MoveMouse(int(card.X), mid)
	assert.Less(t, d.Tilt().RotateY, 0.0)

	d.MoveMouse(0, 0)
	assert.True(t, d.Tilt().Flat(), "pointer outside the card resets it")

	d.Click(0, 1)
	assert.False(t, d.AboutOpen(), "clicking outside closes the modal")
}

func TestTUI_NavbarClick(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app)

	_, zones := formatter.RenderNavbar("folio", domain.NavItems, 0)
	d.Click(zones[2].Start, 0)
	assert.Equal(t, router.SkillsPage, d.Screen())

	d.Click(zones[1].Start+1, 0)
	assert.True(t, d.AboutOpen())
}

func TestTUI_FragmentScrollsHomeOnce(t *testing.T) {
	app, _ := testApp(t)
	d := newTestDriverAt(t, app, "#contact", 100, 14)

	assert.Greater(t, d.Home().ScrollOffset(), 0)
	assert.Empty(t, d.State().Router.PendingFragment())

	// Returning home does not scroll again.
	d.PressKey('3')
	d.PressKey('1')
	assert.Equal(t, 0, d.Home().ScrollOffset())
}

func TestTUI_RemovedSectionFragmentIsDropped(t *testing.T) {
	app, _ := testApp(t)
	d := newTestDriverAt(t, app, "skills", 100, 14)

	assert.Equal(t, router.Home, d.Screen())
	assert.Equal(t, 0, d.Home().ScrollOffset())
	assert.Empty(t, d.State().Router.PendingFragment())
}

func TestTUI_CommandBarNavigation(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app)

	d.Command("open carbon-auditor")
	assert.Equal(t, router.ProjectDetail, d.Screen())
	assert.Equal(t, "carbon-auditor", d.Selected().Slug)
	assert.False(t, d.CmdBarFocused())

	d.Command("skills")
	assert.Equal(t, router.SkillsPage, d.Screen())

	d.Command("about")
	assert.True(t, d.AboutOpen())
}

func TestTUI_CommandBarRunsCobraCommands(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app)

	d.Command("projects list")
	assert.Contains(t, d.LastOutput(), "safe-docs")
	assert.Equal(t, router.Home, d.Screen())

	d.Command("open nope")
	assert.Contains(t, d.LastOutput(), "not found")

	d.Command("bogus")
	assert.Contains(t, d.LastOutput(), "unknown command")
}

func TestTUI_CommandBarQuit(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app)
	d.Command("quit")
	assert.True(t, d.IsQuitting())
}

func TestTUI_QDoesNotQuitWhenCmdBarFocused(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app)
	d.PressKey(':')
	d.PressKey('q')
	assert.False(t, d.IsQuitting())
	assert.True(t, d.CmdBarFocused())
}

func TestTUI_DetailLinks(t *testing.T) {
	app, links := testApp(t)
	d := NewTestDriver(t, app)
	d.Command("open safe-docs")

	d.PressKey('o')
	require.Len(t, links.opened, 1)
	assert.Equal(t, "https://github.com/AmanDev200-cyber/Safe_docs", links.opened[0])
	assert.Contains(t, d.Note(), "Opened")

	d.PressKey('d')
	assert.Contains(t, d.Note(), "No demo link")

	d.PressKey('y')
	assert.Equal(t, []string{"https://github.com/AmanDev200-cyber/Safe_docs"}, links.copied)
}

func TestTUI_FailedOpenFallsBackToClipboard(t *testing.T) {
	app, links := testApp(t)
	links.openErr = errNoDisplay
	d := NewTestDriver(t, app)
	d.Command("open carbon-auditor")

	d.PressKey('d')
	assert.Equal(t, []string{"https://carbonauditor.netlify.app/"}, links.copied)
	assert.Contains(t, d.Note(), "copied")

	links.copyErr = errNoDisplay
	d.PressKey('o')
	assert.Contains(t, d.Note(), "Could not open")
}

func TestTUI_HomeContactLinks(t *testing.T) {
	app, links := testApp(t)
	d := NewTestDriver(t, app)

	d.PressKey('g')
	d.PressKey('e')
	require.Len(t, links.opened, 2)
	assert.Equal(t, "https://github.com/AmanDev200-cyber", links.opened[0])
	assert.True(t, strings.HasPrefix(links.opened[1], "mailto:"))
}

func TestTUI_ComposeFormCancel(t *testing.T) {
	app, links := testApp(t)
	d := NewTestDriver(t, app)

	d.PressKey('m')
	require.True(t, d.FormOpen())
	assert.Contains(t, d.View(), "COMPOSE EMAIL")

	d.PressKey('q')
	assert.False(t, d.IsQuitting(), "the form receives every key")

	d.Press("esc")
	assert.False(t, d.FormOpen())
	assert.Equal(t, "Cancelled.", d.Note())
	assert.Empty(t, links.opened)
}

func TestTUI_WindowResizePropagation(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app)
	d.PressKey('4')

	d.Resize(60, 30)
	assert.Equal(t, 60, d.State().Width)
	assert.Equal(t, 30, d.State().Height)
	assert.Equal(t, 0, d.Carousel().Focal())
	assert.Contains(t, d.View(), subtitleReady)

	d.Press("right")
	assert.Equal(t, 1, d.Carousel().Focal())
}

func TestTUI_HelpKeyShowsCommands(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app)
	d.PressKey('?')
	assert.Contains(t, d.LastOutput(), "open <slug>")

	d.Press("esc")
	assert.Empty(t, d.LastOutput())
	assert.Equal(t, router.Home, d.Screen())
}

func TestTUI_ZeroWidthResizeKeepsFocus(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app)
	d.PressKey('4')
	d.Press("right", "right")
	require.Equal(t, 2, d.Carousel().Focal())

	d.Resize(0, 40)
	assert.Equal(t, 2, d.Carousel().Focal())

	d.Resize(120, 40)
	assert.Equal(t, 2, d.Carousel().Focal())
}

func TestTUI_NarrowTerminalHitTestsDrawnStrip(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app)
	d.PressKey('4')

	// Below 20 columns the strip is drawn 20 wide: a 16-column card
	// padded by 2.
	d.Resize(10, 40)
	c := d.Carousel()
	rects := c.rects()
	require.NotEmpty(t, rects)
	assert.Equal(t, 16.0, rects[0].W)
	assert.Equal(t, 2.0, rects[0].X)
	assert.Equal(t, 0, c.Focal())
}
