package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Emerald-on-slate palette.
var (
	ColorAccent = lipgloss.Color("#34d399")
	ColorCyan   = lipgloss.Color("#22d3ee")
	ColorRed    = lipgloss.Color("#f87171")
	ColorYellow = lipgloss.Color("#fbbf24")
	ColorDim    = lipgloss.Color("#64748b")
	ColorMuted  = lipgloss.Color("#94a3b8")
	ColorFg     = lipgloss.Color("#e2e8f0")
	ColorBorder = lipgloss.Color("#334155")
	ColorHeader = lipgloss.Color("#10b981")
)

// Predefined lipgloss styles.
var (
	StyleAccent = lipgloss.NewStyle().Foreground(ColorAccent)
	StyleCyan   = lipgloss.NewStyle().Foreground(ColorCyan)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleMuted  = lipgloss.NewStyle().Foreground(ColorMuted)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
	StyleTag    = lipgloss.NewStyle().Foreground(ColorAccent).Border(lipgloss.NormalBorder(), false, true).BorderForeground(ColorBorder)
	StyleButton = lipgloss.NewStyle().Foreground(lipgloss.Color("#0f172a")).Background(ColorAccent).Bold(true).Padding(0, 2)
	StyleGhost  = lipgloss.NewStyle().Foreground(ColorFg).Background(ColorBorder).Padding(0, 2)
)

// Header renders a section header with the accent style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}

// Accent renders text in the accent color.
func Accent(text string) string {
	return StyleAccent.Render(text)
}
