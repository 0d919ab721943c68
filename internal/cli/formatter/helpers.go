package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// Wrap word-wraps text to width cells. A non-positive width returns text
// unchanged.
func Wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	return ansi.Wrap(text, width, "")
}

// Truncate shortens s to width cells, ending in an ellipsis when cut.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}

// Center places s in the middle of width cells.
func Center(s string, width int) string {
	if width <= 0 {
		return s
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}

// Tags renders tech tags as a single line of bracketed labels.
func Tags(tags []string) string {
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = StyleTag.Render(t)
	}
	return strings.Join(parts, " ")
}

// PlainTags is Tags without styling, for narrow cards and plain output.
func PlainTags(tags []string) string {
	return strings.Join(tags, " · ")
}

// Bullets renders items as a bulleted list using marker.
func Bullets(items []string, marker string, width int) string {
	var b strings.Builder
	indent := lipgloss.Width(marker) + 1
	for _, item := range items {
		lines := strings.Split(Wrap(item, width-indent), "\n")
		b.WriteString(marker + " " + lines[0] + "\n")
		for _, l := range lines[1:] {
			b.WriteString(strings.Repeat(" ", indent) + l + "\n")
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}
