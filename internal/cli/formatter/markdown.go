package formatter

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// ResolveMarkdownStyle turns "auto" (or an empty style) into a concrete
// glamour style: "notty" when stdout is not a terminal, otherwise "dark" or
// "light" from the terminal background. Detection queries the terminal, so
// call it once before a bubbletea program owns the input.
func ResolveMarkdownStyle(style string) string {
	return resolveMarkdownStyle(style, isatty.IsTerminal(os.Stdout.Fd()), lipgloss.HasDarkBackground)
}

func resolveMarkdownStyle(style string, tty bool, dark func() bool) string {
	if style != "" && style != "auto" {
		return style
	}
	if !tty {
		return "notty"
	}
	if dark() {
		return "dark"
	}
	return "light"
}

// RenderMarkdown renders md for the terminal with the named glamour style,
// word-wrapped to width. An unresolved "auto" renders with the dark style.
func RenderMarkdown(md, style string, width int) (string, error) {
	if style == "" || style == "auto" {
		style = "dark"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithWordWrap(width),
		glamour.WithStandardStyle(style),
	)
	if err != nil {
		return "", fmt.Errorf("creating markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return strings.TrimRight(out, "\n"), nil
}
