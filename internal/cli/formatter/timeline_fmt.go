package formatter

import (
	"strings"

	"github.com/amandev/folio/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// WideTimeline is the width from which entries alternate around a
// centre rule.
const WideTimeline = 100

// FormatTimeline renders the experience timeline. Wide terminals put even
// entries left of the rule and odd entries right of it; narrow ones stack
// every entry to the right of a single rule.
func FormatTimeline(achievements []domain.Achievement, width int) string {
	title := Center(StyleHeader.Render("EXPERIENCE & ACHIEVEMENTS"), width)
	if len(achievements) == 0 {
		return title + "\n\n" + Center(Dim("No entries yet."), width)
	}

	var blocks []string
	if width >= WideTimeline {
		half := (width - 3) / 2
		for i, a := range achievements {
			entry := timelineEntry(a, half-2)
			h := lipgloss.Height(entry)
			blank := lipgloss.NewStyle().Width(half).Height(h).Render("")
			left, right := blank, blank
			if i%2 == 0 {
				left = lipgloss.PlaceHorizontal(half, lipgloss.Right, entry)
			} else {
				right = lipgloss.PlaceHorizontal(half, lipgloss.Left, entry)
			}
			blocks = append(blocks, lipgloss.JoinHorizontal(lipgloss.Top, left, rule(a, h), right))
		}
	} else {
		for _, a := range achievements {
			entry := timelineEntry(a, width-4)
			blocks = append(blocks, lipgloss.JoinHorizontal(lipgloss.Top, rule(a, lipgloss.Height(entry)), entry))
		}
	}
	return title + "\n\n" + strings.Join(blocks, "\n")
}

// rule is the vertical line segment beside one entry, topped by its icon.
func rule(a domain.Achievement, height int) string {
	lines := make([]string, height)
	lines[0] = " " + StyleAccent.Render(AchievementIcon(a.Icon).Glyph()) + " "
	for i := 1; i < height; i++ {
		lines[i] = " " + StyleDim.Render("│") + " "
	}
	return lipgloss.NewStyle().Width(3).Render(strings.Join(lines, "\n"))
}

func timelineEntry(a domain.Achievement, width int) string {
	if width < 10 {
		width = 10
	}
	lines := []string{
		StyleYellow.Render(a.Date),
		Bold(Wrap(a.Title, width)),
		StyleAccent.Render(Wrap(a.Organization, width)),
	}
	if a.Description != "" {
		lines = append(lines, StyleMuted.Render(Wrap(a.Description, width)))
	}
	return lipgloss.NewStyle().Width(width).Render(strings.Join(lines, "\n")) + "\n"
}
