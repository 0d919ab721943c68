package formatter

import (
	"strings"

	"github.com/amandev/folio/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// SkillColumns is the number of category panels per row for a terminal
// width: four on wide screens, two on medium, one otherwise.
func SkillColumns(width int) int {
	switch {
	case width >= 120:
		return 4
	case width >= 60:
		return 2
	}
	return 1
}

// FormatSkills renders the skills grid, one panel per category in the
// fixed category order. Highlighted skills are starred.
func FormatSkills(byCategory map[domain.SkillCategory][]domain.Skill, width int) string {
	cols := SkillColumns(width)
	const gap = 2
	panelW := (width - gap*(cols-1)) / cols
	if panelW < 20 {
		panelW = 20
	}

	panels := make([]string, 0, len(domain.SkillCategories))
	for _, cat := range domain.SkillCategories {
		panels = append(panels, skillPanel(cat, byCategory[cat], panelW))
	}

	var rows []string
	for i := 0; i < len(panels); i += cols {
		end := min(i+cols, len(panels))
		row := panels[i:end]
		parts := make([]string, 0, 2*len(row))
		for j, p := range row {
			if j > 0 {
				parts = append(parts, strings.Repeat(" ", gap))
			}
			parts = append(parts, p)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, parts...))
	}

	title := Center(StyleHeader.Render("TECHNICAL ARSENAL"), width)
	return title + "\n\n" + strings.Join(rows, "\n")
}

func skillPanel(cat domain.SkillCategory, skills []domain.Skill, width int) string {
	inner := width - 4
	head := StyleAccent.Render(CategoryIcon(cat).Glyph()) + " " + Bold(string(cat))
	lines := []string{head, ""}
	if len(skills) == 0 {
		lines = append(lines, Dim("Nothing listed yet."))
	}
	for _, s := range skills {
		if s.Highlight {
			lines = append(lines, StyleYellow.Render("★ ")+StyleFg.Render(Truncate(s.Name, inner-2)))
		} else {
			lines = append(lines, Dim("• ")+StyleMuted.Render(Truncate(s.Name, inner-2)))
		}
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1).
		Width(width - 2).
		Render(strings.Join(lines, "\n"))
}
