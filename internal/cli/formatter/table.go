package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Column describes one table column. Cells wider than Max are cut with an
// ellipsis; Max 0 means unbounded. Right aligns the column to its right
// edge, for counts.
type Column struct {
	Title string
	Max   int
	Right bool
}

// Cols builds unbounded, left-aligned columns from titles.
func Cols(titles ...string) []Column {
	cols := make([]Column, len(titles))
	for i, t := range titles {
		cols[i] = Column{Title: t}
	}
	return cols
}

const colGap = 2

// RenderTable renders rows under a styled header and a rule. Widths are
// measured on visible cells so styled content lines up.
func RenderTable(cols []Column, rows [][]string) string {
	if len(cols) == 0 {
		return ""
	}

	cells := make([][]string, len(rows))
	widths := make([]int, len(cols))
	for i, c := range cols {
		widths[i] = lipgloss.Width(c.Title)
	}
	for r, row := range rows {
		cells[r] = make([]string, len(cols))
		for i, c := range cols {
			if i >= len(row) {
				continue
			}
			cell := row[i]
			if c.Max > 0 {
				cell = Truncate(cell, c.Max)
			}
			cells[r][i] = cell
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	var b strings.Builder
	header := make([]string, len(cols))
	rule := make([]string, len(cols))
	for i, c := range cols {
		header[i] = align(StyleHeader.Render(c.Title), widths[i], c.Right)
		rule[i] = StyleDim.Render(strings.Repeat("─", widths[i]))
	}
	writeRow(&b, header)
	writeRow(&b, rule)
	for _, row := range cells {
		line := make([]string, len(cols))
		for i, c := range cols {
			line[i] = align(row[i], widths[i], c.Right)
		}
		writeRow(&b, line)
	}
	return b.String()
}

func align(cell string, width int, right bool) string {
	pad := strings.Repeat(" ", max(width-lipgloss.Width(cell), 0))
	if right {
		return pad + cell
	}
	return cell + pad
}

func writeRow(b *strings.Builder, cells []string) {
	b.WriteString(strings.TrimRight(strings.Join(cells, strings.Repeat(" ", colGap)), " "))
	b.WriteString("\n")
}
