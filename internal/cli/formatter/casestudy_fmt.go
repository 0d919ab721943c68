package formatter

import (
	"fmt"
	"strings"

	"github.com/amandev/folio/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// CaseStudyMarkdown lays a case study out as a markdown document in the
// order of the detail page.
func CaseStudyMarkdown(cs *domain.CaseStudy) string {
	var b strings.Builder

	if len(cs.TechStack) > 0 {
		tags := make([]string, len(cs.TechStack))
		for i, t := range cs.TechStack {
			tags[i] = "`" + t + "`"
		}
		b.WriteString(strings.Join(tags, " ") + "\n\n")
	}

	fmt.Fprintf(&b, "# %s\n\n", cs.Title)
	if cs.Tagline != "" {
		fmt.Fprintf(&b, "*%s*\n\n", cs.Tagline)
	}

	if links := cs.Links(); len(links) > 0 {
		parts := make([]string, len(links))
		for i, l := range links {
			parts[i] = fmt.Sprintf("[%s](%s)", l.Label, l.URL)
		}
		b.WriteString(strings.Join(parts, " · ") + "\n\n")
	}

	section(&b, "## The Problem", cs.Problem)
	if len(cs.WhyFails) > 0 {
		b.WriteString("## Why Existing Solutions Fail\n\n")
		list(&b, "- ✖ ", cs.WhyFails)
	}
	section(&b, "## The Solution", cs.Solution)

	if len(cs.Workflow) > 0 || len(cs.TechnicalDecisions) > 0 {
		b.WriteString("## System Architecture & Approach\n\n")
		if len(cs.Workflow) > 0 {
			b.WriteString("### Core Workflow\n\n")
			for i, step := range cs.Workflow {
				fmt.Fprintf(&b, "%d. %s\n", i+1, step)
			}
			b.WriteString("\n")
		}
		if len(cs.TechnicalDecisions) > 0 {
			b.WriteString("### Key Technical Decisions\n\n")
			list(&b, "- ", cs.TechnicalDecisions)
		}
	}

	if cs.Features != nil && len(cs.Features.Items) > 0 {
		fmt.Fprintf(&b, "## %s\n\n", cs.Features.Title)
		list(&b, "- ", cs.Features.Items)
	}
	if len(cs.Outcomes) > 0 {
		b.WriteString("## Project Outcome\n\n")
		list(&b, "- ", cs.Outcomes)
	}
	if len(cs.Learnings) > 0 {
		b.WriteString("## Key Learnings\n\n")
		list(&b, "- ", cs.Learnings)
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}

func section(b *strings.Builder, heading, body string) {
	if body == "" {
		return
	}
	fmt.Fprintf(b, "%s\n\n%s\n\n", heading, body)
}

func list(b *strings.Builder, marker string, items []string) {
	for _, item := range items {
		b.WriteString(marker + item + "\n")
	}
	b.WriteString("\n")
}

// CaseStudyHeader is the bar above the detail page.
func CaseStudyHeader(cs *domain.CaseStudy, width int) string {
	back := StyleMuted.Render("← Back to Projects")
	label := StyleAccent.Render("CASE STUDY: " + cs.DisplaySlug())
	gap := width - lipgloss.Width(back) - lipgloss.Width(label)
	if gap < 2 {
		return back + "  " + label
	}
	return back + strings.Repeat(" ", gap) + label
}

// FormatCaseStudy renders the full detail page for plain output.
func FormatCaseStudy(cs *domain.CaseStudy, style string, width int) (string, error) {
	body, err := RenderMarkdown(CaseStudyMarkdown(cs), style, width)
	if err != nil {
		return "", err
	}
	return CaseStudyHeader(cs, width) + "\n" + body, nil
}

// FormatCaseStudyList renders the case studies as a table inside a box.
func FormatCaseStudyList(studies []*domain.CaseStudy) string {
	cols := []Column{
		{Title: "#", Right: true},
		{Title: "SLUG"},
		{Title: "TITLE"},
		{Title: "TAGLINE", Max: 48},
		{Title: "STACK", Max: 36},
	}
	rows := make([][]string, 0, len(studies))
	for i, cs := range studies {
		title := Bold(cs.Title)
		if cs.Featured {
			title += " " + StyleYellow.Render("★")
		}
		rows = append(rows, []string{
			Dim(fmt.Sprintf("%d", i+1)),
			StyleAccent.Render(ProjectIcon(cs.Slug).Glyph() + " " + cs.Slug),
			title,
			cs.Tagline,
			Dim(strings.Join(cs.TechStack, ", ")),
		})
	}
	if len(rows) == 0 {
		return RenderBox("Projects", Dim("No case studies."))
	}
	return RenderBox("Projects", strings.TrimRight(RenderTable(cols, rows), "\n"))
}
