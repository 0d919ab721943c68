package formatter

import (
	"strings"

	"github.com/amandev/folio/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// HeroCTA is the label of the hero call-to-action.
const HeroCTA = "View Projects →"

// FormatHero renders the hero banner centred in width.
func FormatHero(p domain.Profile, width int) string {
	var lines []string
	if p.Badge != "" {
		badge := lipgloss.NewStyle().
			Foreground(ColorAccent).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorAccent).
			Padding(0, 1).
			Render("● " + p.Badge)
		lines = append(lines, badge, "")
	}
	for i, h := range p.Headline {
		if i == 0 {
			lines = append(lines, StyleBold.Render(h))
		} else {
			lines = append(lines, StyleAccent.Bold(true).Render(h))
		}
	}
	if p.Subtext != "" {
		lines = append(lines, "", StyleMuted.Render(Wrap(p.Subtext, min(width-4, 72))))
	}
	lines = append(lines, "", StyleButton.Render(HeroCTA))
	return centerBlock(strings.Join(lines, "\n"), width)
}

// FormatContact renders the contact section with its outbound links.
func FormatContact(p domain.Profile, width int) string {
	var lines []string
	if p.ContactTitle != "" {
		lines = append(lines, StyleHeader.Render(p.ContactTitle), "")
	}
	for _, l := range p.ContactPitch {
		lines = append(lines, StyleMuted.Render(Wrap(l, min(width-4, 72))))
	}
	if links := p.ContactLinks(); len(links) > 0 {
		lines = append(lines, "")
		for _, l := range links {
			lines = append(lines, StyleAccent.Render(linkGlyph(l.Kind)+" "+l.Label)+"  "+Dim(l.URL))
		}
	}
	return centerBlock(strings.Join(lines, "\n"), width)
}

// FormatHome is the hero followed by the contact section, for plain
// output.
func FormatHome(p domain.Profile, width int) string {
	return FormatHero(p, width) + "\n\n" + FormatContact(p, width)
}

// FormatAbout renders the about-modal card. shift moves the card
// horizontally by that many cells to show the tilt.
func FormatAbout(p domain.Profile, width, shift int) string {
	cardW := min(width-4, 76)
	if cardW < 24 {
		cardW = 24
	}
	inner := cardW - 6

	var lines []string
	lines = append(lines, StyleHeader.Render(strings.ToUpper(p.AboutTitle)))
	if p.AboutSubtitle != "" {
		lines = append(lines, StyleAccent.Render(p.AboutSubtitle))
	}
	for _, para := range p.About {
		lines = append(lines, "", StyleFg.Render(Wrap(para, inner)))
	}
	if len(p.FocusAreas) > 0 {
		lines = append(lines, "", Tags(p.FocusAreas))
	}
	lines = append(lines, "", Dim("esc: close"))

	card := lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(ColorAccent).
		Padding(1, 2).
		Width(cardW - 2).
		Render(strings.Join(lines, "\n"))

	left := (width-lipgloss.Width(card))/2 + shift
	if left < 0 {
		left = 0
	}
	return lipgloss.NewStyle().MarginLeft(left).Render(card)
}

func linkGlyph(k domain.LinkKind) string {
	switch k {
	case domain.LinkEmail:
		return "✉"
	case domain.LinkLinkedIn:
		return "in"
	case domain.LinkGitHub:
		return "⌥"
	case domain.LinkDemo:
		return "↗"
	}
	return "</>"
}

// centerBlock centres every line of block independently within width.
func centerBlock(block string, width int) string {
	if width <= 0 {
		return block
	}
	lines := strings.Split(block, "\n")
	for i, l := range lines {
		lines[i] = lipgloss.PlaceHorizontal(width, lipgloss.Center, l)
	}
	return strings.Join(lines, "\n")
}

// NavZone is the horizontal cell span of one navbar label.
type NavZone struct {
	Index      int
	Start, End int
}

// RenderNavbar draws the brand and the navigation items, highlighting
// active (-1 for none). It returns the span of each label so mouse clicks
// can be mapped back to items.
func RenderNavbar(brand string, items []domain.NavItem, active int) (string, []NavZone) {
	var b strings.Builder
	b.WriteString(StyleAccent.Bold(true).Render(brand))
	pos := lipgloss.Width(brand)
	b.WriteString("   ")
	pos += 3

	zones := make([]NavZone, 0, len(items))
	for i, item := range items {
		label := item.Label
		num := Dim(string(rune('1'+i)) + " ")
		b.WriteString(num)
		pos += 2
		if i == active {
			b.WriteString(StyleAccent.Underline(true).Render(label))
		} else {
			b.WriteString(StyleMuted.Render(label))
		}
		w := lipgloss.Width(label)
		zones = append(zones, NavZone{Index: i, Start: pos, End: pos + w})
		pos += w
		if i < len(items)-1 {
			b.WriteString("  ")
			pos += 2
		}
	}
	return b.String(), zones
}

// NavHit returns the index of the navbar item at column x, or -1.
func NavHit(zones []NavZone, x int) int {
	for _, z := range zones {
		if x >= z.Start && x < z.End {
			return z.Index
		}
	}
	return -1
}
