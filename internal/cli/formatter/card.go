package formatter

import (
	"math"
	"strings"

	"github.com/amandev/folio/internal/carousel"
	"github.com/amandev/folio/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	// MinCardHeight is the smallest height a scaled card shrinks to.
	MinCardHeight = 5

	ctaFocal = "Read Case Study →"
	ctaOther = "View Project"
)

// CardCTA is the call-to-action label at the foot of a card.
func CardCTA(focal bool) string {
	if focal {
		return ctaFocal
	}
	return ctaOther
}

// ScaledHeight applies a transform scale to a card height, never going
// below MinCardHeight.
func ScaledHeight(height int, scale float64) int {
	h := int(math.Round(float64(height) * scale))
	if h < MinCardHeight {
		h = MinCardHeight
	}
	if h > height {
		h = height
	}
	return h
}

// RenderCard draws one carousel card into a block of exactly width x height
// cells. Scale shrinks the card vertically, opacity below 1 mutes it and
// rotation sinks it a line per full rotation step, never past the bottom
// edge.
func RenderCard(cs *domain.CaseStudy, width, height int, t carousel.Transform) string {
	h := ScaledHeight(height, t.Scale)
	innerW := width - 4
	if innerW < 1 {
		innerW = 1
	}
	innerH := h - 2

	title := StyleBold
	text := StyleMuted
	border := ColorBorder
	cta := StyleGhost
	if t.Focal() {
		border = ColorAccent
		cta = StyleButton
	} else if t.Opacity <= carousel.MinOpacity {
		title = StyleMuted
		text = StyleDim
	}

	icon := StyleAccent.Render(ProjectIcon(cs.Slug).Glyph())
	lines := []string{icon, title.Render(Truncate(cs.Title, innerW))}
	for _, l := range strings.Split(Wrap(cs.Tagline, innerW), "\n") {
		lines = append(lines, text.Render(l))
	}
	lines = append(lines, StyleDim.Render(Truncate(PlainTags(cs.TechStack), innerW)))

	body := fitLines(lines, innerH-1)
	body = append(body, cta.Render(Truncate(CardCTA(t.Focal()), innerW-4)))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(width - 2).
		Render(strings.Join(body, "\n"))

	sink := int(math.Abs(t.Rotation) / carousel.RotationStep)
	top := min((height-h)/2+sink, height-h)
	return placeBlock(box, width, height, top)
}

// RenderSkeletonCard draws a loading placeholder of the same footprint as
// a card. frame is the current spinner frame.
func RenderSkeletonCard(width, height int, frame string) string {
	innerW := width - 4
	if innerW < 1 {
		innerW = 1
	}
	bar := func(w int) string {
		if w > innerW {
			w = innerW
		}
		if w < 1 {
			w = 1
		}
		return StyleDim.Render(strings.Repeat("░", w))
	}
	lines := []string{
		StyleAccent.Render(frame),
		bar(innerW * 3 / 4),
		bar(innerW),
		bar(innerW / 2),
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1).
		Width(width - 2).
		Render(strings.Join(fitLines(lines, height-2), "\n"))
	return placeBlock(box, width, height, 0)
}

// fitLines pads or cuts lines to exactly n entries.
func fitLines(lines []string, n int) []string {
	if n < 0 {
		n = 0
	}
	if len(lines) > n {
		return lines[:n]
	}
	out := make([]string, n)
	copy(out, lines)
	return out
}

// placeBlock positions block inside a width x height area, top lines down,
// padding every line to the full width.
func placeBlock(block string, width, height, top int) string {
	src := strings.Split(block, "\n")
	out := make([]string, height)
	blank := strings.Repeat(" ", width)
	for i := range out {
		j := i - top
		if j < 0 || j >= len(src) {
			out[i] = blank
			continue
		}
		line := ansi.Truncate(src[j], width, "")
		if pad := width - ansi.StringWidth(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		out[i] = line
	}
	return strings.Join(out, "\n")
}

// Strip describes how cards are laid on the horizontal carousel strip in
// whole cells.
type Strip struct {
	Padding  int
	Gap      int
	Scroll   int
	Viewport int
	Height   int
}

// RenderStrip joins card blocks left to right with the strip's padding and
// gaps, then cuts the visible window [Scroll, Scroll+Viewport).
func RenderStrip(cards []string, s Strip) string {
	rows := make([]strings.Builder, s.Height)
	pad := strings.Repeat(" ", s.Padding)
	gap := strings.Repeat(" ", s.Gap)
	for r := range rows {
		rows[r].WriteString(pad)
	}
	for i, card := range cards {
		lines := strings.Split(card, "\n")
		for r := range rows {
			if i > 0 {
				rows[r].WriteString(gap)
			}
			if r < len(lines) {
				rows[r].WriteString(lines[r])
			}
		}
	}

	out := make([]string, s.Height)
	for r := range rows {
		line := rows[r].String() + pad
		cut := ansi.Cut(line, s.Scroll, s.Scroll+s.Viewport)
		if w := ansi.StringWidth(cut); w < s.Viewport {
			cut += strings.Repeat(" ", s.Viewport-w)
		}
		out[r] = cut
	}
	return strings.Join(out, "\n")
}
