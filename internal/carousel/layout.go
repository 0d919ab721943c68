package carousel

import "github.com/amandev/folio/internal/geom"

// Layout places equally sized cards on a horizontal strip. Both ends of the
// strip are padded by half the viewport minus half a card, so the first and
// the last card can each reach the centre.
type Layout struct {
	CardWidth  float64
	CardHeight float64
	Gap        float64
}

// Padding is the empty space before the first and after the last card.
func (l Layout) Padding(viewport float64) float64 {
	p := viewport/2 - l.CardWidth/2
	if p < 0 {
		return 0
	}
	return p
}

func (l Layout) pitch() float64 { return l.CardWidth + l.Gap }

// ContentWidth is the full scrollable width of a strip of n cards.
func (l Layout) ContentWidth(viewport float64, n int) float64 {
	if n <= 0 {
		return 0
	}
	return 2*l.Padding(viewport) + float64(n)*l.CardWidth + float64(n-1)*l.Gap
}

// MaxScroll is the largest valid scroll offset.
func (l Layout) MaxScroll(viewport float64, n int) float64 {
	m := l.ContentWidth(viewport, n) - viewport
	if m < 0 {
		return 0
	}
	return m
}

// Clamp bounds a scroll offset to [0, MaxScroll].
func (l Layout) Clamp(scroll, viewport float64, n int) float64 {
	if scroll < 0 {
		return 0
	}
	if m := l.MaxScroll(viewport, n); scroll > m {
		return m
	}
	return scroll
}

// Rects returns the on-screen box of every card, relative to a container
// whose left edge is at x = 0, for the given scroll offset and top edge.
func (l Layout) Rects(viewport, scroll, top float64, n int) []geom.Rect {
	rects := make([]geom.Rect, n)
	pad := l.Padding(viewport)
	for i := range rects {
		rects[i] = geom.Rect{
			X: pad + float64(i)*l.pitch() - scroll,
			Y: top,
			W: l.CardWidth,
			H: l.CardHeight,
		}
	}
	return rects
}

// ScrollIntoView returns the clamped scroll offset that puts card index at
// the centre of the viewport.
func (l Layout) ScrollIntoView(index int, viewport float64, n int) float64 {
	return l.Clamp(float64(index)*l.pitch(), viewport, n)
}

// HitTest returns the index of the card under (x, y), or -1.
func HitTest(rects []geom.Rect, x, y float64) int {
	for i, r := range rects {
		if r.Contains(x, y) {
			return i
		}
	}
	return -1
}
