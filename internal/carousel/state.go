package carousel

import "github.com/amandev/folio/internal/geom"

// State is the mutable carousel state: how many items are shown, which one
// is focal, and how far the strip is scrolled. It is owned by a single
// event loop and is not safe for concurrent use.
type State struct {
	count  int
	focal  int
	scroll float64
}

func NewState() *State {
	return &State{}
}

func (s *State) Focal() int      { return s.focal }
func (s *State) Count() int      { return s.count }
func (s *State) Scroll() float64 { return s.scroll }

// SetScroll stores the scroll offset. Callers clamp it with Layout.Clamp.
func (s *State) SetScroll(x float64) { s.scroll = x }

// SetCount replaces the item count and pulls the focal index back into
// range. An empty list leaves the focal index at 0.
func (s *State) SetCount(n int) {
	if n < 0 {
		n = 0
	}
	s.count = n
	switch {
	case n == 0:
		s.focal = 0
	case s.focal >= n:
		s.focal = n - 1
	}
}

// Recompute runs RecomputeFocus and stores the result. It reports whether
// the focal index changed. A zero-width container or an empty item list
// leaves the previous focal index untouched.
func (s *State) Recompute(container geom.Rect, items []geom.Rect) bool {
	idx, ok := RecomputeFocus(container, items)
	if !ok || idx >= s.count {
		return false
	}
	changed := idx != s.focal
	s.focal = idx
	return changed
}
