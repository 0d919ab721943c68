// Package tilt maps a pointer position over a card to a small pseudo-3D
// rotation.
package tilt

import (
	"math"

	"github.com/amandev/folio/internal/geom"
)

// DefaultMax is the largest rotation, in degrees, on either axis.
const DefaultMax = 10.0

// Angles is a rotation around the horizontal (X) and vertical (Y) axes, in
// degrees. The zero value is flat.
type Angles struct {
	RotateX float64
	RotateY float64
}

// Flat reports whether both angles are zero.
func (a Angles) Flat() bool { return a.RotateX == 0 && a.RotateY == 0 }

// Compute returns the rotation for pointer (px, py) over card. Moving right
// of centre turns the card toward positive Y; moving below centre tips it
// toward negative X. Pointers outside the card and zero-sized cards are flat.
func Compute(card geom.Rect, px, py, max float64) Angles {
	if card.W <= 0 || card.H <= 0 || !card.Contains(px, py) {
		return Angles{}
	}
	halfW := card.W / 2
	halfH := card.H / 2
	return Angles{
		RotateX: clamp(-max*(py-card.CenterY())/halfH, max),
		RotateY: clamp(max*(px-card.CenterX())/halfW, max),
	}
}

func clamp(v, max float64) float64 {
	v = math.Max(-max, math.Min(max, v))
	if v == 0 {
		// Normalise -0 so Flat and equality hold.
		return 0
	}
	return v
}

// Tracker keeps the current angles of one card across pointer events.
type Tracker struct {
	Max    float64
	angles Angles
}

// NewTracker returns a flat tracker bounded by max degrees.
func NewTracker(max float64) *Tracker {
	return &Tracker{Max: max}
}

// Angles returns the current rotation.
func (t *Tracker) Angles() Angles { return t.angles }

// Move updates the rotation for a pointer at (px, py) and reports whether it
// changed.
func (t *Tracker) Move(card geom.Rect, px, py float64) bool {
	next := Compute(card, px, py, t.Max)
	changed := next != t.angles
	t.angles = next
	return changed
}

// Leave resets the card to flat.
func (t *Tracker) Leave() {
	t.angles = Angles{}
}

// Shift converts the Y rotation into a horizontal cell offset for a
// terminal card: a full tilt moves the card by span cells.
func (a Angles) Shift(max float64, span int) int {
	if max <= 0 || span <= 0 {
		return 0
	}
	return int(math.Round(a.RotateY / max * float64(span)))
}
