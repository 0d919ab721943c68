// Package geom holds the small amount of 2D geometry shared by the
// carousel and the tilt effect. Units are whatever the caller lays out in;
// the TUI uses terminal cells.
package geom

// Rect is an axis-aligned box with its origin at the top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

func (r Rect) CenterX() float64 { return r.X + r.W/2 }
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Empty reports whether the box has no horizontal extent.
func (r Rect) Empty() bool { return r.W <= 0 }

// Contains reports whether (x, y) lies inside the box. The right and
// bottom edges are exclusive.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// ContainsX is Contains restricted to the horizontal axis.
func (r Rect) ContainsX(x float64) bool {
	return x >= r.X && x < r.X+r.W
}
