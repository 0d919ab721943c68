// Package carousel implements the focal-card carousel: which card sits
// nearest the centre of a horizontally scrolled strip, and how every other
// card is transformed relative to it.
package carousel

import (
	"math"

	"github.com/amandev/folio/internal/geom"
)

const (
	// RotationStep is the rotation, in degrees, added per index of offset.
	RotationStep = 25.0
	// MaxRotation bounds the rotation magnitude.
	MaxRotation = 60.0
	// ScaleStep is the scale lost per index of offset.
	ScaleStep = 0.1
	// OpacityStep is the opacity lost per index of offset.
	OpacityStep = 0.5
	// MinOpacity is the floor for every non-focal card.
	MinOpacity = 0.5
	// BaseZ is the stacking order of the focal card.
	BaseZ = 50
)

// Transform is the visual descriptor of one card.
type Transform struct {
	Offset   int
	Rotation float64 // degrees around the vertical axis
	Scale    float64
	Opacity  float64
	Z        int
}

// Focal reports whether the transform belongs to the focal card.
func (t Transform) Focal() bool { return t.Offset == 0 }

// Selection is the outcome of clicking a card.
type Selection int

const (
	// Refocus asks the caller to scroll the card into the centre.
	Refocus Selection = iota
	// Activate asks the caller to open the card.
	Activate
)

func (s Selection) String() string {
	if s == Activate {
		return "activate"
	}
	return "refocus"
}

// RecomputeFocus returns the index of the item whose horizontal centre is
// closest to the container's. Ties go to the lowest index. ok is false,
// and no index is chosen, when the container has no width yet or there
// are no items.
func RecomputeFocus(container geom.Rect, items []geom.Rect) (index int, ok bool) {
	if container.Empty() || len(items) == 0 {
		return 0, false
	}
	center := container.CenterX()
	closest := 0
	closestDist := math.Inf(1)
	for i, item := range items {
		dist := math.Abs(center - item.CenterX())
		if dist < closestDist {
			closestDist = dist
			closest = i
		}
	}
	return closest, true
}

// TransformFor derives the card transform from its signed offset to the
// focal index. Scale is not floored; callers pick their own minimum.
func TransformFor(index, focal int) Transform {
	d := index - focal
	abs := d
	if abs < 0 {
		abs = -abs
	}
	rotation := math.Max(-MaxRotation, math.Min(MaxRotation, float64(d)*RotationStep))
	opacity := 1.0
	if d != 0 {
		opacity = math.Max(MinOpacity, 1-OpacityStep*float64(abs))
	}
	return Transform{
		Offset:   d,
		Rotation: rotation,
		Scale:    1 - ScaleStep*float64(abs),
		Opacity:  opacity,
		Z:        BaseZ - abs,
	}
}

// SelectOrNavigate decides what a click on card index does.
func SelectOrNavigate(index, focal int) Selection {
	if index == focal {
		return Activate
	}
	return Refocus
}
