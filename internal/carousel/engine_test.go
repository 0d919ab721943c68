package carousel

import (
	"math"
	"math/rand"
	"testing"

	"github.com/amandev/folio/internal/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func itemsCenteredAt(width float64, centers ...float64) []geom.Rect {
	rects := make([]geom.Rect, len(centers))
	for i, c := range centers {
		rects[i] = geom.Rect{X: c - width/2, W: width, H: 10}
	}
	return rects
}

func TestRecomputeFocus_SixCardScenario(t *testing.T) {
	container := geom.Rect{X: 440, W: 1000, H: 500}
	require.Equal(t, 940.0, container.CenterX())

	items := itemsCenteredAt(420, 100, 520, 940, 1360, 1780, 2200)
	idx, ok := RecomputeFocus(container, items)

	require.True(t, ok)
	assert.Equal(t, 2, idx)
}

func TestRecomputeFocus_TiesGoToLowestIndex(t *testing.T) {
	container := geom.Rect{X: 0, W: 1000}
	items := itemsCenteredAt(100, 400, 600, 900)

	idx, ok := RecomputeFocus(container, items)
	require.True(t, ok)
	assert.Equal(t, 0, idx)
}

func TestRecomputeFocus_ZeroWidthContainerSkips(t *testing.T) {
	_, ok := RecomputeFocus(geom.Rect{X: 10, W: 0}, itemsCenteredAt(10, 5, 15))
	assert.False(t, ok)
}

func TestRecomputeFocus_NoItemsSkips(t *testing.T) {
	_, ok := RecomputeFocus(geom.Rect{W: 100}, nil)
	assert.False(t, ok)
}

func TestRecomputeFocus_NoStrictlyCloserItem(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for iter := 0; iter < 500; iter++ {
		n := 1 + rng.Intn(12)
		container := geom.Rect{X: rng.Float64()*400 - 200, W: 1 + rng.Float64()*1200}
		items := make([]geom.Rect, n)
		for i := range items {
			// Integer positions make exact ties likely.
			items[i] = geom.Rect{X: float64(rng.Intn(2000) - 500), W: float64(1 + rng.Intn(400))}
		}

		idx, ok := RecomputeFocus(container, items)
		require.True(t, ok)

		best := math.Abs(container.CenterX() - items[idx].CenterX())
		for i, it := range items {
			d := math.Abs(container.CenterX() - it.CenterX())
			assert.False(t, d < best, "item %d is strictly closer than chosen %d", i, idx)
			if i < idx {
				assert.NotEqual(t, best, d, "tie with lower index %d must win over %d", i, idx)
			}
		}
	}
}

func TestTransformFor_FocalIsIdentity(t *testing.T) {
	for _, f := range []int{0, 1, 5, 42} {
		tr := TransformFor(f, f)
		assert.Equal(t, 0.0, tr.Rotation)
		assert.Equal(t, 1.0, tr.Scale)
		assert.Equal(t, 1.0, tr.Opacity)
		assert.Equal(t, BaseZ, tr.Z)
		assert.True(t, tr.Focal())
	}
}

func TestTransformFor_Values(t *testing.T) {
	tests := []struct {
		d        int
		rotation float64
		scale    float64
		opacity  float64
		z        int
	}{
		{d: 1, rotation: 25, scale: 0.9, opacity: 0.5, z: 49},
		{d: -1, rotation: -25, scale: 0.9, opacity: 0.5, z: 49},
		{d: 2, rotation: 50, scale: 0.8, opacity: 0.5, z: 48},
		{d: 3, rotation: 60, scale: 0.7, opacity: 0.5, z: 47},
		{d: -4, rotation: -60, scale: 0.6, opacity: 0.5, z: 46},
		{d: 12, rotation: 60, scale: -0.2, opacity: 0.5, z: 38},
	}
	for _, tt := range tests {
		tr := TransformFor(10+tt.d, 10)
		assert.Equal(t, tt.d, tr.Offset)
		assert.InDelta(t, tt.rotation, tr.Rotation, 1e-9, "rotation d=%d", tt.d)
		assert.InDelta(t, tt.scale, tr.Scale, 1e-9, "scale d=%d", tt.d)
		assert.InDelta(t, tt.opacity, tr.Opacity, 1e-9, "opacity d=%d", tt.d)
		assert.Equal(t, tt.z, tr.Z, "z d=%d", tt.d)
	}
}

func TestTransformFor_SymmetricMagnitude(t *testing.T) {
	for d := 1; d <= 10; d++ {
		pos := TransformFor(5+d, 5)
		neg := TransformFor(5-d, 5)
		assert.Equal(t, pos.Rotation, -neg.Rotation, "d=%d", d)
		assert.Equal(t, pos.Scale, neg.Scale, "d=%d", d)
		assert.Equal(t, pos.Opacity, neg.Opacity, "d=%d", d)
		assert.Equal(t, pos.Z, neg.Z, "d=%d", d)
		assert.Greater(t, pos.Rotation, 0.0)
		assert.Less(t, neg.Rotation, 0.0)
	}
}

func TestTransformFor_RotationClampedFromThree(t *testing.T) {
	for d := 3; d <= 20; d++ {
		assert.Equal(t, MaxRotation, math.Abs(TransformFor(d, 0).Rotation), "d=%d", d)
		assert.Equal(t, MaxRotation, math.Abs(TransformFor(0, d).Rotation), "d=-%d", d)
	}
}

func TestSelectOrNavigate(t *testing.T) {
	focal := 3
	for i := 0; i < 8; i++ {
		got := SelectOrNavigate(i, focal)
		if i == focal {
			assert.Equal(t, Activate, got)
		} else {
			assert.Equal(t, Refocus, got, "index %d must never activate", i)
		}
	}
	assert.Equal(t, "activate", Activate.String())
	assert.Equal(t, "refocus", Refocus.String())
}
