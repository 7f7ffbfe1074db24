package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"identical", Rect{0, 0, 10, 10}, Rect{0, 0, 10, 10}, true},
		{"partial overlap", Rect{0, 0, 10, 10}, Rect{5, 5, 10, 10}, true},
		{"contained", Rect{0, 0, 100, 100}, Rect{10, 10, 5, 5}, true},
		{"touching right edge", Rect{0, 0, 10, 10}, Rect{10, 0, 10, 10}, false},
		{"touching bottom edge", Rect{0, 0, 10, 10}, Rect{0, 10, 10, 10}, false},
		{"overlap on x only", Rect{0, 0, 10, 10}, Rect{5, 20, 10, 10}, false},
		{"overlap on y only", Rect{0, 0, 10, 10}, Rect{20, 5, 10, 10}, false},
		{"zero width inside", Rect{0, 0, 10, 10}, Rect{5, 5, 0, 3}, false},
		{"zero height inside", Rect{0, 0, 10, 10}, Rect{5, 5, 3, 0}, false},
		{"zero size on itself", Rect{5, 5, 0, 0}, Rect{5, 5, 0, 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.a, tt.b))
			assert.Equal(t, Overlaps(tt.a, tt.b), Overlaps(tt.b, tt.a), "overlap must be symmetric")
		})
	}
}

func TestOverlaps_SelfForNonZeroSize(t *testing.T) {
	rects := []Rect{
		{0, 0, 1, 1},
		{-50, -50, 10, 3},
		{130, 130, 64, 64},
		{0.5, 0.5, 0.25, 0.25},
	}
	for _, r := range rects {
		assert.True(t, r.Overlaps(r), "%v should overlap itself", r)
	}
}

func TestRect_Contains(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 20, Height: 20}

	assert.True(t, r.Contains(10, 10))
	assert.True(t, r.Contains(29.9, 29.9))
	assert.False(t, r.Contains(30, 15), "right edge is exclusive")
	assert.False(t, r.Contains(5, 15))
}

func TestIntersectionArea(t *testing.T) {
	assert.Equal(t, 25.0, IntersectionArea(Rect{0, 0, 10, 10}, Rect{5, 5, 10, 10}))
	assert.Equal(t, 0.0, IntersectionArea(Rect{0, 0, 10, 10}, Rect{10, 0, 10, 10}))
	assert.Equal(t, 100.0, IntersectionArea(Rect{0, 0, 10, 10}, Rect{-5, -5, 50, 50}))
}

func TestRect_ClampInto(t *testing.T) {
	bounds := Rect{Width: 100, Height: 50}

	tests := []struct {
		name  string
		in    Rect
		wantX float64
		wantY float64
	}{
		{"inside untouched", Rect{10, 10, 20, 20}, 10, 10},
		{"past left/top", Rect{-5, -8, 20, 20}, 0, 0},
		{"past right/bottom", Rect{95, 45, 20, 20}, 80, 30},
		{"larger than bounds", Rect{30, 30, 200, 200}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.ClampInto(bounds)
			assert.Equal(t, tt.wantX, got.X)
			assert.Equal(t, tt.wantY, got.Y)
			assert.Equal(t, tt.in.Width, got.Width)
		})
	}
}

func TestNewPlayer(t *testing.T) {
	p := NewPlayer(100, 120, 32, 32, 2)

	assert.Equal(t, Point{X: 100, Y: 120}, p.Position())
	assert.Equal(t, DirDown, p.Direction)
	assert.Equal(t, 2.0, p.Speed)
	assert.Equal(t, 0, p.AnimationFrame)

	p.AnimationFrame = 3
	p.AnimationTimer = 5
	p.SetPosition(Point{X: 1, Y: 2})
	assert.Equal(t, 3, p.AnimationFrame, "SetPosition keeps animation state")

	p.ResetAnimation()
	assert.Equal(t, 0, p.AnimationFrame)
	assert.Equal(t, 0, p.AnimationTimer)
}

func TestDirection_String(t *testing.T) {
	assert.Equal(t, "down", DirDown.String())
	assert.Equal(t, "up", DirUp.String())
	assert.Equal(t, "left", DirLeft.String())
	assert.Equal(t, "right", DirRight.String())
	assert.Equal(t, "unknown", Direction(42).String())
}
