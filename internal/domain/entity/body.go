package entity

import "math"

// Point is a position in logical world pixels
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in logical world pixels
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Overlaps reports whether two rectangles intersect on both axes.
// The comparison is strict, so touching edges and zero-size rects never overlap.
func Overlaps(a, b Rect) bool {
	return a.X < b.X+b.Width &&
		a.X+a.Width > b.X &&
		a.Y < b.Y+b.Height &&
		a.Y+a.Height > b.Y
}

// Overlaps reports whether r intersects o
func (r Rect) Overlaps(o Rect) bool {
	return Overlaps(r, o)
}

// Contains reports whether the point lies inside the rectangle
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Position returns the top-left corner
func (r Rect) Position() Point {
	return Point{X: r.X, Y: r.Y}
}

// Center returns the center point
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// IntersectionArea returns the overlapping area of two rectangles (0 when disjoint)
func IntersectionArea(a, b Rect) float64 {
	w := math.Min(a.X+a.Width, b.X+b.Width) - math.Max(a.X, b.X)
	h := math.Min(a.Y+a.Height, b.Y+b.Height) - math.Max(a.Y, b.Y)
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h
}

// ClampInto keeps r inside bounds. A rect larger than bounds is pinned to the bounds origin.
func (r Rect) ClampInto(bounds Rect) Rect {
	r.X = math.Max(bounds.X, math.Min(r.X, bounds.X+bounds.Width-r.Width))
	r.Y = math.Max(bounds.Y, math.Min(r.Y, bounds.Y+bounds.Height-r.Height))
	return r
}

// Direction is the way the player faces
type Direction int

const (
	DirDown Direction = iota
	DirUp
	DirLeft
	DirRight
)

// String returns the string representation of the direction
func (d Direction) String() string {
	switch d {
	case DirDown:
		return "down"
	case DirUp:
		return "up"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Player is the only entity moved directly by input
type Player struct {
	Rect
	Direction Direction
	Speed     float64

	AnimationFrame int
	AnimationTimer int
}

// NewPlayer creates a player facing down at the given position
func NewPlayer(x, y, width, height, speed float64) *Player {
	return &Player{
		Rect:      Rect{X: x, Y: y, Width: width, Height: height},
		Direction: DirDown,
		Speed:     speed,
	}
}

// SetPosition moves the player without touching animation state
func (p *Player) SetPosition(pt Point) {
	p.X = pt.X
	p.Y = pt.Y
}

// ResetAnimation puts the player back on the idle frame
func (p *Player) ResetAnimation() {
	p.AnimationFrame = 0
	p.AnimationTimer = 0
}
