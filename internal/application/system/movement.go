package system

import (
	"math"

	"github.com/younwookim/clinicquest/internal/domain/entity"
	"github.com/younwookim/clinicquest/internal/infrastructure/config"
)

// MovementSystem moves the player from the held direction actions
type MovementSystem struct {
	bounds    entity.Rect
	frames    int
	interval  int
	hasBounds bool
}

// NewMovementSystem creates a movement system for the given animation settings
func NewMovementSystem(anim config.AnimationConfig) *MovementSystem {
	frames := anim.Frames
	if frames < 1 {
		frames = 1
	}
	interval := anim.Interval
	if interval < 1 {
		interval = 1
	}
	return &MovementSystem{frames: frames, interval: interval}
}

// SetBounds confines the player to the given rectangle
func (s *MovementSystem) SetBounds(bounds entity.Rect) {
	s.bounds = bounds
	s.hasBounds = true
}

// Update applies one tick of movement. Returns true when the player moved.
func (s *MovementSystem) Update(player *entity.Player, input *Snapshot) bool {
	dx := input.Axis(ActionLeft, ActionRight)
	dy := input.Axis(ActionUp, ActionDown)

	if dx == 0 && dy == 0 {
		player.ResetAnimation()
		return false
	}

	// Diagonal speed equals axial speed
	if dx != 0 && dy != 0 {
		dx /= math.Sqrt2
		dy /= math.Sqrt2
	}

	player.X += dx * player.Speed
	player.Y += dy * player.Speed
	if s.hasBounds {
		player.Rect = player.Rect.ClampInto(s.bounds)
	}

	s.face(player, dx, dy)
	s.animate(player)
	return true
}

// face updates the facing direction; horizontal input wins on diagonals
func (s *MovementSystem) face(player *entity.Player, dx, dy float64) {
	switch {
	case dx < 0:
		player.Direction = entity.DirLeft
	case dx > 0:
		player.Direction = entity.DirRight
	case dy < 0:
		player.Direction = entity.DirUp
	case dy > 0:
		player.Direction = entity.DirDown
	}
}

func (s *MovementSystem) animate(player *entity.Player) {
	player.AnimationTimer++
	if player.AnimationTimer >= s.interval {
		player.AnimationTimer = 0
		player.AnimationFrame = (player.AnimationFrame + 1) % s.frames
	}
}
