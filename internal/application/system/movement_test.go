package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/clinicquest/internal/domain/entity"
	"github.com/younwookim/clinicquest/internal/infrastructure/config"
)

func held(actions ...Action) *Snapshot {
	s := NewSnapshot()
	for _, a := range actions {
		s.Press(a)
	}
	return s
}

func TestMovementSystem_Axial(t *testing.T) {
	tests := []struct {
		name   string
		action Action
		want   entity.Point
		dir    entity.Direction
	}{
		{"up", ActionUp, entity.Point{X: 100, Y: 98}, entity.DirUp},
		{"down", ActionDown, entity.Point{X: 100, Y: 102}, entity.DirDown},
		{"left", ActionLeft, entity.Point{X: 98, Y: 100}, entity.DirLeft},
		{"right", ActionRight, entity.Point{X: 102, Y: 100}, entity.DirRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys := NewMovementSystem(config.AnimationConfig{Frames: 4, Interval: 8})
			player := entity.NewPlayer(100, 100, 32, 32, 2)

			moved := sys.Update(player, held(tt.action))

			assert.True(t, moved)
			assert.Equal(t, tt.want, player.Position())
			assert.Equal(t, tt.dir, player.Direction)
		})
	}
}

func TestMovementSystem_DiagonalSpeedEqualsAxial(t *testing.T) {
	pairs := [][2]Action{
		{ActionUp, ActionLeft},
		{ActionUp, ActionRight},
		{ActionDown, ActionLeft},
		{ActionDown, ActionRight},
	}

	for _, speed := range []float64{1, 2, 3.5} {
		for _, p := range pairs {
			sys := NewMovementSystem(config.AnimationConfig{Frames: 4, Interval: 8})
			player := entity.NewPlayer(100, 100, 32, 32, speed)

			sys.Update(player, held(p[0], p[1]))

			dist := math.Hypot(player.X-100, player.Y-100)
			assert.InDelta(t, speed, dist, 1e-9, "%v+%v at speed %v", p[0], p[1], speed)
		}
	}
}

func TestMovementSystem_OpposingKeysCancel(t *testing.T) {
	sys := NewMovementSystem(config.AnimationConfig{Frames: 4, Interval: 8})
	player := entity.NewPlayer(100, 100, 32, 32, 2)

	moved := sys.Update(player, held(ActionLeft, ActionRight))

	assert.False(t, moved)
	assert.Equal(t, entity.Point{X: 100, Y: 100}, player.Position())
}

func TestMovementSystem_HorizontalFacingWinsOnDiagonal(t *testing.T) {
	sys := NewMovementSystem(config.AnimationConfig{Frames: 4, Interval: 8})
	player := entity.NewPlayer(100, 100, 32, 32, 2)

	sys.Update(player, held(ActionUp, ActionLeft))

	assert.Equal(t, entity.DirLeft, player.Direction)
}

func TestMovementSystem_ClampsToBounds(t *testing.T) {
	sys := NewMovementSystem(config.AnimationConfig{Frames: 4, Interval: 8})
	sys.SetBounds(entity.Rect{Width: 200, Height: 200})
	player := entity.NewPlayer(1, 167, 32, 32, 2)

	sys.Update(player, held(ActionLeft, ActionDown))

	assert.Equal(t, 0.0, player.X)
	assert.Equal(t, 168.0, player.Y)
}

func TestMovementSystem_Animation(t *testing.T) {
	sys := NewMovementSystem(config.AnimationConfig{Frames: 3, Interval: 2})
	player := entity.NewPlayer(0, 0, 32, 32, 1)
	walk := held(ActionRight)

	var frames []int
	for i := 0; i < 8; i++ {
		sys.Update(player, walk)
		frames = append(frames, player.AnimationFrame)
	}
	assert.Equal(t, []int{0, 1, 1, 2, 2, 0, 0, 1}, frames)

	sys.Update(player, NewSnapshot())
	assert.Equal(t, 0, player.AnimationFrame, "idle resets immediately")
	assert.Equal(t, 0, player.AnimationTimer)
}

func TestNewMovementSystem_GuardsZeroAnimation(t *testing.T) {
	sys := NewMovementSystem(config.AnimationConfig{})
	player := entity.NewPlayer(0, 0, 32, 32, 1)

	assert.NotPanics(t, func() { sys.Update(player, held(ActionDown)) })
	assert.Equal(t, 0, player.AnimationFrame)
}
