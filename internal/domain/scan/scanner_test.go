package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/clinicquest/internal/domain/entity"
)

func testConfig() Config {
	return Config{
		Name:      "medscan",
		View:      entity.Rect{X: 100, Y: 40, Width: 400, Height: 280},
		Window:    entity.Rect{X: 100, Y: 40, Width: 80, Height: 60},
		Target:    entity.Rect{X: 300, Y: 200, Width: 40, Height: 40},
		Rate:      30,
		MoveSpeed: 10,
	}
}

func TestScanner_ProgressOnlyWhileOverlapping(t *testing.T) {
	s := New(testConfig())

	assert.False(t, s.Scan(true), "window starts away from target")
	assert.Equal(t, 0.0, s.Progress())

	s.Pointer(110, 50, true)
	s.Pointer(310, 210, true)
	s.Pointer(310, 210, false)
	require.True(t, entity.Overlaps(s.Window(), s.Target()))

	assert.False(t, s.Scan(false), "not holding")
	assert.Equal(t, 0.0, s.Progress())

	s.Scan(true)
	assert.Equal(t, 30.0, s.Progress())
}

func TestScanner_ProgressCapsAtExactly100(t *testing.T) {
	s := New(testConfig())
	s.window = s.cfg.Target

	completedAt := -1
	for i := 0; i < 10; i++ {
		if s.Scan(true) {
			completedAt = i
		}
	}

	assert.Equal(t, 3, completedAt, "30+30+30+10 completes on the fourth tick")
	assert.Equal(t, MaxProgress, s.Progress())
	assert.True(t, s.Complete())
}

func TestScanner_MoveStaysInsideView(t *testing.T) {
	s := New(testConfig())

	s.Move(-1, -1)
	assert.Equal(t, 100.0, s.Window().X)
	assert.Equal(t, 40.0, s.Window().Y)

	for i := 0; i < 100; i++ {
		s.Move(1, 1)
	}
	assert.Equal(t, 420.0, s.Window().X)
	assert.Equal(t, 260.0, s.Window().Y)
}

func TestScanner_Drag(t *testing.T) {
	s := New(testConfig())

	t.Run("press outside the window does not drag", func(t *testing.T) {
		s.Pointer(400, 300, true)
		assert.False(t, s.Dragging())
		s.Pointer(410, 300, true)
		assert.Equal(t, 100.0, s.Window().X)
		s.Pointer(410, 300, false)
	})

	t.Run("press inside keeps the grab offset", func(t *testing.T) {
		s.Pointer(120, 50, true)
		require.True(t, s.Dragging())
		s.Pointer(220, 150, true)
		assert.Equal(t, 200.0, s.Window().X)
		assert.Equal(t, 140.0, s.Window().Y)
	})

	t.Run("release ends the drag", func(t *testing.T) {
		s.Pointer(220, 150, false)
		assert.False(t, s.Dragging())
		s.Pointer(0, 0, false)
		assert.Equal(t, 200.0, s.Window().X)
	})
}

func TestScanner_ResetClearsProgress(t *testing.T) {
	s := New(testConfig())
	s.window = s.cfg.Target
	s.Scan(true)
	s.Pointer(310, 210, true)

	s.Reset()

	assert.Equal(t, 0.0, s.Progress())
	assert.Equal(t, testConfig().Window, s.Window())
	assert.False(t, s.Dragging())
}

func TestScanner_Signal(t *testing.T) {
	s := New(testConfig())
	assert.Equal(t, 0.0, s.Signal())

	s.window = entity.Rect{X: 280, Y: 180, Width: 40, Height: 40}
	assert.InDelta(t, 0.25, s.Signal(), 1e-9)

	s.window = entity.Rect{X: 290, Y: 190, Width: 80, Height: 60}
	assert.InDelta(t, 1.0, s.Signal(), 1e-9)

	empty := New(Config{View: entity.Rect{Width: 10, Height: 10}})
	assert.Equal(t, 0.0, empty.Signal())
}
