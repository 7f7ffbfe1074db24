// Package scan models the MRI scanner minigame.
//
// The player moves a scan window over a body view, with the arrow keys or by
// dragging it with the pointer. Holding the scan button while the window
// overlaps the hidden target raises progress until it reaches MaxProgress.
package scan

import (
	"math"

	"github.com/younwookim/clinicquest/internal/domain/entity"
)

// MaxProgress is the progress value of a finished scan
const MaxProgress = 100.0

// Config describes one scanner layout in screen pixels
type Config struct {
	Name      string
	View      entity.Rect // scannable area on screen
	Window    entity.Rect // starting scan window
	Target    entity.Rect // hidden finding
	Rate      float64     // progress per tick while overlapping
	MoveSpeed float64     // window pixels per tick from arrow keys
}

// Scanner is the minigame state
type Scanner struct {
	cfg      Config
	window   entity.Rect
	progress float64

	dragging    bool
	dragOffset  entity.Point
	pointerDown bool
}

// New creates a scanner with the window at its starting position
func New(cfg Config) *Scanner {
	s := &Scanner{cfg: cfg}
	s.Reset()
	return s
}

// Reset puts the window back and clears progress
func (s *Scanner) Reset() {
	s.window = s.cfg.Window.ClampInto(s.cfg.View)
	s.progress = 0
	s.dragging = false
	s.pointerDown = false
}

// Name returns the configured scanner name
func (s *Scanner) Name() string {
	return s.cfg.Name
}

// View returns the scannable area
func (s *Scanner) View() entity.Rect {
	return s.cfg.View
}

// Window returns the current scan window
func (s *Scanner) Window() entity.Rect {
	return s.window
}

// Target returns the hidden target. Only revealed by the renderer once complete.
func (s *Scanner) Target() entity.Rect {
	return s.cfg.Target
}

// Progress returns the scan progress in [0, MaxProgress]
func (s *Scanner) Progress() float64 {
	return s.progress
}

// Complete reports whether the scan has finished
func (s *Scanner) Complete() bool {
	return s.progress >= MaxProgress
}

// Dragging reports whether the pointer currently holds the window
func (s *Scanner) Dragging() bool {
	return s.dragging
}

// Move shifts the window by (dx, dy) steps of MoveSpeed, staying inside the view
func (s *Scanner) Move(dx, dy float64) {
	if dx == 0 && dy == 0 {
		return
	}
	s.window.X += dx * s.cfg.MoveSpeed
	s.window.Y += dy * s.cfg.MoveSpeed
	s.window = s.window.ClampInto(s.cfg.View)
}

// Pointer feeds the current pointer state. A press inside the window starts a
// drag, movement while pressed drags, and release ends it.
func (s *Scanner) Pointer(x, y int, down bool) {
	px, py := float64(x), float64(y)

	switch {
	case down && !s.pointerDown:
		if s.window.Contains(px, py) {
			s.dragging = true
			s.dragOffset = entity.Point{X: px - s.window.X, Y: py - s.window.Y}
		}
	case down && s.dragging:
		s.window.X = px - s.dragOffset.X
		s.window.Y = py - s.dragOffset.Y
		s.window = s.window.ClampInto(s.cfg.View)
	case !down:
		s.dragging = false
	}

	s.pointerDown = down
}

// Signal returns how much of the target the window covers, in [0, 1]
func (s *Scanner) Signal() float64 {
	area := s.cfg.Target.Width * s.cfg.Target.Height
	if area <= 0 {
		return 0
	}
	return entity.IntersectionArea(s.window, s.cfg.Target) / area
}

// Scan advances progress for one tick. Progress only rises while holding and
// overlapping the target. Returns true on the tick the scan completes.
func (s *Scanner) Scan(holding bool) bool {
	if s.Complete() || !holding {
		return false
	}
	if !entity.Overlaps(s.window, s.cfg.Target) {
		return false
	}
	s.progress = math.Min(MaxProgress, s.progress+s.cfg.Rate)
	return s.Complete()
}
