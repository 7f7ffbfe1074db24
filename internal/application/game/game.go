// Package game provides the ebiten loop driver: input in, session tick, draw.
package game

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/younwookim/clinicquest/internal/application/render"
	"github.com/younwookim/clinicquest/internal/application/replay"
	"github.com/younwookim/clinicquest/internal/application/session"
	"github.com/younwookim/clinicquest/internal/application/system"
	"github.com/younwookim/clinicquest/internal/infrastructure/logging"
)

// InputSource yields the physical input of one tick
type InputSource interface {
	Poll() system.Frame
}

// Game implements ebiten.Game on top of a session.
type Game struct {
	input    InputSource
	snapshot *system.Snapshot
	session  *session.Session
	renderer *render.Renderer
	logger   *zap.Logger
	screenW  int
	screenH  int

	recorder   *replay.Recorder
	recordTo   string
	checkpoint func() bool
}

// New creates a Game. renderer may be nil for headless runs.
func New(input InputSource, sess *session.Session, renderer *render.Renderer, screenW, screenH int, logger *zap.Logger) *Game {
	logger = logging.OrNop(logger)
	return &Game{
		input:    input,
		snapshot: system.NewSnapshot(),
		session:  sess,
		renderer: renderer,
		logger:   logger,
		screenW:  screenW,
		screenH:  screenH,
		checkpoint: func() bool {
			return inpututil.IsKeyJustPressed(ebiten.KeyF5)
		},
	}
}

// Record enables input recording; F5 writes the recording so far to filename
func (g *Game) Record(r *replay.Recorder, filename string) {
	g.recorder = r
	g.recordTo = filename
}

// Update polls input and advances the session one tick.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	frame := g.input.Poll()

	if g.recorder != nil && g.recorder.IsRecording() {
		g.recorder.Record(frame)
		if g.checkpoint() {
			if err := g.SaveRecording(); err != nil {
				g.logger.Warn("failed to save recording", zap.Error(err))
			}
		}
	}

	g.snapshot.Apply(frame)
	g.session.Update(g.snapshot)
	return nil
}

// Draw renders the session.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.renderer == nil {
		return
	}
	g.renderer.Draw(screen, g.session)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// Session returns the driven session
func (g *Game) Session() *session.Session {
	return g.session
}

// SaveRecording writes the recorded input to the configured file
func (g *Game) SaveRecording() error {
	if g.recorder == nil {
		return nil
	}
	filename := g.recordTo
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	if err := g.recorder.Save(filename); err != nil {
		return fmt.Errorf("recording %s: %w", filename, err)
	}
	g.logger.Info("recording saved",
		zap.String("file", filename),
		zap.String("session", g.recorder.SessionID()),
		zap.Int("frames", g.recorder.FrameCount()))
	return nil
}
