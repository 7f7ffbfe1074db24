package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/younwookim/clinicquest/internal/application/game"
	"github.com/younwookim/clinicquest/internal/application/replay"
	"github.com/younwookim/clinicquest/internal/application/session"
	"github.com/younwookim/clinicquest/internal/infrastructure/config"
)

// runReplay plays a recording against a fresh session without a window.
// Saves go to an in-memory slot seeded from the recording, so a replay
// never touches the player's save slot.
func runReplay(filename string, loader *config.Loader, logger *zap.Logger) (session.Summary, error) {
	data, err := replay.LoadReplay(filename)
	if err != nil {
		return session.Summary{}, err
	}

	settings, err := loader.LoadSettings()
	if err != nil {
		return session.Summary{}, err
	}
	worldCfg, err := loader.LoadWorld(data.World)
	if err != nil {
		return session.Summary{}, fmt.Errorf("replay world: %w", err)
	}

	saves, err := data.Saves(logger)
	if err != nil {
		return session.Summary{}, err
	}
	sess, err := session.New(settings, worldCfg, session.Deps{Logger: logger, Saves: saves})
	if err != nil {
		return session.Summary{}, err
	}

	replayer := replay.NewReplayer(*data)
	g := game.New(replayer, sess, nil, settings.Display.ScreenWidth, settings.Display.ScreenHeight, logger)
	header := replayer.Header()
	logger.Info("replaying",
		zap.String("file", filename),
		zap.String("session", header.SessionID),
		zap.String("world", header.World),
		zap.Bool("saveSlot", len(header.SaveSlot) > 0),
		zap.Int("frames", replayer.TotalFrames()))

	for !replayer.Done() {
		if err := g.Update(); err != nil {
			return session.Summary{}, fmt.Errorf("frame %d: %w", replayer.CurrentFrame(), err)
		}
	}
	return sess.Summary(), nil
}

func logSummary(logger *zap.Logger, s session.Summary) {
	logger.Info("replay finished",
		zap.String("scene", s.Scene),
		zap.Uint64("tick", s.Tick),
		zap.Float64("x", s.Player.X),
		zap.Float64("y", s.Player.Y),
		zap.Strings("inventory", s.Inventory),
		zap.Int("journal", s.JournalEntries),
		zap.Int("scans", s.ScansCompleted))
}
