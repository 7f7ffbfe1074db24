package main

import (
	"context"

	"go.uber.org/zap"

	"github.com/younwookim/clinicquest/internal/infrastructure/assets"
)

// reportSprites waits for the background sprite load and logs how it went
func reportSprites(ctx context.Context, atlas *assets.Atlas, sheets []string, logger *zap.Logger) (loaded, failed int) {
	if err := atlas.Wait(ctx); err != nil {
		return 0, 0
	}
	for _, name := range sheets {
		switch {
		case atlas.Ready(name):
			loaded++
		case atlas.Err(name) != nil:
			failed++
		}
	}
	logger.Info("sprite sheets loaded", zap.Int("loaded", loaded), zap.Int("failed", failed))
	return loaded, failed
}
