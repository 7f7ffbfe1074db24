// Package assets loads sprite sheets in the background.
//
// Sheets are decoded off the game loop; until a sheet is ready, Image
// reports it missing and the renderer skips the draw call for that tick.
package assets

import (
	"context"
	"fmt"
	"image"
	_ "image/png" // Register PNG decoder
	"io/fs"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/younwookim/clinicquest/internal/infrastructure/logging"
)

// Atlas caches decoded sprite sheets by path
type Atlas struct {
	mu      sync.Mutex
	decoded map[string]image.Image
	images  map[string]*ebiten.Image
	failed  map[string]error
	done    chan struct{}
	logger  *zap.Logger
}

// NewAtlas creates an empty atlas
func NewAtlas(logger *zap.Logger) *Atlas {
	logger = logging.OrNop(logger)
	done := make(chan struct{})
	close(done)
	return &Atlas{
		decoded: make(map[string]image.Image),
		images:  make(map[string]*ebiten.Image),
		failed:  make(map[string]error),
		done:    done,
		logger:  logger,
	}
}

// Load starts decoding the given sheets from fsys in a goroutine and returns
// immediately. A failed sheet is logged and stays missing; it is never fatal.
func (a *Atlas) Load(ctx context.Context, fsys fs.FS, sheets []string) {
	done := make(chan struct{})
	a.mu.Lock()
	a.done = done
	a.mu.Unlock()

	go func() {
		defer close(done)
		for _, name := range sheets {
			if ctx.Err() != nil {
				a.logger.Debug("sprite loading cancelled", zap.Int("remaining", len(sheets)))
				return
			}
			img, err := decode(fsys, name)
			a.mu.Lock()
			if err != nil {
				a.failed[name] = err
			} else {
				a.decoded[name] = img
			}
			a.mu.Unlock()

			if err != nil {
				a.logger.Warn("failed to load sprite sheet", zap.String("sheet", name), zap.Error(err))
				continue
			}
			a.logger.Debug("sprite sheet loaded", zap.String("sheet", name),
				zap.Int("width", img.Bounds().Dx()), zap.Int("height", img.Bounds().Dy()))
		}
	}()
}

func decode(fsys fs.FS, name string) (image.Image, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", name, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", name, err)
	}
	return img, nil
}

// Wait blocks until the current Load finishes or ctx is done
func (a *Atlas) Wait(ctx context.Context) error {
	a.mu.Lock()
	done := a.done
	a.mu.Unlock()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Ready reports whether the sheet has been decoded
func (a *Atlas) Ready(name string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	_, ok := a.decoded[name]
	return ok
}

// Err returns the load error of a sheet, or nil
func (a *Atlas) Err(name string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.failed[name]
}

// Image returns the sheet as an ebiten image, or false while it is not loaded
func (a *Atlas) Image(name string) (*ebiten.Image, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if img, ok := a.images[name]; ok {
		return img, true
	}
	src, ok := a.decoded[name]
	if !ok {
		return nil, false
	}
	img := ebiten.NewImageFromImage(src)
	a.images[name] = img
	return img, true
}

// Region returns a sub-image of a loaded sheet
func (a *Atlas) Region(name string, r image.Rectangle) (*ebiten.Image, bool) {
	sheet, ok := a.Image(name)
	if !ok {
		return nil, false
	}
	if !r.In(sheet.Bounds()) || r.Empty() {
		return nil, false
	}
	return sheet.SubImage(r).(*ebiten.Image), true
}
