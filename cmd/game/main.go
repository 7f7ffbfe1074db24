package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"os/signal"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/younwookim/clinicquest/internal/application/game"
	"github.com/younwookim/clinicquest/internal/application/render"
	"github.com/younwookim/clinicquest/internal/application/replay"
	"github.com/younwookim/clinicquest/internal/application/session"
	"github.com/younwookim/clinicquest/internal/application/system"
	"github.com/younwookim/clinicquest/internal/infrastructure/assets"
	"github.com/younwookim/clinicquest/internal/infrastructure/config"
	"github.com/younwookim/clinicquest/internal/infrastructure/logging"
	"github.com/younwookim/clinicquest/internal/infrastructure/metrics"
	"github.com/younwookim/clinicquest/internal/infrastructure/save"
)

const appName = "clinicquest"

type options struct {
	configDir   string
	record      string
	replay      string
	metricsAddr string
	verbose     bool
}

func main() {
	var opts options
	flag.StringVar(&opts.configDir, "config", "", "Load configs from a directory instead of the embedded defaults")
	flag.StringVar(&opts.record, "record", "", "Record input to file (e.g., -record run.jsonl.zst)")
	flag.StringVar(&opts.replay, "replay", "", "Replay a recording headlessly and log the final state")
	flag.StringVar(&opts.metricsAddr, "metrics-addr", "", "Serve prometheus metrics on this address (e.g., :9090)")
	flag.BoolVar(&opts.verbose, "verbose", false, "Enable debug logging")
	flag.Parse()

	logger, err := logging.New(opts.verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	loader, err := newLoader(opts.configDir)
	if err != nil {
		logger.Fatal("failed to open configs", zap.Error(err))
	}

	if opts.replay != "" {
		summary, err := runReplay(opts.replay, loader, logger)
		if err != nil {
			logger.Fatal("replay failed", zap.String("file", opts.replay), zap.Error(err))
		}
		logSummary(logger, summary)
		return
	}

	if err := run(opts, loader, logger); err != nil {
		logger.Fatal("game exited with error", zap.Error(err))
	}
}

// newLoader reads configs from dir, or from the embedded defaults when dir is empty
func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

// loadConfigs loads the base configs and the world they name
func loadConfigs(loader *config.Loader) (*config.GameConfig, *config.WorldConfig, error) {
	cfg, err := loader.LoadAll()
	if err != nil {
		return nil, nil, err
	}
	worldCfg, err := loader.LoadWorld(cfg.Settings.World)
	if err != nil {
		return nil, nil, err
	}
	return cfg, worldCfg, nil
}

func run(opts options, loader *config.Loader, logger *zap.Logger) error {
	cfg, worldCfg, err := loadConfigs(loader)
	if err != nil {
		return err
	}
	keymap, err := system.NewKeyMap(cfg.Keymap)
	if err != nil {
		return fmt.Errorf("failed to load keymap: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	m := metrics.New(appName)
	if opts.metricsAddr != "" {
		if err := m.Serve(ctx, opts.metricsAddr, logger); err != nil {
			logger.Warn("metrics disabled", zap.Error(err))
		}
	}

	sheets := worldCfg.SpriteSheets()
	atlas := assets.NewAtlas(logger)
	atlas.Load(ctx, loader.FS(), sheets)
	go reportSprites(ctx, atlas, sheets, logger)

	saves := save.Open(appName, logger)
	sess, err := session.New(cfg.Settings, worldCfg, session.Deps{
		Logger:  logger,
		Metrics: m,
		Saves:   saves,
	})
	if err != nil {
		return err
	}

	display := cfg.Settings.Display
	g := game.New(
		system.NewPoller(keymap),
		sess,
		render.New(keymap, atlas, display.ScreenWidth, display.ScreenHeight),
		display.ScreenWidth, display.ScreenHeight,
		logger,
	)
	var recorder *replay.Recorder
	if opts.record != "" {
		recorder = replay.NewRecorder(worldCfg.ID, saves.Snapshot())
		g.Record(recorder, opts.record)
		logger.Info("recording enabled",
			zap.String("file", opts.record),
			zap.String("session", recorder.SessionID()))
	}

	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle(display.Title)
	ebiten.SetTPS(display.Framerate)

	runErr := ebiten.RunGame(g)
	if recorder != nil {
		recorder.Stop()
		if err := g.SaveRecording(); err != nil {
			logger.Warn("failed to save recording", zap.Error(err))
		}
	}
	return runErr
}
