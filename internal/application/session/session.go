// Package session holds the explicit game context.
//
// A Session owns every piece of mutable game state (scene machine, world,
// player, inventory, journal, scanners, HUD message and menu cursors) and
// advances it one tick at a time from an input snapshot. Handlers receive
// the session instead of reaching for globals.
package session

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/younwookim/clinicquest/internal/application/scene"
	"github.com/younwookim/clinicquest/internal/application/state"
	"github.com/younwookim/clinicquest/internal/application/system"
	"github.com/younwookim/clinicquest/internal/domain/entity"
	"github.com/younwookim/clinicquest/internal/domain/scan"
	"github.com/younwookim/clinicquest/internal/infrastructure/config"
	"github.com/younwookim/clinicquest/internal/infrastructure/logging"
	"github.com/younwookim/clinicquest/internal/infrastructure/metrics"
	"github.com/younwookim/clinicquest/internal/infrastructure/save"
)

// Deps are the session's collaborators. Every field may be nil.
type Deps struct {
	Logger  *zap.Logger
	Metrics *metrics.Metrics
	Saves   *save.Manager
}

// Message is the HUD message with its remaining lifetime
type Message struct {
	Text      string
	Kind      system.MessageKind
	TicksLeft int
}

// Session is the game context passed to every handler
type Session struct {
	settings *config.SettingsConfig
	worldCfg *config.WorldConfig

	logger  *zap.Logger
	metrics *metrics.Metrics
	saves   *save.Manager

	machine     *state.Machine
	movement    *system.MovementSystem
	interaction *system.InteractionSystem

	world     *entity.World
	player    *entity.Player
	inventory *entity.Inventory
	journal   *entity.Journal

	scanners      map[string]*scan.Scanner
	scanner       *scan.Scanner
	activeTrigger *entity.Entity

	message      Message
	mainCursor   int
	systemCursor int
	logScroll    int

	tick           uint64
	scansCompleted int
}

// New creates a session in the main menu for the given world
func New(settings *config.SettingsConfig, worldCfg *config.WorldConfig, deps Deps) (*Session, error) {
	logger := logging.OrNop(deps.Logger)
	saves := deps.Saves
	if saves == nil {
		saves = save.NewManager(nil, logger)
	}

	world, err := system.LoadWorld(worldCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load world: %w", err)
	}

	s := &Session{
		settings:    settings,
		worldCfg:    worldCfg,
		logger:      logger,
		metrics:     deps.Metrics,
		saves:       saves,
		machine:     state.NewMachine(),
		movement:    system.NewMovementSystem(settings.Player.Animation),
		interaction: system.NewInteractionSystem(settings.Messages),
		world:       world,
		inventory:   entity.NewInventory(settings.Inventory.Capacity),
		journal:     entity.NewJournal(settings.Journal.Limit),
		scanners:    make(map[string]*scan.Scanner, len(settings.MiniGames)),
	}
	s.player = entity.NewPlayer(world.Spawn.X, world.Spawn.Y,
		settings.Player.Width, settings.Player.Height, settings.Player.Speed)
	s.movement.SetBounds(world.Bounds())

	for name, sc := range settings.MiniGames {
		s.scanners[name] = scan.New(scannerConfig(name, sc))
	}

	s.machine.OnTransition(func(from, to scene.ID) {
		s.logger.Debug("scene transition",
			zap.Stringer("from", from),
			zap.Stringer("to", to),
			zap.Uint64("tick", s.tick))
		s.metrics.Transition(from.String(), to.String())
	})
	return s, nil
}

func scannerConfig(name string, sc config.ScannerConfig) scan.Config {
	title := sc.Title
	if title == "" {
		title = name
	}
	return scan.Config{
		Name:      title,
		View:      system.RectFromConfig(sc.View),
		Window:    system.RectFromConfig(sc.Window),
		Target:    system.RectFromConfig(sc.Target),
		Rate:      sc.Rate,
		MoveSpeed: sc.MoveSpeed,
	}
}

// Update advances the session by one tick
func (s *Session) Update(in *system.Snapshot) {
	s.tick++
	s.metrics.Tick()
	s.tickMessage()

	switch current := s.machine.Current(); current {
	case scene.MainMenu:
		s.updateMainMenu(in)
	case scene.Overworld:
		s.updateOverworld(in)
	case scene.Inventory:
		s.updateInventory(in)
	case scene.AdventureLog:
		s.updateLog(in)
	case scene.MiniGame:
		s.updateMiniGame(in)
	case scene.System:
		s.updateSystemMenu(in)
	default:
		s.logger.Warn("unknown scene, skipping tick", zap.Int("scene", int(current)))
	}
}

// transition switches scene, logging a refused transition instead of failing the tick
func (s *Session) transition(to scene.ID) bool {
	if err := s.machine.Transition(to, s.player); err != nil {
		s.logger.Warn("scene transition refused", zap.Error(err))
		return false
	}
	// prompts belong to the overworld
	if s.message.Kind == system.MessagePrompt {
		s.clearMessage()
	}
	return true
}

func (s *Session) show(text string, kind system.MessageKind) {
	if text == "" {
		return
	}
	s.message = Message{Text: text, Kind: kind, TicksLeft: s.messageDuration()}
}

func (s *Session) messageDuration() int {
	if d := s.settings.Messages.DurationTicks; d > 0 {
		return d
	}
	return 1
}

func (s *Session) clearMessage() {
	s.message = Message{}
}

func (s *Session) tickMessage() {
	if s.message.TicksLeft <= 0 {
		return
	}
	s.message.TicksLeft--
	if s.message.TicksLeft == 0 {
		s.clearMessage()
	}
}

func (s *Session) record(kind entity.JournalKind, text string) {
	s.journal.Add(entity.JournalEntry{Tick: s.tick, Kind: kind, Text: text})
	s.logScroll = 0
}

// Scene returns the active scene
func (s *Session) Scene() scene.ID {
	return s.machine.Current()
}

// State returns the scene machine's data
func (s *Session) State() state.SceneState {
	return s.machine.State()
}

// Settings returns the game settings
func (s *Session) Settings() *config.SettingsConfig {
	return s.settings
}

// WorldConfig returns the config the world was built from
func (s *Session) WorldConfig() *config.WorldConfig {
	return s.worldCfg
}

// World returns the overworld entities
func (s *Session) World() *entity.World {
	return s.world
}

// Player returns the player
func (s *Session) Player() *entity.Player {
	return s.player
}

// Inventory returns the carried items
func (s *Session) Inventory() *entity.Inventory {
	return s.inventory
}

// Journal returns the adventure log
func (s *Session) Journal() *entity.Journal {
	return s.journal
}

// LogScroll returns how many entries the adventure log is scrolled back from the newest
func (s *Session) LogScroll() int {
	return s.logScroll
}

// Scanner returns the running scanner minigame, or nil outside the minigame
func (s *Session) Scanner() *scan.Scanner {
	return s.scanner
}

// ActiveTrigger returns the entity that started the running minigame, or nil
func (s *Session) ActiveTrigger() *entity.Entity {
	return s.activeTrigger
}

// Message returns the HUD message and whether one is showing
func (s *Session) Message() (Message, bool) {
	return s.message, s.message.Text != ""
}

// Tick returns the number of ticks run
func (s *Session) Tick() uint64 {
	return s.tick
}

// ScansCompleted returns how many scans were finished
func (s *Session) ScansCompleted() int {
	return s.scansCompleted
}

// Summary is a comparable digest of the session, used by replays and tests
type Summary struct {
	Scene          string
	Tick           uint64
	Player         entity.Point
	Inventory      []string
	JournalEntries int
	ScansCompleted int
}

// Summary returns the session digest
func (s *Session) Summary() Summary {
	ids := make([]string, 0, s.inventory.Len())
	for _, item := range s.inventory.Items() {
		ids = append(ids, item.ID)
	}
	return Summary{
		Scene:          s.machine.Current().String(),
		Tick:           s.tick,
		Player:         s.player.Position(),
		Inventory:      ids,
		JournalEntries: s.journal.Len(),
		ScansCompleted: s.scansCompleted,
	}
}
