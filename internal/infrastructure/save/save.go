// Package save persists the single save slot.
//
// The slot is a YAML document stored through gdata, which picks the
// platform's user data directory (or browser local storage on wasm).
package save

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/quasilyte/gdata/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/younwookim/clinicquest/internal/infrastructure/logging"
)

// Version is written into every save and checked on load
const Version = 1

const (
	saveObject   = "save"
	saveProperty = "slot1"
)

var (
	// ErrNoSave is returned by Load when nothing has been saved yet
	ErrNoSave = errors.New("no saved game")
	// ErrVersion is returned by Load for saves written by an incompatible version
	ErrVersion = errors.New("unsupported save version")
	// ErrDisabled is returned by writes in degraded mode
	ErrDisabled = errors.New("saving disabled")
)

// Store is the subset of *gdata.Manager used for the save slot
type Store interface {
	SaveObjectProp(objectKey, propKey string, data []byte) error
	LoadObjectProp(objectKey, propKey string) ([]byte, error)
	ObjectPropExists(objectKey, propKey string) bool
}

// Data is the saved game
type Data struct {
	Version        int            `yaml:"version"`
	SavedAt        time.Time      `yaml:"savedAt"`
	World          string         `yaml:"world"`
	Player         PlayerData     `yaml:"player"`
	Inventory      []string       `yaml:"inventory"` // item ids in slot order
	Items          []ItemData     `yaml:"items"`     // items lying in the world
	Journal        []JournalEntry `yaml:"journal"`
	ScansCompleted int            `yaml:"scansCompleted"`
}

type PlayerData struct {
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	Direction string  `yaml:"direction"`
}

type ItemData struct {
	ID string  `yaml:"id"`
	X  float64 `yaml:"x"`
	Y  float64 `yaml:"y"`
}

type JournalEntry struct {
	Tick uint64 `yaml:"tick"`
	Kind string `yaml:"kind"`
	Text string `yaml:"text"`
}

// Manager reads and writes the save slot. With a nil store it runs in
// degraded mode: Save reports ErrDisabled and Load reports ErrNoSave.
type Manager struct {
	store  Store
	logger *zap.Logger
}

// NewManager creates a manager over the given store (may be nil)
func NewManager(store Store, logger *zap.Logger) *Manager {
	return &Manager{store: store, logger: logging.OrNop(logger)}
}

// Open opens the gdata store for appName. On failure it logs and returns a
// degraded manager, so a missing data directory never stops the game.
func Open(appName string, logger *zap.Logger) *Manager {
	logger = logging.OrNop(logger)
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		logger.Warn("save storage unavailable, saving disabled", zap.Error(err))
		return NewManager(nil, logger)
	}
	return NewManager(m, logger)
}

// Enabled reports whether saves persist
func (m *Manager) Enabled() bool {
	return m.store != nil
}

// Exists reports whether the slot holds a save
func (m *Manager) Exists() bool {
	if m.store == nil {
		return false
	}
	return m.store.ObjectPropExists(saveObject, saveProperty)
}

// Save writes the slot, stamping version and time
func (m *Manager) Save(d *Data) error {
	if m.store == nil {
		return ErrDisabled
	}

	d.Version = Version
	if d.SavedAt.IsZero() {
		d.SavedAt = time.Now().UTC()
	}
	raw, err := yaml.Marshal(d)
	if err != nil {
		return fmt.Errorf("failed to marshal save: %w", err)
	}
	if err := m.store.SaveObjectProp(saveObject, saveProperty, raw); err != nil {
		return fmt.Errorf("failed to write save: %w", err)
	}

	m.logger.Info("game saved",
		zap.String("world", d.World),
		zap.Int("inventory", len(d.Inventory)),
		zap.Int("bytes", len(raw)))
	return nil
}

// Load reads the slot
func (m *Manager) Load() (*Data, error) {
	if !m.Exists() {
		return nil, ErrNoSave
	}

	raw, err := m.store.LoadObjectProp(saveObject, saveProperty)
	if err != nil {
		return nil, fmt.Errorf("failed to read save: %w", err)
	}
	var d Data
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("failed to parse save: %w", err)
	}
	if d.Version != Version {
		return nil, fmt.Errorf("save version %d: %w", d.Version, ErrVersion)
	}
	return &d, nil
}

// Snapshot returns the raw slot contents, or nil when the slot is empty or unreadable
func (m *Manager) Snapshot() []byte {
	if !m.Exists() {
		return nil
	}
	raw, err := m.store.LoadObjectProp(saveObject, saveProperty)
	if err != nil {
		m.logger.Warn("failed to snapshot save slot", zap.Error(err))
		return nil
	}
	return raw
}

// Seed overwrites the slot with raw contents taken by Snapshot
func (m *Manager) Seed(raw []byte) error {
	if m.store == nil {
		return ErrDisabled
	}
	if err := m.store.SaveObjectProp(saveObject, saveProperty, raw); err != nil {
		return fmt.Errorf("failed to seed save: %w", err)
	}
	return nil
}

// MemStore is a Store kept in memory; replays run against one so they
// never touch the player's real slot
type MemStore struct {
	mu    sync.Mutex
	props map[string][]byte
}

// NewMemStore creates an empty in-memory store
func NewMemStore() *MemStore {
	return &MemStore{props: make(map[string][]byte)}
}

func memKey(objectKey, propKey string) string {
	return objectKey + "/" + propKey
}

func (s *MemStore) SaveObjectProp(objectKey, propKey string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.props[memKey(objectKey, propKey)] = append([]byte(nil), data...)
	return nil
}

func (s *MemStore) LoadObjectProp(objectKey, propKey string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.props[memKey(objectKey, propKey)]
	if !ok {
		return nil, fmt.Errorf("%s: not found", memKey(objectKey, propKey))
	}
	return append([]byte(nil), data...), nil
}

func (s *MemStore) ObjectPropExists(objectKey, propKey string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.props[memKey(objectKey, propKey)]
	return ok
}
