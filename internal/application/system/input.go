package system

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/clinicquest/internal/infrastructure/config"
)

// Action is a logical input, bound to one or more keys by the KeyMap
type Action int

const (
	ActionUp Action = iota
	ActionDown
	ActionLeft
	ActionRight
	ActionInteract
	ActionConfirm
	ActionMenu
	ActionInventory
	ActionLog
	ActionSystem
	ActionExit
	ActionDrop
	ActionSlot1
	ActionSlot2
	ActionSlot3
	ActionSlot4
	ActionSlot5
	ActionSlot6
	ActionSlot7
	ActionSlot8
	ActionSlot9

	actionCount
)

var actionNames = [actionCount]string{
	ActionUp:        "up",
	ActionDown:      "down",
	ActionLeft:      "left",
	ActionRight:     "right",
	ActionInteract:  "interact",
	ActionConfirm:   "confirm",
	ActionMenu:      "menu",
	ActionInventory: "inventory",
	ActionLog:       "log",
	ActionSystem:    "system",
	ActionExit:      "exit",
	ActionDrop:      "drop",
	ActionSlot1:     "slot1",
	ActionSlot2:     "slot2",
	ActionSlot3:     "slot3",
	ActionSlot4:     "slot4",
	ActionSlot5:     "slot5",
	ActionSlot6:     "slot6",
	ActionSlot7:     "slot7",
	ActionSlot8:     "slot8",
	ActionSlot9:     "slot9",
}

// String returns the config name of the action
func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return "unknown"
	}
	return actionNames[a]
}

// ParseAction converts a config name into an Action
func ParseAction(name string) (Action, error) {
	for a, n := range actionNames {
		if n == name {
			return Action(a), nil
		}
	}
	return 0, fmt.Errorf("unknown action %q", name)
}

// SlotActions lists the slot-select actions, slot 0 first
var SlotActions = []Action{
	ActionSlot1, ActionSlot2, ActionSlot3, ActionSlot4, ActionSlot5,
	ActionSlot6, ActionSlot7, ActionSlot8, ActionSlot9,
}

// Frame is the physical input state of one tick
type Frame struct {
	Held        []Action
	PointerX    int
	PointerY    int
	PointerDown bool
}

// Snapshot is the per-tick input view consumed by the scene handlers.
//
// Consume clears a held action and latches it until the key is released, so
// one-shot actions (Enter, slot keys, ...) fire once per physical press.
type Snapshot struct {
	held    [actionCount]bool
	latched [actionCount]bool

	PointerX    int
	PointerY    int
	PointerDown bool
}

// NewSnapshot creates a snapshot with nothing held
func NewSnapshot() *Snapshot {
	return &Snapshot{}
}

// Press marks the action held unless it was consumed and not yet released
func (s *Snapshot) Press(a Action) {
	if a < 0 || a >= actionCount || s.latched[a] {
		return
	}
	s.held[a] = true
}

// Release marks the action released and clears its latch
func (s *Snapshot) Release(a Action) {
	if a < 0 || a >= actionCount {
		return
	}
	s.held[a] = false
	s.latched[a] = false
}

// IsHeld reports whether the action is currently held
func (s *Snapshot) IsHeld(a Action) bool {
	if a < 0 || a >= actionCount {
		return false
	}
	return s.held[a]
}

// Consume returns whether the action was held and clears it until release
func (s *Snapshot) Consume(a Action) bool {
	if !s.IsHeld(a) {
		return false
	}
	s.held[a] = false
	s.latched[a] = true
	return true
}

// Apply updates the snapshot from a physical frame
func (s *Snapshot) Apply(f Frame) {
	var down [actionCount]bool
	for _, a := range f.Held {
		if a >= 0 && a < actionCount {
			down[a] = true
		}
	}
	for a := Action(0); a < actionCount; a++ {
		if down[a] {
			s.Press(a)
		} else {
			s.Release(a)
		}
	}
	s.PointerX = f.PointerX
	s.PointerY = f.PointerY
	s.PointerDown = f.PointerDown
}

// Axis returns the -1/0/1 direction from two opposing actions
func (s *Snapshot) Axis(neg, pos Action) float64 {
	v := 0.0
	if s.IsHeld(neg) {
		v--
	}
	if s.IsHeld(pos) {
		v++
	}
	return v
}

// KeyMap binds actions to keys
type KeyMap struct {
	bindings [actionCount][]ebiten.Key
}

// DefaultKeyMap returns the stock bindings
func DefaultKeyMap() *KeyMap {
	km := &KeyMap{}
	km.bindings[ActionUp] = []ebiten.Key{ebiten.KeyArrowUp}
	km.bindings[ActionDown] = []ebiten.Key{ebiten.KeyArrowDown}
	km.bindings[ActionLeft] = []ebiten.Key{ebiten.KeyArrowLeft}
	km.bindings[ActionRight] = []ebiten.Key{ebiten.KeyArrowRight}
	km.bindings[ActionInteract] = []ebiten.Key{ebiten.KeySpace}
	km.bindings[ActionConfirm] = []ebiten.Key{ebiten.KeyEnter}
	km.bindings[ActionMenu] = []ebiten.Key{ebiten.KeyEscape}
	km.bindings[ActionInventory] = []ebiten.Key{ebiten.KeyI}
	km.bindings[ActionLog] = []ebiten.Key{ebiten.KeyL}
	km.bindings[ActionSystem] = []ebiten.Key{ebiten.KeyS}
	km.bindings[ActionExit] = []ebiten.Key{ebiten.KeyX}
	km.bindings[ActionDrop] = []ebiten.Key{ebiten.KeyD}
	digits := []ebiten.Key{
		ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
		ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
		ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
	}
	for i, a := range SlotActions {
		km.bindings[a] = []ebiten.Key{digits[i]}
	}
	return km
}

// keysByName indexes ebiten keys by their String() name
var keysByName = func() map[string]ebiten.Key {
	m := make(map[string]ebiten.Key)
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		m[k.String()] = k
	}
	return m
}()

// ParseKey converts an ebiten key name ("Space", "ArrowUp", "Digit1", "I") into a key
func ParseKey(name string) (ebiten.Key, error) {
	if k, ok := keysByName[name]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("unknown key %q", name)
}

// NewKeyMap builds a key map from config. Actions missing from the config keep
// their default bindings; unknown action or key names are errors.
func NewKeyMap(cfg *config.KeymapConfig) (*KeyMap, error) {
	km := DefaultKeyMap()
	if cfg == nil {
		return km, nil
	}

	for name, keyNames := range cfg.Bindings {
		action, err := ParseAction(name)
		if err != nil {
			return nil, fmt.Errorf("keymap: %w", err)
		}
		keys := make([]ebiten.Key, 0, len(keyNames))
		for _, kn := range keyNames {
			k, err := ParseKey(kn)
			if err != nil {
				return nil, fmt.Errorf("keymap %s: %w", name, err)
			}
			keys = append(keys, k)
		}
		km.bindings[action] = keys
	}
	return km, nil
}

// Keys returns the keys bound to an action
func (km *KeyMap) Keys(a Action) []ebiten.Key {
	if a < 0 || a >= actionCount {
		return nil
	}
	return km.bindings[a]
}

// Describe returns a short label of the action's keys for HUD text, e.g. "Space" or "I/Tab"
func (km *KeyMap) Describe(a Action) string {
	keys := km.Keys(a)
	if len(keys) == 0 {
		return "-"
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = strings.TrimPrefix(k.String(), "Digit")
	}
	return strings.Join(names, "/")
}

// Poller reads ebiten keyboard and mouse state through a key map
type Poller struct {
	keymap *KeyMap
}

// NewPoller creates a poller for the given key map
func NewPoller(km *KeyMap) *Poller {
	return &Poller{keymap: km}
}

// Poll returns the current physical input frame
func (p *Poller) Poll() Frame {
	var f Frame
	for a := Action(0); a < actionCount; a++ {
		for _, k := range p.keymap.bindings[a] {
			if ebiten.IsKeyPressed(k) {
				f.Held = append(f.Held, a)
				break
			}
		}
	}
	sort.Slice(f.Held, func(i, j int) bool { return f.Held[i] < f.Held[j] })
	f.PointerX, f.PointerY = ebiten.CursorPosition()
	f.PointerDown = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	return f
}
