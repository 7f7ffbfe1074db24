// Package state implements the scene state machine.
//
// The machine tracks the current and previous scene plus the player position
// saved when leaving the overworld, so that returning from the main menu or a
// minigame puts the player back exactly where they were.
package state

import (
	"errors"
	"fmt"

	"github.com/younwookim/clinicquest/internal/application/scene"
	"github.com/younwookim/clinicquest/internal/domain/entity"
)

var (
	// ErrTransitionNotAllowed is returned when no rule leads from the current scene to the target
	ErrTransitionNotAllowed = errors.New("scene transition not allowed")
	// ErrUnknownScene is returned for targets outside the scene enumeration
	ErrUnknownScene = errors.New("unknown scene")
)

// SceneState is the state machine's data
type SceneState struct {
	Current  scene.ID
	Previous scene.ID

	SavedPlayerPosition entity.Point
	HasSavedPosition    bool
	GameStarted         bool
}

// transitions lists the allowed targets per scene.
// Escape in the overworld opens System; Escape anywhere else aborts to MainMenu.
var transitions = map[scene.ID][]scene.ID{
	scene.MainMenu:     {scene.Overworld, scene.MainMenu},
	scene.Overworld:    {scene.System, scene.MiniGame, scene.Inventory, scene.AdventureLog, scene.MainMenu},
	scene.System:       {scene.Overworld, scene.MainMenu},
	scene.Inventory:    {scene.Overworld, scene.MainMenu},
	scene.AdventureLog: {scene.Overworld, scene.MainMenu},
	scene.MiniGame:     {scene.Overworld, scene.MainMenu},
}

// TransitionFunc observes a completed transition
type TransitionFunc func(from, to scene.ID)

// Machine is the scene state machine. Initial state is MainMenu.
type Machine struct {
	st           SceneState
	onTransition TransitionFunc
}

// NewMachine creates a machine in the main menu
func NewMachine() *Machine {
	return &Machine{
		st: SceneState{
			Current:  scene.MainMenu,
			Previous: scene.MainMenu,
		},
	}
}

// OnTransition registers a callback run after every successful transition
func (m *Machine) OnTransition(fn TransitionFunc) {
	m.onTransition = fn
}

// State returns a copy of the machine's data
func (m *Machine) State() SceneState {
	return m.st
}

// Current returns the active scene
func (m *Machine) Current() scene.ID {
	return m.st.Current
}

// Previous returns the scene the current one was entered from
func (m *Machine) Previous() scene.ID {
	return m.st.Previous
}

// GameStarted reports whether the overworld has been entered at least once
func (m *Machine) GameStarted() bool {
	return m.st.GameStarted
}

// CanTransition reports whether a rule leads from the current scene to the target
func (m *Machine) CanTransition(to scene.ID) bool {
	for _, allowed := range transitions[m.st.Current] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Transition switches to the target scene. player may be nil only when the
// transition neither leaves nor re-enters the overworld.
//
// Leaving the overworld saves the player position. Entering the overworld
// from a minigame, or from the main menu after the game has started, restores it.
// On error the state is unchanged.
func (m *Machine) Transition(to scene.ID, player *entity.Player) error {
	from := m.st.Current
	if !to.Valid() {
		return fmt.Errorf("transition %s -> %d: %w", from, int(to), ErrUnknownScene)
	}
	if !m.CanTransition(to) {
		return fmt.Errorf("transition %s -> %s: %w", from, to, ErrTransitionNotAllowed)
	}

	if from == scene.Overworld && to != scene.Overworld && player != nil {
		m.st.SavedPlayerPosition = player.Position()
		m.st.HasSavedPosition = true
	}

	if to == scene.Overworld && player != nil {
		switch from {
		case scene.MainMenu:
			if m.st.GameStarted {
				m.restore(player)
			}
			m.st.GameStarted = true
		case scene.MiniGame:
			m.restore(player)
		}
	}

	m.st.Previous = from
	m.st.Current = to

	if m.onTransition != nil {
		m.onTransition(from, to)
	}
	return nil
}

func (m *Machine) restore(player *entity.Player) {
	if !m.st.HasSavedPosition {
		return
	}
	player.SetPosition(m.st.SavedPlayerPosition)
}

// SetSavedPosition overrides the saved position, e.g. when loading a save.
// The game counts as started afterwards so the next Start restores it.
func (m *Machine) SetSavedPosition(p entity.Point) {
	m.st.SavedPlayerPosition = p
	m.st.HasSavedPosition = true
	m.st.GameStarted = true
}

// Reset returns to the initial main menu state, forgetting any saved position
func (m *Machine) Reset() {
	m.st = SceneState{Current: scene.MainMenu, Previous: scene.MainMenu}
}
