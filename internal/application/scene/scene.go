// Package scene enumerates the top-level UI modes of the game.
//
// Exactly one scene is active at a time. The set is closed: every value the
// state machine can reach is one of the constants below, and handlers switch
// over them explicitly.
package scene

// ID identifies a scene
type ID int

const (
	MainMenu ID = iota
	Overworld
	Inventory
	AdventureLog
	MiniGame
	System
)

// All lists every scene in declaration order
var All = []ID{MainMenu, Overworld, Inventory, AdventureLog, MiniGame, System}

// String returns the string representation of the scene
func (id ID) String() string {
	switch id {
	case MainMenu:
		return "MainMenu"
	case Overworld:
		return "Overworld"
	case Inventory:
		return "Inventory"
	case AdventureLog:
		return "AdventureLog"
	case MiniGame:
		return "MiniGame"
	case System:
		return "System"
	default:
		return "Unknown"
	}
}

// Valid reports whether id is one of the enumerated scenes
func (id ID) Valid() bool {
	for _, known := range All {
		if id == known {
			return true
		}
	}
	return false
}
