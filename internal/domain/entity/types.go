package entity

// Kind tags which variant an Entity is
type Kind int

const (
	KindProp Kind = iota
	KindItem
	KindNPC
	KindTrigger
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindProp:
		return "prop"
	case KindItem:
		return "item"
	case KindNPC:
		return "npc"
	case KindTrigger:
		return "trigger"
	default:
		return "unknown"
	}
}

// ParseKind converts a config string into a Kind
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "prop":
		return KindProp, true
	case "item":
		return KindItem, true
	case "npc":
		return KindNPC, true
	case "trigger":
		return KindTrigger, true
	default:
		return KindProp, false
	}
}

// Capability is a behavior an entity may support
type Capability uint8

const (
	Drawable Capability = 1 << iota
	Interactable
	Movable
)

// SpriteRegion is a sub-rectangle of a sprite sheet
type SpriteRegion struct {
	Sheet  string
	X, Y   int
	Width  int
	Height int
}

// ItemData is the payload of a KindItem entity
type ItemData struct {
	Name        string
	Description string
}

// NPCData is the payload of a KindNPC entity
type NPCData struct {
	InteractionText string
}

// TriggerData is the payload of a KindTrigger entity
type TriggerData struct {
	MiniGame string // minigame config key, e.g. "medscan"
	Prompt   string
}

// Entity is any positioned, sized game object in the world.
// Kind selects which payload pointer is set.
type Entity struct {
	Rect
	ID     string
	Kind   Kind
	Label  string
	Sprite *SpriteRegion

	Item    *ItemData
	NPC     *NPCData
	Trigger *TriggerData

	PickedUp bool
}

// Has reports whether the entity supports the capability.
// Picked-up items are neither drawn nor interactable.
func (e *Entity) Has(c Capability) bool {
	return e.capabilities()&c != 0
}

func (e *Entity) capabilities() Capability {
	switch e.Kind {
	case KindItem:
		if e.PickedUp {
			return 0
		}
		return Drawable | Interactable
	case KindNPC, KindTrigger:
		return Drawable | Interactable
	case KindProp:
		return Drawable
	default:
		return 0
	}
}

// DisplayName returns the label, falling back to item name and ID
func (e *Entity) DisplayName() string {
	if e.Label != "" {
		return e.Label
	}
	if e.Item != nil && e.Item.Name != "" {
		return e.Item.Name
	}
	return e.ID
}
