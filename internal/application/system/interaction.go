package system

import (
	"errors"
	"fmt"
	"strings"

	"github.com/younwookim/clinicquest/internal/application/scene"
	"github.com/younwookim/clinicquest/internal/domain/entity"
	"github.com/younwookim/clinicquest/internal/infrastructure/config"
)

// InteractionKind says what an interaction did
type InteractionKind int

const (
	InteractionNone InteractionKind = iota
	InteractionPickup
	InteractionInventoryFull
	InteractionTalk
	InteractionTrigger
	InteractionDrop
)

// String returns the string representation of the interaction kind
func (k InteractionKind) String() string {
	switch k {
	case InteractionNone:
		return "none"
	case InteractionPickup:
		return "pickup"
	case InteractionInventoryFull:
		return "inventory_full"
	case InteractionTalk:
		return "talk"
	case InteractionTrigger:
		return "trigger"
	case InteractionDrop:
		return "drop"
	default:
		return "unknown"
	}
}

// MessageKind separates system notices from NPC dialogue and trigger prompts.
// Moving clears only MessageDialogue; notices (pickups, saves, scan
// results) stay up until their timer runs out. A MessagePrompt lasts while
// the player stands on its trigger.
type MessageKind int

const (
	MessageNotice MessageKind = iota
	MessageDialogue
	MessagePrompt
)

// InteractionResult is the outcome of one tick's interaction check.
// It lives for the tick only; the session copies the message into the HUD timer.
type InteractionResult struct {
	Kind        InteractionKind
	Message     string
	MessageKind MessageKind
	NewScene    scene.ID
	HasScene    bool
	Subject     *entity.Entity
}

// InteractionSystem resolves Space presses against overlapping entities
type InteractionSystem struct {
	messages config.MessagesConfig
}

// NewInteractionSystem creates an interaction system using the given HUD texts
func NewInteractionSystem(messages config.MessagesConfig) *InteractionSystem {
	return &InteractionSystem{messages: messages}
}

// Resolve checks the first interactable entity overlapping the player, in
// world order, while Interact is held. The Interact action is consumed when
// something happens so that one press acts once.
func (s *InteractionSystem) Resolve(world *entity.World, player *entity.Player, inv *entity.Inventory, input *Snapshot) InteractionResult {
	if !input.IsHeld(ActionInteract) {
		return InteractionResult{}
	}

	target := s.touching(world, player)
	if target == nil {
		return InteractionResult{}
	}
	input.Consume(ActionInteract)

	switch target.Kind {
	case entity.KindItem:
		return s.pickup(world, target, inv)
	case entity.KindNPC:
		return InteractionResult{
			Kind:        InteractionTalk,
			Message:     target.NPC.InteractionText,
			MessageKind: MessageDialogue,
			Subject:     target,
		}
	case entity.KindTrigger:
		return InteractionResult{
			Kind:     InteractionTrigger,
			Message:  target.Trigger.Prompt,
			NewScene: scene.MiniGame,
			HasScene: true,
			Subject:  target,
		}
	default:
		return InteractionResult{}
	}
}

// Prompt returns the prompt of the trigger the player stands on. Only the
// entity Resolve would pick counts, so the prompt always names what Space does.
func (s *InteractionSystem) Prompt(world *entity.World, player *entity.Player) (string, bool) {
	target := s.touching(world, player)
	if target == nil || target.Kind != entity.KindTrigger || target.Trigger.Prompt == "" {
		return "", false
	}
	return target.Trigger.Prompt, true
}

// touching returns the first interactable entity overlapping the player, or nil
func (s *InteractionSystem) touching(world *entity.World, player *entity.Player) *entity.Entity {
	for _, e := range world.Entities {
		if !e.Has(entity.Interactable) {
			continue
		}
		if !entity.Overlaps(player.Rect, e.Rect) {
			continue
		}
		if (e.Kind == entity.KindNPC && e.NPC == nil) || (e.Kind == entity.KindTrigger && e.Trigger == nil) {
			continue
		}
		return e
	}
	return nil
}

func (s *InteractionSystem) pickup(world *entity.World, item *entity.Entity, inv *entity.Inventory) InteractionResult {
	if err := inv.Add(item); err != nil {
		if !errors.Is(err, entity.ErrInventoryFull) {
			return InteractionResult{}
		}
		return InteractionResult{
			Kind:        InteractionInventoryFull,
			Message:     FormatMessage(s.messages.InventoryFull, item.DisplayName()),
			MessageKind: MessageNotice,
			Subject:     item,
		}
	}

	item.PickedUp = true
	world.Remove(item.ID)
	return InteractionResult{
		Kind:        InteractionPickup,
		Message:     FormatMessage(s.messages.Pickup, item.DisplayName()),
		MessageKind: MessageNotice,
		Subject:     item,
	}
}

// Drop puts the inventory item in the given slot back into the world at pos
func (s *InteractionSystem) Drop(world *entity.World, inv *entity.Inventory, slot int, pos entity.Point) (InteractionResult, error) {
	item, err := inv.Remove(slot)
	if err != nil {
		return InteractionResult{}, fmt.Errorf("drop: %w", err)
	}

	item.PickedUp = false
	item.X = pos.X
	item.Y = pos.Y
	world.Add(item)
	return InteractionResult{
		Kind:        InteractionDrop,
		Message:     FormatMessage(s.messages.Drop, item.DisplayName()),
		MessageKind: MessageNotice,
		Subject:     item,
	}, nil
}

// FormatMessage fills %s in a HUD template with the name when the template has one
func FormatMessage(template, name string) string {
	if strings.Contains(template, "%s") {
		return fmt.Sprintf(template, name)
	}
	return template
}
