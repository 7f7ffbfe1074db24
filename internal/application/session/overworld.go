package session

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/younwookim/clinicquest/internal/application/scene"
	"github.com/younwookim/clinicquest/internal/application/system"
	"github.com/younwookim/clinicquest/internal/domain/entity"
)

func (s *Session) updateOverworld(in *system.Snapshot) {
	switch {
	case in.Consume(system.ActionMenu), in.Consume(system.ActionSystem):
		s.transition(scene.System)
		return
	case in.Consume(system.ActionInventory):
		s.transition(scene.Inventory)
		return
	case in.Consume(system.ActionLog):
		s.logScroll = 0
		s.transition(scene.AdventureLog)
		return
	}

	// moving cancels dialogue only, see system.MessageKind
	if s.movement.Update(s.player, in) && s.message.Kind == system.MessageDialogue {
		s.clearMessage()
	}

	res := s.interaction.Resolve(s.world, s.player, s.inventory, in)
	if res.Kind == system.InteractionNone {
		s.updatePrompt()
		return
	}
	s.apply(res)
}

// updatePrompt shows a trigger's prompt while the player stands on it and
// drops it once they step off
func (s *Session) updatePrompt() {
	text, ok := s.interaction.Prompt(s.world, s.player)
	switch {
	case ok && s.message.TicksLeft == 0:
		s.show(text, system.MessagePrompt)
	case !ok && s.message.Kind == system.MessagePrompt:
		s.clearMessage()
	}
}

// apply turns an interaction result into HUD, journal and scene changes
func (s *Session) apply(res system.InteractionResult) {
	if res.Kind == system.InteractionNone {
		return
	}
	s.metrics.Interaction(res.Kind.String())
	s.logger.Debug("interaction",
		zap.Stringer("kind", res.Kind),
		zap.String("entity", res.Subject.ID),
		zap.Uint64("tick", s.tick))

	switch res.Kind {
	case system.InteractionPickup:
		s.record(entity.JournalPickup, res.Message)
		s.metrics.SetInventorySize(s.inventory.Len())
	case system.InteractionDrop:
		s.record(entity.JournalDrop, res.Message)
		s.metrics.SetInventorySize(s.inventory.Len())
	case system.InteractionTalk:
		s.record(entity.JournalTalk, fmt.Sprintf("%s: %s", res.Subject.DisplayName(), res.Message))
	case system.InteractionTrigger:
		s.startMiniGame(res)
		return
	}
	s.show(res.Message, res.MessageKind)
}

func (s *Session) updateInventory(in *system.Snapshot) {
	switch {
	case in.Consume(system.ActionMenu):
		s.transition(scene.MainMenu)
		return
	case in.Consume(system.ActionExit), in.Consume(system.ActionInventory):
		s.transition(scene.Overworld)
		return
	}

	for i, a := range system.SlotActions {
		if !in.Consume(a) {
			continue
		}
		if err := s.inventory.Select(i); err != nil {
			s.logger.Warn("ignoring slot key", zap.Int("slot", i+1), zap.Error(err))
		}
	}
	if in.Consume(system.ActionLeft) && s.inventory.Selected() > 0 {
		_ = s.inventory.Select(s.inventory.Selected() - 1)
	}
	if in.Consume(system.ActionRight) && s.inventory.Selected() < s.inventory.Cap()-1 {
		_ = s.inventory.Select(s.inventory.Selected() + 1)
	}

	if in.Consume(system.ActionDrop) {
		res, err := s.interaction.Drop(s.world, s.inventory, s.inventory.Selected(), s.player.Position())
		if err != nil {
			if !errors.Is(err, entity.ErrEmptySlot) {
				s.logger.Warn("drop failed", zap.Error(err))
			}
			return
		}
		s.apply(res)
	}
}

func (s *Session) updateLog(in *system.Snapshot) {
	switch {
	case in.Consume(system.ActionMenu):
		s.transition(scene.MainMenu)
		return
	case in.Consume(system.ActionExit), in.Consume(system.ActionLog):
		s.transition(scene.Overworld)
		return
	}

	if in.Consume(system.ActionUp) && s.logScroll < s.journal.Len()-1 {
		s.logScroll++
	}
	if in.Consume(system.ActionDown) && s.logScroll > 0 {
		s.logScroll--
	}
}
