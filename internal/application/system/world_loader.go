package system

import (
	"fmt"

	"github.com/younwookim/clinicquest/internal/domain/entity"
	"github.com/younwookim/clinicquest/internal/infrastructure/config"
)

// LoadWorld converts a WorldConfig into a World.
// Entities come out in config order, which is also interaction priority order.
func LoadWorld(cfg *config.WorldConfig) (*entity.World, error) {
	world := &entity.World{
		Name:   cfg.Name,
		Width:  cfg.Size.Width,
		Height: cfg.Size.Height,
		Spawn:  entity.Point{X: cfg.PlayerSpawn.X, Y: cfg.PlayerSpawn.Y},
	}
	if world.Name == "" {
		world.Name = cfg.ID
	}

	seen := make(map[string]struct{}, len(cfg.Entities))
	for _, ec := range cfg.Entities {
		if _, dup := seen[ec.ID]; dup {
			return nil, fmt.Errorf("world %s: duplicate entity id %q", cfg.ID, ec.ID)
		}
		seen[ec.ID] = struct{}{}

		e, err := loadEntity(ec)
		if err != nil {
			return nil, fmt.Errorf("world %s: %w", cfg.ID, err)
		}
		world.Add(e)
	}
	return world, nil
}

func loadEntity(ec config.EntityConfig) (*entity.Entity, error) {
	kind, ok := entity.ParseKind(ec.Kind)
	if !ok {
		return nil, fmt.Errorf("entity %s: unknown kind %q", ec.ID, ec.Kind)
	}

	e := &entity.Entity{
		Rect:  RectFromConfig(ec.Rect),
		ID:    ec.ID,
		Kind:  kind,
		Label: ec.Label,
	}
	if ec.Sprite != nil && ec.Sprite.Sheet != "" {
		e.Sprite = SpriteFromConfig(ec.Sprite)
	}

	switch kind {
	case entity.KindItem:
		if ec.Item == nil {
			return nil, fmt.Errorf("entity %s: item payload missing", ec.ID)
		}
		e.Item = &entity.ItemData{Name: ec.Item.Name, Description: ec.Item.Description}
	case entity.KindNPC:
		if ec.NPC == nil {
			return nil, fmt.Errorf("entity %s: npc payload missing", ec.ID)
		}
		e.NPC = &entity.NPCData{InteractionText: ec.NPC.Text}
	case entity.KindTrigger:
		if ec.Trigger == nil {
			return nil, fmt.Errorf("entity %s: trigger payload missing", ec.ID)
		}
		e.Trigger = &entity.TriggerData{MiniGame: ec.Trigger.MiniGame, Prompt: ec.Trigger.Prompt}
	}
	return e, nil
}

// RectFromConfig converts a config rectangle
func RectFromConfig(r config.RectConfig) entity.Rect {
	return entity.Rect{X: r.X, Y: r.Y, Width: r.W, Height: r.H}
}

// SpriteFromConfig converts a config sprite region
func SpriteFromConfig(s *config.SpriteConfig) *entity.SpriteRegion {
	return &entity.SpriteRegion{Sheet: s.Sheet, X: s.X, Y: s.Y, Width: s.Width, Height: s.Height}
}
