package session

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/younwookim/clinicquest/internal/application/scene"
	"github.com/younwookim/clinicquest/internal/application/system"
	"github.com/younwookim/clinicquest/internal/domain/entity"
	"github.com/younwookim/clinicquest/internal/infrastructure/save"
)

// Save writes the current game into the save slot
func (s *Session) Save() error {
	if err := s.saves.Save(s.SaveData()); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	return nil
}

// SaveData captures the persistent part of the session.
// Outside the overworld the position saved by the scene machine is used.
func (s *Session) SaveData() *save.Data {
	pos := s.player.Position()
	if st := s.machine.State(); st.Current != scene.Overworld && st.HasSavedPosition {
		pos = st.SavedPlayerPosition
	}

	d := &save.Data{
		World: s.worldCfg.ID,
		Player: save.PlayerData{
			X:         pos.X,
			Y:         pos.Y,
			Direction: s.player.Direction.String(),
		},
		ScansCompleted: s.scansCompleted,
	}
	for _, item := range s.inventory.Items() {
		d.Inventory = append(d.Inventory, item.ID)
	}
	for _, e := range s.world.Entities {
		if e.Kind == entity.KindItem {
			d.Items = append(d.Items, save.ItemData{ID: e.ID, X: e.X, Y: e.Y})
		}
	}
	for _, je := range s.journal.Entries() {
		d.Journal = append(d.Journal, save.JournalEntry{Tick: je.Tick, Kind: je.Kind.String(), Text: je.Text})
	}
	return d
}

// Load replaces the game with the saved one. The player is placed at the
// saved position on the next entry into the overworld.
func (s *Session) Load() error {
	d, err := s.saves.Load()
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	return s.Restore(d)
}

// Restore rebuilds the world from config and applies saved data on top
func (s *Session) Restore(d *save.Data) error {
	if d.World != s.worldCfg.ID {
		return fmt.Errorf("save is for world %q, not %q", d.World, s.worldCfg.ID)
	}

	world, err := system.LoadWorld(s.worldCfg)
	if err != nil {
		return fmt.Errorf("failed to reload world: %w", err)
	}
	inventory := entity.NewInventory(s.settings.Inventory.Capacity)
	for _, id := range d.Inventory {
		if e := world.Find(id); e == nil || e.Kind != entity.KindItem {
			s.logger.Warn("saved inventory item not in world", zap.String("item", id))
			continue
		}
		item := world.Remove(id)
		item.PickedUp = true
		if err := inventory.Add(item); err != nil {
			return fmt.Errorf("restore inventory: %w", err)
		}
	}
	for _, it := range d.Items {
		if e := world.Find(it.ID); e != nil {
			e.X, e.Y = it.X, it.Y
		}
	}

	journal := entity.NewJournal(s.settings.Journal.Limit)
	for _, je := range d.Journal {
		journal.Add(entity.JournalEntry{Tick: je.Tick, Kind: parseJournalKind(je.Kind), Text: je.Text})
	}

	s.world = world
	s.inventory = inventory
	s.journal = journal
	s.scansCompleted = d.ScansCompleted
	s.player.Direction = parseDirection(d.Player.Direction)
	s.player.ResetAnimation()
	s.machine.SetSavedPosition(entity.Point{X: d.Player.X, Y: d.Player.Y})
	s.metrics.SetInventorySize(inventory.Len())

	s.logger.Info("game restored",
		zap.String("world", d.World),
		zap.Int("inventory", inventory.Len()),
		zap.Int("journal", journal.Len()))
	return nil
}

// NewGame resets everything to the freshly loaded world, back in the main menu
func (s *Session) NewGame() error {
	world, err := system.LoadWorld(s.worldCfg)
	if err != nil {
		return fmt.Errorf("failed to reload world: %w", err)
	}

	s.world = world
	s.inventory.Clear()
	s.journal.Clear()
	s.player.SetPosition(world.Spawn)
	s.player.Direction = entity.DirDown
	s.player.ResetAnimation()
	s.machine.Reset()
	for _, sc := range s.scanners {
		sc.Reset()
	}
	s.scanner = nil
	s.activeTrigger = nil
	s.scansCompleted = 0
	s.logScroll = 0
	s.clearMessage()
	s.metrics.SetInventorySize(0)
	return nil
}

func parseJournalKind(name string) entity.JournalKind {
	for _, k := range []entity.JournalKind{entity.JournalPickup, entity.JournalDrop, entity.JournalTalk, entity.JournalScan} {
		if k.String() == name {
			return k
		}
	}
	return entity.JournalPickup
}

func parseDirection(name string) entity.Direction {
	for _, d := range []entity.Direction{entity.DirDown, entity.DirUp, entity.DirLeft, entity.DirRight} {
		if d.String() == name {
			return d
		}
	}
	return entity.DirDown
}
