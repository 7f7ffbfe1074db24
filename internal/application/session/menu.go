package session

import (
	"go.uber.org/zap"

	"github.com/younwookim/clinicquest/internal/application/scene"
	"github.com/younwookim/clinicquest/internal/application/system"
)

// MenuAction is what a menu entry does when confirmed
type MenuAction int

const (
	MenuStart MenuAction = iota
	MenuLoad
	MenuNewGame
	MenuResume
	MenuSave
	MenuMainMenu
)

// MenuItem is one selectable menu entry
type MenuItem struct {
	Action MenuAction
	Label  string
}

// MainMenuItems returns the main menu entries for the current state.
// Start becomes Return once the game has started; Load only shows with a save.
func (s *Session) MainMenuItems() []MenuItem {
	started := s.machine.GameStarted()

	items := make([]MenuItem, 0, 3)
	if started {
		items = append(items, MenuItem{Action: MenuStart, Label: "Return"})
	} else {
		items = append(items, MenuItem{Action: MenuStart, Label: "Start"})
	}
	if s.saves.Exists() {
		items = append(items, MenuItem{Action: MenuLoad, Label: "Load Game"})
	}
	if started {
		items = append(items, MenuItem{Action: MenuNewGame, Label: "New Game"})
	}
	return items
}

// SystemMenuItems returns the in-game system menu entries
func (s *Session) SystemMenuItems() []MenuItem {
	return []MenuItem{
		{Action: MenuResume, Label: "Resume"},
		{Action: MenuSave, Label: "Save Game"},
		{Action: MenuMainMenu, Label: "Main Menu"},
	}
}

// MainMenuCursor returns the selected main menu index
func (s *Session) MainMenuCursor() int {
	return s.mainCursor
}

// SystemMenuCursor returns the selected system menu index
func (s *Session) SystemMenuCursor() int {
	return s.systemCursor
}

// SelectMainMenu moves the main menu cursor. Out-of-range indices are warned about and ignored.
func (s *Session) SelectMainMenu(i int) bool {
	if i < 0 || i >= len(s.MainMenuItems()) {
		s.logger.Warn("ignoring invalid menu index", zap.Int("index", i))
		return false
	}
	s.mainCursor = i
	return true
}

// moveCursor steps a cursor by Up/Down with wrap-around
func moveCursor(in *system.Snapshot, cursor, n int) int {
	if n == 0 {
		return 0
	}
	if in.Consume(system.ActionUp) {
		cursor--
	}
	if in.Consume(system.ActionDown) {
		cursor++
	}
	return ((cursor % n) + n) % n
}

func (s *Session) updateMainMenu(in *system.Snapshot) {
	if in.Consume(system.ActionMenu) {
		s.transition(scene.MainMenu)
		return
	}

	items := s.MainMenuItems()
	s.mainCursor = moveCursor(in, s.mainCursor, len(items))

	if !in.Consume(system.ActionConfirm) {
		return
	}
	if !s.SelectMainMenu(s.mainCursor) {
		s.mainCursor = 0
		return
	}

	switch items[s.mainCursor].Action {
	case MenuStart:
		s.transition(scene.Overworld)
	case MenuLoad:
		if err := s.Load(); err != nil {
			s.logger.Warn("failed to load game", zap.Error(err))
			s.show(s.settings.Messages.LoadFailed, system.MessageNotice)
			return
		}
		s.show(s.settings.Messages.Loaded, system.MessageNotice)
		s.transition(scene.Overworld)
	case MenuNewGame:
		if err := s.NewGame(); err != nil {
			s.logger.Error("failed to start a new game", zap.Error(err))
			return
		}
		s.transition(scene.Overworld)
	}
	s.mainCursor = 0
}

func (s *Session) updateSystemMenu(in *system.Snapshot) {
	if in.Consume(system.ActionMenu) {
		s.transition(scene.MainMenu)
		return
	}
	if in.Consume(system.ActionExit) {
		s.transition(scene.Overworld)
		return
	}

	items := s.SystemMenuItems()
	s.systemCursor = moveCursor(in, s.systemCursor, len(items))
	if !in.Consume(system.ActionConfirm) {
		return
	}

	switch items[s.systemCursor].Action {
	case MenuResume:
		s.transition(scene.Overworld)
	case MenuSave:
		if err := s.Save(); err != nil {
			s.logger.Error("failed to save game", zap.Error(err))
			s.show(s.settings.Messages.SaveFailed, system.MessageNotice)
			return
		}
		s.show(s.settings.Messages.Saved, system.MessageNotice)
		return
	case MenuMainMenu:
		s.transition(scene.MainMenu)
	}
	s.systemCursor = 0
}
