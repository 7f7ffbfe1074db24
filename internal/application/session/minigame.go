package session

import (
	"go.uber.org/zap"

	"github.com/younwookim/clinicquest/internal/application/scene"
	"github.com/younwookim/clinicquest/internal/application/system"
	"github.com/younwookim/clinicquest/internal/domain/entity"
)

func (s *Session) startMiniGame(res system.InteractionResult) {
	trigger := res.Subject
	sc, ok := s.scanners[trigger.Trigger.MiniGame]
	if !ok {
		s.logger.Warn("trigger references an unknown minigame",
			zap.String("entity", trigger.ID),
			zap.String("minigame", trigger.Trigger.MiniGame))
		return
	}

	sc.Reset()
	if !s.transition(res.NewScene) {
		return
	}
	s.scanner = sc
	s.activeTrigger = trigger
	// the scanner view has its own instructions in the HUD
	s.clearMessage()
}

func (s *Session) updateMiniGame(in *system.Snapshot) {
	if s.scanner == nil {
		s.logger.Warn("minigame scene without a scanner, returning to overworld")
		s.leaveMiniGame(scene.Overworld)
		return
	}

	switch {
	case in.Consume(system.ActionMenu):
		s.leaveMiniGame(scene.MainMenu)
		return
	case in.Consume(system.ActionExit):
		s.leaveMiniGame(scene.Overworld)
		return
	}

	if s.scanner.Complete() {
		// the completing Space press was consumed; a fresh one returns
		if in.Consume(system.ActionInteract) {
			s.leaveMiniGame(scene.Overworld)
		}
		return
	}

	s.scanner.Move(in.Axis(system.ActionLeft, system.ActionRight), in.Axis(system.ActionUp, system.ActionDown))
	s.scanner.Pointer(in.PointerX, in.PointerY, in.PointerDown)

	if s.scanner.Scan(in.IsHeld(system.ActionInteract)) {
		in.Consume(system.ActionInteract)
		s.completeScan()
	}
}

func (s *Session) completeScan() {
	s.scansCompleted++
	s.metrics.ScanCompleted()

	where := s.scanner.Name()
	if s.activeTrigger != nil {
		where = s.activeTrigger.DisplayName()
	}
	s.record(entity.JournalScan, system.FormatMessage(s.settings.Messages.ScanLogged, where))
	s.show(s.settings.Messages.ScanComplete, system.MessageNotice)
	s.logger.Info("scan complete",
		zap.String("scanner", s.scanner.Name()),
		zap.Int("scans", s.scansCompleted))
}

// leaveMiniGame resets the scanner and switches scene; the machine restores
// the player position when returning to the overworld
func (s *Session) leaveMiniGame(to scene.ID) {
	if s.scanner != nil {
		s.scanner.Reset()
	}
	if !s.transition(to) {
		return
	}
	s.scanner = nil
	s.activeTrigger = nil
}
