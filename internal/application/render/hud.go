package render

import (
	"fmt"
	"strings"

	"github.com/younwookim/clinicquest/internal/application/scene"
	"github.com/younwookim/clinicquest/internal/application/session"
	"github.com/younwookim/clinicquest/internal/application/system"
)

// HUDText returns the HUD strip text: the active message when one is showing,
// otherwise the scene's instructions with the bound key names
func (r *Renderer) HUDText(s *session.Session) string {
	if msg, ok := s.Message(); ok {
		return msg.Text
	}

	k := r.keymap.Describe
	switch s.Scene() {
	case scene.MainMenu:
		return hints(r.vertical()+": select", k(system.ActionConfirm)+": confirm")
	case scene.Overworld:
		return hints(
			r.arrows()+": move",
			k(system.ActionInteract)+": interact",
			k(system.ActionInventory)+": items",
			k(system.ActionLog)+": log",
			k(system.ActionMenu)+": system",
		)
	case scene.Inventory:
		return hints(
			fmt.Sprintf("%s-%s: slot", k(system.ActionSlot1), k(system.ActionSlot9)),
			k(system.ActionDrop)+": drop",
			k(system.ActionExit)+": close",
		)
	case scene.AdventureLog:
		return hints(r.vertical()+": scroll", k(system.ActionExit)+": close")
	case scene.MiniGame:
		return hints(
			r.arrows()+"/drag: aim",
			"hold "+k(system.ActionInteract)+": scan",
			k(system.ActionExit)+": exit",
		)
	case scene.System:
		return hints(
			r.vertical()+": select",
			k(system.ActionConfirm)+": confirm",
			k(system.ActionExit)+": resume",
		)
	default:
		return ""
	}
}

func hints(parts ...string) string {
	return strings.Join(parts, " | ")
}

func (r *Renderer) arrows() string {
	if r.isArrow(system.ActionUp, "ArrowUp") && r.isArrow(system.ActionDown, "ArrowDown") &&
		r.isArrow(system.ActionLeft, "ArrowLeft") && r.isArrow(system.ActionRight, "ArrowRight") {
		return "Arrows"
	}
	return strings.Join([]string{
		r.keymap.Describe(system.ActionUp),
		r.keymap.Describe(system.ActionLeft),
		r.keymap.Describe(system.ActionDown),
		r.keymap.Describe(system.ActionRight),
	}, "")
}

func (r *Renderer) vertical() string {
	return r.keymap.Describe(system.ActionUp) + "/" + r.keymap.Describe(system.ActionDown)
}

func (r *Renderer) isArrow(a system.Action, name string) bool {
	return r.keymap.Describe(a) == name
}
