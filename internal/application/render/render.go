// Package render draws the session to the screen.
//
// The renderer only reads session state. Every coordinate is in the logical
// base resolution; ebiten scales the result to the window.
package render

import (
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/clinicquest/internal/application/scene"
	"github.com/younwookim/clinicquest/internal/application/session"
	"github.com/younwookim/clinicquest/internal/application/system"
	"github.com/younwookim/clinicquest/internal/domain/entity"
)

// HUDHeight is the height of the instruction strip at the bottom of the screen
const HUDHeight = 20

// Colors for rendering
var (
	colorBG        = color.RGBA{26, 26, 46, 255}
	colorMenuBG    = color.RGBA{16, 16, 28, 255}
	colorPlayer    = color.RGBA{100, 200, 100, 255}
	colorFacing    = color.RGBA{240, 240, 240, 255}
	colorItem      = color.RGBA{255, 215, 0, 255}
	colorNPC       = color.RGBA{100, 160, 230, 255}
	colorTrigger   = color.RGBA{180, 100, 220, 255}
	colorProp      = color.RGBA{90, 90, 110, 255}
	colorHUD       = color.RGBA{0, 0, 0, 200}
	colorOverlay   = color.RGBA{0, 0, 0, 160}
	colorSlot      = color.RGBA{60, 60, 80, 255}
	colorSelected  = color.RGBA{255, 255, 255, 255}
	colorBody      = color.RGBA{40, 48, 64, 255}
	colorTarget    = color.RGBA{230, 80, 80, 255}
	colorProgress  = color.RGBA{100, 200, 100, 255}
	colorProgBG    = color.RGBA{60, 60, 60, 255}
	colorScanFrame = color.RGBA{120, 220, 255, 255}
)

// SpriteSource provides loaded sprite regions
type SpriteSource interface {
	Region(sheet string, r image.Rectangle) (*ebiten.Image, bool)
}

// Renderer draws a session
type Renderer struct {
	keymap  *system.KeyMap
	sprites SpriteSource
	screenW int
	screenH int
}

// New creates a renderer for the given base resolution. sprites may be nil.
func New(keymap *system.KeyMap, sprites SpriteSource, screenW, screenH int) *Renderer {
	if keymap == nil {
		keymap = system.DefaultKeyMap()
	}
	return &Renderer{
		keymap:  keymap,
		sprites: sprites,
		screenW: screenW,
		screenH: screenH,
	}
}

// Draw renders the active scene and the HUD
func (r *Renderer) Draw(screen *ebiten.Image, s *session.Session) {
	switch s.Scene() {
	case scene.MainMenu:
		r.drawMainMenu(screen, s)
	case scene.Overworld:
		r.drawWorld(screen, s)
	case scene.Inventory:
		r.drawWorld(screen, s)
		r.drawInventory(screen, s)
	case scene.AdventureLog:
		r.drawWorld(screen, s)
		r.drawLog(screen, s)
	case scene.MiniGame:
		r.drawMiniGame(screen, s)
	case scene.System:
		r.drawWorld(screen, s)
		r.drawSystemMenu(screen, s)
	default:
		// unknown scene: draw nothing
		return
	}
	r.drawHUD(screen, s)
}

// Camera returns the top-left world coordinate shown on screen, centered on
// the player and clamped to the world. Worlds smaller than the view are pinned to 0.
func Camera(player *entity.Player, world *entity.World, screenW, screenH int) (float64, float64) {
	viewH := float64(screenH - HUDHeight)
	c := player.Center()
	view := entity.Rect{
		X:      c.X - float64(screenW)/2,
		Y:      c.Y - viewH/2,
		Width:  float64(screenW),
		Height: viewH,
	}.ClampInto(world.Bounds())
	return view.X, view.Y
}

// ParseHexColor parses "#rrggbb". Returns false for anything else.
func ParseHexColor(s string) (color.RGBA, bool) {
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, false
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.RGBA{}, false
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, true
}

func (r *Renderer) drawWorld(screen *ebiten.Image, s *session.Session) {
	bg, ok := ParseHexColor(s.WorldConfig().Background)
	if !ok {
		bg = colorBG
	}
	screen.Fill(bg)

	world := s.World()
	camX, camY := Camera(s.Player(), world, r.screenW, r.screenH)

	for _, e := range world.Entities {
		if !e.Has(entity.Drawable) {
			continue
		}
		r.drawEntity(screen, e, camX, camY)
	}
	r.drawPlayer(screen, s.Player(), camX, camY)
}

func (r *Renderer) drawEntity(screen *ebiten.Image, e *entity.Entity, camX, camY float64) {
	x, y := e.X-camX, e.Y-camY
	if x+e.Width < 0 || y+e.Height < 0 || x > float64(r.screenW) || y > float64(r.screenH) {
		return
	}

	if e.Sprite != nil {
		// sprite not loaded yet: skip this tick
		if img, ok := r.sprite(e.Sprite); ok {
			op := &ebiten.DrawImageOptions{}
			b := img.Bounds()
			op.GeoM.Scale(e.Width/float64(b.Dx()), e.Height/float64(b.Dy()))
			op.GeoM.Translate(x, y)
			screen.DrawImage(img, op)
		}
		return
	}

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(e.Width), float32(e.Height), kindColor(e.Kind), false)
	if e.Label != "" && e.Kind != entity.KindItem {
		ebitenutil.DebugPrintAt(screen, e.Label, int(x), int(y)-14)
	}
}

func (r *Renderer) sprite(sr *entity.SpriteRegion) (*ebiten.Image, bool) {
	if r.sprites == nil {
		return nil, false
	}
	return r.sprites.Region(sr.Sheet, image.Rect(sr.X, sr.Y, sr.X+sr.Width, sr.Y+sr.Height))
}

func kindColor(k entity.Kind) color.Color {
	switch k {
	case entity.KindItem:
		return colorItem
	case entity.KindNPC:
		return colorNPC
	case entity.KindTrigger:
		return colorTrigger
	default:
		return colorProp
	}
}

func (r *Renderer) drawPlayer(screen *ebiten.Image, p *entity.Player, camX, camY float64) {
	x, y := float32(p.X-camX), float32(p.Y-camY)
	w, h := float32(p.Width), float32(p.Height)

	// walk cycle bob
	bob := float32(p.AnimationFrame % 2)
	vector.DrawFilledRect(screen, x, y-bob, w, h, colorPlayer, false)

	const m = 4
	fx, fy := x+w/2-m/2, y+h/2-m/2
	switch p.Direction {
	case entity.DirUp:
		fy = y
	case entity.DirDown:
		fy = y + h - m
	case entity.DirLeft:
		fx = x
	case entity.DirRight:
		fx = x + w - m
	}
	vector.DrawFilledRect(screen, fx, fy-bob, m, m, colorFacing, false)
}

func (r *Renderer) overlay(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(r.screenW), float32(r.screenH), colorOverlay, false)
}

func (r *Renderer) drawMenu(screen *ebiten.Image, title string, items []session.MenuItem, cursor int) {
	x := r.screenW/2 - 50
	y := r.screenH/2 - 40
	ebitenutil.DebugPrintAt(screen, title, x, y)
	for i, item := range items {
		prefix := "  "
		if i == cursor {
			prefix = "> "
		}
		ebitenutil.DebugPrintAt(screen, prefix+item.Label, x, y+24+i*16)
	}
}

func (r *Renderer) drawMainMenu(screen *ebiten.Image, s *session.Session) {
	screen.Fill(colorMenuBG)
	title := s.Settings().Display.Title
	if title == "" {
		title = "Main Menu"
	}
	r.drawMenu(screen, strings.ToUpper(title), s.MainMenuItems(), s.MainMenuCursor())
}

func (r *Renderer) drawSystemMenu(screen *ebiten.Image, s *session.Session) {
	r.overlay(screen)
	r.drawMenu(screen, "SYSTEM", s.SystemMenuItems(), s.SystemMenuCursor())
}

func (r *Renderer) drawInventory(screen *ebiten.Image, s *session.Session) {
	r.overlay(screen)

	inv := s.Inventory()
	const size, gap = 40, 8
	total := inv.Cap()*(size+gap) - gap
	x0 := (r.screenW - total) / 2
	y0 := r.screenH/2 - size

	ebitenutil.DebugPrintAt(screen, inventoryTitle(inv), x0, y0-24)
	items := inv.Items()
	for i := 0; i < inv.Cap(); i++ {
		x := float32(x0 + i*(size+gap))
		y := float32(y0)
		vector.DrawFilledRect(screen, x, y, size, size, colorSlot, false)
		if i == inv.Selected() {
			vector.StrokeRect(screen, x, y, size, size, 2, colorSelected, false)
		}
		ebitenutil.DebugPrintAt(screen, strconv.Itoa(i+1), int(x)+2, int(y)+2)
		if i >= len(items) {
			continue
		}
		item := items[i]
		if item.Sprite != nil {
			if img, ok := r.sprite(item.Sprite); ok {
				op := &ebiten.DrawImageOptions{}
				op.GeoM.Scale(2, 2)
				op.GeoM.Translate(float64(x)+4, float64(y)+8)
				screen.DrawImage(img, op)
				continue
			}
		}
		vector.DrawFilledRect(screen, x+12, y+14, 16, 16, colorItem, false)
	}

	if sel := inv.Selected(); sel < len(items) {
		item := items[sel]
		text := item.DisplayName()
		if item.Item != nil && item.Item.Description != "" {
			text += " - " + item.Item.Description
		}
		ebitenutil.DebugPrintAt(screen, text, x0, y0+size+12)
	}
}

func inventoryTitle(inv *entity.Inventory) string {
	title := fmt.Sprintf("INVENTORY %d/%d", inv.Len(), inv.Cap())
	if inv.Full() {
		title += " (full)"
	}
	return title
}

// logLines is how many journal entries fit on the log page
const logLines = 12

func (r *Renderer) drawLog(screen *ebiten.Image, s *session.Session) {
	r.overlay(screen)
	ebitenutil.DebugPrintAt(screen, "ADVENTURE LOG", 24, 16)

	entries := s.Journal().Entries()
	if len(entries) == 0 {
		ebitenutil.DebugPrintAt(screen, "Nothing yet.", 24, 40)
		return
	}
	for i, e := range LogPage(entries, s.LogScroll(), logLines) {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("[%s] %s", e.Kind, e.Text), 24, 40+i*16)
	}
}

// LogPage returns up to n entries ending scroll entries before the newest, oldest first
func LogPage(entries []entity.JournalEntry, scroll, n int) []entity.JournalEntry {
	end := len(entries) - scroll
	if end > len(entries) {
		end = len(entries)
	}
	if end < 0 {
		end = 0
	}
	start := end - n
	if start < 0 {
		start = 0
	}
	return entries[start:end]
}

func (r *Renderer) drawMiniGame(screen *ebiten.Image, s *session.Session) {
	screen.Fill(colorMenuBG)
	sc := s.Scanner()
	if sc == nil {
		return
	}

	view := sc.View()
	vector.DrawFilledRect(screen, float32(view.X), float32(view.Y), float32(view.Width), float32(view.Height), colorBody, false)
	ebitenutil.DebugPrintAt(screen, sc.Name(), int(view.X), int(view.Y)-18)

	if sc.Complete() {
		t := sc.Target()
		vector.DrawFilledRect(screen, float32(t.X), float32(t.Y), float32(t.Width), float32(t.Height), colorTarget, false)
	}

	// the window glows brighter the more of the target it covers
	w := sc.Window()
	glow := color.RGBA{
		R: colorScanFrame.R,
		G: colorScanFrame.G,
		B: colorScanFrame.B,
		A: uint8(40 + 120*sc.Signal()),
	}
	vector.DrawFilledRect(screen, float32(w.X), float32(w.Y), float32(w.Width), float32(w.Height), glow, false)
	vector.StrokeRect(screen, float32(w.X), float32(w.Y), float32(w.Width), float32(w.Height), 2, colorScanFrame, false)

	barX, barY := float32(view.X), float32(view.Y+view.Height+8)
	barW := float32(view.Width)
	vector.DrawFilledRect(screen, barX, barY, barW, 8, colorProgBG, false)
	vector.DrawFilledRect(screen, barX, barY, barW*float32(sc.Progress()/100), 8, colorProgress, false)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%3.0f%%", sc.Progress()), int(barX+barW)+6, int(barY)-4)
}

func (r *Renderer) drawHUD(screen *ebiten.Image, s *session.Session) {
	y := r.screenH - HUDHeight
	vector.DrawFilledRect(screen, 0, float32(y), float32(r.screenW), HUDHeight, colorHUD, false)
	ebitenutil.DebugPrintAt(screen, r.HUDText(s), 6, y+2)
}
