package config

// WorldConfig is the root config for worlds/<name>.json
type WorldConfig struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Size        SizeConfig     `json:"size"`
	Background  string         `json:"background"` // #rrggbb
	PlayerSpawn PositionConfig `json:"playerSpawn"`
	Entities    []EntityConfig `json:"entities"`
}

type SizeConfig struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type PositionConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// EntityConfig describes one world entity. Exactly the payload matching Kind is set.
type EntityConfig struct {
	ID      string         `json:"id"`
	Kind    string         `json:"kind"` // prop, item, npc, trigger
	Label   string         `json:"label,omitempty"`
	Rect    RectConfig     `json:"rect"`
	Sprite  *SpriteConfig  `json:"sprite,omitempty"`
	Item    *ItemConfig    `json:"item,omitempty"`
	NPC     *NPCConfig     `json:"npc,omitempty"`
	Trigger *TriggerConfig `json:"trigger,omitempty"`
}

type ItemConfig struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type NPCConfig struct {
	Text string `json:"text"`
}

type TriggerConfig struct {
	MiniGame string `json:"minigame"`
	Prompt   string `json:"prompt,omitempty"`
}

// SpriteSheets returns the distinct sheets referenced by entity sprites, in first-use order
func (w *WorldConfig) SpriteSheets() []string {
	seen := make(map[string]struct{})
	var sheets []string
	for _, e := range w.Entities {
		if e.Sprite == nil || e.Sprite.Sheet == "" {
			continue
		}
		if _, ok := seen[e.Sprite.Sheet]; ok {
			continue
		}
		seen[e.Sprite.Sheet] = struct{}{}
		sheets = append(sheets, e.Sprite.Sheet)
	}
	return sheets
}
