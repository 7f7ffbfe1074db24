package config

// SettingsConfig is the root config for game.json
type SettingsConfig struct {
	World     string                   `json:"world"` // world loaded at startup
	Display   DisplayConfig            `json:"display"`
	Player    PlayerConfig             `json:"player"`
	Inventory InventoryConfig          `json:"inventory"`
	Journal   JournalConfig            `json:"journal"`
	Messages  MessagesConfig           `json:"messages"`
	MiniGames map[string]ScannerConfig `json:"minigames"`
}

type DisplayConfig struct {
	ScreenWidth  int    `json:"screenWidth"`
	ScreenHeight int    `json:"screenHeight"`
	Scale        int    `json:"scale"`
	Framerate    int    `json:"framerate"`
	Title        string `json:"title"`
}

type PlayerConfig struct {
	Width     float64         `json:"width"`
	Height    float64         `json:"height"`
	Speed     float64         `json:"speed"` // pixels per tick along one axis
	Animation AnimationConfig `json:"animation"`
	Sprite    *SpriteConfig   `json:"sprite,omitempty"`
}

// AnimationConfig is the walk cycle: Frames frames, advancing every Interval ticks
type AnimationConfig struct {
	Frames   int `json:"frames"`
	Interval int `json:"interval"`
}

type SpriteConfig struct {
	Sheet  string `json:"sheet"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"w"`
	Height int    `json:"h"`
}

type InventoryConfig struct {
	Capacity int `json:"capacity"`
}

type JournalConfig struct {
	Limit int `json:"limit"`
}

// MessagesConfig holds HUD texts. Texts with %s receive the entity name.
type MessagesConfig struct {
	DurationTicks int    `json:"durationTicks"`
	Pickup        string `json:"pickup"`
	InventoryFull string `json:"inventoryFull"`
	Drop          string `json:"drop"`
	ScanComplete  string `json:"scanComplete"`
	ScanLogged    string `json:"scanLogged"`
	Saved         string `json:"saved"`
	SaveFailed    string `json:"saveFailed"`
	Loaded        string `json:"loaded"`
	LoadFailed    string `json:"loadFailed"`
}

// ScannerConfig configures one scanner minigame, in screen pixels
type ScannerConfig struct {
	Title     string     `json:"title"`
	View      RectConfig `json:"view"`
	Window    RectConfig `json:"window"`
	Target    RectConfig `json:"target"`
	Rate      float64    `json:"rate"`      // progress per tick
	MoveSpeed float64    `json:"moveSpeed"` // pixels per tick
}

type RectConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}
