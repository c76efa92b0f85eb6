package config

// Settings is the root config for settings.json
type Settings struct {
	Display    DisplayConfig    `json:"display"`
	InitMap    string           `json:"initMap"`
	TileSize   int              `json:"tileSize"`
	Player     PlayerConfig     `json:"player"`
	Camera     CameraConfig     `json:"camera"`
	FrameClock FrameClockConfig `json:"frameClock"`
	DayNight   DayNightConfig   `json:"dayNight"`
	Combat     CombatConfig     `json:"combat"`
	Debug      bool             `json:"debug"`
}

type DisplayConfig struct {
	ScreenWidth  int    `json:"screenWidth"`
	ScreenHeight int    `json:"screenHeight"`
	Scale        int    `json:"scale"`
	Framerate    int    `json:"framerate"`
	Title        string `json:"title"`
}

// PlayerConfig names the archetype the player is built from
type PlayerConfig struct {
	Archetype string `json:"archetype"`
}

type CameraConfig struct {
	LockMargin float64 `json:"lockMargin"`
	StepY      float64 `json:"stepY"`
}

// FrameClockConfig bounds the global frame counter
type FrameClockConfig struct {
	MinWrap int `json:"minWrap"`
}

type DayNightConfig struct {
	CycleFrames int     `json:"cycleFrames"`
	MaxOpacity  float64 `json:"maxOpacity"`
	Color       string  `json:"color"`
}

type CombatConfig struct {
	HurtTileDamage int `json:"hurtTileDamage"`
}

// DefaultSettings returns the stock settings
func DefaultSettings() *Settings {
	s := &Settings{}
	s.applyDefaults()
	return s
}

// applyDefaults fills zero values with the stock settings
func (s *Settings) applyDefaults() {
	if s.Display.ScreenWidth <= 0 {
		s.Display.ScreenWidth = 640
	}
	if s.Display.ScreenHeight <= 0 {
		s.Display.ScreenHeight = 480
	}
	if s.Display.Scale <= 0 {
		s.Display.Scale = 1
	}
	if s.Display.Framerate <= 0 {
		s.Display.Framerate = 60
	}
	if s.TileSize <= 0 {
		s.TileSize = 32
	}
	if s.Player.Archetype == "" {
		s.Player.Archetype = "player"
	}
	if s.Camera.LockMargin <= 0 {
		s.Camera.LockMargin = 200
	}
	if s.FrameClock.MinWrap <= 0 {
		s.FrameClock.MinWrap = 1000
	}
	if s.DayNight.Color == "" {
		s.DayNight.Color = "midnightblue"
	}
}
