package config

// Vec is a 2D value as written in JSON files
type Vec struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// GridSize is a cell count in columns and rows
type GridSize struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// TilesheetConfig is the root config for tilesheets/<id>.json.
// The per-type maps are parallel arrays indexed by tile type; solid and
// animated use 0/1.
type TilesheetConfig struct {
	ID             string                `json:"id"`
	TextureID      string                `json:"textureId"`
	ClipSize       int                   `json:"clipSize"`
	Dimensions     GridSize              `json:"dimensions"`
	SolidMap       []int                 `json:"solidMap"`
	EffectMap      []int                 `json:"effectMap"`
	AnimatedMap    []int                 `json:"animatedMap"`
	TileAnimations []TileAnimationConfig `json:"tileAnimations"`
}

type TileAnimationConfig struct {
	Type   int   `json:"type"`
	Frames []int `json:"frames"`
	Speed  int   `json:"speed"`
}

// SpritesheetConfig is the root config for spritesheets/<archetype>.json
type SpritesheetConfig struct {
	ID          string                     `json:"id"`
	TextureID   string                     `json:"textureId"`
	ClipSize    Vec                        `json:"clipSize"`
	Dimensions  GridSize                   `json:"dimensions"`
	ScaleFactor float64                    `json:"scaleFactor"`
	Animations  map[string]AnimationConfig `json:"animations"`
}

// AnimationConfig lists frame cells (column, row) and ticks per frame
type AnimationConfig struct {
	Frames []Vec `json:"frames"`
	Speed  int   `json:"speed"`
}
