package tilemap

import (
	"github.com/younwookim/tilerpg/internal/domain/geom"
	"github.com/younwookim/tilerpg/internal/domain/sprite"
)

// Effect is the non-physical behavior attached to a tile type.
type Effect int

const (
	EffectNone Effect = iota
	EffectHurt
	EffectTeleport
	EffectTransition
	EffectDoor
	EffectRoof
)

// String returns the effect name.
func (e Effect) String() string {
	switch e {
	case EffectNone:
		return "None"
	case EffectHurt:
		return "Hurt"
	case EffectTeleport:
		return "Teleport"
	case EffectTransition:
		return "Transition"
	case EffectDoor:
		return "Door"
	case EffectRoof:
		return "Roof"
	default:
		return "Unknown"
	}
}

// TileAnimation cycles a tile type through other tile types of the same sheet.
type TileAnimation struct {
	Frames []int
	Speed  int
}

// Period is the number of ticks before the animation repeats.
func (a TileAnimation) Period() int {
	return a.Speed * len(a.Frames)
}

// Tilesheet holds per-tile-type metadata as parallel arrays indexed by tile type.
type Tilesheet struct {
	ID        string
	TextureID string
	ClipSize  int
	Columns   int
	Rows      int

	SolidMap       []bool
	EffectMap      []Effect
	AnimatedMap    []bool
	TileAnimations map[int]TileAnimation
}

// Solid reports whether tile type t blocks movement. Unknown types never do.
func (s *Tilesheet) Solid(t int) bool {
	return t >= 0 && t < len(s.SolidMap) && s.SolidMap[t]
}

// Effect returns the effect of tile type t.
func (s *Tilesheet) Effect(t int) Effect {
	if t < 0 || t >= len(s.EffectMap) {
		return EffectNone
	}
	return s.EffectMap[t]
}

// Animated reports whether tile type t has a playable animation.
func (s *Tilesheet) Animated(t int) bool {
	if t < 0 || t >= len(s.AnimatedMap) || !s.AnimatedMap[t] {
		return false
	}
	anim, ok := s.TileAnimations[t]
	return ok && len(anim.Frames) > 0
}

// Clip returns the source rect for tile type t at the given tick.
func (s *Tilesheet) Clip(t, frameCount int) geom.Rect {
	if s.Animated(t) {
		anim := s.TileAnimations[t]
		t = anim.Frames[sprite.CycleIndex(len(anim.Frames), anim.Speed, frameCount)]
	}
	size := float64(s.ClipSize)
	return sprite.CellClip(t, geom.Vector{X: size, Y: size}, s.Columns, s.Rows)
}
