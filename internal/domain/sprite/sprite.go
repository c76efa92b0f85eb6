// Package sprite resolves animation clips for anything that can be drawn from a
// spritesheet. It never touches entity internals: callers go through Sprite.
package sprite

import (
	"github.com/younwookim/tilerpg/internal/domain/geom"
)

// Sprite is the drawing capability shared by the player and NPCs.
type Sprite interface {
	// TextureID keys the bitmap in the asset store.
	TextureID() string
	// SheetID keys the spritesheet holding the animation table.
	SheetID() string
	// AnimationKey names the animation for the sprite's current state.
	AnimationKey() string
	ClipRect() geom.Rect
	SetClipOrigin(origin geom.Vector)
	ViewRect() geom.Rect
}

// Animation is a named track: frame cells in sheet coordinates plus the
// number of ticks each frame is held for.
type Animation struct {
	Frames []geom.Vector `json:"frames"`
	Speed  int           `json:"speed"`
}

// Period is the number of ticks before the track repeats.
func (a Animation) Period() int {
	return a.Speed * len(a.Frames)
}

// Sheet is the read-only animation table shared by every entity of an archetype.
type Sheet struct {
	ID          string
	TextureID   string
	ClipSize    geom.Vector
	ScaleFactor float64
	Animations  map[string]Animation
}

// SpriteSize is the on-screen size of one frame.
func (s *Sheet) SpriteSize() geom.Vector {
	scale := s.ScaleFactor
	if scale <= 0 {
		scale = 1
	}
	return s.ClipSize.Scale(scale)
}

// Animation looks up a track by key.
func (s *Sheet) Animation(key string) (Animation, bool) {
	a, ok := s.Animations[key]
	return a, ok
}

// FrameIndex returns floor(frameCount / speed) mod len(frames).
// A track with no frames always yields 0.
func FrameIndex(anim Animation, frameCount int) int {
	return CycleIndex(len(anim.Frames), anim.Speed, frameCount)
}

// CycleIndex is the cycling law shared by sprite and tile animations:
// floor(frameCount / speed) mod n. Speeds below 1 count as 1.
func CycleIndex(n, speed, frameCount int) int {
	if n <= 0 {
		return 0
	}
	if speed <= 0 {
		speed = 1
	}
	if frameCount < 0 {
		frameCount = 0
	}
	return (frameCount / speed) % n
}

// Animate moves the sprite's clip origin to the frame selected by frameCount.
// Frames are stored as cell coordinates, so the origin is scaled by the clip size.
func Animate(s Sprite, anim Animation, frameCount int) {
	if len(anim.Frames) == 0 {
		return
	}
	cell := anim.Frames[FrameIndex(anim, frameCount)]
	clip := s.ClipRect()
	s.SetClipOrigin(geom.Vector{X: cell.X * clip.W, Y: cell.Y * clip.H})
}

// CellClip returns the clip rect of the index-th cell on a sheet laid out
// left to right, top to bottom. Indices past the last cell wrap to the start.
func CellClip(index int, cell geom.Vector, columns, rows int) geom.Rect {
	if columns <= 0 || rows <= 0 || index < 0 {
		return geom.Rect{W: cell.X, H: cell.Y}
	}
	index %= columns * rows
	return geom.Rect{
		X: float64(index%columns) * cell.X,
		Y: float64(index/columns) * cell.Y,
		W: cell.X,
		H: cell.Y,
	}
}
