package sprite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/tilerpg/internal/domain/geom"
)

type testSprite struct {
	clip geom.Rect
}

func (s *testSprite) TextureID() string { return "tex" }
func (s *testSprite) SheetID() string { return "sheet" }
func (s *testSprite) AnimationKey() string { return "idle.south" }
func (s *testSprite) ClipRect() geom.Rect { return s.clip }
func (s *testSprite) SetClipOrigin(origin geom.Vector) { s.clip.X, s.clip.Y = origin.X, origin.Y }
func (s *testSprite) ViewRect() geom.Rect { return geom.Rect{} }

func walkAnimation() Animation {
	return Animation{
		Frames: []geom.Vector{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}},
		Speed:  8,
	}
}

func TestFrameIndex(t *testing.T) {
	anim := walkAnimation()

	tests := []struct {
		frame    int
		expected int
	}{
		{0, 0},
		{7, 0},
		{8, 1},
		{31, 3},
		{32, 0},
		{-5, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, FrameIndex(anim, tt.frame), "frame %d", tt.frame)
	}
}

func TestFrameIndex_Cycles(t *testing.T) {
	for _, anim := range []Animation{
		walkAnimation(),
		{Frames: make([]geom.Vector, 3), Speed: 7},
		{Frames: make([]geom.Vector, 1), Speed: 1},
	} {
		period := anim.Speed * len(anim.Frames)
		for k := 0; k < 500; k++ {
			assert.Equal(t, FrameIndex(anim, k), FrameIndex(anim, k+period))
		}
	}
}

func TestFrameIndex_DegenerateTracks(t *testing.T) {
	assert.Equal(t, 0, FrameIndex(Animation{}, 42))
	assert.Equal(t, 2, FrameIndex(Animation{Frames: make([]geom.Vector, 3), Speed: 0}, 5))
}

func TestAnimate_ScalesCellByClipSize(t *testing.T) {
	s := &testSprite{clip: geom.Rect{W: 16, H: 24}}

	Animate(s, walkAnimation(), 17)

	assert.Equal(t, 32.0, s.clip.X)
	assert.Equal(t, 24.0, s.clip.Y)
	assert.Equal(t, 16.0, s.clip.W, "size is untouched")
}

func TestAnimate_EmptyTrackLeavesClip(t *testing.T) {
	s := &testSprite{clip: geom.Rect{X: 5, Y: 6, W: 16, H: 16}}
	Animate(s, Animation{}, 10)
	assert.Equal(t, geom.Rect{X: 5, Y: 6, W: 16, H: 16}, s.clip)
}

func TestCellClip(t *testing.T) {
	cell := geom.Vector{X: 32, Y: 32}

	assert.Equal(t, geom.Rect{X: 0, Y: 0, W: 32, H: 32}, CellClip(0, cell, 4, 2))
	assert.Equal(t, geom.Rect{X: 96, Y: 0, W: 32, H: 32}, CellClip(3, cell, 4, 2))
	assert.Equal(t, geom.Rect{X: 32, Y: 32, W: 32, H: 32}, CellClip(5, cell, 4, 2))
	assert.Equal(t, geom.Rect{X: 0, Y: 0, W: 32, H: 32}, CellClip(8, cell, 4, 2), "wraps past last cell")
}

func TestSheet_SpriteSize(t *testing.T) {
	s := &Sheet{ClipSize: geom.Vector{X: 16, Y: 16}, ScaleFactor: 2}
	assert.Equal(t, geom.Vector{X: 32, Y: 32}, s.SpriteSize())

	s.ScaleFactor = 0
	assert.Equal(t, geom.Vector{X: 16, Y: 16}, s.SpriteSize())
}

func TestSheet_Animation(t *testing.T) {
	s := &Sheet{Animations: map[string]Animation{"walk.north": walkAnimation()}}

	anim, ok := s.Animation("walk.north")
	require.True(t, ok)
	assert.Equal(t, 32, anim.Period())

	_, ok = s.Animation("walk.up")
	assert.False(t, ok)
}
