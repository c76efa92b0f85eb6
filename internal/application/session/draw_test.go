package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/tilerpg/internal/domain/geom"
	"github.com/younwookim/tilerpg/internal/infrastructure/render"
)

func TestDraw_Pipeline(t *testing.T) {
	s, _ := newSession(t, testStore(), "town")
	r := render.NewRecorder()

	s.Draw(r)

	require.NotEmpty(t, r.Ops)
	first := r.Ops[0]
	assert.Equal(t, render.OpFill, first.Kind)
	assert.Equal(t, "black", first.Color)
	assert.Equal(t, geom.Rect{W: 640, H: 480}, first.Rect)

	bitmaps := r.Filter(render.OpBitmap)
	require.Len(t, bitmaps, 6, "four tiles, the player and one npc")
	assert.Equal(t, geom.Rect{X: 256, Y: 224, W: ts, H: ts}, bitmaps[0].Rect)
	assert.Equal(t, geom.Rect{X: 256, Y: 224, W: ts, H: ts}, bitmaps[4].Rect, "player drawn after tiles")

	assert.Len(t, r.Filter(render.OpFill), 1, "no night overlay at noon")
	assert.Empty(t, r.Filter(render.OpStroke))
	assert.Empty(t, r.Filter(render.OpText))
}

func TestUpdate_AdvancesClockWithoutDraw(t *testing.T) {
	s, _ := newSession(t, testStore(), "town")

	s.Draw(render.NewRecorder())
	s.Draw(render.NewRecorder())
	assert.Equal(t, 0, s.Frame(), "drawing never ticks")

	for range 3 {
		s.Update()
	}
	assert.Equal(t, 3, s.Frame(), "updates tick without a draw in between")
	assert.Equal(t, 3, s.dayNight.Tick())

	r := render.NewRecorder()
	s.Draw(r)
	s.SetDebug(true)
	s.Draw(r)
	texts := r.Filter(render.OpText)
	require.NotEmpty(t, texts)
	assert.Contains(t, texts[0].Text, "frame 2", "shows the frame last animated")
	assert.Equal(t, 3, s.Frame())
}

func TestDraw_NightOverlay(t *testing.T) {
	s, _ := newSession(t, testStore(), "town")
	for range 51 {
		s.Update()
	}

	r := render.NewRecorder()
	s.Draw(r)

	fills := r.Filter(render.OpFill)
	require.Len(t, fills, 2)
	assert.Equal(t, "midnightblue", fills[1].Color)
	assert.InDelta(t, 0.5, fills[1].Opacity, 1e-9)
}

func TestDraw_DebugOverlay(t *testing.T) {
	store := testStore()
	store.Maps["town"].Layers[0].Tiles[1] = wall
	s, _ := newSession(t, store, "town")
	s.SetDebug(true)
	s.Update()

	r := render.NewRecorder()
	s.Draw(r)

	strokes := r.Filter(render.OpStroke)
	require.Len(t, strokes, 4, "wall, npc, area, attack box")
	assert.Equal(t, "red", strokes[0].Color)
	assert.Equal(t, geom.Rect{X: 256 + ts, Y: 224, W: ts, H: ts}, strokes[0].Rect)
	assert.Len(t, r.Filter(render.OpLine), 1)

	texts := r.Filter(render.OpText)
	require.Len(t, texts, 2)
	assert.Contains(t, texts[0].Text, "map town")
}
