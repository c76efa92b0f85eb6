package session

import (
	"fmt"

	"github.com/younwookim/tilerpg/internal/domain/geom"
	"github.com/younwookim/tilerpg/internal/domain/sprite"
	"github.com/younwookim/tilerpg/internal/infrastructure/render"
)

// Colors for rendering
const (
	colorClear     = "black"
	colorCollision = "red"
	colorAttack    = "yellow"
	colorArea      = "cyan"
	colorHeading   = "lime"
	colorText      = "white"
)

const debugTextSize = 13

// Draw renders the last simulated frame. It never changes session state, so
// any number of draws may happen between updates.
func (s *Session) Draw(r render.Renderer) {
	screen := geom.NewRect(geom.Vector{}, s.viewport)

	r.SetDrawColor(colorClear)
	r.FillRect(screen, 1)

	s.drawTiles(r)
	s.drawSprite(r, s.player)
	for _, npc := range s.world.Npcs {
		s.drawSprite(r, npc)
	}

	if s.night > 0 {
		r.SetDrawColor(s.dayNight.Color)
		r.FillRect(screen, s.night)
	}

	if s.debug {
		s.drawDebug(r)
	}
}

func (s *Session) drawTiles(r render.Renderer) {
	for b := range s.world.Map.Blits(s.camera.Window(), s.camera.Offset, s.frame) {
		tex, ok := s.env.Assets.Texture(b.TextureID)
		if !ok {
			continue
		}
		r.RenderBitmap(tex, b.Src, b.Dst)
	}
}

func (s *Session) drawSprite(r render.Renderer, sp sprite.Sprite) {
	tex, ok := s.env.Assets.Texture(sp.TextureID())
	if !ok {
		return
	}
	r.RenderBitmap(tex, sp.ClipRect(), sp.ViewRect().Translate(s.camera.Offset))
}

// toScreen projects a world box onto the screen
func (s *Session) toScreen(box geom.Rect) geom.Rect {
	return geom.NewRect(s.camera.WorldToView(box.Pos()).Add(s.camera.Offset), box.Size())
}

func (s *Session) drawDebug(r render.Renderer) {
	r.SetDrawColor(colorCollision)
	for _, box := range s.boxes {
		r.StrokeRect(s.toScreen(box))
	}

	r.SetDrawColor(colorArea)
	r.StrokeRect(s.toScreen(s.player.Area))
	r.SetDrawColor(colorAttack)
	r.StrokeRect(s.toScreen(s.player.AttackBox))

	box := s.toScreen(s.player.WorldBox())
	center := box.Center()
	r.SetDrawColor(colorHeading)
	r.RenderLine(center, center.Add(s.player.Direction.Unit().Scale(box.W)))

	fps := 0.0
	if s.env.FPS != nil {
		fps = s.env.FPS()
	}
	r.SetDrawColor(colorText)
	r.RenderText(fmt.Sprintf("map %s  frame %d  fps %.0f", s.world.ID, s.frame, fps),
		debugTextSize, geom.Vector{X: 8, Y: 8})
	r.RenderText(fmt.Sprintf("hp %d  %s %s", s.player.Hitpoints, s.player.State, s.player.Direction),
		debugTextSize, geom.Vector{X: 8, Y: 8 + debugTextSize + 4})
}
