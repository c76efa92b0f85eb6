package tilemap

import (
	"iter"

	"github.com/younwookim/tilerpg/internal/domain/geom"
)

// Blit is one tile draw: a clip from a tilesheet texture and its screen rect.
type Blit struct {
	TextureID string
	Src       geom.Rect
	Dst       geom.Rect
	Layer     int
	Index     int
}

// Blits yields the draws for every visible tile in view, bottom layer first.
// Screen positions are offset + cell*tileSize - view origin; offset centers
// maps smaller than the viewport. Animated tile types resolve their clip
// from frameCount.
func (m *Tilemap) Blits(view geom.Rect, offset geom.Vector, frameCount int) iter.Seq[Blit] {
	origin := offset.Sub(view.Pos())
	size := geom.Vector{X: float64(m.TileSize), Y: float64(m.TileSize)}
	return func(yield func(Blit) bool) {
		for tile := range m.ViewTiles(view) {
			sheet := m.Layers[tile.Layer].sheet
			b := Blit{
				TextureID: sheet.TextureID,
				Src:       sheet.Clip(tile.Type, frameCount),
				Dst:       geom.NewRect(tile.Box.Pos().Add(origin), size),
				Layer:     tile.Layer,
				Index:     tile.Index,
			}
			if !yield(b) {
				return
			}
		}
	}
}
