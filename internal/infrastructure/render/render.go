// Package render defines the drawing surface the game draws through and its
// ebiten implementation.
package render

import (
	"image"

	"github.com/younwookim/tilerpg/internal/domain/geom"
)

// Bitmap is a texture held by the asset store
type Bitmap interface {
	Bounds() image.Rectangle
}

// Renderer is every drawing primitive the game uses. Colors are named
// (CSS/SVG names); an opacity of 0 or less means opaque.
type Renderer interface {
	SetDrawColor(name string)
	FillRect(r geom.Rect, opacity float64)
	StrokeRect(r geom.Rect)
	RenderLine(a, b geom.Vector)
	RenderBitmap(bm Bitmap, src, dst geom.Rect)
	RenderText(text string, size float64, pos geom.Vector)
}
