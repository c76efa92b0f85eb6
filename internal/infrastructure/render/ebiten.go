package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/png"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/younwookim/tilerpg/internal/domain/gameerr"
	"github.com/younwookim/tilerpg/internal/domain/geom"
)

// baseTextSize is the pixel height of the built-in face
const baseTextSize = 13

// Screen draws onto an ebiten image. Call Begin with the frame's target
// before drawing.
type Screen struct {
	dst   *ebiten.Image
	color color.Color
	face  text.Face
}

// NewScreen creates a renderer with the built-in bitmap font
func NewScreen() *Screen {
	return &Screen{
		color: color.White,
		face:  text.NewGoXFace(basicfont.Face7x13),
	}
}

// Begin sets the draw target for the frame
func (s *Screen) Begin(dst *ebiten.Image) {
	s.dst = dst
}

// SetDrawColor selects a named color; unknown names draw magenta
func (s *Screen) SetDrawColor(name string) {
	c, ok := ColorByName(name)
	if !ok {
		s.color = Fallback
		return
	}
	s.color = c
}

// FillRect fills r with the draw color
func (s *Screen) FillRect(r geom.Rect, opacity float64) {
	if s.dst == nil {
		return
	}
	vector.DrawFilledRect(s.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), withOpacity(s.color, opacity), false)
}

// StrokeRect outlines r with a 1px line
func (s *Screen) StrokeRect(r geom.Rect) {
	if s.dst == nil {
		return
	}
	vector.StrokeRect(s.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, s.color, false)
}

// RenderLine draws a 1px line from a to b
func (s *Screen) RenderLine(a, b geom.Vector) {
	if s.dst == nil {
		return
	}
	vector.StrokeLine(s.dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, s.color, false)
}

// RenderBitmap draws the src clip of bm scaled into dst
func (s *Screen) RenderBitmap(bm Bitmap, src, dst geom.Rect) {
	img, ok := bm.(*ebiten.Image)
	if !ok || s.dst == nil || src.W <= 0 || src.H <= 0 {
		return
	}

	clip := image.Rect(int(src.Left()), int(src.Top()), int(src.Right()), int(src.Bottom()))
	sub, ok := img.SubImage(clip).(*ebiten.Image)
	if !ok {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(dst.W/src.W, dst.H/src.H)
	op.GeoM.Translate(dst.X, dst.Y)
	s.dst.DrawImage(sub, op)
}

// RenderText draws text with its top-left at pos, scaled to size pixels high
func (s *Screen) RenderText(str string, size float64, pos geom.Vector) {
	if s.dst == nil {
		return
	}

	op := &text.DrawOptions{}
	if size > 0 {
		op.GeoM.Scale(size/baseTextSize, size/baseTextSize)
	}
	op.GeoM.Translate(pos.X, pos.Y)
	op.ColorScale.ScaleWithColor(s.color)
	text.Draw(s.dst, str, s.face, op)
}

// TextureDecoder turns PNG bytes into ebiten images
type TextureDecoder struct{}

// Decode decodes a PNG texture
func (TextureDecoder) Decode(data []byte) (Bitmap, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode texture: %w: %w", gameerr.ErrAssetLoad, err)
	}
	return ebiten.NewImageFromImage(img), nil
}

// Placeholder returns a solid magenta image of the given size
func (TextureDecoder) Placeholder(w, h int) Bitmap {
	img := ebiten.NewImage(max(w, 1), max(h, 1))
	img.Fill(colornames.Magenta)
	return img
}
