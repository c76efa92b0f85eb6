package render

import (
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// Fallback is drawn when a color name is unknown
var Fallback = colornames.Magenta

// ColorByName resolves a CSS color name, case-insensitively
func ColorByName(name string) (color.RGBA, bool) {
	c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// withOpacity scales a color's alpha. Opacity outside (0, 1] is treated as opaque.
func withOpacity(c color.Color, opacity float64) color.Color {
	if opacity <= 0 || opacity >= 1 {
		return c
	}
	r, g, b, a := c.RGBA()
	return color.RGBA64{
		R: uint16(float64(r) * opacity),
		G: uint16(float64(g) * opacity),
		B: uint16(float64(b) * opacity),
		A: uint16(float64(a) * opacity),
	}
}
