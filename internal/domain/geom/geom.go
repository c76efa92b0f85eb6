// Package geom holds the 2D vector and rectangle types shared by every other
// package, plus the single-direction AABB collision test used for pushback.
package geom

import "math"

// Vector is a 2D point or delta in world or view space.
type Vector struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Add returns v + o.
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vector) Sub(o Vector) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both components by f.
func (v Vector) Scale(f float64) Vector {
	return Vector{X: v.X * f, Y: v.Y * f}
}

// IsZero reports whether both components are zero.
func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Rect is an axis-aligned box. W and H are never negative.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// NewRect builds a rect from an origin and a size, clamping negative sizes to zero.
func NewRect(pos, size Vector) Rect {
	return Rect{X: pos.X, Y: pos.Y, W: math.Max(size.X, 0), H: math.Max(size.Y, 0)}
}

func (r Rect) Left() float64 { return r.X }
func (r Rect) Top() float64 { return r.Y }
func (r Rect) Right() float64 { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Pos returns the top-left corner.
func (r Rect) Pos() Vector {
	return Vector{X: r.X, Y: r.Y}
}

// Size returns {W, H}.
func (r Rect) Size() Vector {
	return Vector{X: r.W, Y: r.H}
}

// Center returns the center point in the rect's own space.
func (r Rect) Center() Vector {
	return Vector{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Translate returns the rect moved by d.
func (r Rect) Translate(d Vector) Rect {
	r.X += d.X
	r.Y += d.Y
	return r
}

// Overlaps reports strict overlap; touching edges do not count.
func (r Rect) Overlaps(o Rect) bool {
	return r.Right() > o.Left() && r.Left() < o.Right() &&
		r.Top() < o.Bottom() && r.Bottom() > o.Top()
}
