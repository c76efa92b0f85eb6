package geom

import "math"

// Direction is used both for entity facing and for the side reported by CheckCollision.
type Direction int

const (
	None Direction = iota
	North
	East
	South
	West
)

// String returns the lowercase name used in animation keys.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "none"
	}
}

// Opposite returns the direction on the same axis pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return None
	}
}

// Horizontal reports whether d lies on the x axis.
func (d Direction) Horizontal() bool {
	return d == East || d == West
}

// Unit returns the unit velocity for d.
func (d Direction) Unit() Vector {
	switch d {
	case North:
		return Vector{Y: -1}
	case East:
		return Vector{X: 1}
	case South:
		return Vector{Y: 1}
	case West:
		return Vector{X: -1}
	default:
		return Vector{}
	}
}

// CheckCollision returns None when a and b do not overlap. Otherwise it picks
// the axis with the larger origin offset (ties go to the y axis):
//
//	East/West   - b lies east/west of a
//	North/South - a lies north/south of b
//
// Both boxes sharing an origin yields None. CheckCollision(b, a) always
// reports the opposite direction of CheckCollision(a, b).
func CheckCollision(a, b Rect) Direction {
	if !a.Overlaps(b) {
		return None
	}

	xc := a.Left() - b.Left()
	yc := a.Top() - b.Top()

	if math.Abs(xc) > math.Abs(yc) {
		if xc < 0 {
			return East
		}
		return West
	}

	switch {
	case yc < 0:
		return North
	case yc > 0:
		return South
	default:
		return None
	}
}
