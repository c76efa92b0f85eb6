// Package camera maps world coordinates to view coordinates and follows a
// target across maps larger than the viewport.
package camera

import (
	"math"

	"github.com/younwookim/tilerpg/internal/domain/geom"
)

// DefaultLockMargin is how close to the east/south bound the camera has to be
// before a lock on that edge can engage.
const DefaultLockMargin = 200

// Target is what the camera follows.
type Target interface {
	WorldBox() geom.Rect
	// Heading is the target's per-axis movement sign.
	Heading() geom.Vector
}

// Locks records which edges the camera is clamped against.
type Locks struct {
	North bool
	East  bool
	South bool
	West  bool
}

// All reports whether every edge is locked.
func (l Locks) All() bool {
	return l.North && l.East && l.South && l.West
}

// Camera is rebuilt on every map load; nothing carries over between maps.
type Camera struct {
	// World is the top-left corner of the visible world window.
	World geom.Vector
	// Bounds is the map resolution.
	Bounds geom.Vector
	// View is the viewport size.
	View geom.Vector
	// Offset centers the map on axes where it is smaller than the viewport.
	Offset geom.Vector

	ScrollsX bool
	ScrollsY bool
	Locked   Locks

	LockMargin float64
	// StepY snaps vertical follow to multiples of StepY when positive.
	StepY float64
}

// New builds a camera centered on initial, clamped to the map.
func New(view, bounds, initial geom.Vector) *Camera {
	c := &Camera{
		Bounds:     bounds,
		View:       view,
		ScrollsX:   bounds.X > view.X,
		ScrollsY:   bounds.Y > view.Y,
		LockMargin: DefaultLockMargin,
	}

	if c.ScrollsX {
		c.World.X = clamp(initial.X-view.X/2, 0, bounds.X-view.X)
	} else {
		c.Offset.X = (view.X - bounds.X) / 2
	}
	if c.ScrollsY {
		c.World.Y = clamp(initial.Y-view.Y/2, 0, bounds.Y-view.Y)
	} else {
		c.Offset.Y = (view.Y - bounds.Y) / 2
	}

	c.Locked = Locks{
		North: !c.ScrollsY || c.World.Y <= 0,
		East:  !c.ScrollsX || c.World.X+view.X >= bounds.X,
		South: !c.ScrollsY || c.World.Y+view.Y >= bounds.Y,
		West:  !c.ScrollsX || c.World.X <= 0,
	}
	return c
}

// Update locks, unlocks and recenters the camera around target.
func (c *Camera) Update(target Target) {
	if !c.ScrollsX && !c.ScrollsY {
		return
	}

	box := target.WorldBox()
	center := box.Center()
	heading := target.Heading()

	if c.ScrollsX {
		c.World.X = c.follow(c.World.X, center.X, heading.X, c.View.X, c.Bounds.X, 0, &c.Locked.West, &c.Locked.East)
	}
	if c.ScrollsY {
		c.World.Y = c.follow(c.World.Y, center.Y, heading.Y, c.View.Y, c.Bounds.Y, c.StepY, &c.Locked.North, &c.Locked.South)
	}
}

// follow runs lock, unlock and recenter on one axis. low guards the 0 edge,
// high the far edge. The unlock thresholds sit exactly where a centered
// camera would touch the bound, so snapping to the edge never jumps.
func (c *Camera) follow(pos, center, heading, view, bound, step float64, low, high *bool) float64 {
	far := bound - view

	if heading < 0 && pos <= 0 {
		*low = true
	} else if heading > 0 && pos+view >= bound-c.LockMargin {
		*high = true
	}

	if *low && center > view/2 {
		*low = false
	}
	if *high && center < bound-view/2 {
		*high = false
	}

	switch {
	case *low:
		return 0
	case *high:
		return far
	}

	next := center - view/2
	if step > 0 {
		next -= math.Mod(next, step)
	}
	return clamp(next, 0, far)
}

// WorldToView projects a world position into view space.
func (c *Camera) WorldToView(v geom.Vector) geom.Vector {
	return v.Sub(c.World)
}

// ViewToWorld is the inverse of WorldToView.
func (c *Camera) ViewToWorld(v geom.Vector) geom.Vector {
	return v.Add(c.World)
}

// Window is the visible world rect.
func (c *Camera) Window() geom.Rect {
	return geom.NewRect(c.World, c.View)
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	return math.Max(lo, math.Min(v, hi))
}
