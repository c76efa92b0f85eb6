package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/tilerpg/internal/domain/geom"
)

type target struct {
	box     geom.Rect
	heading geom.Vector
}

func (t target) WorldBox() geom.Rect  { return t.box }
func (t target) Heading() geom.Vector { return t.heading }

// at returns a 32x32 target whose center sits at (x, y).
func at(x, y float64, heading geom.Vector) target {
	return target{box: geom.Rect{X: x - 16, Y: y - 16, W: 32, H: 32}, heading: heading}
}

var (
	east = geom.Vector{X: 1}
	west = geom.Vector{X: -1}
)

func TestNew_MapFitsViewport(t *testing.T) {
	c := New(geom.Vector{X: 640, Y: 480}, geom.Vector{X: 640, Y: 480}, geom.Vector{})

	assert.False(t, c.ScrollsX)
	assert.False(t, c.ScrollsY)
	assert.True(t, c.Locked.All())

	for _, h := range []geom.Vector{east, west, {Y: 1}, {Y: -1}} {
		c.Update(at(600, 400, h))
		assert.Equal(t, geom.Vector{}, c.World)
	}
}

func TestNew_CentersSmallMap(t *testing.T) {
	c := New(geom.Vector{X: 640, Y: 480}, geom.Vector{X: 320, Y: 240}, geom.Vector{})

	assert.Equal(t, geom.Vector{X: 160, Y: 120}, c.Offset)
	assert.Equal(t, geom.Vector{}, c.World)
}

func TestNew_CentersOnInitialPosition(t *testing.T) {
	c := New(geom.Vector{X: 640, Y: 480}, geom.Vector{X: 2000, Y: 2000}, geom.Vector{X: 1000, Y: 1000})

	assert.True(t, c.ScrollsX)
	assert.True(t, c.ScrollsY)
	assert.Equal(t, geom.Vector{X: 680, Y: 760}, c.World)
	assert.Equal(t, Locks{}, c.Locked)
}

func TestNew_ClampsAtOrigin(t *testing.T) {
	c := New(geom.Vector{X: 640, Y: 480}, geom.Vector{X: 2000, Y: 2000}, geom.Vector{X: 10, Y: 10})

	assert.Equal(t, geom.Vector{}, c.World)
	assert.Equal(t, Locks{North: true, West: true}, c.Locked)
}

func TestUpdate_FollowsTarget(t *testing.T) {
	c := New(geom.Vector{X: 640, Y: 480}, geom.Vector{X: 2000, Y: 2000}, geom.Vector{X: 1000, Y: 1000})

	c.Update(at(1100, 1000, east))
	assert.Equal(t, 780.0, c.World.X)
	assert.Equal(t, 760.0, c.World.Y)
}

func TestUpdate_LocksAndUnlocksEast(t *testing.T) {
	c := New(geom.Vector{X: 640, Y: 480}, geom.Vector{X: 2000, Y: 2000}, geom.Vector{X: 1000, Y: 1000})

	c.Update(at(1900, 1000, east))
	assert.Equal(t, 1360.0, c.World.X, "clamped to the far edge")

	c.Update(at(1910, 1000, east))
	assert.True(t, c.Locked.East)
	assert.Equal(t, 1360.0, c.World.X)

	c.Update(at(1700, 1000, west))
	assert.True(t, c.Locked.East, "still inside the hysteresis band")
	assert.Equal(t, 1360.0, c.World.X)

	c.Update(at(1500, 1000, west))
	assert.False(t, c.Locked.East)
	assert.Equal(t, 1180.0, c.World.X)
}

func TestUpdate_LocksAndUnlocksWest(t *testing.T) {
	c := New(geom.Vector{X: 640, Y: 480}, geom.Vector{X: 2000, Y: 2000}, geom.Vector{X: 1000, Y: 1000})
	c.Locked.West = false

	c.Update(at(200, 1000, west))
	assert.Equal(t, 0.0, c.World.X)

	c.Update(at(190, 1000, west))
	assert.True(t, c.Locked.West)

	c.Update(at(300, 1000, east))
	assert.True(t, c.Locked.West)
	assert.Equal(t, 0.0, c.World.X)

	c.Update(at(400, 1000, east))
	assert.False(t, c.Locked.West)
	assert.Equal(t, 80.0, c.World.X)
}

func TestUpdate_VerticalStep(t *testing.T) {
	c := New(geom.Vector{X: 640, Y: 480}, geom.Vector{X: 640, Y: 2000}, geom.Vector{X: 0, Y: 1000})
	c.StepY = 32

	c.Update(at(320, 1000, geom.Vector{Y: 1}))
	assert.Equal(t, 736.0, c.World.Y)
	assert.Equal(t, 0.0, c.World.X, "x axis never scrolls")
}

func TestWorldToView_IsInverseOfViewToWorld(t *testing.T) {
	c := New(geom.Vector{X: 640, Y: 480}, geom.Vector{X: 3000, Y: 3000}, geom.Vector{X: 1234, Y: 987})

	for _, v := range []geom.Vector{{}, {X: 12.5, Y: -3}, {X: 1e4, Y: 7}, {X: -640, Y: 480}} {
		assert.Equal(t, v, c.WorldToView(c.ViewToWorld(v)))
		assert.Equal(t, v.Sub(c.World), c.WorldToView(v))
	}
}

func TestWindow(t *testing.T) {
	c := New(geom.Vector{X: 640, Y: 480}, geom.Vector{X: 2000, Y: 2000}, geom.Vector{X: 1000, Y: 1000})
	assert.Equal(t, geom.Rect{X: 680, Y: 760, W: 640, H: 480}, c.Window())
}
