package entity

import (
	"math"

	"github.com/younwookim/tilerpg/internal/domain/geom"
	"github.com/younwookim/tilerpg/internal/domain/sprite"
)

// PlayerID is the instance id of the single player entity
const PlayerID = "player0"

// Player is the input-driven entity
type Player struct {
	Body

	// Area is the engagement box: the player's box grown by its size on every side
	Area      geom.Rect
	Attacking bool
	Indoors   bool

	PrevState       State
	StateFrameCount int

	strikePending bool
}

// NewPlayer creates a player at spawn facing south
func NewPlayer(arch Archetype, sheet *sprite.Sheet, spawn geom.Vector) *Player {
	p := &Player{Body: newBody(PlayerID, arch, sheet, spawn)}
	p.PrevState = Idle
	p.placeBoxes()
	return p
}

// busy reports whether the current state ignores movement and attack input
func (p *Player) busy() bool {
	return p.State == Attack || p.State == Hurt || p.State == Down
}

func (p *Player) changeState(s State) {
	p.StateFrameCount = 0
	p.PrevState = p.State
	p.State = s
}

// Move faces dir and walks along its axis. The other axis keeps its velocity,
// so two held keys on different axes walk diagonally.
func (p *Player) Move(dir geom.Direction) {
	if p.busy() || dir == geom.None {
		return
	}
	p.Direction = dir

	unit := dir.Unit()
	if dir.Horizontal() {
		p.Velocity.X = unit.X
	} else {
		p.Velocity.Y = unit.Y
	}
	if p.State != Walk {
		p.changeState(Walk)
	}
}

// Stop zeroes velocity and idles
func (p *Player) Stop() {
	if p.busy() {
		return
	}
	p.Velocity = geom.Vector{}
	p.changeState(Idle)
}

// Release cancels movement toward dir, keeping any other axis in motion
func (p *Player) Release(dir geom.Direction) {
	if p.busy() {
		return
	}

	unit := dir.Unit()
	if dir.Horizontal() && p.Velocity.X == unit.X {
		p.Velocity.X = 0
	} else if !dir.Horizontal() && p.Velocity.Y == unit.Y {
		p.Velocity.Y = 0
	}

	switch {
	case p.Velocity.IsZero():
		if p.State == Walk {
			p.changeState(Idle)
		}
	case p.Direction == dir:
		p.Direction = headingDirection(p.Velocity)
	}
}

// Attack starts a melee swing; it lands on at most one frame via ConsumeStrike
func (p *Player) Attack() {
	if p.busy() {
		return
	}
	p.Attacking = true
	p.strikePending = true
	p.Velocity = geom.Vector{}
	p.changeState(Attack)
}

// ConsumeStrike returns true once per Attack call
func (p *Player) ConsumeStrike() bool {
	if !p.strikePending {
		return false
	}
	p.strikePending = false
	return true
}

// Hurt subtracts amount from hitpoints. A downed player ignores it.
func (p *Player) Hurt(amount int) {
	if p.State == Down {
		return
	}

	p.Attacking = false
	p.strikePending = false
	p.Velocity = geom.Vector{}
	p.changeState(Hurt)

	p.Hitpoints = max(p.Hitpoints-amount, 0)
	if p.Hitpoints == 0 {
		p.changeState(Down)
	}
}

// Update advances the state machine one frame. Walking integrates position
// against bounds and the collision boxes gathered before anyone moved.
func (p *Player) Update(bounds geom.Vector, boxes []geom.Rect) {
	p.StateFrameCount++

	switch p.State {
	case Walk:
		p.integrate(bounds, boxes)
	case Attack, Hurt:
		if p.StateFrameCount >= StateFrames {
			p.Attacking = false
			p.changeState(Idle)
		}
	}

	p.placeBoxes()
}

// Place moves the player to pos, used for spawns and teleports
func (p *Player) Place(pos geom.Vector) {
	p.World = pos
	p.placeBoxes()
}

func (p *Player) integrate(bounds geom.Vector, boxes []geom.Rect) {
	v := p.step(bounds, boxes)
	next := p.World.Add(v.Scale(p.MoveSpeed))

	next.X = math.Max(0, math.Min(next.X, math.Max(bounds.X-p.Size.X, 0)))
	next.Y = math.Max(0, math.Min(next.Y, math.Max(bounds.Y-p.Size.Y, 0)))
	p.World = next
}

func (p *Player) placeBoxes() {
	p.placeAttackBox()
	p.Area = geom.NewRect(p.World.Sub(p.Size), p.Size.Scale(3))
}

func headingDirection(v geom.Vector) geom.Direction {
	switch {
	case v.Y < 0:
		return geom.North
	case v.Y > 0:
		return geom.South
	case v.X > 0:
		return geom.East
	case v.X < 0:
		return geom.West
	default:
		return geom.None
	}
}
