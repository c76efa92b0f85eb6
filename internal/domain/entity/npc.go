package entity

import (
	"math"

	"github.com/younwookim/tilerpg/internal/domain/geom"
	"github.com/younwookim/tilerpg/internal/domain/sprite"
)

// Npc is a non-player entity: static or patrolling a path back and forth
type Npc struct {
	Body

	Movement  MovementPattern
	PathNodes []geom.Vector
	NextNode  geom.Vector
	NodeIdx   int
	Reverse   bool

	Engaged    bool
	Reasonable bool
	Hostile    bool

	walks       bool
	walking     bool
	prevEngaged bool
	hurting     bool
	hurtFrames  int
}

// NewNpc creates an NPC. A non-empty path makes it patrol, starting toward the first node.
func NewNpc(id string, arch Archetype, sheet *sprite.Sheet, spawn geom.Vector, path []geom.Vector) *Npc {
	n := &Npc{
		Body:       newBody(id, arch, sheet, spawn),
		Movement:   Static,
		Reasonable: arch.Reasonable,
		Hostile:    arch.Hostile,
	}

	if len(path) > 0 {
		n.Movement = Path
		n.PathNodes = append([]geom.Vector(nil), path...)
		n.NextNode = n.PathNodes[0]
		n.State = Walk
		n.walks = true
		n.walking = true
	}
	n.placeAttackBox()
	return n
}

// Walking reports whether the NPC is currently following its pattern
func (n *Npc) Walking() bool {
	return n.walking
}

// Engage marks the NPC engaged when area overlaps it
func (n *Npc) Engage(area geom.Rect) {
	n.Engaged = n.State != Down && area.Overlaps(n.WorldBox())
}

// Hurt starts the hurt cooldown and subtracts amount. A downed NPC ignores it.
func (n *Npc) Hurt(amount int) {
	if n.State == Down {
		return
	}

	n.hurting = true
	n.hurtFrames = 0
	n.State = Hurt
	n.Velocity = geom.Vector{}

	n.Hitpoints = max(n.Hitpoints-amount, 0)
	if n.Hitpoints == 0 {
		n.hurting = false
		n.State = Down
	}
}

// Update advances engagement, the hurt cooldown and patrol movement one frame
func (n *Npc) Update() {
	if n.State == Down {
		n.Velocity = geom.Vector{}
		return
	}

	if n.Engaged {
		n.prevEngaged = true
		if n.Reasonable {
			n.walking = false
		}
	} else if n.prevEngaged {
		n.prevEngaged = false
		n.walking = n.walks
	}

	switch {
	case n.hurting:
		n.hurtFrames++
		n.State = Hurt
		if n.hurtFrames >= StateFrames {
			n.hurting = false
			n.hurtFrames = 0
			n.State = Idle
			if n.walking {
				n.State = Walk
			}
		}
	case n.walking:
		n.State = Walk
		if n.Movement == Path {
			n.movePath()
		}
	default:
		n.State = Idle
		n.Velocity = geom.Vector{}
	}

	n.placeAttackBox()
}

// movePath closes the x gap first, then y, never stepping past the node
func (n *Npc) movePath() {
	d := n.NextNode.Sub(n.World)
	n.Velocity = geom.Vector{}

	switch {
	case d.X != 0:
		n.Velocity.X = math.Copysign(1, d.X)
		n.Direction = geom.East
		if d.X < 0 {
			n.Direction = geom.West
		}
		n.World.X += n.Velocity.X * math.Min(n.MoveSpeed, math.Abs(d.X))
	case d.Y != 0:
		n.Velocity.Y = math.Copysign(1, d.Y)
		n.Direction = geom.South
		if d.Y < 0 {
			n.Direction = geom.North
		}
		n.World.Y += n.Velocity.Y * math.Min(n.MoveSpeed, math.Abs(d.Y))
	default:
		n.advance()
	}
}

// advance picks the next node, turning around at either end of the path
func (n *Npc) advance() {
	if len(n.PathNodes) < 2 {
		return
	}

	if n.NodeIdx >= len(n.PathNodes)-1 {
		n.Reverse = true
	} else if n.NodeIdx <= 0 {
		n.Reverse = false
	}
	if n.Reverse {
		n.NodeIdx--
	} else {
		n.NodeIdx++
	}
	n.NextNode = n.PathNodes[n.NodeIdx]
}
