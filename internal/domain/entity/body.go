package entity

import (
	"github.com/younwookim/tilerpg/internal/domain/geom"
	"github.com/younwookim/tilerpg/internal/domain/sprite"
)

// Body holds what the player and NPCs share: position, motion, state and the
// sprite rects. World is authoritative; View is re-derived every frame.
type Body struct {
	ID          string
	ArchetypeID string
	Texture     string

	World    geom.Vector
	Size     geom.Vector
	Velocity geom.Vector

	View geom.Rect
	Clip geom.Rect

	Direction geom.Direction
	State     State
	Hitpoints int
	MoveSpeed float64
	Armed     bool

	AttackBox geom.Rect
}

func newBody(id string, arch Archetype, sheet *sprite.Sheet, spawn geom.Vector) Body {
	size := sheet.SpriteSize()
	return Body{
		ID:          id,
		ArchetypeID: arch.ID,
		Texture:     sheet.TextureID,
		World:       spawn,
		Size:        size,
		View:        geom.NewRect(spawn, size),
		Clip:        geom.NewRect(geom.Vector{}, sheet.ClipSize),
		Direction:   geom.South,
		State:       Idle,
		Hitpoints:   arch.Hitpoints,
		MoveSpeed:   arch.MoveSpeed,
		Armed:       arch.Armed,
	}
}

// WorldBox returns the bounding box in world space
func (b *Body) WorldBox() geom.Rect {
	return geom.NewRect(b.World, b.Size)
}

// Heading returns the per-axis movement sign
func (b *Body) Heading() geom.Vector {
	return b.Velocity
}

// SetViewPos places the draw box at a view-space position
func (b *Body) SetViewPos(pos geom.Vector) {
	b.View = geom.NewRect(pos, b.Size)
}

// TextureID implements sprite.Sprite
func (b *Body) TextureID() string { return b.Texture }

// SheetID implements sprite.Sprite; spritesheets are keyed by archetype
func (b *Body) SheetID() string { return b.ArchetypeID }

// AnimationKey implements sprite.Sprite
func (b *Body) AnimationKey() string { return AnimationKey(b.State, b.Direction, b.Armed) }

// ClipRect implements sprite.Sprite
func (b *Body) ClipRect() geom.Rect { return b.Clip }

// SetClipOrigin implements sprite.Sprite
func (b *Body) SetClipOrigin(origin geom.Vector) {
	b.Clip.X = origin.X
	b.Clip.Y = origin.Y
}

// ViewRect implements sprite.Sprite
func (b *Body) ViewRect() geom.Rect { return b.View }

// IsDown reports whether the entity is out of the fight for good
func (b *Body) IsDown() bool {
	return b.State == Down
}

// AnimationKey builds "<state>.<direction>[.armed]", or "down" for a downed entity.
func AnimationKey(state State, dir geom.Direction, armed bool) string {
	if state == Down {
		return "down"
	}
	key := state.String()
	if dir != geom.None {
		key += "." + dir.String()
	}
	if armed {
		key += ".armed"
	}
	return key
}

// AnimationKeys lists every key an entity can ask for, for load-time validation.
func AnimationKeys(armed bool) []string {
	keys := []string{"down"}
	for _, s := range []State{Idle, Walk, Attack, Hurt} {
		for _, d := range []geom.Direction{geom.North, geom.East, geom.South, geom.West} {
			keys = append(keys, AnimationKey(s, d, armed))
		}
	}
	return keys
}

// placeAttackBox puts a half-size box in front of the entity
func (b *Body) placeAttackBox() {
	w, h := b.Size.X, b.Size.Y
	box := geom.Rect{W: w / 2, H: h / 2}

	switch b.Direction {
	case geom.North:
		box.X, box.Y = b.World.X+h/4, b.World.Y-box.H
	case geom.East:
		box.X, box.Y = b.World.X+w, b.World.Y+h/4
	case geom.South:
		box.X, box.Y = b.World.X+h/4, b.World.Y+h
	case geom.West:
		box.X, box.Y = b.World.X-box.W, b.World.Y+h/4
	default:
		box.X, box.Y = b.World.X, b.World.Y
	}
	b.AttackBox = box
}

// step returns the velocity left after bounds and collision checks. Both run
// against the box before it moves. The intent in b.Velocity is not touched.
func (b *Body) step(bounds geom.Vector, boxes []geom.Rect) geom.Vector {
	v := b.Velocity
	box := b.WorldBox()

	if v.X < 0 && box.Left() <= 0 {
		v.X = 0
	} else if v.X > 0 && box.Right() >= bounds.X {
		v.X = 0
	}
	if v.Y < 0 && box.Top() <= 0 {
		v.Y = 0
	} else if v.Y > 0 && box.Bottom() >= bounds.Y {
		v.Y = 0
	}

	for _, other := range boxes {
		switch geom.CheckCollision(box, other) {
		case geom.East:
			if v.X > 0 {
				v.X = 0
			}
		case geom.West:
			if v.X < 0 {
				v.X = 0
			}
		case geom.North:
			if v.Y > 0 {
				v.Y = 0
			}
		case geom.South:
			if v.Y < 0 {
				v.Y = 0
			}
		}
	}
	return v
}
