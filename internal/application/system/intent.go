package system

import (
	"slices"

	"github.com/younwookim/tilerpg/internal/application/event"
	"github.com/younwookim/tilerpg/internal/domain/entity"
	"github.com/younwookim/tilerpg/internal/domain/geom"
)

// Intent represents an action the player wants to perform
type Intent interface {
	isIntent()
}

// MoveIntent starts walking toward Dir
type MoveIntent struct {
	Dir geom.Direction
}

func (MoveIntent) isIntent() {}

// ReleaseIntent stops walking toward Dir
type ReleaseIntent struct {
	Dir geom.Direction
}

func (ReleaseIntent) isIntent() {}

// AttackIntent starts a melee swing
type AttackIntent struct{}

func (AttackIntent) isIntent() {}

// DebugIntent toggles the debug overlay
type DebugIntent struct{}

func (DebugIntent) isIntent() {}

var movementKeys = map[event.Code]geom.Direction{
	event.KeyW: geom.North,
	event.KeyA: geom.West,
	event.KeyS: geom.South,
	event.KeyD: geom.East,
}

// IntentSystem turns key edges into player intents and remembers which
// movement keys are held, since the player only ever sees edges.
type IntentSystem struct {
	held []geom.Direction
}

// NewIntentSystem creates a new intent system
func NewIntentSystem() *IntentSystem {
	return &IntentSystem{}
}

// KeyDown maps a press edge to an intent. Repeated presses of a held
// movement key and unknown keys yield nil.
func (s *IntentSystem) KeyDown(code event.Code) Intent {
	if dir, ok := movementKeys[code]; ok {
		if slices.Contains(s.held, dir) {
			return nil
		}
		s.held = append(s.held, dir)
		return MoveIntent{Dir: dir}
	}

	switch code {
	case event.Space:
		return AttackIntent{}
	case event.Backquote:
		return DebugIntent{}
	}
	return nil
}

// KeyUp maps a release edge to an intent
func (s *IntentSystem) KeyUp(code event.Code) Intent {
	dir, ok := movementKeys[code]
	if !ok {
		return nil
	}
	s.held = slices.DeleteFunc(s.held, func(d geom.Direction) bool { return d == dir })
	return ReleaseIntent{Dir: dir}
}

// Apply hands an intent to the player. After a release, keys still held on
// the freed axis take over again. DebugIntent is left to the caller.
func (s *IntentSystem) Apply(p *entity.Player, in Intent) {
	switch in := in.(type) {
	case MoveIntent:
		p.Move(in.Dir)
	case ReleaseIntent:
		p.Release(in.Dir)
		for _, dir := range s.held {
			unit := dir.Unit()
			if (dir.Horizontal() && p.Velocity.X == 0 && unit.X != 0) ||
				(!dir.Horizontal() && p.Velocity.Y == 0 && unit.Y != 0) {
				p.Move(dir)
			}
		}
	case AttackIntent:
		p.Attack()
	}
}

// Resume restarts walking when an idle player still has movement keys held,
// e.g. after an attack swing ends.
func (s *IntentSystem) Resume(p *entity.Player) {
	if p.State != entity.Idle {
		return
	}
	for _, dir := range s.held {
		p.Move(dir)
	}
}

// Held returns the held movement directions, oldest first
func (s *IntentSystem) Held() []geom.Direction {
	return slices.Clone(s.held)
}

// Reset forgets every held key
func (s *IntentSystem) Reset() {
	s.held = nil
}
