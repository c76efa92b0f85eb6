package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/tilerpg/internal/application/event"
	"github.com/younwookim/tilerpg/internal/domain/entity"
	"github.com/younwookim/tilerpg/internal/domain/geom"
)

func TestIntentSystem_KeyDown(t *testing.T) {
	s := NewIntentSystem()

	tests := []struct {
		code     event.Code
		expected Intent
	}{
		{event.KeyW, MoveIntent{Dir: geom.North}},
		{event.KeyW, nil},
		{event.KeyD, MoveIntent{Dir: geom.East}},
		{event.Space, AttackIntent{}},
		{event.Backquote, DebugIntent{}},
		{event.Code("KeyQ"), nil},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, s.KeyDown(tt.code), "%s", tt.code)
	}
	assert.Equal(t, []geom.Direction{geom.North, geom.East}, s.Held())
}

func TestIntentSystem_KeyUp(t *testing.T) {
	s := NewIntentSystem()
	s.KeyDown(event.KeyA)

	assert.Equal(t, ReleaseIntent{Dir: geom.West}, s.KeyUp(event.KeyA))
	assert.Nil(t, s.KeyUp(event.Space))
	assert.Empty(t, s.Held())
}

func apply(s *IntentSystem, p *entity.Player, in Intent) {
	if in != nil {
		s.Apply(p, in)
	}
}

func TestIntentSystem_OpposingKeysHandOver(t *testing.T) {
	s := NewIntentSystem()
	p := newPlayer(newContent(), geom.Vector{X: 100, Y: 100})

	apply(s, p, s.KeyDown(event.KeyD))
	apply(s, p, s.KeyDown(event.KeyA))
	assert.Equal(t, geom.West, p.Direction)
	assert.Equal(t, -1.0, p.Velocity.X)

	apply(s, p, s.KeyUp(event.KeyA))
	assert.Equal(t, entity.Walk, p.State)
	assert.Equal(t, geom.East, p.Direction)
	assert.Equal(t, 1.0, p.Velocity.X)

	apply(s, p, s.KeyUp(event.KeyD))
	assert.Equal(t, entity.Idle, p.State)
	assert.True(t, p.Velocity.IsZero())
}

func TestIntentSystem_DiagonalRelease(t *testing.T) {
	s := NewIntentSystem()
	p := newPlayer(newContent(), geom.Vector{X: 100, Y: 100})

	apply(s, p, s.KeyDown(event.KeyW))
	apply(s, p, s.KeyDown(event.KeyD))
	assert.Equal(t, geom.Vector{X: 1, Y: -1}, p.Velocity)

	apply(s, p, s.KeyUp(event.KeyW))
	assert.Equal(t, geom.Vector{X: 1, Y: 0}, p.Velocity)
	assert.Equal(t, geom.East, p.Direction)
	assert.Equal(t, entity.Walk, p.State)
}

func TestIntentSystem_ResumeAfterAttack(t *testing.T) {
	s := NewIntentSystem()
	p := newPlayer(newContent(), geom.Vector{X: 100, Y: 100})

	apply(s, p, s.KeyDown(event.KeyD))
	apply(s, p, s.KeyDown(event.Space))
	require.Equal(t, entity.Attack, p.State)
	assert.True(t, p.Velocity.IsZero())

	for range entity.StateFrames {
		s.Resume(p)
		p.Update(worldBounds, nil)
	}
	require.Equal(t, entity.Idle, p.State)

	s.Resume(p)
	assert.Equal(t, entity.Walk, p.State)
	assert.Equal(t, 1.0, p.Velocity.X)
}

func TestIntentSystem_Reset(t *testing.T) {
	s := NewIntentSystem()
	s.KeyDown(event.KeyS)
	s.Reset()
	assert.Empty(t, s.Held())
	assert.Equal(t, MoveIntent{Dir: geom.South}, s.KeyDown(event.KeyS))
}
