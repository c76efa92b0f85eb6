package system

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"

	"github.com/younwookim/tilerpg/internal/application/event"
)

func keySet(keys ...ebiten.Key) func(ebiten.Key) bool {
	return func(k ebiten.Key) bool {
		for _, key := range keys {
			if key == k {
				return true
			}
		}
		return false
	}
}

func TestInputSystem_Poll(t *testing.T) {
	bus := event.NewBus()
	var got []event.Event
	event.Subscribe(bus, func(e event.KeyDown) { got = append(got, e) })
	event.Subscribe(bus, func(e event.KeyUp) { got = append(got, e) })

	s := NewInputSystem(bus)
	s.Pressed = keySet(ebiten.KeyW, ebiten.KeySpace, ebiten.KeyQ)
	s.Released = keySet(ebiten.KeyW)

	assert.Equal(t, 3, s.Poll())
	for bus.Poll() {
	}

	assert.Equal(t, []event.Event{
		event.KeyDown{Code: event.KeyW},
		event.KeyDown{Code: event.Space},
		event.KeyUp{Code: event.KeyW},
	}, got)
}

func TestInputSystem_NoSubscribers(t *testing.T) {
	s := NewInputSystem(event.NewBus())
	s.Pressed = keySet(ebiten.KeyA)
	s.Released = keySet()

	assert.Equal(t, 0, s.Poll())
}

func TestCodeFor(t *testing.T) {
	code, ok := CodeFor(ebiten.KeyBackquote)
	assert.True(t, ok)
	assert.Equal(t, event.Backquote, code)

	_, ok = CodeFor(ebiten.KeyP)
	assert.False(t, ok)
}
