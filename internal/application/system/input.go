package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/tilerpg/internal/application/event"
)

var keyCodes = []struct {
	key  ebiten.Key
	code event.Code
}{
	{ebiten.KeyW, event.KeyW},
	{ebiten.KeyA, event.KeyA},
	{ebiten.KeyS, event.KeyS},
	{ebiten.KeyD, event.KeyD},
	{ebiten.KeySpace, event.Space},
	{ebiten.KeyBackquote, event.Backquote},
}

// CodeFor returns the event code bound to an ebiten key
func CodeFor(key ebiten.Key) (event.Code, bool) {
	for _, kc := range keyCodes {
		if kc.key == key {
			return kc.code, true
		}
	}
	return "", false
}

// InputSystem publishes keyboard edges on the event bus
type InputSystem struct {
	bus *event.Bus

	// Pressed and Released report key edges for the current tick
	Pressed  func(ebiten.Key) bool
	Released func(ebiten.Key) bool
}

// NewInputSystem creates an input system reading ebiten's edge state
func NewInputSystem(bus *event.Bus) *InputSystem {
	return &InputSystem{
		bus:      bus,
		Pressed:  inpututil.IsKeyJustPressed,
		Released: inpututil.IsKeyJustReleased,
	}
}

// Poll publishes one event per key edge seen this tick, presses first so a
// tap inside one tick still ends up released. It returns the number published.
func (s *InputSystem) Poll() int {
	n := 0
	for _, kc := range keyCodes {
		if s.Pressed(kc.key) && s.bus.Publish(event.KeyDown{Code: kc.code}) {
			n++
		}
	}
	for _, kc := range keyCodes {
		if s.Released(kc.key) && s.bus.Publish(event.KeyUp{Code: kc.code}) {
			n++
		}
	}
	return n
}
