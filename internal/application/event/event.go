// Package event is a FIFO queue of typed game events. Producers publish,
// the session polls one event per frame and hands it to the subscribers of
// that event's kind.
package event

// Kind identifies an event variant
type Kind int

const (
	KindKeyDown Kind = iota
	KindKeyUp
	KindMapChange
)

// String returns the kind name used in logs
func (k Kind) String() string {
	switch k {
	case KindKeyDown:
		return "keydown"
	case KindKeyUp:
		return "keyup"
	case KindMapChange:
		return "mapchange"
	default:
		return "unknown"
	}
}

// Event is the closed set of things that can be published on a Bus
type Event interface {
	Kind() Kind
	isEvent()
}

// Code is a physical key in the small vocabulary the game understands
type Code string

const (
	KeyW      Code = "KeyW"
	KeyA      Code = "KeyA"
	KeyS      Code = "KeyS"
	KeyD      Code = "KeyD"
	Space     Code = "Space"
	Backquote Code = "Backquote"
)

// KeyDown is the press edge of a key
type KeyDown struct {
	Code Code
}

func (KeyDown) Kind() Kind { return KindKeyDown }
func (KeyDown) isEvent()   {}

// KeyUp is the release edge of a key
type KeyUp struct {
	Code Code
}

func (KeyUp) Kind() Kind { return KindKeyUp }
func (KeyUp) isEvent()   {}

// MapChange asks the session to load a map
type MapChange struct {
	MapID string
}

func (MapChange) Kind() Kind { return KindMapChange }
func (MapChange) isEvent()   {}
