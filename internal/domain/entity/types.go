package entity

// StateFrames is how many updates a timed state (attack, hurt) lasts
const StateFrames = 20

// State drives both movement and animation selection
type State int

const (
	Idle State = iota
	Walk
	Attack
	Hurt
	Down
)

// String returns the lowercase name used in animation keys
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Walk:
		return "walk"
	case Attack:
		return "attack"
	case Hurt:
		return "hurt"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// MovementPattern selects how an NPC moves on its own
type MovementPattern int

const (
	Static MovementPattern = iota
	// Roam is reserved; a roaming NPC stands still
	Roam
	Path
)

// String returns the pattern name as written in map files
func (m MovementPattern) String() string {
	switch m {
	case Static:
		return "static"
	case Roam:
		return "roam"
	case Path:
		return "path"
	default:
		return "unknown"
	}
}

// ParseMovement maps a map-file movement name to a pattern.
// Unknown names fall back to Static.
func ParseMovement(name string) MovementPattern {
	switch name {
	case "roam":
		return Roam
	case "path":
		return Path
	default:
		return Static
	}
}

// Archetype is the stat and behavior bundle shared by all entities of a kind
type Archetype struct {
	ID        string
	MoveSpeed float64
	Hitpoints int
	Damage    int
	Armed     bool
	// Reasonable NPCs stop and idle while the player is close
	Reasonable bool
	// Hostile is reserved for aggressive behavior and has no effect yet
	Hostile bool
}
