package replay

import "github.com/younwookim/tilerpg/internal/application/event"

// FrameEvents records the key edges fed in on one frame
type FrameEvents struct {
	F    int          `json:"f"`              // Frame number
	Down []event.Code `json:"down,omitempty"` // Pressed keys
	Up   []event.Code `json:"up,omitempty"`   // Released keys
}

// Script contains all data needed to replay a game session
type Script struct {
	Version   string        `json:"version"`
	Map       string        `json:"map"`
	StartTime string        `json:"startTime,omitempty"`
	Events    []FrameEvents `json:"events"`
}
