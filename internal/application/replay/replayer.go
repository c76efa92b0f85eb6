// Package replay records and plays back key edges frame by frame.
package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"

	"github.com/younwookim/tilerpg/internal/application/event"
)

// Replayer feeds a script into the event bus
type Replayer struct {
	script Script
	frame  int
	next   int
}

// NewReplayer creates a new replayer. Events are played in frame order.
func NewReplayer(script Script) *Replayer {
	script.Events = slices.Clone(script.Events)
	slices.SortStableFunc(script.Events, func(a, b FrameEvents) int { return a.F - b.F })
	return &Replayer{script: script}
}

// LoadScript loads a script from a file
func LoadScript(filename string) (*Script, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var script Script
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&script); err != nil {
		return nil, fmt.Errorf("failed to decode script: %w", err)
	}

	return &script, nil
}

// Feed publishes the current frame's events, presses before releases, and
// advances one frame. It returns the number of events published.
func (r *Replayer) Feed(bus *event.Bus) int {
	n := 0
	for r.next < len(r.script.Events) && r.script.Events[r.next].F <= r.frame {
		fe := r.script.Events[r.next]
		r.next++
		if fe.F < r.frame {
			continue
		}
		for _, code := range fe.Down {
			if bus.Publish(event.KeyDown{Code: code}) {
				n++
			}
		}
		for _, code := range fe.Up {
			if bus.Publish(event.KeyUp{Code: code}) {
				n++
			}
		}
	}
	r.frame++
	return n
}

// Done reports whether every event has been fed
func (r *Replayer) Done() bool {
	return r.next >= len(r.script.Events)
}

// Map returns the map the script starts on
func (r *Replayer) Map() string {
	return r.script.Map
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the number of frames the script spans
func (r *Replayer) TotalFrames() int {
	if len(r.script.Events) == 0 {
		return 0
	}
	return r.script.Events[len(r.script.Events)-1].F + 1
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
	r.next = 0
}
