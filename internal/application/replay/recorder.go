package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/tilerpg/internal/application/event"
)

// Recorder captures key edges as the session consumes them
type Recorder struct {
	script    Script
	recording bool
	frame     int
}

// NewRecorder creates a new recorder starting on mapID
func NewRecorder(mapID string) *Recorder {
	return &Recorder{
		script: Script{
			Version:   "1.0",
			Map:       mapID,
			StartTime: time.Now().Format(time.RFC3339),
		},
		recording: true,
	}
}

// Attach subscribes the recorder to key events on bus
func (r *Recorder) Attach(bus *event.Bus) {
	event.Subscribe(bus, func(e event.KeyDown) { r.record(e.Code, true) })
	event.Subscribe(bus, func(e event.KeyUp) { r.record(e.Code, false) })
}

func (r *Recorder) record(code event.Code, down bool) {
	if !r.recording {
		return
	}

	n := len(r.script.Events)
	if n == 0 || r.script.Events[n-1].F != r.frame {
		r.script.Events = append(r.script.Events, FrameEvents{F: r.frame})
		n++
	}
	fe := &r.script.Events[n-1]
	if down {
		fe.Down = append(fe.Down, code)
	} else {
		fe.Up = append(fe.Up, code)
	}
}

// NextFrame moves recording to the next frame
func (r *Recorder) NextFrame() {
	r.frame++
}

// Save writes the script to a file
func (r *Recorder) Save(filename string) error {
	if len(r.script.Events) == 0 {
		return fmt.Errorf("no events to save")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.script); err != nil {
		return fmt.Errorf("failed to encode script: %w", err)
	}

	return nil
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// Script returns the recorded script
func (r *Recorder) Script() Script {
	return r.script
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
