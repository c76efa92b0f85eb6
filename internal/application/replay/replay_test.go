package replay

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/tilerpg/internal/application/event"
)

func collect(bus *event.Bus) *[]event.Event {
	var got []event.Event
	event.Subscribe(bus, func(e event.KeyDown) { got = append(got, e) })
	event.Subscribe(bus, func(e event.KeyUp) { got = append(got, e) })
	return &got
}

func drain(bus *event.Bus) {
	for bus.Poll() {
	}
}

func TestReplayer_FeedsEventsOnTheirFrame(t *testing.T) {
	bus := event.NewBus()
	got := collect(bus)

	r := NewReplayer(Script{
		Version: "1.0",
		Map:     "village",
		Events: []FrameEvents{
			{F: 3, Up: []event.Code{event.KeyD}},
			{F: 0, Down: []event.Code{event.KeyD, event.Space}},
		},
	})
	assert.Equal(t, 4, r.TotalFrames())
	assert.Equal(t, "village", r.Map())

	assert.Equal(t, 2, r.Feed(bus))
	drain(bus)
	assert.Equal(t, []event.Event{event.KeyDown{Code: event.KeyD}, event.KeyDown{Code: event.Space}}, *got)

	assert.Zero(t, r.Feed(bus))
	assert.Zero(t, r.Feed(bus))
	assert.False(t, r.Done())

	assert.Equal(t, 1, r.Feed(bus))
	drain(bus)
	assert.Equal(t, event.KeyUp{Code: event.KeyD}, (*got)[2])
	assert.True(t, r.Done())
	assert.Equal(t, 4, r.CurrentFrame())
}

func TestReplayer_Reset(t *testing.T) {
	bus := event.NewBus()
	collect(bus)
	r := NewReplayer(Script{Events: []FrameEvents{{F: 0, Down: []event.Code{event.KeyW}}}})

	r.Feed(bus)
	require.True(t, r.Done())

	r.Reset()
	assert.False(t, r.Done())
	assert.Equal(t, 0, r.CurrentFrame())
	assert.Equal(t, 1, r.Feed(bus))
}

func TestRecorder_RecordsPolledEvents(t *testing.T) {
	bus := event.NewBus()
	rec := NewRecorder("village")
	rec.Attach(bus)

	bus.Publish(event.KeyDown{Code: event.KeyA})
	bus.Poll()
	rec.NextFrame()
	rec.NextFrame()
	bus.Publish(event.KeyUp{Code: event.KeyA})
	bus.Publish(event.KeyDown{Code: event.Space})
	drain(bus)

	script := rec.Script()
	assert.Equal(t, "village", script.Map)
	assert.Equal(t, []FrameEvents{
		{F: 0, Down: []event.Code{event.KeyA}},
		{F: 2, Down: []event.Code{event.Space}, Up: []event.Code{event.KeyA}},
	}, script.Events)

	rec.Stop()
	assert.False(t, rec.IsRecording())
	bus.Publish(event.KeyDown{Code: event.KeyW})
	drain(bus)
	assert.Len(t, rec.Script().Events, 2)
}

func TestRecorder_SaveAndLoad(t *testing.T) {
	bus := event.NewBus()
	rec := NewRecorder("cave")
	rec.Attach(bus)

	path := filepath.Join(t.TempDir(), GenerateFilename())
	assert.Error(t, rec.Save(path), "nothing recorded yet")

	bus.Publish(event.KeyDown{Code: event.KeyS})
	drain(bus)
	require.NoError(t, rec.Save(path))

	script, err := LoadScript(path)
	require.NoError(t, err)
	assert.Equal(t, "cave", script.Map)
	assert.Equal(t, rec.Script().Events, script.Events)
}

func TestLoadScript_Errors(t *testing.T) {
	_, err := LoadScript(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o644))
	_, err = LoadScript(bad)
	assert.Error(t, err)
}
