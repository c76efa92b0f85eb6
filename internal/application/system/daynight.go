package system

import (
	"math"
)

// DayNight drives the darkness overlay on its own tick counter
type DayNight struct {
	CycleFrames int
	MaxOpacity  float64
	Color       string

	tick int
}

// NewDayNight creates a cycle starting at full daylight
func NewDayNight(cycleFrames int, maxOpacity float64, color string) *DayNight {
	return &DayNight{CycleFrames: cycleFrames, MaxOpacity: maxOpacity, Color: color}
}

// Advance moves the cycle one tick forward
func (d *DayNight) Advance() {
	if d.CycleFrames <= 0 {
		return
	}
	d.tick = (d.tick + 1) % d.CycleFrames
}

// Tick returns the position inside the cycle
func (d *DayNight) Tick() int {
	return d.tick
}

// Opacity is 0 at noon and MaxOpacity at midnight, half way through the cycle
func (d *DayNight) Opacity() float64 {
	if d.CycleFrames <= 0 {
		return 0
	}
	phase := 2 * math.Pi * float64(d.tick) / float64(d.CycleFrames)
	return d.MaxOpacity * (1 - math.Cos(phase)) / 2
}
