// Package game hosts the current scene inside the ebiten loop.
package game

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/younwookim/tilerpg/internal/application/scene"
)

// Game implements ebiten.Game and manages scene transitions
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64
	log     logrus.FieldLogger
}

// Option configures a Game
type Option func(*Game)

// WithFramerate sets the fixed tick rate scenes are updated at
func WithFramerate(fps int) Option {
	return func(g *Game) {
		if fps > 0 {
			g.dt = 1.0 / float64(fps)
		}
	}
}

// WithLogger sets the logger scene transitions are reported to
func WithLogger(log logrus.FieldLogger) Option {
	return func(g *Game) {
		g.log = log
	}
}

// New creates a Game showing initial. The initial scene's OnEnter is called
// immediately.
func New(initial scene.Scene, screenW, screenH int, opts ...Option) *Game {
	g := &Game{
		current: initial,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / 60.0,
		log:     logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.current.OnEnter()
	return g
}

// Update implements ebiten.Game. scene.ErrQuit ends the loop without error.
func (g *Game) Update() error {
	next, err := g.current.Update(g.dt)
	if errors.Is(err, scene.ErrQuit) {
		g.log.Info("quit requested")
		return ebiten.Termination
	}
	if err != nil {
		return err
	}

	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
		g.log.WithField("scene", next).Debug("scene changed")
	}

	return nil
}

// Draw implements ebiten.Game
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout implements ebiten.Game; the logical screen never changes size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// DT returns the seconds per tick handed to scenes
func (g *Game) DT() float64 {
	return g.dt
}
