// Package playing provides the main gameplay scene.
package playing

import (
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/younwookim/tilerpg/internal/application/event"
	"github.com/younwookim/tilerpg/internal/application/replay"
	"github.com/younwookim/tilerpg/internal/application/scene"
	"github.com/younwookim/tilerpg/internal/application/session"
	"github.com/younwookim/tilerpg/internal/application/state"
	"github.com/younwookim/tilerpg/internal/application/system"
	"github.com/younwookim/tilerpg/internal/domain/geom"
	"github.com/younwookim/tilerpg/internal/infrastructure/config"
	"github.com/younwookim/tilerpg/internal/infrastructure/render"
)

// MapSource reloads raw maps for hot reload
type MapSource interface {
	LoadMap(id string) (*config.MapConfig, error)
}

// MapSink stores reloaded raw maps
type MapSink interface {
	PutMap(id string, m *config.MapConfig)
}

// Options configures the playing scene. Only Session is required.
type Options struct {
	Session *session.Session
	InitMap string
	Log     logrus.FieldLogger

	// Reloads carries ids of map files changed on disk
	Reloads <-chan string
	Source  MapSource
	Sink    MapSink

	Replayer   *replay.Replayer
	Recorder   *replay.Recorder
	RecordPath string
}

// Playing is the main gameplay scene
type Playing struct {
	opts    Options
	session *session.Session
	state   state.GameState
	input   *system.InputSystem
	screen  *render.Screen
	log     logrus.FieldLogger

	pauseUI *ebitenui.UI
	quit    bool
}

// New creates a new Playing scene
func New(opts Options) *Playing {
	log := opts.Log
	if log == nil {
		log = logrus.StandardLogger()
	}

	p := &Playing{
		opts:    opts,
		session: opts.Session,
		state:   state.StatePlaying,
		input:   system.NewInputSystem(opts.Session.Bus()),
		screen:  render.NewScreen(),
		log:     log,
	}

	if opts.Recorder != nil {
		opts.Recorder.Attach(opts.Session.Bus())
		log.WithField("file", opts.RecordPath).Info("recording enabled")
	}
	return p
}

// State returns the scene state
func (p *Playing) State() state.GameState {
	return p.state
}

// Update advances the scene (implements scene.Scene)
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	switch p.state {
	case state.StatePaused:
		if p.input.Pressed(ebiten.KeyP) || p.input.Pressed(ebiten.KeyEscape) {
			p.resume()
		} else if p.pauseUI != nil {
			p.pauseUI.Update()
		}
		if p.quit {
			return nil, scene.ErrQuit
		}
	case state.StateGameOver:
		if p.input.Pressed(ebiten.KeyEnter) {
			p.session.Restart(p.opts.InitMap)
			p.state = state.StatePlaying
			p.log.Info("restarted")
		}
	default:
		p.updatePlaying()
	}

	return nil, nil
}

func (p *Playing) updatePlaying() {
	if p.input.Pressed(ebiten.KeyP) || p.input.Pressed(ebiten.KeyEscape) {
		p.state = state.StatePaused
		p.session.ReleaseKeys()
		p.log.Debug("paused")
		return
	}

	p.reloadMaps()

	if p.opts.Replayer != nil {
		p.opts.Replayer.Feed(p.session.Bus())
	} else {
		p.input.Poll()
	}

	p.session.Update()

	if p.opts.Recorder != nil {
		p.opts.Recorder.NextFrame()
		if p.input.Pressed(ebiten.KeyF5) {
			p.saveRecording()
		}
	}

	if p.session.Player().IsDown() {
		p.state = state.StateGameOver
		p.log.WithField("map", p.session.World().ID).Info("player down")
	}
}

func (p *Playing) resume() {
	p.state = state.StatePlaying
	p.log.Debug("resumed")
}

// reloadMaps applies every pending hot reload. A change to the current map
// reloads it in place.
func (p *Playing) reloadMaps() {
	if p.opts.Reloads == nil || p.opts.Source == nil || p.opts.Sink == nil {
		return
	}

	for {
		select {
		case id, ok := <-p.opts.Reloads:
			if !ok {
				p.opts.Reloads = nil
				return
			}
			p.reloadMap(id)
		default:
			return
		}
	}
}

func (p *Playing) reloadMap(id string) {
	log := p.log.WithField("map", id)

	cfg, err := p.opts.Source.LoadMap(id)
	if err != nil {
		log.WithError(err).Warn("map reload failed")
		return
	}
	p.opts.Sink.PutMap(id, cfg)
	log.Info("map reloaded")

	if id == p.session.World().ID {
		p.session.Bus().Publish(event.MapChange{MapID: id})
	}
}

func (p *Playing) saveRecording() {
	path := p.opts.RecordPath
	if path == "" {
		path = replay.GenerateFilename()
	}
	if err := p.opts.Recorder.Save(path); err != nil {
		p.log.WithError(err).Warn("failed to save recording")
		return
	}
	p.log.WithField("file", path).Info("recording saved")
}

// Draw renders the scene (implements scene.Scene)
func (p *Playing) Draw(screen *ebiten.Image) {
	p.screen.Begin(screen)
	p.session.Draw(p.screen)

	switch p.state {
	case state.StatePaused:
		if p.pauseUI == nil {
			b := screen.Bounds()
			p.pauseUI = newPauseUI(b.Dx(), b.Dy(), p.resume, func() { p.quit = true })
		}
		p.pauseUI.Draw(screen)
	case state.StateGameOver:
		p.drawGameOver(screen)
	}
}

func (p *Playing) drawGameOver(screen *ebiten.Image) {
	b := screen.Bounds()
	p.screen.SetDrawColor("black")
	p.screen.FillRect(geom.Rect{W: float64(b.Dx()), H: float64(b.Dy())}, 0.6)
	p.screen.SetDrawColor("white")
	p.screen.RenderText("You are down. Press Enter to restart.", 13,
		geom.Vector{X: float64(b.Dx())/2 - 130, Y: float64(b.Dy()) / 2})
}

// OnEnter implements scene.Scene
func (p *Playing) OnEnter() {
	p.log.WithField("map", p.session.World().ID).Debug("entered playing scene")
}

// OnExit implements scene.Scene
func (p *Playing) OnExit() {
	if p.opts.Recorder != nil && p.opts.Recorder.IsRecording() {
		p.opts.Recorder.Stop()
		p.saveRecording()
	}
}
