// Package session runs one play-through: it owns the current map, the player
// and NPCs, and advances them in a fixed order once per frame.
package session

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/younwookim/tilerpg/internal/application/event"
	"github.com/younwookim/tilerpg/internal/application/system"
	"github.com/younwookim/tilerpg/internal/domain/camera"
	"github.com/younwookim/tilerpg/internal/domain/entity"
	"github.com/younwookim/tilerpg/internal/domain/gameerr"
	"github.com/younwookim/tilerpg/internal/domain/geom"
	"github.com/younwookim/tilerpg/internal/domain/sprite"
	"github.com/younwookim/tilerpg/internal/domain/tilemap"
	"github.com/younwookim/tilerpg/internal/infrastructure/config"
	"github.com/younwookim/tilerpg/internal/infrastructure/render"
)

// Assets is the read-only content a session draws from
type Assets interface {
	system.Content
	Texture(id string) (render.Bitmap, bool)
	AnimationPeriods() []int
}

// Env carries everything a session needs from the outside
type Env struct {
	Assets   Assets
	Settings *config.Settings
	Bus      *event.Bus
	Log      logrus.FieldLogger
	// FPS reports the measured frame rate for the debug overlay
	FPS func() float64
}

// Session is the per-frame orchestrator
type Session struct {
	env      Env
	log      logrus.FieldLogger
	viewport geom.Vector

	playerArch  entity.Archetype
	playerSheet *sprite.Sheet

	loader   *system.MapLoader
	intents  *system.IntentSystem
	combat   *system.CombatSystem
	effects  *system.EffectSystem
	dayNight *system.DayNight
	clock    *system.FrameClock

	world  *system.World
	player *entity.Player
	camera *camera.Camera
	boxes  []geom.Rect

	// frame and night are what Draw shows: the clock values the last
	// animation pass ran with
	frame int
	night float64

	debug   bool
	missing map[string]struct{}
}

// New builds a session and loads the initial map
func New(env Env) (*Session, error) {
	if env.Settings == nil {
		env.Settings = config.DefaultSettings()
	}
	if env.Bus == nil {
		env.Bus = event.NewBus()
	}
	if env.Log == nil {
		env.Log = logrus.StandardLogger()
	}
	cfg := env.Settings

	arch, ok := env.Assets.Archetype(cfg.Player.Archetype)
	if !ok {
		return nil, fmt.Errorf("player archetype %q not found: %w", cfg.Player.Archetype, gameerr.ErrConfiguration)
	}
	sheet, ok := env.Assets.Spritesheet(cfg.Player.Archetype)
	if !ok {
		return nil, fmt.Errorf("player spritesheet %q not found: %w", cfg.Player.Archetype, gameerr.ErrConfiguration)
	}

	s := &Session{
		env:         env,
		log:         env.Log,
		viewport:    geom.Vector{X: float64(cfg.Display.ScreenWidth), Y: float64(cfg.Display.ScreenHeight)},
		playerArch:  arch,
		playerSheet: sheet,
		loader:      system.NewMapLoader(env.Assets, cfg.TileSize, env.Log),
		intents:     system.NewIntentSystem(),
		combat:      system.NewCombatSystem(),
		effects:     system.NewEffectSystem(cfg.Combat.HurtTileDamage, env.Log),
		dayNight:    system.NewDayNight(cfg.DayNight.CycleFrames, cfg.DayNight.MaxOpacity, cfg.DayNight.Color),
		clock:       system.NewFrameClock(cfg.FrameClock.MinWrap, env.Assets.AnimationPeriods()...),
		debug:       cfg.Debug,
		missing:     make(map[string]struct{}),
	}
	s.combat.OnHit = func(npc *entity.Npc, damage int) {
		s.log.WithFields(logrus.Fields{"npc": npc.ID, "damage": damage, "hitpoints": npc.Hitpoints}).Debug("npc hit")
	}

	event.Subscribe(env.Bus, s.onKeyDown)
	event.Subscribe(env.Bus, s.onKeyUp)
	event.Subscribe(env.Bus, s.onMapChange)

	s.LoadMap(cfg.InitMap)
	return s, nil
}

// Bus returns the event bus the session polls
func (s *Session) Bus() *event.Bus { return s.env.Bus }

// Player returns the player entity
func (s *Session) Player() *entity.Player { return s.player }

// World returns the current map and its NPCs
func (s *Session) World() *system.World { return s.world }

// Camera returns the camera of the current map
func (s *Session) Camera() *camera.Camera { return s.camera }

// Frame returns the global animation frame the next update will use
func (s *Session) Frame() int { return s.clock.Count() }

// Debug reports whether the debug overlay is on
func (s *Session) Debug() bool { return s.debug }

// SetDebug turns the debug overlay on or off
func (s *Session) SetDebug(on bool) { s.debug = on }

// LoadMap replaces the current map with id, falling back to the fail map.
// The player spawns at the map's spawn point.
func (s *Session) LoadMap(id string) {
	w := s.loader.Load(id)
	s.enter(w, w.Spawn)
}

// Restart loads id with a fresh player and no held keys
func (s *Session) Restart(id string) {
	s.player = nil
	s.intents.Reset()
	s.env.Bus.Clear()
	s.LoadMap(id)
}

// ReleaseKeys forgets every held key and stops the player. Used when key
// edges stop reaching the session, e.g. while paused.
func (s *Session) ReleaseKeys() {
	s.intents.Reset()
	s.player.Stop()
}

// enter swaps in a world. Only the player's hitpoints survive.
func (s *Session) enter(w *system.World, spawn geom.Vector) {
	hp := -1
	if s.player != nil {
		hp = s.player.Hitpoints
	}

	s.world = w
	s.player = entity.NewPlayer(s.playerArch, s.playerSheet, spawn)
	if hp >= 0 {
		s.player.Hitpoints = hp
		if hp == 0 {
			s.player.Hurt(0)
		}
	}

	cfg := s.env.Settings.Camera
	s.camera = camera.New(s.viewport, w.Map.Resolution(), s.player.WorldBox().Center())
	s.camera.LockMargin = cfg.LockMargin
	s.camera.StepY = cfg.StepY

	s.boxes = nil
	s.effects.Arrived()
	s.updateViews()
	s.animate()

	s.log.WithFields(logrus.Fields{"map": w.ID, "npcs": len(w.Npcs)}).Info("map loaded")
}

// Update advances the simulation one frame
func (s *Session) Update() {
	// 1. one pending event
	s.env.Bus.Poll()
	s.intents.Resume(s.player)

	// 2. collision set, before anything moves
	s.boxes = system.CollisionSet(s.world.Map, s.camera.Window(), s.world.Npcs)

	// 3-4
	s.camera.Update(s.player)
	s.player.Update(s.world.Map.Resolution(), s.boxes)

	// 5. tile effects, possibly leaving the map
	if tr, ok := s.effects.Update(s.player, s.world.Map, s.camera.Window()); ok {
		s.transition(tr)
	}

	// 6
	s.combat.Update(s.player, s.world.Npcs, s.playerArch.Damage)

	// 7-8
	s.updateViews()
	s.animate()

	// 10. Draw keeps showing the frame just animated
	s.clock.Advance()
	s.dayNight.Advance()
}

// transition follows a transition tile to its target map. The player spawns
// on the target's tile leading back here; without one the player stays put.
func (s *Session) transition(tr tilemap.Transition) {
	from := s.world.ID
	log := s.log.WithFields(logrus.Fields{"from": from, "to": tr.MapID, "tile": tr.Index})

	next, err := s.loader.TryLoad(tr.MapID)
	if err != nil {
		log.WithError(err).Warn("transition aborted")
		return
	}

	back, ok := next.Map.TransitionTo(from)
	if !ok {
		err := fmt.Errorf("map %q has no transition back to %q: %w", tr.MapID, from, gameerr.ErrTransitionIntegrity)
		log.WithError(err).Warn("transition aborted")
		return
	}

	s.enter(next, next.Map.CellOrigin(back.Index))
	log.Info("transition")
}

func (s *Session) updateViews() {
	s.player.SetViewPos(s.camera.WorldToView(s.player.World))
	for _, npc := range s.world.Npcs {
		npc.SetViewPos(s.camera.WorldToView(npc.World))
	}
}

func (s *Session) animate() {
	s.frame = s.clock.Count()
	s.night = s.dayNight.Opacity()
	s.animateSprite(s.player)
	for _, npc := range s.world.Npcs {
		s.animateSprite(npc)
	}
}

// animateSprite applies the clip for the sprite's state. A missing sheet or
// key is logged once and leaves the clip as it was.
func (s *Session) animateSprite(sp sprite.Sprite) {
	key := sp.AnimationKey()

	sheet, ok := s.env.Assets.Spritesheet(sp.SheetID())
	if !ok {
		s.warnMissing(sp.SheetID(), "", errors.New("spritesheet not found"))
		return
	}
	anim, ok := sheet.Animation(key)
	if !ok {
		s.warnMissing(sp.SheetID(), key, errors.New("animation not found"))
		return
	}
	sprite.Animate(sp, anim, s.frame)
}

func (s *Session) warnMissing(sheetID, key string, err error) {
	id := sheetID + "/" + key
	if _, ok := s.missing[id]; ok {
		return
	}
	s.missing[id] = struct{}{}
	s.log.WithFields(logrus.Fields{"archetype": sheetID, "animation": key}).
		WithError(fmt.Errorf("%w: %w", gameerr.ErrConfiguration, err)).
		Warn("cannot animate sprite")
}

func (s *Session) onKeyDown(e event.KeyDown) {
	in := s.intents.KeyDown(e.Code)
	if _, ok := in.(system.DebugIntent); ok {
		s.debug = !s.debug
		s.log.WithField("debug", s.debug).Debug("debug overlay toggled")
		return
	}
	if in != nil {
		s.intents.Apply(s.player, in)
	}
}

func (s *Session) onKeyUp(e event.KeyUp) {
	if in := s.intents.KeyUp(e.Code); in != nil {
		s.intents.Apply(s.player, in)
	}
}

func (s *Session) onMapChange(e event.MapChange) {
	s.LoadMap(e.MapID)
}
