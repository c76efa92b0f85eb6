package system

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/younwookim/tilerpg/internal/domain/entity"
	"github.com/younwookim/tilerpg/internal/domain/gameerr"
	"github.com/younwookim/tilerpg/internal/domain/geom"
	"github.com/younwookim/tilerpg/internal/domain/sprite"
	"github.com/younwookim/tilerpg/internal/domain/tilemap"
	"github.com/younwookim/tilerpg/internal/infrastructure/config"
)

// FailMapID names the map used when the requested one cannot be built
const FailMapID = "_FAILMAP"

// Content is the read-only lookup surface of the asset store
type Content interface {
	Map(id string) (*config.MapConfig, bool)
	Tilesheet(id string) (*tilemap.Tilesheet, bool)
	Spritesheet(id string) (*sprite.Sheet, bool)
	Archetype(id string) (entity.Archetype, bool)
}

// World is a loaded map with its NPCs and the player spawn point
type World struct {
	ID    string
	Map   *tilemap.Tilemap
	Npcs  []*entity.Npc
	Spawn geom.Vector
}

// FailWorld is a 1x1 map with no tiles and no entities
func FailWorld(tileSize int) *World {
	m, _ := tilemap.New(FailMapID, 1, 1, max(tileSize, 1), nil, nil)
	return &World{ID: FailMapID, Map: m}
}

// BuildWorld converts a raw map into a World
func BuildWorld(id string, cfg *config.MapConfig, content Content, tileSize int) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.TileSize > 0 {
		tileSize = cfg.TileSize
	}

	sheets := make(map[string]*tilemap.Tilesheet)
	layers := make([]tilemap.LayerData, 0, len(cfg.Layers))
	for _, l := range cfg.Layers {
		if ts, ok := content.Tilesheet(l.TilesheetID); ok {
			sheets[l.TilesheetID] = ts
		}
		layers = append(layers, tilemap.LayerData{TilesheetID: l.TilesheetID, Tiles: l.Tiles})
	}

	m, err := tilemap.New(cfg.Name, cfg.Dimensions.X, cfg.Dimensions.Y, tileSize, layers, sheets)
	if err != nil {
		return nil, err
	}
	for _, tr := range cfg.TransitionTiles {
		m.Transitions = append(m.Transitions, tilemap.Transition{Index: tr.Idx, MapID: tr.MapID})
	}
	for _, tp := range cfg.Teleports {
		m.Teleports = append(m.Teleports, tilemap.Teleport{Index: tp.Idx, Target: tp.TargetIdx})
	}

	w := &World{ID: id, Map: m}
	if cfg.PlayerSpawn != nil {
		w.Spawn = geom.Vector{X: cfg.PlayerSpawn.X, Y: cfg.PlayerSpawn.Y}
	}

	for i, e := range cfg.Entities {
		arch, ok := content.Archetype(e.ArchetypeID)
		if !ok {
			return nil, fmt.Errorf("map %q entity %d: unknown archetype %q: %w", id, i, e.ArchetypeID, gameerr.ErrConfiguration)
		}
		sheet, ok := content.Spritesheet(e.ArchetypeID)
		if !ok {
			return nil, fmt.Errorf("map %q entity %d: no spritesheet for %q: %w", id, i, e.ArchetypeID, gameerr.ErrConfiguration)
		}

		// a declared movement wins; path nodes alone imply a patrol
		movement := entity.ParseMovement(e.Movement)
		if e.Movement == "" && len(e.PathNodes) > 0 {
			movement = entity.Path
		}

		var path []geom.Vector
		if movement == entity.Path {
			for _, n := range e.PathNodes {
				path = append(path, geom.Vector{X: n.X, Y: n.Y})
			}
		}

		npc := entity.NewNpc(fmt.Sprintf("%s%d", e.ArchetypeID, i), arch, sheet,
			geom.Vector{X: e.SpawnPos.X, Y: e.SpawnPos.Y}, path)
		if movement != entity.Path {
			npc.Movement = movement
		}
		w.Npcs = append(w.Npcs, npc)
	}

	return w, nil
}

// MapLoader builds worlds from the asset store, falling back to the fail map
type MapLoader struct {
	content  Content
	tileSize int
	log      logrus.FieldLogger
}

// NewMapLoader creates a map loader
func NewMapLoader(content Content, tileSize int, log logrus.FieldLogger) *MapLoader {
	return &MapLoader{content: content, tileSize: tileSize, log: log}
}

// Load builds the map id. Any failure is logged and answered with the fail
// map so the loop keeps running.
func (l *MapLoader) Load(id string) *World {
	w, err := l.TryLoad(id)
	if err != nil {
		l.log.WithError(err).WithField("map", id).Warn("map failed to load, using fallback")
		return FailWorld(l.tileSize)
	}
	return w
}

// TryLoad builds the map id without falling back
func (l *MapLoader) TryLoad(id string) (*World, error) {
	cfg, ok := l.content.Map(id)
	if !ok || cfg == nil {
		return nil, fmt.Errorf("map %q not found: %w", id, gameerr.ErrAssetLoad)
	}
	return BuildWorld(id, cfg, l.content, l.tileSize)
}
