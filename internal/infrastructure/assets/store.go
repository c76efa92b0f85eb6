// Package assets loads every texture, sheet, map and archetype before the game
// starts and serves them read-only afterwards.
package assets

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/younwookim/tilerpg/internal/domain/entity"
	"github.com/younwookim/tilerpg/internal/domain/gameerr"
	"github.com/younwookim/tilerpg/internal/domain/sprite"
	"github.com/younwookim/tilerpg/internal/domain/tilemap"
	"github.com/younwookim/tilerpg/internal/infrastructure/config"
	"github.com/younwookim/tilerpg/internal/infrastructure/render"
)

// Decoder turns texture bytes into bitmaps
type Decoder interface {
	Decode(data []byte) (render.Bitmap, error)
	// Placeholder stands in for a texture that failed to load
	Placeholder(w, h int) render.Bitmap
}

// Store holds the loaded content keyed by id
type Store struct {
	Textures     map[string]render.Bitmap
	Maps         map[string]*config.MapConfig
	Tilesheets   map[string]*tilemap.Tilesheet
	Spritesheets map[string]*sprite.Sheet
	Archetypes   map[string]entity.Archetype
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		Textures:     make(map[string]render.Bitmap),
		Maps:         make(map[string]*config.MapConfig),
		Tilesheets:   make(map[string]*tilemap.Tilesheet),
		Spritesheets: make(map[string]*sprite.Sheet),
		Archetypes:   make(map[string]entity.Archetype),
	}
}

// Load reads everything the loader can see. Only archetypes are required:
// a sheet or map that fails to parse is logged and skipped, a texture that
// fails to decode (or is missing) is replaced by a placeholder.
func Load(loader *config.Loader, dec Decoder, log logrus.FieldLogger) (*Store, error) {
	s := NewStore()

	archetypes, err := loader.LoadArchetypes()
	if err != nil {
		return nil, fmt.Errorf("failed to load archetypes: %w: %w", gameerr.ErrConfiguration, err)
	}
	for id, cfg := range archetypes {
		s.Archetypes[id] = ArchetypeFromConfig(id, cfg)
	}

	ids, err := loader.TilesheetIDs()
	if err != nil {
		log.WithError(err).Warn("no tilesheets")
	}
	for _, id := range ids {
		cfg, err := loader.LoadTilesheet(id)
		if err != nil {
			log.WithError(err).WithField("asset", id).Warn("skipping tilesheet")
			continue
		}
		s.Tilesheets[id] = TilesheetFromConfig(cfg)
	}

	ids, err = loader.SpritesheetIDs()
	if err != nil {
		log.WithError(err).Warn("no spritesheets")
	}
	for _, id := range ids {
		cfg, err := loader.LoadSpritesheet(id)
		if err != nil {
			log.WithError(err).WithField("asset", id).Warn("skipping spritesheet")
			continue
		}
		s.Spritesheets[id] = SheetFromConfig(cfg)
	}

	ids, err = loader.MapIDs()
	if err != nil {
		log.WithError(err).Warn("no maps")
	}
	for _, id := range ids {
		cfg, err := loader.LoadMap(id)
		if err != nil {
			log.WithError(err).WithField("map", id).Warn("skipping map")
			continue
		}
		s.Maps[id] = cfg
	}

	s.loadTextures(loader, dec, log)

	log.WithFields(logrus.Fields{
		"textures":     len(s.Textures),
		"tilesheets":   len(s.Tilesheets),
		"spritesheets": len(s.Spritesheets),
		"maps":         len(s.Maps),
		"archetypes":   len(s.Archetypes),
	}).Info("assets loaded")

	return s, nil
}

func (s *Store) loadTextures(loader *config.Loader, dec Decoder, log logrus.FieldLogger) {
	sizes := s.textureSizes()

	ids, err := loader.TextureIDs()
	if err != nil {
		log.WithError(err).Warn("no textures")
	}
	for _, id := range ids {
		data, err := loader.LoadTexture(id)
		if err == nil {
			var bm render.Bitmap
			if bm, err = dec.Decode(data); err == nil {
				s.Textures[id] = bm
				continue
			}
		}
		log.WithError(err).WithField("asset", id).Warn("texture failed to load, using placeholder")
		s.Textures[id] = placeholder(dec, sizes[id])
	}

	for id, size := range sizes {
		if _, ok := s.Textures[id]; ok {
			continue
		}
		log.WithField("asset", id).Warn("texture missing, using placeholder")
		s.Textures[id] = placeholder(dec, size)
	}
}

// textureSizes maps every texture referenced by a sheet to the size the
// sheet expects it to be
func (s *Store) textureSizes() map[string][2]int {
	sizes := make(map[string][2]int)
	for _, ts := range s.Tilesheets {
		sizes[ts.TextureID] = [2]int{ts.Columns * ts.ClipSize, ts.Rows * ts.ClipSize}
	}
	for _, sh := range s.Spritesheets {
		w, h := int(sh.ClipSize.X), int(sh.ClipSize.Y)
		if prev, ok := sizes[sh.TextureID]; ok {
			w, h = max(w, prev[0]), max(h, prev[1])
		}
		sizes[sh.TextureID] = [2]int{w, h}
	}
	return sizes
}

func placeholder(dec Decoder, size [2]int) render.Bitmap {
	return dec.Placeholder(max(size[0], 1), max(size[1], 1))
}

// Texture looks up a bitmap
func (s *Store) Texture(id string) (render.Bitmap, bool) {
	bm, ok := s.Textures[id]
	return bm, ok
}

// Map looks up a raw map
func (s *Store) Map(id string) (*config.MapConfig, bool) {
	m, ok := s.Maps[id]
	return m, ok
}

// PutMap replaces a raw map, used by hot reload
func (s *Store) PutMap(id string, m *config.MapConfig) {
	s.Maps[id] = m
}

// Tilesheet looks up tile metadata
func (s *Store) Tilesheet(id string) (*tilemap.Tilesheet, bool) {
	ts, ok := s.Tilesheets[id]
	return ts, ok
}

// AnimationPeriods lists the period of every sprite and tile animation
func (s *Store) AnimationPeriods() []int {
	var periods []int
	for _, id := range sortedKeys(s.Spritesheets) {
		for _, key := range sortedKeys(s.Spritesheets[id].Animations) {
			periods = append(periods, s.Spritesheets[id].Animations[key].Period())
		}
	}
	for _, id := range sortedKeys(s.Tilesheets) {
		for _, anim := range s.Tilesheets[id].TileAnimations {
			periods = append(periods, anim.Period())
		}
	}
	return periods
}

// Spritesheet looks up the animation table of an archetype
func (s *Store) Spritesheet(id string) (*sprite.Sheet, bool) {
	sh, ok := s.Spritesheets[id]
	return sh, ok
}

// Archetype looks up archetype stats
func (s *Store) Archetype(id string) (entity.Archetype, bool) {
	a, ok := s.Archetypes[id]
	return a, ok
}
