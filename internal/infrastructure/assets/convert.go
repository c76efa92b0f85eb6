package assets

import (
	"github.com/younwookim/tilerpg/internal/domain/entity"
	"github.com/younwookim/tilerpg/internal/domain/geom"
	"github.com/younwookim/tilerpg/internal/domain/sprite"
	"github.com/younwookim/tilerpg/internal/domain/tilemap"
	"github.com/younwookim/tilerpg/internal/infrastructure/config"
)

// ArchetypeFromConfig converts an archetypes.yaml entry
func ArchetypeFromConfig(id string, cfg config.ArchetypeConfig) entity.Archetype {
	return entity.Archetype{
		ID:         id,
		MoveSpeed:  cfg.MoveSpeed,
		Hitpoints:  cfg.Hitpoints,
		Damage:     cfg.Damage,
		Armed:      cfg.Armed,
		Reasonable: cfg.Reasonable,
		Hostile:    cfg.Hostile,
	}
}

// TilesheetFromConfig converts a tilesheet file. Out-of-range effect codes
// become EffectNone.
func TilesheetFromConfig(cfg *config.TilesheetConfig) *tilemap.Tilesheet {
	ts := &tilemap.Tilesheet{
		ID:             cfg.ID,
		TextureID:      cfg.TextureID,
		ClipSize:       cfg.ClipSize,
		Columns:        cfg.Dimensions.X,
		Rows:           cfg.Dimensions.Y,
		SolidMap:       make([]bool, len(cfg.SolidMap)),
		EffectMap:      make([]tilemap.Effect, len(cfg.EffectMap)),
		AnimatedMap:    make([]bool, len(cfg.AnimatedMap)),
		TileAnimations: make(map[int]tilemap.TileAnimation, len(cfg.TileAnimations)),
	}
	if ts.TextureID == "" {
		ts.TextureID = cfg.ID
	}

	for i, v := range cfg.SolidMap {
		ts.SolidMap[i] = v != 0
	}
	for i, v := range cfg.EffectMap {
		if v >= int(tilemap.EffectNone) && v <= int(tilemap.EffectRoof) {
			ts.EffectMap[i] = tilemap.Effect(v)
		}
	}
	for i, v := range cfg.AnimatedMap {
		ts.AnimatedMap[i] = v != 0
	}
	for _, a := range cfg.TileAnimations {
		ts.TileAnimations[a.Type] = tilemap.TileAnimation{Frames: a.Frames, Speed: a.Speed}
	}
	return ts
}

// SheetFromConfig converts a spritesheet file
func SheetFromConfig(cfg *config.SpritesheetConfig) *sprite.Sheet {
	sh := &sprite.Sheet{
		ID:          cfg.ID,
		TextureID:   cfg.TextureID,
		ClipSize:    geom.Vector{X: cfg.ClipSize.X, Y: cfg.ClipSize.Y},
		ScaleFactor: cfg.ScaleFactor,
		Animations:  make(map[string]sprite.Animation, len(cfg.Animations)),
	}
	if sh.TextureID == "" {
		sh.TextureID = cfg.ID
	}

	for key, a := range cfg.Animations {
		frames := make([]geom.Vector, len(a.Frames))
		for i, f := range a.Frames {
			frames[i] = geom.Vector{X: f.X, Y: f.Y}
		}
		sh.Animations[key] = sprite.Animation{Frames: frames, Speed: a.Speed}
	}
	return sh
}
